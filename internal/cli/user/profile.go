package user

import (
	"fmt"
	"os"

	"github.com/hypecli/hype-cli/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	// ProfileType is the file type for profiles
	ProfileType = "yaml"

	envPrefix = "hype"
)

// set of supported CLI user profile flags
const (
	FlagProfile      = "profile"
	FlagProfileUsage = `specify the profile to use (default value: "default")`

	FlagBaseURL      = "base-url"
	FlagBaseURLUsage = "specify the base Hype server URL"

	defaultBaseURL = "https://api.hype.it"
)

// Profile is the CLI profile
type Profile struct {
	Flags
	Name             string
	WorkingDirectory string

	dir string
	fs  afero.Fs
}

// Flags are the CLI profile flags
type Flags struct {
	BaseURL       string
	TelemetryMode telemetry.Mode
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile
func NewProfile(name string) (*Profile, error) {
	dir, dirErr := HomeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %w", dirErr)
	}

	wd, wdErr := os.Getwd()
	if wdErr != nil {
		return nil, fmt.Errorf("failed to get current working directory: %w", wdErr)
	}

	return &Profile{
		Name:             name,
		dir:              dir,
		fs:               afero.NewOsFs(),
		WorkingDirectory: wd,
	}, nil
}

// Clear clears the specified CLI profile property
func (p Profile) Clear(name string) {
	p.SetString(name, "")
}

// SetString sets the specified CLI profile property
func (p Profile) SetString(name, value string) {
	viper.Set(p.propertyKey(name), value)
}

// GetString gets the specified CLI profile property
func (p Profile) GetString(name string) string {
	return viper.GetString(p.propertyKey(name))
}

func (p Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Load loads the CLI profile
func (p Profile) Load() error {
	viper.SetConfigName(p.Name)
	viper.AddConfigPath(p.dir)
	viper.SetConfigPermissions(0600)
	viper.SetConfigType(ProfileType)

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %s", err)
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return fmt.Errorf("failed to save CLI profile: %s", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %s", err)
		}
	}

	if err := viper.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %s", err)
	}
	return nil
}

// ResolveFlags resolves the user profile flags
func (p *Profile) ResolveFlags() error {
	if p.Flags.TelemetryMode == telemetry.ModeEmpty {
		p.Flags.TelemetryMode = p.TelemetryMode()
	}
	p.SetString(keyTelemetryMode, string(p.Flags.TelemetryMode))

	if p.Flags.BaseURL == "" {
		baseURL := p.BaseURL()
		if baseURL == "" {
			baseURL = defaultBaseURL
		}
		p.Flags.BaseURL = baseURL
	}
	p.SetBaseURL(p.Flags.BaseURL)

	return p.Save()
}

// Dir returns the CLI profile directory
func (p Profile) Dir() string {
	return p.dir
}

// Path returns the CLI profile filepath
func (p Profile) Path() string {
	return fmt.Sprintf("%s/%s.%s", p.dir, p.Name, ProfileType)
}

// set of supported CLI profile keys
const (
	keyEmail     = "email"
	keyBirthdate = "birthdate"

	keyToken    = "token"
	keyNewIDs   = "newids"
	keyBin      = "bin"
	keyChecksum = "checksum"
	keyDeviceID = "device_id"

	keyBaseURL       = "base_url"
	keyTelemetryMode = "telemetry_mode"
)

// TelemetryMode gets the CLI profile telemetry mode
func (p Profile) TelemetryMode() telemetry.Mode {
	return telemetry.Mode(p.GetString(keyTelemetryMode))
}

// Credentials gets the CLI profile credentials
func (p Profile) Credentials() Credentials {
	return Credentials{
		Email:     p.GetString(keyEmail),
		Birthdate: p.GetString(keyBirthdate),
	}
}

// SetCredentials sets the CLI profile credentials
func (p Profile) SetCredentials(creds Credentials) {
	p.SetString(keyEmail, creds.Email)
	p.SetString(keyBirthdate, creds.Birthdate)
}

// ClearCredentials clears the CLI profile credentials
func (p Profile) ClearCredentials() {
	p.Clear(keyEmail)
	p.Clear(keyBirthdate)
}

// Session gets the CLI profile session
func (p Profile) Session() Session {
	return Session{
		Token:    p.GetString(keyToken),
		NewIDs:   p.GetString(keyNewIDs),
		Bin:      p.GetString(keyBin),
		Checksum: p.GetString(keyChecksum),
		DeviceID: p.GetString(keyDeviceID),
	}
}

// SetSession sets the CLI profile session
func (p Profile) SetSession(session Session) {
	p.SetString(keyToken, session.Token)
	p.SetString(keyNewIDs, session.NewIDs)
	p.SetString(keyBin, session.Bin)
	p.SetString(keyChecksum, session.Checksum)
	p.SetString(keyDeviceID, session.DeviceID)
}

// ClearSession clears the CLI profile session
func (p Profile) ClearSession() {
	p.Clear(keyToken)
	p.Clear(keyNewIDs)
	p.Clear(keyBin)
	p.Clear(keyChecksum)
	p.Clear(keyDeviceID)
}

// BaseURL gets the CLI profile Hype base url
func (p Profile) BaseURL() string {
	return p.GetString(keyBaseURL)
}

// SetBaseURL sets the CLI profile Hype base url
func (p Profile) SetBaseURL(baseURL string) {
	p.SetString(keyBaseURL, baseURL)
}

// SnapshotDir returns the directory the CLI writes account snapshots to
func (p Profile) SnapshotDir() string {
	return fmt.Sprintf("%s/%s", p.WorkingDirectory, "json")
}
