package login

const (
	flagEmail      = "email"
	flagEmailShort = "m"
	flagEmailUsage = "specify the email address of your Hype account"

	flagBirthdate      = "birthdate"
	flagBirthdateShort = "b"
	flagBirthdateUsage = "specify your birthdate, in yyyy-mm-dd form"
)
