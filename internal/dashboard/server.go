// Package dashboard serves the local account dashboard from the saved
// snapshots.
package dashboard

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hypecli/hype-cli/internal/local"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultAddr is the fixed loopback address the dashboard binds to
const DefaultAddr = "127.0.0.1:8501"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(
	template.New("dashboard").Funcs(template.FuncMap{
		"capitalize": capitalize,
	}).ParseFS(templateFS, "templates/*.html"),
)

// Server is the dashboard server
type Server struct {
	store      *local.Store
	startTime  time.Time
	httpServer *http.Server
}

// NewServer creates a new dashboard server bound to the provided address
func NewServer(addr string, store *local.Store) *Server {
	server := &Server{store: store, startTime: time.Now()}
	server.httpServer = &http.Server{Addr: addr, Handler: server.Handler()}
	return server
}

// Handler returns the dashboard's root http handler
func (server *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/", server.handleProfile)
	router.Get("/movements", server.handleMovements)
	router.Get("/healthz", server.handleHealth)

	return router
}

// ListenAndServe serves the dashboard until Shutdown is called. The bind
// address is fixed: a bind failure surfaces as the returned error.
func (server *Server) ListenAndServe() error {
	return server.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts the dashboard down
func (server *Server) Shutdown(ctx context.Context) error {
	return server.httpServer.Shutdown(ctx)
}

// healthResponse is the response for the health endpoint
type healthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func (server *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "healthy",
		UptimeSeconds: int64(time.Since(server.startTime).Seconds()),
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
