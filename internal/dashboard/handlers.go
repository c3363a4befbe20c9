package dashboard

import (
	"net/http"

	"github.com/hypecli/hype-cli/internal/cloud/hype"
)

type profilePage struct {
	Profile hype.Profile
}

func (server *Server) handleProfile(w http.ResponseWriter, _ *http.Request) {
	profile, profileErr := server.store.Profile()
	if profileErr != nil {
		renderError(w, "No profile snapshot found, run `hype-cli pull` first")
		return
	}

	render(w, "profile.html", profilePage{Profile: profile})
}

type movementsPage struct {
	Movements []hype.Movement
	Totals    []SubTypeTotal
	Counts    []SubTypeCount
}

func (server *Server) handleMovements(w http.ResponseWriter, _ *http.Request) {
	movements, movementsErr := server.store.Movements()
	if movementsErr != nil {
		renderError(w, "No movements snapshot found, run `hype-cli pull` first")
		return
	}

	flattened := movements.Flatten()
	render(w, "movements.html", movementsPage{
		Movements: flattened,
		Totals:    TotalsBySubType(flattened),
		Counts:    CountsBySubType(flattened),
	})
}

func render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func renderError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_ = templates.ExecuteTemplate(w, "error.html", message)
}
