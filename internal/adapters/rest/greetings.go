package rest

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"greeter/internal/domain"
)

// uptimePlaceholder is reported by /health; uptime is not measured.
const uptimePlaceholder = "N/A"

type (
	greetingResponse struct {
		Message   string `json:"message"`
		Name      string `json:"name"`
		Language  string `json:"language"`
		Timestamp string `json:"timestamp"`
		Server    string `json:"server"`
	}

	healthResponse struct {
		Status  string `json:"status"`
		Version string `json:"version"`
		Uptime  string `json:"uptime"`
	}

	languageResponse struct {
		Language   string `json:"language"`
		Name       string `json:"name"`
		NativeName string `json:"native_name"`
		Template   string `json:"template"`
		Example    string `json:"example"`
	}
)

func (s *Server) greet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	g := s.greetings.Greet(
		queryOr(q, "name", domain.DefaultName),
		queryOr(q, "language", domain.DefaultLanguage),
	)
	s.sendJSON(w, r, http.StatusOK, &greetingResponse{
		Message:   g.Message,
		Name:      g.Name,
		Language:  g.Language,
		Timestamp: g.Timestamp,
		Server:    s.serverName,
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, r, http.StatusOK, &healthResponse{
		Status:  "healthy",
		Version: s.version,
		Uptime:  uptimePlaceholder,
	})
}

func (s *Server) languages(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, r, http.StatusOK, s.greetings.Languages())
}

func (s *Server) language(w http.ResponseWriter, r *http.Request) {
	info, err := s.greetings.Language(mux.Vars(r)["code"])
	if errors.Is(err, domain.ErrLanguageNotSupported) {
		s.sendError(w, r, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		s.sendError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.sendJSON(w, r, http.StatusOK, &languageResponse{
		Language:   info.Code,
		Name:       info.Name,
		NativeName: info.NativeName,
		Template:   info.Template,
		Example:    info.Example,
	})
}
