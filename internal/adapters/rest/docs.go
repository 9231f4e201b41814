package rest

import (
	"net/http"

	"greeter/internal/domain"
)

type (
	parameterDoc struct {
		Name        string `json:"name"`
		Type        string `json:"type"`
		Default     string `json:"default,omitempty"`
		Description string `json:"description"`
	}

	endpointDoc struct {
		Method      string         `json:"method"`
		Path        string         `json:"path"`
		Description string         `json:"description"`
		Parameters  []parameterDoc `json:"parameters"`
	}

	apiDocsResponse struct {
		Title       string        `json:"title"`
		Version     string        `json:"version"`
		Description string        `json:"description"`
		BaseURL     string        `json:"baseUrl"`
		Endpoints   []endpointDoc `json:"endpoints"`
		Examples    []string      `json:"examples"`
	}
)

var greetParameters = []parameterDoc{
	{Name: "name", Type: "string", Default: domain.DefaultName, Description: "Name to greet"},
	{Name: "language", Type: "string", Default: domain.DefaultLanguage, Description: "Language code"},
}

// endpoints documents every route registered in routes().
var endpoints = []endpointDoc{
	{http.MethodGet, "/", "Generate a greeting", greetParameters},
	{http.MethodGet, "/greet", "Generate a greeting (same as /)", greetParameters},
	{http.MethodGet, "/health", "Health check endpoint", []parameterDoc{}},
	{http.MethodGet, "/languages", "Get available languages", []parameterDoc{}},
	{http.MethodGet, "/languages/{code}", "Get information about a specific language", []parameterDoc{
		{Name: "code", Type: "string", Description: "Language code"},
	}},
	{http.MethodGet, "/api-docs", "This document", []parameterDoc{}},
}

func endpointPaths() []string {
	paths := make([]string, len(endpoints))
	for i, e := range endpoints {
		paths[i] = e.Path
	}
	return paths
}

func (s *Server) apiDocs(w http.ResponseWriter, r *http.Request) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	base := scheme + "://" + r.Host

	s.sendJSON(w, r, http.StatusOK, &apiDocsResponse{
		Title:       "Greeter API",
		Version:     s.version,
		Description: "A simple greeting API with multi-language support",
		BaseURL:     base,
		Endpoints:   endpoints,
		Examples: []string{
			base + "/",
			base + "/greet?name=Gopher&language=es",
			base + "/health",
			base + "/languages",
			base + "/languages/fr",
		},
	})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, r, http.StatusNotFound, &Error{
		Status:             http.StatusNotFound,
		Message:            "The requested endpoint does not exist",
		AvailableEndpoints: endpointPaths(),
	})
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodGet)
	s.sendError(w, r, http.StatusMethodNotAllowed, "method "+r.Method+" is not allowed; only GET is served")
}
