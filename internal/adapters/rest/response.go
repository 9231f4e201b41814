package rest

import (
	"encoding/json"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// Error is the body of every non-2xx response.
type Error struct {
	Status             int      `json:"status"`
	Message            string   `json:"message"`
	AvailableEndpoints []string `json:"available_endpoints,omitempty"`
}

func (s *Server) sendJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		s.logger.Error("failed to write response",
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.String("request_id", r.Header.Get(headerRequestID)),
			zap.Error(err),
		)
	}
}

func (s *Server) sendError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.sendJSON(w, r, status, &Error{
		Status:  status,
		Message: message,
	})
}

// queryOr returns the first value of key, or def when the parameter is absent.
// A present but empty parameter is kept as the empty string.
func queryOr(q url.Values, key, def string) string {
	if v, ok := q[key]; ok && len(v) > 0 {
		return v[0]
	}
	return def
}
