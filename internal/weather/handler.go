package weather

import (
	"encoding/json"
	"fmt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"io"
	"net/http"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Service) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/weather", s.WeatherHandler)
	return r
}

func (s *Service) WeatherHandler(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")

	snapshot := s.Lookup(r.Context(), location)
	if snapshot == nil {
		s.writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error: fmt.Sprintf("Unable to fetch weather data for '%v'.", EffectiveLocation(location)),
		})
		return
	}
	s.writeJSON(w, http.StatusOK, snapshot)
}

func (s *Service) writeJSON(w http.ResponseWriter, code int, body interface{}) {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		s.Logger.Errorw("Error marshalling response: "+err.Error(), "action", "writeJSON")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "Internal server error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(bodyBytes)
}
