package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sakuramilk/sc02c-liblights/lights"
	log "github.com/sirupsen/logrus"
)

func (s *Server) handleBacklight(w http.ResponseWriter, req *http.Request) {
	s.handleLight(w, req, lights.Backlight)
}

func (s *Server) handleButtons(w http.ResponseWriter, req *http.Request) {
	s.handleLight(w, req, lights.Buttons)
}

func (s *Server) handleNotifications(w http.ResponseWriter, req *http.Request) {
	s.handleLight(w, req, lights.Notifications)
}

func (s *Server) handleLight(w http.ResponseWriter, req *http.Request, name string) {
	var (
		state  lights.State
		status int
	)

	switch req.Method {
	case http.MethodPost:
		if err := json.NewDecoder(req.Body).Decode(&state); err != nil {
			http.Error(w, "invalid request: "+err.Error(), http.StatusBadRequest)
			return
		}
		status = http.StatusCreated
	case http.MethodDelete:
		// zero color: light off
		status = http.StatusNoContent
	default:
		http.Error(w, "invalid method: "+req.Method, http.StatusMethodNotAllowed)
		return
	}

	if err := s.devices[name].Set(state); err != nil {
		log.WithError(err).WithField("device", name).Warning("failed to set light state")
		http.Error(w, "failed to set light state: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	log.WithFields(log.Fields{
		"device": name,
		"color":  fmt.Sprintf("0x%08x", state.Color),
	}).Debug("/" + name)
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	body, _ := json.MarshalIndent(s.Module.Status(), "", "\t")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
	log.Debug("/status")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
