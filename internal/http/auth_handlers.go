package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"uihub-backend-go/internal/models"
	"uihub-backend-go/internal/services"
)

type LoginRequest struct {
	Username   string `json:"username"`
	Passphrase string `json:"passphrase"`
}

type LoginResponse struct {
	Token   string             `json:"token"`
	Session models.UserSession `json:"session"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	session, err := s.Hub.Login(r.Context(), req.Username, req.Passphrase)
	if err != nil {
		if errors.Is(err, services.ErrDenied) {
			WriteError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := s.Tokens.CreateSessionToken(session)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, LoginResponse{Token: token, Session: session})
}

// Session recovers the session in progress from the local store. A missing
// or unreadable record answers 204; the caller treats both as logged out.
func (s *Server) Session(w http.ResponseWriter, r *http.Request) {
	session, ok := s.Hub.SavedSession()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	WriteJSON(w, http.StatusOK, session)
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.Hub.ClearSession()
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
