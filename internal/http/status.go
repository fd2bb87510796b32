package httpapi

import (
	"net/http"
	"strconv"

	"uihub-backend-go/internal/models"
	"uihub-backend-go/internal/services"

	"github.com/gorilla/websocket"
)

type StatusHistoryResponse struct {
	Mode  string                  `json:"mode"`
	Items []services.StatusSample `json:"items"`
}

func (s *Server) StatusHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 120)
	if limit > 500 {
		limit = 500
	}
	WriteJSON(w, http.StatusOK, StatusHistoryResponse{
		Mode:  s.Hub.Mode(),
		Items: s.StatusHub.History(limit),
	})
}

func (s *Server) StatusSocket(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("token")
	if query == "" {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	token, claims, err := s.Tokens.ParseToken(query)
	if err != nil || !token.Valid {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	role, _ := claims["role"].(string)
	if role != models.RoleAdmin {
		WriteError(w, http.StatusForbidden, "Not allowed")
		return
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.StatusHub.Add(conn)
	defer func() {
		s.StatusHub.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	if value < 1 {
		return fallback
	}
	return value
}
