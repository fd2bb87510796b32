package httpapi

import (
	"encoding/json"
	"net/http"

	"uihub-backend-go/internal/models"

	"github.com/go-chi/chi/v5"
)

type UserListResponse struct {
	Items []models.UserSession `json:"items"`
	Total int                  `json:"total"`
}

type RoleUpdateRequest struct {
	Role string `json:"role"`
}

func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	s.Hub.Refresh(r.Context())
	items := s.Hub.Users()
	WriteJSON(w, http.StatusOK, UserListResponse{Items: items, Total: len(items)})
}

func (s *Server) SetUserRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	var req RoleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	acting := s.actingSession(r)
	updated, err := s.Hub.SetRole(r.Context(), acting, userID, req.Role)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, updated)
}
