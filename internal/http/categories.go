package httpapi

import (
	"encoding/json"
	"net/http"
)

type CategoryCreateRequest struct {
	Name string `json:"name"`
}

type CategoryListResponse struct {
	Items []string `json:"items"`
}

func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, CategoryListResponse{Items: s.Hub.Categories()})
}

func (s *Server) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	acting := s.actingSession(r)
	items, err := s.Hub.AddCategory(acting, req.Name)
	if err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, CategoryListResponse{Items: items})
}
