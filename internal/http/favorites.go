package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type FavoritesResponse struct {
	Items []string `json:"items"`
}

func (s *Server) ListFavorites(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, FavoritesResponse{Items: s.Hub.Favorites()})
}

func (s *Server) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	componentID := chi.URLParam(r, "componentId")
	items := s.Hub.ToggleFavorite(componentID)
	WriteJSON(w, http.StatusOK, FavoritesResponse{Items: items})
}
