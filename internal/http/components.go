package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"uihub-backend-go/internal/models"
	"uihub-backend-go/internal/services"
	"uihub-backend-go/internal/store"

	"github.com/go-chi/chi/v5"
)

type ComponentCreateRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Technology  []string          `json:"technology"`
	Tags        []string          `json:"tags"`
	ImageURL    string            `json:"imageUrl"`
	Code        models.CodeBundle `json:"code"`
}

type ComponentListResponse struct {
	Items []models.Component `json:"items"`
	Total int                `json:"total"`
	Mode  string             `json:"mode"`
}

func (s *Server) ListComponents(w http.ResponseWriter, r *http.Request) {
	s.Hub.Refresh(r.Context())
	filter := models.FilterState{
		Search:     services.CleanSearchTerm(r.URL.Query().Get("search")),
		Category:   strings.TrimSpace(r.URL.Query().Get("category")),
		Technology: strings.TrimSpace(r.URL.Query().Get("technology")),
	}
	if filter.Category == "" {
		filter.Category = models.FilterAll
	}
	if filter.Technology == "" {
		filter.Technology = models.FilterAll
	}
	items := s.Hub.Filtered(filter)
	WriteJSON(w, http.StatusOK, ComponentListResponse{Items: items, Total: len(items), Mode: s.Hub.Mode()})
}

func (s *Server) PublishComponent(w http.ResponseWriter, r *http.Request) {
	var req ComponentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	name, err := services.NormalizeRequired(req.Name, "Component name is required")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	category, err := services.NormalizeRequired(req.Category, "Category is required")
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	acting := s.actingSession(r)
	component, err := s.Hub.Publish(r.Context(), acting, models.Component{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Category:    category,
		Technology:  req.Technology,
		Tags:        req.Tags,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Code:        req.Code,
	})
	if err != nil {
		if errors.Is(err, store.ErrRemoteUnavailable) {
			WriteError(w, http.StatusBadGateway, "Error saving component. Check connection.")
			return
		}
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, component)
}

func (s *Server) DeleteComponent(w http.ResponseWriter, r *http.Request) {
	componentID := chi.URLParam(r, "componentId")
	acting := s.actingSession(r)
	if err := s.Hub.Remove(r.Context(), acting, componentID); err != nil {
		if mapServiceError(w, err) {
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ComponentCode serves one snippet as plain text, ready for a client-side
// clipboard write.
func (s *Server) ComponentCode(w http.ResponseWriter, r *http.Request) {
	componentID := chi.URLParam(r, "componentId")
	lang := chi.URLParam(r, "lang")
	for _, component := range s.Hub.Components() {
		if component.ID != componentID {
			continue
		}
		snippet, ok := component.Code.Lookup(lang)
		if !ok {
			WriteError(w, http.StatusNotFound, "No snippet for this language")
			return
		}
		WriteText(w, http.StatusOK, snippet)
		return
	}
	WriteError(w, http.StatusNotFound, "Component not found")
}
