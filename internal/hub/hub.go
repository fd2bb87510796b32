// Package hub holds the shared application state of the workspace: the
// cloud component cache, the user list, and the device-local category
// list. All mutation is funneled through named action methods guarded by
// one mutex, giving a single logical thread of control; consistency is
// fetch-after-write with whole-list refetch, last write wins.
package hub

import (
	"context"
	"log"
	"sync"
	"time"

	"uihub-backend-go/internal/catalog"
	"uihub-backend-go/internal/config"
	"uihub-backend-go/internal/models"
	"uihub-backend-go/internal/services"
	"uihub-backend-go/internal/store"

	"github.com/google/uuid"
)

type Hub struct {
	mu  sync.Mutex
	gw  *store.Gateway
	cfg config.Config

	cloudComponents []models.Component
	users           []models.UserSession
	categories      []string
}

func New(gw *store.Gateway, cfg config.Config) *Hub {
	h := &Hub{gw: gw, cfg: cfg}
	h.categories = append([]string{}, models.DefaultCategories...)
	saved := []string{}
	if ok, err := gw.Local().Get(store.KeyCategories, &saved); err == nil && ok {
		h.categories = saved
	}
	return h
}

// Refresh re-synchronizes the component and user caches from the gateway.
// Gateway reads never fail; a downed remote yields the fallback copies.
func (h *Hub) Refresh(ctx context.Context) {
	components := h.gw.Components(ctx)
	users := h.gw.Users(ctx)
	h.mu.Lock()
	h.cloudComponents = components
	h.users = users
	h.mu.Unlock()
}

// Components returns the aggregated catalog: cloud cache merged with the
// bundled seed set, deduplicated by id with cloud records winning.
func (h *Hub) Components() []models.Component {
	h.mu.Lock()
	cloud := append([]models.Component{}, h.cloudComponents...)
	h.mu.Unlock()
	return catalog.Merge(cloud)
}

// Filtered applies the browsing filter to the aggregated catalog.
func (h *Hub) Filtered(filter models.FilterState) []models.Component {
	return catalog.Apply(h.Components(), filter)
}

func (h *Hub) Users() []models.UserSession {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.UserSession{}, h.users...)
}

func (h *Hub) Categories() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string{}, h.categories...)
}

// Login authenticates, refetches the user list, and records the session in
// progress in the local store.
func (h *Hub) Login(ctx context.Context, username, passphrase string) (models.UserSession, error) {
	session, err := services.Authenticate(ctx, h.gw, h.cfg, username, passphrase)
	if err != nil {
		return models.UserSession{}, err
	}
	users := h.gw.Users(ctx)
	h.mu.Lock()
	h.users = users
	h.mu.Unlock()
	if err := h.gw.Local().Put(store.KeySession, session); err != nil {
		log.Printf("hub: session record not persisted: %v", err)
	}
	return session, nil
}

// SavedSession recovers the session in progress. Malformed stored JSON is
// discarded and treated as no session.
func (h *Hub) SavedSession() (models.UserSession, bool) {
	var session models.UserSession
	ok, err := h.gw.Local().Get(store.KeySession, &session)
	if err != nil {
		_ = h.gw.Local().Delete(store.KeySession)
		return models.UserSession{}, false
	}
	if !ok || session.ID == "" {
		return models.UserSession{}, false
	}
	return session, true
}

func (h *Hub) ClearSession() {
	_ = h.gw.Local().Delete(store.KeySession)
}

// Publish assigns identity and authorship to a new component and appends
// it through the gateway. A degraded save is reported to the caller (the
// one surfaced write failure in the gateway contract); on success the
// acting session's published count is bumped and both caches refetched.
func (h *Hub) Publish(ctx context.Context, acting models.UserSession, component models.Component) (models.Component, error) {
	component.ID = uuid.NewString()
	component.Author = acting.Username
	component.DateAdded = store.Stamp(time.Now())
	component.Tags = services.CleanTags(component.Tags)
	if err := h.gw.SaveComponent(ctx, component); err != nil {
		return models.Component{}, err
	}

	acting.PublishedCount++
	h.gw.SaveUser(ctx, acting)
	if saved, ok := h.SavedSession(); ok && saved.ID == acting.ID {
		_ = h.gw.Local().Put(store.KeySession, acting)
	}
	h.Refresh(ctx)
	return component, nil
}

// Remove deletes a component. Allowed for Admin sessions and for the
// component's own author; this check is the only enforcement, the gateway
// performs none.
func (h *Hub) Remove(ctx context.Context, acting models.UserSession, id string) error {
	var target *models.Component
	for _, component := range h.Components() {
		if component.ID == id {
			target = &component
			break
		}
	}
	if target == nil {
		return services.ErrNotFound("Component not found")
	}
	if acting.Role != models.RoleAdmin && target.Author != acting.Username {
		return services.ErrForbidden("Not allowed")
	}
	h.gw.DeleteComponent(ctx, id)
	h.Refresh(ctx)
	return nil
}

// SetRole changes a user's role. Admin only.
func (h *Hub) SetRole(ctx context.Context, acting models.UserSession, userID, role string) (models.UserSession, error) {
	if acting.Role != models.RoleAdmin {
		return models.UserSession{}, services.ErrForbidden("Not allowed")
	}
	if !models.ValidRole(role) {
		return models.UserSession{}, services.ErrBadRequest("Unknown role")
	}
	var updated models.UserSession
	found := false
	for _, user := range h.Users() {
		if user.ID == userID {
			updated = user
			updated.Role = role
			found = true
			break
		}
	}
	if !found {
		return models.UserSession{}, services.ErrNotFound("User not found")
	}
	h.gw.SaveUser(ctx, updated)
	users := h.gw.Users(ctx)
	h.mu.Lock()
	h.users = users
	h.mu.Unlock()
	if saved, ok := h.SavedSession(); ok && saved.ID == userID {
		saved.Role = role
		_ = h.gw.Local().Put(store.KeySession, saved)
	}
	return updated, nil
}

// AddCategory extends the device-local category list. Moderator or Admin
// only; an already-present name is a no-op. The list never reaches the
// remote store, so additions are per device.
func (h *Hub) AddCategory(acting models.UserSession, name string) ([]string, error) {
	if acting.Role != models.RoleModerator && acting.Role != models.RoleAdmin {
		return nil, services.ErrForbidden("Not allowed")
	}
	label, err := services.NormalizeRequired(name, "Category name is required")
	if err != nil {
		return nil, services.ErrBadRequest(err.Error())
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, existing := range h.categories {
		if existing == label {
			return append([]string{}, h.categories...), nil
		}
	}
	h.categories = append(h.categories, label)
	if err := h.gw.Local().Put(store.KeyCategories, h.categories); err != nil {
		log.Printf("hub: category list not persisted: %v", err)
	}
	return append([]string{}, h.categories...), nil
}

// Favorites returns the device-local favorite component ids.
func (h *Hub) Favorites() []string {
	items := []string{}
	if _, err := h.gw.Local().Get(store.KeyFavorites, &items); err != nil {
		return []string{}
	}
	return items
}

// ToggleFavorite adds the id when absent and removes it when present.
func (h *Hub) ToggleFavorite(id string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	items := h.Favorites()
	kept := make([]string, 0, len(items))
	removed := false
	for _, existing := range items {
		if existing == id {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		kept = append(kept, id)
	}
	if err := h.gw.Local().Put(store.KeyFavorites, kept); err != nil {
		log.Printf("hub: favorites not persisted: %v", err)
	}
	return kept
}

// Mode reports the gateway's last observed connectivity for the status
// endpoints.
func (h *Hub) Mode() string {
	return h.gw.Mode()
}
