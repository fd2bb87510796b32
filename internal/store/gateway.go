package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"uihub-backend-go/internal/models"
)

// ErrRemoteUnavailable signals that a write reached the fallback store
// instead of the remote one. Callers decide whether to surface it: the
// component publish flow notifies the user, user upserts and deletes
// swallow it.
var ErrRemoteUnavailable = errors.New("remote store unavailable")

// Gateway modes reported to the status hub.
const (
	ModeCloud    = "cloud"
	ModeFallback = "fallback"
)

// Gateway performs reads and writes against the authoritative remote store
// and degrades to the local store when the remote fails. There is no
// reconciliation between the two once connectivity resumes; the copies may
// diverge and that divergence is accepted.
//
// Read failures never propagate: callers cannot distinguish an empty store
// from a downed backend. Write failures propagate only for component
// saves. This asymmetry is intentional and matches the observed behavior
// of the workspace; unify it only together with the calling layers.
type Gateway struct {
	remote Remote // nil when no remote connection was established
	local  *LocalStore

	mu   sync.Mutex
	mode string
}

func NewGateway(remote Remote, local *LocalStore) *Gateway {
	mode := ModeCloud
	if remote == nil {
		mode = ModeFallback
	}
	return &Gateway{remote: remote, local: local, mode: mode}
}

// Components lists component records, newest first when the remote
// responds, insertion order from the fallback copy otherwise.
func (g *Gateway) Components(ctx context.Context) []models.Component {
	if g.remote != nil {
		items, err := g.remote.ListComponents(ctx)
		if err == nil {
			g.setMode(ModeCloud)
			return items
		}
		log.Printf("gateway: component list falling back to local copy: %v", err)
	}
	g.setMode(ModeFallback)
	return g.local.Components()
}

// Users lists user session records, falling back like Components.
func (g *Gateway) Users(ctx context.Context) []models.UserSession {
	if g.remote != nil {
		items, err := g.remote.ListUsers(ctx)
		if err == nil {
			g.setMode(ModeCloud)
			return items
		}
		log.Printf("gateway: user list falling back to local copy: %v", err)
	}
	g.setMode(ModeFallback)
	return g.local.Users()
}

// SaveComponent appends the record to the remote store. On remote failure
// it prepends to the fallback list and reports ErrRemoteUnavailable so the
// caller can notify the user that the save did not reach the cloud.
func (g *Gateway) SaveComponent(ctx context.Context, component models.Component) error {
	if g.remote != nil {
		if err := g.remote.InsertComponent(ctx, component); err == nil {
			g.setMode(ModeCloud)
			return nil
		} else {
			log.Printf("gateway: component save degraded to local copy: %v", err)
		}
	}
	g.setMode(ModeFallback)
	if err := g.local.PrependComponent(component); err != nil {
		return fmt.Errorf("%w: fallback write failed: %v", ErrRemoteUnavailable, err)
	}
	return ErrRemoteUnavailable
}

// SaveUser upserts the record by id. Remote failures degrade to a local
// replace-or-append and are swallowed; the caller never sees them.
func (g *Gateway) SaveUser(ctx context.Context, user models.UserSession) {
	if g.remote != nil {
		if err := g.remote.UpsertUser(ctx, user); err == nil {
			g.setMode(ModeCloud)
			return
		} else {
			log.Printf("gateway: user save degraded to local copy: %v", err)
		}
	}
	g.setMode(ModeFallback)
	if err := g.local.PutUser(user); err != nil {
		log.Printf("gateway: fallback user write failed: %v", err)
	}
}

// DeleteComponent removes the record by id, from the fallback list when
// the remote fails. Failures are swallowed. There is no user delete.
func (g *Gateway) DeleteComponent(ctx context.Context, id string) {
	if g.remote != nil {
		if err := g.remote.DeleteComponent(ctx, id); err == nil {
			g.setMode(ModeCloud)
			return
		} else {
			log.Printf("gateway: component delete degraded to local copy: %v", err)
		}
	}
	g.setMode(ModeFallback)
	if err := g.local.RemoveComponent(id); err != nil {
		log.Printf("gateway: fallback component delete failed: %v", err)
	}
}

// Local exposes the device-local store for state that never lives in the
// remote one (categories, favorites, session-in-progress).
func (g *Gateway) Local() *LocalStore {
	return g.local
}

// Mode reports the last observed connectivity: ModeCloud after a remote
// operation succeeded, ModeFallback after one failed or when no remote is
// configured.
func (g *Gateway) Mode() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mode
}

func (g *Gateway) setMode(mode string) {
	g.mu.Lock()
	g.mode = mode
	g.mu.Unlock()
}
