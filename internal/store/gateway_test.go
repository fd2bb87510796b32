package store

import (
	"context"
	"errors"
	"testing"

	"uihub-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenRemote simulates a reachable endpoint whose every call fails.
type brokenRemote struct{}

var errDown = errors.New("connection refused")

func (brokenRemote) ListComponents(context.Context) ([]models.Component, error) {
	return nil, errDown
}
func (brokenRemote) InsertComponent(context.Context, models.Component) error { return errDown }
func (brokenRemote) DeleteComponent(context.Context, string) error           { return errDown }
func (brokenRemote) ListUsers(context.Context) ([]models.UserSession, error) { return nil, errDown }
func (brokenRemote) UpsertUser(context.Context, models.UserSession) error    { return errDown }

func TestGateway_FallbackRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name   string
		remote Remote
	}{
		{"no remote configured", nil},
		{"remote failing", brokenRemote{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			local := newLocal(t)
			gw := NewGateway(tc.remote, local)

			component := models.Component{ID: "c1", Name: "Hero", Category: "Hero Sections"}
			err := gw.SaveComponent(ctx, component)
			require.ErrorIs(t, err, ErrRemoteUnavailable, "degraded saves are surfaced")

			items := gw.Components(ctx)
			require.Len(t, items, 1)
			assert.Equal(t, "c1", items[0].ID)

			gw.DeleteComponent(ctx, "c1")
			assert.Empty(t, gw.Components(ctx))
		})
	}
}

func TestGateway_ReadFailuresAreSilent(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(brokenRemote{}, newLocal(t))

	// A downed remote and an empty store are indistinguishable to callers.
	assert.Empty(t, gw.Components(ctx))
	assert.Empty(t, gw.Users(ctx))
	assert.Equal(t, ModeFallback, gw.Mode())
}

func TestGateway_SaveUserSwallowed(t *testing.T) {
	ctx := context.Background()
	local := newLocal(t)
	gw := NewGateway(brokenRemote{}, local)

	gw.SaveUser(ctx, models.UserSession{ID: "u1", Username: "bob", Role: models.RoleUser})
	gw.SaveUser(ctx, models.UserSession{ID: "u1", Username: "bob", Role: models.RoleAdmin})

	users := gw.Users(ctx)
	require.Len(t, users, 1, "fallback upsert replaces by id")
	assert.Equal(t, models.RoleAdmin, users[0].Role)
}

func TestGateway_DegradedSaveStillLands(t *testing.T) {
	ctx := context.Background()
	local := newLocal(t)
	gw := NewGateway(brokenRemote{}, local)

	require.Error(t, gw.SaveComponent(ctx, models.Component{ID: "a"}))
	require.Error(t, gw.SaveComponent(ctx, models.Component{ID: "b"}))

	items := gw.Components(ctx)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID, "most recent degraded save reads first")
}

func TestGateway_ModeStartsByRemotePresence(t *testing.T) {
	assert.Equal(t, ModeFallback, NewGateway(nil, newLocal(t)).Mode())
	assert.Equal(t, ModeCloud, NewGateway(brokenRemote{}, newLocal(t)).Mode())
}
