package store

import (
	"os"
	"path/filepath"
	"testing"

	"uihub-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) *LocalStore {
	t.Helper()
	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return local
}

func TestLocalStore_GetMissingKey(t *testing.T) {
	local := newLocal(t)
	items := []string{"untouched"}
	ok, err := local.Get(KeyFavorites, &items)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"untouched"}, items)
}

func TestLocalStore_PutGetRoundTrip(t *testing.T) {
	local := newLocal(t)
	require.NoError(t, local.Put(KeyFavorites, []string{"1", "4"}))

	items := []string{}
	ok, err := local.Get(KeyFavorites, &items)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "4"}, items)
}

func TestLocalStore_MalformedDocument(t *testing.T) {
	dir := t.TempDir()
	local, err := NewLocalStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeySession+".json"), []byte("{not json"), 0o644))

	var session models.UserSession
	_, err = local.Get(KeySession, &session)
	require.Error(t, err)
}

func TestLocalStore_PrependComponentOrders(t *testing.T) {
	local := newLocal(t)
	require.NoError(t, local.PrependComponent(models.Component{ID: "a"}))
	require.NoError(t, local.PrependComponent(models.Component{ID: "b"}))

	items := local.Components()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
}

func TestLocalStore_RemoveComponent(t *testing.T) {
	local := newLocal(t)
	require.NoError(t, local.PrependComponent(models.Component{ID: "a"}))
	require.NoError(t, local.PrependComponent(models.Component{ID: "b"}))
	require.NoError(t, local.RemoveComponent("a"))

	items := local.Components()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)
}

func TestLocalStore_PutUserReplacesById(t *testing.T) {
	local := newLocal(t)
	require.NoError(t, local.PutUser(models.UserSession{ID: "u1", Username: "bob", Role: models.RoleUser}))
	require.NoError(t, local.PutUser(models.UserSession{ID: "u2", Username: "eve", Role: models.RoleUser}))
	require.NoError(t, local.PutUser(models.UserSession{ID: "u1", Username: "bob", Role: models.RoleModerator}))

	users := local.Users()
	require.Len(t, users, 2)
	assert.Equal(t, models.RoleModerator, users[0].Role)
	assert.Equal(t, "u2", users[1].ID)
}
