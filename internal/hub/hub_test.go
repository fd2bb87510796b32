package hub

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"uihub-backend-go/internal/config"
	"uihub-backend-go/internal/models"
	"uihub-backend-go/internal/services"
	"uihub-backend-go/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHub(t *testing.T) *Hub {
	t.Helper()
	local, err := store.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	cfg := config.Config{
		SuperAdminUsername: "mishatrick",
		SuperAdminSecret:   "2107m",
		DemoSecret:         "apple",
	}
	return New(store.NewGateway(nil, local), cfg)
}

func TestAddCategory_RoleGating(t *testing.T) {
	tests := []struct {
		role    string
		allowed bool
	}{
		{models.RoleUser, false},
		{models.RoleModerator, true},
		{models.RoleAdmin, true},
	}
	for _, tc := range tests {
		t.Run(tc.role, func(t *testing.T) {
			h := testHub(t)
			before := h.Categories()
			acting := models.UserSession{ID: "u1", Username: "sam", Role: tc.role}
			updated, err := h.AddCategory(acting, "Sidebars")
			if !tc.allowed {
				require.Error(t, err)
				var svcErr services.ServiceError
				require.ErrorAs(t, err, &svcErr)
				assert.Equal(t, 403, svcErr.Status)
				assert.Equal(t, before, h.Categories())
				return
			}
			require.NoError(t, err)
			assert.Contains(t, updated, "Sidebars")
			assert.Contains(t, h.Categories(), "Sidebars")
		})
	}
}

func TestAddCategory_DuplicateIsNoOp(t *testing.T) {
	h := testHub(t)
	acting := models.UserSession{ID: "u1", Username: "sam", Role: models.RoleModerator}
	first, err := h.AddCategory(acting, "Sidebars")
	require.NoError(t, err)
	second, err := h.AddCategory(acting, " Sidebars ")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAddCategory_PersistsAcrossHubs(t *testing.T) {
	dir := t.TempDir()
	local, err := store.NewLocalStore(dir)
	require.NoError(t, err)
	cfg := config.Config{SuperAdminUsername: "mishatrick", SuperAdminSecret: "2107m", DemoSecret: "apple"}
	h := New(store.NewGateway(nil, local), cfg)
	_, err = h.AddCategory(models.UserSession{ID: "u1", Role: models.RoleAdmin}, "Sidebars")
	require.NoError(t, err)

	reopened, err := store.NewLocalStore(dir)
	require.NoError(t, err)
	again := New(store.NewGateway(nil, reopened), cfg)
	assert.Contains(t, again.Categories(), "Sidebars")
}

func TestLogin_RecordsSession(t *testing.T) {
	h := testHub(t)
	session, err := h.Login(context.Background(), "casey", "apple")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, session.Role)

	saved, ok := h.SavedSession()
	require.True(t, ok)
	assert.Equal(t, session.ID, saved.ID)

	h.ClearSession()
	_, ok = h.SavedSession()
	assert.False(t, ok)
}

func TestSavedSession_MalformedRecordDiscarded(t *testing.T) {
	dir := t.TempDir()
	local, err := store.NewLocalStore(dir)
	require.NoError(t, err)
	path := filepath.Join(dir, store.KeySession+".json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	cfg := config.Config{SuperAdminUsername: "mishatrick", SuperAdminSecret: "2107m", DemoSecret: "apple"}
	h := New(store.NewGateway(nil, local), cfg)
	_, ok := h.SavedSession()
	assert.False(t, ok)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPublish_DegradedSaveSurfacesAndLands(t *testing.T) {
	h := testHub(t)
	acting, err := h.Login(context.Background(), "casey", "apple")
	require.NoError(t, err)

	_, err = h.Publish(context.Background(), acting, models.Component{
		Name:     "Glass Card",
		Category: "Cards",
		Tags:     []string{" glass ", "glass", "card"},
	})
	require.ErrorIs(t, err, store.ErrRemoteUnavailable)

	// The fallback copy was written despite the surfaced error.
	h.Refresh(context.Background())
	var found *models.Component
	for _, component := range h.Components() {
		if component.Name == "Glass Card" {
			found = &component
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "casey", found.Author)
	assert.Equal(t, []string{"glass", "card"}, found.Tags)
	assert.NotEmpty(t, found.ID)
	assert.NotEmpty(t, found.DateAdded)

	// The published count is only bumped on a clean save.
	saved, ok := h.SavedSession()
	require.True(t, ok)
	assert.Equal(t, 0, saved.PublishedCount)
}

func TestRemove_Gating(t *testing.T) {
	h := testHub(t)
	ctx := context.Background()
	h.Refresh(ctx)
	seeded := h.Components()
	require.NotEmpty(t, seeded)
	target := seeded[0]

	stranger := models.UserSession{ID: "u9", Username: "stranger", Role: models.RoleUser}
	err := h.Remove(ctx, stranger, target.ID)
	var svcErr services.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 403, svcErr.Status)

	author := models.UserSession{ID: "u2", Username: target.Author, Role: models.RoleUser}
	require.NoError(t, h.Remove(ctx, author, target.ID))

	err = h.Remove(ctx, stranger, "no-such-id")
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 404, svcErr.Status)
}

func TestRemove_AdminMayRemoveAnyComponent(t *testing.T) {
	h := testHub(t)
	ctx := context.Background()
	h.Refresh(ctx)
	target := h.Components()[0]
	admin := models.UserSession{ID: "a1", Username: "mishatrick", Role: models.RoleAdmin}
	require.NoError(t, h.Remove(ctx, admin, target.ID))
}

func TestSetRole(t *testing.T) {
	h := testHub(t)
	ctx := context.Background()
	session, err := h.Login(ctx, "casey", "apple")
	require.NoError(t, err)

	admin := models.UserSession{ID: "a1", Username: "mishatrick", Role: models.RoleAdmin}

	_, err = h.SetRole(ctx, session, session.ID, models.RoleModerator)
	var svcErr services.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 403, svcErr.Status)

	_, err = h.SetRole(ctx, admin, session.ID, "Owner")
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, 400, svcErr.Status)

	updated, err := h.SetRole(ctx, admin, session.ID, models.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, models.RoleModerator, updated.Role)

	// The user list refetch and the saved session both carry the new role.
	for _, user := range h.Users() {
		if user.ID == session.ID {
			assert.Equal(t, models.RoleModerator, user.Role)
		}
	}
	saved, ok := h.SavedSession()
	require.True(t, ok)
	assert.Equal(t, models.RoleModerator, saved.Role)
}

func TestToggleFavorite(t *testing.T) {
	h := testHub(t)
	assert.Empty(t, h.Favorites())

	after := h.ToggleFavorite("3")
	assert.Equal(t, []string{"3"}, after)
	after = h.ToggleFavorite("5")
	assert.Equal(t, []string{"3", "5"}, after)
	after = h.ToggleFavorite("3")
	assert.Equal(t, []string{"5"}, after)
	assert.Equal(t, []string{"5"}, h.Favorites())
}
