package catalog

import (
	"testing"

	"uihub-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func component(id, name, description, category string, tags ...string) models.Component {
	return models.Component{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		Tags:        tags,
	}
}

func TestMerge_RemoteShadowsSeed(t *testing.T) {
	remote := []models.Component{
		component("1", "Cloud Header", "replaces the seed entry", "Headers"),
		component("x1", "Cloud Only", "", "Cards"),
	}

	merged := Merge(remote)

	ids := map[string]int{}
	for _, item := range merged {
		ids[item.ID]++
	}
	for id, count := range ids {
		require.Equalf(t, 1, count, "id %q appears %d times", id, count)
	}
	require.Len(t, merged, len(Seed)+1)

	// The remote record with the shared id wins over the seed entry.
	for _, item := range merged {
		if item.ID == "1" {
			assert.Equal(t, "Cloud Header", item.Name)
		}
	}
	// Remote records come first, in their given order.
	assert.Equal(t, "1", merged[0].ID)
	assert.Equal(t, "x1", merged[1].ID)
}

func TestMerge_EmptyRemoteYieldsSeed(t *testing.T) {
	merged := Merge(nil)
	require.Len(t, merged, len(Seed))
	assert.Equal(t, Seed[0].ID, merged[0].ID)
}

func TestApply_Search(t *testing.T) {
	components := []models.Component{
		component("a", "Modern Header", "sticky navigation bar", "Headers", "sticky", "blur"),
		component("b", "Pricing Table", "three tier pricing", "Pricing", "dark-mode"),
		component("c", "Profile Card", "user card with avatar", "Cards", "minimal"),
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"empty query matches all", "", []string{"a", "b", "c"}},
		{"matches name case-insensitively", "HEADER", []string{"a"}},
		{"matches description", "three tier", []string{"b"}},
		{"matches a tag", "blur", []string{"a"}},
		{"partial tag match", "dark", []string{"b"}},
		{"no match", "carousel", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Apply(components, models.FilterState{Search: tc.search, Category: models.FilterAll, Technology: models.FilterAll})
			ids := []string{}
			for _, item := range got {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestApply_Category(t *testing.T) {
	components := []models.Component{
		component("a", "One", "", "Pricing"),
		component("b", "Two", "", "pricing"),
		component("c", "Three", "", "Cards"),
	}

	all := Apply(components, models.FilterState{Category: models.FilterAll, Technology: models.FilterAll})
	require.Len(t, all, 3)

	// Category comparison is exact and case-sensitive.
	pricing := Apply(components, models.FilterState{Category: "Pricing", Technology: models.FilterAll})
	require.Len(t, pricing, 1)
	assert.Equal(t, "a", pricing[0].ID)
}

func TestApply_TechnologyIsNotAPredicate(t *testing.T) {
	components := []models.Component{
		{ID: "a", Name: "One", Category: "Cards", Technology: []string{"React"}},
		{ID: "b", Name: "Two", Category: "Cards", Technology: []string{"Plain CSS"}},
	}
	got := Apply(components, models.FilterState{Category: models.FilterAll, Technology: "React"})
	assert.Len(t, got, 2, "technology filter has always passed everything")
}

func TestApply_PureAndIdempotent(t *testing.T) {
	components := []models.Component{
		component("a", "Header", "", "Headers", "sticky"),
		component("b", "Footer", "", "Footers", "minimal"),
	}
	filter := models.FilterState{Search: "minimal", Category: models.FilterAll, Technology: models.FilterAll}

	first := Apply(components, filter)
	second := Apply(components, filter)
	assert.Equal(t, first, second)

	// Input order and content are untouched.
	assert.Equal(t, "a", components[0].ID)
	assert.Equal(t, "b", components[1].ID)
}
