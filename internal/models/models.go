package models

import "strings"

// Role levels for a workspace session. Stored as plain strings in both the
// remote and the fallback store.
const (
	RoleUser      = "User"
	RoleModerator = "Moderator"
	RoleAdmin     = "Admin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// CodeBundle holds the per-language source snippets of a component. Every
// key is optional; an empty bundle is legal.
type CodeBundle struct {
	HTML       *string `json:"html,omitempty"`
	CSS        *string `json:"css,omitempty"`
	JavaScript *string `json:"javascript,omitempty"`
	React      *string `json:"react,omitempty"`
}

// Lookup returns the snippet for a language label, matching the JSON key
// names case-insensitively.
func (c CodeBundle) Lookup(lang string) (string, bool) {
	var snippet *string
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "html":
		snippet = c.HTML
	case "css":
		snippet = c.CSS
	case "javascript":
		snippet = c.JavaScript
	case "react":
		snippet = c.React
	}
	if snippet == nil {
		return "", false
	}
	return *snippet, true
}

// Component is a cataloged UI design snippet. The id is assigned once at
// creation and never reused; the stores do not enforce uniqueness, the
// catalog aggregator deduplicates on read.
type Component struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Technology  []string   `json:"technology"`
	Tags        []string   `json:"tags"`
	ImageURL    string     `json:"imageUrl"`
	Code        CodeBundle `json:"code"`
	Author      string     `json:"author"`
	DateAdded   string     `json:"dateAdded"`
}

// UserSession is the authenticated identity of a workspace user. Records
// are created on first login and updated afterwards; there is no delete.
type UserSession struct {
	ID             string `json:"id" db:"id"`
	Username       string `json:"username" db:"username"`
	Role           string `json:"role" db:"role"`
	LastLogin      string `json:"lastLogin" db:"last_login"`
	PublishedCount int    `json:"publishedCount" db:"published_count"`
}

// FilterAll is the sentinel for an unselected category or technology.
const FilterAll = "All"

// FilterState is the transient browsing filter. It is never persisted.
type FilterState struct {
	Search     string `json:"search"`
	Category   string `json:"category"`
	Technology string `json:"technology"`
}

// DefaultCategories seeds the per-device category list.
var DefaultCategories = []string{
	"Headers", "Footers", "Hero Sections", "Forms",
	"Buttons", "Cards", "Navigation", "Pricing",
	"Team", "Testimonials",
}
