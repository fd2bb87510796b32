package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"uihub-backend-go/internal/models"
)

// Reserved keys in the device-local durable store. They mirror the keys the
// workspace has always used, so an existing fallback directory stays
// readable.
const (
	KeyComponents = "ui_hub_global_components"
	KeyUsers      = "ui_hub_global_users"
	KeyCategories = "ui_hub_categories"
	KeyFavorites  = "ui_hub_favorites"
	KeySession    = "ui_hub_session"
)

// LocalStore is a key-value store of JSON documents, one file per key. It
// serves two purposes: the standby copy of component/user lists when the
// remote store is unreachable, and the durable home of device-local state
// (categories, favorites, session-in-progress).
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// Get unmarshals the value stored under key into out. A missing key is not
// an error; out is left untouched and ok is false.
func (s *LocalStore) Get(key string, out interface{}) (bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *LocalStore) Put(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *LocalStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Components returns the fallback component list. Read or parse failures
// degrade to an empty list; the fallback copy has no defined order beyond
// insertion order.
func (s *LocalStore) Components() []models.Component {
	items := []models.Component{}
	if _, err := s.Get(KeyComponents, &items); err != nil {
		return []models.Component{}
	}
	return items
}

// PrependComponent puts a newly saved record at the head of the fallback
// list, so the most recent save shows first on re-read.
func (s *LocalStore) PrependComponent(component models.Component) error {
	items := s.Components()
	items = append([]models.Component{component}, items...)
	return s.Put(KeyComponents, items)
}

func (s *LocalStore) RemoveComponent(id string) error {
	items := s.Components()
	kept := make([]models.Component, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.Put(KeyComponents, kept)
}

// Users returns the fallback user list, empty on any failure.
func (s *LocalStore) Users() []models.UserSession {
	items := []models.UserSession{}
	if _, err := s.Get(KeyUsers, &items); err != nil {
		return []models.UserSession{}
	}
	return items
}

// PutUser replaces the record with a matching id, or appends when none
// matches.
func (s *LocalStore) PutUser(user models.UserSession) error {
	items := s.Users()
	replaced := false
	for i := range items {
		if items[i].ID == user.ID {
			items[i] = user
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, user)
	}
	return s.Put(KeyUsers, items)
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
