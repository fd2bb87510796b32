package store

import (
	"context"
	"encoding/json"
	"time"

	"uihub-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

// Remote is the shared cloud store holding component and user records.
// Implementations perform plain CRUD; there are no role checks at this
// boundary, callers enforce permissions before reaching it.
type Remote interface {
	ListComponents(ctx context.Context) ([]models.Component, error)
	InsertComponent(ctx context.Context, component models.Component) error
	DeleteComponent(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]models.UserSession, error)
	UpsertUser(ctx context.Context, user models.UserSession) error
}

// PostgresRemote backs Remote with the two shared tables, ui_components
// and ui_users.
type PostgresRemote struct {
	DB *sqlx.DB
}

type componentRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Category    string `db:"category"`
	Technology  []byte `db:"technology"`
	Tags        []byte `db:"tags"`
	ImageURL    string `db:"image_url"`
	Code        []byte `db:"code"`
	Author      string `db:"author"`
	DateAdded   string `db:"date_added"`
}

func (r *PostgresRemote) ListComponents(ctx context.Context) ([]models.Component, error) {
	rows := []componentRow{}
	err := r.DB.SelectContext(ctx, &rows, `
SELECT id, name, description, category, technology, tags, image_url, code, author, date_added
FROM ui_components
ORDER BY date_added DESC
`)
	if err != nil {
		return nil, err
	}
	items := make([]models.Component, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToComponent(row))
	}
	return items, nil
}

// InsertComponent appends a record. It is deliberately an insert rather
// than an upsert: saving the same id twice produces a duplicate row, and
// the catalog aggregator deduplicates on read.
func (r *PostgresRemote) InsertComponent(ctx context.Context, component models.Component) error {
	technology, _ := json.Marshal(component.Technology)
	tags, _ := json.Marshal(component.Tags)
	code, _ := json.Marshal(component.Code)
	_, err := r.DB.ExecContext(ctx, `
INSERT INTO ui_components (id, name, description, category, technology, tags, image_url, code, author, date_added)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
`, component.ID, component.Name, component.Description, component.Category,
		technology, tags, component.ImageURL, code, component.Author, component.DateAdded)
	return err
}

func (r *PostgresRemote) DeleteComponent(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM ui_components WHERE id = $1`, id)
	return err
}

func (r *PostgresRemote) ListUsers(ctx context.Context) ([]models.UserSession, error) {
	rows := []models.UserSession{}
	err := r.DB.SelectContext(ctx, &rows, `
SELECT id, username, role, last_login, published_count
FROM ui_users
`)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRemote) UpsertUser(ctx context.Context, user models.UserSession) error {
	_, err := r.DB.ExecContext(ctx, `
INSERT INTO ui_users (id, username, role, last_login, published_count)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (id) DO UPDATE
SET username = EXCLUDED.username,
    role = EXCLUDED.role,
    last_login = EXCLUDED.last_login,
    published_count = EXCLUDED.published_count
`, user.ID, user.Username, user.Role, user.LastLogin, user.PublishedCount)
	return err
}

func rowToComponent(row componentRow) models.Component {
	technology := []string{}
	_ = json.Unmarshal(row.Technology, &technology)
	tags := []string{}
	_ = json.Unmarshal(row.Tags, &tags)
	code := models.CodeBundle{}
	_ = json.Unmarshal(row.Code, &code)
	return models.Component{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Category:    row.Category,
		Technology:  technology,
		Tags:        tags,
		ImageURL:    row.ImageURL,
		Code:        code,
		Author:      row.Author,
		DateAdded:   row.DateAdded,
	}
}

var _ Remote = (*PostgresRemote)(nil)

// Stamp formats a creation timestamp the way records store it.
func Stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
