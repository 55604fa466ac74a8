package domain

import "time"

// App is an app listing row. IsFavorite comes from the store, IsPublic is set per request
// from the public app ID set.
type App struct {
	ID              string     `db:"id" json:"id"`
	SystemID        string     `db:"system_id" json:"system_id"`
	Name            string     `db:"name" json:"name"`
	Description     string     `db:"description" json:"description"`
	WikiURL         *string    `db:"wiki_url" json:"wiki_url"`
	IntegrationDate *time.Time `db:"integration_date" json:"integration_date"`
	EditedDate      *time.Time `db:"edited_date" json:"edited_date"`
	Username        string     `db:"username" json:"username"`
	JobCount        int        `db:"job_count" json:"job_count,omitempty"`
	IsFavorite      bool       `db:"is_favorite" json:"is_favorite"`
	IsPublic        bool       `db:"-" json:"is_public"`
}
