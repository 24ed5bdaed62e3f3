// internal/model/models.go
package model

import (
	"strings"
	"time"
)

// Repository is one entry of an organization's repository listing.
// Records are decoded once and never mutated afterwards.
type Repository struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	HTMLURL         string  `json:"html_url"`
	IsTemplate      bool    `json:"is_template"`
	StargazersCount int     `json:"stargazers_count"`
	UpdatedAt       string  `json:"updated_at"`
}

// Layouts accepted for UpdatedAt, most specific first.
var updatedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UpdatedTime parses UpdatedAt. The boolean is false when the value is
// missing or malformed, in which case the update time is unknown.
func (r Repository) UpdatedTime() (time.Time, bool) {
	raw := strings.TrimSpace(r.UpdatedAt)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range updatedAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// HasDescription reports whether the repository carries a non-empty description.
func (r Repository) HasDescription() bool {
	return r.Description != nil && *r.Description != ""
}
