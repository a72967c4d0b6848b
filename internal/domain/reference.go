package domain

import "context"

// Category is immutable reference data used to tag events.
// swagger:model Category
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// User is an event organiser.
// swagger:model User
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// ReferenceData holds the users and categories the board renders options from.
type ReferenceData struct {
	Users      []User
	Categories []Category
}

// HasUser reports whether id belongs to a known user.
func (r ReferenceData) HasUser(id int) bool {
	for _, u := range r.Users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// HasCategory reports whether id belongs to a known category.
func (r ReferenceData) HasCategory(id int) bool {
	for _, c := range r.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// ReferenceRepository supplies users and categories. Implementations are read-only.
type ReferenceRepository interface {
	ListUsers(ctx context.Context) ([]User, error)
	ListCategories(ctx context.Context) ([]Category, error)
}
