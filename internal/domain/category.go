package domain

import "time"

// Category is a flat catalog record. A nil ParentID marks a top-level
// category; otherwise the record is a subcategory of the record whose ID
// matches. The catalog is at most two levels deep.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	ParentID  *string   `json:"parentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CategoryNode is a Category with its resolved children.
type CategoryNode struct {
	Category
	Subcategories []*CategoryNode `json:"subcategories"`
}
