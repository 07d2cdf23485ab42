package models

import "time"

// Issue represents a report raised by a user
type Issue struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"desc"`
	Location    string     `json:"location"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory,omitempty"`
	ImagePath   string     `json:"imagePath,omitempty"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	OwnerID     string     `json:"user_id,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
}

// Resolved reports whether an NGO marked the issue as resolved.
func (i Issue) Resolved() bool {
	return i.ResolvedAt != nil && !i.ResolvedAt.IsZero()
}

// Status is the label shown in issue tables.
func (i Issue) Status() string {
	if i.Resolved() {
		return "Resolved"
	}
	return "Pending"
}
