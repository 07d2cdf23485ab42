package models

import "time"

// Post is a community update published by an NGO.
type Post struct {
	ID        string    `json:"_id"`
	NGOID     string    `json:"ngo_id"`
	NGOName   string    `json:"NGOname"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImagePath string    `json:"imagePath,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnedBy reports whether the post belongs to the identity.
func (p Post) OwnedBy(id Identity) bool {
	return id.IsNGO() && id.SubjectID != "" && id.SubjectID == p.NGOID
}
