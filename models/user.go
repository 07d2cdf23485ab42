package models

// Account is the payload of the "current identity" endpoints.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Organisation is a registered NGO as listed in category searches.
type Organisation struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Location    string `json:"location"`
	ContactNo   string `json:"contact_no"`
}

// Category groups NGOs by cause.
type Category struct {
	Value         string   `yaml:"value" json:"value"`
	Name          string   `yaml:"name" json:"name"`
	Icon          string   `yaml:"icon" json:"icon"`
	Description   string   `yaml:"description" json:"description"`
	Subcategories []string `yaml:"subcategories" json:"subcategories"`
	Slug          string   `yaml:"-" json:"slug"`
}
