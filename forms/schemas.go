package forms

import "mime/multipart"

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type NGORegisterForm struct {
	Name     string `form:"name" binding:"required,min=3"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type UserRegisterForm struct {
	Name     string `form:"name" binding:"required,min=2"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

// NGOInfoForm completes an NGO account with contact and cause details.
type NGOInfoForm struct {
	Name        string `form:"name" binding:"required,min=3"`
	Email       string `form:"email" binding:"required,email"`
	ContactNo   string `form:"contact_no" binding:"required,max=20"`
	Location    string `form:"location" binding:"required,max=200"`
	Category    string `form:"category" binding:"required,ngocategory"`
	Subcategory string `form:"subcategory" binding:"omitempty,max=100"`
}

type ReportForm struct {
	Title       string                `form:"title" binding:"required,max=100"`
	Location    string                `form:"location" binding:"required,max=200"`
	Description string                `form:"desc" binding:"required,max=2000"`
	Category    string                `form:"category" binding:"required,ngocategory"`
	Subcategory string                `form:"subcategory" binding:"omitempty,max=100"`
	Image       *multipart.FileHeader `form:"image"`
}

type PostForm struct {
	Title   string                `form:"title" binding:"required,max=150"`
	Content string                `form:"content" binding:"required,max=5000"`
	Image   *multipart.FileHeader `form:"image" binding:"required"`
}
