package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ngoconnect-web/backend"
	"ngoconnect-web/forms"
	"ngoconnect-web/middlewares"
	"ngoconnect-web/models"
)

func (ctl *Controller) LoginNGOPage(c *gin.Context) {
	ctl.renderLogin(c, http.StatusOK, models.RoleNGO, forms.LoginForm{}, forms.Outcome{})
}

func (ctl *Controller) LoginUserPage(c *gin.Context) {
	ctl.renderLogin(c, http.StatusOK, models.RoleUser, forms.LoginForm{}, forms.Outcome{})
}

// LoginNGO exchanges credentials for a token and stores it in the session.
// The identity is resolved on the next request.
func (ctl *Controller) LoginNGO(c *gin.Context) {
	ctl.login(c, models.RoleNGO, ctl.API.LoginNGO, "/dashboard")
}

func (ctl *Controller) LoginUser(c *gin.Context) {
	ctl.login(c, models.RoleUser, ctl.API.LoginUser, "/")
}

func (ctl *Controller) login(c *gin.Context, role models.Role, call func(context.Context, backend.Credentials) (string, error), next string) {
	var form forms.LoginForm
	errs := forms.Bind(c, &form)
	s := middlewares.CurrentSession(c)

	out := forms.SubmitErrors(c.Request.Context(), errs, func(ctx context.Context) (string, error) {
		token, err := call(ctx, backend.Credentials{Email: form.Email, Password: form.Password})
		if err != nil {
			return "", err
		}
		if err := ctl.Sessions.Login(ctx, s, token, role); err != nil {
			return "", err
		}
		return "Login successful", nil
	})
	if !out.OK() {
		form.Password = ""
		ctl.renderLogin(c, formStatus(out), role, form, out)
		return
	}

	middlewares.SetIdentity(c, models.Unknown)
	slog.InfoContext(c.Request.Context(), "login", "role", role)
	ctl.redirect(c, models.FlashSuccess, out.Message, next)
}

func (ctl *Controller) renderLogin(c *gin.Context, code int, role models.Role, form forms.LoginForm, out forms.Outcome) {
	title := "User Login"
	if role == models.RoleNGO {
		title = "NGO Login"
	}
	ctl.render(c, code, "login.html", gin.H{
		"Title":   title,
		"Role":    string(role),
		"Action":  loginPath(role),
		"Form":    form,
		"Errors":  out.Errors,
		"Message": out.Message,
	})
}

func (ctl *Controller) RegisterNGOPage(c *gin.Context) {
	ctl.renderRegister(c, http.StatusOK, models.RoleNGO, forms.NGORegisterForm{}, forms.Outcome{})
}

func (ctl *Controller) RegisterNGO(c *gin.Context) {
	var form forms.NGORegisterForm
	errs := forms.Bind(c, &form)

	out := forms.SubmitErrors(c.Request.Context(), errs, func(ctx context.Context) (string, error) {
		return ctl.API.RegisterNGO(ctx, backend.NGORegistration{
			Name:     form.Name,
			Email:    form.Email,
			Password: form.Password,
		})
	})
	if !out.OK() {
		form.Password = ""
		ctl.renderRegister(c, formStatus(out), models.RoleNGO, form, out)
		return
	}

	ctl.redirect(c, models.FlashSuccess, orDefault(out.Message, "NGO registered successfully"), "/register-ngo-info")
}

func (ctl *Controller) RegisterUserPage(c *gin.Context) {
	ctl.renderRegister(c, http.StatusOK, models.RoleUser, forms.UserRegisterForm{}, forms.Outcome{})
}

func (ctl *Controller) RegisterUser(c *gin.Context) {
	var form forms.UserRegisterForm
	errs := forms.Bind(c, &form)

	out := forms.SubmitErrors(c.Request.Context(), errs, func(ctx context.Context) (string, error) {
		return ctl.API.RegisterUser(ctx, backend.UserRegistration{
			Name:     form.Name,
			Email:    form.Email,
			Password: form.Password,
		})
	})
	if !out.OK() {
		form.Password = ""
		ctl.renderRegister(c, formStatus(out), models.RoleUser, form, out)
		return
	}

	ctl.redirect(c, models.FlashSuccess, orDefault(out.Message, "Registration successful, please log in"), "/login-user")
}

func (ctl *Controller) renderRegister(c *gin.Context, code int, role models.Role, form any, out forms.Outcome) {
	title, action := "Create an account", "/register-user"
	if role == models.RoleNGO {
		title, action = "Register your NGO", "/register-ngo"
	}
	ctl.render(c, code, "register.html", gin.H{
		"Title":   title,
		"Role":    string(role),
		"Action":  action,
		"Form":    form,
		"Errors":  out.Errors,
		"Message": out.Message,
	})
}

func (ctl *Controller) NGOInfoPage(c *gin.Context) {
	ctl.renderNGOInfo(c, http.StatusOK, forms.NGOInfoForm{}, forms.Outcome{})
}

// RegisterNGOInfo completes the NGO profile after account registration.
func (ctl *Controller) RegisterNGOInfo(c *gin.Context) {
	var form forms.NGOInfoForm
	errs := forms.Bind(c, &form)

	out := forms.SubmitErrors(c.Request.Context(), errs, func(ctx context.Context) (string, error) {
		return ctl.API.RegisterNGOInfo(ctx, backend.NGOInfo{
			Name:        form.Name,
			Email:       form.Email,
			ContactNo:   form.ContactNo,
			Location:    form.Location,
			Category:    form.Category,
			Subcategory: form.Subcategory,
		})
	})
	if !out.OK() {
		ctl.renderNGOInfo(c, formStatus(out), form, out)
		return
	}

	ctl.redirect(c, models.FlashSuccess, orDefault(out.Message, "NGO details saved, please log in"), "/login-ngo")
}

func (ctl *Controller) renderNGOInfo(c *gin.Context, code int, form forms.NGOInfoForm, out forms.Outcome) {
	ctl.render(c, code, "ngo_info.html", gin.H{
		"Title":      "NGO details",
		"Form":       form,
		"Errors":     out.Errors,
		"Message":    out.Message,
		"Categories": ctl.Categories.All(),
	})
}

// Logout clears token, role and subject id from the session record.
func (ctl *Controller) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	s := middlewares.CurrentSession(c)

	if err := ctl.Sessions.Logout(ctx, s); err != nil {
		slog.ErrorContext(ctx, "logout failed", "error", err)
	}
	middlewares.SetIdentity(c, models.Anonymous)
	ctl.redirect(c, models.FlashSuccess, "Logged out successfully", "/")
}
