package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ngoconnect-web/backend"
	"ngoconnect-web/forms"
	"ngoconnect-web/middlewares"
	"ngoconnect-web/models"
	"ngoconnect-web/utils"
)

// Dashboard lists every issue for an NGO and the caller's own issues for a user.
func (ctl *Controller) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	id := middlewares.CurrentIdentity(c)
	s := middlewares.CurrentSession(c)

	var (
		issues []models.Issue
		err    error
	)
	switch {
	case id.IsNGO():
		issues, err = ctl.API.Reports(ctx, s.Token)
	case id.IsUser():
		issues, err = ctl.API.UserReports(ctx, s.Token, id.SubjectID)
	default:
		ctl.Denied(c)
		return
	}

	data := gin.H{"Title": "Dashboard", "Issues": issues}
	code := http.StatusOK
	if err != nil {
		msg, ok := ctl.failure(c, err)
		if !ok {
			return
		}
		data["Message"] = msg
		data["Issues"] = nil
		code = http.StatusBadGateway
	}
	ctl.render(c, code, "dashboard.html", data)
}

// ResolveIssue marks an issue as resolved and sends the NGO back to a freshly
// fetched dashboard.
func (ctl *Controller) ResolveIssue(c *gin.Context) {
	s := middlewares.CurrentSession(c)

	msg, err := ctl.API.ResolveReport(c.Request.Context(), s.Token, c.Param("id"))
	if err != nil {
		text, ok := ctl.failure(c, err)
		if !ok {
			return
		}
		ctl.redirect(c, models.FlashError, text, "/dashboard")
		return
	}
	ctl.redirect(c, models.FlashSuccess, orDefault(msg, "Issue marked as resolved"), "/dashboard")
}

func (ctl *Controller) ReportPage(c *gin.Context) {
	ctl.renderReport(c, http.StatusOK, forms.ReportForm{}, forms.Outcome{})
}

// SubmitReport forwards the report, image included, as multipart form data.
func (ctl *Controller) SubmitReport(c *gin.Context) {
	var form forms.ReportForm
	errs := forms.Bind(c, &form)
	s := middlewares.CurrentSession(c)

	var image *backend.Attachment
	if form.Image != nil {
		att, err := forms.ReadAttachment(form.Image, ctl.MaxUpload)
		if err != nil {
			if errs == nil {
				errs = forms.FieldErrors{}
			}
			errs["image"] = forms.UploadMessage(err)
		}
		image = att
	}
	if len(errs) == 0 && !middlewares.TakeReportQuota(c) {
		return
	}

	out := forms.SubmitErrors(c.Request.Context(), errs, func(ctx context.Context) (string, error) {
		return ctl.API.SubmitReport(ctx, s.Token, backend.ReportSubmission{
			Title:       form.Title,
			Description: form.Description,
			Location:    form.Location,
			Category:    form.Category,
			Subcategory: form.Subcategory,
			Image:       image,
		})
	})
	if out.State == forms.Failed {
		if _, ok := ctl.failure(c, out.Err); !ok {
			return
		}
	}
	if !out.OK() {
		form.Image = nil
		ctl.renderReport(c, formStatus(out), form, out)
		return
	}

	ctl.redirect(c, models.FlashSuccess, orDefault(out.Message, "Report submitted successfully"), "/dashboard")
}

func (ctl *Controller) renderReport(c *gin.Context, code int, form forms.ReportForm, out forms.Outcome) {
	ctl.render(c, code, "report.html", gin.H{
		"Title":      "Raise a request",
		"Form":       form,
		"Errors":     out.Errors,
		"Message":    out.Message,
		"Categories": ctl.Categories.All(),
		"MaxUpload":  ctl.MaxUpload,
	})
}

// ReportLimited renders the refusal of ReportRateLimiter.
func (ctl *Controller) ReportLimited(c *gin.Context, retryAfter time.Duration) {
	ctl.render(c, http.StatusTooManyRequests, "placeholder.html", gin.H{
		"Kind":    "limited",
		"RetryIn": utils.TimeAgo(time.Now().Add(retryAfter)),
	})
}
