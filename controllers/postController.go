package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ngoconnect-web/backend"
	"ngoconnect-web/forms"
	"ngoconnect-web/middlewares"
	"ngoconnect-web/models"
)

// Community lists posts newest first. An empty list is not an error.
func (ctl *Controller) Community(c *gin.Context) {
	posts, err := ctl.API.Posts(c.Request.Context())

	data := gin.H{"Title": "Community", "Posts": posts}
	code := http.StatusOK
	if err != nil {
		msg, ok := ctl.failure(c, err)
		if !ok {
			return
		}
		data["Posts"] = nil
		data["Message"] = msg
		code = http.StatusBadGateway
	}
	ctl.render(c, code, "community.html", data)
}

func (ctl *Controller) PostPage(c *gin.Context) {
	ctl.renderPost(c, http.StatusOK, forms.PostForm{}, forms.Outcome{})
}

func (ctl *Controller) CreatePost(c *gin.Context) {
	var form forms.PostForm
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

	out := forms.SubmitErrors(c.Request.Context(), errs, func(ctx context.Context) (string, error) {
		return ctl.API.CreatePost(ctx, s.Token, backend.PostSubmission{
			Title:   form.Title,
			Content: form.Content,
			Image:   image,
		})
	})
	if out.State == forms.Failed {
		if _, ok := ctl.failure(c, out.Err); !ok {
			return
		}
	}
	if !out.OK() {
		form.Image = nil
		ctl.renderPost(c, formStatus(out), form, out)
		return
	}

	ctl.redirect(c, models.FlashSuccess, orDefault(out.Message, "Post created successfully"), "/community")
}

func (ctl *Controller) renderPost(c *gin.Context, code int, form forms.PostForm, out forms.Outcome) {
	ctl.render(c, code, "post.html", gin.H{
		"Title":     "Create new Post",
		"Form":      form,
		"Errors":    out.Errors,
		"Message":   out.Message,
		"MaxUpload": ctl.MaxUpload,
	})
}

// DeletePost removes a post owned by the calling NGO.
func (ctl *Controller) DeletePost(c *gin.Context) {
	ctx := c.Request.Context()
	id := middlewares.CurrentIdentity(c)
	s := middlewares.CurrentSession(c)
	postID := c.Param("id")

	posts, err := ctl.API.Posts(ctx)
	if err != nil {
		msg, ok := ctl.failure(c, err)
		if !ok {
			return
		}
		ctl.redirect(c, models.FlashError, msg, "/community")
		return
	}

	var found *models.Post
	for i := range posts {
		if posts[i].ID == postID {
			found = &posts[i]
			break
		}
	}
	if found == nil {
		ctl.placeholder(c, http.StatusNotFound, "notfound", "This post no longer exists.")
		return
	}
	if !found.OwnedBy(id) {
		ctl.placeholder(c, http.StatusForbidden, "forbidden", "Only the NGO that published a post can delete it.")
		return
	}

	msg, err := ctl.API.DeletePost(ctx, s.Token, postID)
	if err != nil {
		text, ok := ctl.failure(c, err)
		if !ok {
			return
		}
		ctl.redirect(c, models.FlashError, text, "/community")
		return
	}
	ctl.redirect(c, models.FlashSuccess, orDefault(msg, "Post deleted"), "/community")
}
