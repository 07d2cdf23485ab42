// Package forms holds the declarative form schemas of the site and the
// submission flow shared by every form page.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to the message shown next to it.
// The empty key holds errors that belong to no single field.
type FieldErrors map[string]string

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for k, v := range fe {
		parts = append(parts, k+": "+v)
	}
	return strings.Join(parts, "; ")
}

var (
	setupOnce sync.Once

	categoriesMu sync.RWMutex
	categoryOK   func(string) bool
)

// RegisterCategories sets the predicate behind the ngocategory rule.
func RegisterCategories(valid func(value string) bool) {
	setup()
	categoriesMu.Lock()
	categoryOK = valid
	categoriesMu.Unlock()
}

func setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("ngocategory", func(fl validator.FieldLevel) bool {
			categoriesMu.RLock()
			valid := categoryOK
			categoriesMu.RUnlock()
			if valid == nil {
				return fl.Field().String() != ""
			}
			return valid(fl.Field().String())
		})
	})
}

// Validate checks form against its binding tags.
func Validate(form any) FieldErrors {
	setup()
	if err := binding.Validator.ValidateStruct(form); err != nil {
		return translate(err)
	}
	return nil
}

// Bind decodes the request into form (urlencoded or multipart) and
// validates it.
func Bind(c *gin.Context, form any) FieldErrors {
	setup()
	if err := c.ShouldBind(form); err != nil {
		return translate(err)
	}
	return nil
}

func translate(err error) FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": "*Invalid form submission"}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "*This field is required"
	case "email":
		return "*Invalid email"
	case "ngocategory":
		return "*Select a valid category"
	case "min":
		switch fe.Field() {
		case "password":
			return fmt.Sprintf("*Password must be at least %s characters", fe.Param())
		case "name":
			return "*Name is too short"
		}
		return fmt.Sprintf("*Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("*Must be at most %s characters", fe.Param())
	}
	return "*Invalid value"
}
