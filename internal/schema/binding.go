package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"jobsearch/internal/errcode"
)

var registerOnce sync.Once

// RegisterFieldNames makes gin's validator report JSON field names, so field
// errors say "org_name" rather than "OrgName".
func RegisterFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
	})
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// BindError converts a ShouldBindJSON failure into a MissingField error.
// Malformed JSON and mistyped values are reported the same way as absent fields.
func BindError(err error) *errcode.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errcode.Wrap(errcode.MissingField, "invalid request body", err)
	}

	fields := make([]errcode.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "max":
			msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
		default:
			msg = fmt.Sprintf("%s: %s", fe.Tag(), fe.Param())
		}
		fields = append(fields, errcode.FieldError{Field: fe.Field(), Error: msg})
	}
	return errcode.Fields("Validation failed", fields)
}
