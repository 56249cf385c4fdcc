package serializers

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
)

var ErrMalformedBody = errors.New("invalid request body")

const (
	MsgRequired   = "This field is required."
	MsgNull       = "This field may not be null."
	MsgBlank      = "This field may not be blank."
	MsgNotString  = "Not a valid string."
	MsgInvalidURL = "Enter a valid URL."
	MsgDateFormat = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	MsgDateOrder  = "Ensure end_date is not before start_date."
)

const (
	tagDateOrder = "date_order"
	tagWebURL    = "web_url"
)

// linkSchemes are the URL schemes a project link may use.
var linkSchemes = map[string]bool{"http": true, "https": true, "ftp": true, "ftps": true}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(experienceDates, domain.Experience{})
	if err := v.RegisterValidation(tagWebURL, webURL); err != nil {
		panic(err)
	}
	return v
}

// webURL accepts absolute http(s) and ftp(s) URLs with a host.
func webURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if strings.ContainsAny(raw, " \t\n") {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return linkSchemes[strings.ToLower(u.Scheme)] && u.Hostname() != ""
}

func experienceDates(sl validator.StructLevel) {
	e := sl.Current().Interface().(domain.Experience)
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		sl.ReportError(e.EndDate, "end_date", "EndDate", tagDateOrder, "")
	}
}

// check runs the struct rules of a domain record and folds failures into verr.
// Fields that already carry a decoding message are left alone.
func check(record any, verr *domain.ValidationError) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %T: %w", record, err)
	}
	for _, fe := range fieldErrs {
		if verr.Has(fe.Field()) {
			continue
		}
		verr.Add(fe.Field(), message(fe))
	}
	return nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgBlank
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case tagWebURL:
		return MsgInvalidURL
	case tagDateOrder:
		return MsgDateOrder
	default:
		return "Invalid value."
	}
}
