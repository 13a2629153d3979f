package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed rule on one payload field.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// FieldErrors lists every failed rule in declaration order. Error returns the
// first message, which is what clients are shown.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ""
	}
	return fe[0].Message
}

const defaultMessage = "Invalid input."

var messages = map[string]string{
	"title.required":    "Title is required.",
	"title.trimmed_min": "Title is too short",
	"title.trimmed_max": "Title is too Long",
	"description.max":   "Description is too Long",
	"state.oneof":       "Invalid State",
	"tags.unique":       "Duplicate tags not allowed.",
	"tags.nospace":      "Tag must not have space.",
	"body.required":     "Body is required.",
	"body.trimmed_min":  "Body is too short.",

	"email.required":           "Email is required.",
	"email.email":              "Invalid email.",
	"email.tld":                "Invalid email.",
	"first_name.required":      "Firstname is required.",
	"first_name.min":           "Firstname must only contain letters, space or special character not allowed.",
	"first_name.max":           "Firstname must only contain letters, space or special character not allowed.",
	"first_name.alpha":         "Firstname must only contain letters, space or special character not allowed.",
	"last_name.required":       "Lastname is required.",
	"last_name.min":            "Lastname must only contain letters, space or special character not allowed.",
	"last_name.max":            "Lastname must only contain letters, space or special character not allowed.",
	"last_name.alpha":          "Lastname must only contain letters, space or special character not allowed.",
	"password.required":        "Password is required.",
	"password.max_bytes":       "Password is too long.",
	"repeat_password.required": "Password not match",
	"repeat_password.eqfield":  "Password not match",
}

var (
	validate    = newValidator()
	indexSuffix = regexp.MustCompile(`\[\d+\]$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("nospace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
	})
	_ = v.RegisterValidation("trimmed_min", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
	})
	_ = v.RegisterValidation("trimmed_max", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) <= n
	})
	_ = v.RegisterValidation("max_bytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= n
	})
	_ = v.RegisterValidation("tld", func(fl validator.FieldLevel) bool {
		return hasAllowedDomain(fl.Field().String())
	})
	return v
}

var allowedTLDs = map[string]bool{"com": true, "net": true, "ng": true}

// hasAllowedDomain reports whether the address has at least two domain
// segments and ends in one of allowedTLDs.
func hasAllowedDomain(email string) bool {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return false
	}
	segments := strings.Split(strings.ToLower(email[at+1:]), ".")
	if len(segments) < 2 {
		return false
	}
	return allowedTLDs[segments[len(segments)-1]]
}

// Validate checks payload against its `validate` struct tags.
func Validate(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		field := indexSuffix.ReplaceAllString(fe.Field(), "")
		out = append(out, FieldError{
			Field:   field,
			Tag:     fe.Tag(),
			Message: messageFor(field, fe.Tag()),
		})
	}
	return out
}

func messageFor(field, tag string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	return defaultMessage
}
