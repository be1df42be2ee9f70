package content

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// Issue is a single field-level problem found in a loaded document.
type Issue struct {
	Field   string
	Rule    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// Issues is the result of Validate.
type Issues []Issue

// Err folds the issues into a single error wrapping ErrInvalid, or nil.
func (is Issues) Err() error {
	if len(is) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(is))
	for _, issue := range is {
		msgs = append(msgs, issue.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// Validate runs field-level checks. It never fails the document by itself;
// callers decide whether issues are warnings or fatal.
func Validate(doc *Document) Issues {
	if doc == nil {
		return Issues{{Field: "document", Rule: "required", Message: ErrMissing.Error()}}
	}

	err := validatorInstance().Struct(doc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Issues{{Field: "document", Rule: "internal", Message: err.Error()}}
	}

	issues := make(Issues, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{
			Field:   fieldPath(fe.Namespace()),
			Rule:    fe.Tag(),
			Message: ruleMessage(fe),
		})
	}
	return issues
}

func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return fmt.Sprintf("%q is not an email address", fe.Value())
	case "url":
		return fmt.Sprintf("%q is not an absolute URL", fe.Value())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
