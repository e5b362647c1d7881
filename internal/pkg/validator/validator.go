// Package validator wraps the "go-playground/validator" library.
package validator

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"

	"github.com/keboola/db-merge/internal/pkg/utils/errors"
)

type Validator interface {
	Validate(ctx context.Context, value any) error
}

// Rule is a custom validation rule.
type Rule struct {
	Tag  string
	Func validator.Func
}

type wrapper struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New(rules ...Rule) Validator {
	validate := validator.New()

	// Register default EN translator
	enLocale := en.New()
	translator, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		panic(errors.New("en translator was not found"))
	}
	if err := enTranslation.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(errors.Errorf("translator was not registered: %w", err))
	}

	// Register custom validation rules
	for _, rule := range rules {
		if err := validate.RegisterValidation(rule.Tag, rule.Func); err != nil {
			panic(err)
		}
	}

	// Set "__nested__" name for anonymous fields, so they can be removed from the error namespace.
	// Use JSON/YAML field name in error messages.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if fld.Anonymous {
			return "__nested__"
		}
		for _, tag := range []string{"json", "yaml"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	return &wrapper{validate: validate, translator: translator}
}

func (v *wrapper) Validate(ctx context.Context, value any) error {
	var err error
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		err = v.validate.StructCtx(ctx, value)
	} else {
		err = v.validate.VarCtx(ctx, value, "dive")
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return v.processError(validationErrs)
	}
	panic(err)
}

func (v *wrapper) processError(err validator.ValidationErrors) error {
	result := errors.NewMultiError()
	for _, e := range err {
		// Trim the field name from the translated message, the namespace is used instead
		msg := strings.TrimSpace(strings.TrimPrefix(e.Translate(v.translator), e.Field()))
		result.Append(errors.Errorf(`"%s" %s`, processNamespace(e.Namespace()), msg))
	}
	return result.ErrorOrNil()
}

// processNamespace removes the struct name (first part) and the __nested__ parts.
func processNamespace(namespace string) string {
	namespace = strings.ReplaceAll(namespace, `__nested__.`, ``)
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
