package config

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("single_word", isSingleWord); err != nil {
		return nil, nil, fmt.Errorf("failed to register single_word validation: %w", err)
	}
	// Messages name the full key path, e.g. "anki.url" rather than "url".
	translations := []struct {
		tag     string
		message string
	}{
		{tag: "required", message: "{0} is a required field"},
		{tag: "required_if", message: "{0} is required; set it in the environment or a .env file"},
		{tag: "oneof", message: "{0} must be one of [{1}]"},
		{tag: "lte", message: "{0} must be {1} or less"},
		{tag: "http_url", message: "{0} must be an http or https URL"},
		{tag: "single_word", message: "{0} must be a single word without spaces"},
	}
	for _, translation := range translations {
		if err := validate.RegisterTranslation(translation.tag, trans, func(ut ut.Translator) error {
			return ut.Add(translation.tag, translation.message, true)
		}, translateWithKeyPath); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s translation: %w", translation.tag, err)
		}
	}

	return validate, trans, nil
}

func translateWithKeyPath(ut ut.Translator, fe validator.FieldError) string {
	t, err := ut.T(fe.Tag(), strings.TrimPrefix(fe.Namespace(), "Config."), fe.Param())
	if err != nil {
		return fe.Error()
	}
	return t
}

func isSingleWord(fl validator.FieldLevel) bool {
	word := fl.Field().String()
	if word == "" {
		return false
	}
	return strings.IndexFunc(word, unicode.IsSpace) < 0
}
