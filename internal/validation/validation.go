// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var subdomainPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// FieldErrors maps submitted field names to human-readable messages.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return fmt.Sprintf("invalid fields: %s", strings.Join(fields, ", "))
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Report JSON field names, they are what the caller submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("subdomain", validateSubdomain); err != nil {
		panic(err)
	}

	return &Validator{validate: v}
}

func validateSubdomain(fl validator.FieldLevel) bool {
	return subdomainPattern.MatchString(fl.Field().String())
}

// Validate returns nil when i passes all of its struct rules.
func (v *Validator) Validate(i interface{}) FieldErrors {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return FieldErrors{"request": "invalid request"}
	}

	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldErrors[fieldError.Field()] = message(fieldError)
	}

	return fieldErrors
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "eqfield":
		return "does not match"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "subdomain":
		return "may only contain lowercase letters, numbers and hyphens"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
