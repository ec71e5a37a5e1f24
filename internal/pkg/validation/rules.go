package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/pkg/apperrors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldKinds maps struct fields to the specific error reported when they fail
var fieldKinds = map[string]error{
	"Mood7":     apperrors.ErrInvalidMoodSeries,
	"MoodMonth": apperrors.ErrInvalidMoodSeries,
	"PHQ":       apperrors.ErrInvalidScore,
	"GAD":       apperrors.ErrInvalidScore,
}

// tagKinds maps validation tags to the specific error reported when they fail
var tagKinds = map[string]error{
	"eqfield": apperrors.ErrPasswordMismatch,
}

// Struct validates v against its `validate` tags.
// The first failing field is returned as an *apperrors.CustomError wrapping ErrValidationFailed.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	fe := fieldErrs[0]
	return apperrors.NewValidationError(kindOf(fe), fe.Namespace(), formatValidationError(fe))
}

// Student validates a student record: identity fields, semester range,
// series lengths (7 and 4 when present), sample range and screening scales.
func Student(s models.Student) error {
	return Struct(s)
}

func kindOf(fe validator.FieldError) error {
	if kind, ok := tagKinds[fe.Tag()]; ok {
		return kind
	}
	// Element errors on a series report the series' field name
	name := fe.StructField()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if kind, ok := fieldKinds[name]; ok {
		return kind
	}
	return apperrors.ErrValidationFailed
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "len":
		return "must have exactly " + e.Param() + " entries"
	case "min", "gte":
		return "must be at least " + e.Param()
	case "max", "lte":
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "eqfield":
		return "must match " + e.Param()
	default:
		return "validation failed: " + e.Tag()
	}
}
