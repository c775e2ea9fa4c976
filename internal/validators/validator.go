package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/go-playground/validator/v10"
)

// Preference sections accepted as field scopes when validating a
// [models.PreferencesPatch].
const (
	SectionLogging     = "logging"
	SectionFleet       = "fleet"
	SectionAirports    = "airports"
	SectionNameDisplay = "nameDisplay"
)

// PreferenceSections lists the sections in the order they are checked.
var PreferenceSections = []string{SectionAirports, SectionLogging, SectionFleet, SectionNameDisplay}

const nameDisplayRule = "oneof=first-last last-first"

// StructValidator validates domain models against their `validate` tags.
type StructValidator struct {
	validate *validator.Validate
}

func NewValidator() Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &StructValidator{validate: v}
}

// Validate checks obj. For a [models.PreferencesPatch] the optional fields
// name the sections to check; each named section must be present and
// complete. Without fields the whole patch must form a complete document.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PreferencesPatch:
		return v.validatePreferencesPatch(ctx, value, fields...)
	case *models.PreferencesPatch:
		return v.validatePreferencesPatch(ctx, *value, fields...)

	case models.UserPreferences, *models.UserPreferences,
		models.LogsQuery, *models.LogsQuery,
		models.ListQuery, *models.ListQuery,
		models.User, *models.User,
		models.Airport, *models.Airport,
		models.AircraftType, *models.AircraftType:
		return v.validateStruct(ctx, "", value)

	default:
		return ErrUnsupportedType
	}
}

func (v *StructValidator) validatePreferencesPatch(ctx context.Context, patch models.PreferencesPatch, sections ...string) error {
	if len(sections) == 0 {
		return v.validateStruct(ctx, "", patch)
	}

	for _, section := range sections {
		var err error
		switch section {
		case SectionLogging:
			if patch.Logging == nil {
				return missing(section)
			}
			err = v.validateStruct(ctx, section, patch.Logging)
		case SectionFleet:
			if patch.Fleet == nil {
				return missing(section)
			}
			err = v.validateStruct(ctx, section, patch.Fleet)
		case SectionAirports:
			if patch.Airports == nil {
				return missing(section)
			}
			err = v.validateStruct(ctx, section, patch.Airports)
		case SectionNameDisplay:
			if patch.NameDisplay == nil {
				return missing(section)
			}
			err = v.validateVar(ctx, section, *patch.NameDisplay, nameDisplayRule)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, section)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *StructValidator) validateStruct(ctx context.Context, prefix string, obj any) error {
	return v.convert(prefix, true, v.validate.StructCtx(ctx, obj))
}

func (v *StructValidator) validateVar(ctx context.Context, name string, value any, rule string) error {
	return v.convert(name, false, v.validate.VarCtx(ctx, value, rule))
}

// convert turns validator errors into a [ValidationError] with JSON paths.
// Struct namespaces start with the Go type name, which is replaced by prefix.
func (v *StructValidator) convert(prefix string, stripRoot bool, err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(validationErrors))}
	for _, fe := range validationErrors {
		path := fe.Namespace()
		if stripRoot {
			if _, rest, found := strings.Cut(path, "."); found {
				path = rest
			}
		}
		switch {
		case prefix == "":
		case path == "" || !stripRoot:
			path = prefix
		default:
			path = prefix + "." + path
		}
		result.Fields = append(result.Fields, FieldError{Field: path, Message: message(fe)})
	}

	return result
}

func missing(section string) error {
	return &ValidationError{Fields: []FieldError{{Field: section, Message: "is required"}}}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "latitude", "longitude":
		return "must be a valid " + fe.Tag()
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
