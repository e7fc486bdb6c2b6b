// Package forms decodes submitted HTML forms into typed inputs and validates
// them with go-playground/validator.
package forms

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"fyyur/internal/models"
)

// StartTimeLayouts are the accepted start_time formats, tried in order.
var StartTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
}

var phonePattern = regexp.MustCompile(`^\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "usstate", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.States, fl.Field().String())
	})
	mustRegister(v, "genre", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.Genres, fl.Field().String())
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("forms: register %s: %v", tag, err))
	}
}

// ValidationError reports every invalid field of a submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

func (e *ValidationError) orNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Validate checks input against its validate tags. It returns nil or a
// *ValidationError.
func Validate(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.add(fieldName(fe), message(fe))
	}
	return verr.orNil()
}

// fieldName strips the struct prefix and any slice index from the namespace.
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be a positive number"
	case "url":
		return "must be a valid URL"
	case "usstate":
		return "must be a state code"
	case "genre":
		return "contains an unknown genre"
	case "phone":
		return "must look like 415-555-0100"
	default:
		return "is invalid"
	}
}

// DecodeVenue reads a venue submission.
func DecodeVenue(values url.Values) models.VenueInput {
	return models.VenueInput{
		Name:               text(values, "name"),
		City:               text(values, "city"),
		State:              strings.ToUpper(text(values, "state")),
		Address:            text(values, "address"),
		Phone:              text(values, "phone"),
		ImageLink:          text(values, "image_link"),
		FacebookLink:       text(values, "facebook_link"),
		WebsiteLink:        text(values, "website_link"),
		Genres:             models.NormalizeGenres(values["genres"]),
		SeekingTalent:      checked(values, "seeking_talent"),
		SeekingDescription: text(values, "seeking_description"),
	}
}

// DecodeArtist reads an artist submission.
func DecodeArtist(values url.Values) models.ArtistInput {
	return models.ArtistInput{
		Name:               text(values, "name"),
		City:               text(values, "city"),
		State:              strings.ToUpper(text(values, "state")),
		Phone:              text(values, "phone"),
		ImageLink:          text(values, "image_link"),
		FacebookLink:       text(values, "facebook_link"),
		WebsiteLink:        text(values, "website_link"),
		Genres:             models.NormalizeGenres(values["genres"]),
		SeekingVenue:       checked(values, "seeking_venue"),
		SeekingDescription: text(values, "seeking_description"),
	}
}

// DecodeShow reads a show submission. Fields that cannot be parsed are
// reported as a *ValidationError alongside the partially decoded input.
func DecodeShow(values url.Values) (models.ShowInput, error) {
	var (
		input models.ShowInput
		verr  = &ValidationError{}
	)

	for _, field := range []struct {
		name string
		dst  *int64
	}{
		{"artist_id", &input.ArtistID},
		{"venue_id", &input.VenueID},
	} {
		raw := text(values, field.name)
		if raw == "" {
			verr.add(field.name, "is required")
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			verr.add(field.name, "must be a positive number")
			continue
		}
		*field.dst = id
	}

	if raw := text(values, "start_time"); raw == "" {
		verr.add("start_time", "is required")
	} else if t, ok := ParseStartTime(raw); ok {
		input.StartTime = t
	} else {
		verr.add("start_time", "must be a date and time like 2006-01-02 15:04:05")
	}

	return input, verr.orNil()
}

// ParseStartTime parses raw with the first matching layout in StartTimeLayouts.
// Layouts without a zone are read as UTC.
func ParseStartTime(raw string) (time.Time, bool) {
	for _, layout := range StartTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func text(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func checked(values url.Values, key string) bool {
	switch strings.ToLower(text(values, key)) {
	case "y", "yes", "on", "true", "1":
		return true
	default:
		return false
	}
}
