package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Field-level validation messages shown next to form inputs.
const (
	MsgRequired         = "This field is required"
	MsgInvalidDate      = "Invalid date selected"
	MsgDateInPast       = "Cannot enter a date in the past"
	MsgInvalidSelection = "Invalid selection"
)

var dateTimePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}$`)

// Selection is the raw value of a checkbox or select input. In JSON it may be
// sent as a string ("3") or a number (3); anything else fails to decode.
type Selection string

func (s *Selection) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = Selection(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("selection must be a string or a number, got %s", data)
	}
	*s = Selection(n.String())
	return nil
}

// Int parses the selection as an id.
func (s Selection) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(s)))
}

// EventForm holds the raw values of the new-event form.
type EventForm struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Location    string      `json:"location"`
	StartTime   string      `json:"startTime"`
	EndTime     string      `json:"endTime"`
	CategoryIDs []Selection `json:"categoryIds"`
	CreatedBy   Selection   `json:"createdBy"`
}

// NewEventPayload is the body of POST /events.
type NewEventPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Location    string `json:"location"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	CategoryIDs []int  `json:"categoryIds"`
	CreatedBy   int    `json:"createdBy"`
}

// FieldError is a validation failure scoped to one form field.
// swagger:model FieldError
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned when a form fails client-side validation.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "invalid event form: " + strings.Join(parts, "; ")
}

// Field returns the message for field, or "" when the field is valid.
func (v ValidationErrors) Field(field string) string {
	for _, fe := range v {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Validate checks the form against minDate, a wire-format timestamp below which
// start and end times are rejected. Category and organiser ids are checked
// against ref only when ref has options to choose from.
func (f EventForm) Validate(minDate string, ref ReferenceData) ValidationErrors {
	var errs ValidationErrors
	required := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, FieldError{Field: field, Message: MsgRequired})
		}
	}
	required("title", f.Title)
	required("description", f.Description)
	required("image", f.Image)
	required("location", f.Location)

	if msg := validateDateTime(f.StartTime, minDate); msg != "" {
		errs = append(errs, FieldError{Field: "startTime", Message: msg})
	}
	if msg := validateDateTime(f.EndTime, minDate); msg != "" {
		errs = append(errs, FieldError{Field: "endTime", Message: msg})
	}

	if len(f.CategoryIDs) == 0 {
		errs = append(errs, FieldError{Field: "categoryIds", Message: MsgRequired})
	} else {
		for _, raw := range f.CategoryIDs {
			id, err := raw.Int()
			if err != nil || (len(ref.Categories) > 0 && !ref.HasCategory(id)) {
				errs = append(errs, FieldError{Field: "categoryIds", Message: MsgInvalidSelection})
				break
			}
		}
	}

	if strings.TrimSpace(string(f.CreatedBy)) == "" {
		errs = append(errs, FieldError{Field: "createdBy", Message: MsgRequired})
	} else if id, err := f.CreatedBy.Int(); err != nil || (len(ref.Users) > 0 && !ref.HasUser(id)) {
		errs = append(errs, FieldError{Field: "createdBy", Message: MsgInvalidSelection})
	}
	return errs
}

func validateDateTime(value, minDate string) string {
	if value == "" {
		return MsgRequired
	}
	if !dateTimePattern.MatchString(value) {
		return MsgInvalidDate
	}
	t, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		return MsgInvalidDate
	}
	if minDate != "" {
		floor, err := time.Parse(DateTimeLayout, minDate)
		if err == nil && t.Before(floor) {
			return MsgDateInPast
		}
	}
	return ""
}

// Payload converts a validated form into the wire payload: category selections
// become an ordered []int and the organiser an int. Call only after Validate
// returned no errors.
func (f EventForm) Payload() NewEventPayload {
	ids := make([]int, 0, len(f.CategoryIDs))
	for _, raw := range f.CategoryIDs {
		id, _ := raw.Int()
		ids = append(ids, id)
	}
	createdBy, _ := f.CreatedBy.Int()
	return NewEventPayload{
		Title:       f.Title,
		Description: f.Description,
		Image:       f.Image,
		Location:    f.Location,
		StartTime:   f.StartTime,
		EndTime:     f.EndTime,
		CategoryIDs: ids,
		CreatedBy:   createdBy,
	}
}
