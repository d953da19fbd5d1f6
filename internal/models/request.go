package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DayType selects the traffic-pattern regime used for matching.
type DayType string

const (
	DayTypeNormal       DayType = "normal"        // same weekday and hour
	DayTypeHoliday      DayType = "holiday"       // weekend / Friday-evening pattern
	DayTypeSpecialEvent DayType = "special_event" // blend of normal and holiday
)

var validate = validator.New()

// PredictionRequest carries the validated parameters of one prediction call.
// It is stateless and never persisted.
type PredictionRequest struct {
	DayOfWeek int     `json:"day_of_week" form:"day_of_week" validate:"min=0,max=6"` // 0=Monday
	Hour      int     `json:"hour" form:"hour" validate:"min=0,max=23"`
	DayType   DayType `json:"day_type" form:"day_type" validate:"required,oneof=normal holiday special_event"`
}

// ValidationError describes a rejected request parameter. Requests failing
// validation are rejected before any store query executes.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks all range and enum constraints.
func (r PredictionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok || len(errs) == 0 {
			return &ValidationError{Field: "request", Message: err.Error()}
		}
		fe := errs[0]
		switch fe.StructField() {
		case "DayOfWeek":
			return &ValidationError{Field: "day_of_week", Message: "must be between 0 (Monday) and 6 (Sunday)"}
		case "Hour":
			return &ValidationError{Field: "hour", Message: "must be between 0 and 23"}
		default:
			return &ValidationError{Field: "day_type", Message: "must be one of normal, holiday, special_event"}
		}
	}
	return nil
}
