package scenario

import (
	"fmt"
	"strings"

	"github.com/shinji-kodama/color-pour/internal/model"
)

// ValidationError represents a specific validation failure in a scenario.
type ValidationError struct {
	// Field is the path of the offending value (e.g., "pours[1].to").
	Field string

	// Message describes what's wrong with the value.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("scenario validation error: %s: %s", e.Field, e.Message)
}

// Validate checks a scenario for structural problems and returns every
// one found (empty list = valid scenario).
//
// Seeding a container beyond capacity is not a validation error: Run
// reports it the same way Add does.
func Validate(s *Scenario) []ValidationError {
	var errs []ValidationError

	if len(s.Containers) == 0 {
		errs = append(errs, ValidationError{
			Field:   "containers",
			Message: "at least one container is required",
		})
	}

	for i, colors := range s.Containers {
		for j, color := range colors {
			if err := model.ValidateColor(color); err != nil {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("containers[%d][%d]", i, j),
					Message: err.Error(),
				})
			}
		}
	}

	for i, step := range s.Pours {
		if !inRange(step.From, len(s.Containers)) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("pours[%d].from", i),
				Message: fmt.Sprintf("container index %d out of range (0-%d)", step.From, len(s.Containers)-1),
			})
		}
		if !inRange(step.To, len(s.Containers)) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("pours[%d].to", i),
				Message: fmt.Sprintf("container index %d out of range (0-%d)", step.To, len(s.Containers)-1),
			})
		}
	}

	return errs
}

// JoinValidationErrors renders a list of validation errors as one
// multi-line message.
func JoinValidationErrors(errs []ValidationError) string {
	lines := make([]string, 0, len(errs))
	for i := range errs {
		lines = append(lines, errs[i].Error())
	}
	return strings.Join(lines, "\n")
}

func inRange(index, n int) bool {
	return index >= 0 && index < n
}
