// Package model defines the domain types for the color-pour CLI.
//
// All entities in this package are transient, in-memory values. Nothing is
// persisted between runs.
package model

import (
	"fmt"
	"strings"
)

// MaxElements is the fixed capacity shared by every container.
// It is a compile-time constant; capacity is not configurable at runtime.
const MaxElements = 3

// Element is a single colored item stored in a container.
// It is a value type: copying an Element yields an independent value,
// so an element is never shared between two containers.
type Element struct {
	// Color is the text label of the element (e.g., "Red").
	Color string
}

// NewElement creates an Element with the given color label.
func NewElement(color string) Element {
	return Element{Color: color}
}

// String returns the color label, satisfying fmt.Stringer.
func (e Element) String() string {
	return e.Color
}

// ValidateColor checks if the given color label is usable for an Element.
// Valid labels are non-empty and carry no leading or trailing whitespace.
func ValidateColor(color string) error {
	if color == "" {
		return fmt.Errorf("color must not be empty")
	}
	if strings.TrimSpace(color) != color {
		return fmt.Errorf("invalid color %q: must not have leading or trailing whitespace", color)
	}
	return nil
}

// ConditionKind enumerates the advisory conditions a container operation
// can report. None of them is fatal: the operation that raised one leaves
// every container exactly as it was.
type ConditionKind string

const (
	// ConditionContainerFull is reported by Add on a container that
	// already holds MaxElements elements.
	ConditionContainerFull ConditionKind = "container-full"

	// ConditionSelfPour is reported when the source and destination of a
	// pour are the same container.
	ConditionSelfPour ConditionKind = "self-pour"

	// ConditionSourceEmpty is reported when pouring from an empty container.
	ConditionSourceEmpty ConditionKind = "source-empty"

	// ConditionDestinationFull is reported when pouring into a full
	// container. The source keeps its top element.
	ConditionDestinationFull ConditionKind = "destination-full"
)

// String returns the string representation of ConditionKind.
func (k ConditionKind) String() string {
	return string(k)
}

// Message returns the console message printed for this kind.
func (k ConditionKind) Message() string {
	switch k {
	case ConditionContainerFull:
		return "Container is full!"
	case ConditionSelfPour:
		return "Cannot pour from the same container!"
	case ConditionSourceEmpty:
		return "Source container is empty!"
	case ConditionDestinationFull:
		return "Destination container is full!"
	default:
		return "Unknown condition!"
	}
}

// Condition is the error returned by container operations that were
// rejected. It carries only its kind; two Conditions of the same kind
// match under errors.Is.
type Condition struct {
	Kind ConditionKind
}

// Error returns the human-readable console message for the condition.
func (c *Condition) Error() string {
	return c.Kind.Message()
}

// Is reports whether target is a Condition of the same kind.
func (c *Condition) Is(target error) bool {
	t, ok := target.(*Condition)
	return ok && t.Kind == c.Kind
}

// Sentinel conditions for use with errors.Is.
var (
	ErrContainerFull   = &Condition{Kind: ConditionContainerFull}
	ErrSelfPour        = &Condition{Kind: ConditionSelfPour}
	ErrSourceEmpty     = &Condition{Kind: ConditionSourceEmpty}
	ErrDestinationFull = &Condition{Kind: ConditionDestinationFull}
)

// ExitCode defines the CLI exit codes.
// Domain conditions never change the exit code; only failures to load
// or validate a scenario file do.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitScenarioNotFound indicates the scenario file given with
	// --scenario does not exist.
	ExitScenarioNotFound ExitCode = 2

	// ExitInvalidScenario indicates the scenario file could not be parsed
	// or failed validation.
	ExitInvalidScenario ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
