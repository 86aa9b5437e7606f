package scenario

import (
	"errors"
	"fmt"

	"github.com/shinji-kodama/color-pour/internal/container"
	"github.com/shinji-kodama/color-pour/internal/model"
)

// Phase identifies which part of a run raised a diagnostic.
type Phase string

const (
	// PhaseSeed covers the Add calls that fill containers initially.
	PhaseSeed Phase = "seed"

	// PhasePour covers the Pour calls listed in Scenario.Pours.
	PhasePour Phase = "pour"
)

// Diagnostic records one advisory condition raised during a run.
type Diagnostic struct {
	Phase Phase `json:"phase"`

	// Step describes the operation, e.g. "add Yellow to 0" or "pour 0->1".
	Step string `json:"step"`

	Kind    model.ConditionKind `json:"kind"`
	Message string              `json:"message"`
}

// Snapshot captures one container's contents at a point in the run.
type Snapshot struct {
	Index   int      `json:"index"`
	Colors  []string `json:"colors"`
	Display string   `json:"display"`
}

// Report is the outcome of Run: container states after seeding and after
// all pours, plus every condition raised along the way in order.
type Report struct {
	Name        string       `json:"name,omitempty"`
	Before      []Snapshot   `json:"before"`
	After       []Snapshot   `json:"after"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// DiagnosticsFor returns the diagnostics raised during the given phase.
func (r *Report) DiagnosticsFor(phase Phase) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Phase == phase {
			out = append(out, d)
		}
	}
	return out
}

// Run validates s, seeds one container per entry in s.Containers, and
// attempts every pour in order.
//
// Conditions raised by Add or Pour do not stop the run; they are recorded
// as diagnostics. Run only fails when s does not validate, returning a
// CLIError with ExitInvalidScenario.
func Run(s *Scenario) (*Report, error) {
	if errs := Validate(s); len(errs) > 0 {
		return nil, model.NewCLIError(model.ExitInvalidScenario, JoinValidationErrors(errs))
	}

	report := &Report{
		Name:        s.Name,
		Diagnostics: make([]Diagnostic, 0),
	}

	containers := make([]*container.Container, len(s.Containers))
	for i, colors := range s.Containers {
		containers[i] = container.New()
		for _, color := range colors {
			err := containers[i].Add(model.NewElement(color))
			report.record(PhaseSeed, fmt.Sprintf("add %s to %d", color, i), err)
		}
	}
	report.Before = snapshot(containers)

	for _, step := range s.Pours {
		err := container.Pour(containers[step.From], containers[step.To])
		report.record(PhasePour, "pour "+step.String(), err)
	}
	report.After = snapshot(containers)

	return report, nil
}

// record appends a diagnostic when err is a Condition. Run only ever
// passes Add and Pour results, which return nil or a Condition.
func (r *Report) record(phase Phase, step string, err error) {
	var cond *model.Condition
	if !errors.As(err, &cond) {
		return
	}
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Phase:   phase,
		Step:    step,
		Kind:    cond.Kind,
		Message: cond.Error(),
	})
}

func snapshot(containers []*container.Container) []Snapshot {
	snaps := make([]Snapshot, 0, len(containers))
	for i, c := range containers {
		snaps = append(snaps, Snapshot{
			Index:   i,
			Colors:  c.Colors(),
			Display: c.String(),
		})
	}
	return snaps
}
