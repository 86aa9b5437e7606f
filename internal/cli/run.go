// Package cli: run.go implements the root command's session run.
//
// A session is resolved from the built-in default or a --scenario file,
// optionally with its pours replaced by --pour flags, then executed by
// scenario.Run. The report is printed as text (the display lines and
// condition messages) or as JSON.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shinji-kodama/color-pour/internal/model"
	"github.com/shinji-kodama/color-pour/internal/scenario"
)

// separator is printed between the initial and final container displays.
const separator = "---"

// runFlags holds the flag values for the root command.
type runFlags struct {
	// scenarioPath is the --scenario file; empty means scenario.Default().
	scenarioPath string

	// pours are raw --pour values in "from->to" form.
	pours []string
}

// runSession resolves the scenario, runs it, and prints the report to w.
// Conditions raised by container operations are part of the output,
// not errors, so the exit code stays 0 for every valid scenario.
func runSession(w io.Writer, flags *runFlags) error {
	s, err := resolveScenario(flags)
	if err != nil {
		return err
	}
	VerboseLog("Running scenario %q with %d containers and %d pours",
		s.Name, len(s.Containers), len(s.Pours))

	report, err := scenario.Run(s)
	if err != nil {
		return err
	}
	VerboseLog("Run finished with %d conditions", len(report.Diagnostics))

	return printReport(w, report)
}

// resolveScenario loads the scenario named by the flags and applies any
// --pour overrides.
func resolveScenario(flags *runFlags) (*scenario.Scenario, error) {
	s := scenario.Default()
	if flags.scenarioPath != "" {
		loaded, err := scenario.Load(flags.scenarioPath)
		if err != nil {
			return nil, err
		}
		VerboseLog("Loaded scenario from %s", flags.scenarioPath)
		s = loaded
	}

	if len(flags.pours) > 0 {
		steps := make([]scenario.Step, 0, len(flags.pours))
		for _, raw := range flags.pours {
			step, err := scenario.ParseStep(raw)
			if err != nil {
				return nil, model.WrapCLIError(model.ExitInvalidScenario, "invalid --pour value", err)
			}
			steps = append(steps, step)
		}
		s.Pours = steps
	}

	return s, nil
}

// printReport outputs the report in text or JSON format, depending on the
// global --json flag.
func printReport(w io.Writer, report *scenario.Report) error {
	if IsJSONOutput() {
		return printReportJSON(w, report)
	}
	return printReportText(w, report)
}

// printReportJSON outputs the full report as indented JSON.
func printReportJSON(w io.Writer, report *scenario.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printReportText outputs the report in console order:
//
//	<seeding condition messages>
//	Container [Red] (1/3)
//	Container [Green] (1/3)
//	Container [Blue] (1/3)
//	---
//	<pour condition messages>
//	Container [] (0/3)
//	Container [Green] (1/3)
//	Container [Blue Red] (2/3)
func printReportText(w io.Writer, report *scenario.Report) error {
	var lines []string
	for _, d := range report.DiagnosticsFor(scenario.PhaseSeed) {
		lines = append(lines, d.Message)
	}
	for _, snap := range report.Before {
		lines = append(lines, snap.Display)
	}
	lines = append(lines, separator)
	for _, d := range report.DiagnosticsFor(scenario.PhasePour) {
		lines = append(lines, d.Message)
	}
	for _, snap := range report.After {
		lines = append(lines, snap.Display)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
