// Package cli: validate.go implements the "color-pour validate" command.
//
// The validate command loads a scenario file and checks it without
// running any pours. It prints "OK" for a valid file, or every
// validation error, and exits with ExitInvalidScenario on failure.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/color-pour/internal/model"
	"github.com/shinji-kodama/color-pour/internal/scenario"
)

// NewValidateCommand creates the "validate" cobra command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario-file>",
		Short: "Check a scenario file without running it",
		Long: `Load a scenario file and report structural problems such as empty
colors or pour indices that name no container.

Examples:
  color-pour validate session.yaml
  color-pour validate session.jsonc --json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0])
		},
	}
}

// validateResultJSON is the JSON output structure of the validate command.
type validateResultJSON struct {
	Path   string   `json:"path"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// runValidate loads and validates the scenario at path, printing the
// result to w.
func runValidate(w io.Writer, path string) error {
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	errs := scenario.Validate(s)
	VerboseLog("Validated %s: %d problems", path, len(errs))

	if IsJSONOutput() {
		result := validateResultJSON{
			Path:   path,
			Valid:  len(errs) == 0,
			Errors: make([]string, 0, len(errs)),
		}
		for i := range errs {
			result.Errors = append(result.Errors, errs[i].Error())
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(w, string(data))
	} else if len(errs) == 0 {
		fmt.Fprintln(w, "OK")
	} else {
		fmt.Fprintln(w, scenario.JoinValidationErrors(errs))
	}

	if len(errs) > 0 {
		return model.NewCLIError(model.ExitInvalidScenario,
			fmt.Sprintf("scenario %s has %d validation errors", path, len(errs)))
	}
	return nil
}
