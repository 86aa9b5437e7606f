package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/color-pour/internal/model"
)

// Scenario is a complete color-pour session definition.
type Scenario struct {
	// Name is an optional display name for the session.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Containers lists the seed colors of each container, bottom to top.
	// The index in this slice is the container's index in Pours.
	Containers [][]string `json:"containers" yaml:"containers"`

	// Pours lists the transfers to attempt, in order.
	Pours []Step `json:"pours,omitempty" yaml:"pours,omitempty"`
}

// Step is a single pour from one container index to another.
type Step struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// String returns the step in "from->to" form, the same form ParseStep accepts.
func (s Step) String() string {
	return fmt.Sprintf("%d->%d", s.From, s.To)
}

// ParseStep parses a "from->to" string such as "0->1" into a Step.
// Surrounding whitespace around either index is ignored.
func ParseStep(s string) (Step, error) {
	parts := strings.SplitN(s, "->", 2)
	if len(parts) != 2 {
		return Step{}, fmt.Errorf("invalid pour %q: expected format from->to", s)
	}

	from, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Step{}, fmt.Errorf("invalid pour %q: source index: %w", s, err)
	}
	to, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Step{}, fmt.Errorf("invalid pour %q: destination index: %w", s, err)
	}
	return Step{From: from, To: to}, nil
}

// Default returns the built-in session: three containers seeded with
// Red, Green and Blue, then pours 0->1 and 1->2.
func Default() *Scenario {
	return &Scenario{
		Name:       "default",
		Containers: [][]string{{"Red"}, {"Green"}, {"Blue"}},
		Pours:      []Step{{From: 0, To: 1}, {From: 1, To: 2}},
	}
}

// Load reads a scenario file and decodes it according to its extension.
//
// Supported extensions:
//   - .json, .jsonc: JSON with optional comments and trailing commas
//   - .yaml, .yml: YAML
//
// A file must hold exactly one JSON value or YAML document, and unknown
// fields are rejected, so that typos in a scenario file surface as errors.
// Returns a CLIError with ExitScenarioNotFound if the file does not exist
// and ExitInvalidScenario if it cannot be decoded.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitScenarioNotFound,
				fmt.Sprintf("scenario file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var s Scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		err = decodeJSON(data, &s)
	case ".yaml", ".yml":
		err = decodeYAML(data, &s)
	default:
		return nil, model.NewCLIError(
			model.ExitInvalidScenario,
			fmt.Sprintf("unsupported scenario file extension %q (valid: .json, .jsonc, .yaml, .yml)", filepath.Ext(path)),
		)
	}
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitInvalidScenario,
			fmt.Sprintf("failed to parse scenario file %s", path),
			err,
		)
	}

	return &s, nil
}

// errTrailingData is returned when a scenario file holds more than one
// JSON value or YAML document.
var errTrailingData = errors.New("unexpected data after the scenario definition")

func decodeJSON(data []byte, s *Scenario) error {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return err
	}
	var rest json.RawMessage
	if err := dec.Decode(&rest); err != io.EOF {
		return errTrailingData
	}
	return nil
}

func decodeYAML(data []byte, s *Scenario) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		return err
	}
	var rest yaml.Node
	if err := dec.Decode(&rest); err != io.EOF {
		return errTrailingData
	}
	return nil
}
