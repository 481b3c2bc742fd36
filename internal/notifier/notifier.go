package notifier

import (
	"encoding/json"
	"fmt"
	"io"

	"CVDScenarios/internal/model"
)

// Notifier hands the generated scenarios to an output.
type Notifier interface {
	Notify(scenarios []model.Scenario) error
}

// TextNotifier writes the styled text report.
type TextNotifier struct {
	W     io.Writer
	Clock Clock
}

// NewTextNotifier creates a notifier writing the report to w.
func NewTextNotifier(w io.Writer, clock Clock) *TextNotifier {
	return &TextNotifier{W: w, Clock: clock}
}

// Notify renders and writes the report.
func (t *TextNotifier) Notify(scenarios []model.Scenario) error {
	report, err := FormatReport(scenarios, t.Clock)
	if err != nil {
		return fmt.Errorf("format report: %w", err)
	}
	if _, err := io.WriteString(t.W, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// JSONNotifier writes the scenarios as an indented JSON array.
type JSONNotifier struct {
	W io.Writer
}

// NewJSONNotifier creates a notifier writing JSON to w.
func NewJSONNotifier(w io.Writer) *JSONNotifier {
	return &JSONNotifier{W: w}
}

// Notify encodes the scenarios.
func (j *JSONNotifier) Notify(scenarios []model.Scenario) error {
	enc := json.NewEncoder(j.W)
	enc.SetIndent("", "  ")
	if err := enc.Encode(scenarios); err != nil {
		return fmt.Errorf("encode scenarios: %w", err)
	}
	return nil
}
