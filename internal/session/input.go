package session

import "strings"

// Field identifies one of the editable input fields.
type Field string

const (
	FieldName    Field = "name"
	FieldFeeling Field = "feeling"
	FieldDetails Field = "details"
)

// presetLabels is the fixed, ordered set of quick-select feelings.
var presetLabels = []string{
	"Grounded",
	"Anxious",
	"Overwhelmed",
	"Hopeful",
	"Lonely",
	"Motivated",
	"Restless",
	"Tender",
}

// Presets returns the ordered preset labels for rendering quick-select controls.
func Presets() []string {
	out := make([]string, len(presetLabels))
	copy(out, presetLabels)
	return out
}

// InputModel holds the three free-text fields edited by the user. Fields are
// never validated here; validation happens at submission time so typing is
// never blocked.
type InputModel struct {
	name    string
	feeling string
	details string
}

// NewInputModel creates an empty input model.
func NewInputModel() *InputModel {
	return &InputModel{}
}

// SetField overwrites the given field unconditionally.
func (m *InputModel) SetField(field Field, value string) {
	switch field {
	case FieldName:
		m.name = value
	case FieldFeeling:
		m.feeling = value
	case FieldDetails:
		m.details = value
	}
}

// SelectPreset sets the feeling to the label exactly, overwriting any free
// text. Name and details are untouched.
func (m *InputModel) SelectPreset(label string) {
	m.feeling = label
}

// IsPresetActive reports whether the feeling currently matches the label,
// ignoring case and surrounding whitespace. Display-only; it has no effect
// on submission.
func (m *InputModel) IsPresetActive(label string) bool {
	return strings.EqualFold(strings.TrimSpace(m.feeling), label)
}

// Name returns the current name field.
func (m *InputModel) Name() string { return m.name }

// Feeling returns the current feeling field.
func (m *InputModel) Feeling() string { return m.feeling }

// Details returns the current details field.
func (m *InputModel) Details() string { return m.details }
