package questionnaire

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/strategy-cli/internal/model"
)

// Form is a submitted questionnaire as it arrives from a file or request
// body: identity plus loosely typed answer maps keyed by question id.
type Form struct {
	Lead     model.Lead     `json:"lead" yaml:"lead"`
	Answers  map[string]any `json:"answers" yaml:"answers"`
	Advanced map[string]any `json:"advanced,omitempty" yaml:"advanced"`
}

// HasAdvanced reports whether the form carries an advanced section, even an
// empty one.
func (f *Form) HasAdvanced() bool {
	return f.Advanced != nil
}

// LoadFile reads a YAML or JSON form from disk.
func LoadFile(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "questionnaire: read %s", path)
	}
	return ParseForm(data)
}

// ParseForm decodes a YAML or JSON document into a Form.
func ParseForm(data []byte) (*Form, error) {
	var f Form
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "questionnaire: parse form")
	}
	return &f, nil
}

// Basic validates the basic section of the form.
func (f *Form) Basic() (model.QuestionnaireData, error) {
	answers, err := Basic().Decode(f.Answers)
	if err != nil {
		return model.QuestionnaireData{}, err
	}
	return BuildBasic(f.Lead, answers)
}

// AdvancedAnswers validates the advanced section of the form. Missing
// answers are not an error.
func (f *Form) AdvancedAnswers() (*model.AdvancedAnswers, error) {
	answers, err := Advanced().Decode(f.Advanced)
	if err != nil {
		return nil, err
	}
	return BuildAdvanced(answers), nil
}
