package questionnaire

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sells-group/strategy-cli/internal/model"
)

// Registry is an indexed question catalog.
type Registry struct {
	Questions []model.Question
	byID      map[string]*model.Question
	required  []*model.Question
}

// NewRegistry creates a Registry with indexed lookups.
func NewRegistry(questions []model.Question) *Registry {
	r := &Registry{
		Questions: questions,
		byID:      make(map[string]*model.Question, len(questions)),
	}
	for i := range r.Questions {
		q := &r.Questions[i]
		r.byID[q.ID] = q
		if q.Required {
			r.required = append(r.required, q)
		}
	}
	return r
}

// Basic returns a Registry over the basic-tier catalog.
func Basic() *Registry { return NewRegistry(BasicCatalog()) }

// Advanced returns a Registry over the advanced-tier catalog.
func Advanced() *Registry { return NewRegistry(AdvancedCatalog()) }

// ByID returns the question with the given id, or nil if not found.
func (r *Registry) ByID(id string) *model.Question {
	return r.byID[id]
}

// Required returns the questions that must be answered.
func (r *Registry) Required() []*model.Question {
	return r.required
}

// OptionsFor returns the options offered for a question given the answers
// so far. TikTok is not offered as a current platform to businesses in
// India.
func (r *Registry) OptionsFor(id string, country string) []string {
	q := r.byID[id]
	if q == nil {
		return nil
	}
	if id == "current_platforms" && country == model.CountryIndia {
		var opts []string
		for _, o := range q.Options {
			if o != model.PlatformTikTok {
				opts = append(opts, o)
			}
		}
		return opts
	}
	return q.Options
}

// ForCountry returns a copy of the catalog with option sets filtered for
// country.
func (r *Registry) ForCountry(country string) []model.Question {
	out := make([]model.Question, len(r.Questions))
	for i, q := range r.Questions {
		q.Options = r.OptionsFor(q.ID, country)
		out[i] = q
	}
	return out
}

// Decode converts raw form values into typed answers. Values are checked
// against each question's kind, option set and range; nil values are
// treated as unanswered. The first violation in catalog order is returned.
func (r *Registry) Decode(raw map[string]any) (model.Answers, error) {
	var unknown []string
	for id := range raw {
		if r.byID[id] == nil {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, model.NewFieldError(unknown[0], model.FieldUnknown)
	}

	country, _ := raw["country"].(string)
	answers := make(model.Answers, len(raw))
	for i := range r.Questions {
		q := &r.Questions[i]
		v, ok := raw[q.ID]
		if !ok || v == nil {
			continue
		}
		a, err := decodeValue(q, v, r.OptionsFor(q.ID, country))
		if err != nil {
			return nil, err
		}
		answers[q.ID] = a
	}
	return answers, nil
}

// Missing returns the ids of required questions with no usable answer, in
// catalog order.
func (r *Registry) Missing(answers model.Answers) []string {
	var missing []string
	for _, q := range r.required {
		a, ok := answers[q.ID]
		if !ok {
			missing = append(missing, q.ID)
			continue
		}
		switch v := a.(type) {
		case model.Choice:
			if v == "" {
				missing = append(missing, q.ID)
			}
		case model.Text:
			if strings.TrimSpace(string(v)) == "" {
				missing = append(missing, q.ID)
			}
		case model.MultiChoice:
			if len(v) == 0 {
				missing = append(missing, q.ID)
			}
		}
	}
	return missing
}

func decodeValue(q *model.Question, v any, options []string) (model.Answer, error) {
	typeErr := func() error {
		return &model.FieldError{Field: q.ID, Kind: model.FieldInvalidType, Detail: fmt.Sprintf("want %s, got %T", q.Kind, v)}
	}
	optionErr := func(s string) error {
		return &model.FieldError{Field: q.ID, Kind: model.FieldInvalidOption, Detail: fmt.Sprintf("%q is not an option", s)}
	}

	switch q.Kind {
	case model.KindChoice:
		s, ok := v.(string)
		if !ok {
			return nil, typeErr()
		}
		if s != "" && !containsOption(options, s) {
			return nil, optionErr(s)
		}
		return model.Choice(s), nil

	case model.KindMultiChoice:
		items, ok := toStrings(v)
		if !ok {
			return nil, typeErr()
		}
		for _, s := range items {
			if !containsOption(options, s) {
				return nil, optionErr(s)
			}
		}
		return model.MultiChoice(items), nil

	case model.KindNumber:
		n, ok := toFloat(v)
		if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, typeErr()
		}
		if !q.InRange(n) {
			return nil, &model.FieldError{Field: q.ID, Kind: model.FieldOutOfRange, Detail: fmt.Sprintf("%v", n)}
		}
		return model.Number(n), nil

	case model.KindText:
		s, ok := v.(string)
		if !ok {
			return nil, typeErr()
		}
		return model.Text(s), nil
	}
	return nil, typeErr()
}

func containsOption(options []string, s string) bool {
	if len(options) == 0 {
		return true
	}
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}

func toStrings(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
