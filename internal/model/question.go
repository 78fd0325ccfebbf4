package model

// Tier is the questionnaire a question belongs to.
type Tier string

const (
	TierBasic    Tier = "basic"
	TierAdvanced Tier = "advanced"
)

// Question is one entry of a questionnaire catalog.
type Question struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Tier        Tier       `json:"tier"`
	Kind        AnswerKind `json:"kind"`
	Options     []string   `json:"options,omitempty"`
	Min         *float64   `json:"min,omitempty"`
	Max         *float64   `json:"max,omitempty"`
	Step        float64    `json:"step,omitempty"`
	Unit        string     `json:"unit,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
	Disclaimer  string     `json:"disclaimer,omitempty"`
	Required    bool       `json:"required"`
}

// HasOption reports whether v is in the question's declared option set.
// Questions without options accept any value.
func (q *Question) HasOption(v string) bool {
	if len(q.Options) == 0 {
		return true
	}
	for _, o := range q.Options {
		if o == v {
			return true
		}
	}
	return false
}

// InRange reports whether v lies within the question's declared bounds.
func (q *Question) InRange(v float64) bool {
	if q.Min != nil && v < *q.Min {
		return false
	}
	if q.Max != nil && v > *q.Max {
		return false
	}
	return true
}

// FilterByTier returns the questions belonging to tier.
func FilterByTier(questions []Question, tier Tier) []Question {
	var result []Question
	for _, q := range questions {
		if q.Tier == tier {
			result = append(result, q)
		}
	}
	return result
}
