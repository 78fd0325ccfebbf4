package model

// AnswerKind identifies which question type produced an Answer.
type AnswerKind string

const (
	KindChoice      AnswerKind = "choice"
	KindMultiChoice AnswerKind = "multi_choice"
	KindNumber      AnswerKind = "number"
	KindText        AnswerKind = "text"
)

// Answer is a single questionnaire answer. The concrete types below are the
// only implementations; form state is decoded into one of them once, at the
// questionnaire boundary.
type Answer interface {
	Kind() AnswerKind
	isAnswer()
}

// Choice is the answer to a single-select question.
type Choice string

// MultiChoice is the ordered answer to a multi-select question.
type MultiChoice []string

// Number is the answer to a numeric or slider question.
type Number float64

// Text is a free-text answer.
type Text string

func (Choice) Kind() AnswerKind      { return KindChoice }
func (MultiChoice) Kind() AnswerKind { return KindMultiChoice }
func (Number) Kind() AnswerKind      { return KindNumber }
func (Text) Kind() AnswerKind        { return KindText }

func (Choice) isAnswer()      {}
func (MultiChoice) isAnswer() {}
func (Number) isAnswer()      {}
func (Text) isAnswer()        {}

// Contains reports whether the selection includes option.
func (m MultiChoice) Contains(option string) bool {
	for _, v := range m {
		if v == option {
			return true
		}
	}
	return false
}

// Answers maps question IDs to decoded answers.
type Answers map[string]Answer

// Choice returns the single-select answer for id, or "" if absent or of another kind.
func (a Answers) Choice(id string) (string, bool) {
	v, ok := a[id].(Choice)
	return string(v), ok
}

// MultiChoice returns the multi-select answer for id.
func (a Answers) MultiChoice(id string) (MultiChoice, bool) {
	v, ok := a[id].(MultiChoice)
	return v, ok
}

// Number returns the numeric answer for id.
func (a Answers) Number(id string) (float64, bool) {
	v, ok := a[id].(Number)
	return float64(v), ok
}

// Text returns the free-text answer for id.
func (a Answers) Text(id string) (string, bool) {
	v, ok := a[id].(Text)
	return string(v), ok
}
