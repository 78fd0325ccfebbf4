package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/strategy-cli/internal/advanced"
	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/questionnaire"
	"github.com/sells-group/strategy-cli/internal/render"
	"github.com/sells-group/strategy-cli/internal/store"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) SaveRun(ctx context.Context, run *model.Run) error {
	return m.Called(ctx, run).Error(0)
}

func (m *mockStore) SaveRuns(ctx context.Context, runs []*model.Run) error {
	return m.Called(ctx, runs).Error(0)
}

func (m *mockStore) GetRun(ctx context.Context, id string) (*model.Run, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Run), args.Error(1)
}

func (m *mockStore) ListRuns(ctx context.Context, filter store.RunFilter) ([]model.Run, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Run), args.Error(1)
}

func (m *mockStore) Migrate(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *mockStore) Ping(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *mockStore) Close() error                      { return m.Called().Error(0) }

const formYAML = `
lead:
  name: Dana Ruiz
  email: dana@example.com
  business_name: Crumb & Co
answers:
  country: United States
  industry: Food & Beverage
  business_type: B2C (Business to Consumer)
  business_age: New business (6 months - 2 years)
  team_size: Just me (solo)
  monthly_budget: 300
  time_capacity: 6
  primary_goals: [Increase brand awareness]
  current_platforms: [Instagram]
  content_types: [Photos, Videos]
  brand_voice: Fun & Playful
  competitor_analysis: Moderately active
  previous_experience: Some basic knowledge
  content_creation_capacity: Basic - can create simple content
  automation_preference: Open to automation for basic tasks
  measurable_goals: Sales conversions
  seasonality: Somewhat seasonal
  geographic_focus: Local/City-specific
  brand_stage: Building brand awareness
advanced:
  aov: 40
`

func testForm(t *testing.T) *questionnaire.Form {
	t.Helper()
	form, err := questionnaire.ParseForm([]byte(formYAML))
	require.NoError(t, err)
	return form
}

func TestGenerate_Basic(t *testing.T) {
	p := New(advanced.Default(), nil)

	out, err := p.Generate(testForm(t), false)
	require.NoError(t, err)
	assert.Equal(t, model.RunKindBasic, out.Kind)
	require.NotNil(t, out.Basic)
	assert.Nil(t, out.Advanced)
	assert.Same(t, out.Basic, out.Result())
	assert.Equal(t, "Crumb & Co", out.Run.BusinessName)
	assert.False(t, out.Run.WasEstimated)
	assert.Contains(t, string(out.Run.Input), "Food & Beverage")
	assert.Empty(t, out.Run.ID)
}

func TestGenerate_Advanced(t *testing.T) {
	p := New(advanced.Default(), nil)

	out, err := p.Generate(testForm(t), true)
	require.NoError(t, err)
	assert.Equal(t, model.RunKindAdvanced, out.Kind)
	require.NotNil(t, out.Advanced)
	assert.True(t, out.Advanced.WasEstimated)
	assert.True(t, out.Run.WasEstimated)
	assert.Equal(t, model.RunKindAdvanced, out.Run.Kind)
}

func TestGenerate_ContractViolation(t *testing.T) {
	form := testForm(t)
	delete(form.Answers, "industry")

	_, err := New(advanced.Default(), nil).Generate(form, false)
	require.Error(t, err)
	fe, ok := model.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "industry", fe.Field)
	assert.True(t, errors.Is(err, model.ErrContract))
}

func TestGenerate_InvalidAdvancedAnswer(t *testing.T) {
	form := testForm(t)
	form.Advanced["aov"] = "lots"

	_, err := New(advanced.Default(), nil).Generate(form, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrContract))
}

func TestRun_SavesRun(t *testing.T) {
	st := new(mockStore)
	st.On("SaveRun", mock.Anything, mock.MatchedBy(func(r *model.Run) bool {
		return r.Kind == model.RunKindBasic && r.BusinessName == "Crumb & Co"
	})).Return(nil)

	out, doc, err := New(advanced.Default(), st).Run(context.Background(), testForm(t), false, render.NewRenderer(nil), render.FormatJSON)
	require.NoError(t, err)
	assert.NotNil(t, out.Basic)
	assert.Contains(t, string(doc), `"platforms"`)
	st.AssertExpectations(t)
}

func TestRun_SaveError(t *testing.T) {
	st := new(mockStore)
	st.On("SaveRun", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, _, err := New(advanced.Default(), st).Run(context.Background(), testForm(t), false, render.NewRenderer(nil), render.FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipeline: save run")
}

func TestRun_RenderErrorSkipsSave(t *testing.T) {
	st := new(mockStore)

	_, _, err := New(advanced.Default(), st).Run(context.Background(), testForm(t), false, render.NewRenderer(nil), render.FormatPDF)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRender))
	assert.Contains(t, err.Error(), "format pdf")
	st.AssertNotCalled(t, "SaveRun", mock.Anything, mock.Anything)
}

func TestRun_NoStore(t *testing.T) {
	out, doc, err := New(advanced.Default(), nil).Run(context.Background(), testForm(t), true, render.NewRenderer(nil), render.FormatMarkdown)
	require.NoError(t, err)
	assert.NotNil(t, out.Advanced)
	assert.Contains(t, string(doc), "# 30-Day Action Plan for Crumb & Co")
}

func TestSave(t *testing.T) {
	p := New(advanced.Default(), nil)
	a, err := p.Generate(testForm(t), false)
	require.NoError(t, err)
	b, err := p.Generate(testForm(t), true)
	require.NoError(t, err)

	st := new(mockStore)
	st.On("SaveRuns", mock.Anything, []*model.Run{a.Run, b.Run}).Return(nil)

	require.NoError(t, New(advanced.Default(), st).Save(context.Background(), []*Outcome{a, b}))
	st.AssertExpectations(t)

	assert.NoError(t, p.Save(context.Background(), []*Outcome{a}))
}

func TestOutcomeRender(t *testing.T) {
	p := New(advanced.Default(), nil)
	r := render.NewRenderer(nil)

	basic, err := p.Generate(testForm(t), false)
	require.NoError(t, err)
	md, err := basic.Render(context.Background(), r, render.FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Social Media Strategy for Crumb & Co")

	adv, err := p.Generate(testForm(t), true)
	require.NoError(t, err)
	md, err = adv.Render(context.Background(), r, render.FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, string(md), "# 30-Day Action Plan for Crumb & Co")
}
