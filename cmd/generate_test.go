package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/strategy-cli/internal/config"
	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/scoring"
	"github.com/sells-group/strategy-cli/internal/store"
)

const sampleForm = `
lead:
  name: Dana Ruiz
  email: dana@example.com
  business_name: Crumb & Co
answers:
  country: United Kingdom
  industry: Food & Beverage
  business_type: B2C (Business to Consumer)
  business_age: New business (6 months - 2 years)
  team_size: 2-3 people
  monthly_budget: 600
  time_capacity: 12
  primary_goals: [Increase brand awareness]
  current_platforms: [Instagram, Facebook]
  content_types: [Photos, Videos]
  brand_voice: Fun & Playful
  competitor_analysis: Moderately active
  previous_experience: Some basic knowledge
  content_creation_capacity: Basic - can create simple content
  automation_preference: Open to automation for basic tasks
  measurable_goals: Sales conversions
  seasonality: Somewhat seasonal
  geographic_focus: National
  brand_stage: Building brand awareness
`

// useConfig installs a test configuration in the package-level cfg.
func useConfig(t *testing.T, st config.StoreConfig) {
	t.Helper()
	prev := cfg
	t.Cleanup(func() { cfg = prev })

	c := &config.Config{Store: st, Scoring: scoring.DefaultConfig()}
	c.Server.Port = 8080
	c.Batch.MaxConcurrent = 2
	cfg = c
}

func writeSampleForm(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(sampleForm), 0o644))
	return path
}

func TestRunGenerate_JSON(t *testing.T) {
	useConfig(t, config.StoreConfig{Driver: "none"})
	ctx := context.Background()

	env, err := initEnv(ctx, "generate")
	require.NoError(t, err)
	defer env.Close()

	doc, err := runGenerate(ctx, env, writeSampleForm(t, t.TempDir(), "form.yaml"), false, "json")
	require.NoError(t, err)

	var res model.StrategyResult
	require.NoError(t, json.Unmarshal(doc, &res))
	assert.Equal(t, "Crumb & Co", res.BusinessName)
	assert.NotEmpty(t, res.Platforms)
}

func TestRunGenerate_AdvancedMarkdownStoresRun(t *testing.T) {
	dir := t.TempDir()
	useConfig(t, config.StoreConfig{Driver: "sqlite", DatabaseURL: filepath.Join(dir, "history.db")})
	ctx := context.Background()

	env, err := initEnv(ctx, "generate")
	require.NoError(t, err)
	defer env.Close()

	doc, err := runGenerate(ctx, env, writeSampleForm(t, dir, "form.yaml"), true, "md")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "# 30-Day Action Plan for Crumb & Co"))

	runs, err := env.Store.ListRuns(ctx, store.RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, model.RunKindAdvanced, runs[0].Kind)
	assert.True(t, runs[0].WasEstimated)

	md, err := renderRun(ctx, env.Renderer, &runs[0], "markdown")
	require.NoError(t, err)
	assert.Equal(t, string(doc), string(md))
}

func TestRunGenerate_Errors(t *testing.T) {
	useConfig(t, config.StoreConfig{Driver: "none"})
	ctx := context.Background()

	env, err := initEnv(ctx, "generate")
	require.NoError(t, err)
	defer env.Close()

	_, err = runGenerate(ctx, env, "missing.yaml", false, "json")
	assert.Error(t, err)

	_, err = runGenerate(ctx, env, writeSampleForm(t, t.TempDir(), "form.yaml"), false, "docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestInitStore_Disabled(t *testing.T) {
	useConfig(t, config.StoreConfig{Driver: "none"})
	_, err := initStore(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run history is disabled")
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	require.NoError(t, writeOutput(path, []byte("# hi\n")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# hi\n", string(data))
}
