package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/strategy-cli/internal/model"
	"github.com/sells-group/strategy-cli/internal/questionnaire"
)

func TestFormatQuestions(t *testing.T) {
	var buf bytes.Buffer
	formatQuestions(&buf, questionnaire.Basic().ForCountry(model.CountryIndia))

	out := buf.String()
	assert.Contains(t, out, "monthly_budget")
	assert.Contains(t, out, "0-10000 USD")
	assert.Contains(t, out, "country")
	assert.NotContains(t, out, "TikTok | ")
}

func TestDescribeOptions(t *testing.T) {
	adv := questionnaire.Advanced()
	assert.Equal(t, ">= 0 USD", describeOptions(*adv.ByID("aov")))
}
