package hh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeSent, "sent"},
		{OutcomeTestRequired, "test_required"},
		{OutcomeCoverLetterRequired, "cover_letter_required"},
		{OutcomeCoverLetterFilled, "cover_letter_filled"},
		{OutcomeExtraSteps, "extra_steps"},
		{OutcomeNoApplyButton, "no_apply_button"},
		{OutcomeUnknown, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.outcome.String())
	}
}

func TestOutcomeSucceeded(t *testing.T) {
	assert.True(t, OutcomeSent.Succeeded())
	assert.True(t, OutcomeCoverLetterFilled.Succeeded())

	assert.False(t, OutcomeTestRequired.Succeeded())
	assert.False(t, OutcomeCoverLetterRequired.Succeeded())
	assert.False(t, OutcomeExtraSteps.Succeeded())
	assert.False(t, OutcomeNoApplyButton.Succeeded())
	assert.False(t, OutcomeUnknown.Succeeded())
}
