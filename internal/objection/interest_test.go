package objection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectInterest(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantConfidence float64
		wantInterested bool
	}{
		{
			name:           "no indicators",
			text:           "we will think it over internally",
			wantConfidence: 0,
			wantInterested: false,
		},
		{
			name: "single indicator is below the line",
			// Exactly one hit scores 0.3, which is NOT interested — the
			// threshold is strictly greater-than.
			text:           "tell me more about the rollout",
			wantConfidence: 0.3,
			wantInterested: false,
		},
		{
			name:           "two indicators cross the line",
			text:           "yes, tell me more",
			wantConfidence: 0.6,
			wantInterested: true,
		},
		{
			name:           "confidence caps at 0.95",
			text:           "yes, absolutely, sign me up, sounds great, let's do it",
			wantConfidence: 0.95,
			wantInterested: true,
		},
		{
			name:           "case folded",
			text:           "YES, TELL ME MORE",
			wantConfidence: 0.6,
			wantInterested: true,
		},
		{
			name:           "repeats of one indicator count once",
			text:           "sure, sure, sure",
			wantConfidence: 0.3,
			wantInterested: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := DetectInterest(tt.text)
			assert.InDelta(t, tt.wantConfidence, sig.Confidence, 1e-9)
			assert.Equal(t, tt.wantInterested, sig.Interested)
		})
	}
}

func TestDetectInterestWarmProspect(t *testing.T) {
	sig := DetectInterest("Sounds good, yes let's do it")
	assert.True(t, sig.Interested)
	assert.GreaterOrEqual(t, sig.Confidence, 0.6)
}

func TestDetectInterestIndependentOfObjections(t *testing.T) {
	// "not interested" is an objection, but the interest detector only sees
	// its own indicator list — "interested" is a substring hit. Both signals
	// coexist; the orchestrator resolves them.
	sig := DetectInterest("I'm not interested")
	assert.InDelta(t, 0.3, sig.Confidence, 1e-9)
	assert.False(t, sig.Interested)
}
