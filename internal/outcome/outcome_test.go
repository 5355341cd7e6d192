package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		status     string
		answeredBy string
		want       Outcome
	}{
		{
			name:   "no answer",
			status: "no-answer",
			want:   NoAnswer,
		},
		{
			name:   "busy counts as no answer",
			status: "busy",
			want:   NoAnswer,
		},
		{
			name:   "failed call",
			status: "failed",
			want:   Failed,
		},
		{
			name:       "voicemail via AMD",
			status:     "completed",
			answeredBy: "machine_end_beep",
			want:       Voicemail,
		},
		{
			name:       "status beats transcript",
			transcript: "yes let's book a meeting",
			status:     "no-answer",
			want:       NoAnswer,
		},
		{
			name:       "booking beats objection",
			transcript: "I'm too busy now but let's book a meeting for friday",
			status:     "completed",
			answeredBy: "human",
			want:       MeetingBooked,
		},
		{
			name:       "removal request",
			transcript: "stop calling me, take me off your list",
			status:     "completed",
			answeredBy: "human",
			want:       DoNotCall,
		},
		{
			name:       "flat rejection",
			transcript: "sorry, we're not interested",
			status:     "completed",
			answeredBy: "human",
			want:       NotInterested,
		},
		{
			name:       "callback request",
			transcript: "can you call me back next week",
			status:     "completed",
			answeredBy: "human",
			want:       CallbackScheduled,
		},
		{
			name:       "busy prospect becomes callback",
			transcript: "I'm in a meeting right now",
			status:     "completed",
			answeredBy: "human",
			want:       CallbackScheduled,
		},
		{
			name:       "ordinary conversation",
			transcript: "we talked through the product and pricing tiers",
			status:     "completed",
			answeredBy: "human",
			want:       Completed,
		},
		{
			name: "empty everything",
			want: Completed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.transcript, tt.status, tt.answeredBy))
		})
	}
}
