// Package outcome classifies finished calls. Telephony status is checked
// first (an unanswered call has no meaningful transcript), then answering
// machine detection, then keyword rules over the transcript, reusing the
// objection engine for the terminal objection categories.
package outcome

import (
	"strings"

	"salesdialer-go/internal/objection"
)

// Outcome is the terminal classification of one outbound call.
type Outcome string

const (
	MeetingBooked     Outcome = "meeting_booked"
	CallbackScheduled Outcome = "callback_scheduled"
	DoNotCall         Outcome = "do_not_call"
	NotInterested     Outcome = "not_interested"
	Voicemail         Outcome = "voicemail"
	NoAnswer          Outcome = "no_answer"
	Failed            Outcome = "failed"
	Completed         Outcome = "completed"
)

var bookingPhrases = []string{
	"book a meeting",
	"book a demo",
	"schedule a demo",
	"calendar invite",
	"see you then",
	"meeting is set",
	"put it on the calendar",
}

// Classify maps vendor call state plus the final transcript to an outcome.
// vendorStatus and answeredBy come straight from the telephony vendor; an
// answeredBy of "machine_start"/"machine_end_beep" etc. means voicemail.
func Classify(transcript, vendorStatus, answeredBy string) Outcome {
	switch strings.ToLower(strings.TrimSpace(vendorStatus)) {
	case "no-answer", "busy":
		return NoAnswer
	case "failed", "canceled":
		return Failed
	}
	if strings.HasPrefix(strings.ToLower(answeredBy), "machine") {
		return Voicemail
	}

	lower := strings.ToLower(transcript)
	for _, p := range bookingPhrases {
		if strings.Contains(lower, p) {
			return MeetingBooked
		}
	}

	switch objection.DetectObjection(transcript).Category {
	case objection.DoNotCall:
		return DoNotCall
	case objection.NotInterested:
		return NotInterested
	case objection.CallBackLater, objection.NoTime, objection.NoBudget:
		return CallbackScheduled
	}
	return Completed
}
