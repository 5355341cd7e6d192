// Package objection classifies prospect utterances into sales objection
// categories and selects canned responses for the conversation orchestrator.
// Everything here is a pure function over static tables; any number of calls
// may run concurrently.
package objection

import "strings"

// Category is one of a closed set of objection types. Declaration order is
// significant: DetectObjection tries categories in this order and the first
// match wins, so earlier categories take precedence when an utterance
// contains trigger phrases from more than one.
type Category string

const (
	NotInterested       Category = "not_interested"
	TooExpensive        Category = "too_expensive"
	NoTime              Category = "no_time"
	AlreadyHaveSolution Category = "already_have_solution"
	SendEmail           Category = "send_email"
	CallBackLater       Category = "call_back_later"
	WrongPerson         Category = "wrong_person"
	DoNotCall           Category = "do_not_call"
	NeedToThink         Category = "need_to_think"
	NoBudget            Category = "no_budget"
	NotDecisionMaker    Category = "not_decision_maker"
	HappyWithCurrent    Category = "happy_with_current"
	Unknown             Category = "unknown"
)

// CaptureHint tells the orchestrator what structured datum to try to
// collect next (email address, callback time, referral contact).
type CaptureHint string

const (
	CaptureEmail         CaptureHint = "email"
	CaptureCallbackTime  CaptureHint = "callback_time"
	CaptureDecisionMaker CaptureHint = "decision_maker"
)

// DetectionResult is the outcome of classifying a single utterance.
type DetectionResult struct {
	Category      Category `json:"category"`
	Confidence    float64  `json:"confidence"`
	MatchedPhrase string   `json:"matched_phrase"`
}

// Response is the canned reply bundle for an objection. ContinuesConversation
// tells the orchestrator whether to keep the call alive after playback.
type Response struct {
	Category              Category    `json:"category"`
	Confidence            float64     `json:"confidence"`
	ResponseText          string      `json:"response_text"`
	FollowUpText          string      `json:"follow_up_text,omitempty"`
	ContinuesConversation bool        `json:"continues_conversation"`
	CaptureHint           CaptureHint `json:"capture_hint,omitempty"`
}

// InterestSignal is the result of the positive-sentiment heuristic, which is
// independent of the objection pipeline.
type InterestSignal struct {
	Interested bool    `json:"interested"`
	Confidence float64 `json:"confidence"`
}

// DetectObjection classifies a transcribed utterance. The input is trimmed
// and lowercased, then each category's trigger phrases are tested for plain
// substring containment, category order then phrase order; the first hit
// wins. Matching is not token-aware ("no timeout" matches "no time") — see
// the note in tables.go. Unmatched text yields Unknown with confidence 0.
func DetectObjection(text string) DetectionResult {
	normalized := strings.ToLower(strings.TrimSpace(text))
	for _, cat := range categoryOrder {
		for _, phrase := range phraseTable[cat] {
			if strings.Contains(normalized, phrase) {
				return DetectionResult{
					Category:      cat,
					Confidence:    matchConfidence(phrase),
					MatchedPhrase: phrase,
				}
			}
		}
	}
	return DetectionResult{Category: Unknown}
}

// matchConfidence rewards longer, more specific matches: 0.7 floor for any
// match, +0.02 per phrase byte capped at +0.2, hard ceiling 0.95.
func matchConfidence(phrase string) float64 {
	bonus := float64(len(phrase)) * 0.02
	if bonus > 0.2 {
		bonus = 0.2
	}
	c := 0.7 + bonus
	if c > 0.95 {
		c = 0.95
	}
	return c
}

// GetObjectionResponse selects the canned response for a detection and
// stamps it with the detection's confidence; the template's authoring
// confidence is always overwritten. A category missing from the table falls
// back to the Unknown template rather than failing.
func GetObjectionResponse(det DetectionResult) Response {
	resp, ok := responseTable[det.Category]
	if !ok {
		resp = responseTable[Unknown]
	}
	resp.Confidence = det.Confidence
	return resp
}

// HandleObjection is the one-shot entry point used by the conversation
// orchestrator: classify the utterance, then select its response.
func HandleObjection(text string) Response {
	return GetObjectionResponse(DetectObjection(text))
}

// DetectInterest scores positive-sentiment indicators in an utterance. Each
// indicator in the list counts at most once regardless of how often it
// occurs. A single hit scores exactly 0.3, which is deliberately below the
// strictly-greater-than-0.3 line for Interested.
func DetectInterest(text string) InterestSignal {
	lower := strings.ToLower(text)
	matches := 0
	for _, phrase := range interestIndicators {
		if strings.Contains(lower, phrase) {
			matches++
		}
	}
	confidence := float64(matches) * 0.3
	if confidence > 0.95 {
		confidence = 0.95
	}
	return InterestSignal{Interested: confidence > 0.3, Confidence: confidence}
}

// ListObjectionTypes returns every category in detection precedence order,
// with Unknown last.
func ListObjectionTypes() []Category {
	out := make([]Category, 0, len(categoryOrder)+1)
	out = append(out, categoryOrder...)
	return append(out, Unknown)
}

// ExamplePhrases returns a copy of a category's trigger phrases in match
// order. Unknown and unrecognized categories have none.
func ExamplePhrases(cat Category) []string {
	phrases := phraseTable[cat]
	if len(phrases) == 0 {
		return nil
	}
	out := make([]string, len(phrases))
	copy(out, phrases)
	return out
}
