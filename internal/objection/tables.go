package objection

// Static phrase and response tables. All trigger phrases are stored
// lowercase and matched by plain substring containment; a phrase inside a
// longer unrelated word or sentence still triggers (known limitation — the
// tables are tuned so that multi-word phrases keep false positives rare).
// Tables are package-level constants in effect: initialized once, never
// mutated, no reload.

// categoryOrder fixes the detection precedence. Unknown is excluded: it has
// no trigger phrases and is only ever the fallback.
var categoryOrder = []Category{
	NotInterested,
	TooExpensive,
	NoTime,
	AlreadyHaveSolution,
	SendEmail,
	CallBackLater,
	WrongPerson,
	DoNotCall,
	NeedToThink,
	NoBudget,
	NotDecisionMaker,
	HappyWithCurrent,
}

// phraseTable holds each category's trigger phrases in match order.
var phraseTable = map[Category][]string{
	NotInterested: {
		"not interested",
		"no interest",
		"not for us",
		"don't need",
		"no thanks",
		"no thank you",
	},
	TooExpensive: {
		"too expensive",
		"very expensive",
		"too much money",
		"can't afford",
		"cannot afford",
		"costs too much",
		"out of our price range",
	},
	NoTime: {
		"no time",
		"don't have time",
		"too busy",
		"in a meeting",
		"bad time",
		"in the middle of something",
	},
	AlreadyHaveSolution: {
		"already have",
		"already using",
		"already work with",
		"have a vendor",
		"have a provider",
		"under contract",
	},
	SendEmail: {
		"send me an email",
		"send an email",
		"email me",
		"send me some information",
		"send me the details",
		"put it in an email",
	},
	CallBackLater: {
		"call me back",
		"call back later",
		"call me later",
		"try me later",
		"reach out later",
		"another time",
	},
	WrongPerson: {
		"wrong person",
		"not the right person",
		"don't handle",
		"not my department",
		"not my area",
	},
	DoNotCall: {
		"do not call",
		"don't call",
		"stop calling",
		"remove me from your list",
		"take me off your list",
		"do not contact",
	},
	NeedToThink: {
		"think about it",
		"need to think",
		"let me think",
		"sleep on it",
		"talk it over",
	},
	NoBudget: {
		"no budget",
		"budget is tight",
		"don't have the budget",
		"out of budget",
		"budget freeze",
	},
	NotDecisionMaker: {
		"not the decision maker",
		"can't make that decision",
		"not my decision",
		"have to check with",
		"need to ask my",
		"not up to me",
		"above my pay grade",
	},
	HappyWithCurrent: {
		"happy with our",
		"satisfied with our",
		"works fine for us",
		"no complaints",
		"happy where we are",
	},
	Unknown: {},
}

// responseTable maps every category to its canned reply. The Confidence
// values here are authoring confidence and are overwritten with the
// detection confidence by GetObjectionResponse.
var responseTable = map[Category]Response{
	NotInterested: {
		Category:              NotInterested,
		Confidence:            0.9,
		ResponseText:          "No problem at all, thanks for letting me know. I appreciate your time and I'll let you get back to your day.",
		ContinuesConversation: false,
	},
	TooExpensive: {
		Category:              TooExpensive,
		Confidence:            0.85,
		ResponseText:          "I hear you, budget matters. Most teams we work with felt the same until they saw what it replaced. Can I ask what you're comparing it against?",
		FollowUpText:          "If the numbers worked out, would the product itself be a fit for you?",
		ContinuesConversation: true,
	},
	NoTime: {
		Category:              NoTime,
		Confidence:            0.85,
		ResponseText:          "Totally understand, I'll keep it short. Would it be easier if I called back at a time that suits you better?",
		ContinuesConversation: true,
		CaptureHint:           CaptureCallbackTime,
	},
	AlreadyHaveSolution: {
		Category:              AlreadyHaveSolution,
		Confidence:            0.85,
		ResponseText:          "That makes sense, most people we talk to have something in place. Out of curiosity, what would your current provider have to get wrong for you to look at alternatives?",
		ContinuesConversation: true,
	},
	SendEmail: {
		Category:              SendEmail,
		Confidence:            0.9,
		ResponseText:          "Happy to do that. What's the best email address to send the details to?",
		FollowUpText:          "I'll keep it short, just the essentials and pricing.",
		ContinuesConversation: true,
		CaptureHint:           CaptureEmail,
	},
	CallBackLater: {
		Category:              CallBackLater,
		Confidence:            0.9,
		ResponseText:          "Of course. What day and time usually works best for you?",
		ContinuesConversation: true,
		CaptureHint:           CaptureCallbackTime,
	},
	WrongPerson: {
		Category:              WrongPerson,
		Confidence:            0.9,
		ResponseText:          "Thanks for letting me know. Who would be the right person to speak with about this?",
		ContinuesConversation: true,
		CaptureHint:           CaptureDecisionMaker,
	},
	DoNotCall: {
		Category:              DoNotCall,
		Confidence:            1.0,
		ResponseText:          "Understood. I'm removing your number from our list right now, and you won't hear from us again. Sorry for the interruption.",
		ContinuesConversation: false,
	},
	NeedToThink: {
		Category:              NeedToThink,
		Confidence:            0.8,
		ResponseText:          "That's fair, it's not a small decision. What's the main thing you'd want to think through? Maybe I can help with it right now.",
		ContinuesConversation: true,
	},
	NoBudget: {
		Category:              NoBudget,
		Confidence:            0.85,
		ResponseText:          "Understood. When does your next budget cycle open up? I can reach out again closer to then.",
		ContinuesConversation: true,
		CaptureHint:           CaptureCallbackTime,
	},
	NotDecisionMaker: {
		Category:              NotDecisionMaker,
		Confidence:            0.9,
		ResponseText:          "No problem. Could you point me to the person who owns that decision? I'd be happy to reach out to them directly.",
		ContinuesConversation: true,
		CaptureHint:           CaptureDecisionMaker,
	},
	HappyWithCurrent: {
		Category:              HappyWithCurrent,
		Confidence:            0.85,
		ResponseText:          "Glad to hear it's working for you. Can I ask what you like most about your current setup? If anything ever changes we'd love a shot.",
		ContinuesConversation: true,
	},
	Unknown: {
		Category:              Unknown,
		Confidence:            0.3,
		ResponseText:          "I want to make sure I understand you correctly. Could you tell me a bit more about your concern?",
		ContinuesConversation: true,
	},
}

// interestIndicators feed DetectInterest. Independent of the objection
// tables; each entry counts once per utterance.
var interestIndicators = []string{
	"interested",
	"sounds good",
	"sounds great",
	"tell me more",
	"yes",
	"sure",
	"let's do it",
	"go ahead",
	"that works",
	"sign me up",
	"absolutely",
	"definitely",
}
