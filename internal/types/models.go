package types

// Lead is one prospect row from the campaign list.
type Lead struct {
	LeadID  string `json:"lead_id,omitempty"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	City    string `json:"city,omitempty"`
	Product string `json:"product,omitempty"`
}

// CallResult is the terminal record for one outbound call. Assembled by the
// orchestrator from vendor status plus the classified outcome; not persisted
// here.
type CallResult struct {
	CallID     string `json:"call_id"`
	Lead       Lead   `json:"lead"`
	Outcome    string `json:"outcome"`
	Transcript string `json:"transcript,omitempty"`
	DurationMs int64  `json:"duration_ms,omitempty"`
}
