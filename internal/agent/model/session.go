package model

// LeadStage tracks progress through the three-step lead capture flow.
type LeadStage int

const (
	StageNone LeadStage = iota
	StageAwaitingConsent
	StageCollectingName
	StageCollectingContact
)

// String returns the stage name for logging.
func (s LeadStage) String() string {
	switch s {
	case StageAwaitingConsent:
		return "awaiting_consent"
	case StageCollectingName:
		return "collecting_name"
	case StageCollectingContact:
		return "collecting_contact"
	default:
		return "none"
	}
}

// SlotMemory holds sticky extraction context that survives a single-turn
// loss of the session's vehicle/part fields. It distinguishes "forgotten
// this turn" from "never known".
type SlotMemory struct {
	VehicleMake          string `json:"vehicle_make,omitempty"`
	PartCategory         string `json:"part_category,omitempty"`
	LastSKU              string `json:"last_sku,omitempty"`
	LastSearchSuccessful bool   `json:"last_search_successful"`
}

// Session is the per-conversation dialogue state. It is owned and mutated
// exclusively by the engine for one conversation; independent conversations
// get independent instances.
type Session struct {
	ConversationID string     `json:"conversation_id"`
	Vehicle        string     `json:"vehicle,omitempty"`
	Part           string     `json:"part,omitempty"`
	Slots          SlotMemory `json:"slots"`

	LeadStage          LeadStage `json:"lead_stage"`
	LeadName           string    `json:"lead_name,omitempty"`
	PendingInstallLead bool      `json:"pending_install_lead"`

	OopsCount              int     `json:"oops_count"`
	ConsecutiveFallbacks   int     `json:"consecutive_fallbacks"`
	TurnsSinceValidContext int     `json:"turns_since_valid_context"`
	PendingPartCategory    string  `json:"pending_part_category,omitempty"`
	PendingPartCount       int     `json:"pending_part_count"`
	BookingAttempts        int     `json:"booking_attempts"`
	ClfConf                float64 `json:"clf_conf"`

	LastRecommendedPart string `json:"last_recommended_part,omitempty"`
	LastSKUShown        string `json:"last_sku_shown,omitempty"`
	FriendlyMode        bool   `json:"friendly_mode"`
	HelpShown           bool   `json:"help_shown"`
}

// NewSession returns an empty session for the given conversation.
func NewSession(conversationID string) *Session {
	return &Session{ConversationID: conversationID}
}

// Reset clears all conversation context while keeping the conversation ID.
func (s *Session) Reset() {
	id := s.ConversationID
	*s = Session{ConversationID: id}
}

// ClearLeadCapture resets every lead-flow field in one step. It runs on
// successful save, on abandonment, and as part of Reset.
func (s *Session) ClearLeadCapture() {
	s.LeadStage = StageNone
	s.LeadName = ""
	s.PendingInstallLead = false
	s.BookingAttempts = 0
}

// InLeadFlow reports whether the next turn must be handled by the lead
// capture sub-flow, preempting all other intents.
func (s *Session) InLeadFlow() bool {
	return s.LeadStage != StageNone || s.PendingInstallLead
}
