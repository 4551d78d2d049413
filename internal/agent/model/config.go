package model

// ================ Config ================

// EngineConfig holds the dialogue tunables. Defaults consolidate the
// thresholds the escalation and loop-guard behavior is tested against.
type EngineConfig struct {
	// Consecutive unrecognized turns before escalating to human contact.
	// Kept above OopsThreshold so the examples menu gets one chance to fire
	// before a human is offered.
	FallbackEscalation int `envconfig:"ENGINE_FALLBACK_ESCALATION" default:"3"`
	// Unrecognized turns before the one-time examples menu is shown.
	OopsThreshold int `envconfig:"ENGINE_OOPS_THRESHOLD" default:"2"`
	// Turns with no fresh vehicle/part extraction before a forced reset.
	ContextTimeoutTurns int `envconfig:"ENGINE_CONTEXT_TIMEOUT_TURNS" default:"5"`
	// Repeats of the same make-less part request before offering a callback.
	PartLoopGuard int `envconfig:"ENGINE_PART_LOOP_GUARD" default:"2"`
	// Invalid contact submissions before the lead flow is abandoned.
	BookingAttemptsCap int `envconfig:"ENGINE_BOOKING_ATTEMPTS_CAP" default:"3"`
	// Classifier confidence below which off-scope redirects go through the
	// text generator.
	LowConfidence float64 `envconfig:"ENGINE_LOW_CONFIDENCE" default:"0.4"`
}

// GeneratorModelConfig configures the optional Gemini-backed text generator.
type GeneratorModelConfig struct {
	Model       string  `envconfig:"GENERATOR_MODEL" default:"gemini-2.5-flash-lite"`
	MaxTokens   int     `envconfig:"GENERATOR_MAX_TOKENS" default:"300"`
	Temperature float32 `envconfig:"GENERATOR_TEMPERATURE" default:"0.3"`
	// TimeoutSeconds bounds every generator call so a slow model can never
	// stall a turn.
	TimeoutSeconds int `envconfig:"GENERATOR_TIMEOUT_SECONDS" default:"10"`
}

// SessionConfig configures session persistence.
type SessionConfig struct {
	TTL string `envconfig:"SESSION_TTL" default:"30m"`
}
