package model

// Intent is one of the closed set of conversational intents the engine
// dispatches on.
type Intent string

const (
	IntentAbuse        Intent = "abuse"
	IntentNonsense     Intent = "nonsense"
	IntentFAQ          Intent = "faq"
	IntentInstallation Intent = "installation"
	IntentCarSales     Intent = "car_sales"
	IntentCallback     Intent = "callback_request"
	IntentPromotions   Intent = "promotions"
	IntentChitchat     Intent = "chitchat"
	IntentLead         Intent = "lead"
	IntentProduct      Intent = "product"
	IntentUnknown      Intent = "unknown"
)

var knownIntents = map[Intent]bool{
	IntentAbuse:        true,
	IntentNonsense:     true,
	IntentFAQ:          true,
	IntentInstallation: true,
	IntentCarSales:     true,
	IntentCallback:     true,
	IntentPromotions:   true,
	IntentChitchat:     true,
	IntentLead:         true,
	IntentProduct:      true,
	IntentUnknown:      true,
}

// ParseIntent validates a label produced by an external classifier against
// the closed intent set. Anything outside the set is rejected so a remote
// model can never introduce a new dispatch branch.
func ParseIntent(label string) (Intent, bool) {
	in := Intent(label)
	if knownIntents[in] {
		return in, true
	}
	return IntentUnknown, false
}
