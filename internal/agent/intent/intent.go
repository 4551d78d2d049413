// Package intent maps a coreference-resolved message to one intent from a
// closed set. Keyword rules run first; an optional external classifier is
// consulted only for longer messages the rules could not place.
package intent

import (
	"context"
	"regexp"
	"strings"

	"github.com/autoparts-agent/server/internal/agent/extract"
	"github.com/autoparts-agent/server/internal/agent/model"
	"github.com/autoparts-agent/server/internal/synonyms"
	"github.com/autoparts-agent/server/pkg/fuzzy"
	logx "github.com/autoparts-agent/server/pkg/logger"
)

// ExternalClassifier is the optional second opinion. Implementations must
// return one of the closed-set intents; anything else is discarded by the
// detector. Confidence is 0..1.
type ExternalClassifier interface {
	Classify(ctx context.Context, text string) (model.Intent, float64, error)
}

// Detector runs the rule cascade and, when the rules come up empty on a
// message of more than two words, asks the external classifier.
type Detector struct {
	syn      synonyms.Provider
	external ExternalClassifier
}

// NewDetector builds a detector. external may be nil, in which case the
// rules alone decide.
func NewDetector(syn synonyms.Provider, external ExternalClassifier) *Detector {
	return &Detector{syn: syn, external: external}
}

// Rule-hit confidence levels. The external classifier supplies its own.
const (
	ruleConfidence    = 0.9
	productConfidence = 0.8
	unknownConfidence = 0.3
)

// Result is a single classification outcome. External is true only when the
// external classifier, not the rules, made the call.
type Result struct {
	Intent     model.Intent
	Confidence float64
	External   bool
}

func ruleHit(it model.Intent, conf float64) Result {
	return Result{Intent: it, Confidence: conf}
}

// Detect returns the intent for the resolved message. sess supplies
// lead-flow state for priority rule application.
func (d *Detector) Detect(ctx context.Context, text string, sess *model.Session) Result {
	textLower := strings.ToLower(strings.TrimSpace(text))

	if isToxic(textLower) {
		return ruleHit(model.IntentAbuse, ruleConfidence)
	}
	if isNonsense(textLower) {
		return ruleHit(model.IntentNonsense, ruleConfidence)
	}
	if matchesAny(textLower, faqPatterns) {
		return ruleHit(model.IntentFAQ, ruleConfidence)
	}
	if matchesAny(textLower, installPatterns) {
		return ruleHit(model.IntentInstallation, ruleConfidence)
	}
	if matchesAny(textLower, carSalesPatterns) {
		return ruleHit(model.IntentCarSales, ruleConfidence)
	}
	if isCallbackRequest(textLower) {
		return ruleHit(model.IntentCallback, ruleConfidence)
	}
	if matchesAny(textLower, promoPatterns) {
		return ruleHit(model.IntentPromotions, ruleConfidence)
	}
	if isChitchat(textLower) {
		return ruleHit(model.IntentChitchat, ruleConfidence)
	}
	if sess != nil && sess.InLeadFlow() {
		return ruleHit(model.IntentLead, ruleConfidence)
	}

	vehicleMake, category := extract.Extract(text, d.syn.VehicleSynonyms(), d.syn.CategorySynonyms())
	if vehicleMake != "" || category != "" {
		return ruleHit(model.IntentProduct, productConfidence)
	}

	// Rules came up empty. Longer messages get a second opinion.
	if d.external != nil && len(strings.Fields(text)) > 2 {
		if it, conf, err := d.external.Classify(ctx, text); err != nil {
			logx.Warn().Err(err).Msg("external intent classification failed, using rules")
		} else if parsed, ok := model.ParseIntent(string(it)); ok {
			logx.Debug().Str("intent", string(parsed)).Float64("confidence", conf).
				Msg("external classifier decided intent")
			return Result{Intent: parsed, Confidence: conf, External: true}
		}
	}

	return ruleHit(model.IntentUnknown, unknownConfidence)
}

var toxicKeywords = []string{
	"fuck", "shit", "damn", "bitch", "asshole", "stupid", "idiot",
	"moron", "dumb", "retard", "hate", "kill", "die", "rude", "dump",
}

func isToxic(textLower string) bool {
	return matchesAny(textLower, toxicKeywords)
}

var commonGreetings = map[string]bool{
	"hi": true, "hey": true, "hello": true, "yo": true, "hola": true,
}

// Part words exempted from the nonsense check even when very short, with
// fuzzy tolerance for typos.
var nonsenseExemptParts = []string{
	"battery", "batteries", "tire", "tires", "brake", "brakes", "oil",
	"filter", "filters", "spark", "plugs", "light", "lights", "mirror",
	"mirrors", "bumper", "bumpers",
}

const nonsenseExemptCutoff = 80

var absurdPatterns = []*regexp.Regexp{
	regexp.MustCompile(`eat.*battery`),
	regexp.MustCompile(`battery.*eat`),
	regexp.MustCompile(`hungry.*battery`),
	regexp.MustCompile(`are you.*gpt`),
	regexp.MustCompile(`are you.*chat`),
	regexp.MustCompile(`chat.*gpt`),
	regexp.MustCompile(`son.*playing`),
	regexp.MustCompile(`keyboard.*playing`),
	regexp.MustCompile(`my son.*wants`),
	regexp.MustCompile(`child.*wants.*eat`),
}

var gibberishRE = regexp.MustCompile(`^[a-z]{8,}$`)

var gibberishExemptWords = []string{"battery", "tire", "brake", "honda", "toyota"}

func isNonsense(textLower string) bool {
	if commonGreetings[textLower] {
		return false
	}
	for _, part := range nonsenseExemptParts {
		if strings.Contains(textLower, part) || fuzzy.Ratio(textLower, part) > nonsenseExemptCutoff {
			return false
		}
	}
	for _, re := range absurdPatterns {
		if re.MatchString(textLower) {
			return true
		}
	}
	if len(textLower) < 2 && textLower != "a" && textLower != "i" && textLower != "q" {
		return true
	}
	if gibberishRE.MatchString(textLower) && !matchesAny(textLower, gibberishExemptWords) {
		return true
	}
	return false
}

var faqPatterns = []string{
	"hours", "open", "close", "location", "address", "phone", "contact",
	"return", "warranty", "policy", "shipping", "delivery", "payment",
}

var installPatterns = []string{
	"install", "installation", "how to", "diy", "service", "appointment",
	"book", "schedule", "mechanic", "professional",
}

var carSalesPatterns = []string{
	"buy car", "new car", "used car", "car dealer", "car lot",
	"financing", "lease", "trade in",
}

var callbackPatterns = []string{
	"call me", "ring me", "callback", "call back", "contact me",
	"reach out", "get back", "notify", "let me know", "get in touch",
	"get a hold",
}

// isCallbackRequest matches the callback phrase list, plus bare "call" in a
// message of three words or fewer ("please call" is a callback, "calling all
// Honda owners about brakes" is not).
func isCallbackRequest(textLower string) bool {
	if matchesAny(textLower, callbackPatterns) {
		return true
	}
	if strings.Contains(textLower, "call") && len(strings.Fields(textLower)) <= 3 {
		return true
	}
	return false
}

var promoPatterns = []string{
	"special", "deal", "discount", "sale", "promotion", "offer",
	"coupon", "cheap", "best price",
}

var chitchatExact = map[string]bool{
	"hi": true, "hello": true, "hey": true, "thanks": true,
	"thank you": true, "ok": true, "okay": true, "yo": true, "hola": true,
}

var chitchatPatterns = []string{
	"hello", "good morning", "good afternoon", "how are you",
	"thanks", "thank you", "weather", "who are you", "what are you",
	"friend", "doing good", "am good", "i'm fine",
}

func isChitchat(textLower string) bool {
	if chitchatExact[textLower] {
		return true
	}
	return matchesAny(textLower, chitchatPatterns)
}

func matchesAny(textLower string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(textLower, p) {
			return true
		}
	}
	return false
}

// Multi-item separators. A message like "brakes and tires" should be split
// and disambiguated rather than silently answered for the first clause.
var multiSplitRE = regexp.MustCompile(`\s+(?:or|OR|and|AND|&|,)\s+|,\s+`)

var multiSeparators = []string{" or ", " OR ", " and ", " AND ", " & ", ", "}

// HasMultipleItems reports whether the raw message looks like a compound
// request.
func HasMultipleItems(text string) bool {
	for _, sep := range multiSeparators {
		if strings.Contains(text, sep) {
			return true
		}
	}
	return false
}

// SplitItems breaks a compound request into its clauses.
func SplitItems(text string) []string {
	parts := multiSplitRE.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
