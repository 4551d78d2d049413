// Package engine is the conversation state machine. One call to Turn takes
// the raw message and the session, walks a cascade of guards, and always
// produces a reply plus a consistent session, whatever the collaborators do.
package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/autoparts-agent/server/internal/agent/extract"
	"github.com/autoparts-agent/server/internal/agent/intent"
	"github.com/autoparts-agent/server/internal/agent/model"
	"github.com/autoparts-agent/server/internal/faq"
	"github.com/autoparts-agent/server/internal/genai"
	"github.com/autoparts-agent/server/internal/install"
	"github.com/autoparts-agent/server/internal/inventory"
	"github.com/autoparts-agent/server/internal/leadstore"
	"github.com/autoparts-agent/server/internal/synonyms"
	logx "github.com/autoparts-agent/server/pkg/logger"
)

// Deps are the engine's collaborators. Generator may be nil; every call
// site that uses it has a deterministic fallback.
type Deps struct {
	Inventory inventory.Provider
	Synonyms  synonyms.Provider
	Install   install.Provider
	FAQ       faq.Provider
	Leads     leadstore.Store
	Detector  *intent.Detector
	Generator genai.Generator
	Sessions  model.SessionRepository
}

// Engine drives the turn-by-turn dialogue.
type Engine struct {
	cfg       model.EngineConfig
	inventory inventory.Provider
	syn       synonyms.Provider
	install   install.Provider
	faq       faq.Provider
	leads     leadstore.Store
	detector  *intent.Detector
	generator genai.Generator
	sessions  model.SessionRepository
}

func New(cfg model.EngineConfig, deps Deps) *Engine {
	return &Engine{
		cfg:       cfg,
		inventory: deps.Inventory,
		syn:       deps.Synonyms,
		install:   deps.Install,
		faq:       deps.FAQ,
		leads:     deps.Leads,
		detector:  deps.Detector,
		generator: deps.Generator,
		sessions:  deps.Sessions,
	}
}

// Makes the store carries parts for. Anything else gets a polite refusal
// rather than an empty search.
var supportedMakes = []string{
	"Honda", "Toyota", "Ford", "BMW", "Nissan", "Chevrolet",
	"Subaru", "Audi", "Volkswagen", "Jeep", "Mercedes-Benz",
}

// probeMakes is the small set used to decide whether a category is stocked
// at all when the shopper has not named a make yet.
var probeMakes = []string{"Honda", "Toyota", "Ford", "BMW", "Nissan"}

// Weight of the previous value when folding a fresh external-classifier
// confidence into the session's running confidence.
const clfConfDecay = 0.7

// Respond loads the session for a conversation, runs one turn, and saves
// the updated session. The session repository is the only part that can
// fail; the turn itself always yields a reply.
func (e *Engine) Respond(ctx context.Context, conversationID, text string) (string, error) {
	sess, err := e.sessions.Load(ctx, conversationID)
	if err != nil {
		return "", err
	}
	if sess == nil {
		sess = model.NewSession(conversationID)
	}

	reply := e.Turn(ctx, sess, text)

	if err := e.sessions.Save(ctx, sess); err != nil {
		return "", err
	}
	return reply, nil
}

// Turn processes one message against the session and returns the reply.
// The session is mutated in place.
func (e *Engine) Turn(ctx context.Context, sess *model.Session, raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "How can I help you find auto parts today?"
	}

	if reply, ok := e.multiItemReply(text); ok {
		return reply
	}

	// Negation runs on the unresolved message: it cancels any active lead
	// capture but leaves the rest of the context alone.
	if extract.IsNegation(text) && sess.InLeadFlow() {
		sess.ClearLeadCapture()
		return "No problem! Is there anything else I can help you find?"
	}

	resolved := extract.ResolveCoref(text, sess.Slots)
	res := e.detector.Detect(ctx, resolved, sess)
	if res.External {
		sess.ClfConf = clfConfDecay*sess.ClfConf + (1-clfConfDecay)*res.Confidence
	}
	logx.Debug().Str("conversationID", sess.ConversationID).
		Str("intent", string(res.Intent)).Str("resolved", resolved).
		Msg("turn classified")

	// Abuse and garbage never touch the slots, so a hostile message cannot
	// corrupt an otherwise valid search context.
	switch res.Intent {
	case model.IntentAbuse:
		return e.abuseReply(sess)
	case model.IntentNonsense:
		return "I'm here to help with auto parts for your vehicle. Could you let me know what specific part you're looking for?"
	}

	if res.Intent != model.IntentUnknown {
		sess.OopsCount = 0
		sess.ConsecutiveFallbacks = 0
	}

	switch res.Intent {
	case model.IntentCallback:
		sess.LeadStage = model.StageAwaitingConsent
		return "I'd be happy to arrange a callback for you! May I have your name and phone number so our team can reach out?"

	case model.IntentPromotions:
		vehicleContext := ""
		if sess.Vehicle != "" {
			vehicleContext = " for your " + sess.Vehicle
		}
		return fmt.Sprintf("Great question! We currently have special pricing on lighting and suspension parts%s. What specific part are you interested in?", vehicleContext)

	case model.IntentUnknown:
		return e.handleUnknown(ctx, sess, text)

	case model.IntentChitchat:
		return e.handleChitchat(sess, strings.ToLower(text))

	case model.IntentCarSales:
		sess.LeadStage = model.StageAwaitingConsent
		return "I'm happy to help you with that! However, I'm an auto parts store assistant, so I'm more knowledgeable about vehicle components rather than buying a new car. Can I have your contact so our partner dealership can reach out to help you find the perfect car?"

	case model.IntentInstallation:
		return e.handleInstallation(sess)

	case model.IntentFAQ:
		if answer, ok := e.faq.BestAnswer(text); ok {
			return answer
		}
		// No FAQ entry matched: fall through to product guidance.
	}

	if res.Intent == model.IntentLead || sess.InLeadFlow() {
		if reply, handled := e.handleLead(ctx, sess, text, resolved); handled {
			return reply
		}
	}

	return e.handleProduct(ctx, sess, resolved)
}

// abuseReply de-escalates without echoing anything back, keeping whatever
// search context the session already holds.
func (e *Engine) abuseReply(sess *model.Session) string {
	closing := "How can I help you find the right parts for your vehicle?"
	if sess.Vehicle != "" && sess.Part != "" {
		closing = fmt.Sprintf("Were you still after %s for your %s?", displayCategory(sess.Part), sess.Vehicle)
	}
	return "I'm here to assist with auto parts. Let's keep our conversation respectful and professional. " + closing
}

// multiItemReply catches compound requests like "Honda battery or Toyota
// tires" and asks the shopper to pick one instead of silently answering the
// first clause.
func (e *Engine) multiItemReply(text string) (string, bool) {
	if !intent.HasMultipleItems(text) {
		return "", false
	}
	segments := intent.SplitItems(text)
	if len(segments) < 2 {
		return "", false
	}

	summaries := make([]string, 0, 2)
	for _, seg := range segments[:2] {
		vehicleMake, category := extract.Extract(seg, e.syn.VehicleSynonyms(), e.syn.CategorySynonyms())
		switch {
		case vehicleMake != "" && category != "":
			summaries = append(summaries, vehicleMake+" "+category)
		case vehicleMake != "":
			summaries = append(summaries, vehicleMake+" parts")
		case category != "":
			summaries = append(summaries, category)
		}
	}
	if len(summaries) < 2 {
		return "", false
	}
	return fmt.Sprintf("I see you're asking about multiple items: %s. Which one would you like me to help with first?", strings.Join(summaries, " and ")), true
}

const redirectSystemPrompt = "If the user's request is outside auto parts (weather, politics, etc.), reply politely in at most 2 sentences, then steer back: 'I can help you find parts or store info, just tell me make + part.'"

// handleUnknown is the escalation ladder for messages nothing recognized.
func (e *Engine) handleUnknown(ctx context.Context, sess *model.Session, text string) string {
	sess.OopsCount++
	sess.ConsecutiveFallbacks++

	if sess.ConsecutiveFallbacks >= e.cfg.FallbackEscalation {
		sess.ConsecutiveFallbacks = 0
		sess.LeadStage = model.StageAwaitingConsent
		return "I'm still having trouble. Let me get a human to help. Could I have your email or phone?"
	}

	if sess.OopsCount >= e.cfg.OopsThreshold && !sess.HelpShown {
		sess.HelpShown = true
		sess.OopsCount = 0
		return "I'm having trouble understanding. Here are some examples:\n\n" +
			"• 'Honda battery' - Find parts\n" +
			"• 'What are your hours?' - Store info\n" +
			"• 'Call me back' - Contact request\n\n" +
			"What would you like to try?"
	}

	if sess.ClfConf < e.cfg.LowConfidence && e.generator != nil {
		reply, err := e.generator.Complete(ctx, redirectSystemPrompt, text)
		if err == nil && strings.TrimSpace(reply) != "" {
			return reply
		}
		logx.Warn().Err(err).Msg("off-scope redirect generation failed, using canned reply")
	}

	return "I didn't catch that. Could you try asking about a specific car part or store information?"
}

func (e *Engine) handleInstallation(sess *model.Session) string {
	vehicle, part := sess.Vehicle, sess.Part
	if vehicle == "" {
		vehicle = sess.Slots.VehicleMake
	}
	if part == "" {
		part = sess.Slots.PartCategory
	}

	if vehicle != "" && part != "" {
		minutes := e.install.MinutesFor(part)
		sess.PendingInstallLead = true
		return fmt.Sprintf("For %s %s installation, the estimated time is %d minutes.\n\nWould you like to book an appointment or get a quote? I can arrange professional installation.", vehicle, displayCategory(part), minutes)
	}

	return "I'd be happy to help with installation! What part are you looking to install? I can provide timing estimates and arrange professional installation."
}

// handleProduct is the product search path, reached on product intent and
// as the terminal fallthrough for everything else.
func (e *Engine) handleProduct(ctx context.Context, sess *model.Session, resolved string) string {
	vehicleMake, category := extract.Extract(resolved, e.syn.VehicleSynonyms(), e.syn.CategorySynonyms())

	if vehicleMake != "" || category != "" {
		// A fresh product mention always beats a pending lead ask.
		sess.ClearLeadCapture()
		sess.TurnsSinceValidContext = 0
	} else {
		sess.TurnsSinceValidContext++
		if sess.TurnsSinceValidContext >= e.cfg.ContextTimeoutTurns {
			sess.Reset()
			return "Let's start fresh! What vehicle and part can I help you find?"
		}
	}

	// Non-destructive merge: a turn that names only a part must not wipe
	// the remembered vehicle, and vice versa.
	if vehicleMake != "" {
		sess.Vehicle = vehicleMake
		sess.Slots.VehicleMake = vehicleMake
	} else if sess.Slots.VehicleMake != "" {
		sess.Vehicle = sess.Slots.VehicleMake
	}
	if category != "" {
		sess.Part = category
		sess.Slots.PartCategory = category
	} else if sess.Slots.PartCategory != "" {
		sess.Part = sess.Slots.PartCategory
	}

	switch {
	case sess.Vehicle != "" && sess.Part != "":
		return e.searchAndReply(ctx, sess)
	case sess.Part != "":
		return e.askForMake(sess)
	case sess.Vehicle != "":
		return e.askForPart(sess, resolved)
	}

	return "I'd be happy to help you find auto parts! Please tell me:\n" +
		"1. Your vehicle make (Honda, Toyota, etc.)\n" +
		"2. What part you need (battery, tires, brakes, etc.)\n\n" +
		"For example: 'Honda battery' or 'Toyota tires'"
}

func (e *Engine) searchAndReply(ctx context.Context, sess *model.Session) string {
	if !isSupportedMake(sess.Vehicle) {
		return fmt.Sprintf("I'd love to help, but we don't currently stock parts for %s. We specialize in parts for: %s, and others. Would you like to check parts for a different vehicle?",
			sess.Vehicle, strings.Join(supportedMakes[:5], ", "))
	}

	records := e.inventory.Lookup(sess.Vehicle, sess.Part)
	if len(records) == 0 {
		return e.stockOutReply(sess)
	}

	sorted := inventory.SortByAvailability(records)
	topSKU := sorted[0].SKU
	if topSKU == sess.LastSKUShown {
		display := displayCategory(sess.Part)
		return fmt.Sprintf("You already saw our top %s option. Would you like to see other %s choices or different parts for your %s?", display, display, sess.Vehicle)
	}

	reply := e.formatResults(ctx, sorted, sess.Vehicle, sess.Part)
	reply += "\n\n💡 Need help with installation or have questions? Just ask!"

	sess.Slots.LastSearchSuccessful = true
	sess.Slots.LastSKU = topSKU
	sess.LastSKUShown = topSKU
	sess.LastRecommendedPart = sess.Part
	return reply
}

func (e *Engine) stockOutReply(sess *model.Session) string {
	display := displayCategory(sess.Part)
	var b strings.Builder
	fmt.Fprintf(&b, "Sorry, we don't currently have %s for %s in stock.", display, sess.Vehicle)

	alternatives := e.stockAlternatives(sess.Part, sess.Vehicle)
	if len(alternatives) > 0 {
		fmt.Fprintf(&b, "\n\n🔄 However, we do have %s for: %s.", display, strings.Join(alternatives, ", "))
	}

	fmt.Fprintf(&b, "\n\n📞 Would you like us to notify you when %s %s become available?", sess.Vehicle, display)

	sess.Slots.LastSearchSuccessful = false
	sess.LeadStage = model.StageAwaitingConsent
	return b.String()
}

// stockAlternatives returns up to five makes that actually stock the
// category right now, excluding the one that just came up empty.
func (e *Engine) stockAlternatives(category, excludeMake string) []string {
	makes := e.inventory.MakesStocking(category)
	out := make([]string, 0, 5)
	for _, m := range makes {
		if strings.EqualFold(m, excludeMake) {
			continue
		}
		out = append(out, m)
		if len(out) == 5 {
			break
		}
	}
	return out
}

func (e *Engine) askForMake(sess *model.Session) string {
	display := displayCategory(sess.Part)

	// Loop guard: repeating the same make-less part request escalates to a
	// callback offer instead of a third "which make?".
	if sess.PendingPartCategory == sess.Part {
		sess.PendingPartCount++
		if sess.PendingPartCount >= e.cfg.PartLoopGuard {
			sess.PendingPartCategory = ""
			sess.PendingPartCount = 0
			sess.LeadStage = model.StageAwaitingConsent
			return fmt.Sprintf("I see you need %s but I need to know your vehicle make to find the right fit. Would you like me to have someone call you to help find the perfect %s for your car?", display, display)
		}
	} else {
		sess.PendingPartCategory = sess.Part
		sess.PendingPartCount = 1
	}

	if !e.categoryStocked(sess.Part) {
		return fmt.Sprintf("I'd love to help with %s, but that's not a category we currently stock. We specialize in: battery, tires, brakes, filters, oil, spark plugs, suspension, and lighting.\n\nWhat type of part can I help you find instead?", display)
	}

	return fmt.Sprintf("I can help you find %s for various vehicles! Which make do you need them for?\n\nAvailable makes: %s", display, strings.Join(e.inventory.AllMakes(), ", "))
}

func (e *Engine) categoryStocked(category string) bool {
	for _, m := range probeMakes {
		if len(e.inventory.Lookup(m, category)) > 0 {
			return true
		}
	}
	return false
}

func (e *Engine) askForPart(sess *model.Session, resolved string) string {
	resolvedLower := strings.ToLower(resolved)
	if strings.Contains(resolvedLower, "what else") || strings.Contains(resolvedLower, "what other") {
		categories := e.inventory.CategoriesFor(sess.Vehicle)
		if len(categories) > 0 {
			display := make([]string, 0, len(categories))
			seen := map[string]bool{}
			for _, c := range categories {
				d := displayCategory(c)
				if !seen[d] {
					seen[d] = true
					display = append(display, d)
				}
			}
			sort.Strings(display)
			return fmt.Sprintf("Here are the parts we have available for your %s:\n\n%s\n\nWhich category interests you?", sess.Vehicle, strings.Join(display, ", "))
		}
	}

	return fmt.Sprintf("Perfect! I can help you find parts for your %s. What type of part do you need?\n\nPopular parts: battery, brakes, filters, lights, oil, spark plugs, suspension, tires", sess.Vehicle)
}

// displayCategory maps canonical table names to user-facing wording.
func displayCategory(category string) string {
	switch category {
	case "Spark Plugs":
		return "spark plugs"
	case "Electrical":
		return "electrical parts"
	case "Engine Oil":
		return "engine oil"
	case "Fuel System":
		return "fuel system parts"
	case "Lighting":
		return "lights"
	case "Performance":
		return "performance parts"
	default:
		return strings.ToLower(category)
	}
}

func isSupportedMake(vehicleMake string) bool {
	for _, m := range supportedMakes {
		if m == vehicleMake {
			return true
		}
	}
	return false
}
