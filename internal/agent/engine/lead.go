package engine

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/autoparts-agent/server/internal/agent/extract"
	"github.com/autoparts-agent/server/internal/agent/model"
	"github.com/autoparts-agent/server/internal/leadstore"
	logx "github.com/autoparts-agent/server/pkg/logger"
)

var consentWords = []string{"yes", "ok", "sure", "yeah", "book", "arrange"}

// hasContactShape tells a "both please" reply apart from one that actually
// carries a number or an address.
var hasContactShape = regexp.MustCompile(`\d{10}|@`)

// handleLead runs the three-step capture flow: consent, name, contact.
// handled is false only when a declined consent carried a fresh product
// mention, which the product path then picks up.
func (e *Engine) handleLead(ctx context.Context, sess *model.Session, text, resolved string) (string, bool) {
	switch {
	case sess.LeadStage == model.StageAwaitingConsent,
		sess.PendingInstallLead && sess.LeadStage == model.StageNone:
		return e.leadConsent(sess, text, resolved)

	case sess.LeadStage == model.StageCollectingName:
		return e.leadName(sess, text), true

	case sess.LeadStage == model.StageCollectingContact:
		return e.leadContact(ctx, sess, text), true
	}

	// Intent said lead but no stage is active (e.g. an unsolicited "contact
	// me"): start from consent granted.
	sess.LeadStage = model.StageCollectingName
	return "May I have your name?", true
}

func (e *Engine) leadConsent(sess *model.Session, text, resolved string) (string, bool) {
	textLower := strings.ToLower(text)
	for _, w := range consentWords {
		if strings.Contains(textLower, w) {
			sess.LeadStage = model.StageCollectingName
			return "May I have your name?", true
		}
	}

	sess.ClearLeadCapture()

	vehicleMake, category := extract.Extract(resolved, e.syn.VehicleSynonyms(), e.syn.CategorySynonyms())
	if vehicleMake == "" && category == "" {
		return "No problem! Is there anything else I can help you find?", true
	}
	// Declined, but the message names a vehicle or part: let the product
	// path adopt it.
	return "", false
}

func (e *Engine) leadName(sess *model.Session, text string) string {
	name := strings.TrimSpace(text)
	if !extract.IsValidName(name) {
		return "I need your name to proceed. Could you please provide your first and last name?"
	}
	sess.LeadName = name
	sess.LeadStage = model.StageCollectingContact
	return fmt.Sprintf("Thanks, %s. Phone or email so we can reach you?", name)
}

func (e *Engine) leadContact(ctx context.Context, sess *model.Session, text string) string {
	contact := strings.TrimSpace(text)

	if strings.Contains(strings.ToLower(contact), "both") && !hasContactShape.MatchString(contact) {
		return "I'd be happy to use both! Please provide your phone number and email address. For example: '0410 123 456 and john@email.com'"
	}

	details := extract.ExtractContact(contact)
	validPhone := details.Phone != "" && extract.IsValidPhone(details.Phone)
	validEmail := details.Email != "" && extract.IsValidEmail(details.Email)

	if !validPhone && !validEmail {
		sess.BookingAttempts++
		if sess.BookingAttempts >= e.cfg.BookingAttemptsCap {
			sess.ClearLeadCapture()
			return "It seems we're having trouble collecting your contact information. Would you like to start over or try a different approach?"
		}
		return "I need a valid phone number or email address to contact you. Please provide a phone number (like 0410 123 456) or email address (like name@email.com)."
	}

	partName := sess.Part
	if partName == "" {
		partName = sess.LastRecommendedPart
	}
	if partName == "" {
		partName = "parts"
	}
	vehicleName := sess.Vehicle
	if vehicleName == "" {
		vehicleName = "your vehicle"
	}

	lead := leadstore.Lead{
		Timestamp:        time.Now().UTC(),
		Name:             sess.LeadName,
		VehicleMake:      sess.Vehicle,
		PartCategory:     partName,
		ServiceRequested: sess.PendingInstallLead,
	}
	if validPhone {
		lead.Phone = details.Phone
	}
	if validEmail {
		lead.Email = details.Email
	}

	var confirmation string
	if sess.PendingInstallLead {
		lead.Message = fmt.Sprintf("Installation service for %s", partName)
		confirmation = fmt.Sprintf("✅ Perfect! Thanks %s, we'll have a certified technician contact you about %s installation.", sess.LeadName, displayCategory(partName))
	} else {
		lead.Message = fmt.Sprintf("Requested %s for %s", partName, vehicleName)
		confirmation = fmt.Sprintf("✅ Perfect! Thanks %s, we'll reach out soon about %s availability.", sess.LeadName, displayCategory(partName))
	}

	if err := e.leads.Append(ctx, lead); err != nil {
		// Leave the stage as-is so the shopper can simply resend.
		logx.Error().Err(err).Str("conversationID", sess.ConversationID).Msg("failed to persist lead")
		return "I'm sorry, I couldn't save your details just now. Could you send your phone or email once more?"
	}

	sess.ClearLeadCapture()
	return confirmation
}
