package genai

import (
	"context"
	"strings"

	"github.com/autoparts-agent/server/internal/agent/model"
)

const classifySystemPrompt = `You are an auto parts store assistant. Classify the user's message into EXACTLY ONE of these intents:
- product: asking about auto parts or mentioning a vehicle make/model
- faq: asking about store policies, hours, location, etc.
- installation: asking about installing parts or service
- lead: wants to be contacted or is providing contact info
- chitchat: general conversation, greetings, thanks
- car_sales: wants to buy a car (not parts)
- promotions: asking about deals or discounts
- unknown: cannot determine intent

Reply with ONLY the intent name, nothing else.`

// modelConfidence is reported for every successful classification; the chat
// API gives no confidence of its own.
const modelConfidence = 0.75

// Classifier adapts a Generator into the secondary intent classifier the
// rule engine consults for ambiguous messages. The returned label is not
// validated here; the caller holds the closed intent set.
type Classifier struct {
	gen Generator
}

func NewClassifier(gen Generator) *Classifier {
	return &Classifier{gen: gen}
}

func (c *Classifier) Classify(ctx context.Context, text string) (model.Intent, float64, error) {
	out, err := c.gen.Complete(ctx, classifySystemPrompt, text)
	if err != nil {
		return model.IntentUnknown, 0, err
	}
	label := strings.ToLower(strings.TrimSpace(out))
	return model.Intent(label), modelConfidence, nil
}
