// Package faq answers store-policy questions with a keyword-scored lookup.
package faq

import "strings"

// Entry is one FAQ item. High-priority keywords score double so policy
// questions beat incidental word overlap.
type Entry struct {
	Question     string
	Answer       string
	Keywords     []string
	HighPriority bool
}

// Provider is the FAQ collaborator.
type Provider interface {
	// BestAnswer returns the highest-scoring answer for the message, or
	// ("", false) when nothing scores above zero.
	BestAnswer(text string) (string, bool)
}

// Keyword scores entries by keyword hits plus direct question-word overlap.
type Keyword struct {
	entries []Entry
}

// NewKeyword builds a Provider over the given entries.
func NewKeyword(entries []Entry) *Keyword {
	return &Keyword{entries: entries}
}

// DefaultEntries is the built-in store FAQ set.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Question:     "What are your store hours?",
			Answer:       "We're open Monday to Saturday, 8am to 6pm, and Sunday 10am to 4pm.",
			Keywords:     []string{"hours", "open", "close", "closing", "opening"},
			HighPriority: true,
		},
		{
			Question:     "What is your return policy?",
			Answer:       "Unused parts in original packaging can be returned within 30 days with a receipt for a full refund.",
			Keywords:     []string{"return", "refund", "exchange", "policy"},
			HighPriority: true,
		},
		{
			Question: "Do parts come with a warranty?",
			Answer:   "Most parts carry a 12-month manufacturer warranty. Batteries carry 24 months.",
			Keywords: []string{"warranty", "guarantee", "warrantee"},
		},
		{
			Question: "Do you ship orders?",
			Answer:   "Yes, we ship nationwide. Standard shipping takes 3-5 business days; orders over $99 ship free.",
			Keywords: []string{"ship", "shipping", "delivery", "deliver", "post"},
		},
		{
			Question: "What payment methods do you accept?",
			Answer:   "We accept all major cards, PayPal, and cash in store.",
			Keywords: []string{"payment", "pay", "card", "paypal", "cash"},
		},
		{
			Question: "How can I contact the store?",
			Answer:   "You can reach us at (03) 9555 0123 or parts@example.com, or ask me to arrange a callback.",
			Keywords: []string{"contact", "phone", "address", "location", "email"},
		},
	}
}

// BestAnswer scores each entry and returns the winner above zero.
func (k *Keyword) BestAnswer(text string) (string, bool) {
	textLower := strings.ToLower(text)
	words := strings.Fields(textLower)

	best := -1
	bestScore := 0
	for i, e := range k.entries {
		score := 0
		for _, kw := range e.Keywords {
			if strings.Contains(textLower, kw) {
				if e.HighPriority {
					score += 2
				} else {
					score++
				}
			}
		}
		qLower := strings.ToLower(e.Question)
		for _, w := range words {
			if len(w) > 3 && strings.Contains(qLower, w) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	if best < 0 {
		return "", false
	}
	return k.entries[best].Answer, true
}

var _ Provider = (*Keyword)(nil)
