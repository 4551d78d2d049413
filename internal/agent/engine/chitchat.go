package engine

import (
	"fmt"
	"strings"

	"github.com/autoparts-agent/server/internal/agent/model"
)

func containsAny(s string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// handleChitchat dispatches on small-talk sub-patterns. Replies come in two
// registers: the default retail tone and a looser one once the shopper has
// asked for it. "Thanks" closes out the whole conversation.
func (e *Engine) handleChitchat(sess *model.Session, textLower string) string {
	if containsAny(textLower, "friend", "talk to me like", "speak to me like") {
		sess.FriendlyMode = true
		return "You got it! I'm here to help you out with whatever you need for your ride. What's going on with your car today? 😊"
	}

	if strings.Contains(textLower, "does that mean") {
		if sess.FriendlyMode {
			return "Yeah, I'm all good and ready to help! What can I find for your car?"
		}
		return "Yes, I'm ready to help! What auto parts do you need?"
	}

	if containsAny(textLower, "thanks", "thank you", "cheers") {
		friendly := sess.FriendlyMode
		sess.Reset()
		if friendly {
			return "No worries, buddy! Feel free to come back anytime you need auto parts help."
		}
		return "You're welcome! Feel free to come back anytime you need auto parts help."
	}

	if strings.Contains(textLower, "weather") {
		return "I don't have live weather info, but I can help with parts. What vehicle and part are you looking for?"
	}

	if containsAny(textLower, "who are you", "what are you") {
		if sess.FriendlyMode {
			return "I'm your auto parts buddy! I help find the perfect parts for your ride. What do you need?"
		}
		return "I'm your auto parts assistant! I help customers find the right parts for their vehicles. What can I help you find?"
	}

	if strings.Contains(textLower, "how are you") {
		if sess.FriendlyMode {
			return "I'm doing awesome, thanks for asking! How can I help with your car today?"
		}
		return "I'm doing great, thanks for asking! How can I help you with auto parts today?"
	}

	if containsAny(textLower, "how's your day", "how is your day", "how's your week", "how is your week", "how are things", "how's it going", "what's up", "whats up") {
		if sess.FriendlyMode {
			return "Things are going great, thanks! Ready to help you get your car sorted. What's up?"
		}
		return "Things are going well, thanks for asking! I'm here to help you find the right auto parts. What can I help you with?"
	}

	if containsAny(textLower, "hi", "hello", "hey", "good morning", "good afternoon") {
		if sess.FriendlyMode {
			return "Hey there! What's your car needing today? Just tell me the make and part (like 'Honda battery')."
		}
		return "Hello! Welcome to our auto parts store. I can help you find parts for your vehicle. Just tell me your car make and what part you need (e.g., 'Honda battery' or 'Toyota tires')."
	}

	if textLower == "ok" || textLower == "okay" || textLower == "hmm" {
		return "Sure! Let me know if you need anything."
	}

	if containsAny(textLower, "good", "great", "awesome", "nice", "cool", "perfect", "excellent", "no worries", "sounds good", "not bad") {
		return "Glad to help! Anything else?"
	}

	if containsAny(textLower, "other questions", "other parts") {
		if sess.Vehicle != "" {
			return fmt.Sprintf("Sure! I can show you other parts for your %s, or help with store info, installation services, etc. What interests you?", sess.Vehicle)
		}
		return "Sure! I can help with parts searches, store information, installation services, or any other auto parts questions. What would you like to know?"
	}

	return "How can I help you today?"
}
