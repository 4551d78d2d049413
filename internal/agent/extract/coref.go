package extract

import (
	"strings"

	"github.com/autoparts-agent/server/internal/agent/model"
)

// Part-referring phrases, checked in order. Multi-word phrases are matched
// as substrings; single words only as whole tokens so "it" never fires
// inside "with".
var corefPartPhrases = []string{"same part", "same one", "that part", "those", "it"}

// Vehicle-referring phrases.
var corefVehiclePhrases = []string{"same car", "same make", "that car", "that make", "my car"}

// ResolveCoref rewrites coreferring phrases using slot memory. The first
// matching part phrase is substituted with the stored category; a vehicle
// phrase appends the stored make instead of substituting, which preserves
// any part words already in the sentence. The input is never mutated and
// text with no antecedent comes back unchanged.
func ResolveCoref(text string, mem model.SlotMemory) string {
	resolved := text
	textLower := strings.ToLower(text)

	if mem.PartCategory != "" {
		for _, phrase := range corefPartPhrases {
			if !phraseMatches(textLower, phrase) {
				continue
			}
			resolved = replacePhrase(resolved, phrase, mem.PartCategory)
			break
		}
	}

	if mem.VehicleMake != "" {
		for _, phrase := range corefVehiclePhrases {
			if strings.Contains(textLower, phrase) {
				resolved = resolved + " " + mem.VehicleMake
				break
			}
		}
	}

	return resolved
}

func phraseMatches(textLower, phrase string) bool {
	if strings.Contains(phrase, " ") {
		return strings.Contains(textLower, phrase)
	}
	for _, tok := range tokenize(textLower) {
		if tok == phrase {
			return true
		}
	}
	return false
}

// replacePhrase does a case-insensitive replacement of the first occurrence
// of phrase. Single-word phrases are replaced only at token boundaries.
func replacePhrase(text, phrase, with string) string {
	if strings.Contains(phrase, " ") {
		idx := strings.Index(strings.ToLower(text), phrase)
		if idx < 0 {
			return text
		}
		return text[:idx] + with + text[idx+len(phrase):]
	}

	fields := strings.Fields(text)
	for i, f := range fields {
		if strings.ToLower(strings.Trim(f, ".,!?;:'\"")) == phrase {
			fields[i] = with
			return strings.Join(fields, " ")
		}
	}
	return text
}

// Negation phrases recognized on the raw (unresolved) message.
var simpleNegations = map[string]bool{
	"no":           true,
	"nope":         true,
	"no thanks":    true,
	"not now":      true,
	"no thank you": true,
	"nah":          true,
}

var negativePhrases = []string{"don't want", "do not want", "not interested", "no need", "not needed"}

// IsNegation reports whether the message is a refusal. The engine runs this
// before intent classification; a refusal cancels any active lead capture
// while preserving all other context.
func IsNegation(text string) bool {
	textLower := strings.ToLower(strings.TrimSpace(text))

	if simpleNegations[textLower] {
		return true
	}
	if strings.HasPrefix(textLower, "no ") || strings.HasPrefix(textLower, "not ") {
		return true
	}
	for _, phrase := range negativePhrases {
		if strings.Contains(textLower, phrase) {
			return true
		}
	}
	return false
}
