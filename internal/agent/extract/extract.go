// Package extract maps free text to (vehicle make, part category) pairs and
// resolves coreferring phrases against slot memory. Everything here is a
// pure function of its inputs.
package extract

import (
	"strings"

	"github.com/autoparts-agent/server/pkg/fuzzy"
)

// fuzzyCategoryCutoff is the minimum similarity for typo-tolerant category
// matching.
const fuzzyCategoryCutoff = 70

// luxuryMakes are recognized but unsupported. They are returned title-cased
// so the engine can answer with an out-of-stock message instead of silence.
var luxuryMakes = map[string]bool{
	"ferrari":     true,
	"lamborghini": true,
	"porsche":     true,
	"maserati":    true,
	"bentley":     true,
	"bugatti":     true,
	"mclaren":     true,
	"jaguar":      true,
	"rolls":       true,
}

// compoundCategories are multi-word phrases checked against the whole
// message before single tokens. Compounds disambiguate generic words like
// "oil" ("oil filter" is a filter, not engine oil).
var compoundCategories = []struct {
	phrase   string
	category string
}{
	{"spark plugs", "Spark Plugs"},
	{"spark plug", "Spark Plugs"},
	{"oil filter", "Filters"},
	{"air filter", "Filters"},
	{"fuel filter", "Filters"},
	{"cabin filter", "Filters"},
	{"rear mirror", "Accessories"},
	{"side mirror", "Accessories"},
	{"front mirror", "Accessories"},
	{"rear bumper", "Accessories"},
	{"front bumper", "Accessories"},
	{"side bumper", "Accessories"},
	{"rear light", "Lighting"},
	{"side light", "Lighting"},
	{"front light", "Lighting"},
	{"engine oil", "Engine Oil"},
}

// Extract returns the canonical vehicle make and part category found in the
// message, either of which may be empty.
func Extract(text string, vehicleSynonyms, categorySynonyms map[string]string) (string, string) {
	textLower := strings.ToLower(strings.TrimSpace(text))
	tokens := tokenize(textLower)

	return extractMake(tokens, vehicleSynonyms), extractCategory(textLower, tokens, categorySynonyms)
}

func extractMake(tokens []string, vehicleSynonyms map[string]string) string {
	// Long tokens first so short words like "my" can never collide with a
	// make synonym.
	for _, tok := range tokens {
		if len(tok) < 4 {
			continue
		}
		if canon, ok := vehicleSynonyms[tok]; ok {
			return canon
		}
	}
	for _, tok := range tokens {
		if len(tok) >= 4 {
			continue
		}
		if canon, ok := vehicleSynonyms[tok]; ok {
			return canon
		}
	}
	for _, tok := range tokens {
		if luxuryMakes[tok] {
			return titleCase(tok)
		}
	}
	return ""
}

func extractCategory(textLower string, tokens []string, categorySynonyms map[string]string) string {
	for _, c := range compoundCategories {
		if strings.Contains(textLower, c.phrase) {
			return c.category
		}
	}

	for _, tok := range tokens {
		if canon, ok := categorySynonyms[tok]; ok {
			if discardStarterMatch(tok, canon, tokens) {
				continue
			}
			return canon
		}
	}

	// Typo tolerance: fuzzy match longer tokens against the synonym keys.
	keys := synonymKeys(categorySynonyms)
	for _, tok := range tokens {
		if len(tok) <= 3 {
			continue
		}
		if key, ok := fuzzy.BestMatch(tok, keys, fuzzyCategoryCutoff); ok {
			canon := categorySynonyms[key]
			if discardStarterMatch(key, canon, tokens) {
				continue
			}
			return canon
		}
	}
	return ""
}

// discardStarterMatch rejects a starter-motor resolution when the literal
// token is absent, so "start buying" never maps to an electrical part.
func discardStarterMatch(matchedKey, _ string, tokens []string) bool {
	if matchedKey != "starter" {
		return false
	}
	for _, tok := range tokens {
		if tok == "starter" {
			return false
		}
	}
	return true
}

func tokenize(textLower string) []string {
	fields := strings.Fields(strings.ReplaceAll(textLower, "-", " "))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if tok := strings.Trim(f, ".,!?;:'\""); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func synonymKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
