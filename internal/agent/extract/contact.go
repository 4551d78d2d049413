package extract

import (
	"regexp"
	"strings"
)

var (
	phoneRE      = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?\(?\d{3,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}|\d{10})`)
	emailRE      = regexp.MustCompile(`([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	emailExactRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneCleanRE = regexp.MustCompile(`[\s\-()]`)
	phoneValidRE = regexp.MustCompile(`^\+?\d{10,}$`)
	nameRE       = regexp.MustCompile(`^[a-zA-Z\s\-']{2,30}$`)
	digitsRE     = regexp.MustCompile(`^\d+$`)
)

// Contact holds whatever phone/email could be pulled out of a message.
type Contact struct {
	Phone string
	Email string
}

// ExtractContact pulls the first phone number and email address from the
// message. Either field may be empty.
func ExtractContact(text string) Contact {
	c := Contact{}
	if m := phoneRE.FindString(text); m != "" {
		c.Phone = m
	}
	if m := emailRE.FindString(text); m != "" {
		c.Email = m
	}
	return c
}

// IsValidPhone accepts at least ten digits with an optional leading plus,
// ignoring spaces, dashes and parens.
func IsValidPhone(phone string) bool {
	clean := phoneCleanRE.ReplaceAllString(strings.TrimSpace(phone), "")
	return phoneValidRE.MatchString(clean)
}

// IsValidEmail checks the standard address shape.
func IsValidEmail(email string) bool {
	return emailExactRE.MatchString(strings.TrimSpace(email))
}

// Tokens a person's name must not be: vehicle makes and part words that a
// confused shopper might type at the name prompt.
var notNames = map[string]bool{
	"honda": true, "toyota": true, "ford": true, "bmw": true, "nissan": true,
	"chevrolet": true, "subaru": true, "audi": true, "volkswagen": true,
	"jeep": true, "mercedes": true,
	"battery": true, "tire": true, "tires": true, "brake": true,
	"brakes": true, "oil": true, "filter": true,
}

// IsValidName accepts a plausible human name: at least two characters, not
// pure digits, not a known make or part word, and drawn from a conservative
// name character set.
func IsValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	lower := strings.ToLower(trimmed)

	if len(lower) < 2 || digitsRE.MatchString(lower) {
		return false
	}
	if notNames[lower] {
		return false
	}
	return nameRE.MatchString(trimmed)
}
