package extract

import (
	"testing"

	"github.com/autoparts-agent/server/internal/agent/model"
	"github.com/autoparts-agent/server/internal/synonyms"
)

func testSynonyms() (map[string]string, map[string]string) {
	p := synonyms.NewBuiltin()
	return p.VehicleSynonyms(), p.CategorySynonyms()
}

func TestExtractMakeAndCategory(t *testing.T) {
	vs, cs := testSynonyms()

	cases := []struct {
		name     string
		text     string
		wantMake string
		wantCat  string
	}{
		{"plain", "I need brake pads for my Honda Civic", "Honda", "Brakes"},
		{"typo make", "battery for my toyta corolla", "Toyota", "Battery"},
		{"short typo make", "need tires for my hond", "Honda", "Tires"},
		{"alias", "wipers for a chevy", "Chevrolet", "Accessories"},
		{"vw alias", "vw oil filter", "Volkswagen", "Filters"},
		{"make only", "I drive a Subaru", "Subaru", ""},
		{"category only", "do you sell spark plugs", "", "Spark Plugs"},
		{"neither", "hello there", "", ""},
		{"hyphenated", "mercedes-benz brakes please", "Mercedes-Benz", "Brakes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotMake, gotCat := Extract(tc.text, vs, cs)
			if gotMake != tc.wantMake {
				t.Errorf("make: got %q want %q", gotMake, tc.wantMake)
			}
			if gotCat != tc.wantCat {
				t.Errorf("category: got %q want %q", gotCat, tc.wantCat)
			}
		})
	}
}

func TestExtractCompoundBeatsSingleToken(t *testing.T) {
	vs, cs := testSynonyms()

	// "oil filter" must resolve to Filters, never Engine Oil.
	_, cat := Extract("I need an oil filter for my Ford", vs, cs)
	if cat != "Filters" {
		t.Fatalf("oil filter resolved to %q, want Filters", cat)
	}

	_, cat = Extract("engine oil for a bmw", vs, cs)
	if cat != "Engine Oil" {
		t.Fatalf("engine oil resolved to %q, want Engine Oil", cat)
	}

	_, cat = Extract("side mirror for nissan", vs, cs)
	if cat != "Accessories" {
		t.Fatalf("side mirror resolved to %q, want Accessories", cat)
	}
}

func TestExtractStarterGuard(t *testing.T) {
	vs, cs := testSynonyms()

	// "start" alone must not fuzzy-match the starter synonym.
	_, cat := Extract("how do I start", vs, cs)
	if cat != "" {
		t.Fatalf("bare 'start' matched category %q", cat)
	}

	_, cat = Extract("my starter is dead", vs, cs)
	if cat != "Electrical" {
		t.Fatalf("literal 'starter' resolved to %q, want Electrical", cat)
	}
}

func TestExtractLuxuryMake(t *testing.T) {
	vs, cs := testSynonyms()

	gotMake, _ := Extract("brake discs for my Ferrari", vs, cs)
	if gotMake != "Ferrari" {
		t.Fatalf("got %q, want Ferrari", gotMake)
	}

	gotMake, _ = Extract("parts for a rolls-royce", vs, cs)
	if gotMake != "Rolls" {
		t.Fatalf("got %q, want Rolls", gotMake)
	}
}

func TestResolveCoref(t *testing.T) {
	cases := []struct {
		name string
		text string
		veh  string
		part string
		want string
	}{
		{"part phrase", "do you have the same part in black", "", "Brakes", "do you have the Brakes in black"},
		{"bare it", "how much is it", "", "Battery", "how much is Battery"},
		{"it as token only", "is it within budget", "", "Tires", "is Tires within budget"},
		{"vehicle appended", "what about the same car", "Honda", "", "what about the same car Honda"},
		{"no context no change", "same part please", "", "", "same part please"},
		{"both", "fit the same part on my car", "Toyota", "Brakes", "fit the Brakes on my car Toyota"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveCoref(tc.text, model.SlotMemory{VehicleMake: tc.veh, PartCategory: tc.part})
			if got != tc.want {
				t.Errorf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestResolveCorefNoSubstringFire(t *testing.T) {
	// "it" must not fire inside "with".
	got := ResolveCoref("with pleasure", model.SlotMemory{PartCategory: "Brakes"})
	if got != "with pleasure" {
		t.Fatalf("got %q, substitution fired inside a word", got)
	}
}

func TestIsNegation(t *testing.T) {
	negatives := []string{"no", "nope", "nah", "no thanks", "not that one", "not interested", "don't want that"}
	for _, s := range negatives {
		if !IsNegation(s) {
			t.Errorf("IsNegation(%q) = false, want true", s)
		}
	}
	positives := []string{"yes", "brake pads please", "notify me", "nothing beats a honda"}
	for _, s := range positives {
		if IsNegation(s) {
			t.Errorf("IsNegation(%q) = true, want false", s)
		}
	}
}

func TestContactExtraction(t *testing.T) {
	c := ExtractContact("call me on 0410 123 456 or mail jo@example.com")
	if c.Phone == "" {
		t.Error("phone not extracted")
	}
	if c.Email != "jo@example.com" {
		t.Errorf("email: got %q", c.Email)
	}

	if !IsValidPhone("0410 123 456") {
		t.Error("spaced local number rejected")
	}
	if !IsValidPhone("+61 410 123 456") {
		t.Error("international number rejected")
	}
	if IsValidPhone("12345") {
		t.Error("short number accepted")
	}
	if !IsValidEmail("jo@example.com") {
		t.Error("plain email rejected")
	}
	if IsValidEmail("not-an-email") {
		t.Error("garbage accepted as email")
	}
}

func TestIsValidName(t *testing.T) {
	good := []string{"Sam", "Mary-Jane", "O'Brien", "Ana Lucia"}
	for _, n := range good {
		if !IsValidName(n) {
			t.Errorf("IsValidName(%q) = false, want true", n)
		}
	}
	bad := []string{"", "A", "12345", "Honda", "battery", "x@y.com"}
	for _, n := range bad {
		if IsValidName(n) {
			t.Errorf("IsValidName(%q) = true, want false", n)
		}
	}
}
