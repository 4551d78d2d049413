package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/autoparts-agent/server/internal/agent/intent"
	"github.com/autoparts-agent/server/internal/agent/model"
	"github.com/autoparts-agent/server/internal/agent/repo"
	"github.com/autoparts-agent/server/internal/faq"
	"github.com/autoparts-agent/server/internal/genai"
	"github.com/autoparts-agent/server/internal/install"
	"github.com/autoparts-agent/server/internal/inventory"
	"github.com/autoparts-agent/server/internal/leadstore"
	"github.com/autoparts-agent/server/internal/synonyms"
)

func testConfig() model.EngineConfig {
	return model.EngineConfig{
		FallbackEscalation:  3,
		OopsThreshold:       2,
		ContextTimeoutTurns: 5,
		PartLoopGuard:       2,
		BookingAttemptsCap:  3,
		LowConfidence:       0.4,
	}
}

func testRecords() []model.PartRecord {
	return []model.PartRecord{
		{VehicleMake: "Honda", VehicleModel: "Civic", Category: "Brakes", PartName: "Ceramic Brake Pad Set", SKU: "HON-BRK-001", Price: 89.99, Availability: model.AvailabilityInStock, YearRange: "2016-2023"},
		{VehicleMake: "Honda", VehicleModel: "Civic", Category: "Tires", PartName: "All-Season Tire", SKU: "HON-TIR-001", Price: 129.99, Availability: model.AvailabilityInStock, YearRange: "2016-2023"},
		{VehicleMake: "Toyota", VehicleModel: "Corolla", Category: "Battery", PartName: "AGM Battery 60Ah", SKU: "TOY-BAT-001", Price: 159.99, Availability: model.AvailabilityInStock, YearRange: "2017-2024"},
		{VehicleMake: "Ford", VehicleModel: "Focus", Category: "Battery", PartName: "Standard Battery 55Ah", SKU: "FOR-BAT-001", Price: 119.99, Availability: model.AvailabilityLimited, YearRange: "2015-2021"},
		{VehicleMake: "Ford", VehicleModel: "Focus", Category: "Spark Plugs", PartName: "Iridium Spark Plug Set", SKU: "FOR-SPK-001", Price: 49.99, Availability: model.AvailabilityInStock, YearRange: "2015-2021"},
	}
}

func newTestEngine(gen genai.Generator) (*Engine, *leadstore.Memory) {
	syn := synonyms.NewBuiltin()
	leads := leadstore.NewMemory()
	eng := New(testConfig(), Deps{
		Inventory: inventory.NewTable(testRecords()),
		Synonyms:  syn,
		Install:   install.DefaultTimes(),
		FAQ:       faq.NewKeyword(faq.DefaultEntries()),
		Leads:     leads,
		Detector:  intent.NewDetector(syn, nil),
		Generator: gen,
		Sessions:  repo.NewMemorySessionRepository(),
	})
	return eng, leads
}

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (g *fakeGenerator) Complete(_ context.Context, _, _ string) (string, error) {
	g.calls++
	return g.reply, g.err
}

func TestEmptyInput(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")

	reply := eng.Turn(context.Background(), sess, "   ")
	if !strings.Contains(reply, "How can I help") {
		t.Errorf("unexpected reply: %q", reply)
	}
	if sess.TurnsSinceValidContext != 0 || sess.OopsCount != 0 {
		t.Error("empty input mutated session counters")
	}
}

func TestStockOutLeadScenario(t *testing.T) {
	eng, leads := newTestEngine(nil)
	sess := model.NewSession("c1")
	ctx := context.Background()

	// No Honda battery in the table.
	reply := eng.Turn(ctx, sess, "Honda battery")
	if !strings.Contains(reply, "Sorry") {
		t.Fatalf("expected stock-out apology, got %q", reply)
	}
	if !strings.Contains(reply, "Toyota") || !strings.Contains(reply, "Ford") {
		t.Errorf("stock-out reply missing real alternatives: %q", reply)
	}
	if strings.Contains(reply, "Honda,") {
		t.Errorf("stock-out alternatives include the empty make: %q", reply)
	}
	if sess.LeadStage != model.StageAwaitingConsent {
		t.Fatalf("stage = %v, want awaiting consent", sess.LeadStage)
	}

	reply = eng.Turn(ctx, sess, "yes")
	if !strings.Contains(reply, "name") {
		t.Fatalf("consent did not ask for name: %q", reply)
	}
	if sess.LeadStage != model.StageCollectingName {
		t.Fatalf("stage = %v, want collecting name", sess.LeadStage)
	}

	reply = eng.Turn(ctx, sess, "John Smith")
	if !strings.Contains(reply, "John Smith") {
		t.Fatalf("name not acknowledged: %q", reply)
	}
	if sess.LeadStage != model.StageCollectingContact {
		t.Fatalf("stage = %v, want collecting contact", sess.LeadStage)
	}

	reply = eng.Turn(ctx, sess, "0410 123 456")
	if !strings.Contains(reply, "Thanks John Smith") {
		t.Fatalf("lead not confirmed: %q", reply)
	}
	if sess.LeadStage != model.StageNone {
		t.Errorf("stage = %v, want none after save", sess.LeadStage)
	}

	saved := leads.Leads()
	if len(saved) != 1 {
		t.Fatalf("saved %d leads, want 1", len(saved))
	}
	lead := saved[0]
	if lead.Name != "John Smith" || lead.Phone == "" || lead.VehicleMake != "Honda" {
		t.Errorf("lead fields wrong: %+v", lead)
	}
	if lead.ServiceRequested {
		t.Error("availability lead marked as service request")
	}
}

func TestMalformedContactNeverAdvances(t *testing.T) {
	eng, leads := newTestEngine(nil)
	sess := model.NewSession("c1")
	sess.LeadStage = model.StageCollectingContact
	sess.LeadName = "Sam"
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		reply := eng.Turn(ctx, sess, "banana")
		if sess.LeadStage != model.StageCollectingContact {
			t.Fatalf("attempt %d advanced the stage to %v", i, sess.LeadStage)
		}
		if sess.BookingAttempts != i {
			t.Fatalf("attempt %d: BookingAttempts = %d", i, sess.BookingAttempts)
		}
		if !strings.Contains(reply, "valid phone number or email") {
			t.Fatalf("attempt %d reply: %q", i, reply)
		}
	}

	reply := eng.Turn(ctx, sess, "banana")
	if sess.LeadStage != model.StageNone {
		t.Errorf("flow not abandoned at cap, stage = %v", sess.LeadStage)
	}
	if !strings.Contains(reply, "trouble collecting") {
		t.Errorf("abandonment reply: %q", reply)
	}
	if len(leads.Leads()) != 0 {
		t.Error("lead saved despite never receiving valid contact")
	}
}

func TestNonDestructiveSlotMerge(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")
	sess.Vehicle = "Honda"
	sess.Slots.VehicleMake = "Honda"

	reply := eng.Turn(context.Background(), sess, "tires")
	if sess.Vehicle != "Honda" {
		t.Errorf("vehicle wiped by part-only turn: %q", sess.Vehicle)
	}
	if sess.Part != "Tires" {
		t.Errorf("part = %q, want Tires", sess.Part)
	}
	if !strings.Contains(reply, "HON-TIR-001") {
		t.Errorf("merged search did not find Honda tires: %q", reply)
	}
}

func TestMultiItemAsksToDisambiguate(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")

	reply := eng.Turn(context.Background(), sess, "Honda battery or Toyota tires")
	if !strings.Contains(reply, "Honda Battery") || !strings.Contains(reply, "Toyota Tires") {
		t.Errorf("reply does not enumerate both requests: %q", reply)
	}
	if !strings.Contains(reply, "Which one") {
		t.Errorf("reply does not ask to pick: %q", reply)
	}
	if sess.Vehicle != "" || sess.Part != "" {
		t.Error("compound request committed session state")
	}
}

func TestAbuseKeepsContext(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")
	sess.Vehicle = "Honda"
	sess.Part = "Battery"
	sess.Slots.VehicleMake = "Honda"
	sess.Slots.PartCategory = "Battery"

	reply := eng.Turn(context.Background(), sess, "this is stupid garbage")
	if strings.Contains(strings.ToLower(reply), "stupid") {
		t.Errorf("abuse reply echoes profanity: %q", reply)
	}
	if !strings.Contains(reply, "Honda") || !strings.Contains(reply, "battery") {
		t.Errorf("abuse reply dropped active context: %q", reply)
	}
	if sess.Vehicle != "Honda" || sess.Part != "Battery" {
		t.Error("abuse mutated session context")
	}
}

func TestNonsenseDoesNotTouchSlots(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")
	sess.Slots.VehicleMake = "Honda"

	eng.Turn(context.Background(), sess, "my son wants to eat the keyboard")
	if sess.Slots.VehicleMake != "Honda" || sess.Slots.PartCategory != "" {
		t.Error("nonsense turn mutated slot memory")
	}
}

func TestPartLoopGuard(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")
	ctx := context.Background()

	reply := eng.Turn(ctx, sess, "brakes")
	if !strings.Contains(reply, "Which make") {
		t.Fatalf("first make-less request: %q", reply)
	}
	if sess.PendingPartCount != 1 {
		t.Fatalf("PendingPartCount = %d, want 1", sess.PendingPartCount)
	}

	reply = eng.Turn(ctx, sess, "brakes")
	if !strings.Contains(reply, "someone call you") {
		t.Fatalf("second repeat did not escalate: %q", reply)
	}
	if sess.LeadStage != model.StageAwaitingConsent {
		t.Errorf("loop guard did not open lead capture, stage = %v", sess.LeadStage)
	}
}

func TestUnstockedCategory(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")

	reply := eng.Turn(context.Background(), sess, "suspension")
	if !strings.Contains(reply, "not a category we currently stock") {
		t.Errorf("unstocked category reply: %q", reply)
	}
}

func TestContextTimeoutResets(t *testing.T) {
	syn := synonyms.NewBuiltin()
	eng := New(testConfig(), Deps{
		Inventory: inventory.NewTable(testRecords()),
		Synonyms:  syn,
		Install:   install.DefaultTimes(),
		FAQ:       faq.NewKeyword(nil), // force FAQ fallthrough to the product path
		Leads:     leadstore.NewMemory(),
		Detector:  intent.NewDetector(syn, nil),
		Sessions:  repo.NewMemorySessionRepository(),
	})
	sess := model.NewSession("c1")
	sess.Vehicle = "Honda"
	sess.Slots.VehicleMake = "Honda"
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		eng.Turn(ctx, sess, "when do you close")
		if sess.TurnsSinceValidContext != i {
			t.Fatalf("turn %d: TurnsSinceValidContext = %d", i, sess.TurnsSinceValidContext)
		}
	}

	reply := eng.Turn(ctx, sess, "when do you close")
	if !strings.Contains(reply, "start fresh") {
		t.Fatalf("timeout did not reset: %q", reply)
	}
	if sess.Vehicle != "" || sess.TurnsSinceValidContext != 0 {
		t.Error("session not fully reset after context timeout")
	}
}

func TestUnknownEscalationLadder(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")
	ctx := context.Background()

	reply := eng.Turn(ctx, sess, "tell me something")
	if !strings.Contains(reply, "didn't catch that") {
		t.Fatalf("first unknown: %q", reply)
	}

	reply = eng.Turn(ctx, sess, "tell me something")
	if !strings.Contains(reply, "Here are some examples") {
		t.Fatalf("second unknown did not show help menu: %q", reply)
	}
	if !sess.HelpShown {
		t.Fatal("HelpShown not set")
	}

	reply = eng.Turn(ctx, sess, "tell me something")
	if !strings.Contains(reply, "human") {
		t.Fatalf("third unknown did not escalate: %q", reply)
	}
	if sess.LeadStage != model.StageAwaitingConsent {
		t.Errorf("escalation did not open lead capture, stage = %v", sess.LeadStage)
	}
}

func TestRecognizedIntentResetsCounters(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")
	sess.OopsCount = 1
	sess.ConsecutiveFallbacks = 1

	eng.Turn(context.Background(), sess, "what are your opening hours")
	if sess.OopsCount != 0 || sess.ConsecutiveFallbacks != 0 {
		t.Error("recognized intent did not reset fallback counters")
	}
}

func TestUnknownRedirectUsesGenerator(t *testing.T) {
	gen := &fakeGenerator{reply: "I only know parts, not poetry. Tell me make + part!"}
	eng, _ := newTestEngine(gen)
	sess := model.NewSession("c1")

	reply := eng.Turn(context.Background(), sess, "write me a poem please")
	if reply != gen.reply {
		t.Errorf("redirect not generated: %q", reply)
	}
}

func TestUnknownRedirectGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("deadline exceeded")}
	eng, _ := newTestEngine(gen)
	sess := model.NewSession("c1")

	reply := eng.Turn(context.Background(), sess, "write me a poem please")
	if !strings.Contains(reply, "didn't catch that") {
		t.Errorf("generator failure did not fall back: %q", reply)
	}
}

func TestThanksResetsSession(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")
	sess.Vehicle = "Honda"
	sess.Slots.VehicleMake = "Honda"

	reply := eng.Turn(context.Background(), sess, "thanks")
	if !strings.Contains(reply, "You're welcome") {
		t.Errorf("thanks reply: %q", reply)
	}
	if sess.Vehicle != "" || sess.Slots.VehicleMake != "" {
		t.Error("thanks did not reset the session")
	}
}

func TestFriendlyModeSticks(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")
	ctx := context.Background()

	eng.Turn(ctx, sess, "talk to me like a friend")
	if !sess.FriendlyMode {
		t.Fatal("friendly mode not set")
	}

	reply := eng.Turn(ctx, sess, "how are you")
	if !strings.Contains(reply, "awesome") {
		t.Errorf("friendly register not used: %q", reply)
	}
}

func TestRepeatSKUSuppressed(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")
	ctx := context.Background()

	reply := eng.Turn(ctx, sess, "honda brakes")
	if !strings.Contains(reply, "HON-BRK-001") {
		t.Fatalf("first search: %q", reply)
	}
	if sess.LastSKUShown != "HON-BRK-001" {
		t.Fatalf("LastSKUShown = %q", sess.LastSKUShown)
	}

	reply = eng.Turn(ctx, sess, "honda brakes")
	if !strings.Contains(reply, "already saw") {
		t.Errorf("repeat search not suppressed: %q", reply)
	}
}

func TestUnsupportedMakeRefused(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")

	reply := eng.Turn(context.Background(), sess, "porsche brakes")
	if !strings.Contains(reply, "don't currently stock parts for Porsche") {
		t.Errorf("unsupported make reply: %q", reply)
	}
}

func TestSparkPlugsNeverSayIgnition(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")

	reply := eng.Turn(context.Background(), sess, "spark plugs for my ford")
	if strings.Contains(strings.ToLower(reply), "ignition") {
		t.Errorf("reply leaks internal category naming: %q", reply)
	}
	if !strings.Contains(reply, "FOR-SPK-001") {
		t.Errorf("spark plug search failed: %q", reply)
	}
}

func TestInstallationLeadFlow(t *testing.T) {
	eng, leads := newTestEngine(nil)
	sess := model.NewSession("c1")
	sess.Vehicle = "Honda"
	sess.Part = "Brakes"
	sess.Slots.VehicleMake = "Honda"
	sess.Slots.PartCategory = "Brakes"
	ctx := context.Background()

	reply := eng.Turn(ctx, sess, "can you install them for me")
	if !strings.Contains(reply, "90 minutes") {
		t.Fatalf("install estimate missing: %q", reply)
	}
	if !sess.PendingInstallLead {
		t.Fatal("PendingInstallLead not set")
	}

	eng.Turn(ctx, sess, "yes please")
	if sess.LeadStage != model.StageCollectingName {
		t.Fatalf("stage = %v, want collecting name", sess.LeadStage)
	}

	eng.Turn(ctx, sess, "Maria")
	reply = eng.Turn(ctx, sess, "maria@email.com")
	if !strings.Contains(reply, "technician") {
		t.Fatalf("install confirmation: %q", reply)
	}

	saved := leads.Leads()
	if len(saved) != 1 {
		t.Fatalf("saved %d leads, want 1", len(saved))
	}
	if !saved[0].ServiceRequested || saved[0].Email != "maria@email.com" {
		t.Errorf("install lead fields wrong: %+v", saved[0])
	}
	if sess.PendingInstallLead {
		t.Error("PendingInstallLead not cleared after save")
	}
}

func TestNegationCancelsLeadKeepsContext(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")
	sess.Vehicle = "Honda"
	sess.LeadStage = model.StageCollectingName

	reply := eng.Turn(context.Background(), sess, "no thanks")
	if sess.LeadStage != model.StageNone {
		t.Errorf("negation did not cancel lead capture, stage = %v", sess.LeadStage)
	}
	if sess.Vehicle != "Honda" {
		t.Error("negation wiped non-lead context")
	}
	if !strings.Contains(reply, "No problem") {
		t.Errorf("negation reply: %q", reply)
	}
}

func TestConsentDeclineWithProductMention(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")
	sess.LeadStage = model.StageAwaitingConsent

	reply := eng.Turn(context.Background(), sess, "actually I need a toyota battery")
	if sess.LeadStage != model.StageNone {
		t.Errorf("decline did not clear consent stage: %v", sess.LeadStage)
	}
	if !strings.Contains(reply, "TOY-BAT-001") {
		t.Errorf("fresh product mention not searched: %q", reply)
	}
	if sess.Vehicle != "Toyota" || sess.Part != "Battery" {
		t.Error("declined consent did not adopt the new product context")
	}
}

func TestCallbackOpensLeadCapture(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")

	reply := eng.Turn(context.Background(), sess, "please call me back")
	if sess.LeadStage != model.StageAwaitingConsent {
		t.Errorf("callback request stage = %v", sess.LeadStage)
	}
	if !strings.Contains(reply, "callback") {
		t.Errorf("callback reply: %q", reply)
	}
}

func TestFAQAnswered(t *testing.T) {
	eng, _ := newTestEngine(nil)
	sess := model.NewSession("c1")

	reply := eng.Turn(context.Background(), sess, "what are your opening hours")
	if !strings.Contains(reply, "Monday to Saturday") {
		t.Errorf("FAQ answer: %q", reply)
	}
}

func TestResultsSummaryWithGenerator(t *testing.T) {
	gen := &fakeGenerator{reply: "Great news, the Ceramic Brake Pad Set fits your Civic and is in stock at $89.99."}
	eng, _ := newTestEngine(gen)
	sess := model.NewSession("c1")

	reply := eng.Turn(context.Background(), sess, "honda brakes")
	if !strings.HasPrefix(reply, gen.reply) {
		t.Errorf("summary missing: %q", reply)
	}
	if !strings.Contains(reply, "HON-BRK-001") {
		t.Errorf("detail block missing: %q", reply)
	}
}

func TestResultsGeneratorFailureFallsBack(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("rpc unavailable")}
	eng, _ := newTestEngine(gen)
	sess := model.NewSession("c1")

	reply := eng.Turn(context.Background(), sess, "honda brakes")
	if !strings.Contains(reply, "Found 1 part(s)") {
		t.Errorf("fallback listing missing: %q", reply)
	}
	if sess.LastSKUShown != "HON-BRK-001" {
		t.Error("search state not recorded on fallback path")
	}
}

func TestRespondPersistsAcrossTurns(t *testing.T) {
	eng, _ := newTestEngine(nil)
	ctx := context.Background()

	reply, err := eng.Respond(ctx, "conv-1", "honda")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(reply, "parts for your Honda") {
		t.Fatalf("first turn: %q", reply)
	}

	reply, err = eng.Respond(ctx, "conv-1", "brakes")
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(reply, "HON-BRK-001") {
		t.Errorf("persisted vehicle not merged on second turn: %q", reply)
	}
}

func TestLeadStoreFailureKeepsStage(t *testing.T) {
	syn := synonyms.NewBuiltin()
	eng := New(testConfig(), Deps{
		Inventory: inventory.NewTable(testRecords()),
		Synonyms:  syn,
		Install:   install.DefaultTimes(),
		FAQ:       faq.NewKeyword(faq.DefaultEntries()),
		Leads:     failingStore{},
		Detector:  intent.NewDetector(syn, nil),
		Sessions:  repo.NewMemorySessionRepository(),
	})
	sess := model.NewSession("c1")
	sess.LeadStage = model.StageCollectingContact
	sess.LeadName = "Sam"

	reply := eng.Turn(context.Background(), sess, "0410 123 456")
	if sess.LeadStage != model.StageCollectingContact {
		t.Errorf("store failure advanced the stage to %v", sess.LeadStage)
	}
	if sess.LeadName != "Sam" {
		t.Error("store failure dropped the collected name")
	}
	if !strings.Contains(reply, "once more") {
		t.Errorf("store failure reply: %q", reply)
	}
}

type failingStore struct{}

func (failingStore) Append(context.Context, leadstore.Lead) error {
	return errors.New("disk full")
}
