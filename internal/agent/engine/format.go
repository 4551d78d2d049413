package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/autoparts-agent/server/internal/agent/model"
	logx "github.com/autoparts-agent/server/pkg/logger"
)

const formatSystemPrompt = "You are a helpful auto parts store assistant. Summarize the search results the user sends as JSON in 2-3 friendly sentences: mention the vehicle, highlight the best available option with its price and availability, and do not invent anything not in the data. Do not include SKU numbers in the summary."

type resultPayload struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Price        float64 `json:"price"`
	Availability string  `json:"availability"`
	Vehicle      string  `json:"vehicle"`
	Years        string  `json:"years"`
}

// formatResults renders search hits. When a generator is wired in, it writes
// the lead-in summary over the top three records and the structured detail
// block follows; otherwise the whole reply is the deterministic listing.
// records must already be sorted by availability.
func (e *Engine) formatResults(ctx context.Context, records []model.PartRecord, vehicle, category string) string {
	if e.generator == nil {
		return fallbackFormat(records)
	}

	payload := make([]resultPayload, 0, 3)
	for _, rec := range top(records, 3) {
		payload = append(payload, resultPayload{
			Name:         rec.PartName,
			SKU:          rec.SKU,
			Price:        rec.Price,
			Availability: rec.Availability,
			Vehicle:      rec.VehicleMake + " " + rec.VehicleModel,
			Years:        rec.YearRange,
		})
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fallbackFormat(records)
	}

	userText := fmt.Sprintf("Customer searched for %s for a %s. Found %d results: %s", category, vehicle, len(records), data)
	summary, err := e.generator.Complete(ctx, formatSystemPrompt, userText)
	if err != nil || strings.TrimSpace(summary) == "" {
		logx.Warn().Err(err).Msg("result summary generation failed, using fallback format")
		return fallbackFormat(records)
	}

	return strings.TrimSpace(summary) + "\n\n" + detailBlock(records)
}

func detailBlock(records []model.PartRecord) string {
	var b strings.Builder
	b.WriteString("📋 Details:\n")
	for _, rec := range top(records, 3) {
		fmt.Fprintf(&b, "%s %s - SKU: %s | $%.2f | %s\n",
			availabilityEmoji(rec.Availability), rec.PartName, rec.SKU, rec.Price, rec.Availability)
	}
	if len(records) > 3 {
		fmt.Fprintf(&b, "\n... and %d more available.", len(records)-3)
	}
	return strings.TrimRight(b.String(), "\n")
}

// fallbackFormat is the deterministic listing used whenever the generator
// is absent or fails.
func fallbackFormat(records []model.PartRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d part(s):\n\n", len(records))
	for _, rec := range top(records, 5) {
		fmt.Fprintf(&b, "%s %s\n", availabilityEmoji(rec.Availability), rec.PartName)
		fmt.Fprintf(&b, "   SKU: %s | Price: $%.2f | %s\n", rec.SKU, rec.Price, rec.Availability)
		fmt.Fprintf(&b, "   Fits: %s %s (%s)\n\n", rec.VehicleMake, rec.VehicleModel, rec.YearRange)
	}
	if len(records) > 5 {
		fmt.Fprintf(&b, "... and %d more parts available.\n", len(records)-5)
	}
	return strings.TrimRight(b.String(), "\n")
}

func top(records []model.PartRecord, n int) []model.PartRecord {
	if len(records) < n {
		return records
	}
	return records[:n]
}

func availabilityEmoji(availability string) string {
	switch availability {
	case model.AvailabilityInStock:
		return "✅"
	case model.AvailabilityLimited:
		return "⚠️"
	default:
		return "❌"
	}
}
