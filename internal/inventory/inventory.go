// Package inventory implements the product table lookups behind the
// dialogue engine's search path.
package inventory

import (
	"sort"
	"strings"

	"github.com/autoparts-agent/server/internal/agent/model"
	"github.com/autoparts-agent/server/pkg/fuzzy"
)

// fuzzyCategoryCutoff is the minimum similarity for the last search stage.
const fuzzyCategoryCutoff = 60

// Provider is the inventory collaborator consumed by the engine.
type Provider interface {
	// Lookup returns candidate rows for a make and category. An empty slice
	// is the stock-out signal; Lookup never returns an error.
	Lookup(vehicleMake, category string) []model.PartRecord

	// CategoriesFor returns the distinct categories stocked for a make.
	CategoriesFor(vehicleMake string) []string

	// MakesStocking returns makes that have the category in stock or limited.
	MakesStocking(category string) []string

	// AllMakes returns every make present in the table, sorted.
	AllMakes() []string
}

// Table is an in-memory Provider over a slice of part records.
type Table struct {
	records []model.PartRecord
}

// NewTable builds a Table from the given records.
func NewTable(records []model.PartRecord) *Table {
	return &Table{records: records}
}

// Lookup cascades through match strategies until one yields rows:
// exact category match, category prefix, category substring, then a fuzzy
// match of the requested category against the categories actually stocked
// for the make.
func (t *Table) Lookup(vehicleMake, category string) []model.PartRecord {
	makeLower := strings.ToLower(strings.TrimSpace(vehicleMake))
	catLower := strings.ToLower(strings.TrimSpace(category))
	if makeLower == "" || catLower == "" {
		return []model.PartRecord{}
	}

	stages := []func(recCat string) bool{
		func(recCat string) bool { return recCat == catLower },
		func(recCat string) bool { return strings.HasPrefix(recCat, catLower) },
		func(recCat string) bool { return strings.Contains(recCat, catLower) },
	}
	for _, match := range stages {
		if rows := t.filter(makeLower, match); len(rows) > 0 {
			return rows
		}
	}

	// Final stage: fuzzy match against the make's own categories.
	available := t.CategoriesFor(vehicleMake)
	lower := lowerAll(available)
	if best, ok := fuzzy.BestMatch(catLower, lower, fuzzyCategoryCutoff); ok {
		return t.filter(makeLower, func(recCat string) bool { return recCat == best })
	}

	return []model.PartRecord{}
}

func (t *Table) filter(makeLower string, match func(recCat string) bool) []model.PartRecord {
	out := []model.PartRecord{}
	for _, rec := range t.records {
		if strings.ToLower(rec.VehicleMake) != makeLower {
			continue
		}
		if match(strings.ToLower(rec.Category)) {
			out = append(out, rec)
		}
	}
	return out
}

// CategoriesFor returns the distinct categories stocked for a make, sorted.
func (t *Table) CategoriesFor(vehicleMake string) []string {
	makeLower := strings.ToLower(strings.TrimSpace(vehicleMake))
	seen := map[string]bool{}
	out := []string{}
	for _, rec := range t.records {
		if strings.ToLower(rec.VehicleMake) != makeLower {
			continue
		}
		if !seen[rec.Category] {
			seen[rec.Category] = true
			out = append(out, rec.Category)
		}
	}
	sort.Strings(out)
	return out
}

// MakesStocking returns makes that currently stock the category, excluding
// out-of-stock rows. Order follows first appearance in the table.
func (t *Table) MakesStocking(category string) []string {
	catLower := strings.ToLower(strings.TrimSpace(category))
	seen := map[string]bool{}
	out := []string{}
	for _, rec := range t.records {
		if strings.ToLower(rec.Category) != catLower {
			continue
		}
		if rec.Availability != model.AvailabilityInStock && rec.Availability != model.AvailabilityLimited {
			continue
		}
		if !seen[rec.VehicleMake] {
			seen[rec.VehicleMake] = true
			out = append(out, rec.VehicleMake)
		}
	}
	return out
}

// AllMakes returns every make in the table, sorted.
func (t *Table) AllMakes() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, rec := range t.records {
		if !seen[rec.VehicleMake] {
			seen[rec.VehicleMake] = true
			out = append(out, rec.VehicleMake)
		}
	}
	sort.Strings(out)
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// SortByAvailability orders records in-stock first for display.
func SortByAvailability(records []model.PartRecord) []model.PartRecord {
	sorted := make([]model.PartRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return model.AvailabilityRank(sorted[i].Availability) < model.AvailabilityRank(sorted[j].Availability)
	})
	return sorted
}

var _ Provider = (*Table)(nil)
