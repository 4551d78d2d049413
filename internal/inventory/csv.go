package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/autoparts-agent/server/internal/agent/model"
	logx "github.com/autoparts-agent/server/pkg/logger"
)

// LoadCSV reads a product table with a header row of
// VehicleMake,VehicleModel,Category,PartName,SKU,Price,Availability,YearRange.
// Rows with an unparsable price are skipped with a warning.
func LoadCSV(path string) ([]model.PartRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open products csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read products header: %w", err)
	}

	idx := map[string]int{}
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	required := []string{"VehicleMake", "VehicleModel", "Category", "PartName", "SKU", "Price", "Availability", "YearRange"}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("products csv missing %s column", col)
		}
	}

	var records []model.PartRecord
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read products row %d: %w", line, err)
		}

		price, perr := strconv.ParseFloat(strings.TrimSpace(row[idx["Price"]]), 64)
		if perr != nil {
			logx.Warn().Str("component", "inventory").Int("line", line).Err(perr).Msg("skipping row with bad price")
			continue
		}

		records = append(records, model.PartRecord{
			VehicleMake:  strings.TrimSpace(row[idx["VehicleMake"]]),
			VehicleModel: strings.TrimSpace(row[idx["VehicleModel"]]),
			Category:     strings.TrimSpace(row[idx["Category"]]),
			PartName:     strings.TrimSpace(row[idx["PartName"]]),
			SKU:          strings.TrimSpace(row[idx["SKU"]]),
			Price:        price,
			Availability: strings.TrimSpace(row[idx["Availability"]]),
			YearRange:    strings.TrimSpace(row[idx["YearRange"]]),
		})
	}
	return records, nil
}
