package synonyms

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	logx "github.com/autoparts-agent/server/pkg/logger"
)

// LoadCategoryCSV reads a Synonym,CategoryName table and returns a
// lowercase-key map suitable for Builtin.WithCategories. Rows missing either
// column are skipped with a warning rather than failing the load.
func LoadCategoryCSV(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open synonyms csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read synonyms header: %w", err)
	}

	synIdx, catIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "Synonym":
			synIdx = i
		case "CategoryName":
			catIdx = i
		}
	}
	if synIdx < 0 || catIdx < 0 {
		return nil, fmt.Errorf("synonyms csv missing Synonym/CategoryName columns")
	}

	out := make(map[string]string)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read synonyms row: %w", err)
		}
		if len(row) <= synIdx || len(row) <= catIdx {
			logx.Warn().Str("component", "synonyms").Strs("row", row).Msg("skipping short synonym row")
			continue
		}
		key := strings.ToLower(strings.TrimSpace(row[synIdx]))
		val := strings.TrimSpace(row[catIdx])
		if key == "" || val == "" {
			continue
		}
		out[key] = val
	}
	return out, nil
}
