package ingest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"tastemap/internal/domain"
)

// UploadStats reports how many rows an upload contained and how many were
// skipped as malformed. Skipped rows are absorbed, never an error.
type UploadStats struct {
	Total   int
	Skipped int
}

// ParseUpload decodes the embedding-export format: a JSON array of objects
// where each object holds an optional "_id" field and exactly one other
// field whose value is an array of numbers. That field's key is the label
// and may encode "category -> concept". Rows without exactly one numeric
// array are skipped and counted.
func ParseUpload(data []byte) ([]domain.Label, [][]float64, UploadStats, error) {
	var rows []map[string]json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, nil, UploadStats{}, fmt.Errorf("parse upload: %w", err)
	}
	stats := UploadStats{Total: len(rows)}
	var labels []domain.Label
	var vectors [][]float64
	for _, row := range rows {
		label, vec, ok := extractRow(row)
		if !ok {
			stats.Skipped++
			continue
		}
		labels = append(labels, domain.ParseLabel(label))
		vectors = append(vectors, vec)
	}
	return labels, vectors, stats, nil
}

// ReadUpload reads and parses an upload file from disk.
func ReadUpload(path string) ([]domain.Label, [][]float64, UploadStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, UploadStats{}, err
	}
	return ParseUpload(data)
}

func extractRow(row map[string]json.RawMessage) (string, []float64, bool) {
	var label string
	var vec []float64
	found := 0
	for key, raw := range row {
		if key == "_id" {
			continue
		}
		var nums []float64
		if err := json.Unmarshal(raw, &nums); err != nil {
			continue
		}
		found++
		label = key
		vec = nums
	}
	if found != 1 || len(vec) == 0 {
		return "", nil, false
	}
	return label, vec, true
}

// registryHeaders are first-cell values treated as a spreadsheet header row.
var registryHeaders = map[string]struct{}{
	"name":            {},
	"restaurant":      {},
	"restaurant name": {},
	"canonical name":  {},
}

// ParseRegistryCSV reads canonical names from the first column of a
// spreadsheet-derived CSV, skipping a recognized header row and blank cells.
func ParseRegistryCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse registry csv: %w", err)
	}
	var names []string
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" {
			continue
		}
		if i == 0 {
			if _, ok := registryHeaders[strings.ToLower(name)]; ok {
				continue
			}
		}
		names = append(names, name)
	}
	return names, nil
}

// LoadRegistryCSV reads a registry CSV file from disk.
func LoadRegistryCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseRegistryCSV(f)
}
