package dataprocessing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"wdpacli/internal/config"
	"wdpacli/pkg/contracts/domain"
)

// Extractor streams the raw WDPA CSV and collects the rows that carry a
// World Heritage designation, grouped by site name.
type Extractor struct {
	logger           *slog.Logger
	progressInterval int
}

// NewExtractor creates an extractor. A nil logger falls back to the default.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		logger:           logger,
		progressInterval: config.ProgressInterval,
	}
}

// ExtractStats reports scan counters for the summary output.
type ExtractStats struct {
	TotalRows     int
	ComponentRows int
}

// csvRow pairs one record with the header index so fields can be addressed
// by column name. A column is absent when it is missing from the header or
// the record is too short to reach it.
type csvRow struct {
	columns map[string]int
	fields  []string
}

func (r csvRow) get(col string) (string, bool) {
	idx, ok := r.columns[col]
	if !ok || idx >= len(r.fields) {
		return "", false
	}
	return r.fields[idx], true
}

func (r csvRow) getOr(col, def string) string {
	if v, ok := r.get(col); ok {
		return v
	}
	return def
}

// ExtractComponents scans the CSV at csvPath and returns the heritage-site
// components grouped by display name, in input row order. A row qualifies
// when its DESIG_ENG field contains the heritage marker substring
// (case-sensitive containment, not equality). Malformed fields are defaulted,
// never rejected; a missing file or any read error aborts the scan with no
// partial result.
func (e *Extractor) ExtractComponents(csvPath string) (*SiteGroups, ExtractStats, error) {
	var stats ExtractStats

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to open WDPA CSV %s: %w", csvPath, err)
	}
	defer f.Close()

	e.logger.Info("Reading WDPA CSV",
		slog.String("path", csvPath))
	fmt.Printf("Reading WDPA CSV: %s\n", csvPath)
	fmt.Println("  (This may take a minute, processing 300K+ rows...)")

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, stats, fmt.Errorf("WDPA CSV %s is empty", csvPath)
		}
		return nil, stats, fmt.Errorf("failed to read WDPA CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	groups := NewSiteGroups()

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("failed to read WDPA CSV row %d: %w", stats.TotalRows+1, err)
		}

		stats.TotalRows++
		if stats.TotalRows%e.progressInterval == 0 {
			e.logger.Info("Scan progress",
				slog.Int("rows", stats.TotalRows),
				slog.Int("components", stats.ComponentRows))
			fmt.Printf("  ... processed %d rows, found %d heritage components\n",
				stats.TotalRows, stats.ComponentRows)
		}

		row := csvRow{columns: columns, fields: fields}

		designation := row.getOr(config.ColDesigEng, "")
		if !strings.Contains(designation, config.HeritageMarker) {
			continue
		}

		stats.ComponentRows++

		component := domain.Component{
			WDPAID:       row.getOr(config.ColWDPAID, ""),
			WDPAPID:      row.getOr(config.ColWDPAPID, ""),
			Name:         row.getOr(config.ColName, ""),
			NameOrig:     row.getOr(config.ColOrigName, ""),
			Designation:  designation,
			IUCNCategory: row.getOr(config.ColIUCNCat, ""),
			Status:       row.getOr(config.ColStatus, ""),
			StatusYear:   row.getOr(config.ColStatusYr, ""),
			AreaKm2:      parseArea(row),
			ISOCodes:     splitISOCodes(row.getOr(config.ColISO3, "")),
			Marine:       row.getOr(config.ColMarine, "0") != "0",
		}

		groups.Add(component.Name, component)
	}

	e.logger.Info("WDPA scan complete",
		slog.Int("total_rows", stats.TotalRows),
		slog.Int("component_rows", stats.ComponentRows),
		slog.Int("unique_sites", groups.Len()))

	return groups, stats, nil
}

// parseArea reads REP_AREA as a float64. Empty, missing, or malformed values
// coerce to 0 rather than failing the row.
func parseArea(r csvRow) float64 {
	raw, ok := r.get(config.ColRepArea)
	if !ok {
		return 0
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	area, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return area
}

// splitISOCodes splits the delimited ISO3 field, trimming whitespace per
// element. An absent or empty source field yields an empty list, not a list
// containing one empty string.
func splitISOCodes(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, config.ISOCodeSeparator)
	codes := make([]string, 0, len(parts))
	for _, part := range parts {
		codes = append(codes, strings.TrimSpace(part))
	}
	return codes
}
