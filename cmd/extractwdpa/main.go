package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"wdpacli/internal/config"
	"wdpacli/internal/dataprocessing"
	"wdpacli/internal/exporter"
	"wdpacli/internal/infrastructure"
	"wdpacli/internal/registry"
	"wdpacli/pkg/contracts/domain"
)

func main() {
	in := flag.String("in", "", "WDPA source CSV (defaults to data/raw/"+config.WDPACSVName+" relative to executable)")
	sitesPath := flag.String("sites", "", "canonical site registry JSON (defaults to data/"+config.SitesJSONName+")")
	outDir := flag.String("outdir", "", "output directory for JSON artifacts (defaults to data/processed)")
	flag.Parse()

	// Initialize paths first to get default locations
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	// Configured data/log roots relocate the default locations
	paths.ApplyOverrides(cfg.Paths)

	// Use centralized locations as defaults if not specified
	if *in == "" {
		*in = paths.WDPACSV
	}
	if *sitesPath == "" {
		*sitesPath = paths.SitesJSON
	}
	componentsJSON := paths.ComponentsJSON
	mappingJSON := paths.MappingJSON
	if *outDir != "" {
		componentsJSON = filepath.Join(*outDir, config.ComponentsJSONName)
		mappingJSON = filepath.Join(*outDir, config.MappingJSONName)
	}

	// Ensure all required directories exist
	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	if cfg.Logging.FilePath == "" || cfg.Logging.FilePath == "logs/extractwdpa.log" {
		cfg.Logging.FilePath = paths.GetLogPath("extractwdpa.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = infrastructure.GetLogger()
	}
	defer infrastructure.CloseLogFile()

	logger.Info("Starting WDPA component extraction",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("input_csv", *in),
		slog.String("sites_json", *sitesPath),
		slog.String("components_json", componentsJSON),
		slog.String("mapping_json", mappingJSON))

	fmt.Println("WDPA Component Extraction Pipeline")
	fmt.Println("==================================")

	// Both inputs must exist before any processing starts
	if _, err := os.Stat(*in); err != nil {
		logger.Error("WDPA CSV not found", slog.String("path", *in))
		fmt.Printf("WDPA CSV not found: %s\n", *in)
		fmt.Printf("  Download it from %s and place it at the path above.\n", config.WDPADownloadURL)
		os.Exit(1)
	}
	if _, err := os.Stat(*sitesPath); err != nil {
		logger.Error("Site registry not found", slog.String("path", *sitesPath))
		fmt.Printf("Site registry not found: %s\n", *sitesPath)
		fmt.Println("  Run the site preparation step first to generate it.")
		os.Exit(1)
	}

	// Stage 1: extract heritage components from the WDPA CSV
	extractor := dataprocessing.NewExtractor(logger)
	groups, stats, err := extractor.ExtractComponents(*in)
	if err != nil {
		logger.Error("Extraction failed", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Processed %d total rows\n", stats.TotalRows)
	fmt.Printf("Found %d heritage components across %d unique sites\n",
		stats.ComponentRows, groups.Len())

	// Stage 2: load the canonical site registry
	loader := registry.NewLoader(logger)
	sites, err := loader.Load(*sitesPath)
	if err != nil {
		logger.Error("Registry load failed", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d canonical sites\n", len(sites))

	// Stage 3: match site groups to canonical identifiers
	result := dataprocessing.MatchSites(groups, sites)
	reportMatches(logger, result)

	// Stage 4: re-key groups by canonical identifier, keeping only
	// serial/transboundary sites (more than one component)
	componentsByID := rekeyByID(groups, result.Mapping)
	fmt.Printf("Found %d sites with multiple components\n", len(componentsByID))

	// Stage 5: write artifacts only after both pipeline stages succeeded
	writer := exporter.NewJSONWriter(logger)

	size, err := writer.Write(componentsJSON, componentsByID)
	if err != nil {
		logger.Error("Failed to write components artifact", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Components: %s (%.1f KB)\n", componentsJSON, float64(size)/1024)

	size, err = writer.Write(mappingJSON, result.Mapping)
	if err != nil {
		logger.Error("Failed to write mapping artifact", slog.String("error", err.Error()))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Mapping: %s (%.1f KB)\n", mappingJSON, float64(size)/1024)

	logger.Info("WDPA extraction completed",
		slog.Int("total_components", groups.TotalComponents()),
		slog.Int("unique_sites", groups.Len()),
		slog.Int("matched", len(result.Mapping)),
		slog.Int("multi_component_sites", len(componentsByID)))

	fmt.Println("\nSummary:")
	fmt.Printf("  - Total heritage components in WDPA: %d\n", groups.TotalComponents())
	fmt.Printf("  - Unique sites in WDPA: %d\n", groups.Len())
	fmt.Printf("  - Matched to canonical IDs: %d\n", len(result.Mapping))
	fmt.Printf("  - Sites with multiple components: %d\n", len(componentsByID))
}

// reportMatches prints the match outcome to the console. Reporting lives
// here, apart from the matcher, so the matching logic stays pure.
func reportMatches(logger *slog.Logger, result dataprocessing.MatchResult) {
	logger.Info("Site matching complete",
		slog.Int("matched", len(result.Mapping)),
		slog.Int("unmatched", len(result.Unmatched)),
		slog.Int("ambiguous", len(result.Ambiguous)))

	fmt.Printf("Matched %d sites to canonical IDs\n", len(result.Mapping))
	fmt.Printf("Unmatched: %d sites\n", len(result.Unmatched))

	if len(result.Unmatched) > 0 {
		fmt.Printf("\nUnmatched sites (first %d):\n", config.UnmatchedPreviewLimit)
		for i, name := range result.Unmatched {
			if i >= config.UnmatchedPreviewLimit {
				break
			}
			fmt.Printf("  %2d. %s\n", i+1, name)
		}
		if rest := len(result.Unmatched) - config.UnmatchedPreviewLimit; rest > 0 {
			fmt.Printf("  ... and %d more\n", rest)
		}
	}

	for _, conflict := range result.Ambiguous {
		logger.Warn("Canonical ID claimed by multiple site names",
			slog.String("site_id", string(conflict.SiteID)),
			slog.String("name", conflict.Name),
			slog.String("first_name", conflict.FirstName))
	}
}

// rekeyByID re-keys the per-name component groups by canonical identifier.
// Groups without a mapping entry are dropped, as are single-component groups;
// only serial/transboundary sites need disambiguation data downstream. When
// two names resolve to the same identifier the later group replaces the
// earlier one.
func rekeyByID(groups *dataprocessing.SiteGroups, mapping map[string]domain.SiteID) map[domain.SiteID][]domain.Component {
	componentsByID := make(map[domain.SiteID][]domain.Component)
	for _, name := range groups.Names() {
		id, ok := mapping[name]
		if !ok {
			continue
		}
		components := groups.Get(name)
		if len(components) > 1 {
			componentsByID[id] = components
		}
	}
	return componentsByID
}
