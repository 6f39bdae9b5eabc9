package config

// Application constants for the WDPA extraction pipeline.
const (
	// Application info
	AppName    = "wdpacli"
	AppVersion = "1.0.0"

	// HeritageMarker is the substring of the DESIG_ENG column that marks a
	// row as a World Heritage Site component. The comparison is
	// case-sensitive containment, a fixed contract with the WDPA dataset.
	HeritageMarker = "World Heritage"

	// ISOCodeSeparator delimits country codes in the ISO3 column.
	ISOCodeSeparator = ";"

	// ProgressInterval is the row interval for console progress reporting
	// during the WDPA scan.
	ProgressInterval = 50000

	// UnmatchedPreviewLimit caps how many unmatched site names are listed
	// in the console report.
	UnmatchedPreviewLimit = 20

	// Directory layout. The data and log roots default to the executable
	// directory; the raw/processed subdirectories always live under the
	// data root, configured or not.
	DefaultDataDir   = "data"
	DefaultLogsDir   = "logs"
	RawDirName       = "raw"
	ProcessedDirName = "processed"

	// Well-known data files
	WDPACSVName        = "WDPA_Oct2025_Public_csv.csv"
	SitesJSONName      = "sites.json"
	ComponentsJSONName = "components.json"
	MappingJSONName    = "wdpa-mapping.json"

	// WDPADownloadURL is where operators obtain the raw dataset.
	WDPADownloadURL = "https://www.protectedplanet.net/"
)

// WDPA CSV column names. These are a fixed external contract with the
// upstream data provider and must not be renamed.
const (
	ColWDPAID   = "WDPAID"
	ColWDPAPID  = "WDPA_PID"
	ColName     = "NAME"
	ColOrigName = "ORIG_NAME"
	ColDesigEng = "DESIG_ENG"
	ColIUCNCat  = "IUCN_CAT"
	ColStatus   = "STATUS"
	ColStatusYr = "STATUS_YR"
	ColRepArea  = "REP_AREA"
	ColISO3     = "ISO3"
	ColMarine   = "MARINE"
)
