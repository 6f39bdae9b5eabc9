// Package dataprocessing implements the two pipeline stages of the WDPA
// heritage extraction: scanning the raw protected-areas CSV for World
// Heritage components, and matching the resulting site groups against the
// canonical registry.
//
// # Components
//
// Extractor streams the WDPA CSV, filters rows by the heritage designation
// marker, and groups surviving rows by display name into a SiteGroups, an
// insertion-ordered multimap that keeps output deterministic.
//
// MatchSites is a pure function over the site groups and the registry. It
// returns a MatchResult carrying the name-to-identifier mapping along with
// the unmatched and ambiguous names; it performs no I/O so the heuristics
// can be tested in isolation.
//
// # Data Flow
//
//	WDPA CSV → Extractor → SiteGroups → MatchSites → MatchResult
//
// The caller (cmd/extractwdpa) re-keys the groups by canonical identifier
// and serializes the artifacts.
package dataprocessing
