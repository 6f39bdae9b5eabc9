package dataprocessing

import (
	"strings"

	"wdpacli/pkg/contracts/domain"
)

// MatchResult is the structured outcome of matching site groups against the
// canonical registry. Reporting is left entirely to the caller so the
// matching logic stays independently testable.
type MatchResult struct {
	// Mapping holds site-group-name -> canonical identifier, at most one
	// entry per name. First successful heuristic wins, no overwrite.
	Mapping map[string]domain.SiteID
	// Unmatched lists the group names that failed every heuristic, in
	// group iteration order.
	Unmatched []string
	// Ambiguous records names whose matched identifier had already been
	// claimed by an earlier group. The mapping keeps both entries; the
	// conflicts are surfaced for reporting only.
	Ambiguous []MatchConflict
}

// MatchConflict describes a canonical identifier claimed by more than one
// group name.
type MatchConflict struct {
	Name      string
	SiteID    domain.SiteID
	FirstName string
}

// MatchSites produces a best-effort mapping from site-group names to
// canonical identifiers using three heuristics in priority order:
//
//  1. Exact: case-insensitive full-string equality with an entity's
//     English name.
//  2. Substring: case-insensitive containment in either direction. Coarse
//     by design; short generic names can mis-match, an accepted
//     precision/recall trade-off.
//  3. ISO + first word: the group's first component shares an ISO code with
//     the entity (case-folded set intersection) and the first words of the
//     two names agree, or either first word appears inside the other full
//     name. Skipped entirely when the first component has no ISO codes.
//
// A higher tier always beats a lower one: the whole registry is scanned for
// an exact match before substring matching is attempted, and so on. Within a
// tier, registry list order decides. Matching is greedy per group, not
// globally optimal, and one entity may be claimed by several group names.
func MatchSites(groups *SiteGroups, sites []domain.CanonicalSite) MatchResult {
	result := MatchResult{
		Mapping: make(map[string]domain.SiteID),
	}

	claimed := make(map[domain.SiteID]string)

	for _, name := range groups.Names() {
		id, ok := matchName(name, groups.Get(name), sites)
		if !ok {
			result.Unmatched = append(result.Unmatched, name)
			continue
		}

		result.Mapping[name] = id
		if first, taken := claimed[id]; taken {
			result.Ambiguous = append(result.Ambiguous, MatchConflict{
				Name:      name,
				SiteID:    id,
				FirstName: first,
			})
		} else {
			claimed[id] = name
		}
	}

	return result
}

// matchName scans the registry once per heuristic tier and returns the first
// entity satisfying the current tier.
func matchName(name string, components []domain.Component, sites []domain.CanonicalSite) (domain.SiteID, bool) {
	nameLower := strings.ToLower(name)

	// Tier 1: exact match
	for _, site := range sites {
		if nameLower == strings.ToLower(site.EnglishName()) {
			return site.IDNumber, true
		}
	}

	// Tier 2: substring match, either direction
	for _, site := range sites {
		siteLower := strings.ToLower(site.EnglishName())
		if strings.Contains(siteLower, nameLower) || strings.Contains(nameLower, siteLower) {
			return site.IDNumber, true
		}
	}

	// Tier 3: ISO-code intersection plus first-word agreement, keyed off
	// the group's first component only
	if len(components) == 0 || len(components[0].ISOCodes) == 0 {
		return "", false
	}

	groupISO := foldCodes(components[0].ISOCodes)
	groupFirst := firstWord(nameLower)
	if groupFirst == "" {
		return "", false
	}

	for _, site := range sites {
		if !intersects(groupISO, site.ISOCodes) {
			continue
		}

		siteLower := strings.ToLower(site.EnglishName())
		siteFirst := firstWord(siteLower)

		if groupFirst == siteFirst ||
			strings.Contains(siteLower, groupFirst) ||
			(siteFirst != "" && strings.Contains(nameLower, siteFirst)) {
			return site.IDNumber, true
		}
	}

	return "", false
}

func foldCodes(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[strings.ToLower(code)] = struct{}{}
	}
	return set
}

func intersects(set map[string]struct{}, codes []string) bool {
	for _, code := range codes {
		if _, ok := set[strings.ToLower(code)]; ok {
			return true
		}
	}
	return false
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
