package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Component represents one protected-area record from the WDPA dataset that
// carries a World Heritage designation. Field names follow the published
// components.json contract.
type Component struct {
	WDPAID       string   `json:"wdpa_id"`
	WDPAPID      string   `json:"wdpa_pid"`
	Name         string   `json:"name"`
	NameOrig     string   `json:"name_orig"`
	Designation  string   `json:"designation"`
	IUCNCategory string   `json:"iucn_category"`
	Status       string   `json:"status"`
	StatusYear   string   `json:"status_year"`
	AreaKm2      float64  `json:"area_km2"`
	ISOCodes     []string `json:"iso_codes"`
	Marine       bool     `json:"marine"`
}

// SiteID is the canonical identifier of a World Heritage site. The registry
// file is produced by an external preparation step that may emit idNumber as
// either a JSON string or a bare number, so both are accepted.
type SiteID string

// UnmarshalJSON accepts both "123" and 123.
func (id *SiteID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = ""
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*id = SiteID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("idNumber must be a string or number: %w", err)
	}
	*id = SiteID(n.String())
	return nil
}

// SiteTranslation holds a localized site name.
type SiteTranslation struct {
	Name string `json:"name" validate:"required"`
}

// CanonicalSite is one authoritative record from the site registry
// (sites.json), the target of component matching.
type CanonicalSite struct {
	IDNumber     SiteID                     `json:"idNumber" validate:"required"`
	ISOCodes     []string                   `json:"isoCodes"`
	Translations map[string]SiteTranslation `json:"translations" validate:"required"`
}

// EnglishName returns the site's English display name, or the empty string
// when the registry entry has no English translation.
func (s CanonicalSite) EnglishName() string {
	return s.Translations["en"].Name
}
