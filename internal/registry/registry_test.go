package registry

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wdpacli/pkg/contracts/domain"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sites.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_Load(t *testing.T) {
	content := `[
		{
			"idNumber": "438",
			"isoCodes": ["CN"],
			"translations": {"en": {"name": "The Great Wall"}, "fr": {"name": "La Grande Muraille"}}
		},
		{
			"idNumber": 147,
			"isoCodes": ["AUS"],
			"translations": {"en": {"name": "Kakadu National Park"}}
		}
	]`

	loader := NewLoader(nil)
	sites, err := loader.Load(writeRegistry(t, content))
	require.NoError(t, err)
	require.Len(t, sites, 2)

	assert.Equal(t, domain.SiteID("438"), sites[0].IDNumber)
	assert.Equal(t, "The Great Wall", sites[0].EnglishName())
	assert.Equal(t, []string{"CN"}, sites[0].ISOCodes)

	// Numeric idNumber values are normalized to strings
	assert.Equal(t, domain.SiteID("147"), sites[1].IDNumber)

	// Registry order is preserved
	assert.Equal(t, "Kakadu National Park", sites[1].EnglishName())
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader(nil)
	_, err := loader.Load(filepath.Join(t.TempDir(), "sites.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "site preparation step")
}

func TestLoader_InvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed json",
			content: `[{"idNumber": "438"`,
			wantErr: "failed to parse",
		},
		{
			name:    "missing idNumber",
			content: `[{"translations": {"en": {"name": "Nameless"}}}]`,
			wantErr: "invalid registry entry at index 0",
		},
		{
			name:    "missing translations",
			content: `[{"idNumber": "1"}]`,
			wantErr: "invalid registry entry at index 0",
		},
		{
			name: "missing english name",
			content: `[
				{"idNumber": "1", "translations": {"en": {"name": "Fine"}}},
				{"idNumber": "2", "translations": {"fr": {"name": "Seulement"}}}
			]`,
			wantErr: "invalid registry entry at index 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := NewLoader(nil)
			_, err := loader.Load(writeRegistry(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_EmptyRegistry(t *testing.T) {
	loader := NewLoader(nil)
	sites, err := loader.Load(writeRegistry(t, `[]`))
	require.NoError(t, err)
	assert.Empty(t, sites)
}
