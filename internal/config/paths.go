package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for ALL file paths in the application.
type Paths struct {
	ExecutableDir string
	DataDir       string
	RawDir        string
	ProcessedDir  string
	LogsDir       string

	// Well-known data files
	WDPACSV        string
	SitesJSON      string
	ComponentsJSON string
	MappingJSON    string
}

// GetPaths returns the application paths relative to the executable location.
// All paths are always relative to the executable directory, never the
// current working directory, so the tool behaves the same no matter where it
// is invoked from.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return PathsFrom(filepath.Dir(exe)), nil
}

// PathsFrom builds the path set rooted at the given base directory.
// Directory structure:
//
//	<base>/
//	  ├── data/
//	  │   ├── raw/          (WDPA source CSV, downloaded by the operator)
//	  │   ├── processed/    (generated JSON artifacts)
//	  │   └── sites.json    (canonical registry from the preparation step)
//	  └── logs/
func PathsFrom(baseDir string) *Paths {
	p := &Paths{
		ExecutableDir: baseDir,
		LogsDir:       filepath.Join(baseDir, DefaultLogsDir),
	}
	p.setDataDir(filepath.Join(baseDir, DefaultDataDir))
	return p
}

// setDataDir roots the data directory tree and the well-known files at dataDir.
func (p *Paths) setDataDir(dataDir string) {
	p.DataDir = dataDir
	p.RawDir = filepath.Join(dataDir, RawDirName)
	p.ProcessedDir = filepath.Join(dataDir, ProcessedDirName)

	p.WDPACSV = filepath.Join(p.RawDir, WDPACSVName)
	p.SitesJSON = filepath.Join(dataDir, SitesJSONName)
	p.ComponentsJSON = filepath.Join(p.ProcessedDir, ComponentsJSONName)
	p.MappingJSON = filepath.Join(p.ProcessedDir, MappingJSONName)
}

// ApplyOverrides relocates the data and log roots at the configured
// directories. Empty override values keep the executable-relative defaults.
func (p *Paths) ApplyOverrides(cfg PathsConfig) {
	if cfg.DataDir != "" {
		p.setDataDir(cfg.DataDir)
	}
	if cfg.LogsDir != "" {
		p.LogsDir = cfg.LogsDir
	}
}

// EnsureDirectories creates all required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.DataDir, p.RawDir, p.ProcessedDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLogPath returns the full path for a log file.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
