// Package config provides centralized configuration management for the WDPA
// extraction pipeline. It handles loading configuration from environment
// variables and an optional YAML file, and owns the single source of truth
// for all file system paths.
//
// # Configuration Sources
//
// Configuration is loaded in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (config.yaml)
//	3. Default values (lowest priority)
//
// Environment variables use the WDPA_ prefix:
//
//	WDPA_LOGGING_LEVEL=debug
//	WDPA_LOGGING_OUTPUT=console
//	WDPA_PATHS_DATA_DIR=/srv/wdpa/data
//
// # Path Management
//
// All paths are resolved relative to the executable location through the
// Paths type, never the current working directory. The data and log roots
// can be relocated with WDPA_PATHS_DATA_DIR and WDPA_PATHS_LOGS_DIR, which
// Paths.ApplyOverrides folds into the resolved locations:
//
//	paths, err := config.GetPaths()
//	if err != nil {
//	    return err
//	}
//	csvPath := paths.WDPACSV
package config
