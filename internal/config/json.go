package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/flagx"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "300ms"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath   string         `json:"database_path"`
	SessionTTL     timex.Duration `json:"session_ttl"`
	SearchDebounce timex.Duration `json:"search_debounce"`
	TokenSecret    string         `json:"token_secret"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when neither is present, nothing is
// loaded. Fields left empty or zero in the file keep their current values.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SessionTTL.Duration != 0 {
		cfg.SessionTTL = time.Duration(jc.SessionTTL.Duration)
	}
	if jc.SearchDebounce.Duration != 0 {
		cfg.SearchDebounce = time.Duration(jc.SearchDebounce.Duration)
	}
	if jc.TokenSecret != "" {
		cfg.TokenSecret = jc.TokenSecret
	}
}
