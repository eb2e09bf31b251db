// Package config loads the optional .slclangd.toml override file
// described in SPEC_FULL.md §2. It never fails the caller: a missing or
// malformed file just yields Defaults().
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultExtensions is the built-in extension filter used by every slow
// handler in workspace mode, per spec §4.G.
const DefaultExtensions = "c,cc,cpp,cxx,h,hh,hpp,hxx"

// Config is the resolved set of operator overrides.
type Config struct {
	Extensions      string
	ExtraStopWords  map[string]struct{}
}

// Defaults returns the built-in configuration: the spec's fixed extension
// list and no extra stop words.
func Defaults() Config {
	return Config{Extensions: DefaultExtensions}
}

type fileFormat struct {
	Search struct {
		Extensions     []string `toml:"extensions"`
		ExtraStopWords []string `toml:"extra_stop_words"`
	} `toml:"search"`
}

// LoadFromRoot looks for ".slclangd.toml" directly under root and parses
// it if present. Any error (missing file, malformed TOML) yields
// Defaults() rather than propagating, per SPEC_FULL.md §2.
func LoadFromRoot(root string) Config {
	if root == "" {
		root = "."
	}
	data, err := os.ReadFile(filepath.Join(root, ".slclangd.toml"))
	if err != nil {
		return Defaults()
	}

	var ff fileFormat
	if err := toml.Unmarshal(data, &ff); err != nil {
		return Defaults()
	}

	cfg := Defaults()
	if len(ff.Search.Extensions) > 0 {
		cfg.Extensions = strings.Join(ff.Search.Extensions, ",")
	}
	if len(ff.Search.ExtraStopWords) > 0 {
		cfg.ExtraStopWords = make(map[string]struct{}, len(ff.Search.ExtraStopWords))
		for _, w := range ff.Search.ExtraStopWords {
			cfg.ExtraStopWords[strings.ToLower(w)] = struct{}{}
		}
	}
	return cfg
}
