// Package kstemcfg loads optional tunables for the kstem CLI
// collaborators from a TOML file, falling back to the reference
// implementation's defaults when no file is present.
package kstemcfg

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the knobs every cmd/kstem* binary resolves before
// building a kstem.Stemmer.
type Config struct {
	// LexiconDir is the directory containing the six lexicon files. If
	// empty, callers fall back to the STEM_DIR environment variable.
	LexiconDir string `toml:"lexicon_dir"`

	// MaxWordLength mirrors the reference implementation's
	// MAX_WORD_LENGTH (25). No code in this module reads it: kstem.Stem
	// uses its own fixed limit of 25, whatever value is set here.
	MaxWordLength int `toml:"max_word_length"`

	// MaxRoots mirrors the reference implementation's MAX_ROOTS (35000),
	// the expected upper bound on headword count. No code in this module
	// reads it: kstem.New does not bound or pre-size the lexicon.
	MaxRoots int `toml:"max_roots"`

	// CORSAllowedOrigins configures cmd/kstemd's CORS policy. An empty
	// slice means "allow any origin".
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`

	// ListenAddr is the address cmd/kstemd binds to.
	ListenAddr string `toml:"listen_addr"`
}

// Default returns the reference implementation's constants (spec §9
// Open Question 4) as a starting Config.
func Default() Config {
	return Config{
		MaxWordLength: 25,
		MaxRoots:      35000,
		ListenAddr:    ":8080",
	}
}

// Load reads path as TOML into a Config seeded with Default(). A
// missing file is not an error: Load silently returns the defaults, so
// callers can treat a config file as purely optional.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LexiconDirOr returns c.LexiconDir if set, otherwise fallback (typically
// the STEM_DIR environment variable read by the caller).
func (c Config) LexiconDirOr(fallback string) string {
	if c.LexiconDir != "" {
		return c.LexiconDir
	}
	return fallback
}
