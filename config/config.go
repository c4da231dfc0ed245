// Package config is for app-wide settings that are unmarshalled from
// Viper (see: /cmd).
package config

import (
	"log"

	"github.com/spf13/viper"
)

// RootSettingsFile is the default path to the settings file, overridable
// via the --settings flag on any command.
const RootSettingsFile = "settings.yaml"

// ORFConfig holds every setting the ORF finder needs beyond the input
// sequence itself.
type ORFConfig struct {
	// GeneticCode is the NCBI genetic code table ID used to resolve
	// start/stop codons (11 = the bacterial/archaeal/plastid code).
	GeneticCode int `mapstructure:"genetic-code"`

	// UseAllTableStarts, when true, accepts every start codon the
	// genetic code table recognizes rather than just ATG.
	UseAllTableStarts bool `mapstructure:"use-all-table-starts"`

	// StartMode selects how a new ORF may open: "start-to-stop",
	// "any-to-stop", or "last-start-to-stop".
	StartMode string `mapstructure:"start-mode"`

	// MinLength and MaxLength bound an ORF's length in codons.
	MinLength int `mapstructure:"min-length"`
	MaxLength int `mapstructure:"max-length"`

	// MaxGaps is the maximum number of gap/N codons tolerated in an ORF.
	MaxGaps int `mapstructure:"max-gaps"`

	// ForwardFrames and ReverseFrames list which of frames 1, 2, 3 to
	// scan on each strand. An empty list scans no frames on that strand.
	ForwardFrames []int `mapstructure:"forward-frames"`
	ReverseFrames []int `mapstructure:"reverse-frames"`
}

// TaxonomyConfig points at an NCBI taxonomy dump's three files.
type TaxonomyConfig struct {
	NodesPath  string `mapstructure:"nodes-path"`
	NamesPath  string `mapstructure:"names-path"`
	MergedPath string `mapstructure:"merged-path"`
}

// Config is the root-level settings struct, populated from settings.yaml
// merged with whatever command-line flags were bound to Viper.
type Config struct {
	ORF      ORFConfig      `mapstructure:"orf"`
	Taxonomy TaxonomyConfig `mapstructure:"taxonomy"`
}

// defaults mirror the classical "ATG ... stop" convention: bacterial
// genetic code, ATG-only starts, all three forward frames, no reverse
// scan, and a generous default length window.
func defaults() Config {
	return Config{
		ORF: ORFConfig{
			GeneticCode:       11,
			UseAllTableStarts: false,
			StartMode:         "start-to-stop",
			MinLength:         10,
			MaxLength:         1 << 20,
			MaxGaps:           0,
			ForwardFrames:     []int{1, 2, 3},
			ReverseFrames:     nil,
		},
	}
}

// NewConfig returns a new Config populated by Viper settings (from the
// settings file and/or command-line flags bound to it), layered over
// this package's defaults.
func NewConfig() Config {
	c := defaults()

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return c
}
