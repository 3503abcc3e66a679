// Package cli implements the austen command line interface.
package cli

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/not-lavanya/janeaustenstoryteller/internal/config"
	"github.com/not-lavanya/janeaustenstoryteller/internal/logging"
	"github.com/not-lavanya/janeaustenstoryteller/internal/random"
)

var (
	cfgPath  string
	logLevel string
	seed     uint64
	quiet    bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "austen",
	Short: "A Regency-era storyteller in the manner of Jane Austen",
	Long: `austen generates Regency-era stories with characters, a timeline of
significant events and a closing quotation.

Commands:
  austen generate   Tell a complete story
  austen timeline   Build a timeline for existing story text
  austen quote      Print a Jane Austen quotation
  austen archive    Browse previously told stories
  austen themes     List available themes, seasons and locations`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgPath != "" {
			cfg, err = config.LoadFile(cfgPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		if logLevel == "" {
			logLevel = cfg.Logging.Level
		}
		logging.Init(!quiet, logging.ParseLevel(logLevel))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"Path to a YAML config file (default: $AUSTEN_CONFIG or ./austen.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0,
		"PRNG seed for reproducible stories (0 = random)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"Machine-readable logs (JSON on stderr)")
}

// newRand builds the session PRNG from --seed, falling back to an
// OS-entropy seed. The chosen seed is logged so a run can be replayed.
func newRand() (*rand.Rand, uint64, error) {
	s := seed
	if s == 0 {
		var err error
		s, err = random.NewSeed()
		if err != nil {
			return nil, 0, fmt.Errorf("cli: seed: %w", err)
		}
	}
	return random.New(s), s, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
