package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/not-lavanya/janeaustenstoryteller/internal/animate"
	"github.com/not-lavanya/janeaustenstoryteller/internal/archive"
	"github.com/not-lavanya/janeaustenstoryteller/internal/export"
	"github.com/not-lavanya/janeaustenstoryteller/internal/export/async"
	"github.com/not-lavanya/janeaustenstoryteller/internal/export/htmlfile"
	"github.com/not-lavanya/janeaustenstoryteller/internal/export/jsonfile"
	"github.com/not-lavanya/janeaustenstoryteller/internal/export/multi"
	"github.com/not-lavanya/janeaustenstoryteller/internal/export/stdout"
	"github.com/not-lavanya/janeaustenstoryteller/internal/export/textfile"
	"github.com/not-lavanya/janeaustenstoryteller/internal/storyteller"
	"github.com/not-lavanya/janeaustenstoryteller/internal/timeline"
)

var (
	genTheme       string
	genLocation    string
	genSeason      string
	genPeriod      string
	genProvider    string
	genCharacters  int
	genBackstories bool
	genStyle       string
	genFormat      string
	genOut         string
	genPretty      bool
	genAnimate     string
	genBackground  bool
	genNoArchive   bool
	genCount       int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Tell a complete story",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genTheme, "theme", "", "Story theme (default: random)")
	f.StringVar(&genLocation, "location", "", "Story location (default: random)")
	f.StringVar(&genSeason, "season", "", "Season: spring, summer, autumn, winter (default: random)")
	f.StringVar(&genPeriod, "period", "", "Time period phrase used in the narration")
	f.StringVar(&genProvider, "provider", "", "Story provider: classic, enhanced")
	f.IntVar(&genCharacters, "characters", 0, "Number of characters in the cast")
	f.BoolVar(&genBackstories, "backstories", false, "Include character backstories")
	f.StringVar(&genStyle, "style", "", "Timeline style: boxed, connector")
	f.StringVar(&genFormat, "format", "", "Export format: stdout, text, json, html")
	f.StringVar(&genOut, "output", "", "Export file or directory")
	f.BoolVar(&genPretty, "pretty", false, "Indent JSON export")
	f.StringVar(&genAnimate, "animate", "", "Typewriter pacing: off, slow, standard, fast")
	f.BoolVar(&genBackground, "background", false, "Write file exports from a background goroutine")
	f.BoolVar(&genNoArchive, "no-archive", false, "Skip saving the story to the archive")
	f.IntVar(&genCount, "count", 1, "Number of stories to tell")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	rng, usedSeed, err := newRand()
	if err != nil {
		return err
	}
	slog.Debug("session seeded", "seed", usedSeed)

	exp, err := buildExporter()
	if err != nil {
		return err
	}
	defer exp.Close()

	opts := []storyteller.Option{storyteller.WithExporter(exp)}
	if cfg.Archive.Enabled && !genNoArchive {
		store, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, storyteller.WithArchive(store))
	}

	session := storyteller.New(rng, opts...)
	params := storyteller.Params{
		Theme:         pick(genTheme, cfg.Story.Theme),
		Location:      pick(genLocation, cfg.Story.Location),
		Season:        pick(genSeason, cfg.Story.Season),
		TimePeriod:    pick(genPeriod, cfg.Story.TimePeriod),
		Provider:      pick(genProvider, cfg.Story.Provider),
		NumCharacters: pickInt(genCharacters, cfg.Story.Characters),
		Backstories:   genBackstories || cfg.Story.Backstories,
		Style:         timeline.ParseStyle(pick(genStyle, cfg.Timeline.Style)),
	}

	for i := 0; i < genCount; i++ {
		if _, err := session.Tell(cmd.Context(), params); err != nil {
			return err
		}
	}
	return nil
}

// buildExporter assembles the export destination from flags and
// config. File formats also echo the story to the terminal; with
// --background the file half runs behind an async channel so a slow
// disk never stalls the typewriter output.
func buildExporter() (export.Exporter, error) {
	format := pick(genFormat, cfg.Export.Format)
	path := pick(genOut, cfg.Export.Path)
	pretty := genPretty || cfg.Export.Pretty

	console := stdout.New(stdout.WithDelay(animateDelay(pick(genAnimate, cfg.Export.Animate))))

	var file export.Exporter
	var err error
	switch format {
	case "", "stdout":
		return console, nil
	case "text":
		file, err = textfile.New(exportPath(path, "stories.txt"))
	case "json":
		file, err = jsonfile.New(exportPath(path, "stories.json"), pretty)
	case "html":
		file, err = htmlfile.New(path)
	default:
		return nil, fmt.Errorf("cli: unknown export format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if genBackground || cfg.Export.Background {
		file = async.New(file)
	}
	return multi.New(console, file), nil
}

// exportPath treats a path without an extension as a directory and
// places the default file name inside it.
func exportPath(path, name string) string {
	if filepath.Ext(path) != "" {
		return path
	}
	return filepath.Join(path, name)
}

func animateDelay(name string) time.Duration {
	switch name {
	case "slow":
		return animate.SpeedSlow
	case "standard":
		return animate.SpeedStandard
	case "fast":
		return animate.SpeedFast
	default:
		return 0
	}
}

func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

func pickInt(flag, fallback int) int {
	if flag != 0 {
		return flag
	}
	return fallback
}
