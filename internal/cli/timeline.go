package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/not-lavanya/janeaustenstoryteller/internal/model"
	"github.com/not-lavanya/janeaustenstoryteller/internal/timeline"
)

var (
	tlLocation   string
	tlSeason     string
	tlPeriod     string
	tlStyle      string
	tlCharacters []string
)

var timelineCmd = &cobra.Command{
	Use:   "timeline [file]",
	Short: "Build a timeline for existing story text",
	Long: `timeline reads story text from a file (or stdin when no file is
given), picks out its significant moments and prints them as a dated
timeline. Pass --character for each name the selection should weight.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTimeline,
}

func init() {
	f := timelineCmd.Flags()
	f.StringVar(&tlLocation, "location", "", "Location named in the opening entry")
	f.StringVar(&tlSeason, "season", "", "Season: spring, summer, autumn, winter")
	f.StringVar(&tlPeriod, "period", "", "Time period phrase for the closing entry")
	f.StringVar(&tlStyle, "style", "", "Timeline style: boxed, connector")
	f.StringArrayVar(&tlCharacters, "character", nil, "Character name (repeatable)")
	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cli: read story: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("cli: read stdin: %w", err)
		}
	}

	rng, _, err := newRand()
	if err != nil {
		return err
	}

	var opts []timeline.Option
	if loc := pick(tlLocation, cfg.Story.Location); loc != "" {
		opts = append(opts, timeline.WithLocation(loc))
	}
	if period := pick(tlPeriod, cfg.Story.TimePeriod); period != "" {
		opts = append(opts, timeline.WithTimePeriod(period))
	}
	opts = append(opts, timeline.WithStyle(timeline.ParseStyle(pick(tlStyle, cfg.Timeline.Style))))

	cast := make([]model.Character, len(tlCharacters))
	for i, name := range tlCharacters {
		cast[i] = model.Character{Name: name}
	}

	g := timeline.NewGenerator(rng, opts...)
	fmt.Fprintln(cmd.OutOrStdout(), g.Generate(string(data), cast, pick(tlSeason, cfg.Story.Season)))
	return nil
}
