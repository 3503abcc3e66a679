package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/not-lavanya/janeaustenstoryteller/internal/quotes"
	"github.com/not-lavanya/janeaustenstoryteller/internal/random"
	"github.com/not-lavanya/janeaustenstoryteller/internal/story"
	"github.com/not-lavanya/janeaustenstoryteller/internal/timeline"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes, seasons and locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		ctor, err := story.Get("classic")
		if err != nil {
			return err
		}
		prov := ctor(random.New(1))

		fmt.Fprintln(out, "Story themes:")
		for _, theme := range prov.Themes() {
			fmt.Fprintln(out, "  "+theme)
		}
		fmt.Fprintln(out, "\nStory providers:")
		for _, name := range story.Providers() {
			fmt.Fprintf(out, "  %s (%s)\n", name, story.DisplayName(name))
		}
		fmt.Fprintln(out, "\nSeasons: "+strings.Join(timeline.SeasonNames(), ", "))
		fmt.Fprintln(out, "\nLocations:")
		for _, loc := range story.DefaultLocations {
			fmt.Fprintln(out, "  "+loc)
		}
		fmt.Fprintln(out, "\nQuote themes: "+strings.Join(quotes.Themes(), ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
