package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/not-lavanya/janeaustenstoryteller/internal/quotes"
)

var (
	quoteTheme   string
	quoteContext bool
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a Jane Austen quotation",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, _, err := newRand()
		if err != nil {
			return err
		}
		picker := quotes.NewPicker(rng)

		q := picker.Random()
		if quoteTheme != "" {
			var ok bool
			if q, ok = picker.ByTheme(quoteTheme); !ok {
				return fmt.Errorf("cli: no quotes for theme %q (known: %v)", quoteTheme, quotes.Themes())
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), q.Framed(quoteContext))
		return nil
	},
}

func init() {
	quoteCmd.Flags().StringVar(&quoteTheme, "theme", "", "Pick a quote on this theme")
	quoteCmd.Flags().BoolVar(&quoteContext, "context", false, "Append the quote's background note")
	rootCmd.AddCommand(quoteCmd)
}
