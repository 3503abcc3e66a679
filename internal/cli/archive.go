package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/not-lavanya/janeaustenstoryteller/internal/archive"
	"github.com/not-lavanya/janeaustenstoryteller/internal/export"
)

var archiveLimit int

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Browse previously told stories",
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived stories, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		summaries, err := store.List(cmd.Context(), archiveLimit)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "The archive is empty.")
			return nil
		}
		printSummaries(cmd, summaries)
		return nil
	},
}

var archiveShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print an archived story in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		story, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), export.FormatText(story))
		return nil
	},
}

var archiveSearchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search archived stories by title or text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		summaries, err := store.Search(cmd.Context(), args[0], archiveLimit)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No archived stories mention %q.\n", args[0])
			return nil
		}
		printSummaries(cmd, summaries)
		return nil
	},
}

var archiveDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a story from the archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := archive.Open(cfg.Archive.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
		return nil
	},
}

func printSummaries(cmd *cobra.Command, summaries []archive.Summary) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTHEME\tSETTING\tWORDS\tTOLD")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s, %s\t%d\t%s\n",
			s.ID, s.Title, s.Theme, s.Location, s.Season, s.WordCount,
			s.CreatedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

func init() {
	archiveCmd.PersistentFlags().IntVar(&archiveLimit, "limit", 0, "Maximum entries to show")
	archiveCmd.AddCommand(archiveListCmd, archiveShowCmd, archiveSearchCmd, archiveDeleteCmd)
	rootCmd.AddCommand(archiveCmd)
}
