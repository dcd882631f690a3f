package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/letterz/internal/letters"
	"github.com/abhisek/letterz/internal/mastery"
	"github.com/abhisek/letterz/internal/session"
	"github.com/abhisek/letterz/internal/spacedrep"
	"github.com/abhisek/letterz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		deck := d.cards.Load(ctx)

		var itemStats []store.ItemStat
		if d.events != nil {
			itemStats, err = d.events.ItemStats(ctx)
			if err != nil {
				d.log.Warn("item stats unavailable", "error", err)
			}
		}

		writeStats(cmd.OutOrStdout(), deck, itemStats, session.DefaultConfig().MasteryBox, time.Now())
		return nil
	},
}

// writeStats prints mastery progress followed by one row per letter.
func writeStats(w io.Writer, deck spacedrep.Deck, itemStats []store.ItemStat, masteryBox int, now time.Time) {
	p := mastery.Summarize(deck, masteryBox)
	fmt.Fprintf(w, "Mastered %d of %d letters (%d%%)\n\n", p.Mastered, p.Total, p.Percent)

	logged := make(map[string]store.ItemStat, len(itemStats))
	for _, s := range itemStats {
		logged[s.ItemID] = s
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LETTER\tBOX\tSTATUS\tSEEN\tACCURACY\tLOGGED\tLAST ANSWER")
	for _, l := range letters.Alphabet() {
		c, ok := deck.Card(l.Symbol)
		if !ok {
			continue
		}
		acc := "-"
		if c.SeenCount > 0 {
			acc = fmt.Sprintf("%.0f%%", c.Accuracy()*100)
		}
		loggedCol, last := "-", "-"
		if s, ok := logged[l.Symbol]; ok {
			loggedCol = fmt.Sprintf("%d/%d", s.Correct, s.Attempts)
			last = s.LastAnswer.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%s\t%s\t%s\n",
			l.Symbol, c.Box, c.Status(now, masteryBox), c.SeenCount, acc, loggedCol, last)
	}
	tw.Flush()
}
