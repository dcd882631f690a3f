package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget all progress and start with a fresh deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprintln(cmd.OutOrStdout(), "This forgets every letter learned so far. Run again with --yes to confirm.")
			return nil
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		d.cards.Reset(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset. Every letter is back in the first box.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation")
}
