package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/letterz/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	sess, err := d.newSession()
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer sess.Close()

	sess.Start(cmd.Context())

	err = app.Run(app.Options{
		Session:   sess,
		EventRepo: d.events,
		Log:       d.log,
	})
	sum := sess.Summary()
	d.log.Info("session finished",
		"session", sum.SessionID,
		"answers", sum.TotalAnswers,
		"correct", sum.TotalCorrect,
	)
	return err
}
