package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mindtree/internal/logger"
	"mindtree/internal/model"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all check-ins and set health back to 50",
	Long: `Delete all check-ins and set health back to 50.

The server never deletes entries; this is the only path that does. Stop the
server first so an in-flight check-in is not written over the reset.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Required; confirms the reset")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetForce {
		return errors.New("reset discards every check-in; rerun with --force")
	}
	_, st, closeStore, err := openStore(false)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := st.Save(cmd.Context(), model.NewDocument()); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	logger.Info("tree reset")
	fmt.Fprintln(cmd.OutOrStdout(), "tree reset: health 50, no entries")
	return nil
}
