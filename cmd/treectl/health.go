package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mindtree/internal/model"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Show the tree's health score and tier",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := openService(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer closeStore()

	th := svc.TreeHealth(cmd.Context())
	resp := model.TreeHealthResponse{
		HealthScore: th.Health,
		ImageFile:   th.Tier.ImageFile(),
		Tier:        string(th.Tier),
	}
	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "health: %d/100 (%s)\nimage:  %s\n", resp.HealthScore, resp.Tier, resp.ImageFile)
	return nil
}
