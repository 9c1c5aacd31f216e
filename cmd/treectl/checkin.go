package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mindtree/internal/model"
	"mindtree/internal/service"
)

var (
	checkinRatings model.Ratings
	checkinText    string
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record a check-in",
	Long: `Record a check-in from four 1-5 ratings and optional free text.

Example:
  treectl checkin --mood 4 --anxiety 3 --motivation 4 --connection 5 --text "slept well"`,
	RunE: runCheckin,
}

func init() {
	checkinCmd.Flags().IntVar(&checkinRatings.Mood, "mood", 0, "Mood rating (1-5)")
	checkinCmd.Flags().IntVar(&checkinRatings.Anxiety, "anxiety", 0, "Anxiety rating (1-5)")
	checkinCmd.Flags().IntVar(&checkinRatings.Motivation, "motivation", 0, "Motivation rating (1-5)")
	checkinCmd.Flags().IntVar(&checkinRatings.Connection, "connection", 0, "Connection rating (1-5)")
	checkinCmd.Flags().StringVar(&checkinText, "text", "", "Free text about the day")
	for _, name := range []string{"mood", "anxiety", "motivation", "connection"} {
		_ = checkinCmd.MarkFlagRequired(name)
	}
	rootCmd.AddCommand(checkinCmd)
}

func runCheckin(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := openService(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer closeStore()

	res, err := svc.Checkin(cmd.Context(), service.CheckinInput{
		Ratings:  checkinRatings,
		FreeText: checkinText,
	})
	if err != nil {
		return err
	}

	resp := model.CheckinResponse{
		MoodRating:     res.Mood,
		Feedback:       res.Feedback,
		NewHealthScore: res.NewHealth,
		IsEmergency:    res.IsEmergency,
	}
	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), resp)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mood:   %s\nhealth: %d\n\n%s\n", resp.MoodRating, resp.NewHealthScore, resp.Feedback)
	if resp.IsEmergency {
		fmt.Fprintln(out, "\nIf you are thinking about ending your life, contact your local emergency number or a crisis line now.")
	}
	return nil
}
