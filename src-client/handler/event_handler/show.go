package event_handler

import (
	"context"
	"fmt"
	"strings"

	"campusevents/src-client/form"
	"campusevents/src-client/model"
	"campusevents/src-client/utils"

	"github.com/dustin/go-humanize"
)

func show(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "show"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "<id>",
		Description: "Show one event.",
	})
	cmdHandler[id] = showHandler(as)
}

func showHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		eventID, err := utils.ParseID(args, 0, "event id")
		if err != nil {
			return err
		}
		event, err := as.API.GetEvent(ctx, eventID)
		if err != nil {
			return fmt.Errorf("showHandler: %w", err)
		}
		fmt.Fprint(as.Out, describe(as, event))
		return nil
	}
}

func describe(as *utils.AppState, event *model.Event) string {
	loc := as.Config.GetLocation()
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%d %s\n", event.ID, event.Title)
	fmt.Fprintf(&sb, "  Category:     %s (%s)\n", utils.CleanupString(string(event.Category)), utils.CleanupString(string(event.Mode)))
	fmt.Fprintf(&sb, "  Starts:       %s (%s)\n", form.FormatLocal(event.DateTime.Time, loc), humanize.Time(event.DateTime.Time))
	if event.EndDateTime != nil && !event.EndDateTime.IsZero() {
		fmt.Fprintf(&sb, "  Ends:         %s\n", form.FormatLocal(event.EndDateTime.Time, loc))
	}
	if location := event.Location(); location != "" {
		fmt.Fprintf(&sb, "  Location:     %s\n", location)
	}
	fmt.Fprintf(&sb, "  Availability: %s\n", event.AvailabilityText())
	if event.AverageRating != nil && event.FeedbackCount != nil && *event.FeedbackCount > 0 {
		fmt.Fprintf(&sb, "  Rating:       %.1f/5 from %s\n", *event.AverageRating, humanize.Comma(int64(*event.FeedbackCount))+" reviews")
	}
	if event.SponsorCompany != "" {
		fmt.Fprintf(&sb, "  Sponsor:      %s\n", event.SponsorCompany)
	}
	if event.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", event.Description)
	}
	return sb.String()
}
