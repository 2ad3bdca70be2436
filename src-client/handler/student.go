package handler

import (
	"context"
	"fmt"
	"strconv"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/form"
	"campusevents/src-client/utils"

	"github.com/dustin/go-humanize"
)

func MyRegistrations(as *utils.AppState) {
	id := "registrations"
	as.AddCmdHandler(id, myRegistrationsHandler(as))
	as.AddCmdInfo(id, &utils.CmdInfo{
		Name:        id,
		Description: "List the events you registered for.",
	})
}

func myRegistrationsHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "registrations", func(c dashboard.Capabilities) bool { return c.RegisterForEvents }); err != nil {
			return err
		}
		regs, err := as.API.MyRegistrations(ctx)
		if err != nil {
			return fmt.Errorf("myRegistrationsHandler: %w", err)
		}
		if len(regs) == 0 {
			fmt.Fprintln(as.Out, "You have no registrations.")
			return nil
		}
		for _, reg := range regs {
			feedback := ""
			if reg.FeedbackRating != nil {
				feedback = fmt.Sprintf("rated %d/5", *reg.FeedbackRating)
			}
			fmt.Fprintf(as.Out, "%s event %s %s %s %s\n",
				utils.FitWidth(strconv.FormatInt(reg.ID, 10), 6),
				utils.FitWidth("#"+strconv.FormatInt(reg.EventID, 10), 7),
				utils.FitWidth(utils.CleanupString(string(reg.Status)), 11),
				utils.FitWidth(humanize.Time(reg.CreatedAt.Time), 16),
				feedback,
			)
		}
		return nil
	}
}

func Feedback(as *utils.AppState) {
	id := "feedback"
	as.AddCmdHandler(id, feedbackHandler(as))
	as.AddCmdInfo(id, &utils.CmdInfo{
		Name:        id,
		Usage:       "<registration-id> --rating 1-5 [--comments text]",
		Description: "Leave feedback on an event you attended.",
	})
}

func feedbackHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "feedback", func(c dashboard.Capabilities) bool { return c.RegisterForEvents }); err != nil {
			return err
		}
		f := form.FeedbackForm{}
		fs := as.NewFlagSet("feedback")
		fs.IntVar(&f.Rating, "rating", 0, "rating from 1 to 5")
		fs.StringVar(&f.Comments, "comments", "", "comments")
		positional, err := utils.ParseArgs(fs, args)
		if err != nil {
			return err
		}
		registrationID, err := utils.ParseID(positional, 0, "registration id")
		if err != nil {
			return err
		}
		if err := f.Validate(); err != nil {
			return err
		}
		if err := as.API.SubmitFeedback(ctx, registrationID, f.Input()); err != nil {
			return fmt.Errorf("feedbackHandler: %w", err)
		}
		fmt.Fprintln(as.Out, "Thanks for your feedback!")
		return nil
	}
}
