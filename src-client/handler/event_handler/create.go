package event_handler

import (
	"context"
	"flag"
	"fmt"
	"time"

	"campusevents/src-client/dashboard"
	"campusevents/src-client/form"
	"campusevents/src-client/utils"
)

func create(as *utils.AppState, cmdInfo *[]*utils.CmdInfo, cmdHandler map[string]utils.CmdHandler) {
	id := "create"
	*cmdInfo = append(*cmdInfo, &utils.CmdInfo{
		Name:        id,
		Usage:       "--title t --description d (--start 2006-01-02T15:04 | --when phrase) [flags]",
		Description: "Create an event.",
	})
	cmdHandler[id] = createHandler(as)
}

// eventFlags binds every event form field to fs. Start and end may also be
// given as natural phrases through --when and --until.
type eventFlags struct {
	form  *form.EventForm
	when  *string
	until *string
}

func bindEventFlags(fs *flag.FlagSet, f *form.EventForm) eventFlags {
	fs.StringVar(&f.Title, "title", f.Title, "event title")
	fs.StringVar(&f.Description, "description", f.Description, "event description")
	fs.StringVar(&f.Start, "start", f.Start, "start, local time as 2006-01-02T15:04")
	fs.StringVar(&f.End, "end", f.End, "end, local time as 2006-01-02T15:04")
	fs.StringVar(&f.Mode, "mode", f.Mode, "in_person, virtual or hybrid")
	fs.StringVar(&f.Category, "category", f.Category, "workshop, career_fair, mixer, tech_talk, competition or sponsor_event")
	fs.StringVar(&f.Venue, "venue", f.Venue, "venue name")
	fs.StringVar(&f.Room, "room", f.Room, "room")
	fs.StringVar(&f.ImageURL, "image-url", f.ImageURL, "cover image url")
	fs.IntVar(&f.Capacity, "capacity", f.Capacity, "seats")
	fs.IntVar(&f.RegistrationCap, "registration-cap", f.RegistrationCap, "registrations accepted, 0 for capacity")
	return eventFlags{
		form:  f,
		when:  fs.String("when", "", `start as a phrase, e.g. "next friday at 3pm"`),
		until: fs.String("until", "", "end as a phrase"),
	}
}

// resolve turns --when and --until into form values.
func (e eventFlags) resolve(as *utils.AppState, now time.Time) error {
	loc := as.Config.GetLocation()
	if *e.when != "" {
		start, err := as.ParseWhen(*e.when, now)
		if err != nil {
			return fmt.Errorf("--when: %w", err)
		}
		e.form.Start = form.FormatLocal(start, loc)
	}
	if *e.until != "" {
		end, err := as.ParseWhen(*e.until, now)
		if err != nil {
			return fmt.Errorf("--until: %w", err)
		}
		e.form.End = form.FormatLocal(end, loc)
	}
	return nil
}

func createHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := as.Require(ctx, "event create", func(c dashboard.Capabilities) bool { return c.ManageEvents }); err != nil {
			return err
		}

		f := form.NewEventForm()
		fs := as.NewFlagSet("event create")
		flags := bindEventFlags(fs, &f)
		if _, err := utils.ParseArgs(fs, args); err != nil {
			return err
		}

		now := time.Now()
		loc := as.Config.GetLocation()
		if err := flags.resolve(as, now); err != nil {
			return err
		}
		if err := f.Validate(now, loc, false); err != nil {
			return err
		}
		input, err := f.Input(loc)
		if err != nil {
			return err
		}

		event, err := as.API.CreateEvent(ctx, input)
		if err != nil {
			return fmt.Errorf("createHandler: %w", err)
		}
		as.Events.ApplyCreate(*event)
		fmt.Fprintf(as.Out, "Event #%d %q created.\n", event.ID, event.Title)
		return nil
	}
}
