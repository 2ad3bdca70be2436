package handler

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"campusevents/src-client/api"
	"campusevents/src-client/dashboard"
	"campusevents/src-client/model"
	"campusevents/src-client/utils"

	"github.com/AlekSi/pointer"
	"github.com/dustin/go-humanize"
)

// Profile injects the "profile" command with its subcommands.
func Profile(as *utils.AppState) {
	localCmdInfo := []*utils.CmdInfo{
		{Name: "show", Description: "Show your profile."},
		{Name: "update", Usage: "[--name n] [--major m] [--graduation-year y] [--headline h] [--interests i] [--linkedin url]", Description: "Update profile fields."},
		{Name: "skill-add", Usage: "<skill>", Description: "Add a skill."},
		{Name: "skill-remove", Usage: "<skill-id>", Description: "Remove a skill."},
		{Name: "resume", Usage: "<file.pdf>", Description: "Upload a PDF resume, 5 MiB at most."},
	}
	localCmdHandler := map[string]utils.CmdHandler{
		"show":         profileShowHandler(as),
		"update":       profileUpdateHandler(as),
		"skill-add":    skillAddHandler(as),
		"skill-remove": skillRemoveHandler(as),
		"resume":       resumeHandler(as),
	}

	id := "profile"
	as.AddCmdInfo(id, &utils.CmdInfo{
		Name:        id,
		Usage:       "<subcommand>",
		Description: "Student profile commands.",
		Options:     localCmdInfo,
	})
	as.AddCmdHandler(id, as.Group(id, localCmdInfo, localCmdHandler))
}

func requireProfile(ctx context.Context, as *utils.AppState, action string) error {
	return as.Require(ctx, action, func(c dashboard.Capabilities) bool { return c.EditProfile })
}

func profileShowHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireProfile(ctx, as, "profile show"); err != nil {
			return err
		}
		user, err := as.API.Profile(ctx)
		if err != nil {
			return fmt.Errorf("profileShowHandler: %w", err)
		}
		printProfile(as, user)
		return nil
	}
}

func printProfile(as *utils.AppState, user *model.User) {
	fmt.Fprintf(as.Out, "%s <%s>\n", user.Name, user.Email)
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"Headline", user.Headline},
		{"Major", user.Major},
		{"Interests", user.Interests},
		{"LinkedIn", user.LinkedinURL},
	} {
		if v := pointer.GetString(field.value); v != "" {
			fmt.Fprintf(as.Out, "  %s %s\n", utils.FitWidth(field.name+":", 12), v)
		}
	}
	if user.GraduationYear != nil {
		fmt.Fprintf(as.Out, "  %s %d\n", utils.FitWidth("Graduating:", 12), *user.GraduationYear)
	}
	if len(user.Skills) > 0 {
		names := make([]string, len(user.Skills))
		for i, skill := range user.Skills {
			names[i] = fmt.Sprintf("%s (#%d)", skill.SkillName, skill.ID)
		}
		fmt.Fprintf(as.Out, "  %s %s\n", utils.FitWidth("Skills:", 12), strings.Join(names, ", "))
	}
	for _, resume := range user.Resumes {
		if resume.IsActive {
			fmt.Fprintf(as.Out, "  %s %s, uploaded %s\n", utils.FitWidth("Resume:", 12), resume.FileNameOriginal, humanize.Time(resume.UploadedAt.Time))
		}
	}
}

func profileUpdateHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireProfile(ctx, as, "profile update"); err != nil {
			return err
		}
		fs := as.NewFlagSet("profile update")
		name := fs.String("name", "", "full name")
		major := fs.String("major", "", "major")
		graduationYear := fs.Int("graduation-year", 0, "graduation year")
		headline := fs.String("headline", "", "headline")
		interests := fs.String("interests", "", "interests")
		linkedin := fs.String("linkedin", "", "LinkedIn profile url")
		if _, err := utils.ParseArgs(fs, args); err != nil {
			return err
		}

		// only flags given on the command line are sent
		update := model.ProfileUpdate{}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "name":
				update.Name = pointer.ToString(strings.TrimSpace(*name))
			case "major":
				update.Major = pointer.ToString(strings.TrimSpace(*major))
			case "graduation-year":
				update.GraduationYear = pointer.ToInt(*graduationYear)
			case "headline":
				update.Headline = pointer.ToString(strings.TrimSpace(*headline))
			case "interests":
				update.Interests = pointer.ToString(strings.TrimSpace(*interests))
			case "linkedin":
				update.LinkedinURL = pointer.ToString(strings.TrimSpace(*linkedin))
			}
		})
		if update == (model.ProfileUpdate{}) {
			return fmt.Errorf("profileUpdateHandler: %w: nothing to update", utils.ErrUsage)
		}

		user, err := as.API.UpdateProfile(ctx, update)
		if err != nil {
			return fmt.Errorf("profileUpdateHandler: %w", err)
		}
		printProfile(as, user)
		return nil
	}
}

func skillAddHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireProfile(ctx, as, "profile skill-add"); err != nil {
			return err
		}
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return fmt.Errorf("skillAddHandler: %w: missing skill", utils.ErrUsage)
		}
		skill, err := as.API.AddSkill(ctx, name)
		if err != nil {
			return fmt.Errorf("skillAddHandler: %w", err)
		}
		fmt.Fprintf(as.Out, "Skill %q added (#%d).\n", skill.SkillName, skill.ID)
		return nil
	}
}

func skillRemoveHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireProfile(ctx, as, "profile skill-remove"); err != nil {
			return err
		}
		skillID, err := utils.ParseID(args, 0, "skill id")
		if err != nil {
			return err
		}
		if err := as.API.RemoveSkill(ctx, skillID); err != nil {
			return fmt.Errorf("skillRemoveHandler: %w", err)
		}
		fmt.Fprintf(as.Out, "Skill #%s removed.\n", strconv.FormatInt(skillID, 10))
		return nil
	}
}

func resumeHandler(as *utils.AppState) utils.CmdHandler {
	return func(ctx context.Context, args []string) error {
		if err := requireProfile(ctx, as, "profile resume"); err != nil {
			return err
		}
		if len(args) == 0 {
			return fmt.Errorf("resumeHandler: %w: missing file", utils.ErrUsage)
		}
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("resumeHandler: %w", err)
		}
		if err := api.CheckResume(content); err != nil {
			return fmt.Errorf("resumeHandler: %s (%s): %w", args[0], humanize.IBytes(uint64(len(content))), err)
		}
		resume, err := as.API.UploadResume(ctx, filepath.Base(args[0]), content)
		if err != nil {
			return fmt.Errorf("resumeHandler: %w", err)
		}
		fmt.Fprintf(as.Out, "Resume %s uploaded (%s).\n", resume.FileNameOriginal, humanize.IBytes(uint64(len(content))))
		return nil
	}
}
