package utils

import (
	"fmt"
	"io"
	"strconv"

	"campusevents/src-client/model"

	"github.com/dustin/go-humanize"
)

// PrintEvents writes one aligned row per event.
func PrintEvents(w io.Writer, events []model.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events found.")
		return
	}
	fmt.Fprintf(w, "%s %s %s %s %s\n",
		FitWidth("ID", 6),
		FitWidth("TITLE", 32),
		FitWidth("CATEGORY", 14),
		FitWidth("STARTS", 18),
		"AVAILABILITY",
	)
	for _, event := range events {
		fmt.Fprintf(w, "%s %s %s %s %s\n",
			FitWidth(strconv.FormatInt(event.ID, 10), 6),
			FitWidth(event.Title, 32),
			FitWidth(CleanupString(string(event.Category)), 14),
			FitWidth(humanize.Time(event.DateTime.Time), 18),
			event.AvailabilityText(),
		)
	}
}

// PrintRegistrations writes one aligned row per registration. Missing
// student details show as "Unknown".
func PrintRegistrations(w io.Writer, regs []model.Registration) {
	if len(regs) == 0 {
		fmt.Fprintln(w, "No registrations yet.")
		return
	}
	for _, reg := range regs {
		name, email := "Unknown", "Unknown"
		if reg.Student != nil {
			if reg.Student.Name != "" {
				name = reg.Student.Name
			}
			if reg.Student.Email != "" {
				email = reg.Student.Email
			}
		}
		fmt.Fprintf(w, "%s %s %s %s %s\n",
			FitWidth(strconv.FormatInt(reg.ID, 10), 6),
			FitWidth(name, 24),
			FitWidth(email, 32),
			FitWidth(CleanupString(string(reg.Status)), 11),
			humanize.Time(reg.CreatedAt.Time),
		)
	}
	fmt.Fprintf(w, "%s registrations\n", humanize.Comma(int64(len(regs))))
}

// PrintUsers writes one aligned row per user.
func PrintUsers(w io.Writer, users []model.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users.")
		return
	}
	for _, user := range users {
		status := "active"
		if !user.IsActive {
			status = "pending"
		}
		fmt.Fprintf(w, "%s %s %s %s %s\n",
			FitWidth(strconv.FormatInt(user.ID, 10), 6),
			FitWidth(user.Name, 24),
			FitWidth(user.Email, 32),
			FitWidth(CleanupString(string(user.Role)), 10),
			status,
		)
	}
}
