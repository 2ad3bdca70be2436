// Package export renders registration lists into files an organizer can
// download.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"campusevents/src-client/model"
)

var ErrNoRegistrations = errors.New("no registrations to export")

var csvHeader = []string{"ID", "Name", "Email", "Status"}

func CSVFileName(eventID int64) string {
	return fmt.Sprintf("registrations_event_%d.csv", eventID)
}

const unknown = "Unknown"

// WriteRegistrationsCSV writes one row per registration. Missing student
// details show as "Unknown".
func WriteRegistrationsCSV(w io.Writer, registrations []model.Registration) error {
	if len(registrations) == 0 {
		return ErrNoRegistrations
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("WriteRegistrationsCSV: %w", err)
	}
	for _, registration := range registrations {
		name, email := unknown, unknown
		if student := registration.Student; student != nil {
			if student.Name != "" {
				name = student.Name
			}
			if student.Email != "" {
				email = student.Email
			}
		}
		if err := writer.Write([]string{
			strconv.FormatInt(registration.ID, 10),
			name,
			email,
			string(registration.Status),
		}); err != nil {
			return fmt.Errorf("WriteRegistrationsCSV: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("WriteRegistrationsCSV: %w", err)
	}
	return nil
}
