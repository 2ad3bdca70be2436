package ical

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const lineLimit = 75

// Wrap a writer so every call writes one folded content line: at most 75
// octets per physical line, continuation lines start with a space, and
// every physical line ends with CRLF. Multi-byte characters are never cut.
//
//	var sb strings.Builder
//	writeLine := fold75(sb.WriteString)
//	writeLine("DESCRIPTION:" + long)
func fold75(writer func(string) (int, error)) func(string) error {
	return func(line string) error {
		limit := lineLimit
		for len(line) > limit {
			cut := limit
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			if cut == 0 {
				// no rune start in reach, the input is not valid UTF-8
				cut = limit
			}
			if _, err := writer(line[:cut] + "\r\n "); err != nil {
				return err
			}
			line = line[cut:]
			// the leading space counts towards the next line
			limit = lineLimit - 1
		}
		_, err := writer(line + "\r\n")
		return err
	}
}

// Convert a time to a UTC iCalendar date-time: YYYYMMDDTHHMMSSZ
func timeToIcalDatetime(t time.Time) (string, error) {
	if t.IsZero() {
		return "", errors.New("time is zero")
	}
	return t.UTC().Format("20060102T150405Z"), nil
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// Escape a TEXT property value.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}
