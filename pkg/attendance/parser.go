// Package attendance parses tutor-group attendance spreadsheets into
// per-team paired-session date sets. One workbook holds one sheet per
// tutor group; a header row carries the session dates and each data row
// marks one team's attendance per session.
package attendance

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fairlens/fairlens/pkg/cqi"
)

// Config positions the parser inside a sheet. Offsets are zero-based.
type Config struct {
	// HeaderRow is the row carrying the session dates.
	HeaderRow int
	// TeamNameCol is the column carrying team names in data rows.
	TeamNameCol int
	// FirstSessionCol is the first column carrying session marks.
	FirstSessionCol int
	// SessionsToKeep limits parsing to the most recent N sessions.
	SessionsToKeep int
}

// DefaultConfig returns the layout the course spreadsheets use: dates in
// the second row, team names in the first column, marks from the second
// column on, last 3 sessions kept.
func DefaultConfig() Config {
	return Config{
		HeaderRow:       1,
		TeamNameCol:     0,
		FirstSessionCol: 1,
		SessionsToKeep:  3,
	}
}

// Record is one team's paired sessions, keyed by normalized team name.
type Record map[string][]time.Time

var dateLayouts = []string{
	"02.01.2006",
	"2006-01-02",
	"02/01/2006",
	"01-02-06",
	"Jan 2, 2006",
}

// positive attendance marks; anything else counts as absent.
var presentMarks = map[string]bool{
	"x":       true,
	"1":       true,
	"y":       true,
	"yes":     true,
	"present": true,
	"✓":       true,
}

// Parse reads an xlsx workbook and returns each team's attended session
// dates. Sheets without a parseable header are skipped with a warning;
// a workbook with no usable sheet at all is an error.
func Parse(r io.Reader, cfg Config) (Record, error) {
	if cfg.SessionsToKeep < 1 {
		cfg.SessionsToKeep = DefaultConfig().SessionsToKeep
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening attendance workbook: %w", err)
	}
	defer f.Close()

	record := make(Record)
	usable := 0
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}

		sessions := headerSessions(rows, cfg)
		if len(sessions) == 0 {
			slog.Warn("Skipping attendance sheet without session dates", "sheet", sheet)
			continue
		}
		usable++

		for i := cfg.HeaderRow + 1; i < len(rows); i++ {
			team, dates := parseRow(rows[i], cfg, sessions)
			if team == "" {
				continue
			}
			record[team] = append(record[team], dates...)
		}
	}

	if usable == 0 {
		return nil, fmt.Errorf("attendance workbook has no sheet with session dates")
	}

	for team := range record {
		record[team] = dedupeSorted(record[team])
	}
	return record, nil
}

// session pairs a sheet column with its parsed date.
type session struct {
	col  int
	date time.Time
}

func headerSessions(rows [][]string, cfg Config) []session {
	if cfg.HeaderRow >= len(rows) {
		return nil
	}

	header := rows[cfg.HeaderRow]
	var sessions []session
	for col := cfg.FirstSessionCol; col < len(header); col++ {
		date, ok := parseDate(header[col])
		if !ok {
			continue
		}
		sessions = append(sessions, session{col: col, date: date})
	}

	// Keep only the most recent N sessions; earlier columns belong to
	// sessions before the analysis window.
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].date.Before(sessions[j].date) })
	if len(sessions) > cfg.SessionsToKeep {
		sessions = sessions[len(sessions)-cfg.SessionsToKeep:]
	}
	return sessions
}

func parseRow(row []string, cfg Config, sessions []session) (string, []time.Time) {
	if cfg.TeamNameCol >= len(row) {
		return "", nil
	}
	team := cqi.NormalizeTeamName(row[cfg.TeamNameCol])
	if team == "" {
		return "", nil
	}

	var dates []time.Time
	for _, s := range sessions {
		if s.col >= len(row) {
			continue
		}
		mark := strings.ToLower(strings.TrimSpace(row[s.col]))
		if presentMarks[mark] {
			dates = append(dates, s.date)
		}
	}
	return team, dates
}

func parseDate(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, cell); err == nil {
			return d.UTC(), true
		}
	}
	return time.Time{}, false
}

func dedupeSorted(dates []time.Time) []time.Time {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	out := dates[:0]
	for i, d := range dates {
		if i > 0 && d.Equal(dates[i-1]) {
			continue
		}
		out = append(out, d)
	}
	return out
}
