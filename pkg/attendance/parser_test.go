package attendance

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes sheets of string cells and returns the xlsx bytes.
func buildWorkbook(t *testing.T, sheets map[string][][]string) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			for j, cell := range row {
				ref, err := excelize.CoordinatesToCellName(j+1, i+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellStr(name, ref, cell))
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestParse_SingleSheet(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]string{
		"Group A": {
			{"Tutor group A"},
			{"Team", "05.03.2026", "12.03.2026", "19.03.2026"},
			{"Team Rocket", "x", "", "x"},
			{"team-alpha", "X", "x", "x"},
			{"", "x", "x", "x"},
		},
	})

	record, err := Parse(wb, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, record, 2)

	rocket := record["team rocket"]
	require.Len(t, rocket, 2)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), rocket[0])
	assert.Equal(t, time.Date(2026, 3, 19, 0, 0, 0, 0, time.UTC), rocket[1])

	assert.Len(t, record["team-alpha"], 3, "marks are case-insensitive")
}

func TestParse_KeepsOnlyRecentSessions(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]string{
		"Group A": {
			{},
			{"Team", "05.02.2026", "12.02.2026", "05.03.2026", "12.03.2026", "19.03.2026"},
			{"team-alpha", "x", "x", "x", "x", "x"},
		},
	})

	record, err := Parse(wb, DefaultConfig())
	require.NoError(t, err)

	dates := record["team-alpha"]
	require.Len(t, dates, 3, "only the last 3 sessions are kept")
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2026, 3, 19, 0, 0, 0, 0, time.UTC), dates[2])
}

func TestParse_MultipleSheetsMerge(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]string{
		"Group A": {
			{},
			{"Team", "05.03.2026"},
			{"team-alpha", "x"},
		},
		"Group B": {
			{},
			{"Team", "12.03.2026"},
			{"team-beta", "x"},
		},
	})

	record, err := Parse(wb, DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, record["team-alpha"], 1)
	assert.Len(t, record["team-beta"], 1)
}

func TestParse_NormalizesTeamNames(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]string{
		"Group A": {
			{},
			{"Team", "05.03.2026"},
			{"  Team Rocket  ", "x"},
		},
	})

	record, err := Parse(wb, DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, record, "team rocket", "whitespace and casing are normalized")
}

func TestParse_SkipsSheetWithoutDates(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]string{
		"Notes": {
			{"free-form notes, no dates"},
			{"still no dates here"},
		},
		"Group A": {
			{},
			{"Team", "05.03.2026"},
			{"team-alpha", "x"},
		},
	})

	record, err := Parse(wb, DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, record, 1)
}

func TestParse_NoUsableSheet(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]string{
		"Notes": {
			{"no session header anywhere"},
		},
	})

	_, err := Parse(wb, DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sheet with session dates")
}

func TestParse_NotAWorkbook(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte("definitely not xlsx")), DefaultConfig())
	require.Error(t, err)
}

func TestParse_AbsentMarks(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]string{
		"Group A": {
			{},
			{"Team", "05.03.2026", "12.03.2026", "19.03.2026"},
			{"team-alpha", "-", "0", "no"},
		},
	})

	record, err := Parse(wb, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, record["team-alpha"])
}
