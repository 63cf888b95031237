package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var registered = time.Date(2025, 3, 7, 10, 30, 0, 0, time.UTC)

func writeRows(t *testing.T, participants []ParticipantRecord) [][]string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, participants))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	rows := writeRows(t, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, header, rows[0])
}

func TestWriteCSVRowCount(t *testing.T) {
	participants := []ParticipantRecord{
		{Name: "P1", TeamMembers: []TeamMember{{Name: "A"}, {Name: "B"}}},
		{Name: "P2"},
		{Name: "P3", TeamMembers: []TeamMember{{Name: "C"}}},
	}

	rows := writeRows(t, participants)
	assert.Len(t, rows, 5, "1 header + 2 + 1 + 1 data rows")
}

func TestWriteCSVRepeatsParticipantPerMember(t *testing.T) {
	participants := []ParticipantRecord{{
		Name:         "Asha Mehta",
		Email:        "asha@college.edu",
		Phone:        "9876543210",
		Institution:  "IIT Bombay",
		TeamName:     "Null Pointers",
		TeamSize:     2,
		Status:       "confirmed",
		RegisteredAt: registered,
		TeamMembers: []TeamMember{
			{Name: "Asha Mehta", Email: "asha@college.edu", Phone: "9876543210", Role: "Team Leader", Institution: "IIT Bombay"},
			{Name: "Ravi", Email: "ravi@college.edu", Role: "Member"},
		},
	}}

	rows := writeRows(t, participants)
	require.Len(t, rows, 3)

	base := []string{"Asha Mehta", "asha@college.edu", "9876543210", "IIT Bombay", "Null Pointers", "2", "confirmed", "3/7/2025"}
	assert.Equal(t, base, rows[1][:8])
	assert.Equal(t, base, rows[2][:8], "participant columns repeat on every member row")
	assert.Equal(t, []string{"Ravi", "ravi@college.edu", "N/A", "Member", "N/A"}, rows[2][8:])
}

func TestWriteCSVDefaults(t *testing.T) {
	rows := writeRows(t, []ParticipantRecord{{}})
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"N/A", "N/A", "N/A", "N/A", "Individual", "1", "registered", "N/A", "", "", "", "", ""}, rows[1])
}

func TestWriteCSVQuotesEmbeddedCommas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []ParticipantRecord{{Name: "Mehta, Asha"}}))

	assert.Contains(t, buf.String(), `"Mehta, Asha"`)

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Mehta, Asha", rows[1][0], "embedded commas survive a round trip")
}

func TestWriteCSVDeterministic(t *testing.T) {
	participants := []ParticipantRecord{
		{Name: "Zara", RegisteredAt: registered},
		{Name: "Amit", RegisteredAt: registered},
	}

	var a, b bytes.Buffer
	require.NoError(t, WriteCSV(&a, participants))
	require.NoError(t, WriteCSV(&b, participants))
	assert.Equal(t, a.String(), b.String())

	rows, err := csv.NewReader(&a).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Zara", rows[1][0], "input order is preserved, no sorting")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "HackNight 2025-participants.csv", Filename("HackNight 2025", "participants"))
}
