package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Fallbacks used when a participant field was never filled in.
const (
	missingValue    = "N/A"
	individualTeam  = "Individual"
	defaultStatus   = "registered"
	shortDateLayout = "1/2/2006"
)

type TeamMember struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	Institution string `json:"institution"`
}

// ParticipantRecord is the server-owned read model of one registration as it
// appears in the participants table. The exporter only reads it.
type ParticipantRecord struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Institution  string       `json:"institution"`
	TeamName     string       `json:"team_name"`
	TeamSize     int          `json:"team_size"`
	Status       string       `json:"status"`
	RegisteredAt time.Time    `json:"registered_at"`
	TeamMembers  []TeamMember `json:"team_members"`
}

var header = []string{
	"Participant Name", "Email", "Phone", "Institution",
	"Team Name", "Team Size", "Status", "Registered At",
	"Member Name", "Member Email", "Member Phone", "Member Role", "Member Institution",
}

// WriteCSV flattens the participant list into RFC 4180 CSV. A participant
// with team members produces one row per member with the participant's own
// columns repeated; a participant without members produces exactly one row
// with the member columns empty. Input order is preserved, so the output is
// deterministic: one header row plus sum of max(1, members) data rows.
func WriteCSV(w io.Writer, participants []ParticipantRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range participants {
		base := []string{
			orMissing(p.Name),
			orMissing(p.Email),
			orMissing(p.Phone),
			orMissing(p.Institution),
			orDefault(p.TeamName, individualTeam),
			strconv.Itoa(teamSize(p.TeamSize)),
			orDefault(p.Status, defaultStatus),
			registeredAt(p.RegisteredAt),
		}

		if len(p.TeamMembers) == 0 {
			row := append(append([]string{}, base...), "", "", "", "", "")
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
			continue
		}

		for _, m := range p.TeamMembers {
			row := append(append([]string{}, base...),
				orMissing(m.Name),
				orMissing(m.Email),
				orMissing(m.Phone),
				orMissing(m.Role),
				orMissing(m.Institution),
			)
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename builds the download name offered to the browser, e.g.
// "HackNight 2025-participants.csv".
func Filename(eventTitle, purpose string) string {
	return fmt.Sprintf("%s-%s.csv", eventTitle, purpose)
}

func orMissing(s string) string {
	return orDefault(s, missingValue)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func teamSize(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

func registeredAt(t time.Time) string {
	if t.IsZero() {
		return missingValue
	}
	return t.Format(shortDateLayout)
}
