package draft

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Event modes. Offline and hybrid events need a physical location.
const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

// Wizard steps, in the order the creation form walks through them.
const (
	StepBasicInfo    = 1
	StepSchedule     = 2
	StepRegistration = 3
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

type Prize struct {
	Position    string  `json:"position"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// EventDraft is the working copy of an event while it is being created or
// edited. Dates and times are kept as the raw form strings and only combined
// into instants during validation, so a half-filled draft is always
// representable.
type EventDraft struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Mode         string  `json:"mode"`
	StartDate    string  `json:"start_date"`
	StartTime    string  `json:"start_time"`
	EndDate      string  `json:"end_date"`
	EndTime      string  `json:"end_time"`
	DeadlineDate string  `json:"deadline_date"`
	DeadlineTime string  `json:"deadline_time"`
	Venue        string  `json:"venue"`
	City         string  `json:"city"`
	FeeAmount    float64 `json:"fee_amount"`
	IsFree       bool    `json:"is_free"`
	TeamSizeMin  int     `json:"team_size_min"`
	TeamSizeMax  int     `json:"team_size_max"`

	Requirements []string `json:"requirements"`
	Tags         []string `json:"tags"`
	Skills       []string `json:"skills"`
	Prizes       []Prize  `json:"prizes"`
	FAQs         []FAQ    `json:"faqs"`
}

// RequiresLocation reports whether the draft's mode needs venue and city.
func (d *EventDraft) RequiresLocation() bool {
	mode := strings.ToLower(strings.TrimSpace(d.Mode))
	return mode == ModeOffline || mode == ModeHybrid
}

// StartsAt combines the start date and time strings into an instant.
// The second return value is false when either part is missing or malformed.
func (d *EventDraft) StartsAt() (time.Time, bool) {
	return combine(d.StartDate, d.StartTime)
}

// EndsAt combines the end date and time strings into an instant.
func (d *EventDraft) EndsAt() (time.Time, bool) {
	return combine(d.EndDate, d.EndTime)
}

// DeadlineAt combines the registration deadline date and time into an instant.
func (d *EventDraft) DeadlineAt() (time.Time, bool) {
	return combine(d.DeadlineDate, d.DeadlineTime)
}

func combine(date, clock string) (time.Time, bool) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateTimeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func present(date, clock string) bool {
	return strings.TrimSpace(date) != "" && strings.TrimSpace(clock) != ""
}

// ValidateStep checks only the fields owned by the given wizard step and
// returns every violated rule's message, in declaration order. An unknown
// step validates clean.
func ValidateStep(d *EventDraft, step int) []string {
	errs := []string{}

	switch step {
	case StepBasicInfo:
		if utf8.RuneCountInString(strings.TrimSpace(d.Title)) < 5 {
			errs = append(errs, "Title must be at least 5 characters long")
		}
		if utf8.RuneCountInString(strings.TrimSpace(d.Description)) < 20 {
			errs = append(errs, "Description must be at least 20 characters long")
		}
	case StepSchedule:
		if !present(d.StartDate, d.StartTime) {
			errs = append(errs, "Start date and time are required")
		}
		if !present(d.EndDate, d.EndTime) {
			errs = append(errs, "End date and time are required")
		}
		if d.RequiresLocation() {
			if strings.TrimSpace(d.City) == "" {
				errs = append(errs, "City is required for offline/hybrid events")
			}
			if strings.TrimSpace(d.Venue) == "" {
				errs = append(errs, "Venue is required for offline/hybrid events")
			}
		}
	case StepRegistration:
		if !present(d.DeadlineDate, d.DeadlineTime) {
			errs = append(errs, "Registration deadline is required")
		}
	}

	return errs
}

// Validate runs the full pre-submission check: all step rules plus the
// cross-field ordering rules. It never short-circuits, so the caller can show
// every problem at once. Messages come back in a fixed declaration order.
//
// The future-start rule only applies when creating an event; on edit the
// event may legitimately have started already, so pass edit=true to skip it.
func Validate(d *EventDraft, now time.Time, edit bool) []string {
	errs := []string{}
	errs = append(errs, ValidateStep(d, StepBasicInfo)...)
	errs = append(errs, ValidateStep(d, StepSchedule)...)
	errs = append(errs, ValidateStep(d, StepRegistration)...)

	// A pair that is filled in but fails to combine is its own violation;
	// the ordering rules below only run on instants that actually parsed.
	start, hasStart := d.StartsAt()
	if present(d.StartDate, d.StartTime) && !hasStart {
		errs = append(errs, "Start date or time is invalid")
	}
	end, hasEnd := d.EndsAt()
	if present(d.EndDate, d.EndTime) && !hasEnd {
		errs = append(errs, "End date or time is invalid")
	}
	deadline, hasDeadline := d.DeadlineAt()
	if present(d.DeadlineDate, d.DeadlineTime) && !hasDeadline {
		errs = append(errs, "Registration deadline is invalid")
	}

	if d.TeamSizeMin < 1 {
		errs = append(errs, "Minimum team size must be at least 1")
	}
	if d.TeamSizeMax < d.TeamSizeMin {
		errs = append(errs, "Maximum team size cannot be less than minimum team size")
	}

	if !edit && hasStart && !start.After(now) {
		errs = append(errs, "Event start date must be in the future")
	}
	if hasStart && hasEnd && !end.After(start) {
		errs = append(errs, "Event end date must be after start date")
	}
	if hasStart && hasDeadline && !deadline.Before(start) {
		errs = append(errs, "Registration deadline must be before the event start date")
	}

	return errs
}
