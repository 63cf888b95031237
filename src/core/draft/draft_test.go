package draft

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func validDraft() *EventDraft {
	return &EventDraft{
		Title:        "Annual Hackathon",
		Description:  "A full weekend of building, learning and shipping.",
		Category:     "hackathon",
		Mode:         ModeOffline,
		StartDate:    "2025-07-10",
		StartTime:    "09:00",
		EndDate:      "2025-07-11",
		EndTime:      "18:00",
		DeadlineDate: "2025-07-01",
		DeadlineTime: "23:59",
		Venue:        "Main Auditorium",
		City:         "Pune",
		TeamSizeMin:  1,
		TeamSizeMax:  4,
	}
}

func TestValidateStepBasicInfo(t *testing.T) {
	d := validDraft()
	d.Title = "Hi"
	assert.Equal(t, []string{"Title must be at least 5 characters long"}, ValidateStep(d, StepBasicInfo))

	d = validDraft()
	d.Description = "too short"
	assert.Equal(t, []string{"Description must be at least 20 characters long"}, ValidateStep(d, StepBasicInfo))

	assert.Empty(t, ValidateStep(validDraft(), StepBasicInfo))
}

func TestValidateStepSchedule(t *testing.T) {
	d := validDraft()
	d.City = ""
	assert.Equal(t, []string{"City is required for offline/hybrid events"}, ValidateStep(d, StepSchedule))

	d = validDraft()
	d.Mode = ModeOnline
	d.City = ""
	d.Venue = ""
	assert.Empty(t, ValidateStep(d, StepSchedule), "online events do not need a location")

	d = validDraft()
	d.StartTime = ""
	d.EndDate = ""
	assert.Equal(t, []string{
		"Start date and time are required",
		"End date and time are required",
	}, ValidateStep(d, StepSchedule))
}

func TestValidateStepRegistration(t *testing.T) {
	d := validDraft()
	d.DeadlineDate = ""
	assert.Equal(t, []string{"Registration deadline is required"}, ValidateStep(d, StepRegistration))
}

func TestValidateCleanDraft(t *testing.T) {
	assert.Empty(t, Validate(validDraft(), now, false))
}

func TestValidateEndBeforeStart(t *testing.T) {
	d := validDraft()
	d.StartDate = "2025-06-02"
	d.EndDate = "2025-05-31"
	d.DeadlineDate = "2025-06-01"

	errs := Validate(d, now, false)
	assert.Contains(t, errs, "Event end date must be after start date")
	assert.NotContains(t, errs, "Event start date must be in the future")
}

func TestValidateDeadlineAfterStart(t *testing.T) {
	d := validDraft()
	d.DeadlineDate = "2025-07-10"
	d.DeadlineTime = "09:00"

	errs := Validate(d, now, false)
	assert.Equal(t, []string{"Registration deadline must be before the event start date"}, errs)
}

func TestValidatePastStart(t *testing.T) {
	d := validDraft()
	d.StartDate = "2025-05-01"
	d.DeadlineDate = "2025-04-20"

	errs := Validate(d, now, false)
	assert.Contains(t, errs, "Event start date must be in the future")

	// Editing an event that already started is allowed.
	assert.Empty(t, Validate(d, now, true))
}

func TestValidateMalformedDates(t *testing.T) {
	d := validDraft()
	d.StartDate = "garbage"
	d.EndTime = "25:99"
	d.DeadlineDate = "10-07-2025"

	errs := Validate(d, now, false)
	assert.Equal(t, []string{
		"Start date or time is invalid",
		"End date or time is invalid",
		"Registration deadline is invalid",
	}, errs, "filled-in but unparseable pairs are violations, not a free pass")

	_, ok := d.StartsAt()
	assert.False(t, ok)
}

func TestValidateMalformedStartOnly(t *testing.T) {
	d := validDraft()
	d.StartTime = "morning"

	// The end/deadline ordering rules need a parsed start to compare
	// against, so only the invalid-start violation surfaces.
	errs := Validate(d, now, false)
	assert.Equal(t, []string{"Start date or time is invalid"}, errs)
}

func TestValidateMinimumTeamSize(t *testing.T) {
	d := validDraft()
	d.TeamSizeMin = 0
	d.TeamSizeMax = 0

	errs := Validate(d, now, false)
	assert.Equal(t, []string{"Minimum team size must be at least 1"}, errs)

	d.TeamSizeMin = -2
	d.TeamSizeMax = 4
	errs = Validate(d, now, false)
	assert.Equal(t, []string{"Minimum team size must be at least 1"}, errs)
}

func TestValidateTeamSizeBounds(t *testing.T) {
	d := validDraft()
	d.TeamSizeMin = 3
	d.TeamSizeMax = 2

	errs := Validate(d, now, false)
	assert.Equal(t, []string{"Maximum team size cannot be less than minimum team size"}, errs)
}

func TestValidateCollectsEverything(t *testing.T) {
	d := &EventDraft{Mode: ModeHybrid, TeamSizeMin: 2, TeamSizeMax: 1}

	errs := Validate(d, now, false)
	assert.Equal(t, []string{
		"Title must be at least 5 characters long",
		"Description must be at least 20 characters long",
		"Start date and time are required",
		"End date and time are required",
		"City is required for offline/hybrid events",
		"Venue is required for offline/hybrid events",
		"Registration deadline is required",
		"Maximum team size cannot be less than minimum team size",
	}, errs, "all violations surface at once, in declaration order")
}

func TestValidateOrderStable(t *testing.T) {
	d := validDraft()
	d.Title = "Hi"
	d.City = ""

	first := Validate(d, now, false)
	second := Validate(d, now, false)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{
		"Title must be at least 5 characters long",
		"City is required for offline/hybrid events",
	}, first)
}

func TestStartsAtParsing(t *testing.T) {
	d := validDraft()
	start, ok := d.StartsAt()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC), start)

	d.StartTime = ""
	_, ok = d.StartsAt()
	assert.False(t, ok)

	d.StartTime = "not-a-time"
	_, ok = d.StartsAt()
	assert.False(t, ok)
}
