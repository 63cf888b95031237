package registrations

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campushub/src/core/database"
	"campushub/src/core/export"
	"campushub/src/core/helpers"
	"campushub/src/core/logger"
	"campushub/src/core/models"
	"campushub/src/core/teamreg"
)

type registerRequest struct {
	Phone               string           `json:"phone"`
	AlternateEmail      string           `json:"alternate_email"`
	TeamName            string           `json:"team_name"`
	TeamSize            int              `json:"team_size"`
	TeamMembers         []teamreg.Member `json:"team_members"`
	Institution         string           `json:"institution"`
	ExperienceLevel     string           `json:"experience_level"`
	Motivation          string           `json:"motivation"`
	SpecialRequirements string           `json:"special_requirements"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func hostOrAdmin(c *fiber.Ctx, event *models.Event) bool {
	userId, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("user_role").(string)
	return event.HostID.String() == userId || role == models.RoleAdmin
}

func loadEvent(c *fiber.Ctx, db *gorm.DB) (*models.Event, error) {
	var event models.Event
	if err := db.Where("id = ?", c.Params("id")).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helpers.HandleError(c, fiber.StatusNotFound, "Event not found", nil)
		}
		return nil, helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}
	return &event, nil
}

// Register composes and persists a registration for the authenticated user.
// The team list is rebuilt server-side against the event's declared bounds,
// so a tampered payload can never place someone else as leader or exceed the
// team size range.
func Register(c *fiber.Ctx) error {
	db := database.DB

	userId, ok := c.Locals("user_id").(string)
	if !ok || userId == "" {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", nil)
	}
	userID, err := uuid.Parse(userId)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	event, errResp := loadEvent(c, db)
	if event == nil {
		return errResp
	}

	if event.Status == models.EventStatusCancelled {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Event has been cancelled", nil)
	}
	if time.Now().After(event.RegistrationDeadline) {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Registration deadline has passed", nil)
	}

	// One live registration per user per event.
	var existing models.Registration
	err = db.Where("event_id = ? AND user_id = ? AND status <> ?", event.ID, userID, models.StatusCancelled).
		First(&existing).Error
	if err == nil {
		return helpers.HandleError(c, fiber.StatusConflict, "You are already registered for this event", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "User not found", err)
	}

	body := new(registerRequest)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	comp := teamreg.NewComposer(
		teamreg.Session{UserID: user.ID.String(), Name: user.FullName(), Email: user.Email, Role: user.Role},
		teamreg.Bounds{Min: event.TeamSizeMin, Max: event.TeamSizeMax},
	)
	reg := comp.Registration()
	reg.Phone = body.Phone
	reg.AlternateEmail = body.AlternateEmail
	reg.TeamName = body.TeamName
	reg.Institution = body.Institution
	reg.ExperienceLevel = body.ExperienceLevel
	reg.Motivation = body.Motivation
	reg.SpecialRequirements = body.SpecialRequirements

	comp.SetTeamSize(body.TeamSize)
	// Index 0 is the leader and is regenerated from the session, so only the
	// remaining entries are taken from the request.
	for i := 1; i < len(body.TeamMembers) && i < reg.TeamSize; i++ {
		if err := comp.SetMember(i, body.TeamMembers[i]); err != nil {
			return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid team member entry", err)
		}
	}

	if errs := comp.Validate(); len(errs) > 0 {
		return helpers.HandleValidationErrors(c, errs)
	}

	payload := comp.ToPayload()
	membersJSON, err := json.Marshal(payload.Members)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to encode team members", err)
	}

	registration := models.Registration{
		ID:                  uuid.New(),
		EventID:             event.ID,
		UserID:              userID,
		Phone:               payload.Phone,
		AlternateEmail:      payload.AlternateEmail,
		TeamName:            payload.TeamName,
		TeamSize:            payload.TeamSize,
		TeamMembers:         datatypes.JSON(membersJSON),
		Institution:         payload.Institution,
		ExperienceLevel:     payload.ExperienceLevel,
		Motivation:          payload.Motivation,
		SpecialRequirements: payload.SpecialRequirements,
		Status:              models.StatusRegistered,
		RegisteredAt:        time.Now(),
	}

	if result := db.Create(&registration); result.Error != nil {
		logger.Log.Error().Err(result.Error).Str("event_id", event.ID.String()).Msg("failed to create registration")
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to register for event", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Registered for event successfully", registration)
}

// Unregister cancels the caller's registration. The row is kept with status
// cancelled so the host's history stays intact.
func Unregister(c *fiber.Ctx) error {
	db := database.DB
	userId, _ := c.Locals("user_id").(string)

	event, errResp := loadEvent(c, db)
	if event == nil {
		return errResp
	}

	var registration models.Registration
	err := db.Where("event_id = ? AND user_id = ? AND status <> ?", event.ID, userId, models.StatusCancelled).
		First(&registration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "You are not registered for this event", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	registration.Status = models.StatusCancelled
	registration.UpdatedAt = time.Now()
	if result := db.Save(&registration); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to cancel registration", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Registration cancelled successfully", registration)
}

// participantRecords builds the read model the participants table and the
// CSV export share. Rows come back in registration order.
func participantRecords(db *gorm.DB, eventID uuid.UUID) ([]export.ParticipantRecord, error) {
	var registrations []models.Registration
	if err := db.Where("event_id = ?", eventID).Order("registered_at ASC").Find(&registrations).Error; err != nil {
		return nil, err
	}

	records := make([]export.ParticipantRecord, 0, len(registrations))
	for _, r := range registrations {
		var user models.User
		if err := db.Where("id = ?", r.UserID).First(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to load user %s: %w", r.UserID, err)
		}

		var members []export.TeamMember
		if len(r.TeamMembers) > 0 {
			if err := json.Unmarshal(r.TeamMembers, &members); err != nil {
				return nil, fmt.Errorf("failed to decode team members for registration %s: %w", r.ID, err)
			}
		}

		records = append(records, export.ParticipantRecord{
			Name:         user.FullName(),
			Email:        user.Email,
			Phone:        r.Phone,
			Institution:  r.Institution,
			TeamName:     r.TeamName,
			TeamSize:     r.TeamSize,
			Status:       r.Status,
			RegisteredAt: r.RegisteredAt,
			TeamMembers:  members,
		})
	}

	return records, nil
}

func GetParticipants(c *fiber.Ctx) error {
	db := database.DB

	event, errResp := loadEvent(c, db)
	if event == nil {
		return errResp
	}
	if !hostOrAdmin(c, event) {
		return helpers.HandleError(c, fiber.StatusForbidden, "Only the event host can view participants", nil)
	}

	records, err := participantRecords(db, event.ID)
	if err != nil {
		logger.Log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to build participant list")
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch participants", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Participants retrieved successfully", records)
}

func UpdateParticipantStatus(c *fiber.Ctx) error {
	db := database.DB

	event, errResp := loadEvent(c, db)
	if event == nil {
		return errResp
	}
	if !hostOrAdmin(c, event) {
		return helpers.HandleError(c, fiber.StatusForbidden, "Only the event host can update participant status", nil)
	}

	body := new(statusRequest)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if !models.ValidStatus(body.Status) {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid participant status", nil)
	}

	var registration models.Registration
	err := db.Where("id = ? AND event_id = ?", c.Params("registration_id"), event.ID).First(&registration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Participant not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	registration.Status = body.Status
	registration.UpdatedAt = time.Now()
	if result := db.Save(&registration); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update participant status", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Participant status updated successfully", registration)
}

// ExportParticipantsCSV streams the participant list as a CSV download named
// "{event title}-participants.csv".
func ExportParticipantsCSV(c *fiber.Ctx) error {
	db := database.DB

	event, errResp := loadEvent(c, db)
	if event == nil {
		return errResp
	}
	if !hostOrAdmin(c, event) {
		return helpers.HandleError(c, fiber.StatusForbidden, "Only the event host can export participants", nil)
	}

	records, err := participantRecords(db, event.ID)
	if err != nil {
		logger.Log.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to build participant export")
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to export participants", err)
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, records); err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to generate CSV", err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, export.Filename(event.Title, "participants")))
	return c.Send(buf.Bytes())
}
