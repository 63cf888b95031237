package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campushub/src/core/database"
	"campushub/src/core/draft"
	"campushub/src/core/helpers"
	"campushub/src/core/logger"
	"campushub/src/core/models"
	"campushub/src/utils"
)

// applyDraft copies a fully validated draft onto the event row. The instant
// fields are guaranteed to parse because validation has already run.
func applyDraft(d *draft.EventDraft, event *models.Event) error {
	start, _ := d.StartsAt()
	end, _ := d.EndsAt()
	deadline, _ := d.DeadlineAt()

	event.Title = d.Title
	event.Description = d.Description
	event.Category = d.Category
	event.Mode = d.Mode
	event.StartTime = start
	event.EndTime = end
	event.RegistrationDeadline = deadline
	event.Venue = d.Venue
	event.City = d.City
	event.FeeAmount = d.FeeAmount
	event.IsFree = d.IsFree
	event.TeamSizeMin = d.TeamSizeMin
	event.TeamSizeMax = d.TeamSizeMax

	fields := []struct {
		name string
		dst  *datatypes.JSON
		src  interface{}
	}{
		{"requirements", &event.Requirements, utils.RemoveDuplicates(d.Requirements)},
		{"tags", &event.Tags, utils.RemoveDuplicates(d.Tags)},
		{"skills", &event.Skills, utils.RemoveDuplicates(d.Skills)},
		{"prizes", &event.Prizes, d.Prizes},
		{"faqs", &event.FAQs, d.FAQs},
	}
	for _, f := range fields {
		raw, err := json.Marshal(f.src)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", f.name, err)
		}
		*f.dst = datatypes.JSON(raw)
	}

	return nil
}

// scheduleStatus derives an event's lifecycle status from its schedule.
// Cancellation is a separate, explicit transition and is never overwritten
// here.
func scheduleStatus(start, end, now time.Time) string {
	switch {
	case now.After(end):
		return models.EventStatusCompleted
	case now.After(start):
		return models.EventStatusOngoing
	default:
		return models.EventStatusUpcoming
	}
}

func CreateEvent(c *fiber.Ctx) error {
	db := database.DB

	userId, ok := c.Locals("user_id").(string)
	if !ok || userId == "" {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", nil)
	}
	hostID, err := uuid.Parse(userId)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	body := new(draft.EventDraft)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	// Full-form validation; every violated rule comes back at once and
	// nothing is written if any rule fails.
	if errs := draft.Validate(body, time.Now(), false); len(errs) > 0 {
		return helpers.HandleValidationErrors(c, errs)
	}

	event := models.Event{
		ID:     uuid.New(),
		HostID: hostID,
		Status: models.EventStatusUpcoming,
	}
	if err := applyDraft(body, &event); err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to process event data", err)
	}

	if result := db.Create(&event); result.Error != nil {
		logger.Log.Error().Err(result.Error).Msg("failed to create event")
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create event", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Event created successfully", event)
}

func UpdateEvent(c *fiber.Ctx) error {
	db := database.DB

	userId, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("user_role").(string)

	eventID := c.Params("id")
	var event models.Event
	if err := db.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Event not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	if event.HostID.String() != userId && role != models.RoleAdmin {
		return helpers.HandleError(c, fiber.StatusForbidden, "Only the event host can edit this event", nil)
	}

	body := new(draft.EventDraft)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	// Edit mode: the future-start rule is skipped since the event may have
	// already started.
	if errs := draft.Validate(body, time.Now(), true); len(errs) > 0 {
		return helpers.HandleValidationErrors(c, errs)
	}

	if err := applyDraft(body, &event); err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to process event data", err)
	}
	if event.Status != models.EventStatusCancelled {
		event.Status = scheduleStatus(event.StartTime, event.EndTime, time.Now())
	}
	event.UpdatedAt = time.Now()

	if result := db.Save(&event); result.Error != nil {
		logger.Log.Error().Err(result.Error).Str("event_id", eventID).Msg("failed to update event")
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update event", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Event updated successfully", event)
}

func GetEventByID(c *fiber.Ctx) error {
	db := database.DB
	eventID := c.Params("id")

	var event models.Event
	if err := db.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Event not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Event details retrieved successfully", event)
}

func GetEventsFeed(c *fiber.Ctx) error {
	db := database.DB

	limit, err := strconv.Atoi(c.Query("limit", "15"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 15
	}

	query := db.Table("events").Order("start_time ASC").Limit(limit)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("upcoming", "true") == "true" {
		query = query.Where("start_time > ?", time.Now())
	}

	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		logger.Log.Error().Err(err).Msg("failed to fetch events feed")
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch events feed", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Events feed retrieved successfully", events)
}

func GetHostedEvents(c *fiber.Ctx) error {
	db := database.DB
	userId, _ := c.Locals("user_id").(string)

	var events []models.Event
	if err := db.Where("host_id = ?", userId).Order("start_time DESC").Find(&events).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch hosted events", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Hosted events retrieved successfully", events)
}

// CancelEvent marks an event cancelled without removing it, so participants
// still see it in their history. Cancelled events accept no registrations.
func CancelEvent(c *fiber.Ctx) error {
	db := database.DB

	userId, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("user_role").(string)

	eventID := c.Params("id")
	var event models.Event
	if err := db.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Event not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	if event.HostID.String() != userId && role != models.RoleAdmin {
		return helpers.HandleError(c, fiber.StatusForbidden, "Only the event host can cancel this event", nil)
	}
	if event.Status == models.EventStatusCancelled {
		return helpers.HandleError(c, fiber.StatusConflict, "Event is already cancelled", nil)
	}

	event.Status = models.EventStatusCancelled
	event.UpdatedAt = time.Now()
	if result := db.Save(&event); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to cancel event", result.Error)
	}

	logger.Log.Info().Str("event_id", eventID).Msg("event cancelled")
	return helpers.HandleSuccess(c, fiber.StatusOK, "Event cancelled successfully", event)
}

func DeleteEvent(c *fiber.Ctx) error {
	db := database.DB

	userId, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("user_role").(string)

	eventID := c.Params("id")
	var event models.Event
	if err := db.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Event not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	if event.HostID.String() != userId && role != models.RoleAdmin {
		return helpers.HandleError(c, fiber.StatusForbidden, "Only the event host can delete this event", nil)
	}

	if err := db.Where("event_id = ?", event.ID).Delete(&models.Registration{}).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to delete event registrations", err)
	}
	if err := db.Delete(&event).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to delete event", err)
	}

	if event.BannerStoragePath != "" {
		if err := utils.DeleteFromSupabaseStorage(event.BannerStoragePath); err != nil {
			logger.Log.Warn().Err(err).Str("event_id", eventID).Msg("failed to delete event banner from storage")
		}
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Event deleted successfully", nil)
}

func UploadEventBanner(c *fiber.Ctx) error {
	db := database.DB

	userId, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("user_role").(string)

	eventID := c.Params("id")
	var event models.Event
	if err := db.Where("id = ?", eventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Event not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	if event.HostID.String() != userId && role != models.RoleAdmin {
		return helpers.HandleError(c, fiber.StatusForbidden, "Only the event host can update the banner", nil)
	}

	banner, err := c.FormFile("banner")
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Banner file is required", err)
	}

	path := fmt.Sprintf("events/%s-%s", uuid.New().String(), banner.Filename)
	storagePath, fileURL, _, err := utils.UploadToSupabaseStorage(banner, path)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to upload banner", err)
	}

	// Replace any previous banner.
	if event.BannerStoragePath != "" {
		if err := utils.DeleteFromSupabaseStorage(event.BannerStoragePath); err != nil {
			logger.Log.Warn().Err(err).Msg("failed to delete previous banner from storage")
		}
	}

	event.BannerURL = fileURL
	event.BannerStoragePath = storagePath
	if result := db.Save(&event); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to save banner", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Banner uploaded successfully", event)
}
