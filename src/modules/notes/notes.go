package notes

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub/src/core/database"
	"campushub/src/core/helpers"
	"campushub/src/core/logger"
	"campushub/src/core/models"
	"campushub/src/utils"
)

type uploadRequest struct {
	Title       string `json:"title" validate:"required,min=3"`
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description"`
}

// UploadNote stores a PDF study note: the file goes to object storage, the
// metadata row to the database. Anything other than a PDF is rejected.
func UploadNote(c *fiber.Ctx) error {
	db := database.DB

	userId, ok := c.Locals("user_id").(string)
	if !ok || userId == "" {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", nil)
	}
	uploaderID, err := uuid.Parse(userId)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	body := uploadRequest{
		Title:       c.FormValue("title"),
		Subject:     c.FormValue("subject"),
		Description: c.FormValue("description"),
	}
	if err := helpers.Validate(&body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid note details", err)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Note file is required", err)
	}

	path := fmt.Sprintf("notes/%s-%s", uuid.New().String(), file.Filename)
	storagePath, fileURL, contentType, err := utils.UploadToSupabaseStorage(file, path)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to upload note file", err)
	}

	if contentType != "application/pdf" {
		// Storage sniffs the real content type; reject and clean up anything
		// that only pretended to be a PDF.
		if err := utils.DeleteFromSupabaseStorage(storagePath); err != nil {
			logger.Log.Warn().Err(err).Msg("failed to delete rejected note file from storage")
		}
		return helpers.HandleError(c, fiber.StatusBadRequest, "Only PDF files are accepted", nil)
	}

	note := models.Note{
		ID:          uuid.New(),
		UploaderID:  uploaderID,
		Title:       body.Title,
		Subject:     body.Subject,
		Description: body.Description,
		FileURL:     fileURL,
		StoragePath: storagePath,
		ContentType: contentType,
		FileSize:    file.Size,
	}

	if result := db.Create(&note); result.Error != nil {
		if err := utils.DeleteFromSupabaseStorage(storagePath); err != nil {
			logger.Log.Warn().Err(err).Msg("failed to delete note file after create failure")
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create note", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Note uploaded successfully", note)
}

func GetNotesFeed(c *fiber.Ctx) error {
	db := database.DB

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	query := db.Table("notes").Order("created_at DESC").Limit(limit)
	if subject := c.Query("subject"); subject != "" {
		query = query.Where("subject = ?", subject)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}

	var notes []models.Note
	if err := query.Find(&notes).Error; err != nil {
		logger.Log.Error().Err(err).Msg("failed to fetch notes feed")
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch notes", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Notes retrieved successfully", notes)
}

// DownloadNote returns the note's public file URL and bumps the download
// counter.
func DownloadNote(c *fiber.Ctx) error {
	db := database.DB
	noteID := c.Params("id")

	var note models.Note
	if err := db.Where("id = ?", noteID).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Note not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	if err := db.Model(&note).UpdateColumn("downloads", gorm.Expr("downloads + 1")).Error; err != nil {
		logger.Log.Warn().Err(err).Str("note_id", noteID).Msg("failed to increment download count")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Note download link retrieved", fiber.Map{
		"file_url":  note.FileURL,
		"file_size": note.FileSize,
		"title":     note.Title,
	})
}

func DeleteNote(c *fiber.Ctx) error {
	db := database.DB

	userId, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("user_role").(string)

	noteID := c.Params("id")
	var note models.Note
	if err := db.Where("id = ?", noteID).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Note not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	if note.UploaderID.String() != userId && role != models.RoleAdmin {
		return helpers.HandleError(c, fiber.StatusForbidden, "Only the uploader can delete this note", nil)
	}

	if err := db.Delete(&note).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to delete note", err)
	}

	if err := utils.DeleteFromSupabaseStorage(note.StoragePath); err != nil {
		logger.Log.Warn().Err(err).Str("note_id", noteID).Msg("failed to delete note file from storage")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Note deleted successfully", nil)
}
