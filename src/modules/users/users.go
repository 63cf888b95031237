package users

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

type updateProfileRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	Institution string `json:"institution"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=student admin"`
}

func GetProfile(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "User profile not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch profile", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "User profile retrieved successfully", user)
}

func UpdateProfile(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)

	body := new(updateProfileRequest)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}

	updates := map[string]interface{}{}
	if body.FirstName != "" {
		updates["first_name"] = body.FirstName
	}
	if body.LastName != "" {
		updates["last_name"] = body.LastName
	}
	if body.Phone != "" {
		updates["phone"] = body.Phone
	}
	if body.Institution != "" {
		updates["institution"] = body.Institution
	}
	if len(updates) == 0 {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Nothing to update", nil)
	}

	if result := db.Table("users").Where("id = ?", userID).Updates(updates); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update profile", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "User profile updated successfully", updates)
}

func UploadProfilePhoto(c *fiber.Ctx) error {
	db := database.DB
	userID := c.Locals("user_id").(string)

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusNotFound, "User not found", err)
	}

	photo, err := c.FormFile("photo")
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Photo file is required", err)
	}

	path := fmt.Sprintf("profiles/%s-%s", uuid.New().String(), photo.Filename)
	storagePath, fileURL, _, err := utils.UploadToSupabaseStorage(photo, path)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to upload profile photo", err)
	}

	if user.ProfilePhotoStoragePath != "" {
		if err := utils.DeleteFromSupabaseStorage(user.ProfilePhotoStoragePath); err != nil {
			logger.Log.Warn().Err(err).Msg("failed to delete previous profile photo")
		}
	}

	user.ProfilePhotoURL = fileURL
	user.ProfilePhotoStoragePath = storagePath
	if result := db.Save(&user); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to save profile photo", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Profile photo uploaded successfully", fiber.Map{
		"profile_photo_url": user.ProfilePhotoURL,
	})
}

// ListUsers returns a page of accounts for the admin dashboard.
func ListUsers(c *fiber.Ctx) error {
	db := database.DB

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.Query("per_page", "25"))
	if err != nil || perPage < 1 || perPage > 100 {
		perPage = 25
	}

	query := db.Table("users").Order("created_at DESC")
	if search := c.Query("search"); search != "" {
		query = query.Where("email ILIKE ? OR username ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to count users", err)
	}

	var users []models.User
	if err := query.Offset((page - 1) * perPage).Limit(perPage).Find(&users).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch users", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Users retrieved successfully", fiber.Map{
		"users":    users,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

func UpdateUserRole(c *fiber.Ctx) error {
	db := database.DB

	body := new(updateRoleRequest)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid role", err)
	}

	targetID := c.Params("id")
	result := db.Table("users").Where("id = ?", targetID).Update("role", body.Role)
	if result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to update user role", result.Error)
	}
	if result.RowsAffected == 0 {
		return helpers.HandleError(c, fiber.StatusNotFound, "User not found", nil)
	}

	logger.Log.Info().Str("user_id", targetID).Str("role", body.Role).Msg("user role updated")
	return helpers.HandleSuccess(c, fiber.StatusOK, "User role updated successfully", fiber.Map{"role": body.Role})
}

func DeleteUser(c *fiber.Ctx) error {
	db := database.DB

	adminID, _ := c.Locals("user_id").(string)
	targetID := c.Params("id")
	if adminID == targetID {
		return helpers.HandleError(c, fiber.StatusBadRequest, "You cannot delete your own account", nil)
	}

	var user models.User
	if err := db.Where("id = ?", targetID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "User not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	if err := db.Where("user_id = ?", user.ID).Delete(&models.Registration{}).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to delete user registrations", err)
	}
	if err := db.Delete(&user).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to delete user", err)
	}

	if user.ProfilePhotoStoragePath != "" {
		if err := utils.DeleteFromSupabaseStorage(user.ProfilePhotoStoragePath); err != nil {
			logger.Log.Warn().Err(err).Msg("failed to delete profile photo from storage")
		}
	}

	logger.Log.Info().Str("user_id", targetID).Msg("user deleted by admin")
	return helpers.HandleSuccess(c, fiber.StatusOK, "User deleted successfully", nil)
}
