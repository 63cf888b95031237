package authentication

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"campushub/src/core/config"
	"campushub/src/core/database"
	"campushub/src/core/helpers"
	"campushub/src/core/logger"
	"campushub/src/core/models"
)

type signUpRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name"`
	Username    string `json:"username" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Phone       string `json:"phone"`
	Institution string `json:"institution"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// issueJwtToken generates a JWT token for authenticated users.
func issueJwtToken(user *models.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)

	claims["sub"] = user.ID.String()
	claims["name"] = user.FullName()
	claims["email"] = user.Email
	claims["role"] = user.Role
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(30 * 24 * time.Hour).Unix()

	secretKey := config.Config("JWT_SECRET")
	return token.SignedString([]byte(secretKey))
}

// SignUp handles user registration.
func SignUp(c *fiber.Ctx) error {
	db := database.DB
	body := new(signUpRequest)

	// Parse request body
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid signup details", err)
	}

	// Hash password
	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to hash password", err)
	}

	user := models.User{
		ID:          uuid.New(),
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Username:    body.Username,
		Email:       body.Email,
		Password:    string(hashedPwd),
		Phone:       body.Phone,
		Institution: body.Institution,
		Role:        models.RoleStudent,
	}

	if result := db.Create(&user); result.Error != nil {
		logger.Log.Error().Err(result.Error).Msg("failed to create user")
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to create user account", result.Error)
	}

	token, err := issueJwtToken(&user)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Account created successfully", fiber.Map{"token": token, "user": user})
}

// SignIn handles user authentication.
func SignIn(c *fiber.Ctx) error {
	db := database.DB
	body := new(signInRequest)

	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid sign-in details", err)
	}

	// Fetch user from DB
	user := new(models.User)
	if result := db.Where("email = ?", body.Email).First(user); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid login credentials", result.Error)
	}

	// Compare passwords
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid login credentials", err)
	}

	token, err := issueJwtToken(user)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token", err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Sign-in successful", fiber.Map{"token": token, "user": user})
}
