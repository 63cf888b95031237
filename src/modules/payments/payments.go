package payments

import (
	"errors"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	"gorm.io/gorm"

	"campushub/src/core/config"
	"campushub/src/core/database"
	"campushub/src/core/helpers"
	"campushub/src/core/logger"
	"campushub/src/core/models"
)

type createOrderRequest struct {
	EventID string `json:"event_id" validate:"required,uuid"`
}

type verifyRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// CreateOrder opens a gateway order for the caller's registration on a paid
// event. The response carries the opaque order id, amount and currency the
// checkout widget needs.
func CreateOrder(c *fiber.Ctx) error {
	db := database.DB

	userId, ok := c.Locals("user_id").(string)
	if !ok || userId == "" {
		return helpers.HandleError(c, fiber.StatusUnauthorized, "Invalid or missing user_id", nil)
	}
	userID, err := uuid.Parse(userId)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid user ID format", err)
	}

	body := new(createOrderRequest)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid order details", err)
	}

	var event models.Event
	if err := db.Where("id = ?", body.EventID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Event not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	if event.IsFree || event.FeeAmount <= 0 {
		return helpers.HandleError(c, fiber.StatusBadRequest, "This event is free, no payment required", nil)
	}

	var registration models.Registration
	err = db.Where("event_id = ? AND user_id = ? AND status <> ?", event.ID, userID, models.StatusCancelled).
		First(&registration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusBadRequest, "Register for the event before paying", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	// Gateway amounts are in the smallest currency unit.
	amount := int64(math.Round(event.FeeAmount * 100))

	client := razorpay.NewClient(config.Config("RAZORPAY_KEY_ID"), config.Config("RAZORPAY_KEY_SECRET"))
	orderData := map[string]interface{}{
		"amount":   amount,
		"currency": "INR",
		"receipt":  registration.ID.String(),
	}
	gatewayOrder, err := client.Order.Create(orderData, nil)
	if err != nil {
		logger.Log.Error().Err(err).Str("event_id", event.ID.String()).Msg("gateway order creation failed")
		return helpers.HandleError(c, fiber.StatusBadGateway, "Failed to create payment order", err)
	}

	orderID, ok := gatewayOrder["id"].(string)
	if !ok || orderID == "" {
		return helpers.HandleError(c, fiber.StatusBadGateway, "Gateway returned an invalid order", nil)
	}

	order := models.PaymentOrder{
		ID:             uuid.New(),
		OrderID:        orderID,
		EventID:        event.ID,
		UserID:         userID,
		RegistrationID: registration.ID,
		Amount:         amount,
		Currency:       "INR",
		Status:         models.PaymentCreated,
	}
	if result := db.Create(&order); result.Error != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to record payment order", result.Error)
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Payment order created", fiber.Map{
		"order_id": order.OrderID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"key_id":   config.Config("RAZORPAY_KEY_ID"),
	})
}

// VerifyPayment checks the confirmation triple returned by the checkout
// widget. On success the order is marked paid and the registration confirmed;
// a signature mismatch is terminal for this attempt and checkout must be
// restarted.
func VerifyPayment(c *fiber.Ctx) error {
	db := database.DB
	userId, _ := c.Locals("user_id").(string)

	body := new(verifyRequest)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid input data", err)
	}
	if err := helpers.Validate(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid payment confirmation", err)
	}

	var order models.PaymentOrder
	if err := db.Where("order_id = ? AND user_id = ?", body.OrderID, userId).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.HandleError(c, fiber.StatusNotFound, "Payment order not found", nil)
		}
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Database query failed", err)
	}

	if order.Status == models.PaymentPaid {
		return helpers.HandleError(c, fiber.StatusConflict, "Payment already verified", nil)
	}

	if !VerifySignature(body.OrderID, body.PaymentID, body.Signature, config.Config("RAZORPAY_KEY_SECRET")) {
		order.Status = models.PaymentFailed
		order.UpdatedAt = time.Now()
		if err := db.Save(&order).Error; err != nil {
			logger.Log.Error().Err(err).Str("order_id", order.OrderID).Msg("failed to record failed payment")
		}
		return helpers.HandleError(c, fiber.StatusBadRequest, "Payment verification failed", nil)
	}

	order.Status = models.PaymentPaid
	order.PaymentID = body.PaymentID
	order.UpdatedAt = time.Now()
	if err := db.Save(&order).Error; err != nil {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to record payment", err)
	}

	if err := db.Model(&models.Registration{}).
		Where("id = ?", order.RegistrationID).
		Updates(map[string]interface{}{"status": models.StatusConfirmed, "updated_at": time.Now()}).Error; err != nil {
		logger.Log.Error().Err(err).Str("registration_id", order.RegistrationID.String()).Msg("failed to confirm registration after payment")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Payment verified successfully", order)
}
