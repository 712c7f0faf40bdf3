// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "eaglesfitness_backend/internals/features/notifications/model"
	helper "eaglesfitness_backend/internals/helpers"
)

type NotificationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{
		DB:        db,
		Validator: validator.New(),
	}
}

type createNotificationRequest struct {
	Title   string `json:"title" validate:"required,min=2,max=150"`
	Message string `json:"message" validate:"required,min=2"`
}

func (ctl *NotificationController) Create(c *fiber.Ctx) error {
	var req createNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	n := model.Notification{Title: req.Title, Message: req.Message}
	if err := ctl.DB.Create(&n).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to publish notification")
	}

	return helper.JsonCreated(c, "Notification published", n)
}

func (ctl *NotificationController) List(c *fiber.Ctx) error {
	var rows []model.Notification
	if err := ctl.DB.Order("created_at DESC").Limit(100).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load notifications")
	}
	return helper.JsonOK(c, "ok", rows)
}

func (ctl *NotificationController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "notification id invalid")
	}

	res := ctl.DB.Delete(&model.Notification{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}

	return helper.JsonDeleted(c, "Notification deleted", nil)
}
