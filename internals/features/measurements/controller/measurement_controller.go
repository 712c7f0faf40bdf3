// file: internals/features/measurements/controller/measurement_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "eaglesfitness_backend/internals/features/measurements/dto"
	model "eaglesfitness_backend/internals/features/measurements/model"
	memberModel "eaglesfitness_backend/internals/features/members/model"
	helper "eaglesfitness_backend/internals/helpers"
)

type MeasurementController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMeasurementController(db *gorm.DB) *MeasurementController {
	return &MeasurementController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *MeasurementController) Create(c *fiber.Ctx) error {
	var req dto.CreateMeasurementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m, err := req.ToModel(time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// measurements only for approved members
	var member memberModel.Member
	if err := memberModel.ScopeApproved(ctl.DB).
		First(&member, "id = ?", m.MemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Member not found or not approved")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save measurement")
	}

	return helper.JsonCreated(c, "Measurement saved", m)
}

// ListByMember returns a member's measurement history, newest first.
func (ctl *MeasurementController) ListByMember(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("member_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "member id invalid")
	}

	var rows []model.Measurement
	if err := ctl.DB.Where("member_id = ?", memberID).
		Order("measured_at DESC, created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load measurements")
	}

	return helper.JsonOK(c, "ok", rows)
}

// MyMeasurements resolves the member linked to the logged-in user.
func (ctl *MeasurementController) MyMeasurements(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var member memberModel.Member
	if err := ctl.DB.Where("user_id = ?", userID).First(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Member profile not found")
	}

	var rows []model.Measurement
	if err := ctl.DB.Where("member_id = ?", member.ID).
		Order("measured_at DESC, created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load measurements")
	}

	return helper.JsonOK(c, "ok", rows)
}
