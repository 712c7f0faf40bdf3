// file: internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "eaglesfitness_backend/internals/features/attendance/dto"
	model "eaglesfitness_backend/internals/features/attendance/model"
	service "eaglesfitness_backend/internals/features/attendance/service"
	memberModel "eaglesfitness_backend/internals/features/members/model"
	helper "eaglesfitness_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ========== Mark ========== */

func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	day := time.Now().UTC()
	if req.Date != "" {
		t, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date")
		}
		day = t
	}

	entry, err := service.MarkAttendance(ctl.DB, req.MemberID, day)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateAttendance):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, service.ErrMemberNotApproved):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record attendance")
		}
	}

	return helper.JsonCreated(c, "Attendance marked", dto.AttendanceResponse{
		ID:        entry.ID,
		MemberID:  entry.MemberID,
		Date:      entry.Date.Format("2006-01-02"),
		Status:    entry.Status,
		CreatedAt: entry.CreatedAt,
	})
}

/* ========== List by date (admin) ========== */

func (ctl *AttendanceController) ListByDate(c *fiber.Ctx) error {
	dayStr := c.Query("date")
	day := time.Now().UTC()
	if dayStr != "" {
		t, err := time.Parse("2006-01-02", dayStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date")
		}
		day = t
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	// attendance joined to member identity for the register screen
	type row struct {
		model.Attendance
		FirstName  string `gorm:"column:first_name"`
		LastName   string `gorm:"column:last_name"`
		MemberCode int    `gorm:"column:member_code"`
	}

	var rows []row
	if err := ctl.DB.Model(&model.Attendance{}).
		Select("attendance.*, members.first_name, members.last_name, members.member_code").
		Joins("JOIN members ON members.id = attendance.member_id").
		Where("attendance.date = ?", day).
		Order("attendance.created_at ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	out := make([]dto.AttendanceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AttendanceResponse{
			ID:         r.ID,
			MemberID:   r.MemberID,
			MemberCode: r.MemberCode,
			MemberName: r.FirstName + " " + r.LastName,
			Date:       r.Date.Format("2006-01-02"),
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
		})
	}

	return helper.JsonOK(c, "ok", out)
}

/* ========== Member self view ========== */

func (ctl *AttendanceController) MyAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var member memberModel.Member
	if err := ctl.DB.Where("user_id = ?", userID).First(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Member profile not found")
	}

	var entries []model.Attendance
	if err := ctl.DB.Where("member_id = ?", member.ID).
		Order("date DESC").
		Limit(90).
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	out := make([]dto.AttendanceResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AttendanceResponse{
			ID:        e.ID,
			MemberID:  e.MemberID,
			Date:      e.Date.Format("2006-01-02"),
			Status:    e.Status,
			CreatedAt: e.CreatedAt,
		})
	}

	return helper.JsonOK(c, "ok", out)
}
