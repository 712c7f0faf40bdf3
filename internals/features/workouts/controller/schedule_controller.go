// file: internals/features/workouts/controller/schedule_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	memberModel "eaglesfitness_backend/internals/features/members/model"
	dto "eaglesfitness_backend/internals/features/workouts/dto"
	model "eaglesfitness_backend/internals/features/workouts/model"
	service "eaglesfitness_backend/internals/features/workouts/service"
	helper "eaglesfitness_backend/internals/helpers"
)

type ScheduleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "member id invalid")
	}

	var member memberModel.Member
	if err := memberModel.ScopeApproved(ctl.DB).
		First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Member not found or not approved")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	days, err := req.ToDayInputs()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exercise id invalid")
	}

	schedule, err := service.SaveSchedule(ctl.DB, memberID, req.Title, days)
	if err != nil {
		if errors.Is(err, service.ErrNoDays) || errors.Is(err, service.ErrDayNumbersInvalid) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save schedule")
	}

	return helper.JsonCreated(c, "Schedule saved", schedule)
}

/* ========== Read side ========== */

type scheduleDayView struct {
	DayNumber int                     `json:"day_number"`
	Note      *string                 `json:"note,omitempty"`
	Groups    []service.ExerciseGroup `json:"groups"`
}

type scheduleView struct {
	ID        uuid.UUID         `json:"id"`
	Title     string            `json:"title"`
	Days      int               `json:"days"`
	CreatedAt string            `json:"created_at"`
	DayList   []scheduleDayView `json:"day_list"`
}

// ListByMember returns a member's schedules, newest first, with each day's
// exercises folded into display groups.
func (ctl *ScheduleController) ListByMember(c *fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("member_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "member id invalid")
	}
	return ctl.listFor(c, memberID)
}

// MySchedules resolves the member linked to the logged-in user.
func (ctl *ScheduleController) MySchedules(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var member memberModel.Member
	if err := ctl.DB.Where("user_id = ?", userID).First(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Member profile not found")
	}
	return ctl.listFor(c, member.ID)
}

func (ctl *ScheduleController) listFor(c *fiber.Ctx, memberID uuid.UUID) error {
	var schedules []model.Schedule
	if err := ctl.DB.
		Preload("ScheduleDays", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("ScheduleDays.Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("entry_order ASC")
		}).
		Preload("ScheduleDays.Exercises.Exercise").
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schedules")
	}

	views := make([]scheduleView, 0, len(schedules))
	for _, s := range schedules {
		v := scheduleView{
			ID:        s.ID,
			Title:     s.Title,
			Days:      s.Days,
			CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		for _, d := range s.ScheduleDays {
			v.DayList = append(v.DayList, scheduleDayView{
				DayNumber: d.DayNumber,
				Note:      d.Note,
				Groups:    service.GroupDayExercises(d.Exercises),
			})
		}
		views = append(views, v)
	}

	return helper.JsonOK(c, "ok", views)
}
