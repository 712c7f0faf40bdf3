// file: internals/features/workouts/controller/exercise_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "eaglesfitness_backend/internals/features/workouts/dto"
	model "eaglesfitness_backend/internals/features/workouts/model"
	helper "eaglesfitness_backend/internals/helpers"
)

type ExerciseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExerciseController(db *gorm.DB) *ExerciseController {
	return &ExerciseController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *ExerciseController) Create(c *fiber.Ctx) error {
	var req dto.CreateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	ex := model.Exercise{
		Name:        req.Name,
		TargetGroup: req.TargetGroup,
	}
	if err := ctl.DB.Create(&ex).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add exercise")
	}

	return helper.JsonCreated(c, "Exercise added", ex)
}

func (ctl *ExerciseController) List(c *fiber.Ctx) error {
	var exercises []model.Exercise
	q := ctl.DB.Order("target_group ASC, name ASC")
	if tg := c.Query("target_group"); tg != "" {
		q = q.Where("target_group = ?", tg)
	}
	if err := q.Find(&exercises).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load exercises")
	}
	return helper.JsonOK(c, "ok", exercises)
}

func (ctl *ExerciseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exercise id invalid")
	}

	// keep history intact: exercises referenced by a schedule stay
	var refs int64
	if err := ctl.DB.Model(&model.ScheduleDayExercise{}).
		Where("exercise_id = ?", id).
		Count(&refs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Exercise is used by existing schedules")
	}

	res := ctl.DB.Delete(&model.Exercise{}, "ex_id = ?", id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exercise not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete exercise")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Exercise not found")
	}

	return helper.JsonDeleted(c, "Exercise deleted", nil)
}
