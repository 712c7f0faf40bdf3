// file: internals/features/members/controller/member_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "eaglesfitness_backend/internals/features/members/dto"
	model "eaglesfitness_backend/internals/features/members/model"
	authService "eaglesfitness_backend/internals/features/users/auth/service"
	helper "eaglesfitness_backend/internals/helpers"
)

type MemberController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ========== Create (front desk, no credentials) ========== */

func (ctl *MemberController) Create(c *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Member code already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add member")
	}

	return helper.JsonCreated(c, "Member added successfully", m)
}

/* ========== List / search ========== */

func (ctl *MemberController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)
	q := ctl.DB.Model(&model.Member{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR CAST(member_code AS TEXT) LIKE ?",
			like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count members")
	}

	var members []model.Member
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load members")
	}

	return helper.JsonList(c, "ok", members,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ListPending serves the approval queue.
func (ctl *MemberController) ListPending(c *fiber.Ctx) error {
	var members []model.Member
	if err := model.ScopePending(ctl.DB).
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load pending members")
	}
	return helper.JsonOK(c, "ok", members)
}

/* ========== Patch ========== */

func (ctl *MemberController) Patch(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "member id invalid")
	}

	var m model.Member
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := req.ApplyTo(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
	}

	return helper.JsonUpdated(c, "Member updated", m)
}

/* ========== Approve / Reject ========== */

// Approve moves pending → approved and grants the member role claim when a
// login user is linked, in one transaction.
func (ctl *MemberController) Approve(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "member id invalid")
	}

	var m model.Member
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.Status != model.MemberStatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Member is not pending approval")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&m).Update("status", model.MemberStatusApproved).Error; err != nil {
			return err
		}
		if m.UserID != nil {
			return authService.GrantMemberRole(tx, *m.UserID)
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve member")
	}

	return helper.JsonUpdated(c, "Member approved", m)
}

func (ctl *MemberController) Reject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "member id invalid")
	}

	res := ctl.DB.Model(&model.Member{}).
		Where("id = ? AND status = ?", id, model.MemberStatusPending).
		Update("status", model.MemberStatusRejected)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reject member")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No pending member with that id")
	}

	return helper.JsonUpdated(c, "Member rejected", nil)
}

/* ========== Delete ========== */

// Delete removes a member record. Approved members are never hard-deleted;
// only pending registrations and front-desk records without credentials may
// go.
func (ctl *MemberController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "member id invalid")
	}

	var m model.Member
	if err := ctl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if m.Status == model.MemberStatusApproved {
		return helper.JsonError(c, fiber.StatusForbidden, "Approved members cannot be deleted")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete member")
	}

	return helper.JsonDeleted(c, "Member deleted", nil)
}

/* ========== CSV export ========== */

func (ctl *MemberController) ExportCSV(c *fiber.Ctx) error {
	var members []model.Member
	if err := ctl.DB.Order("created_at DESC").Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load members")
	}

	header := []string{
		"Member ID", "First Name", "Last Name", "Email", "Phone", "Job",
		"Birthday", "Address", "Relative Contact", "Prior Conditions",
		"Coaching Required", "Target", "Membership Start", "Status",
	}
	rows := make([][]string, 0, len(members))
	for i := range members {
		m := &members[i]
		rows = append(rows, []string{
			strconv.Itoa(m.MemberCode),
			m.FirstName,
			m.LastName,
			derefStr(m.Email),
			derefStr(m.Phone),
			derefStr(m.Job),
			fmtDate(m.Birthday),
			derefStr(m.Address),
			derefStr(m.RelativeContact),
			derefStr(m.PriorConditions),
			m.CoachingRequired,
			derefStr(m.Target),
			fmtDate(m.MembershipStart),
			m.Status,
		})
	}

	return helper.SendCSV(c, "members.csv", header, rows)
}

/* ========== Member self view ========== */

func (ctl *MemberController) MyProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var m model.Member
	if err := ctl.DB.Where("user_id = ?", userID).First(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Member profile not found")
	}
	return helper.JsonOK(c, "ok", m)
}

/* ========== internals ========== */

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params("id")))
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
