// file: internals/features/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	memberModel "eaglesfitness_backend/internals/features/members/model"
	dto "eaglesfitness_backend/internals/features/payments/dto"
	model "eaglesfitness_backend/internals/features/payments/model"
	service "eaglesfitness_backend/internals/features/payments/service"
	helper "eaglesfitness_backend/internals/helpers"
)

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ========== Create (record a payment) ========== */

func (ctl *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// member must exist and be approved before we invoice
	var member memberModel.Member
	if err := memberModel.ScopeApproved(ctl.DB).
		First(&member, "id = ?", req.PaymentMemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Member not found or not approved")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p, err := req.ToModel()
	if err != nil {
		if errors.Is(err, service.ErrPackageDurationTooShort) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := p.SetPaymentMemberSnapshot(model.PaymentMemberSnapshotPayload{
		ID:         member.ID,
		MemberCode: member.MemberCode,
		Name:       member.FullName(),
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Create(p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helper.JsonCreated(c, "Payment recorded",
		dto.FromModelPayment(p, member.MemberCode, member.FullName()))
}

/* ========== List + summary ========== */

// List serves the payments screen: month/member filter or view-all, rows
// newest-first plus the aggregate summary over the filtered set.
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	payments, err := ctl.fetchFiltered(c)
	if err != nil {
		if errors.Is(err, errBadMemberID) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payments")
	}

	summary := service.Summarize(payments, time.Now().UTC())

	names, codes := ctl.memberLabels(payments)
	rows := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		p := &payments[i]
		rows = append(rows, dto.FromModelPayment(p, codes[p.PaymentMemberID], names[p.PaymentMemberID]))
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"payments": rows,
		"summary":  summary,
	})
}

/* ========== CSV export ========== */

func (ctl *PaymentController) ExportCSV(c *fiber.Ctx) error {
	payments, err := ctl.fetchFiltered(c)
	if err != nil {
		if errors.Is(err, errBadMemberID) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payments")
	}

	names, codes := ctl.memberLabels(payments)

	header := []string{"Member ID", "Name", "Amount", "Payment Type", "Paid At", "Period Start", "Period End"}
	rows := make([][]string, 0, len(payments))
	for i := range payments {
		p := &payments[i]
		rows = append(rows, []string{
			strconv.Itoa(codes[p.PaymentMemberID]),
			names[p.PaymentMemberID],
			fmt.Sprintf("%.2f", p.PaymentAmount),
			p.PaymentType,
			p.PaymentPaidAt.Format("2006-01-02"),
			p.PaymentPeriodStart.Format("2006-01-02"),
			p.PaymentPeriodEnd.Format("2006-01-02"),
		})
	}

	return helper.SendCSV(c, "payments.csv", header, rows)
}

/* ========== Member self view ========== */

// MyPayments lists the authenticated member's own payment history.
func (ctl *PaymentController) MyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var member memberModel.Member
	if err := ctl.DB.Where("user_id = ?", userID).First(&member).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Member profile not found")
	}

	var payments []model.Payment
	if err := model.ScopePaid(ctl.DB).
		Scopes(model.ScopeByMember(member.ID)).
		Order("payment_paid_at DESC").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payments")
	}

	rows := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		rows = append(rows, dto.FromModelPayment(&payments[i], member.MemberCode, member.FullName()))
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"payments": rows,
		"summary":  service.Summarize(payments, time.Now().UTC()),
	})
}

/* ========== internals ========== */

var errBadMemberID = errors.New("member_id invalid")

// fetchFiltered applies the screen filter: ?all=true for everything,
// otherwise ?month=YYYY-MM (default current) and optional ?member_id.
func (ctl *PaymentController) fetchFiltered(c *fiber.Ctx) ([]model.Payment, error) {
	q := model.ScopePaid(ctl.DB)

	if c.Query("all") != "true" {
		monthStr := c.Query("month")
		ref := time.Now().UTC()
		if monthStr != "" {
			if t, err := time.Parse("2006-01", monthStr); err == nil {
				ref = t
			}
		}
		monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, -1)
		q = q.Scopes(model.ScopePaidBetween(monthStart, monthEnd))

		if idStr := c.Query("member_id"); idStr != "" {
			id, err := uuid.Parse(idStr)
			if err != nil {
				return nil, errBadMemberID
			}
			q = q.Scopes(model.ScopeByMember(id))
		}
	}

	var payments []model.Payment
	err := q.Order("payment_paid_at DESC").Find(&payments).Error
	return payments, err
}

// memberLabels batch-loads names/codes for the member ids in a payment set.
func (ctl *PaymentController) memberLabels(payments []model.Payment) (map[uuid.UUID]string, map[uuid.UUID]int) {
	ids := make([]uuid.UUID, 0, len(payments))
	seen := map[uuid.UUID]struct{}{}
	for i := range payments {
		id := payments[i].PaymentMemberID
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	names := map[uuid.UUID]string{}
	codes := map[uuid.UUID]int{}
	if len(ids) == 0 {
		return names, codes
	}

	var members []memberModel.Member
	if err := ctl.DB.Where("id IN ?", ids).Find(&members).Error; err != nil {
		return names, codes
	}
	for i := range members {
		m := &members[i]
		names[m.ID] = m.FullName()
		codes[m.ID] = m.MemberCode
	}
	return names, codes
}
