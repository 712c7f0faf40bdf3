package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "eaglesfitness_backend/internals/features/attendance/model"
	memberModel "eaglesfitness_backend/internals/features/members/model"
)

var (
	ErrMemberNotApproved   = errors.New("member not found or not approved")
	ErrDuplicateAttendance = errors.New("attendance already marked for this member on this date")
)

// MarkAttendance records one presence for (member, date). The existence
// check gives fast feedback; the unique index closes the race between two
// concurrent submissions, so a constraint hit maps to the same error.
func MarkAttendance(db *gorm.DB, memberID uuid.UUID, date time.Time) (*model.Attendance, error) {
	var member memberModel.Member
	if err := memberModel.ScopeApproved(db).First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotApproved
		}
		return nil, err
	}

	day := dateOnly(date)

	var count int64
	if err := db.Model(&model.Attendance{}).
		Where("member_id = ? AND date = ?", memberID, day).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateAttendance
	}

	entry := model.Attendance{
		MemberID: memberID,
		Date:     day,
		Status:   model.StatusPresent,
	}
	if err := db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateAttendance
		}
		return nil, err
	}
	return &entry, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
