package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "eaglesfitness_backend/internals/features/attendance/model"
	memberModel "eaglesfitness_backend/internals/features/members/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&memberModel.Member{}, &model.Attendance{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func seedMember(t *testing.T, db *gorm.DB, status string) memberModel.Member {
	t.Helper()
	m := memberModel.Member{
		MemberCode: int(time.Now().UnixNano() % 1_000_000),
		FirstName:  "Kasun",
		LastName:   "Perera",
		Status:     status,
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func TestMarkAttendance(t *testing.T) {
	db := setupDB(t)
	m := seedMember(t, db, memberModel.MemberStatusApproved)
	day := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	entry, err := MarkAttendance(db, m.ID, day)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPresent, entry.Status)
	// stored as a calendar date, time of day dropped
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), entry.Date)
}

func TestMarkAttendance_Duplicate(t *testing.T) {
	db := setupDB(t)
	m := seedMember(t, db, memberModel.MemberStatusApproved)
	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	_, err := MarkAttendance(db, m.ID, day)
	require.NoError(t, err)

	_, err = MarkAttendance(db, m.ID, day)
	assert.ErrorIs(t, err, ErrDuplicateAttendance)

	var count int64
	require.NoError(t, db.Model(&model.Attendance{}).
		Where("member_id = ?", m.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestMarkAttendance_ConstraintClosesRace(t *testing.T) {
	db := setupDB(t)
	m := seedMember(t, db, memberModel.MemberStatusApproved)
	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// simulate the submission that slipped past the pre-check: a row already
	// exists, insert directly and expect the unique index to reject it
	_, err := MarkAttendance(db, m.ID, day)
	require.NoError(t, err)

	dup := model.Attendance{MemberID: m.ID, Date: day, Status: model.StatusPresent}
	err = db.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestMarkAttendance_SameMemberDifferentDays(t *testing.T) {
	db := setupDB(t)
	m := seedMember(t, db, memberModel.MemberStatusApproved)

	_, err := MarkAttendance(db, m.ID, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = MarkAttendance(db, m.ID, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
}

func TestMarkAttendance_PendingMemberRejected(t *testing.T) {
	db := setupDB(t)
	m := seedMember(t, db, memberModel.MemberStatusPending)

	_, err := MarkAttendance(db, m.ID, time.Now())
	assert.ErrorIs(t, err, ErrMemberNotApproved)
}

func TestMarkAttendance_UnknownMember(t *testing.T) {
	db := setupDB(t)

	_, err := MarkAttendance(db, uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrMemberNotApproved)
}

func TestMarkAttendance_NoCredentialMemberAllowed(t *testing.T) {
	db := setupDB(t)
	m := seedMember(t, db, memberModel.MemberStatusApprovedNoCreds)

	_, err := MarkAttendance(db, m.ID, time.Now())
	require.NoError(t, err)
}
