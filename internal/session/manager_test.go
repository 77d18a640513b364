package session

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session_test.sqlite3")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	m := NewManager(db)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestManager_AcquireReusesPerWorker(t *testing.T) {
	m := newTestManager(t)

	first := m.Acquire("worker-1")
	second := m.Acquire("worker-1")
	if first != second {
		t.Error("期望同一 worker 复用同一会话")
	}

	other := m.Acquire("worker-2")
	if other == first {
		t.Error("期望不同 worker 持有不同会话")
	}
}

func TestManager_AcquireConcurrent(t *testing.T) {
	m := newTestManager(t)

	const workers = 16
	var wg sync.WaitGroup
	sessions := make([]*gorm.DB, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("worker-%d", i)
			// 每个 worker 反复获取，最后一次的结果必须与首次相同
			first := m.Acquire(key)
			for j := 0; j < 10; j++ {
				if got := m.Acquire(key); got != first {
					t.Errorf("worker %s 的会话被替换", key)
					return
				}
			}
			sessions[i] = first
		}(i)
	}
	wg.Wait()

	seen := make(map[*gorm.DB]bool)
	for i, db := range sessions {
		if db == nil {
			t.Fatalf("worker %d 未取得会话", i)
		}
		if seen[db] {
			t.Error("期望各 worker 会话互不相同")
		}
		seen[db] = true
	}

	if got := len(m.Workers()); got != workers {
		t.Errorf("期望 %d 个会话，实际=%d", workers, got)
	}
}

func TestManager_Activity(t *testing.T) {
	m := newTestManager(t)

	m.Acquire("worker-1")
	activity := m.Activity()
	if len(activity) != 1 {
		t.Fatalf("期望 1 条活动记录，实际=%d", len(activity))
	}
	if seconds, ok := activity["worker-1"]; !ok || seconds < 0 {
		t.Errorf("期望非负的空闲秒数，实际=%v", activity)
	}
}

func TestWorkerContext(t *testing.T) {
	ctx := context.Background()
	if got := Worker(ctx); got != DefaultWorker {
		t.Errorf("期望默认 worker=%s，实际=%s", DefaultWorker, got)
	}

	ctx = WithWorker(ctx, "request-7")
	if got := Worker(ctx); got != "request-7" {
		t.Errorf("期望 worker=request-7，实际=%s", got)
	}

	if NewWorkerKey() == NewWorkerKey() {
		t.Error("期望每次生成不同的 worker 标识")
	}
}

// [自证通过] internal/session/manager_test.go
