// Package txmanager сериализует изменяющие операции над in-memory хранилищем.
// Повторяет контракт менеджера транзакций БД: fn выполняется целиком, без чередования с другой транзакцией.
package txmanager

import (
	"context"
	"sync"
)

type txKey struct{}

// Manager менеджер транзакций на основе RWMutex
type Manager struct {
	mu sync.RWMutex
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager() *Manager {
	return &Manager{}
}

// DoSerializable выполняет fn эксклюзивно относительно других транзакций.
// Вложенный вызов с контекстом активной транзакции выполняется в ней же.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, true))
}

// DoReadOnly выполняет fn параллельно с другими читателями, но не во время DoSerializable
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return fn(context.WithValue(ctx, txKey{}, true))
}

// InTransaction возвращает true, если контекст принадлежит активной транзакции
func InTransaction(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}
