package storage

import (
	"sync"
	"time"

	"go-gin-shop-api/internal/domain"
	"go-gin-shop-api/pkg/utils"
)

// Collection 进程内的有序实体集合。读写各自持锁，
// 但跨多次调用的 check-then-act 不提供原子性（与真实存储一致）。
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

// View 在读锁内访问集合，fn 不得保留切片引用
func (c *Collection[T]) View(fn func(items []T)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn(c.items)
}

// Mutate 在写锁内替换集合内容
func (c *Collection[T]) Mutate(fn func(items []T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = fn(c.items)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Store 显式的存储上下文：进程启动时构造一次，注入各仓储。
// Now/NewID 可在测试中替换。
type Store struct {
	Users      Collection[domain.User]
	Products   Collection[domain.Product]
	Categories Collection[domain.Category]
	Orders     Collection[domain.Order]

	Now   func() time.Time
	NewID func() string
}

func New() *Store {
	return &Store{
		Now:   time.Now,
		NewID: utils.NewID,
	}
}
