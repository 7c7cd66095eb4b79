package repo

import (
	"time"

	"go-gin-shop-api/internal/core/storage"
)

// testStore 每次调用一个单调递增的假时钟，保证 UpdatedAt 可比较
func testStore() *storage.Store {
	s := storage.New()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	s.Now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}
