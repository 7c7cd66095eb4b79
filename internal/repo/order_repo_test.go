package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-shop-api/internal/domain"
)

func TestOrderRepo_CreateAndFilterByUser(t *testing.T) {
	r := NewOrderRepo(testStore())

	for _, uid := range []string{"u1", "u1", "u2"} {
		_, err := r.Create(domain.NewOrder{
			UserID:     uid,
			Items:      []domain.OrderItem{{ProductID: "p1", Quantity: 1, Price: 5}},
			TotalPrice: 5,
			Status:     domain.StatusPending,
		})
		require.NoError(t, err)
	}

	all, err := r.FindAll("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := r.FindAll("u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, o := range mine {
		assert.Equal(t, "u1", o.UserID)
	}
}

func TestOrderRepo_ItemsAreCopied(t *testing.T) {
	r := NewOrderRepo(testStore())
	o, err := r.Create(domain.NewOrder{
		UserID:     "u1",
		Items:      []domain.OrderItem{{ProductID: "p1", Quantity: 2, Price: 3}},
		TotalPrice: 6,
		Status:     domain.StatusPending,
	})
	require.NoError(t, err)

	// 改写返回值不应影响仓储内的订单
	o.Items[0].Quantity = 99

	got, err := r.FindByID(o.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestOrderRepo_UpdateStatus(t *testing.T) {
	r := NewOrderRepo(testStore())
	o, err := r.Create(domain.NewOrder{
		UserID:     "u1",
		Items:      []domain.OrderItem{{ProductID: "p1", Quantity: 1, Price: 5}},
		TotalPrice: 5,
		Status:     domain.StatusPending,
	})
	require.NoError(t, err)

	st := domain.StatusShipped
	updated, err := r.Update(o.ID, domain.OrderPatch{Status: &st})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, domain.StatusShipped, updated.Status)
	assert.Equal(t, 5.0, updated.TotalPrice)
	assert.True(t, updated.UpdatedAt.After(o.UpdatedAt))
}

func TestOrderRepo_Delete(t *testing.T) {
	r := NewOrderRepo(testStore())
	o, err := r.Create(domain.NewOrder{
		UserID:     "u1",
		Items:      []domain.OrderItem{{ProductID: "p1", Quantity: 1, Price: 5}},
		TotalPrice: 5,
		Status:     domain.StatusPending,
	})
	require.NoError(t, err)

	ok, err := r.Delete(o.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Delete(o.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
