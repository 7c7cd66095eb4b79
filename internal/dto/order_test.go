package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-gin-shop-api/internal/domain"
)

func TestCreateOrderDTO_Validate(t *testing.T) {
	d := CreateOrderDTO{UserID: " u-1 ", Items: []OrderItemDTO{{ProductID: " p-1 ", Quantity: 2}}}
	d.Normalize()

	assert.Equal(t, "u-1", d.UserID)
	assert.Equal(t, "p-1", d.Items[0].ProductID)
	assert.Nil(t, d.Validate())
}

func TestCreateOrderDTO_Invalid(t *testing.T) {
	d := CreateOrderDTO{}
	d.Normalize()

	errs := d.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "userId")
	assert.Contains(t, errs, "items")
}

func TestUpdateOrderStatusDTO_Validate(t *testing.T) {
	for _, s := range []domain.OrderStatus{
		domain.StatusPending, domain.StatusProcessing, domain.StatusShipped,
		domain.StatusDelivered, domain.StatusCancelled,
	} {
		d := UpdateOrderStatusDTO{Status: s}
		d.Normalize()
		assert.Nil(t, d.Validate(), "status %q should be accepted", s)
	}

	bad := UpdateOrderStatusDTO{Status: "returned"}
	bad.Normalize()
	errs := bad.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "status")
}
