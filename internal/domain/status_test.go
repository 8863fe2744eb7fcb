package domain_test

import (
	"testing"

	"github.com/shelfwise/retail-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStockStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		min      int
		max      int
		want     domain.StockStatus
	}{
		{"zero quantity is critical", 0, 5, 10, domain.StockStatusCritical},
		{"at min is low", 5, 5, 10, domain.StockStatusLow},
		{"below min is low", 3, 5, 10, domain.StockStatusLow},
		{"at max is overstock", 10, 5, 10, domain.StockStatusOverstock},
		{"above max is overstock", 15, 5, 10, domain.StockStatusOverstock},
		{"between thresholds is optimal", 7, 5, 10, domain.StockStatusOptimal},
		{"min rule wins when thresholds collide", 5, 5, 5, domain.StockStatusLow},
		{"zero with colliding zero thresholds is critical", 0, 0, 0, domain.StockStatusCritical},
		{"zero min with positive quantity", 1, 0, 10, domain.StockStatusOptimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.StockStatusFor(tt.quantity, tt.min, tt.max)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusConfirmed,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
		domain.OrderStatusCancelled,
	} {
		assert.True(t, domain.ValidOrderStatus(s), string(s))
	}
	assert.False(t, domain.ValidOrderStatus("archived"))
	assert.False(t, domain.ValidOrderStatus(""))
}
