// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/autovenda/go-car-market/internal/logger"
	"github.com/autovenda/go-car-market/internal/store"
	"github.com/autovenda/go-car-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.SaleRepository
// ─────────────────────────────────────────────

type mockSaleRepository struct {
	checkoutFn func(ctx context.Context, clientID, vehicleID int64) (models.Sale, error)
}

func (m *mockSaleRepository) Checkout(ctx context.Context, clientID, vehicleID int64) (models.Sale, error) {
	if m.checkoutFn != nil {
		return m.checkoutFn(ctx, clientID, vehicleID)
	}
	return models.Sale{}, nil
}

func TestCheckoutService_Checkout_ChargesServerPrice(t *testing.T) {
	repo := &mockSaleRepository{
		checkoutFn: func(ctx context.Context, clientID, vehicleID int64) (models.Sale, error) {
			return models.Sale{
				SaleID:         55,
				ClientID:       clientID,
				VehicleID:      vehicleID,
				TotalValue:     23900.00,
				PurchaseStatus: models.PurchaseStatusCompleted,
			}, nil
		},
	}
	svc := NewCheckoutService(repo, logger.Nop())

	// the declared total is deliberately wrong; the stored price wins
	sale, err := svc.Checkout(context.Background(), models.CheckoutRequest{
		ClientID:   3,
		VehicleID:  101,
		TotalValue: 1.00,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 55, sale.SaleID)
	assert.Equal(t, 23900.00, sale.TotalValue)
	assert.Equal(t, models.PurchaseStatusCompleted, sale.PurchaseStatus)
}

func TestCheckoutService_Checkout_InvalidIDs(t *testing.T) {
	svc := NewCheckoutService(&mockSaleRepository{
		checkoutFn: func(ctx context.Context, clientID, vehicleID int64) (models.Sale, error) {
			t.Fatal("repository must not be called for invalid ids")
			return models.Sale{}, nil
		},
	}, logger.Nop())

	cases := []struct {
		name string
		req  models.CheckoutRequest
	}{
		{"zero client", models.CheckoutRequest{VehicleID: 101}},
		{"zero vehicle", models.CheckoutRequest{ClientID: 3}},
		{"negative ids", models.CheckoutRequest{ClientID: -1, VehicleID: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Checkout(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestCheckoutService_Checkout_RepositoryOutcomes(t *testing.T) {
	cases := []struct {
		name    string
		repoErr error
	}{
		{"vehicle not found", store.ErrVehicleNotFound},
		{"vehicle already sold", store.ErrVehicleNotAvailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewCheckoutService(&mockSaleRepository{
				checkoutFn: func(ctx context.Context, clientID, vehicleID int64) (models.Sale, error) {
					return models.Sale{}, tc.repoErr
				},
			}, logger.Nop())

			_, err := svc.Checkout(context.Background(), models.CheckoutRequest{ClientID: 3, VehicleID: 101})
			assert.ErrorIs(t, err, tc.repoErr)
		})
	}
}
