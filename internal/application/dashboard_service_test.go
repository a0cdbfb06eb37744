package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/dashboard/internal/domain/entity"
)

func TestFetchCardData(t *testing.T) {
	ctx := context.Background()

	t.Run("combines the three aggregates", func(t *testing.T) {
		invoices := &fakeInvoiceRepo{invoices: []entity.Invoice{
			{ID: "inv-1", Amount: 1000, Status: entity.InvoiceStatusPaid},
			{ID: "inv-2", Amount: 2000, Status: entity.InvoiceStatusPaid},
			{ID: "inv-3", Amount: 500, Status: entity.InvoiceStatusPending},
		}}
		customers := &fakeCustomerRepo{customers: make([]entity.Customer, 6)}
		svc := NewDashboardService(invoices, customers, &fakeRevenueRepo{}, nil)

		got, err := svc.FetchCardData(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.NumberOfInvoices)
		assert.Equal(t, int64(6), got.NumberOfCustomers)
		assert.Equal(t, "$30.00", got.TotalPaidInvoices)
		assert.Equal(t, "$5.00", got.TotalPendingInvoices)
	})

	t.Run("any single query failure fails the aggregate", func(t *testing.T) {
		for _, op := range []string{"Count", "TotalsByStatus"} {
			invoices := &fakeInvoiceRepo{failOn: map[string]bool{op: true}}
			customers := &fakeCustomerRepo{}
			svc := NewDashboardService(invoices, customers, &fakeRevenueRepo{}, nil)

			_, err := svc.FetchCardData(ctx)
			require.Error(t, err, "failing op %s", op)
			assert.ErrorIs(t, err, errStore)
			assert.Contains(t, err.Error(), "failed to fetch card data")
		}

		invoices := &fakeInvoiceRepo{}
		customers := &fakeCustomerRepo{failOn: map[string]bool{"Count": true}}
		svc := NewDashboardService(invoices, customers, &fakeRevenueRepo{}, nil)
		_, err := svc.FetchCardData(ctx)
		require.Error(t, err)
	})

	t.Run("empty store yields zero cards", func(t *testing.T) {
		svc := NewDashboardService(&fakeInvoiceRepo{}, &fakeCustomerRepo{}, &fakeRevenueRepo{}, nil)

		got, err := svc.FetchCardData(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.NumberOfInvoices)
		assert.Equal(t, "$0.00", got.TotalPaidInvoices)
		assert.Equal(t, "$0.00", got.TotalPendingInvoices)
	})
}

func TestFetchLatestInvoices(t *testing.T) {
	ctx := context.Background()

	t.Run("caps at five and formats amounts", func(t *testing.T) {
		invoices := &fakeInvoiceRepo{invoices: seededInvoices(8)}
		svc := NewDashboardService(invoices, &fakeCustomerRepo{}, &fakeRevenueRepo{}, nil)

		rows, err := svc.FetchLatestInvoices(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 5)
		assert.Equal(t, "$1.00", rows[0].Amount)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		invoices := &fakeInvoiceRepo{failOn: map[string]bool{"ListLatest": true}}
		svc := NewDashboardService(invoices, &fakeCustomerRepo{}, &fakeRevenueRepo{}, nil)

		_, err := svc.FetchLatestInvoices(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch the latest invoices")
	})
}

func TestFetchRevenue(t *testing.T) {
	ctx := context.Background()

	rows := []entity.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}}
	svc := NewDashboardService(&fakeInvoiceRepo{}, &fakeCustomerRepo{}, &fakeRevenueRepo{rows: rows}, nil)

	got, err := svc.FetchRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	svc = NewDashboardService(&fakeInvoiceRepo{}, &fakeCustomerRepo{}, &fakeRevenueRepo{err: errStore}, nil)
	_, err = svc.FetchRevenue(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch revenue data")
}
