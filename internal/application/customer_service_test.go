package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard/dashboard/internal/domain/entity"
	"github.com/finboard/dashboard/internal/forms"
	"github.com/finboard/dashboard/pkg/uploader"
)

func newCustomerService(repo *fakeCustomerRepo, up uploader.Uploader, requireImage bool) (*CustomerService, *recordingInvalidator) {
	cache := &recordingInvalidator{}
	if up == nil {
		up = uploader.Placeholder{URL: "/customers/customer-default.png"}
	}
	return NewCustomerService(repo, cache, up, requireImage, nil), cache
}

func TestCreateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("stores placeholder image and redirects", func(t *testing.T) {
		repo := &fakeCustomerRepo{}
		svc, cache := newCustomerService(repo, nil, false)

		res := svc.CreateCustomer(ctx, forms.CustomerForm{Name: "Evil Rabbit", Email: "evil@rabbit.com"})

		require.True(t, res.Ok)
		assert.Equal(t, CustomersPath, res.RedirectTo)
		require.Len(t, repo.customers, 1)
		assert.Equal(t, "/customers/customer-default.png", repo.customers[0].ImageURL)
		assert.Equal(t, []string{CustomersPath}, cache.paths)
	})

	t.Run("invalid email yields field error and zero writes", func(t *testing.T) {
		repo := &fakeCustomerRepo{}
		svc, cache := newCustomerService(repo, nil, false)

		res := svc.CreateCustomer(ctx, forms.CustomerForm{Name: "Evil Rabbit", Email: "nope"})

		assert.False(t, res.Ok)
		assert.Equal(t, "Missing fields. Failed to create customer.", res.Message)
		assert.Equal(t, []string{forms.MsgEnterEmail}, res.FieldErrors["email"])
		assert.Zero(t, repo.createCalls)
		assert.Empty(t, cache.paths)
	})

	t.Run("uploaded blob resolves through the uploader", func(t *testing.T) {
		repo := &fakeCustomerRepo{}
		up := &fakeUploader{url: "https://storage.googleapis.com/bucket/customers/a.png"}
		svc, _ := newCustomerService(repo, up, true)

		res := svc.CreateCustomer(ctx, forms.CustomerForm{
			Name:      "Evil Rabbit",
			Email:     "evil@rabbit.com",
			Image:     []byte{1, 2, 3},
			ImageName: "a.png",
			ImageType: "image/png",
		})

		require.True(t, res.Ok)
		assert.Equal(t, 1, up.uploads)
		require.Len(t, repo.customers, 1)
		assert.Equal(t, up.url, repo.customers[0].ImageURL)
	})

	t.Run("missing blob rejected when the image rule is enforced", func(t *testing.T) {
		repo := &fakeCustomerRepo{}
		svc, _ := newCustomerService(repo, &fakeUploader{url: "x"}, true)

		res := svc.CreateCustomer(ctx, forms.CustomerForm{Name: "Evil Rabbit", Email: "evil@rabbit.com"})

		assert.False(t, res.Ok)
		assert.Equal(t, []string{forms.MsgValidImage}, res.FieldErrors["image"])
		assert.Zero(t, repo.createCalls)
	})

	t.Run("upload failure aborts before the store", func(t *testing.T) {
		repo := &fakeCustomerRepo{}
		up := &fakeUploader{err: errors.New("bucket unavailable")}
		svc, _ := newCustomerService(repo, up, false)

		res := svc.CreateCustomer(ctx, forms.CustomerForm{Name: "Evil Rabbit", Email: "evil@rabbit.com"})

		assert.False(t, res.Ok)
		assert.Equal(t, "Failed to upload customer image.", res.Message)
		assert.Zero(t, repo.createCalls)
	})

	t.Run("store failure reports message only", func(t *testing.T) {
		repo := &fakeCustomerRepo{failOn: map[string]bool{"Create": true}}
		svc, _ := newCustomerService(repo, nil, false)

		res := svc.CreateCustomer(ctx, forms.CustomerForm{Name: "Evil Rabbit", Email: "evil@rabbit.com"})

		assert.False(t, res.Ok)
		assert.Equal(t, "Database error: failed to create customer.", res.Message)
		assert.Nil(t, res.FieldErrors)
	})
}

func TestUpdateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites the identified row", func(t *testing.T) {
		repo := &fakeCustomerRepo{customers: []entity.Customer{{ID: "cust-1", Name: "Old", Email: "old@x.com", ImageURL: "/customers/old.png"}}}
		svc, cache := newCustomerService(repo, nil, false)

		res := svc.UpdateCustomer(ctx, "cust-1", forms.CustomerForm{Name: "New Name", Email: "new@x.com"})

		require.True(t, res.Ok)
		assert.Equal(t, CustomersPath, res.RedirectTo)
		assert.Equal(t, "New Name", repo.customers[0].Name)
		assert.Equal(t, "new@x.com", repo.customers[0].Email)
		assert.Equal(t, []string{CustomersPath}, cache.paths)
	})

	t.Run("validation failure leaves the row untouched", func(t *testing.T) {
		repo := &fakeCustomerRepo{customers: []entity.Customer{{ID: "cust-1", Name: "Old", Email: "old@x.com"}}}
		svc, _ := newCustomerService(repo, nil, false)

		res := svc.UpdateCustomer(ctx, "cust-1", forms.CustomerForm{Email: "old@x.com"})

		assert.False(t, res.Ok)
		assert.Equal(t, "Missing fields. Failed to update customer.", res.Message)
		assert.Zero(t, repo.updateCalls)
		assert.Equal(t, "Old", repo.customers[0].Name)
	})
}

func TestDeleteCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id still reports success", func(t *testing.T) {
		repo := &fakeCustomerRepo{}
		svc, cache := newCustomerService(repo, nil, false)

		res := svc.DeleteCustomer(ctx, "no-such-id")

		assert.True(t, res.Ok)
		assert.Equal(t, "Deleted customer.", res.Message)
		assert.Equal(t, []string{CustomersPath}, cache.paths)
	})

	t.Run("store failure reports message only", func(t *testing.T) {
		repo := &fakeCustomerRepo{failOn: map[string]bool{"Delete": true}}
		svc, _ := newCustomerService(repo, nil, false)

		res := svc.DeleteCustomer(ctx, "cust-1")

		assert.False(t, res.Ok)
		assert.Equal(t, "Database error: failed to delete customer.", res.Message)
	})
}

func TestFetchFilteredCustomers(t *testing.T) {
	ctx := context.Background()

	t.Run("formats pending and paid totals", func(t *testing.T) {
		repo := &fakeCustomerRepo{stats: []entity.CustomerStats{{
			Customer:      entity.Customer{ID: "cust-1", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
			TotalInvoices: 3,
			TotalPending:  15795,
			TotalPaid:     2500000,
		}}}
		svc, _ := newCustomerService(repo, nil, false)

		rows, err := svc.FetchFilteredCustomers(ctx, "rabbit", 1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(3), rows[0].TotalInvoices)
		assert.Equal(t, "$157.95", rows[0].TotalPending)
		assert.Equal(t, "$25,000.00", rows[0].TotalPaid)
	})

	t.Run("customer with no invoices formats to zero", func(t *testing.T) {
		repo := &fakeCustomerRepo{stats: []entity.CustomerStats{{
			Customer: entity.Customer{ID: "cust-1", Name: "Evil Rabbit", Email: "evil@rabbit.com"},
		}}}
		svc, _ := newCustomerService(repo, nil, false)

		rows, err := svc.FetchFilteredCustomers(ctx, "", 1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "$0.00", rows[0].TotalPending)
		assert.Equal(t, "$0.00", rows[0].TotalPaid)
	})
}

func TestFetchCustomerByID(t *testing.T) {
	ctx := context.Background()

	t.Run("absent id is nil without error", func(t *testing.T) {
		svc, _ := newCustomerService(&fakeCustomerRepo{}, nil, false)

		got, err := svc.FetchCustomerByID(ctx, "no-such-id")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		svc, _ := newCustomerService(&fakeCustomerRepo{failOn: map[string]bool{"GetByID": true}}, nil, false)

		_, err := svc.FetchCustomerByID(ctx, "cust-1")
		require.Error(t, err)
		assert.ErrorIs(t, err, errStore)
	})
}

func TestFetchCustomersPages(t *testing.T) {
	ctx := context.Background()

	repo := &fakeCustomerRepo{customers: make([]entity.Customer, 7)}
	svc, _ := newCustomerService(repo, nil, false)

	got, err := svc.FetchCustomersPages(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}
