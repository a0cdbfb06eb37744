package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/finboard/dashboard/internal/forms"
	"github.com/finboard/dashboard/internal/infrastructure/viewcache"
)

// Route paths whose cached renders are invalidated after successful writes,
// and which mutations redirect back to.
const (
	InvoicesPath  = "/dashboard/invoices"
	CustomersPath = "/dashboard/customers"
)

// InvoicesPerPage is the fixed page size for every paginated listing.
const InvoicesPerPage = 6

// MutationResult is the outcome of a validated write, returned as a value so
// callers always check its shape. Exactly one shape is populated:
//
//   - FieldErrors set (Ok=false): validation rejected the form, no write
//     attempted; Message carries the summary.
//   - Message only (Ok=false): the store write failed; field errors are
//     deliberately absent.
//   - Ok=true: the write committed; RedirectTo names the route the caller
//     should render next (empty for deletes, which stay on the list).
type MutationResult struct {
	Ok          bool
	RedirectTo  string
	Message     string
	FieldErrors forms.FieldErrors
}

// revalidate fires the cache-invalidation signal for a route. It is
// best-effort: a failed invalidation is logged, never surfaced, because the
// row is already committed.
func revalidate(ctx context.Context, cache viewcache.Invalidator, logger *logrus.Logger, path string) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, path); err != nil && logger != nil {
		logger.WithError(err).WithField("path", path).Warn("view cache invalidation failed")
	}
}
