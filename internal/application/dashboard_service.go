package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/finboard/dashboard/internal/domain/entity"
	"github.com/finboard/dashboard/internal/domain/repository"
	"github.com/finboard/dashboard/pkg/money"
)

const latestInvoiceCount = 5

// DashboardService serves the overview page reads: the revenue report, the
// most recent invoices, and the card aggregates.
type DashboardService struct {
	Invoices  repository.InvoiceRepository
	Customers repository.CustomerRepository
	Revenue   repository.RevenueRepository
	Logger    *logrus.Logger
}

func NewDashboardService(inv repository.InvoiceRepository, cust repository.CustomerRepository, rev repository.RevenueRepository, logger *logrus.Logger) *DashboardService {
	return &DashboardService{Invoices: inv, Customers: cust, Revenue: rev, Logger: logger}
}

// LatestInvoice is a recent invoice joined with its customer's display
// fields; Amount is pre-formatted for rendering.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Amount   string `json:"amount"`
}

// CardData is the overview aggregate. The paid/pending totals are
// pre-formatted currency strings.
type CardData struct {
	NumberOfInvoices     int64  `json:"number_of_invoices"`
	NumberOfCustomers    int64  `json:"number_of_customers"`
	TotalPaidInvoices    string `json:"total_paid_invoices"`
	TotalPendingInvoices string `json:"total_pending_invoices"`
}

func (s *DashboardService) FetchRevenue(ctx context.Context) ([]entity.Revenue, error) {
	rows, err := s.Revenue.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch revenue data: %w", err)
	}
	return rows, nil
}

// FetchLatestInvoices returns the five most recent invoices by issue date.
func (s *DashboardService) FetchLatestInvoices(ctx context.Context) ([]LatestInvoice, error) {
	rows, err := s.Invoices.ListLatest(ctx, latestInvoiceCount)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch the latest invoices: %w", err)
	}
	out := make([]LatestInvoice, 0, len(rows))
	for _, row := range rows {
		out = append(out, LatestInvoice{
			ID:       row.ID,
			Name:     row.Name,
			ImageURL: row.ImageURL,
			Email:    row.Email,
			Amount:   money.FormatCents(row.Amount),
		})
	}
	return out, nil
}

// FetchCardData issues the three independent aggregate queries concurrently
// and combines them once all settle; any single failure fails the whole
// aggregate.
func (s *DashboardService) FetchCardData(ctx context.Context) (*CardData, error) {
	var (
		invoiceCount  int64
		customerCount int64
		paid, pending int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoiceCount, err = s.Invoices.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customerCount, err = s.Customers.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		paid, pending, err = s.Invoices.TotalsByStatus(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch card data: %w", err)
	}

	return &CardData{
		NumberOfInvoices:     invoiceCount,
		NumberOfCustomers:    customerCount,
		TotalPaidInvoices:    money.FormatCents(paid),
		TotalPendingInvoices: money.FormatCents(pending),
	}, nil
}
