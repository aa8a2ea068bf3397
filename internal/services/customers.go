package services

import (
	"context"
	"time"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/models"
	"github.com/binayakpanigrahi011-debug/Invoicor/internal/repositories/customers"
)

// CustomerStats summarises the customer base for the dashboard header.
type CustomerStats struct {
	Total           int
	ActiveThisMonth int
	AvgOrders       float64
}

// CustomerService validates and persists customers and answers customer
// searches and statistics.
type CustomerService struct {
	repo customers.Repository
	now  func() time.Time
}

func NewCustomerService(repo customers.Repository) *CustomerService {
	return &CustomerService{repo: repo, now: time.Now}
}

// List returns the customers matching query, or all of them when query is
// empty.
func (s *CustomerService) List(ctx context.Context, query string) ([]models.Customer, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCustomers(query, list), nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// Create normalizes and validates c, then stores it with a fresh id. The
// stored customer is returned.
func (s *CustomerService) Create(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	c.Normalize()
	if err := c.Validate(s.now()); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

// Update replaces the customer with the given id, keeping the id itself.
func (s *CustomerService) Update(ctx context.Context, id int64, c *models.Customer) error {
	c.Normalize()
	if err := c.Validate(s.now()); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, c)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

// Stats reports the customer total, how many placed an order in the current
// calendar month, and the mean order count. Customers whose last order date
// does not parse are counted as inactive.
func (s *CustomerService) Stats(ctx context.Context) (*CustomerStats, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	st := &CustomerStats{Total: len(list)}
	nowY, nowM, _ := s.now().Date()
	orders := 0
	for _, c := range list {
		orders += c.TotalOrders
		t, err := time.Parse(models.DateLayout, c.LastOrder)
		if err != nil {
			continue
		}
		if y, m, _ := t.Date(); y == nowY && m == nowM {
			st.ActiveThisMonth++
		}
	}
	if len(list) > 0 {
		st.AvgOrders = float64(orders) / float64(len(list))
	}
	return st, nil
}
