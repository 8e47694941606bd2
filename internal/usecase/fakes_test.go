package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"billing_service/internal/domain/entities"
	"billing_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// In-memory stores used where gomock expectations would obscure the property
// under test (ordering, identity across calls).

type memBillRepo struct {
	mu    sync.Mutex
	bills map[string]entities.Bill
}

func newMemBillRepo() *memBillRepo {
	return &memBillRepo{bills: map[string]entities.Bill{}}
}

func (r *memBillRepo) Create(_ context.Context, b entities.Bill) (entities.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.LineItems = nil
	r.bills[b.ID] = b
	return b, nil
}

func (r *memBillRepo) GetByID(_ context.Context, id string) (entities.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bills[id], nil
}

func (r *memBillRepo) List(_ context.Context) ([]entities.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Bill, 0, len(r.bills))
	for _, b := range r.bills {
		out = append(out, b)
	}
	return out, nil
}

type memLineItemRepo struct {
	mu    sync.Mutex
	items []entities.LineItem
	// failFor makes Create fail for the given product ids.
	failFor map[int64]error
	// delay is called before each write; used to shuffle completion order.
	delay func(li entities.LineItem)
}

func newMemLineItemRepo() *memLineItemRepo {
	return &memLineItemRepo{failFor: map[int64]error{}}
}

func (r *memLineItemRepo) Create(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
	if r.delay != nil {
		r.delay(li)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failFor[li.ProductID]; err != nil {
		return entities.LineItem{}, err
	}
	li.ID = uuid.NewString()
	r.items = append(r.items, li)
	return li, nil
}

func (r *memLineItemRepo) ListByBillID(_ context.Context, billID string) ([]entities.LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.LineItem
	for _, li := range r.items {
		if li.BillID == billID {
			out = append(out, li)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Position < out[b].Position })
	return out, nil
}

func (r *memLineItemRepo) List(_ context.Context) ([]entities.LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.LineItem(nil), r.items...), nil
}

type fakeDirectory struct {
	mu        sync.Mutex
	customers map[int64]entities.Customer
	err       error
}

func (d *fakeDirectory) FindCustomerByID(_ context.Context, id int64) (entities.Customer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return entities.Customer{}, d.err
	}
	return d.customers[id], nil
}

type fakeCatalog struct {
	mu       sync.Mutex
	listing  []entities.Product
	listErr  error
	findErrs map[int64]error
	calls    int
}

func (c *fakeCatalog) setPrice(id int64, price float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.listing {
		if c.listing[i].ID == id {
			c.listing[i].Price = price
		}
	}
}

func (c *fakeCatalog) FindProductByID(_ context.Context, id int64) (entities.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if err := c.findErrs[id]; err != nil {
		return entities.Product{}, err
	}
	for _, p := range c.listing {
		if p.ID == id {
			return p, nil
		}
	}
	return entities.Product{}, nil
}

func (c *fakeCatalog) ListProducts(_ context.Context) ([]entities.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listErr != nil {
		return nil, c.listErr
	}
	return append([]entities.Product(nil), c.listing...), nil
}

type recordingMetrics struct {
	mu                                    sync.Mutex
	composedPersisted, composedFailed     int
	enrichedItems, enrichedUnresolvedItem int
}

var _ interfaces.IBillingMetrics = (*recordingMetrics)(nil)

func (m *recordingMetrics) BillComposed(persisted, failed int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.composedPersisted, m.composedFailed = persisted, failed
}

func (m *recordingMetrics) BillEnriched(items, unresolved int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enrichedItems, m.enrichedUnresolvedItem = items, unresolved
}

func upstreamDown(service string) error {
	return fmt.Errorf("%s: %w", service, interfaces.ErrUpstreamUnavailable)
}

func aliceCatalog() (*fakeDirectory, *fakeCatalog) {
	dir := &fakeDirectory{customers: map[int64]entities.Customer{
		1: {ID: 1, Name: "Alice", Email: "alice@example.com"},
	}}
	cat := &fakeCatalog{
		listing: []entities.Product{
			{ID: 10, Name: "Widget", Price: 5.0},
			{ID: 11, Name: "Gadget", Price: 12.5},
		},
		findErrs: map[int64]error{},
	}
	return dir, cat
}
