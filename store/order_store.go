package store

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/thepromise/ordering-platform/models"
	"github.com/thepromise/ordering-platform/utils"
)

var (
	ErrInvalidPayload = errors.New("invalid order payload")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrOrderNotFound  = errors.New("order not found")
)

const (
	orderNumberPrefix = "PROM"
	suffixAlphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffixLength      = 6
)

// CreateOrderInput is the payload for OrderStore.Create. Items are
// denormalized copies of menu entries as chosen by the client.
type CreateOrderInput struct {
	BranchID     string
	Mode         string
	TableCode    string
	Items        []models.OrderItem
	CustomerName string
}

// OrderStore owns every order created during the process lifetime. The
// collection only grows; individual orders are mutated through SetStatus
// only. All access goes through the mutex so concurrent requests cannot
// lose updates.
type OrderStore struct {
	mu     sync.Mutex
	orders []*models.Order
	now    func() time.Time
}

func NewOrderStore() *OrderStore {
	return &OrderStore{now: time.Now}
}

// NewOrderStoreWithClock lets tests control the time used for creation
// timestamps and status derivation.
func NewOrderStoreWithClock(now func() time.Time) *OrderStore {
	return &OrderStore{now: now}
}

// List returns every order, hydrated, in creation order. A non-empty
// branchID filters to that branch; an unknown branch yields an empty slice.
func (s *OrderStore) List(branchID string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	out := make([]models.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if branchID != "" && order.BranchID != branchID {
			continue
		}
		out = append(out, order.Hydrated(now))
	}
	return out
}

// Create validates the payload, generates the order id and number, computes
// the total and appends the order to the collection. The returned order is
// hydrated. The total is fixed at creation and never recomputed.
func (s *OrderStore) Create(input CreateOrderInput) (models.Order, error) {
	if input.BranchID == "" || len(input.Items) == 0 {
		return models.Order{}, ErrInvalidPayload
	}

	var total float64
	for _, item := range input.Items {
		if item.Price <= 0 || item.Quantity <= 0 {
			return models.Order{}, ErrInvalidPayload
		}
		total += item.Price * float64(item.Quantity)
	}

	mode := input.Mode
	if mode == "" {
		mode = models.ModeDineIn
	}
	customerName := input.CustomerName
	customerID := input.CustomerName
	if customerName == "" {
		customerName = "Guest"
		customerID = "guest"
	}

	items := make([]models.OrderItem, len(input.Items))
	copy(items, input.Items)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	suffix := randomSuffix()
	order := &models.Order{
		ID:             suffix,
		OrderNumber:    orderNumber(input.BranchID, now, suffix),
		BranchID:       input.BranchID,
		Mode:           mode,
		TableCode:      input.TableCode,
		Items:          items,
		Total:          total,
		TotalFormatted: utils.FormatNaira(total),
		CustomerName:   customerName,
		CustomerID:     customerID,
		PaymentStatus:  "Paid",
		CreatedAt:      now,
	}
	s.orders = append(s.orders, order)

	return order.Hydrated(now), nil
}

// SetStatus applies a manual override, switching the order from time-based
// to manual derivation until the next SetStatus call. Overrides may move the
// order backwards; that is an allowed administrative action.
func (s *OrderStore) SetStatus(id, status string) (models.Order, error) {
	step, ok := models.StatusIndex(status)
	if !ok {
		return models.Order{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.ID == id {
			order.ManualStepIndex = &step
			return order.Hydrated(s.now()), nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func orderNumber(branchID string, createdAt time.Time, suffix string) string {
	return fmt.Sprintf("%s-%s-%s-%s",
		orderNumberPrefix,
		createdAt.Format("20060102"),
		strings.ToUpper(branchID),
		suffix)
}

func randomSuffix() string {
	out := make([]byte, suffixLength)
	max := big.NewInt(int64(len(suffixAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			out[i] = suffixAlphabet[0]
			continue
		}
		out[i] = suffixAlphabet[n.Int64()]
	}
	return string(out)
}
