package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/YonatanCohen1020/nightwing-site/internal/cart"
	"github.com/YonatanCohen1020/nightwing-site/internal/i18n"
)

var (
	ErrEmptyCart = errors.New("cart is empty")

	ErrInvalidOrderType     = errors.New("invalid order type")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrSubmissionPending guards against a double submit while a
	// request to the webhook is still in flight for the session.
	ErrSubmissionPending = errors.New("order submission already in progress")
)

// ValidationError names the checkout field that failed validation. The
// field key doubles as the i18n key for the user-facing message.
type ValidationError struct {
	FieldKey string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.FieldKey)
}

type Service struct {
	cart *cart.Service
	sink Sink

	mu       sync.Mutex
	inflight map[string]bool
}

func NewService(cartService *cart.Service, sink Sink) *Service {
	return &Service{
		cart:     cartService,
		sink:     sink,
		inflight: make(map[string]bool),
	}
}

// Submit validates the form, freezes the cart into an Order, and hands
// it to the sink. Validation failures abort before any network call.
// On success the cart is cleared; on a sink failure it is left intact
// so the user can resubmit — there is no retry or queueing here.
func (s *Service) Submit(ctx context.Context, sessionID string, req Request) (*Order, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	items := s.cart.Items(sessionID)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	if !s.begin(sessionID) {
		return nil, ErrSubmissionPending
	}
	defer s.end(sessionID)

	order := s.assemble(sessionID, items, &req)

	if err := s.sink.Submit(ctx, order); err != nil {
		return nil, err
	}

	s.cart.Clear(sessionID)
	return order, nil
}

func validate(req *Request) error {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.DeliveryAddress = strings.TrimSpace(req.DeliveryAddress)

	if req.OrderType == "" {
		req.OrderType = "pickup"
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "cash"
	}

	if req.OrderType != "pickup" && req.OrderType != "delivery" {
		return fmt.Errorf("%w %q", ErrInvalidOrderType, req.OrderType)
	}
	if req.PaymentMethod != "cash" && req.PaymentMethod != "paybox" {
		return fmt.Errorf("%w %q", ErrInvalidPaymentMethod, req.PaymentMethod)
	}

	if req.CustomerName == "" {
		return &ValidationError{FieldKey: i18n.KeyCustomerName}
	}
	if req.PhoneNumber == "" {
		return &ValidationError{FieldKey: i18n.KeyPhoneNumber}
	}
	if req.OrderType == "delivery" && req.DeliveryAddress == "" {
		return &ValidationError{FieldKey: i18n.KeyDeliveryAddress}
	}
	return nil
}

func (s *Service) assemble(sessionID string, items []*cart.Item, req *Request) *Order {
	orderItems := make([]OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, OrderItem{
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
			ComboConfig: item.ComboConfig,
		})
	}

	var address *string
	if req.OrderType == "delivery" {
		address = &req.DeliveryAddress
	}

	return &Order{
		Items:           orderItems,
		OrderTime:       time.Now().UTC().Format(time.RFC3339),
		PaymentMethod:   req.PaymentMethod,
		CustomerName:    req.CustomerName,
		PhoneNumber:     req.PhoneNumber,
		OrderType:       req.OrderType,
		DeliveryAddress: address,
		Total:           s.cart.Total(sessionID),
	}
}

func (s *Service) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight[sessionID] {
		return false
	}
	s.inflight[sessionID] = true
	return true
}

func (s *Service) end(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inflight, sessionID)
}
