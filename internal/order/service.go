package order

import (
	"context"

	"candyshop-be/internal/cart"
	"candyshop-be/internal/logger"
	"candyshop-be/internal/utils"

	"go.uber.org/zap"
)

// Checkout summarises what the shopper is about to pay.
type Checkout struct {
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shippingFee"`
	FinalTotal  float64 `json:"finalTotal"`
}

// Service defines the business logic for checkout and order lifecycle.
type Service interface {
	Quote(ctx context.Context, owner string) (*Checkout, error)
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]*Order, error)
	GetByID(ctx context.Context, id uint) (*Order, error)
	UpdateStatus(ctx context.Context, id uint, target Status) (*Order, error)
	ConfirmPayment(ctx context.Context, id uint) (*Order, error)
}

// VoucherRedeemer consumes whatever voucher the owner applied during
// checkout. A nil redeemer skips voucher redemption entirely.
type VoucherRedeemer interface {
	Consume(ctx context.Context, owner string) error
}

type service struct {
	repo     Repository
	carts    *cart.Store
	phones   *PhoneCache
	vouchers VoucherRedeemer
}

func NewService(repo Repository, carts *cart.Store, phones *PhoneCache, vouchers VoucherRedeemer) Service {
	return &service{
		repo:     repo,
		carts:    carts,
		phones:   phones,
		vouchers: vouchers,
	}
}

// Quote computes subtotal, shipping fee and final total for the owner's cart.
func (s *service) Quote(ctx context.Context, owner string) (*Checkout, error) {
	c, err := s.carts.Get(ctx, owner)
	if err != nil {
		return nil, err
	}

	subtotal := c.Total()
	fee := ShippingFee(subtotal)
	return &Checkout{
		Subtotal:    subtotal,
		ShippingFee: fee,
		FinalTotal:  subtotal + fee,
	}, nil
}

// PlaceOrder validates the checkout form, snapshots the owner's cart into an
// order with status pending, then clears the cart, redeems the applied
// voucher and caches the phone. The post-create steps are best-effort; the
// order stands even if they fail.
func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*Order, error) {
	if err := validatePlaceOrder(&input); err != nil {
		return nil, err
	}

	c, err := s.carts.Get(ctx, input.Owner)
	if err != nil {
		return nil, err
	}
	if c.Count() == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := c.Total()
	total := subtotal + ShippingFee(subtotal)

	o := &Order{
		CustomerName:    input.CustomerName,
		Phone:           input.Phone,
		Address:         input.Address,
		PaymentMethod:   input.PaymentMethod,
		Status:          StatusPending,
		TotalAmount:     total,
		TransactionCode: input.TransactionCode,
		OrderChannel:    "mobile",
	}

	if input.PaymentMethod == MethodBank && input.TransactionCode == nil {
		o.TransactionCode = utils.StrPtr(BankTransferMarker)
	}

	for _, l := range c.Lines {
		o.Items = append(o.Items, Item{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			Price:     l.Price,
		})
	}

	created, err := s.repo.Create(ctx, o)
	if err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, input.Owner); err != nil {
		logger.FromCtx(ctx).Warn("order placed but cart not cleared",
			zap.Uint("order_id", created.ID),
			zap.Error(err),
		)
	}
	if s.vouchers != nil {
		if err := s.vouchers.Consume(ctx, input.Owner); err != nil {
			logger.FromCtx(ctx).Warn("order placed but voucher not redeemed",
				zap.Uint("order_id", created.ID),
				zap.Error(err),
			)
		}
	}
	s.phones.Set(ctx, input.Owner, input.Phone)

	return created, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]*Order, error) {
	if filter.Status != nil && !ValidStatus(*filter.Status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return o, nil
}

// UpdateStatus applies one admin-driven transition of the fulfillment state
// machine. Illegal transitions leave the order untouched.
func (s *service) UpdateStatus(ctx context.Context, id uint, target Status) (*Order, error) {
	if !ValidStatus(target) {
		return nil, ErrInvalidStatus
	}

	o, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(o.Status, target) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.Uint("order_id", id),
		zap.String("from", string(o.Status)),
		zap.String("to", string(target)),
	)

	o.Status = target
	return o, nil
}

// ConfirmPayment is the pending -> confirmed transition. It applies to both
// payment methods: for COD it means the admin acknowledged the order.
func (s *service) ConfirmPayment(ctx context.Context, id uint) (*Order, error) {
	o, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.Status != StatusPending {
		return nil, ErrNotPending
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusConfirmed); err != nil {
		return nil, err
	}

	o.Status = StatusConfirmed
	return o, nil
}
