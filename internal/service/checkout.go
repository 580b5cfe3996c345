package service

import (
	"context"
	"log"
	"time"

	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/internal/repository"
	"github.com/adverra/backend/pkg/crypto"
	"github.com/go-playground/validator/v10"
)

// CheckoutService converts the session cart into pending transactions,
// one per item. Succeeded items leave the cart immediately, failed items
// stay, so resubmitting after a partial failure recomputes purely from
// the remaining cart state and never duplicates a transaction.
type CheckoutService struct {
	cartStore repository.CartStore
	txStore   TransactionStore
	events    EventPublisher
	enc       *crypto.Encryptor
	validate  *validator.Validate
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(cartStore repository.CartStore, txStore TransactionStore, events EventPublisher, enc *crypto.Encryptor) *CheckoutService {
	return &CheckoutService{
		cartStore: cartStore,
		txStore:   txStore,
		events:    events,
		enc:       enc,
		validate:  validator.New(),
	}
}

// Checkout submits the cart for the authenticated user. The returned
// result lists created transactions and per-item failures; it is never
// an error for only part of the cart to go through.
func (s *CheckoutService) Checkout(ctx context.Context, userID, sessionID string, req *domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized("login required for checkout")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	cart, err := s.cartStore.Get(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrInternal("failed to load cart", err)
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrBadRequest("cart is empty")
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	accountNo := ""
	if req.AccountNo != "" {
		accountNo, err = s.enc.Encrypt([]byte(req.AccountNo))
		if err != nil {
			return nil, domain.ErrInternal("failed to encrypt account number", err)
		}
	}

	result := &domain.CheckoutResult{}
	var remaining []domain.CartItem

	for _, item := range cart.Items {
		tx := transactionForItem(userID, item, req.PaymentMethod, accountNo, currency)

		if err := s.txStore.Create(ctx, tx); err != nil {
			log.Printf("checkout: item %s (%s) failed: %v", item.ID, item.Subtitle, err)
			result.Failures = append(result.Failures, domain.CheckoutFailure{
				ItemID:   item.ID,
				Subtitle: item.Subtitle,
				Error:    "failed to record transaction",
			})
			remaining = append(remaining, item)
			continue
		}

		result.Created = append(result.Created, tx)
		s.events.TransactionCreated(ctx, tx)
	}

	cart.Items = remaining
	if len(remaining) == 0 {
		if err := s.cartStore.Delete(ctx, sessionID); err != nil {
			log.Printf("checkout: failed to clear cart for session %s: %v", sessionID, err)
		}
	} else if err := s.cartStore.Set(ctx, cart); err != nil {
		log.Printf("checkout: failed to save cart for session %s: %v", sessionID, err)
	}

	return result, nil
}

// transactionForItem maps a cart item onto a pending transaction of the
// matching category.
func transactionForItem(userID string, item domain.CartItem, paymentMethod, accountNo, currency string) *domain.Transaction {
	now := time.Now()
	tx := &domain.Transaction{
		ID:            domain.NewID(),
		UserID:        userID,
		Amount:        item.Price,
		Currency:      currency,
		Status:        domain.TxPending,
		PaymentMethod: paymentMethod,
		AccountNo:     accountNo,
		Description:   &item.Title,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id := item.ID
	switch item.Type {
	case domain.CartItemDomain:
		tx.Type = domain.TxRegister
		tx.DomainID = &id
	case domain.CartItemHosting:
		tx.Type = domain.TxHostingPayment
		tx.HostingPackageID = &id
	default:
		tx.Type = domain.TxPayment
	}
	return tx
}
