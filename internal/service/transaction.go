package service

import (
	"context"
	"time"

	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/pkg/crypto"
	"github.com/go-playground/validator/v10"
)

// TransactionService handles business logic for the purchase ledger.
type TransactionService struct {
	txStore  TransactionStore
	events   EventPublisher
	enc      *crypto.Encryptor
	validate *validator.Validate
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txStore TransactionStore, events EventPublisher, enc *crypto.Encryptor) *TransactionService {
	return &TransactionService{
		txStore:  txStore,
		events:   events,
		enc:      enc,
		validate: validator.New(),
	}
}

// Create records a pending transaction for the given user.
func (s *TransactionService) Create(ctx context.Context, userID string, req *domain.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	accountNo := ""
	if req.AccountNo != "" {
		enc, err := s.enc.Encrypt([]byte(req.AccountNo))
		if err != nil {
			return nil, domain.ErrInternal("failed to encrypt account number", err)
		}
		accountNo = enc
	}

	now := time.Now()
	tx := &domain.Transaction{
		ID:               domain.NewID(),
		UserID:           userID,
		Type:             req.Type,
		DomainID:         req.DomainID,
		ServiceID:        req.ServiceID,
		PackageID:        req.PackageID,
		HostingPackageID: req.HostingPackageID,
		Amount:           req.Amount,
		Currency:         currency,
		Status:           domain.TxPending,
		PaymentMethod:    req.PaymentMethod,
		AccountNo:        accountNo,
		Description:      req.Description,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.txStore.Create(ctx, tx); err != nil {
		return nil, domain.ErrInternal("failed to create transaction", err)
	}

	s.events.TransactionCreated(ctx, tx)
	return tx, nil
}

// ListByUser returns a user's transactions. Non-admin callers may only
// read their own ledger.
func (s *TransactionService) ListByUser(ctx context.Context, requesterID, requesterRole, userID string) ([]*domain.Transaction, error) {
	if requesterID != userID && requesterRole != "admin" {
		return nil, domain.ErrForbidden("cannot read another user's transactions")
	}

	txs, err := s.txStore.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, domain.ErrInternal("failed to list transactions", err)
	}
	return txs, nil
}

// ListAll returns every transaction (admin only, gated in router).
func (s *TransactionService) ListAll(ctx context.Context) ([]*domain.Transaction, error) {
	txs, err := s.txStore.ListAll(ctx)
	if err != nil {
		return nil, domain.ErrInternal("failed to list transactions", err)
	}
	return txs, nil
}

// UpdateStatus transitions a transaction from pending to completed or
// failed. Completed transactions are final.
func (s *TransactionService) UpdateStatus(ctx context.Context, id string, req *domain.UpdateTransactionStatusRequest) (*domain.Transaction, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	tx, err := s.txStore.FindByID(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal("failed to find transaction", err)
	}
	if tx == nil {
		return nil, domain.ErrNotFound("transaction not found")
	}
	if tx.Status == domain.TxCompleted {
		return nil, domain.ErrBadRequest("completed transactions cannot change status")
	}

	if err := s.txStore.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, domain.ErrInternal("failed to update transaction", err)
	}

	tx.Status = req.Status
	tx.UpdatedAt = time.Now()
	s.events.TransactionStatusChanged(ctx, tx)
	return tx, nil
}

// Delete removes a transaction by ID (explicit admin action only).
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	tx, err := s.txStore.FindByID(ctx, id)
	if err != nil {
		return domain.ErrInternal("failed to find transaction", err)
	}
	if tx == nil {
		return domain.ErrNotFound("transaction not found")
	}

	if err := s.txStore.Delete(ctx, id); err != nil {
		return domain.ErrInternal("failed to delete transaction", err)
	}
	return nil
}
