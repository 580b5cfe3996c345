package domain

import "time"

// Transaction types.
const (
	TxRegister       = "register"
	TxTransfer       = "transfer"
	TxRenew          = "renew"
	TxPayment        = "payment"
	TxServicePayment = "service_payment"
	TxHostingPayment = "hosting_payment"
)

// Transaction statuses.
const (
	TxPending   = "pending"
	TxCompleted = "completed"
	TxFailed    = "failed"
)

// DomainTxTypes are the transaction types that grant domain ownership.
var DomainTxTypes = []string{TxRegister, TxTransfer, TxRenew}

// Transaction records a purchase attempt. It is the source of truth for
// what a user owns: only a completed transaction grants visibility of the
// referenced domain, hosting package, or service.
type Transaction struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	Type             string    `json:"type"`
	DomainID         *string   `json:"domainId,omitempty"`
	ServiceID        *string   `json:"serviceId,omitempty"`
	PackageID        *string   `json:"packageId,omitempty"`
	HostingPackageID *string   `json:"hostingPackageId,omitempty"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	PaymentMethod    string    `json:"paymentMethod"`
	AccountNo        string    `json:"-"` // AES-GCM encrypted at rest
	Description      *string   `json:"description,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// CreateTransactionRequest is the validated input for recording a transaction.
type CreateTransactionRequest struct {
	Type             string  `json:"type" validate:"required,oneof=register transfer renew payment service_payment hosting_payment"`
	DomainID         *string `json:"domainId"`
	ServiceID        *string `json:"serviceId"`
	PackageID        *string `json:"packageId"`
	HostingPackageID *string `json:"hostingPackageId"`
	Amount           float64 `json:"amount" validate:"gte=0"`
	Currency         string  `json:"currency" validate:"omitempty,len=3"`
	PaymentMethod    string  `json:"paymentMethod" validate:"required"`
	AccountNo        string  `json:"accountNo"`
	Description      *string `json:"description"`
}

// UpdateTransactionStatusRequest transitions a pending transaction.
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed failed"`
}

// IsCompleted reports whether the transaction grants ownership.
func (t *Transaction) IsCompleted() bool {
	return t.Status == TxCompleted
}
