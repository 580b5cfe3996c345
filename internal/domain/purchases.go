package domain

import "time"

// HostingPurchase is one row in the "my hosting" ledger view: a completed
// hosting_payment transaction with its package name resolved for display.
// Multiple completed transactions for the same package yield multiple rows.
type HostingPurchase struct {
	TransactionID    string    `json:"transactionId"`
	HostingPackageID string    `json:"hostingPackageId"`
	PackageName      string    `json:"packageName"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	PurchasedAt      time.Time `json:"purchasedAt"`
}

// ServicePurchase is one row in the "my services" ledger view.
type ServicePurchase struct {
	TransactionID string    `json:"transactionId"`
	ServiceID     string    `json:"serviceId"`
	ServiceTitle  string    `json:"serviceTitle"`
	PackageName   string    `json:"packageName"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	PurchasedAt   time.Time `json:"purchasedAt"`
}
