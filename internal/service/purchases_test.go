package service

import (
	"context"
	"testing"
	"time"

	"github.com/adverra/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func tx(userID, txType, status string) *domain.Transaction {
	now := time.Now()
	return &domain.Transaction{
		ID:        domain.NewID(),
		UserID:    userID,
		Type:      txType,
		Status:    status,
		Amount:    10,
		Currency:  "USD",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestMyDomains_OnlyCompletedTransactionsGrantOwnership(t *testing.T) {
	uid := "u1"
	d1 := &domain.Domain{ID: "d1", Name: "example.com", UserID: &uid, Status: domain.DomainRegistered}
	d2 := &domain.Domain{ID: "d2", Name: "example.net", UserID: &uid, Status: domain.DomainRegistered}

	registered := tx(uid, domain.TxRegister, domain.TxCompleted)
	registered.DomainID = strPtr("d1")
	pending := tx(uid, domain.TxRegister, domain.TxPending)
	pending.DomainID = strPtr("d2")

	svc := NewPurchaseService(
		&mockTxStore{Transactions: []*domain.Transaction{registered, pending}},
		&mockDomainStore{Domains: []*domain.Domain{d1, d2}},
		&mockHostingStore{},
		&mockServiceStore{},
	)

	owned, err := svc.MyDomains(context.Background(), uid)
	require.NoError(t, err)

	require.Len(t, owned, 1)
	assert.Equal(t, "d1", owned[0].ID)
}

func TestMyDomains_RenewalDoesNotDuplicate(t *testing.T) {
	uid := "u1"
	d1 := &domain.Domain{ID: "d1", Name: "example.com", UserID: &uid, Status: domain.DomainRegistered}

	registered := tx(uid, domain.TxRegister, domain.TxCompleted)
	registered.DomainID = strPtr("d1")
	renewed := tx(uid, domain.TxRenew, domain.TxCompleted)
	renewed.DomainID = strPtr("d1")

	svc := NewPurchaseService(
		&mockTxStore{Transactions: []*domain.Transaction{registered, renewed}},
		&mockDomainStore{Domains: []*domain.Domain{d1}},
		&mockHostingStore{},
		&mockServiceStore{},
	)

	owned, err := svc.MyDomains(context.Background(), uid)
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

func TestMyDomains_PaymentTypeDoesNotGrantDomains(t *testing.T) {
	uid := "u1"
	d1 := &domain.Domain{ID: "d1", Name: "example.com", UserID: &uid, Status: domain.DomainRegistered}

	paid := tx(uid, domain.TxPayment, domain.TxCompleted)
	paid.DomainID = strPtr("d1")

	svc := NewPurchaseService(
		&mockTxStore{Transactions: []*domain.Transaction{paid}},
		&mockDomainStore{Domains: []*domain.Domain{d1}},
		&mockHostingStore{},
		&mockServiceStore{},
	)

	owned, err := svc.MyDomains(context.Background(), uid)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestMyHosting_LedgerKeepsDuplicateRows(t *testing.T) {
	uid := "u1"
	pkg := &domain.HostingPackage{ID: "h1", Name: "Pro Plan", Price: 29.99}

	first := tx(uid, domain.TxHostingPayment, domain.TxCompleted)
	first.HostingPackageID = strPtr("h1")
	renewal := tx(uid, domain.TxHostingPayment, domain.TxCompleted)
	renewal.HostingPackageID = strPtr("h1")
	failed := tx(uid, domain.TxHostingPayment, domain.TxFailed)
	failed.HostingPackageID = strPtr("h1")

	svc := NewPurchaseService(
		&mockTxStore{Transactions: []*domain.Transaction{first, renewal, failed}},
		&mockDomainStore{},
		&mockHostingStore{Packages: []*domain.HostingPackage{pkg}},
		&mockServiceStore{},
	)

	rows, err := svc.MyHosting(context.Background(), uid)
	require.NoError(t, err)

	// A renewal is a second row; the failed payment is no row at all.
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "Pro Plan", row.PackageName)
		assert.Equal(t, "h1", row.HostingPackageID)
	}
}

func TestMyServices_ResolvesPackageNames(t *testing.T) {
	uid := "u1"
	svcRecord := &domain.Service{
		ID:    "svc1",
		Title: "Web Design",
		Packages: []domain.ServicePackage{
			{ID: "p1", Name: "Basic", Price: 99},
			{ID: "p2", Name: "Premium", Price: 299},
		},
	}

	basic := tx(uid, domain.TxServicePayment, domain.TxCompleted)
	basic.ServiceID = strPtr("svc1")
	basic.PackageID = strPtr("p1")
	premium := tx(uid, domain.TxServicePayment, domain.TxCompleted)
	premium.ServiceID = strPtr("svc1")
	premium.PackageID = strPtr("p2")
	ghost := tx(uid, domain.TxServicePayment, domain.TxCompleted)
	ghost.ServiceID = strPtr("svc1")
	ghost.PackageID = strPtr("deleted-pkg")

	svc := NewPurchaseService(
		&mockTxStore{Transactions: []*domain.Transaction{basic, premium, ghost}},
		&mockDomainStore{},
		&mockHostingStore{},
		&mockServiceStore{Services: []*domain.Service{svcRecord}},
	)

	rows, err := svc.MyServices(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Basic", rows[0].PackageName)
	assert.Equal(t, "Premium", rows[1].PackageName)
	assert.Equal(t, "N/A", rows[2].PackageName) // deleted package: display fallback
	for _, row := range rows {
		assert.Equal(t, "Web Design", row.ServiceTitle)
	}
}

func TestMyServices_MissingServiceRendersNA(t *testing.T) {
	uid := "u1"
	p := tx(uid, domain.TxServicePayment, domain.TxCompleted)
	p.ServiceID = strPtr("gone")
	p.PackageID = strPtr("p1")

	svc := NewPurchaseService(
		&mockTxStore{Transactions: []*domain.Transaction{p}},
		&mockDomainStore{},
		&mockHostingStore{},
		&mockServiceStore{},
	)

	rows, err := svc.MyServices(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "N/A", rows[0].ServiceTitle)
	assert.Equal(t, "N/A", rows[0].PackageName)
}
