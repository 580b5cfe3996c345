package service

import (
	"context"

	"github.com/adverra/backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

// PurchaseService computes the "my domains" / "my hosting" / "my
// services" views by reconciling a user's transactions against the
// catalog. Only completed transactions grant visibility; pending and
// failed ones never do.
type PurchaseService struct {
	txStore      TransactionStore
	domainStore  DomainStore
	hostingStore HostingStore
	serviceStore ServiceStore
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(txStore TransactionStore, domainStore DomainStore, hostingStore HostingStore, serviceStore ServiceStore) *PurchaseService {
	return &PurchaseService{
		txStore:      txStore,
		domainStore:  domainStore,
		hostingStore: hostingStore,
		serviceStore: serviceStore,
	}
}

// MyDomains returns the domain records the user owns: the user's domain
// rows intersected with the IDs referenced by completed register,
// transfer, or renew transactions. The intersection deduplicates
// renewals implicitly, since each domain row appears once.
func (s *PurchaseService) MyDomains(ctx context.Context, userID string) ([]*domain.Domain, error) {
	var (
		txs     []*domain.Transaction
		domains []*domain.Domain
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.txStore.FindAllByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		domains, err = s.domainStore.FindAllByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.ErrInternal("failed to load purchases", err)
	}

	owned := make(map[string]bool)
	for _, tx := range txs {
		if !tx.IsCompleted() || tx.DomainID == nil {
			continue
		}
		for _, t := range domain.DomainTxTypes {
			if tx.Type == t {
				owned[*tx.DomainID] = true
				break
			}
		}
	}

	result := []*domain.Domain{}
	for _, d := range domains {
		if owned[d.ID] {
			result = append(result, d)
		}
	}
	return result, nil
}

// MyHosting returns the hosting purchase ledger: one row per completed
// hosting_payment transaction, duplicates preserved (a renewal is a
// second row). Package names missing from the catalog render as "N/A".
func (s *PurchaseService) MyHosting(ctx context.Context, userID string) ([]*domain.HostingPurchase, error) {
	txs, err := s.txStore.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, domain.ErrInternal("failed to load transactions", err)
	}

	result := []*domain.HostingPurchase{}
	names := make(map[string]string)

	for _, tx := range txs {
		if !tx.IsCompleted() || tx.Type != domain.TxHostingPayment || tx.HostingPackageID == nil {
			continue
		}

		pkgID := *tx.HostingPackageID
		name, ok := names[pkgID]
		if !ok {
			name = "N/A"
			if pkg, err := s.hostingStore.FindByID(ctx, pkgID); err == nil && pkg != nil {
				name = pkg.Name
			}
			names[pkgID] = name
		}

		result = append(result, &domain.HostingPurchase{
			TransactionID:    tx.ID,
			HostingPackageID: pkgID,
			PackageName:      name,
			Amount:           tx.Amount,
			Currency:         tx.Currency,
			PurchasedAt:      tx.CreatedAt,
		})
	}
	return result, nil
}

// MyServices returns the service purchase ledger: one row per completed
// service_payment transaction, with the embedded package title resolved
// by linear search ("N/A" when the package was deleted after purchase).
func (s *PurchaseService) MyServices(ctx context.Context, userID string) ([]*domain.ServicePurchase, error) {
	txs, err := s.txStore.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, domain.ErrInternal("failed to load transactions", err)
	}

	result := []*domain.ServicePurchase{}
	services := make(map[string]*domain.Service)

	for _, tx := range txs {
		if !tx.IsCompleted() || tx.Type != domain.TxServicePayment || tx.ServiceID == nil {
			continue
		}

		svcID := *tx.ServiceID
		svc, ok := services[svcID]
		if !ok {
			svc, _ = s.serviceStore.FindByID(ctx, svcID)
			services[svcID] = svc
		}

		title, pkgName := "N/A", "N/A"
		if svc != nil {
			title = svc.Title
			if tx.PackageID != nil {
				pkgName = svc.PackageName(*tx.PackageID)
			}
		}

		result = append(result, &domain.ServicePurchase{
			TransactionID: tx.ID,
			ServiceID:     svcID,
			ServiceTitle:  title,
			PackageName:   pkgName,
			Amount:        tx.Amount,
			Currency:      tx.Currency,
			PurchasedAt:   tx.CreatedAt,
		})
	}
	return result, nil
}
