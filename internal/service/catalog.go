package service

import (
	"context"
	"strings"
	"time"

	"github.com/adverra/backend/internal/domain"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"
)

// tldPrices is the per-TLD registration price table used by the
// availability simulation.
var tldPrices = []struct {
	TLD   string
	Price float64
}{
	{".com", 12.99},
	{".net", 14.99},
	{".org", 13.49},
	{".io", 39.99},
	{".co", 24.99},
}

// takenNames simulates registrar state: these second-level names are
// unavailable under every TLD.
var takenNames = map[string]bool{
	"google":   true,
	"facebook": true,
	"amazon":   true,
	"example":  true,
	"adverra":  true,
}

// CatalogService handles domains, hosting packages, and services.
// Catalog list reads go through singleflight so a burst of concurrent
// requests for the same listing hits the store once.
type CatalogService struct {
	domainStore  DomainStore
	hostingStore HostingStore
	serviceStore ServiceStore
	validate     *validator.Validate
	sfg          singleflight.Group
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(domainStore DomainStore, hostingStore HostingStore, serviceStore ServiceStore) *CatalogService {
	return &CatalogService{
		domainStore:  domainStore,
		hostingStore: hostingStore,
		serviceStore: serviceStore,
		validate:     validator.New(),
	}
}

// CheckDomain returns per-TLD availability and pricing for a name. The
// query may carry a TLD already; only the second-level label is checked.
func (s *CatalogService) CheckDomain(name string) ([]domain.DomainAvailability, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if i := strings.Index(label, "."); i >= 0 {
		label = label[:i]
	}
	if label == "" {
		return nil, domain.ErrBadRequest("domain name is required")
	}

	results := make([]domain.DomainAvailability, 0, len(tldPrices))
	for _, t := range tldPrices {
		results = append(results, domain.DomainAvailability{
			Domain:    label + t.TLD,
			Available: !takenNames[label],
			Price:     t.Price,
		})
	}
	return results, nil
}

// --- Domains ---

func (s *CatalogService) CreateDomain(ctx context.Context, req *domain.CreateDomainRequest) (*domain.Domain, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	status := req.Status
	if status == "" {
		status = domain.DomainAvailable
	}

	d := &domain.Domain{
		ID:               domain.NewID(),
		Name:             req.Name,
		UserID:           req.UserID,
		Status:           status,
		RegistrationDate: req.RegistrationDate,
		ExpiryDate:       req.ExpiryDate,
		Price:            req.Price,
		CreatedAt:        time.Now(),
	}
	if err := s.domainStore.Create(ctx, d); err != nil {
		return nil, domain.ErrInternal("failed to create domain", err)
	}
	return d, nil
}

func (s *CatalogService) GetDomain(ctx context.Context, id string) (*domain.Domain, error) {
	d, err := s.domainStore.FindByID(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal("failed to find domain", err)
	}
	if d == nil {
		return nil, domain.ErrNotFound("domain not found")
	}
	return d, nil
}

func (s *CatalogService) ListDomains(ctx context.Context) ([]*domain.Domain, error) {
	v, err, _ := s.sfg.Do("domains", func() (interface{}, error) {
		return s.domainStore.ListAll(ctx)
	})
	if err != nil {
		return nil, domain.ErrInternal("failed to list domains", err)
	}
	return v.([]*domain.Domain), nil
}

// ListUserDomains returns the domain rows attached to a user. Non-admin
// callers may only read their own.
func (s *CatalogService) ListUserDomains(ctx context.Context, requesterID, requesterRole, userID string) ([]*domain.Domain, error) {
	if requesterID != userID && requesterRole != "admin" {
		return nil, domain.ErrForbidden("cannot read another user's domains")
	}

	domains, err := s.domainStore.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, domain.ErrInternal("failed to list domains", err)
	}
	return domains, nil
}

func (s *CatalogService) UpdateDomain(ctx context.Context, id string, req *domain.UpdateDomainRequest) (*domain.Domain, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	d, err := s.GetDomain(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		d.Status = req.Status
	}
	if req.UserID != nil {
		d.UserID = req.UserID
	}
	if req.ExpiryDate != nil {
		d.ExpiryDate = req.ExpiryDate
	}
	if req.Price != nil {
		d.Price = req.Price
	}

	if err := s.domainStore.Update(ctx, d); err != nil {
		return nil, domain.ErrInternal("failed to update domain", err)
	}
	return d, nil
}

func (s *CatalogService) DeleteDomain(ctx context.Context, id string) error {
	if _, err := s.GetDomain(ctx, id); err != nil {
		return err
	}
	if err := s.domainStore.Delete(ctx, id); err != nil {
		return domain.ErrInternal("failed to delete domain", err)
	}
	return nil
}

// --- Hosting packages ---

func (s *CatalogService) CreateHostingPackage(ctx context.Context, req *domain.CreateHostingPackageRequest) (*domain.HostingPackage, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	p := &domain.HostingPackage{
		ID:           domain.NewID(),
		Name:         req.Name,
		Price:        req.Price,
		RenewalPrice: req.RenewalPrice,
		Features:     req.Features,
		CreatedAt:    time.Now(),
	}
	if err := s.hostingStore.Create(ctx, p); err != nil {
		return nil, domain.ErrInternal("failed to create hosting package", err)
	}
	return p, nil
}

func (s *CatalogService) ListHostingPackages(ctx context.Context) ([]*domain.HostingPackage, error) {
	v, err, _ := s.sfg.Do("hosting", func() (interface{}, error) {
		return s.hostingStore.ListAll(ctx)
	})
	if err != nil {
		return nil, domain.ErrInternal("failed to list hosting packages", err)
	}
	return v.([]*domain.HostingPackage), nil
}

func (s *CatalogService) GetHostingPackage(ctx context.Context, id string) (*domain.HostingPackage, error) {
	p, err := s.hostingStore.FindByID(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal("failed to find hosting package", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound("hosting package not found")
	}
	return p, nil
}

func (s *CatalogService) UpdateHostingPackage(ctx context.Context, id string, req *domain.CreateHostingPackageRequest) (*domain.HostingPackage, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	p, err := s.GetHostingPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Price = req.Price
	p.RenewalPrice = req.RenewalPrice
	p.Features = req.Features

	if err := s.hostingStore.Update(ctx, p); err != nil {
		return nil, domain.ErrInternal("failed to update hosting package", err)
	}
	return p, nil
}

func (s *CatalogService) DeleteHostingPackage(ctx context.Context, id string) error {
	if _, err := s.GetHostingPackage(ctx, id); err != nil {
		return err
	}
	if err := s.hostingStore.Delete(ctx, id); err != nil {
		return domain.ErrInternal("failed to delete hosting package", err)
	}
	return nil
}

// --- Services ---

func (s *CatalogService) CreateService(ctx context.Context, req *domain.CreateServiceRequest) (*domain.Service, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	svc := &domain.Service{
		ID:          domain.NewID(),
		Title:       req.Title,
		Description: req.Description,
		Packages:    buildPackages(req.Packages),
		CreatedAt:   time.Now(),
	}
	if err := s.serviceStore.Create(ctx, svc); err != nil {
		return nil, domain.ErrInternal("failed to create service", err)
	}
	return svc, nil
}

func (s *CatalogService) ListServices(ctx context.Context) ([]*domain.Service, error) {
	v, err, _ := s.sfg.Do("services", func() (interface{}, error) {
		return s.serviceStore.ListAll(ctx)
	})
	if err != nil {
		return nil, domain.ErrInternal("failed to list services", err)
	}
	return v.([]*domain.Service), nil
}

func (s *CatalogService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	svc, err := s.serviceStore.FindByID(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal("failed to find service", err)
	}
	if svc == nil {
		return nil, domain.ErrNotFound("service not found")
	}
	return svc, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id string, req *domain.CreateServiceRequest) (*domain.Service, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	svc.Title = req.Title
	svc.Description = req.Description
	svc.Packages = buildPackages(req.Packages)

	if err := s.serviceStore.Update(ctx, svc); err != nil {
		return nil, domain.ErrInternal("failed to update service", err)
	}
	return svc, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id string) error {
	if _, err := s.GetService(ctx, id); err != nil {
		return err
	}
	if err := s.serviceStore.Delete(ctx, id); err != nil {
		return domain.ErrInternal("failed to delete service", err)
	}
	return nil
}

func buildPackages(reqs []domain.CreateServicePkgReq) []domain.ServicePackage {
	pkgs := make([]domain.ServicePackage, len(reqs))
	for i, p := range reqs {
		pkgs[i] = domain.ServicePackage{
			ID:    domain.NewID(),
			Name:  p.Name,
			Price: p.Price,
		}
	}
	return pkgs
}
