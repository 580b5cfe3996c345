package domain

import "time"

// Domain statuses.
const (
	DomainAvailable   = "available"
	DomainRegistered  = "registered"
	DomainTransferred = "transferred"
	DomainExpired     = "expired"
)

// Domain is a domain-name catalog record. A row existing does not imply
// ownership; only a completed transaction referencing it does.
type Domain struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	UserID           *string    `json:"userId,omitempty"`
	Status           string     `json:"status"`
	RegistrationDate *time.Time `json:"registrationDate,omitempty"`
	ExpiryDate       *time.Time `json:"expiryDate,omitempty"`
	Price            *float64   `json:"price,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// CreateDomainRequest is the validated input for creating a domain record.
type CreateDomainRequest struct {
	Name             string     `json:"name" validate:"required,fqdn"`
	UserID           *string    `json:"userId"`
	Status           string     `json:"status" validate:"omitempty,oneof=available registered transferred expired"`
	RegistrationDate *time.Time `json:"registrationDate"`
	ExpiryDate       *time.Time `json:"expiryDate"`
	Price            *float64   `json:"price" validate:"omitempty,gte=0"`
}

// UpdateDomainRequest is the validated input for updating a domain record.
type UpdateDomainRequest struct {
	Status     string     `json:"status" validate:"omitempty,oneof=available registered transferred expired"`
	UserID     *string    `json:"userId"`
	ExpiryDate *time.Time `json:"expiryDate"`
	Price      *float64   `json:"price" validate:"omitempty,gte=0"`
}

// HostingPackage is a catalog entity with no per-user state.
type HostingPackage struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	RenewalPrice float64   `json:"renewalPrice"`
	Features     []string  `json:"features"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateHostingPackageRequest is the validated input for a hosting package.
type CreateHostingPackageRequest struct {
	Name         string   `json:"name" validate:"required,min=1,max=100"`
	Price        float64  `json:"price" validate:"gte=0"`
	RenewalPrice float64  `json:"renewalPrice" validate:"gte=0"`
	Features     []string `json:"features"`
}

// ServicePackage is a tier embedded in a service's package list.
type ServicePackage struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Service is an agency offering (e.g. web design) with embedded packages.
type Service struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Packages    []ServicePackage `json:"packages"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// PackageName resolves an embedded package ID to its name by linear
// search. Returns "N/A" when the package is missing (e.g. deleted after
// purchase) — a display fallback, not an error.
func (s *Service) PackageName(packageID string) string {
	for _, p := range s.Packages {
		if p.ID == packageID {
			return p.Name
		}
	}
	return "N/A"
}

// CreateServiceRequest is the validated input for creating a service.
type CreateServiceRequest struct {
	Title       string                `json:"title" validate:"required,min=1,max=100"`
	Description string                `json:"description"`
	Packages    []CreateServicePkgReq `json:"packages" validate:"dive"`
}

// CreateServicePkgReq is one embedded package in a service create/update.
type CreateServicePkgReq struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

// DomainAvailability is the per-TLD result of an availability lookup.
type DomainAvailability struct {
	Domain    string  `json:"domain"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
}
