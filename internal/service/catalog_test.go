package service

import (
	"context"
	"testing"

	"github.com/adverra/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog() *CatalogService {
	return NewCatalogService(&mockDomainStore{}, &mockHostingStore{}, &mockServiceStore{})
}

func TestCheckDomain_AvailableName(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.CheckDomain("mybusiness")
	require.NoError(t, err)
	require.Len(t, results, 5)

	byName := make(map[string]domain.DomainAvailability)
	for _, r := range results {
		assert.True(t, r.Available)
		byName[r.Domain] = r
	}
	assert.Equal(t, 12.99, byName["mybusiness.com"].Price)
	assert.Equal(t, 39.99, byName["mybusiness.io"].Price)
}

func TestCheckDomain_TakenNameIsTakenUnderEveryTLD(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.CheckDomain("google")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.False(t, r.Available)
	}
}

func TestCheckDomain_StripsTLDAndNormalizesCase(t *testing.T) {
	svc := newTestCatalog()

	results, err := svc.CheckDomain("  Google.COM  ")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "google.com", results[0].Domain)
	assert.False(t, results[0].Available)
}

func TestCheckDomain_EmptyNameIsRejected(t *testing.T) {
	svc := newTestCatalog()

	_, err := svc.CheckDomain("   ")

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestListUserDomains_SelfOrAdminOnly(t *testing.T) {
	uid := "u1"
	store := &mockDomainStore{Domains: []*domain.Domain{
		{ID: "d1", Name: "example.com", UserID: &uid, Status: domain.DomainRegistered},
	}}
	svc := NewCatalogService(store, &mockHostingStore{}, &mockServiceStore{})
	ctx := context.Background()

	// Self access succeeds.
	domains, err := svc.ListUserDomains(ctx, "u1", "user", "u1")
	require.NoError(t, err)
	assert.Len(t, domains, 1)

	// Admin can read anyone's.
	domains, err = svc.ListUserDomains(ctx, "admin-id", "admin", "u1")
	require.NoError(t, err)
	assert.Len(t, domains, 1)

	// Another plain user is rejected.
	_, err = svc.ListUserDomains(ctx, "u2", "user", "u1")
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Code)
}

func TestCreateDomain_ValidatesName(t *testing.T) {
	svc := newTestCatalog()

	_, err := svc.CreateDomain(context.Background(), &domain.CreateDomainRequest{Name: "not a domain"})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
}
