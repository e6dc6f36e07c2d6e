package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	portsrepo "github.com/prodbooks/mfg_ledger/internal/core/ports/repositories"
	"github.com/prodbooks/mfg_ledger/internal/core/services"
)

type MockExciseRepository struct {
	mock.Mock
}

var _ portsrepo.ExciseRepositoryFacade = (*MockExciseRepository)(nil)

func (m *MockExciseRepository) FindCategoryByID(ctx context.Context, tenantID, categoryID string) (*domain.ExciseCategory, error) {
	args := m.Called(ctx, tenantID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExciseCategory), args.Error(1)
}

func exciseableProduct(categoryID string) domain.Product {
	p := domain.Product{ProductID: "fg-1", IsExciseable: true}
	if categoryID != "" {
		p.ExciseCategoryID = &categoryID
	}
	return p
}

func TestClassifyProduct_NotExciseable(t *testing.T) {
	repo := new(MockExciseRepository)
	svc := services.NewExciseService(repo)

	c, err := svc.ClassifyProduct(context.Background(), "tenant-1", domain.Product{ProductID: "fg-1"})
	require.NoError(t, err)
	assert.False(t, c.Regulated)
	assert.True(t, c.Rate.IsZero())
	repo.AssertNotCalled(t, "FindCategoryByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestClassifyProduct_ActiveCategory(t *testing.T) {
	repo := new(MockExciseRepository)
	svc := services.NewExciseService(repo)

	repo.On("FindCategoryByID", mock.Anything, "tenant-1", "cat-1").
		Return(&domain.ExciseCategory{CategoryID: "cat-1", Rate: dec("5"), IsActive: true}, nil)

	c, err := svc.ClassifyProduct(context.Background(), "tenant-1", exciseableProduct("cat-1"))
	require.NoError(t, err)
	assert.True(t, c.Regulated)
	assert.Equal(t, "cat-1", c.CategoryID)
	assert.True(t, c.Rate.Equal(dec("5")))
}

func TestClassifyProduct_InactiveCategoryIsUnregulated(t *testing.T) {
	repo := new(MockExciseRepository)
	svc := services.NewExciseService(repo)

	repo.On("FindCategoryByID", mock.Anything, "tenant-1", "cat-1").
		Return(&domain.ExciseCategory{CategoryID: "cat-1", Rate: dec("5"), IsActive: false}, nil)

	c, err := svc.ClassifyProduct(context.Background(), "tenant-1", exciseableProduct("cat-1"))
	require.NoError(t, err)
	assert.False(t, c.Regulated)
}

func TestClassifyProduct_MissingCategoryID(t *testing.T) {
	repo := new(MockExciseRepository)
	svc := services.NewExciseService(repo)

	_, err := svc.ClassifyProduct(context.Background(), "tenant-1", exciseableProduct(""))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestClassifyProduct_CategoryNotFound(t *testing.T) {
	repo := new(MockExciseRepository)
	svc := services.NewExciseService(repo)

	repo.On("FindCategoryByID", mock.Anything, "tenant-1", "cat-1").
		Return(nil, apperrors.ErrNotFound)

	_, err := svc.ClassifyProduct(context.Background(), "tenant-1", exciseableProduct("cat-1"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
