package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studiobooking/internal/domain"
)

type mockServiceReader struct {
	mock.Mock
}

func (m *mockServiceReader) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockServiceReader) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Service), args.Error(1)
}

func (m *mockServiceReader) ListActive(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

type mockPackageReader struct {
	mock.Mock
}

func (m *mockPackageReader) GetByID(ctx context.Context, id int64) (*domain.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *mockPackageReader) ListActive(ctx context.Context) ([]domain.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Package), args.Error(1)
}

type mockPhotographerReader struct {
	mock.Mock
}

func (m *mockPhotographerReader) GetByID(ctx context.Context, id int64) (*domain.Photographer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photographer), args.Error(1)
}

func (m *mockPhotographerReader) ListActive(ctx context.Context) ([]domain.Photographer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Photographer), args.Error(1)
}

func TestGetServiceNotFound(t *testing.T) {
	services := new(mockServiceReader)
	svc := NewService(services, new(mockPackageReader), new(mockPhotographerReader))

	services.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetService(context.Background(), 9)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestPreviewPricing(t *testing.T) {
	services := new(mockServiceReader)
	photographers := new(mockPhotographerReader)
	svc := NewService(services, new(mockPackageReader), photographers)

	photographers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Photographer{
		ID:                 1,
		B2B:                true,
		DiscountPercentage: 20,
		Services: []domain.PhotographerService{
			{ServiceID: 2, BasePrice: 8000, DiscountedPrice: 7000, Active: true},
			{ServiceID: 3, BasePrice: 6000, AllowDiscount: true, Active: true},
		},
	}, nil)
	services.On("ListActive", mock.Anything).Return([]domain.Service{
		{ID: 2, Name: "Portrait", BasePrice: 8000},
		{ID: 3, Name: "Retouch", BasePrice: 6000},
		{ID: 4, Name: "Print", BasePrice: 1000},
	}, nil)

	preview, err := svc.PreviewPricing(context.Background(), 1, true)

	require.NoError(t, err)
	require.Len(t, preview.Rows, 3)
	assert.True(t, preview.B2B)

	// Fixed override beats the percentage discount.
	assert.Equal(t, float64(7000), preview.Rows[0].EffectivePrice)
	assert.True(t, preview.Rows[0].Discounted)

	// Percentage applies where the sheet allows it.
	assert.Equal(t, float64(4800), preview.Rows[1].EffectivePrice)

	// A service absent from the sheet keeps the catalog price.
	assert.Equal(t, float64(1000), preview.Rows[2].EffectivePrice)
	assert.False(t, preview.Rows[2].Discounted)
}

func TestPreviewPricingB2BOff(t *testing.T) {
	services := new(mockServiceReader)
	photographers := new(mockPhotographerReader)
	svc := NewService(services, new(mockPackageReader), photographers)

	photographers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Photographer{
		ID:                 1,
		B2B:                true,
		DiscountPercentage: 20,
		Services: []domain.PhotographerService{
			{ServiceID: 2, DiscountedPrice: 7000, Active: true},
		},
	}, nil)
	services.On("ListActive", mock.Anything).Return([]domain.Service{
		{ID: 2, Name: "Portrait", BasePrice: 8000},
	}, nil)

	preview, err := svc.PreviewPricing(context.Background(), 1, false)

	require.NoError(t, err)
	assert.False(t, preview.B2B)
	assert.Equal(t, float64(8000), preview.Rows[0].EffectivePrice)
}
