package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockUc "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartServiceFixture(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartRepository, *mockUc.MockCatalogUsecase) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	catalog := mockUc.NewMockCatalogUsecase(t)
	service := NewCartService(CartServiceParams{
		CartRepo: cartRepo,
		Catalog:  catalog,
		Logger:   newDiscardLogger(),
	})

	return service, cartRepo, catalog
}

func testProduct() *entity.Product {
	return &entity.Product{
		ID:      "prod-a",
		Name:    "Product A",
		Price:   60,
		Image:   "a.jpg",
		InStock: true,
	}
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	service, cartRepo, catalog := newCartServiceFixture(t)
	ctx := context.Background()

	catalog.EXPECT().GetProduct(ctx, "prod-a").Return(testProduct(), nil)
	cartRepo.EXPECT().Find(ctx, "sess-1").Return(entity.NewCart(), nil)
	cartRepo.EXPECT().Save(ctx, "sess-1", mock.AnythingOfType("*entity.Cart")).Return(nil)

	out, err := service.AddItem(ctx, "sess-1", &usecase.AddItemInput{ProductID: "prod-a", Quantity: 2})

	require.NoError(t, err)
	assert.True(t, out.Added)
	require.Len(t, out.Cart.Items, 1)
	assert.Equal(t, 2, out.Cart.Items[0].Quantity)
	assert.Equal(t, 2, out.ItemCount)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	service, cartRepo, catalog := newCartServiceFixture(t)
	ctx := context.Background()

	existing := entity.NewCart()
	_, err := existing.Add(*testProduct(), 1)
	require.NoError(t, err)

	catalog.EXPECT().GetProduct(ctx, "prod-a").Return(testProduct(), nil)
	cartRepo.EXPECT().Find(ctx, "sess-1").Return(existing, nil)
	cartRepo.EXPECT().Save(ctx, "sess-1", mock.AnythingOfType("*entity.Cart")).Return(nil)

	out, err := service.AddItem(ctx, "sess-1", &usecase.AddItemInput{ProductID: "prod-a", Quantity: 2})

	require.NoError(t, err)
	assert.False(t, out.Added)
	require.Len(t, out.Cart.Items, 1)
	assert.Equal(t, 3, out.Cart.Items[0].Quantity)
}

func TestCartService_AddItem_DefaultsToSingleUnit(t *testing.T) {
	service, cartRepo, catalog := newCartServiceFixture(t)
	ctx := context.Background()

	catalog.EXPECT().GetProduct(ctx, "prod-a").Return(testProduct(), nil)
	cartRepo.EXPECT().Find(ctx, "sess-1").Return(entity.NewCart(), nil)
	cartRepo.EXPECT().Save(ctx, "sess-1", mock.AnythingOfType("*entity.Cart")).Return(nil)

	out, err := service.AddItem(ctx, "sess-1", &usecase.AddItemInput{ProductID: "prod-a"})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Cart.Items[0].Quantity)
}

func TestCartService_AddItem_RejectsNegativeQuantity(t *testing.T) {
	service, _, _ := newCartServiceFixture(t)

	out, err := service.AddItem(context.Background(), "sess-1", &usecase.AddItemInput{ProductID: "prod-a", Quantity: -1})

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_QUANTITY", appErr.ErrorCode())
}

func TestCartService_AddItem_RejectsOutOfStockProduct(t *testing.T) {
	service, _, catalog := newCartServiceFixture(t)
	ctx := context.Background()

	product := testProduct()
	product.InStock = false
	catalog.EXPECT().GetProduct(ctx, "prod-a").Return(product, nil)

	out, err := service.AddItem(ctx, "sess-1", &usecase.AddItemInput{ProductID: "prod-a", Quantity: 1})

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProductUnavailable.ErrorCode(), appErr.ErrorCode())
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	service, _, catalog := newCartServiceFixture(t)
	ctx := context.Background()

	catalog.EXPECT().GetProduct(ctx, "missing").Return(nil, domainerrors.ErrProductNotFound)

	out, err := service.AddItem(ctx, "sess-1", &usecase.AddItemInput{ProductID: "missing", Quantity: 1})

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProductNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestCartService_UpdateItemQuantity_ZeroRemovesLine(t *testing.T) {
	service, cartRepo, _ := newCartServiceFixture(t)
	ctx := context.Background()

	cart := entity.NewCart()
	_, err := cart.Add(*testProduct(), 2)
	require.NoError(t, err)

	cartRepo.EXPECT().Find(ctx, "sess-1").Return(cart, nil)
	cartRepo.EXPECT().Save(ctx, "sess-1", mock.AnythingOfType("*entity.Cart")).Return(nil)

	out, err := service.UpdateItemQuantity(ctx, "sess-1", "prod-a", 0)

	require.NoError(t, err)
	assert.Empty(t, out.Cart.Items)
	assert.Zero(t, out.ItemCount)
}

func TestCartService_UpdateItemQuantity_RejectsNegative(t *testing.T) {
	service, cartRepo, _ := newCartServiceFixture(t)
	ctx := context.Background()

	cartRepo.EXPECT().Find(ctx, "sess-1").Return(entity.NewCart(), nil)

	out, err := service.UpdateItemQuantity(ctx, "sess-1", "prod-a", -2)

	require.Error(t, err)
	assert.Nil(t, out)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_QUANTITY", appErr.ErrorCode())
}

func TestCartService_UpdateItemQuantity_UnknownProductIsNoop(t *testing.T) {
	service, cartRepo, _ := newCartServiceFixture(t)
	ctx := context.Background()

	cart := entity.NewCart()
	_, err := cart.Add(*testProduct(), 2)
	require.NoError(t, err)

	cartRepo.EXPECT().Find(ctx, "sess-1").Return(cart, nil)
	cartRepo.EXPECT().Save(ctx, "sess-1", mock.AnythingOfType("*entity.Cart")).Return(nil)

	out, err := service.UpdateItemQuantity(ctx, "sess-1", "unknown", 5)

	require.NoError(t, err)
	require.Len(t, out.Cart.Items, 1)
	assert.Equal(t, 2, out.Cart.Items[0].Quantity)
}

func TestCartService_RemoveItem_Idempotent(t *testing.T) {
	service, cartRepo, _ := newCartServiceFixture(t)
	ctx := context.Background()

	cartRepo.EXPECT().Find(ctx, "sess-1").Return(entity.NewCart(), nil)
	cartRepo.EXPECT().Save(ctx, "sess-1", mock.AnythingOfType("*entity.Cart")).Return(nil)

	out, err := service.RemoveItem(ctx, "sess-1", "prod-a")

	require.NoError(t, err)
	assert.Empty(t, out.Cart.Items)
}

func TestCartService_GetCart_ComputesSummary(t *testing.T) {
	service, cartRepo, _ := newCartServiceFixture(t)
	ctx := context.Background()

	cart := entity.NewCart()
	_, err := cart.Add(*testProduct(), 2)
	require.NoError(t, err)

	cartRepo.EXPECT().Find(ctx, "sess-1").Return(cart, nil)

	out, err := service.GetCart(ctx, "sess-1")

	require.NoError(t, err)
	assert.InDelta(t, 120.0, out.Summary.Subtotal, 1e-9)
	assert.InDelta(t, 0.0, out.Summary.Shipping, 1e-9)
	assert.InDelta(t, 9.6, out.Summary.Tax, 1e-9)
	assert.InDelta(t, 129.6, out.Summary.Total, 1e-9)
	assert.Equal(t, 2, out.ItemCount)
}
