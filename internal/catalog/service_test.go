package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pharmastock/pharmastock/internal/store"
)

func TestCreateAssignsIdentityAndDefaults(t *testing.T) {
	st := store.New()
	now := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
	st.WithNow(func() time.Time { return now })
	svc := NewService(st)
	ctx := context.Background()

	product, err := svc.Create(ctx, CreateProductInput{
		Name:          "Ibuprofen",
		Strength:      "400mg",
		DosageForm:    store.DosageFormTablet,
		Category:      store.CategoryAnalgesic,
		UnitPrice:     2.00,
		MinStockLevel: 100,
	})
	require.NoError(t, err)
	require.Equal(t, "p1", product.ID)
	require.True(t, product.IsActive)
	require.Equal(t, now, product.CreatedAt)

	second, err := svc.Create(ctx, CreateProductInput{
		Name:       "Cetirizine",
		DosageForm: store.DosageFormTablet,
		Category:   store.CategoryAntihistamine,
	})
	require.NoError(t, err)
	require.Equal(t, "p2", second.ID)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(store.New())
	ctx := context.Background()

	base := CreateProductInput{
		Name:       "Ibuprofen",
		DosageForm: store.DosageFormTablet,
		Category:   store.CategoryAnalgesic,
	}

	cases := []struct {
		name    string
		mutate  func(*CreateProductInput)
		wantErr error
	}{
		{"missing name", func(in *CreateProductInput) { in.Name = "" }, ErrNameRequired},
		{"unknown category", func(in *CreateProductInput) { in.Category = "Homeopathic" }, ErrInvalidCategory},
		{"unknown dosage form", func(in *CreateProductInput) { in.DosageForm = "Patch" }, ErrInvalidDosageForm},
		{"negative price", func(in *CreateProductInput) { in.UnitPrice = -0.01 }, ErrNegativeUnitPrice},
		{"negative min stock", func(in *CreateProductInput) { in.MinStockLevel = -1 }, ErrNegativeMinStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := base
			tc.mutate(&input)
			_, err := svc.Create(ctx, input)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	products, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, products)
}

func TestGetUnknownProduct(t *testing.T) {
	svc := NewService(store.New())
	_, err := svc.Get(context.Background(), "p99")
	require.ErrorIs(t, err, ErrProductNotFound)
}
