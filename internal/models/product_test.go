package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func validCreate() ProductCreate {
	return ProductCreate{
		SKU:              "GCG-AV-001",
		Name:             "Milano Aviator",
		Collection:       "Signature",
		Price:            850,
		Gender:           GenderUnisex,
		Type:             TypeSunglasses,
		FrameColor:       "Gold",
		LensColor:        "Brown Gradient",
		Materials:        "Italian Acetate",
		MainImage:        "/uploads/products/milano.jpg",
		ShortDescription: "Timeless aviator design",
	}
}

func TestNewProduct(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("IsOnSaleDerivedFromOriginalPrice", func(t *testing.T) {
		in := validCreate()
		p := in.NewProduct("id-1", now)
		require.False(t, p.IsOnSale)

		in.OriginalPrice = f64Ptr(1100)
		p = in.NewProduct("id-2", now)
		require.True(t, p.IsOnSale)
	})

	t.Run("DefaultsApplied", func(t *testing.T) {
		p := validCreate().NewProduct("id-1", now)
		require.Equal(t, "Italy", p.MadeIn)
		require.Equal(t, StatusActive, p.Status)
		require.NotNil(t, p.GalleryImages)
		require.NotNil(t, p.Tags)
		require.Equal(t, now, p.CreatedAt)
		require.Equal(t, now, p.UpdatedAt)
	})

	t.Run("ExplicitValuesKept", func(t *testing.T) {
		in := validCreate()
		in.MadeIn = "Japan"
		in.Status = StatusScheduled
		p := in.NewProduct("id-1", now)
		require.Equal(t, "Japan", p.MadeIn)
		require.Equal(t, StatusScheduled, p.Status)
	})
}

func TestProductCreateValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		require.NoError(t, validCreate().Validate())
	})

	t.Run("UnknownGender", func(t *testing.T) {
		in := validCreate()
		in.Gender = "Everyone"
		var enumErr *ErrInvalidEnum
		require.ErrorAs(t, in.Validate(), &enumErr)
		require.Equal(t, "gender", enumErr.Field)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		in := validCreate()
		in.Status = "paused"
		require.Error(t, in.Validate())
	})
}

func TestProductUpdateSetDocument(t *testing.T) {
	t.Run("AbsentFieldsEmitNothing", func(t *testing.T) {
		require.Empty(t, ProductUpdate{}.SetDocument())
	})

	t.Run("OnlyPresentFieldsEmitted", func(t *testing.T) {
		u := ProductUpdate{Name: strPtr("Roma Classic"), Price: f64Ptr(920)}
		set := u.SetDocument()
		require.Equal(t, map[string]interface{}{
			"name":  "Roma Classic",
			"price": 920.0,
		}, set)
	})

	t.Run("OriginalPriceRecomputesIsOnSale", func(t *testing.T) {
		u := ProductUpdate{OriginalPrice: f64Ptr(150)}
		set := u.SetDocument()
		require.Equal(t, 150.0, set["original_price"])
		require.Equal(t, true, set["is_on_sale"])
		// price no se toca si no viene en el update
		require.NotContains(t, set, "price")
	})

	t.Run("SameUpdateTwiceYieldsSameDocument", func(t *testing.T) {
		u := ProductUpdate{Collection: strPtr("Heritage")}
		require.Equal(t, u.SetDocument(), u.SetDocument())
	})

	t.Run("EmptySliceIsAnExplicitValue", func(t *testing.T) {
		u := ProductUpdate{Tags: []string{}}
		set := u.SetDocument()
		require.Contains(t, set, "tags")
		require.Empty(t, set["tags"])
	})
}

func TestProductUpdateValidate(t *testing.T) {
	t.Run("NilFieldsSkipValidation", func(t *testing.T) {
		require.NoError(t, ProductUpdate{}.Validate())
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		u := ProductUpdate{Status: strPtr("archived")}
		require.Error(t, u.Validate())
	})
}

func TestCollectionUpdateSetDocument(t *testing.T) {
	active := false
	order := 3
	u := CollectionUpdate{IsActive: &active, SortOrder: &order}
	set := u.SetDocument()
	require.Equal(t, map[string]interface{}{
		"is_active":  false,
		"sort_order": 3,
	}, set)
}
