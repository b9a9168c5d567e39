package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageValidate(t *testing.T) {
	t.Run("DefaultsApplied", func(t *testing.T) {
		p := Page{}
		require.NoError(t, p.Validate())
		require.Equal(t, int64(0), p.Skip)
		require.Equal(t, int64(DefaultLimit), p.Limit)
		require.Equal(t, "created_at", p.SortBy)
		require.Equal(t, SortDesc, p.SortOrder)
	})

	t.Run("LimitClampedToMax", func(t *testing.T) {
		p := Page{Limit: 5000}
		require.NoError(t, p.Validate())
		require.Equal(t, int64(MaxLimit), p.Limit)
	})

	t.Run("ExplicitSortKept", func(t *testing.T) {
		p := Page{SortBy: "price", SortOrder: SortAsc}
		require.NoError(t, p.Validate())
		require.Equal(t, "price", p.SortBy)
		require.Equal(t, SortAsc, p.SortOrder)
	})

	t.Run("BogusSortOrderFallsBackToDesc", func(t *testing.T) {
		p := Page{SortOrder: 7}
		require.NoError(t, p.Validate())
		require.Equal(t, SortDesc, p.SortOrder)
	})

	t.Run("NegativeSkipRejected", func(t *testing.T) {
		p := Page{Skip: -1}
		require.ErrorIs(t, p.Validate(), ErrInvalidFilter)
	})

	t.Run("NegativeLimitRejected", func(t *testing.T) {
		p := Page{Limit: -10}
		require.ErrorIs(t, p.Validate(), ErrInvalidFilter)
	})
}
