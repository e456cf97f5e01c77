package cart_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clothiq/internal/domain"
	"clothiq/internal/state/cart"
)

func product(id int64, price string) domain.Product {
	return domain.Product{
		ID:        domain.ProductID(id),
		Title:     "item " + domain.ProductID(id).String(),
		Thumbnail: "https://cdn.example/" + domain.ProductID(id).String() + ".png",
		Price:     decimal.RequireFromString(price),
	}
}

func ids(items []domain.CartItem) []domain.ProductID {
	out := make([]domain.ProductID, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestAdd_NewProductStartsAtOne(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(product(1, "19.99")))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "item 1", items[0].Title)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("19.99")))
}

func TestAdd_SameIDAccumulates(t *testing.T) {
	c := cart.New()
	const n = 7
	for i := 0; i < n; i++ {
		require.NoError(t, c.Add(product(42, "3.50")))
	}

	require.Equal(t, 1, c.Len())
	it, ok := c.Item(42)
	require.True(t, ok)
	assert.Equal(t, n, it.Quantity)
	assert.Equal(t, n, c.Count())
}

func TestAdd_KeepsFirstPrice(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(product(1, "10.00")))
	require.NoError(t, c.Add(product(1, "99.00")))

	it, _ := c.Item(1)
	assert.Equal(t, 2, it.Quantity)
	assert.Equal(t, "10.00", domain.FormatAmount(it.Price))
}

func TestAdd_DistinctLinesBoundedByDistinctIDs(t *testing.T) {
	c := cart.New()
	seq := []int64{3, 1, 3, 2, 1, 1, 3, 2}
	distinct := map[int64]bool{}
	for _, id := range seq {
		require.NoError(t, c.Add(product(id, "1")))
		distinct[id] = true
		assert.LessOrEqual(t, c.Len(), len(distinct))
	}
	assert.Equal(t, len(seq), c.Count())
}

func TestAdd_RepeatKeepsPosition(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(product(1, "1")))
	require.NoError(t, c.Add(product(2, "1")))
	require.NoError(t, c.Add(product(1, "1")))

	if diff := cmp.Diff([]domain.ProductID{1, 2}, ids(c.Items())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd_RejectsMalformedProduct(t *testing.T) {
	c := cart.New()

	err := c.Add(domain.Product{Title: "no id", Price: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, cart.ErrInvalidProduct)

	err = c.Add(product(5, "-0.01"))
	require.ErrorIs(t, err, cart.ErrInvalidProduct)

	assert.Zero(t, c.Len())
}

func TestRemove_ThenAddResetsQuantity(t *testing.T) {
	c := cart.New()
	for i := 0; i < 3; i++ {
		require.NoError(t, c.Add(product(9, "2")))
	}
	c.Remove(9)
	_, ok := c.Item(9)
	require.False(t, ok)

	require.NoError(t, c.Add(product(9, "2")))
	it, ok := c.Item(9)
	require.True(t, ok)
	assert.Equal(t, 1, it.Quantity)
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(product(1, "1")))
	require.NoError(t, c.Add(product(2, "2")))
	require.NoError(t, c.Add(product(2, "2")))
	before := c.Items()

	c.Remove(404)

	after := c.Items()
	if diff := cmp.Diff(ids(before), ids(after)); diff != "" {
		t.Fatalf("order changed (-before +after):\n%s", diff)
	}
	for i := range before {
		assert.Equal(t, before[i].Quantity, after[i].Quantity)
	}
}

func TestRemove_MiddleLineKeepsOrderAndIndex(t *testing.T) {
	c := cart.New()
	for _, id := range []int64{1, 2, 3, 4} {
		require.NoError(t, c.Add(product(id, "1")))
	}
	c.Remove(2)
	require.NoError(t, c.Add(product(4, "1")))

	if diff := cmp.Diff([]domain.ProductID{1, 3, 4}, ids(c.Items())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	it, _ := c.Item(4)
	assert.Equal(t, 2, it.Quantity)
}

func TestTotal_ExactSumRoundedHalfUp(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(product(1, "19.99")))
	require.NoError(t, c.Add(product(1, "19.99")))
	require.NoError(t, c.Add(product(2, "5.005")))

	assert.True(t, c.Total().Equal(decimal.RequireFromString("44.985")), c.Total().String())
	assert.Equal(t, "44.99", c.TotalPrice())
}

func TestTotal_NoCompoundedRounding(t *testing.T) {
	c := cart.New()
	// Three lines of 0.005 each: per-line rounding would give 0.03,
	// the exact sum 0.015 rounds to 0.02.
	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, c.Add(product(id, "0.005")))
	}
	assert.Equal(t, "0.02", c.TotalPrice())
}

func TestTotal_TracksEveryChange(t *testing.T) {
	c := cart.New()
	assert.Equal(t, "0.00", c.TotalPrice())

	require.NoError(t, c.Add(product(1, "12.50")))
	assert.Equal(t, "12.50", c.TotalPrice())

	require.NoError(t, c.Add(product(1, "12.50")))
	require.NoError(t, c.Add(product(2, "0.99")))
	assert.Equal(t, "25.99", c.TotalPrice())

	c.Remove(1)
	assert.Equal(t, "0.99", c.TotalPrice())
}

func TestItems_ReturnsCopy(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.Add(product(1, "1")))

	items := c.Items()
	items[0].Quantity = 100

	it, _ := c.Item(1)
	assert.Equal(t, 1, it.Quantity)
}
