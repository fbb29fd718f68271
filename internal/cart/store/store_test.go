package store

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/agri-storefront/internal/cart/domain"
	catalog "github.com/ridloal/agri-storefront/internal/catalog/domain"
	catalogRepo "github.com/ridloal/agri-storefront/internal/catalog/repository"
)

func product(id int, price int64) catalog.Product {
	return catalog.Product{
		ID:       id,
		Title:    "Product",
		Price:    decimal.NewFromInt(price),
		Currency: "USD",
		ImageURL: "https://example.com/p.jpg",
	}
}

func TestStore_AddToCart(t *testing.T) {
	t.Run("First add yields one line with quantity 1", func(t *testing.T) {
		s := New("USD")
		s.AddToCart(product(1, 299))

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].ID)
		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, "$299", items[0].DisplayPrice())
	})

	t.Run("Adding the same product again increments quantity", func(t *testing.T) {
		s := New("USD")
		s.AddToCart(product(1, 299))
		s.AddToCart(product(1, 299))

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("Quantity equals number of adds", func(t *testing.T) {
		for n := 1; n <= 25; n++ {
			s := New("USD")
			for i := 0; i < n; i++ {
				s.AddToCart(product(7, 10))
			}
			items := s.Items()
			require.Len(t, items, 1)
			assert.Equal(t, n, items[0].Quantity)
		}
	})

	t.Run("Lines keep insertion order", func(t *testing.T) {
		s := New("USD")
		s.AddToCart(product(3, 399))
		s.AddToCart(product(1, 299))
		s.AddToCart(product(3, 399))
		s.AddToCart(product(2, 499))

		items := s.Items()
		require.Len(t, items, 3)
		assert.Equal(t, []int{3, 1, 2}, []int{items[0].ID, items[1].ID, items[2].ID})
		assert.Equal(t, 2, items[0].Quantity)
	})
}

func TestStore_RemoveFromCart(t *testing.T) {
	t.Run("Removes only the given id", func(t *testing.T) {
		s := New("USD")
		s.AddToCart(product(1, 299))
		s.AddToCart(product(2, 499))

		s.RemoveFromCart(1)

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].ID)
	})

	t.Run("Removes the whole line, not one unit", func(t *testing.T) {
		s := New("USD")
		s.AddToCart(product(1, 299))
		s.AddToCart(product(1, 299))

		s.RemoveFromCart(1)

		assert.Empty(t, s.Items())
	})

	t.Run("Empty cart is unchanged", func(t *testing.T) {
		s := New("USD")
		before := s.Snapshot()

		s.RemoveFromCart(1)

		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("Absent id is unchanged", func(t *testing.T) {
		s := New("USD")
		s.AddToCart(product(1, 299))
		before := s.Snapshot()

		s.RemoveFromCart(99)
		s.RemoveFromCart(99)

		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("Index stays consistent after removing from the middle", func(t *testing.T) {
		s := New("USD")
		s.AddToCart(product(1, 1))
		s.AddToCart(product(2, 2))
		s.AddToCart(product(3, 3))

		s.RemoveFromCart(2)
		s.AddToCart(product(3, 3))
		s.RemoveFromCart(1)

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].ID)
		assert.Equal(t, 2, items[0].Quantity)
	})
}

func TestStore_AddThenRemoveRoundTrip(t *testing.T) {
	s := New("USD")
	s.AddToCart(product(1, 299))
	s.AddToCart(product(2, 499))
	before := s.Items()
	beforeTotal := s.Total()

	s.AddToCart(product(3, 399))
	s.RemoveFromCart(3)

	assert.Equal(t, before, s.Items())
	assert.Equal(t, beforeTotal, s.Total())
}

func TestStore_Total(t *testing.T) {
	t.Run("Empty cart", func(t *testing.T) {
		s := New("USD")
		assert.Equal(t, "$0", s.Total())
		assert.True(t, s.TotalAmount().IsZero())
	})

	t.Run("Sum of price times quantity", func(t *testing.T) {
		s := New("USD")
		s.AddToCart(product(1, 299))
		s.AddToCart(product(1, 299))
		s.AddToCart(product(2, 499))

		assert.Equal(t, "$1097", s.Total())
		assert.True(t, decimal.NewFromInt(1097).Equal(s.TotalAmount()))
	})

	t.Run("Fractional prices", func(t *testing.T) {
		s := New("USD")
		p := product(1, 0)
		p.Price = decimal.RequireFromString("19.99")
		s.AddToCart(p)
		s.AddToCart(p)
		s.AddToCart(p)

		assert.Equal(t, "$59.97", s.Total())
	})

	t.Run("Adding never decreases the total", func(t *testing.T) {
		s := New("USD")
		prices := []int64{0, 299, 0, 15, 499, 299}
		prev := s.TotalAmount()
		for i, price := range prices {
			s.AddToCart(product(i%3+1, price))
			cur := s.TotalAmount()
			assert.True(t, cur.GreaterThanOrEqual(prev), "total went from %s to %s", prev, cur)
			prev = cur
		}
	})

	t.Run("Total matches items after every mutation", func(t *testing.T) {
		s := New("USD")
		ops := []func(){
			func() { s.AddToCart(product(1, 299)) },
			func() { s.AddToCart(product(2, 499)) },
			func() { s.AddToCart(product(1, 299)) },
			func() { s.RemoveFromCart(2) },
			func() { s.RemoveFromCart(5) },
			func() { s.AddToCart(product(3, 399)) },
			func() { s.RemoveFromCart(1) },
		}
		for _, op := range ops {
			op()
			want := decimal.Zero
			for _, item := range s.Items() {
				want = want.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			}
			assert.True(t, want.Equal(s.TotalAmount()))
		}
	})
}

func TestStore_Snapshot(t *testing.T) {
	s := New("USD")
	assert.True(t, s.Snapshot().IsEmpty())

	s.AddToCart(product(1, 299))
	s.AddToCart(product(1, 299))
	s.AddToCart(product(2, 499))

	snap := s.Snapshot()
	assert.Equal(t, 2, snap.Count)
	assert.Equal(t, 3, snap.Units)
	assert.Equal(t, "$1097", snap.Total)
	assert.Equal(t, "USD", snap.Currency)
	assert.Equal(t, uint64(3), snap.Version)

	require.Len(t, snap.Items, 2)
	assert.Equal(t, 1, snap.Items[0].ID)
	assert.Equal(t, 2, snap.Items[0].Quantity)

	snap.Items[0].Quantity = 100
	assert.Equal(t, 2, s.Items()[0].Quantity, "snapshot must not alias store state")
}

func TestStore_Subscribe(t *testing.T) {
	s := New("USD")
	var got []domain.Snapshot
	unsubscribe := s.Subscribe(func(snap domain.Snapshot) {
		got = append(got, snap)
	})

	s.AddToCart(product(1, 299))
	s.RemoveFromCart(42) // no-op, no notification
	s.AddToCart(product(2, 499))
	s.RemoveFromCart(1)

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, "$299", got[0].Total)
	assert.Equal(t, "$798", got[1].Total)
	assert.Equal(t, "$499", got[2].Total)
	assert.Equal(t, uint64(3), got[2].Version)

	unsubscribe()
	unsubscribe()
	s.AddToCart(product(3, 399))
	assert.Len(t, got, 3)
}

func TestStore_ListenerMayReadStore(t *testing.T) {
	s := New("USD")
	var seen string
	s.Subscribe(func(domain.Snapshot) {
		seen = s.Total()
	})

	s.AddToCart(product(1, 299))

	assert.Equal(t, "$299", seen)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	s := New("USD")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AddToCart(product(i%5+1, 10))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, s.Len())
	assert.Equal(t, "$500", s.Total())
	assert.Equal(t, uint64(50), s.Snapshot().Version)
}

func TestStore_MutatorsReturnOwnSnapshot(t *testing.T) {
	s := New("USD")

	added := s.AddToCart(product(1, 299))
	assert.Equal(t, uint64(1), added.Version)
	assert.Equal(t, "$299", added.Total)

	s.AddToCart(product(2, 499))
	removed := s.RemoveFromCart(1)
	assert.Equal(t, uint64(3), removed.Version)
	require.Len(t, removed.Items, 1)
	assert.Equal(t, 2, removed.Items[0].ID)

	noop := s.RemoveFromCart(1)
	assert.Equal(t, removed.Version, noop.Version)
	assert.Equal(t, removed.Total, noop.Total)
}

func TestStore_TotalMatchesCatalogCurrency(t *testing.T) {
	// CATALOG_CURRENCY=EUR against a catalog file that declares USD.
	cat, err := catalogRepo.LoadCatalogFile("", "EUR")
	require.NoError(t, err)
	require.Equal(t, "USD", cat.Currency)

	s := New(cat.Currency)
	assert.Equal(t, cat.Currency, s.Currency())
	snap := s.AddToCart(cat.Products[0])

	assert.Equal(t, cat.Products[0].DisplayPrice(), snap.Total)
	assert.Equal(t, "$299", snap.Total)
	for _, item := range snap.Items {
		assert.Equal(t, snap.Currency, item.Currency)
	}
}
