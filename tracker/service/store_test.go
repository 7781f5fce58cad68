package tracker

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hearthbot/hearth/tracker/service/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredBill(t *testing.T, id, name string) *domain.Bill {
	t.Helper()
	bill, err := domain.NewBill(id, name, "10", time.Date(2025, time.January, 31, 23, 45, 0, 0, time.UTC))
	require.NoError(t, err)
	return bill
}

func TestMemoryStoreInsertAndFind(t *testing.T) {
	store := NewMemoryStore()
	store.Insert(newStoredBill(t, "m1", "Electricity"))

	bill, ok := store.Find("m1")
	assert.True(t, ok)
	assert.Equal(t, "Electricity", bill.Name)

	_, ok = store.Find("missing")
	assert.False(t, ok)
}

func TestMemoryStoreAllPreservesInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	store.Insert(newStoredBill(t, "m3", "Water"))
	store.Insert(newStoredBill(t, "m1", "Electricity"))
	store.Insert(newStoredBill(t, "m2", "Internet"))

	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, "m3", all[0].ID)
	assert.Equal(t, "m1", all[1].ID)
	assert.Equal(t, "m2", all[2].ID)
}

func TestMemoryStoreMarkPaid(t *testing.T) {
	store := NewMemoryStore()
	store.Insert(newStoredBill(t, "m1", "Electricity"))

	paid, ok := store.MarkPaid("m1")
	assert.True(t, ok)
	assert.True(t, paid.Paid)

	// The flag never transitions back.
	again, ok := store.MarkPaid("m1")
	assert.True(t, ok)
	assert.True(t, again.Paid)

	_, ok = store.MarkPaid("missing")
	assert.False(t, ok)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	store.Insert(newStoredBill(t, "m1", "Electricity"))

	bill, _ := store.Find("m1")
	bill.Paid = true

	stored, _ := store.Find("m1")
	assert.False(t, stored.Paid)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("m%d", n)
			bill, _ := domain.NewBill(id, "Bill", "10", time.Date(2025, time.January, 31, 23, 45, 0, 0, time.UTC))
			store.Insert(bill)
			store.MarkPaid(id)
			store.All()
		}(i)
	}
	wg.Wait()

	all := store.All()
	assert.Len(t, all, 50)
	for _, bill := range all {
		assert.True(t, bill.Paid)
	}
}
