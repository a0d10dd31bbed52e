package parcelrepo_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"agencysim/internal/adapters/out/memory/parcelrepo"
	"agencysim/internal/core/domain/model/kernel"
	"agencysim/internal/core/domain/model/parcel"
	"agencysim/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredParcel(t *testing.T, repo *parcelrepo.Repository, orderID string) *parcel.Parcel {
	t.Helper()
	customer, err := parcel.NewCustomer("Amine B", "0550123456", "12 Rue Didouche Mourad")
	require.NoError(t, err)

	p, err := parcel.NewParcel(
		repo.NextTrackingNumber(), orderID, customer,
		parcel.NewDestination("", ""), nil, 1000, "",
	)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), p))
	return p
}

func TestRepository_NextTrackingNumber(t *testing.T) {
	t.Run("monotonic_with_fixed_prefix", func(t *testing.T) {
		repo := parcelrepo.NewRepository()

		assert.Equal(t, "TRK-00000001", repo.NextTrackingNumber().String())
		assert.Equal(t, "TRK-00000002", repo.NextTrackingNumber().String())
		assert.Equal(t, "TRK-00000003", repo.NextTrackingNumber().String())
	})

	t.Run("unique_under_concurrency", func(t *testing.T) {
		repo := parcelrepo.NewRepository()

		const goroutines = 20
		const perGoroutine = 50

		var mu sync.Mutex
		seen := make(map[string]struct{})
		var wg sync.WaitGroup
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < perGoroutine; j++ {
					tn := repo.NextTrackingNumber().String()
					mu.Lock()
					seen[tn] = struct{}{}
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Len(t, seen, goroutines*perGoroutine)
	})
}

func TestRepository_AddAndGet(t *testing.T) {
	repo := parcelrepo.NewRepository()
	stored := newStoredParcel(t, repo, "ORD1")

	got, err := repo.Get(context.Background(), stored.TrackingNumber())
	require.NoError(t, err)
	assert.True(t, got.IsEqual(stored))
	assert.Equal(t, "ORD1", got.OrderID())
	assert.Equal(t, parcel.StatusPendingPickup, got.Status())
}

func TestRepository_Add_DuplicateTrackingNumber(t *testing.T) {
	repo := parcelrepo.NewRepository()
	stored := newStoredParcel(t, repo, "ORD1")

	err := repo.Add(context.Background(), stored)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRepository_Get_Unknown(t *testing.T) {
	repo := parcelrepo.NewRepository()

	_, err := repo.Get(context.Background(), kernel.NewTrackingNumber(99))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_Update(t *testing.T) {
	t.Run("persists_mutations", func(t *testing.T) {
		repo := parcelrepo.NewRepository()
		stored := newStoredParcel(t, repo, "ORD1")

		require.NoError(t, stored.ApplyStatus(parcel.StatusCollected, ""))
		require.NoError(t, repo.Update(context.Background(), stored))

		got, err := repo.Get(context.Background(), stored.TrackingNumber())
		require.NoError(t, err)
		assert.Equal(t, parcel.StatusCollected, got.Status())
		assert.Len(t, got.StatusHistory(), 2)
	})

	t.Run("unknown_tracking_number", func(t *testing.T) {
		repo := parcelrepo.NewRepository()
		other := parcelrepo.NewRepository()
		orphan := newStoredParcel(t, other, "ORD1")

		err := repo.Update(context.Background(), orphan)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestRepository_Get_ReturnsIsolatedClone(t *testing.T) {
	repo := parcelrepo.NewRepository()
	stored := newStoredParcel(t, repo, "ORD1")

	got, err := repo.Get(context.Background(), stored.TrackingNumber())
	require.NoError(t, err)
	require.NoError(t, got.ApplyStatus(parcel.StatusCancelled, ""))

	// The store must not see the mutation until Update is called.
	fresh, err := repo.Get(context.Background(), stored.TrackingNumber())
	require.NoError(t, err)
	assert.Equal(t, parcel.StatusPendingPickup, fresh.Status())
	assert.Len(t, fresh.StatusHistory(), 1)
}

func TestRepository_GetAll(t *testing.T) {
	t.Run("empty_store", func(t *testing.T) {
		repo := parcelrepo.NewRepository()
		all, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("stable_order_by_tracking_number", func(t *testing.T) {
		repo := parcelrepo.NewRepository()
		for i := 0; i < 5; i++ {
			newStoredParcel(t, repo, fmt.Sprintf("ORD%d", i+1))
		}

		all, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 5)
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].TrackingNumber().String(), all[i].TrackingNumber().String())
		}
	})
}
