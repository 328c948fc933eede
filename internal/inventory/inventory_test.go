package inventory

import (
	"fmt"
	"sync"
	"testing"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
	"car-auction/utils"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

// Helper to build a valid sedan spec
func sedanSpec(manufacturer, carModel string, year int, startBid float64, ownerID int) model.CarSpec {
	return model.CarSpec{
		Type:         model.TypeSedan,
		Manufacturer: manufacturer,
		Model:        carModel,
		Year:         year,
		StartBid:     startBid,
		OwnerID:      ownerID,
		NumDoors:     intPtr(4),
	}
}

// Test Add
func TestStore_Add(t *testing.T) {
	t.Parallel()

	store := NewStore(utils.NewSequence(1))

	first, err := store.Add(sedanSpec("Audi", "A4", 2019, 9000, 1))
	require.NoError(t, err)
	require.Equal(t, 1, first.ID)
	require.Equal(t, model.StatusAvailable, first.Status())

	second, err := store.Add(sedanSpec("BMW", "320i", 2020, 12000, 2))
	require.NoError(t, err)
	require.Equal(t, 2, second.ID)

	// invalid spec is rejected before any insert
	_, err = store.Add(model.CarSpec{Type: model.TypeTruck, Manufacturer: "Scania", Model: "R450", Year: 2021, StartBid: 40000, OwnerID: 1})
	require.ErrorIs(t, err, auctionerrors.ErrInvalidCar)
}

// Test GetAvailable / GetOnAuction: missing car and wrong state are distinct
// error kinds.
func TestStore_GetByState(t *testing.T) {
	t.Parallel()

	store := NewStore(utils.NewSequence(1))
	car, err := store.Add(sedanSpec("Audi", "A4", 2019, 9000, 1))
	require.NoError(t, err)

	tests := []struct {
		name          string
		status        model.CarStatus
		carID         int
		get           func(carID int) (*model.Car, error)
		expectedError error
	}{
		{name: "available_ok", status: model.StatusAvailable, carID: car.ID, get: store.GetAvailable},
		{name: "available_wrong_state", status: model.StatusOnAuction, carID: car.ID, get: store.GetAvailable, expectedError: auctionerrors.ErrCarNotAvailable},
		{name: "available_sold", status: model.StatusSold, carID: car.ID, get: store.GetAvailable, expectedError: auctionerrors.ErrCarNotAvailable},
		{name: "available_missing", carID: 999, get: store.GetAvailable, expectedError: auctionerrors.ErrCarNotFound},
		{name: "on_auction_ok", status: model.StatusOnAuction, carID: car.ID, get: store.GetOnAuction},
		{name: "on_auction_wrong_state", status: model.StatusAvailable, carID: car.ID, get: store.GetOnAuction, expectedError: auctionerrors.ErrCarNotOnAuction},
		{name: "on_auction_missing", carID: 999, get: store.GetOnAuction, expectedError: auctionerrors.ErrCarNotFound},
	}

	// the table is exercised sequentially because all cases share one car
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			switch tc.status {
			case model.StatusAvailable:
				require.NoError(t, store.MarkAvailable(car.ID))
			case model.StatusOnAuction:
				require.NoError(t, store.MarkOnAuction(car.ID))
			case model.StatusSold:
				require.NoError(t, store.MarkSold(car.ID))
			}

			got, err := tc.get(tc.carID)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.carID, got.ID)
		})
	}
}

// Test Mark* against a missing car.
func TestStore_MarkMissingCar(t *testing.T) {
	t.Parallel()

	store := NewStore(utils.NewSequence(1))

	require.ErrorIs(t, store.MarkAvailable(42), auctionerrors.ErrCarNotFound)
	require.ErrorIs(t, store.MarkOnAuction(42), auctionerrors.ErrCarNotFound)
	require.ErrorIs(t, store.MarkSold(42), auctionerrors.ErrCarNotFound)
}

// Test Search
func TestStore_Search(t *testing.T) {
	t.Parallel()

	store := NewStore(utils.NewSequence(1))

	_, err := store.Add(sedanSpec("Audi", "A4", 2019, 9000, 1))
	require.NoError(t, err)
	_, err = store.Add(sedanSpec("Audi", "A6", 2021, 15000, 1))
	require.NoError(t, err)
	seats := 7
	suv, err := store.Add(model.CarSpec{Type: model.TypeSUV, Manufacturer: "Kia", Model: "Sorento", Year: 2021, StartBid: 20000, OwnerID: 2, NumSeats: &seats})
	require.NoError(t, err)

	require.NoError(t, store.MarkSold(suv.ID))

	sedanType := model.TypeSedan
	sold := model.StatusSold
	year := 2021

	tests := []struct {
		name        string
		filter      Filter
		expectedIDs []int
	}{
		{name: "no_filter", filter: Filter{}, expectedIDs: []int{1, 2, 3}},
		{name: "by_type", filter: Filter{Type: &sedanType}, expectedIDs: []int{1, 2}},
		{name: "by_status", filter: Filter{Status: &sold}, expectedIDs: []int{3}},
		{name: "by_manufacturer_case_insensitive", filter: Filter{Manufacturer: "audi"}, expectedIDs: []int{1, 2}},
		{name: "by_model", filter: Filter{Model: "a4"}, expectedIDs: []int{1}},
		{name: "by_year", filter: Filter{Year: &year}, expectedIDs: []int{2, 3}},
		{name: "combined", filter: Filter{Type: &sedanType, Year: &year}, expectedIDs: []int{2}},
		{name: "no_match", filter: Filter{Manufacturer: "Tesla"}, expectedIDs: []int{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			results := store.Search(tc.filter)
			ids := []int{}
			for _, snap := range results {
				ids = append(ids, snap.ID)
			}
			require.Equal(t, tc.expectedIDs, ids)
		})
	}
}

// concurrency test: parallel adds get unique monotonic ids.
func TestStore_ConcurrentAdd(t *testing.T) {
	t.Parallel()

	store := NewStore(utils.NewSequence(1))

	const count = 50
	var wg sync.WaitGroup
	ids := make(chan int, count)
	for i := 0; i < count; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			car, err := store.Add(sedanSpec("Make", fmt.Sprintf("Model-%d", i), 2020, 100, 1))
			require.NoError(t, err)
			ids <- car.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, count)
	require.Len(t, store.Search(Filter{}), count)
}
