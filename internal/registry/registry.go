package registry

import (
	"fmt"
	"sync"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
)

// Registry is a concurrency-safe map of car id to its auction. Closed auctions
// stay in the map so their history remains readable; the "one active auction
// per car" invariant is enforced entirely by TryInsert.
type Registry struct {
	auctions sync.Map // key: carID -> value: *model.Auction
}

// NewRegistry creates an empty auction registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// TryInsert installs the auction for its car as a single atomic check-and-set.
// It returns false, not an error, when an open auction already occupies the
// slot. A closed auction left over from an earlier listing is replaced.
func (r *Registry) TryInsert(carID int, auction *model.Auction) bool {
	for {
		existing, loaded := r.auctions.LoadOrStore(carID, auction)
		if !loaded {
			return true
		}
		if existing.(*model.Auction).IsOpen() {
			return false
		}
		// Slot holds a closed auction; swap it out. A concurrent winner makes
		// the CAS fail, in which case we re-examine the new occupant.
		if r.auctions.CompareAndSwap(carID, existing, auction) {
			return true
		}
	}
}

// Get returns the auction for a car, open or closed.
func (r *Registry) Get(carID int) (*model.Auction, error) {
	v, ok := r.auctions.Load(carID)
	if !ok {
		return nil, fmt.Errorf("auction for car %d: %w", carID, auctionerrors.ErrAuctionNotFound)
	}
	return v.(*model.Auction), nil
}

// Remove drops the auction for a car. Used by the create-auction rollback.
func (r *Registry) Remove(carID int) {
	r.auctions.Delete(carID)
}
