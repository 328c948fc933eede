package auction

import (
	"fmt"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/inventory"
	model "car-auction/internal/models"
	"car-auction/internal/registry"
	"car-auction/utils"
)

// AuctionService coordinates the inventory store and the auction registry. It
// owns no record state itself; it validates cross-entity invariants, mutates
// both stores in a fixed order and compensates already-applied steps when a
// later step fails.
type AuctionService struct {
	inventory inventory.CarStore
	auctions  *registry.Registry
	ids       *utils.Sequence
}

// NewAuctionService creates a coordinator over the given stores, drawing
// auction ids from the given sequence.
func NewAuctionService(inv inventory.CarStore, auctions *registry.Registry, ids *utils.Sequence) *AuctionService {
	return &AuctionService{
		inventory: inv,
		auctions:  auctions,
		ids:       ids,
	}
}

// CreateAuction opens an auction for an available car. Only the car's owner
// may start it. The registry insert is the commit point: until it succeeds
// nothing has mutated, and if the inventory mark after it fails the insert is
// undone so both stores stay consistent.
func (s *AuctionService) CreateAuction(carID, userID int) error {
	car, err := s.inventory.GetAvailable(carID)
	if err != nil {
		return fmt.Errorf("service: create auction for car %d: %w", carID, err)
	}
	if car.OwnerID != userID {
		return fmt.Errorf("service: create auction for car %d: %w", carID, auctionerrors.ErrUnauthorized)
	}

	auction := model.NewAuction(s.ids.Next(), carID, car.StartBid, userID)
	if !s.auctions.TryInsert(carID, auction) {
		return fmt.Errorf("service: create auction for car %d: %w", carID, auctionerrors.ErrAuctionAlreadyExists)
	}

	if err := s.inventory.MarkOnAuction(carID); err != nil {
		// Compensating rollback: drop the just-inserted auction and restore
		// the car before surfacing the failure.
		s.auctions.Remove(carID)
		if markErr := s.inventory.MarkAvailable(carID); markErr != nil {
			utils.Error("create auction rollback: restore car failed", map[string]any{
				"car_id": carID,
				"error":  markErr.Error(),
			})
		}
		utils.Error("create auction rolled back", map[string]any{
			"car_id":  carID,
			"user_id": userID,
			"error":   err.Error(),
		})
		return fmt.Errorf("service: create auction for car %d: %w: %w", carID, auctionerrors.ErrInternal, err)
	}

	return nil
}

// PlaceBid validates and records a bid on the car's auction. The bid mutation
// itself is atomic inside the auction record, so no rollback is needed here.
func (s *AuctionService) PlaceBid(carID, userID int, amount float64) (model.Bid, error) {
	auction, err := s.auctions.Get(carID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: place bid on car %d: %w", carID, err)
	}
	if !auction.IsOpen() {
		return model.Bid{}, fmt.Errorf("service: place bid on car %d: %w", carID, auctionerrors.ErrAuctionClosed)
	}

	// Consistency check: an open auction's car must be OnAuction.
	if _, err := s.inventory.GetOnAuction(carID); err != nil {
		return model.Bid{}, fmt.Errorf("service: place bid on car %d: %w", carID, err)
	}

	bid, err := auction.MakeBid(userID, amount)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: place bid on car %d: %w", carID, err)
	}
	return bid, nil
}

// CloseAuction ends the auction: the car is marked Sold or returned to
// Available depending on wasSold, then the auction is flagged closed. Only the
// starter may close. If flagging the auction fails the inventory change is
// reversed and the auction reopened, restoring the exact pre-call state.
func (s *AuctionService) CloseAuction(carID, userID int, wasSold bool) error {
	auction, err := s.auctions.Get(carID)
	if err != nil {
		return fmt.Errorf("service: close auction for car %d: %w", carID, err)
	}

	// Covers the already-closed case too: a closed auction's car is no longer
	// OnAuction.
	if _, err := s.inventory.GetOnAuction(carID); err != nil {
		return fmt.Errorf("service: close auction for car %d: %w", carID, err)
	}

	if auction.StarterID != userID {
		return fmt.Errorf("service: close auction for car %d: %w", carID, auctionerrors.ErrUnauthorized)
	}

	if wasSold {
		err = s.inventory.MarkSold(carID)
	} else {
		err = s.inventory.MarkAvailable(carID)
	}
	if err != nil {
		// No mutation happened, nothing to compensate.
		return fmt.Errorf("service: close auction for car %d: %w: %w", carID, auctionerrors.ErrInternal, err)
	}

	if err := auction.Close(); err != nil {
		// Compensating rollback: undo the status change and reopen.
		if markErr := s.inventory.MarkOnAuction(carID); markErr != nil {
			utils.Error("close auction rollback: restore car failed", map[string]any{
				"car_id": carID,
				"error":  markErr.Error(),
			})
		}
		auction.Reopen()
		utils.Error("close auction rolled back", map[string]any{
			"car_id":   carID,
			"user_id":  userID,
			"was_sold": wasSold,
			"error":    err.Error(),
		})
		return fmt.Errorf("service: close auction for car %d: %w: %w", carID, auctionerrors.ErrInternal, err)
	}

	return nil
}

// GetAuction returns a read-only snapshot of the car's auction, open or
// closed.
func (s *AuctionService) GetAuction(carID int) (model.AuctionSnapshot, error) {
	auction, err := s.auctions.Get(carID)
	if err != nil {
		return model.AuctionSnapshot{}, fmt.Errorf("service: get auction for car %d: %w", carID, err)
	}
	return auction.Snapshot(), nil
}
