package models

import (
	"sync"
	"time"

	"car-auction/internal/auctionerrors"
)

// Bid is immutable once created. Ids are monotonic within the owning auction.
type Bid struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Auction is the listing record for one car. Identity and the starting
// conditions are immutable; the active flag, bid history and current high bid
// mutate only under the auction's own lock, so concurrent bids serialize and
// the read-compare-append of MakeBid is atomic as a whole.
type Auction struct {
	ID        int
	CarID     int
	StarterID int
	StartBid  float64
	StartTime time.Time

	mu              sync.Mutex
	active          bool
	currentBid      float64
	currentBidderID int // 0 means no bidder yet
	bids            []Bid
	nextBidID       int
	endTime         time.Time // zero while open
}

// NewAuction builds an open auction with the current bid primed to the
// starting bid and an empty history.
func NewAuction(id, carID int, startBid float64, starterID int) *Auction {
	return &Auction{
		ID:         id,
		CarID:      carID,
		StarterID:  starterID,
		StartBid:   startBid,
		StartTime:  time.Now().UTC(),
		active:     true,
		currentBid: startBid,
		bids:       []Bid{},
		nextBidID:  1,
	}
}

// MakeBid validates and records a bid. Checks run in a fixed order inside the
// critical section: closed auction, self-bid, then the strict-increase rule
// (a tie with the current high bid is rejected).
func (a *Auction) MakeBid(userID int, amount float64) (Bid, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.active {
		return Bid{}, auctionerrors.ErrAuctionClosed
	}
	if userID == a.StarterID {
		return Bid{}, auctionerrors.ErrSelfBid
	}
	if amount <= a.currentBid {
		return Bid{}, auctionerrors.ErrBidTooLow
	}

	bid := Bid{
		ID:        a.nextBidID,
		UserID:    userID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	a.nextBidID++
	a.bids = append(a.bids, bid)
	a.currentBid = amount
	a.currentBidderID = userID

	return bid, nil
}

// Close flags the auction inactive and stamps the end time. It performs no
// validation and always succeeds today; the error return exists so callers
// can keep a compensating path for future fallible implementations.
func (a *Auction) Close() error {
	a.mu.Lock()
	a.active = false
	a.endTime = time.Now().UTC()
	a.mu.Unlock()
	return nil
}

// Reopen reverts a Close: active again, end time cleared. It exists only as a
// rollback step and is never exposed as a user-facing operation.
func (a *Auction) Reopen() {
	a.mu.Lock()
	a.active = true
	a.endTime = time.Time{}
	a.mu.Unlock()
}

// IsOpen reports whether the auction still accepts bids.
func (a *Auction) IsOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// AuctionSnapshot is a point-in-time copy of an auction, including its bid
// history in chronological order.
type AuctionSnapshot struct {
	ID              int        `json:"id"`
	CarID           int        `json:"car_id"`
	OwnerID         int        `json:"owner_id"`
	StartBid        float64    `json:"start_bid"`
	CurrentBid      float64    `json:"current_bid"`
	CurrentBidderID *int       `json:"current_bidder_id,omitempty"`
	IsOpen          bool       `json:"is_open"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	Bids            []Bid      `json:"bids"`
}

// Snapshot copies the auction state field by field under the lock.
func (a *Auction) Snapshot() AuctionSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	snap := AuctionSnapshot{
		ID:         a.ID,
		CarID:      a.CarID,
		OwnerID:    a.StarterID,
		StartBid:   a.StartBid,
		CurrentBid: a.currentBid,
		IsOpen:     a.active,
		StartTime:  a.StartTime,
		Bids:       append([]Bid(nil), a.bids...),
	}
	if a.currentBidderID != 0 {
		bidder := a.currentBidderID
		snap.CurrentBidderID = &bidder
	}
	if !a.endTime.IsZero() {
		end := a.endTime
		snap.EndTime = &end
	}
	return snap
}
