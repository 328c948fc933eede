package helpers

import (
	"time"

	model "car-auction/internal/models"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	CarID  int `json:"car_id" binding:"required,gt=0"`
	UserID int `json:"user_id" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	CarID  int     `json:"car_id" binding:"required,gt=0"`
	UserID int     `json:"user_id" binding:"required,gt=0"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CloseAuctionRequest struct {
	CarID   int   `json:"car_id" binding:"required,gt=0"`
	UserID  int   `json:"user_id" binding:"required,gt=0"`
	WasSold *bool `json:"was_sold" binding:"required"`
}

type BidResponse struct {
	BidID     int     `json:"bid_id"`
	CarID     int     `json:"car_id"`
	UserID    int     `json:"user_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

// NewBidResponse maps a recorded bid to its response shape.
func NewBidResponse(carID int, bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.ID,
		CarID:     carID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
