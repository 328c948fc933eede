package handler

import (
	"fmt"
	"net/http"
	"strconv"

	model "car-auction/internal/models"
	"car-auction/services/auction/helpers"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(carID, userID int) error
	PlaceBid(carID, userID int, amount float64) (model.Bid, error)
	CloseAuction(carID, userID int, wasSold bool) error
	GetAuction(carID int) (model.AuctionSnapshot, error)
}

// UserDirectory resolves acting users before an auction operation runs.
type UserDirectory interface {
	GetUserByID(userID int) (model.User, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
	users   UserDirectory
}

func NewAuctionHandler(service AuctionServiceInterface, users UserDirectory) *AuctionHandler {
	return &AuctionHandler{service: service, users: users}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	if _, err := h.users.GetUserByID(req.UserID); err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CreateAuctionHandler: unknown user", map[string]any{"user_id": req.UserID, "error": err.Error()})
		return
	}

	if err := h.service.CreateAuction(req.CarID, req.UserID); err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateAuctionHandler: failed to create auction", map[string]any{
			"handler": "CreateAuctionHandler",
			"car_id":  req.CarID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"car_id": req.CarID}, "auction created successfully")
	utils.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"car_id":  req.CarID,
		"user_id": req.UserID,
	})
}

// PlaceBidHandler handles POST /auctions/bid
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	if _, err := h.users.GetUserByID(req.UserID); err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PlaceBidHandler: unknown user", map[string]any{"user_id": req.UserID, "error": err.Error()})
		return
	}

	bid, err := h.service.PlaceBid(req.CarID, req.UserID, req.Amount)
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler": "PlaceBidHandler",
			"car_id":  req.CarID,
			"user_id": req.UserID,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(req.CarID, bid), "bid placed successfully")
	utils.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":  bid.ID,
		"car_id":  req.CarID,
		"user_id": req.UserID,
		"amount":  bid.Amount,
	})
}

// CloseAuctionHandler handles POST /auctions/close
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	var req helpers.CloseAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "CloseAuctionHandler", err)
		return
	}

	if _, err := h.users.GetUserByID(req.UserID); err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CloseAuctionHandler: unknown user", map[string]any{"user_id": req.UserID, "error": err.Error()})
		return
	}

	if err := h.service.CloseAuction(req.CarID, req.UserID, *req.WasSold); err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CloseAuctionHandler: failed to close auction", map[string]any{
			"handler":  "CloseAuctionHandler",
			"car_id":   req.CarID,
			"user_id":  req.UserID,
			"was_sold": *req.WasSold,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"car_id": req.CarID, "was_sold": *req.WasSold}, "auction closed successfully")
	utils.LogSuccess("CloseAuctionHandler", "auction closed successfully", map[string]any{
		"car_id":   req.CarID,
		"user_id":  req.UserID,
		"was_sold": *req.WasSold,
	})
}

// GetAuctionHandler handles GET /auctions/:car_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	carID, err := strconv.Atoi(c.Param("car_id"))
	if err != nil {
		utils.HandleBindError(c, "GetAuctionHandler", fmt.Errorf("car_id must be an integer: %w", err))
		return
	}

	snapshot, err := h.service.GetAuction(carID)
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"car_id": carID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, snapshot, "auction retrieved successfully")
	utils.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"car_id":      carID,
		"is_open":     snapshot.IsOpen,
		"current_bid": snapshot.CurrentBid,
	})
}
