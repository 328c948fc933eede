package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"car-auction/internal/inventory"
	model "car-auction/internal/models"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

// AddCarRequest is the payload for POST /cars. The type-specific field
// matching Type must be present; construction validates that.
type AddCarRequest struct {
	Type             string   `json:"type" binding:"required"`
	Manufacturer     string   `json:"manufacturer" binding:"required"`
	Model            string   `json:"model" binding:"required"`
	Year             int      `json:"year" binding:"required,gte=1900"`
	StartBid         float64  `json:"start_bid" binding:"required,gt=0"`
	OwnerID          int      `json:"owner_id" binding:"required,gt=0"`
	NumDoors         *int     `json:"num_doors,omitempty"`
	NumSeats         *int     `json:"num_seats,omitempty"`
	LoadCapacityTons *float64 `json:"load_capacity_tons,omitempty"`
}

// InventoryService is the catalogue surface the handler consumes.
type InventoryService interface {
	Add(spec model.CarSpec) (*model.Car, error)
	Search(filter inventory.Filter) []model.CarSnapshot
}

// UserDirectory resolves car owners before insertion.
type UserDirectory interface {
	GetUserByID(userID int) (model.User, error)
}

type CarHandler struct {
	inventory InventoryService
	users     UserDirectory
}

func NewCarHandler(inv InventoryService, users UserDirectory) *CarHandler {
	return &CarHandler{inventory: inv, users: users}
}

// AddCarHandler handles POST /cars
func (h *CarHandler) AddCarHandler(c *gin.Context) {
	var req AddCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleBindError(c, "AddCarHandler", err)
		return
	}

	carType, err := model.ParseCarType(req.Type)
	if err != nil {
		utils.HandleBindError(c, "AddCarHandler", err)
		return
	}

	if _, err := h.users.GetUserByID(req.OwnerID); err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddCarHandler: unknown owner", map[string]any{"owner_id": req.OwnerID, "error": err.Error()})
		return
	}

	car, err := h.inventory.Add(model.CarSpec{
		Type:             carType,
		Manufacturer:     req.Manufacturer,
		Model:            req.Model,
		Year:             req.Year,
		StartBid:         req.StartBid,
		OwnerID:          req.OwnerID,
		NumDoors:         req.NumDoors,
		NumSeats:         req.NumSeats,
		LoadCapacityTons: req.LoadCapacityTons,
	})
	if err != nil {
		status, message := utils.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("AddCarHandler: failed to add car", map[string]any{
			"handler":  "AddCarHandler",
			"owner_id": req.OwnerID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, car.Snapshot(), "car added successfully")
	utils.LogSuccess("AddCarHandler", "car added successfully", map[string]any{
		"car_id":   car.ID,
		"type":     car.Type.String(),
		"owner_id": car.OwnerID,
	})
}

// GetAllCarsHandler handles GET /cars
func (h *CarHandler) GetAllCarsHandler(c *gin.Context) {
	cars := h.inventory.Search(inventory.Filter{})
	utils.JSONResponse(c, http.StatusOK, cars, "cars retrieved successfully")
	utils.LogSuccess("GetAllCarsHandler", "cars retrieved successfully", map[string]any{"count": len(cars)})
}

// GetAvailableCarsHandler handles GET /cars/available
func (h *CarHandler) GetAvailableCarsHandler(c *gin.Context) {
	available := model.StatusAvailable
	cars := h.inventory.Search(inventory.Filter{Status: &available})
	utils.JSONResponse(c, http.StatusOK, cars, "available cars retrieved successfully")
	utils.LogSuccess("GetAvailableCarsHandler", "available cars retrieved successfully", map[string]any{"count": len(cars)})
}

// SearchCarsHandler handles GET /cars/search with optional query filters:
// type, status, manufacturer, model, year.
func (h *CarHandler) SearchCarsHandler(c *gin.Context) {
	var filter inventory.Filter

	if v := c.Query("type"); v != "" {
		carType, err := model.ParseCarType(v)
		if err != nil {
			utils.HandleBindError(c, "SearchCarsHandler", err)
			return
		}
		filter.Type = &carType
	}
	if v := c.Query("status"); v != "" {
		status, err := model.ParseCarStatus(v)
		if err != nil {
			utils.HandleBindError(c, "SearchCarsHandler", err)
			return
		}
		filter.Status = &status
	}
	filter.Manufacturer = c.Query("manufacturer")
	filter.Model = c.Query("model")
	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			utils.HandleBindError(c, "SearchCarsHandler", fmt.Errorf("year must be an integer: %w", err))
			return
		}
		filter.Year = &year
	}

	cars := h.inventory.Search(filter)
	utils.JSONResponse(c, http.StatusOK, cars, "cars retrieved successfully")
	utils.LogSuccess("SearchCarsHandler", "cars retrieved successfully", map[string]any{"count": len(cars)})
}
