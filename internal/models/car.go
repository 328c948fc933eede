package models

import (
	"fmt"
	"strings"
	"sync"

	"car-auction/internal/auctionerrors"
)

// CarStatus is the inventory state of a car.
type CarStatus int

const (
	StatusAvailable CarStatus = iota
	StatusOnAuction
	StatusSold
)

func (s CarStatus) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusOnAuction:
		return "on_auction"
	case StatusSold:
		return "sold"
	default:
		return "unknown"
	}
}

// ParseCarStatus maps the wire representation back to a CarStatus.
func ParseCarStatus(s string) (CarStatus, error) {
	switch strings.ToLower(s) {
	case "available":
		return StatusAvailable, nil
	case "on_auction":
		return StatusOnAuction, nil
	case "sold":
		return StatusSold, nil
	default:
		return 0, fmt.Errorf("unknown car status %q", s)
	}
}

// CarType tags the vehicle kind. Each tag requires its own type-specific
// attribute: doors for hatchbacks and sedans, seats for SUVs, load capacity
// for trucks.
type CarType int

const (
	TypeHatchback CarType = iota
	TypeSedan
	TypeSUV
	TypeTruck
)

func (t CarType) String() string {
	switch t {
	case TypeHatchback:
		return "hatchback"
	case TypeSedan:
		return "sedan"
	case TypeSUV:
		return "suv"
	case TypeTruck:
		return "truck"
	default:
		return "unknown"
	}
}

// ParseCarType maps the wire representation back to a CarType.
func ParseCarType(s string) (CarType, error) {
	switch strings.ToLower(s) {
	case "hatchback":
		return TypeHatchback, nil
	case "sedan":
		return TypeSedan, nil
	case "suv":
		return TypeSUV, nil
	case "truck":
		return TypeTruck, nil
	default:
		return 0, fmt.Errorf("unknown car type %q", s)
	}
}

// CarSpec describes a car to be added to the inventory. Exactly the
// type-specific field matching Type must be set.
type CarSpec struct {
	Type             CarType
	Manufacturer     string
	Model            string
	Year             int
	StartBid         float64
	OwnerID          int
	NumDoors         *int
	NumSeats         *int
	LoadCapacityTons *float64
}

// Car is the inventory record for one vehicle. Identity and attributes are
// immutable after construction; only the status cell mutates, guarded by the
// car's own lock. Callers never set the status directly, they go through the
// Mark* setters.
type Car struct {
	ID               int
	Type             CarType
	Manufacturer     string
	Model            string
	Year             int
	StartBid         float64
	OwnerID          int
	NumDoors         int
	NumSeats         int
	LoadCapacityTons float64

	mu     sync.Mutex
	status CarStatus
}

// NewCar validates the spec against its type tag and builds a record with
// status Available.
func NewCar(id int, spec CarSpec) (*Car, error) {
	car := &Car{
		ID:           id,
		Type:         spec.Type,
		Manufacturer: spec.Manufacturer,
		Model:        spec.Model,
		Year:         spec.Year,
		StartBid:     spec.StartBid,
		OwnerID:      spec.OwnerID,
		status:       StatusAvailable,
	}

	switch spec.Type {
	case TypeHatchback, TypeSedan:
		if spec.NumDoors == nil {
			return nil, fmt.Errorf("%w: number of doors is required for %s", auctionerrors.ErrInvalidCar, spec.Type)
		}
		car.NumDoors = *spec.NumDoors
	case TypeSUV:
		if spec.NumSeats == nil {
			return nil, fmt.Errorf("%w: number of seats is required for suv", auctionerrors.ErrInvalidCar)
		}
		car.NumSeats = *spec.NumSeats
	case TypeTruck:
		if spec.LoadCapacityTons == nil {
			return nil, fmt.Errorf("%w: load capacity is required for truck", auctionerrors.ErrInvalidCar)
		}
		car.LoadCapacityTons = *spec.LoadCapacityTons
	default:
		return nil, fmt.Errorf("%w: unsupported car type", auctionerrors.ErrInvalidCar)
	}

	return car, nil
}

// Status returns the current status. The lock doubles as the memory barrier so
// readers never observe a stale value.
func (c *Car) Status() CarStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// MarkAvailable sets the status unconditionally. Legality of the transition is
// the coordinator's concern, not the record's.
func (c *Car) MarkAvailable() {
	c.mu.Lock()
	c.status = StatusAvailable
	c.mu.Unlock()
}

// MarkOnAuction sets the status unconditionally.
func (c *Car) MarkOnAuction() {
	c.mu.Lock()
	c.status = StatusOnAuction
	c.mu.Unlock()
}

// MarkSold sets the status unconditionally.
func (c *Car) MarkSold() {
	c.mu.Lock()
	c.status = StatusSold
	c.mu.Unlock()
}

// CarSnapshot is a point-in-time copy of a car record, safe to hand out
// without locking.
type CarSnapshot struct {
	ID               int      `json:"id"`
	Type             string   `json:"type"`
	Manufacturer     string   `json:"manufacturer"`
	Model            string   `json:"model"`
	Year             int      `json:"year"`
	StartBid         float64  `json:"start_bid"`
	Status           string   `json:"status"`
	OwnerID          int      `json:"owner_id"`
	NumDoors         *int     `json:"num_doors,omitempty"`
	NumSeats         *int     `json:"num_seats,omitempty"`
	LoadCapacityTons *float64 `json:"load_capacity_tons,omitempty"`
}

// Snapshot copies the record field by field; the type-specific attribute is
// populated according to the type tag.
func (c *Car) Snapshot() CarSnapshot {
	snap := CarSnapshot{
		ID:           c.ID,
		Type:         c.Type.String(),
		Manufacturer: c.Manufacturer,
		Model:        c.Model,
		Year:         c.Year,
		StartBid:     c.StartBid,
		Status:       c.Status().String(),
		OwnerID:      c.OwnerID,
	}

	switch c.Type {
	case TypeHatchback, TypeSedan:
		doors := c.NumDoors
		snap.NumDoors = &doors
	case TypeSUV:
		seats := c.NumSeats
		snap.NumSeats = &seats
	case TypeTruck:
		capacity := c.LoadCapacityTons
		snap.LoadCapacityTons = &capacity
	}

	return snap
}
