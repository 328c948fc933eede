package inventory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
	"car-auction/utils"
)

// CarStore defines the inventory operations the auction coordinator consumes.
// Lookups distinguish a missing car (ErrCarNotFound) from one in the wrong
// state (ErrCarNotAvailable / ErrCarNotOnAuction).
type CarStore interface {
	GetAvailable(carID int) (*model.Car, error)
	GetOnAuction(carID int) (*model.Car, error)
	MarkAvailable(carID int) error
	MarkOnAuction(carID int) error
	MarkSold(carID int) error
}

// Filter narrows a car search; nil/empty fields match everything.
type Filter struct {
	Type         *model.CarType
	Status       *model.CarStatus
	Manufacturer string
	Model        string
	Year         *int
}

// Store is a concurrency-safe in-memory car inventory. The map itself is a
// sync.Map so unrelated cars never contend; each record carries its own lock
// for status mutation.
type Store struct {
	cars sync.Map // key: carID -> value: *model.Car
	ids  *utils.Sequence
}

// NewStore creates an inventory store drawing car ids from the given sequence.
func NewStore(ids *utils.Sequence) *Store {
	return &Store{ids: ids}
}

// Add validates the spec, assigns a fresh id and inserts the car with status
// Available. A duplicate id means the generator is broken.
func (s *Store) Add(spec model.CarSpec) (*model.Car, error) {
	car, err := model.NewCar(s.ids.Next(), spec)
	if err != nil {
		return nil, fmt.Errorf("add car: %w", err)
	}
	if _, loaded := s.cars.LoadOrStore(car.ID, car); loaded {
		return nil, fmt.Errorf("add car %d: %w", car.ID, auctionerrors.ErrDuplicateID)
	}
	return car, nil
}

func (s *Store) get(carID int) (*model.Car, error) {
	v, ok := s.cars.Load(carID)
	if !ok {
		return nil, fmt.Errorf("car %d: %w", carID, auctionerrors.ErrCarNotFound)
	}
	return v.(*model.Car), nil
}

// GetAvailable returns the record only if its status is Available.
func (s *Store) GetAvailable(carID int) (*model.Car, error) {
	car, err := s.get(carID)
	if err != nil {
		return nil, err
	}
	if car.Status() != model.StatusAvailable {
		return nil, fmt.Errorf("car %d: %w", carID, auctionerrors.ErrCarNotAvailable)
	}
	return car, nil
}

// GetOnAuction returns the record only if its status is OnAuction.
func (s *Store) GetOnAuction(carID int) (*model.Car, error) {
	car, err := s.get(carID)
	if err != nil {
		return nil, err
	}
	if car.Status() != model.StatusOnAuction {
		return nil, fmt.Errorf("car %d: %w", carID, auctionerrors.ErrCarNotOnAuction)
	}
	return car, nil
}

// MarkAvailable sets the car's status without checking the prior state.
func (s *Store) MarkAvailable(carID int) error {
	car, err := s.get(carID)
	if err != nil {
		return err
	}
	car.MarkAvailable()
	return nil
}

// MarkOnAuction sets the car's status without checking the prior state.
func (s *Store) MarkOnAuction(carID int) error {
	car, err := s.get(carID)
	if err != nil {
		return err
	}
	car.MarkOnAuction()
	return nil
}

// MarkSold sets the car's status without checking the prior state.
func (s *Store) MarkSold(carID int) error {
	car, err := s.get(carID)
	if err != nil {
		return err
	}
	car.MarkSold()
	return nil
}

// Search returns snapshots of all cars matching the filter, ordered by id.
func (s *Store) Search(filter Filter) []model.CarSnapshot {
	results := []model.CarSnapshot{}
	s.cars.Range(func(_, v any) bool {
		car := v.(*model.Car)
		if filter.Type != nil && car.Type != *filter.Type {
			return true
		}
		if filter.Manufacturer != "" && !strings.EqualFold(car.Manufacturer, filter.Manufacturer) {
			return true
		}
		if filter.Model != "" && !strings.EqualFold(car.Model, filter.Model) {
			return true
		}
		if filter.Year != nil && car.Year != *filter.Year {
			return true
		}
		snap := car.Snapshot()
		if filter.Status != nil && snap.Status != filter.Status.String() {
			return true
		}
		results = append(results, snap)
		return true
	})

	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results
}
