package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/franciscosanchezn/pizza-shop-api/internal/models"
	"gorm.io/gorm"
)

// ErrPizzaNotFound is returned when no pizza matches the given uuid
var ErrPizzaNotFound = errors.New("pizza not found")

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas ordered by creation time
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	// AddPizza inserts a new pizza and returns the stored row
	AddPizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
	// UpdatePizza marks the pizza as updated and returns the refreshed row
	UpdatePizza(ctx context.Context, uuid string) (models.Pizza, error)
	// DeletePizza removes the pizza and returns its last known value
	DeletePizza(ctx context.Context, uuid string) (models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db, now: time.Now}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.WithContext(ctx).Order("created_at").Order("uuid").Find(&pizzas).Error; err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *pizzaService) AddPizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	if err := s.db.WithContext(ctx).Create(&pizza).Error; err != nil {
		return models.Pizza{}, fmt.Errorf("insert pizza %s: %w", pizza.UUID, err)
	}
	return pizza, nil
}

func (s *pizzaService) UpdatePizza(ctx context.Context, uuid string) (models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Pizza{}).Where("uuid = ?", uuid).Update("updated_at", s.now())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPizzaNotFound
		}
		return tx.Where("uuid = ?", uuid).First(&pizza).Error
	})
	if err != nil {
		return models.Pizza{}, fmt.Errorf("update pizza %s: %w", uuid, notFound(err))
	}
	return pizza, nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, uuid string) (models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("uuid = ?", uuid).First(&pizza).Error; err != nil {
			return err
		}
		result := tx.Where("uuid = ?", uuid).Delete(&models.Pizza{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPizzaNotFound
		}
		return nil
	})
	if err != nil {
		return models.Pizza{}, fmt.Errorf("delete pizza %s: %w", uuid, notFound(err))
	}
	return pizza, nil
}

// notFound folds gorm's missing-record error into ErrPizzaNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPizzaNotFound
	}
	return err
}
