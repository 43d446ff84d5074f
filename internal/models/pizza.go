package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Pizza represents a pizza stored in the shop
type Pizza struct {
	UUID      string    `json:"uuid" gorm:"column:uuid;primaryKey;size:32"`
	PizzaName string    `json:"pizza_name" gorm:"column:pizza_name;not null"`
	CreatedAt time.Time `json:"-" gorm:"index"`
	UpdatedAt time.Time `json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// NewPizza builds a pizza with the given identifier and name
func NewPizza(id, name string) Pizza {
	return Pizza{UUID: id, PizzaName: name}
}

// BuyPizzaRequest is the body accepted by the buy endpoint
type BuyPizzaRequest struct {
	PizzaName string `json:"pizza_name" binding:"required,min=1"`
}

// PizzaURI addresses an existing pizza through the URL path
type PizzaURI struct {
	UUID string `uri:"uuid" binding:"required"`
}

// NewPizzaID returns a random 128-bit identifier encoded as 32 lowercase hex characters
func NewPizzaID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
