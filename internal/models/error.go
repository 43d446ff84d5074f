package models

import "net/http"

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string) APIError {
	return APIError{
		Code:    code,
		Message: message,
	}
}

// PizzaError is the set of failures surfaced by the pizza endpoints.
// Causes are not distinguished: a validation failure and a storage failure
// on create both become PizzaCreationFailure.
type PizzaError int

const (
	// NoPizzasFound is returned when listing yields nothing
	NoPizzasFound PizzaError = iota + 1
	// PizzaCreationFailure covers invalid input and failed inserts
	PizzaCreationFailure
	// NoSuchPizzaFound is returned when an update or delete misses
	NoSuchPizzaFound
)

// Error code constants
const (
	ErrNoPizzasFound        = "NO_PIZZAS_FOUND"
	ErrPizzaCreationFailure = "PIZZA_CREATION_FAILURE"
	ErrNoSuchPizzaFound     = "NO_SUCH_PIZZA_FOUND"
	ErrInternalServer       = "INTERNAL_SERVER_ERROR"
)

func (e PizzaError) Error() string {
	switch e {
	case NoPizzasFound:
		return "No pizzas found"
	case PizzaCreationFailure:
		return "Pizza creation failure"
	case NoSuchPizzaFound:
		return "No such pizza found"
	default:
		return "Internal server error"
	}
}

// Code returns the machine readable error code
func (e PizzaError) Code() string {
	switch e {
	case NoPizzasFound:
		return ErrNoPizzasFound
	case PizzaCreationFailure:
		return ErrPizzaCreationFailure
	case NoSuchPizzaFound:
		return ErrNoSuchPizzaFound
	default:
		return ErrInternalServer
	}
}

// StatusCode maps the error to the HTTP status returned to the client
func (e PizzaError) StatusCode() int {
	switch e {
	case NoPizzasFound, NoSuchPizzaFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Response returns the JSON body sent for this error
func (e PizzaError) Response() APIError {
	return NewAPIError(e.Code(), e.Error())
}
