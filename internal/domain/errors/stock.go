package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// StockShortfall describes one ingredient that blocks a fulfillment.
// Known == false means the ingredient has never been stocked at all.
type StockShortfall struct {
	IngredientName string  `json:"ingredient_name"`
	Unit           string  `json:"unit"`
	Required       float64 `json:"required"`
	Available      float64 `json:"available"`
	Known          bool    `json:"known"`
}

func (s StockShortfall) String() string {
	if !s.Known {
		return fmt.Sprintf("%s (ingredient not stocked)", s.IngredientName)
	}

	return fmt.Sprintf("%s (need %g%s, have %g%s)",
		s.IngredientName, s.Required, s.Unit, s.Available, s.Unit)
}

// InsufficientStockError is returned when a fulfillment or write-off cannot
// be covered by current stock. It lists every shortfall, not just the first,
// so the kitchen sees the complete picture in one response.
type InsufficientStockError struct {
	Shortfalls []StockShortfall
}

// NewInsufficientStockError creates an itemized stock error.
func NewInsufficientStockError(shortfalls []StockShortfall) *InsufficientStockError {
	return &InsufficientStockError{Shortfalls: shortfalls}
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *InsufficientStockError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *InsufficientStockError) ErrorCode() string {
	return "INSUFFICIENT_STOCK"
}

// Message returns the user-friendly error message
func (e *InsufficientStockError) Message() string {
	return "not enough stock to fulfil the order"
}

// Details returns every shortfall as a single human-readable line.
func (e *InsufficientStockError) Details() string {
	parts := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		parts = append(parts, s.String())
	}

	return strings.Join(parts, "; ")
}
