// Package apperrors defines the expected business failures of the API.
// Services return a value together with a *apperrors.Error; a nil error is
// success. Expected failures are never panics.
package apperrors

import (
	"fmt"
	"net/http"
)

// Error describes a business failure with a stable code, a human-readable
// message and the HTTP status the boundary layer maps it to.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

// New creates an error descriptor.
func New(code, message string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrUserExists is returned when a registration username collides.
	ErrUserExists = New("User.Exists", "Username already exists", http.StatusConflict)

	// ErrAuthInvalid covers both an unknown username and a wrong password,
	// so callers cannot enumerate accounts.
	ErrAuthInvalid = New("Auth.Invalid", "Invalid username or password", http.StatusBadRequest)

	// ErrCustomerNotFound is returned when a customer id is not found.
	ErrCustomerNotFound = New("Customer.NotFound", "Customer with the given ID was not found.", http.StatusNotFound)

	// ErrProductNotFound is returned when a product id is not found.
	ErrProductNotFound = New("Product.NotFound", "Product with the given ID was not found.", http.StatusNotFound)

	// ErrOrderNotFound is returned when an order id is not found.
	ErrOrderNotFound = New("Order.NotFound", "The specified order was not found.", http.StatusNotFound)

	// ErrInsufficientStock is returned when a requested quantity exceeds stock.
	ErrInsufficientStock = New("Order.InsufficientStock", "One or more products have insufficient stock.", http.StatusBadRequest)

	// ErrInvalidItems is returned by request validation for an empty item list.
	ErrInvalidItems = New("Order.InvalidItems", "Order must contain at least one item.", http.StatusBadRequest)

	// ErrInvoiceNotFound is returned when an invoice id is not found.
	ErrInvoiceNotFound = New("Invoice.NotFound", "Invoice not found.", http.StatusNotFound)
)

// Database wraps an unexpected persistence failure. The underlying error is
// kept out of the response body.
func Database(op string) *Error {
	return New("Database.Error", fmt.Sprintf("Failed to %s", op), http.StatusInternalServerError)
}
