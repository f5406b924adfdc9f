package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeShopNotFound     = "SHOP_NOT_FOUND"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidCategory  = "INVALID_CATEGORY"
	ErrCodeInvalidDelta     = "INVALID_DELTA"
	ErrCodeShopNotSelected  = "SHOP_NOT_SELECTED"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrShopNotFound    = NewDomainError(ErrCodeShopNotFound, "Shop not found")
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidCategory = NewDomainError(ErrCodeInvalidCategory, "Category must be one of Fruits, Vegetables, Leafy Greens, Root Vegetables, Exotic or All")
	ErrInvalidDelta    = NewDomainError(ErrCodeInvalidDelta, "Quantity change must be a non-zero number between -99 and 99")
	ErrShopNotSelected = NewDomainError(ErrCodeShopNotSelected, "Please select a shop first to use the AI assistant for ingredients")
)
