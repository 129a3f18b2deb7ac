package errors

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrMaterielNotFound is returned when a materiel is not found.
	ErrMaterielNotFound = errors.New("materiel not found")
	// ErrAnomalieNotFound is returned when an anomalie is not found.
	ErrAnomalieNotFound = errors.New("anomalie not found")
	// ErrEmailAlreadyRegistered is returned when an email is already used by another user.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	// ErrIdentifiantTaken is returned when a materiel identifiant is already used.
	ErrIdentifiantTaken = errors.New("a materiel with this identifiant already exists")
	// ErrUnknownMateriel is returned when a payload references a missing materiel.
	ErrUnknownMateriel = errors.New("referenced materiel does not exist")
	// ErrUnknownResponsable is returned when a payload references a missing user.
	ErrUnknownResponsable = errors.New("referenced responsable does not exist")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrInvalidToken is returned when a bearer token cannot be resolved to a user.
	ErrInvalidToken = errors.New("could not validate credentials")
	// ErrMalformedBody is returned when a request body is not valid JSON.
	ErrMalformedBody = errors.New("malformed request body")
	// ErrInvalidID is returned when a path id is not a positive integer.
	ErrInvalidID = errors.New("invalid id")
	// ErrMailDelivery is returned when the SMTP server rejects or cannot receive a message.
	ErrMailDelivery = errors.New("email delivery failed")
)

// ValidationError reports field level problems in a request payload.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// Add records another field problem.
func (e *ValidationError) Add(field, reason string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = reason
}

// Empty reports whether no field problem was recorded.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Details    map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:   e.Message,
		Code:    e.Code,
		Details: e.Details,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		httpErr := NewHTTPError(http.StatusUnprocessableEntity, "validation failed", "VALIDATION_ERROR")
		httpErr.Details = validationErr.Fields
		return httpErr
	}

	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrMaterielNotFound):
		return NewHTTPError(http.StatusNotFound, ErrMaterielNotFound.Error(), "MATERIEL_NOT_FOUND")
	case errors.Is(err, ErrAnomalieNotFound):
		return NewHTTPError(http.StatusNotFound, ErrAnomalieNotFound.Error(), "ANOMALIE_NOT_FOUND")
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return NewHTTPError(http.StatusBadRequest, ErrEmailAlreadyRegistered.Error(), "EMAIL_ALREADY_REGISTERED")
	case errors.Is(err, ErrIdentifiantTaken):
		return NewHTTPError(http.StatusBadRequest, ErrIdentifiantTaken.Error(), "IDENTIFIANT_TAKEN")
	case errors.Is(err, ErrUnknownMateriel):
		return NewHTTPError(http.StatusBadRequest, ErrUnknownMateriel.Error(), "UNKNOWN_MATERIEL")
	case errors.Is(err, ErrUnknownResponsable):
		return NewHTTPError(http.StatusBadRequest, ErrUnknownResponsable.Error(), "UNKNOWN_RESPONSABLE")
	case errors.Is(err, ErrMalformedBody):
		return NewHTTPError(http.StatusBadRequest, ErrMalformedBody.Error(), "MALFORMED_BODY")
	case errors.Is(err, ErrInvalidID):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidID.Error(), "INVALID_ID")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrMailDelivery):
		return NewHTTPError(http.StatusBadGateway, ErrMailDelivery.Error(), "MAIL_DELIVERY_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
