package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in catalog version"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error on a single field.
// Err carries the underlying cause (for example *InvalidRateError) when there is one.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors aggregates per-field validation failures so callers can
// render one message per field instead of a single generic failure.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		if e.Field != "" {
			parts = append(parts, e.Field+": "+e.Message)
		} else {
			parts = append(parts, e.Message)
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes every field error to errors.Is / errors.As
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, e := range v {
		errs[i] = e
	}
	return errs
}

// Fields returns the messages keyed by field name. The first message wins
// when a field failed more than once.
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}
	return out
}

// InvalidTimeFormatError is returned when a time-of-day string is not HH, HH:MM or HH:MM:SS
type InvalidTimeFormatError struct {
	Value string
}

func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("invalid time format %q: expected HH:MM (24-hour)", e.Value)
}

// InvalidRateError is returned when an hourly rate cannot be read as a non-negative decimal
type InvalidRateError struct {
	Value  string
	Reason string
}

func (e *InvalidRateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid rate %q: %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid rate %q", e.Value)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamError represents a non-success response from the marketplace API
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream returned %d", e.StatusCode)
}

// Entity Not Found Errors
var (
	ErrRoleNotFound           = &NotFoundError{Entity: "professional role"}
	ErrCatalogVersionNotFound = &NotFoundError{Entity: "catalog version"}
	ErrOutwardCodeNotFound    = &NotFoundError{Entity: "postcode district"}
)

// Already Exists Errors
var (
	ErrCatalogEntryExists = &AlreadyExistsError{Entity: "catalog entry", Context: "for this role and version"}
)

// Business Logic Errors
var (
	ErrZeroLengthShift      = errors.New("shift start and end times are identical")
	ErrInvalidDuration      = errors.New("duration must be a finite, non-negative number of hours")
	ErrMixedCategories      = errors.New("requirements from different categories cannot be aggregated together")
	ErrDuplicateRequirement = errors.New("requirement type declared more than once")
	ErrInvalidCategory      = errors.New("invalid requirement category")
	ErrInvalidStatus        = errors.New("invalid document status")
	ErrInvalidPostcode      = errors.New("invalid UK postcode")
)

// Session Errors
var (
	ErrSessionInvalidated = &AuthenticationError{Message: "session has been invalidated"}
	ErrNoRefreshToken     = &AuthenticationError{Message: "session has no refresh token"}
	ErrTokenExpired       = &AuthenticationError{Message: "access token has expired"}
	ErrMissingSession     = &AuthenticationError{Message: "no session in request context"}
)

// Upstream Errors
var (
	ErrUpstreamUnavailable = errors.New("marketplace API unavailable")
)

// Configuration Errors
var (
	ErrUpstreamNotConfigured = &ConfigurationError{Message: "UPSTREAM_BASE_URL is not configured"}
	ErrRefreshNotConfigured  = &ConfigurationError{Message: "SUPABASE_URL and SUPABASE_ANON_KEY are required to refresh sessions"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError, ValidationErrors, or one of
// the input format errors they wrap
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs ValidationErrors
	var timeErr *InvalidTimeFormatError
	var rateErr *InvalidRateError
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs) ||
		errors.As(err, &timeErr) || errors.As(err, &rateErr)
}

// IsInvalidTimeFormat checks if an error is (or wraps) an InvalidTimeFormatError
func IsInvalidTimeFormat(err error) bool {
	var timeErr *InvalidTimeFormatError
	return errors.As(err, &timeErr)
}

// IsInvalidRate checks if an error is (or wraps) an InvalidRateError
func IsInvalidRate(err error) bool {
	var rateErr *InvalidRateError
	return errors.As(err, &rateErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsUpstream checks if an error came from the marketplace API
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr) || errors.Is(err, ErrUpstreamUnavailable)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewFieldError creates a ValidationError that wraps its cause
func NewFieldError(field string, cause error) *ValidationError {
	return &ValidationError{Field: field, Message: cause.Error(), Err: cause}
}

// NewInvalidTimeFormatError creates a new InvalidTimeFormatError
func NewInvalidTimeFormatError(value string) error {
	return &InvalidTimeFormatError{Value: value}
}

// NewInvalidRateError creates a new InvalidRateError
func NewInvalidRateError(value, reason string) error {
	return &InvalidRateError{Value: value, Reason: reason}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(statusCode int, message string) error {
	return &UpstreamError{StatusCode: statusCode, Message: message}
}
