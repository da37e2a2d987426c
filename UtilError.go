package gocoinex

import "fmt"

type Error interface {
	error
	Code() int
}

// ConfigurationError means the inputs are wrong before any network call:
// missing credentials or a malformed required parameter.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func NewConfigurationError(message string, args ...interface{}) *ConfigurationError {
	if len(args) > 0 {
		return &ConfigurationError{Message: fmt.Sprintf(message, args...)}
	}
	return &ConfigurationError{Message: message}
}

// TransportError means the HTTP exchange itself failed: network error,
// timeout, malformed response, or a non-2xx status without a parseable
// exchange error envelope.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error: HttpStatusCode:%d ,Desc:%s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("transport error: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ExchangeError carries the exchange's own business code and message,
// preserved verbatim.
type ExchangeError struct {
	code    int
	message string
}

func (e *ExchangeError) Error() string {
	return e.message
}

func (e *ExchangeError) Code() int {
	return e.code
}

// NewExchangeError creates a new exchange error with a code and a message
func NewExchangeError(code int, message string, args ...interface{}) *ExchangeError {
	if len(args) > 0 {
		return &ExchangeError{code, fmt.Sprintf(message, args...)}
	}
	return &ExchangeError{code, message}
}
