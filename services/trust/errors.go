package trust

import "fmt"

// ValidationError rejects a malformed username before any outbound call.
type ValidationError struct {
	Username string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid username %q", e.Username)
}

// QuotaExceededError signals that the caller exhausted today's allowance.
type QuotaExceededError struct {
	Limit int
}

func (e QuotaExceededError) Error() string {
	return fmt.Sprintf("daily limit of %d checks reached", e.Limit)
}

// UpstreamError carries an error status the completion provider responded
// with. Message is the provider's own error text when it supplied one.
type UpstreamError struct {
	Status  int
	Message string
}

func (e UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("completion provider returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("completion provider returned %d", e.Status)
}

// TimeoutError signals that no response was received from the completion
// provider (network failure or timeout).
type TimeoutError struct {
	Err error
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("no response from completion provider: %v", e.Err)
}

func (e TimeoutError) Unwrap() error { return e.Err }

// RequestError signals that the outbound request could not be constructed.
type RequestError struct {
	Err error
}

func (e RequestError) Error() string {
	return fmt.Sprintf("completion request could not be built: %v", e.Err)
}

func (e RequestError) Unwrap() error { return e.Err }

// ParseError signals that the provider's answer contained no extractable
// trust score.
type ParseError struct{}

func (ParseError) Error() string {
	return "could not parse trust score"
}
