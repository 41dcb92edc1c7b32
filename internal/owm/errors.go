package owm

import "fmt"

// ErrorKind classifies fetch failures at the API boundary
type ErrorKind int

const (
	// NetworkFailure covers unreachable hosts, timeouts and non-JSON transport errors
	NetworkFailure ErrorKind = iota
	// InvalidLocation means the API reported failure in-band (unknown city, bad key)
	InvalidLocation
	// MalformedResponse means a required field was missing from an otherwise successful payload
	MalformedResponse
)

func (k ErrorKind) String() string {
	switch k {
	case NetworkFailure:
		return "network failure"
	case InvalidLocation:
		return "invalid location"
	case MalformedResponse:
		return "malformed response"
	}
	return "unknown"
}

// FetchError is the single error type returned by the OpenWeatherMap client.
// Callers branch on Kind; Reason carries diagnostics only.
type FetchError struct {
	Kind     ErrorKind
	Location string
	Reason   string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s for %q: %s", e.Kind, e.Location, e.Reason)
}

func networkErr(location string, err error) *FetchError {
	return &FetchError{Kind: NetworkFailure, Location: location, Reason: err.Error()}
}

func invalidLocationErr(location, reason string) *FetchError {
	if reason == "" {
		reason = "API reported failure"
	}
	return &FetchError{Kind: InvalidLocation, Location: location, Reason: reason}
}

func malformedErr(location, reason string) *FetchError {
	return &FetchError{Kind: MalformedResponse, Location: location, Reason: reason}
}
