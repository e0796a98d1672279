package envelope

import (
	"encoding/json"
	"fmt"
)

// Envelope is the uniform wrapper around every response body.
//
// Data carries the payload on success. Count, when the server sends
// it, is the total number of records for the resource and may exceed
// len of the page in Data.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// Unmarshal decodes an envelope body and unwraps its payload.
//
// A well-formed body with Success false is returned as an error
// carrying the server's message verbatim.
func Unmarshal[T any](body []byte) (T, *int, error) {
	e := Envelope[T]{}
	if err := json.Unmarshal(body, &e); err != nil {
		var zero T
		return zero, nil, fmt.Errorf("malformed response body: %w", err)
	}
	if !e.Success {
		var zero T
		return zero, nil, fmt.Errorf("%s", messageOr(e.Message, "request rejected"))
	}
	return e.Data, e.Count, nil
}

// ErrorMessage extracts the server's message from an error response
// body. When the body is not a readable envelope, fallback is
// returned instead.
func ErrorMessage(body []byte, fallback string) string {
	e := Envelope[json.RawMessage]{}
	if err := json.Unmarshal(body, &e); err != nil {
		return fallback
	}
	return messageOr(e.Message, fallback)
}

func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
