package client

import (
	"errors"
	"strings"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthenticated = errors.New("not authenticated")
)

// ResponseError carries the messages of a GraphQL "errors" array.
type ResponseError struct {
	Messages []string
}

func (e *ResponseError) Error() string {
	return strings.Join(e.Messages, "; ")
}
