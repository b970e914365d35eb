// Package client talks to the slugmart GraphQL endpoint over HTTP.
//
// GraphQLClient posts {query, variables} envelopes, attaches a bearer token
// when one is supplied, and maps transport and GraphQL failures onto the
// sentinel errors in this package so callers can branch with errors.Is:
//
//   - ErrUnavailable: the server could not be reached.
//   - ErrUnauthenticated: the gate refused the request or a resolver reported
//     "not authenticated".
//   - *ResponseError: any other GraphQL error list.
package client
