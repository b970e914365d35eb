// Package common contains shared constants and sentinel errors used across
// slugmart components.
package common

// AuthorizationHeaderName is the HTTP header that carries the bearer token.
const AuthorizationHeaderName = "Authorization"

// AuthorizationMetadataKey is the gRPC metadata key for the same credential.
// gRPC lower-cases metadata keys.
const AuthorizationMetadataKey = "authorization"

// BearerScheme is the only authorization scheme accepted by the server.
const BearerScheme = "Bearer"
