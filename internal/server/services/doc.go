// Package services contains server-side business logic: login and token
// checks, account administration, listings, messages, orders and image
// upload URLs. Services sit between the GraphQL resolvers and the
// repositories; they normalize input, map repository errors to the public
// sentinels in package common, and log failures that clients only see as
// "internal error".
package services
