// Package cli implements the slugmart command-line client.
//
// The root command loads configuration (defaults, --config file, environment,
// then --server/--timeout flags), builds a GraphQL client and dispatches to
// one of the subcommands:
//
//	slugmart login                                   prompt for credentials, print id, name and token
//	slugmart check    --token T                      resolve a token to its account id
//	slugmart accounts --token T                      list accounts (protected)
//	slugmart upload   --token T --folder F --file P  presign an upload and PUT the file
package cli
