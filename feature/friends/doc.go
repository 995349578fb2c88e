// Package friends lists the friends of a group of players.
//
// Unlike the games lookup, failures here are not fatal: identifiers that do not resolve
// and friend lists that are private or unreadable are reported as error lines next to
// whatever could be listed.
//
// # Routes
//
//   - GET /friends?players=a,b
package friends
