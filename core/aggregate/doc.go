// Package aggregate computes games in common and friend unions for a set of players.
//
// CommonGames fetches every library concurrently and aborts as soon as the fetch phase
// reports any failure, because an intersection missing a member would silently overstate
// what the group can play. FriendsOf is best effort: players whose friend list cannot be
// read are reported but do not prevent the others from being listed.
//
// The set algebra (Intersect, AllButOne, Union) is exposed as pure functions.
package aggregate
