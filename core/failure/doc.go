// Package failure defines the error taxonomy shared by the lookup and aggregation layers.
//
// Every error a front end may show to a user lives here, so that handlers and CLI commands
// can render failures one line at a time without knowing which layer produced them.
//
// # Error Types
//
//   - ProfileNotFoundError: a raw identifier could not be resolved to a Steam ID.
//   - PrivateOwnedGamesError: a player's game library came back empty (private profile).
//   - PrivateFriendsError: a player's friend list came back empty or was refused.
//   - RemoteUnavailableError: Steam returned nothing usable (network, status, payload).
//     It matches ErrRemoteUnavailable with errors.Is.
//
// # MultiFailure
//
// Batch operations isolate per-item failures and hand them back as a MultiFailure.
// It is built on go.uber.org/multierr and unwraps to its members, so errors.As finds
// a specific failure type anywhere inside it.
//
//	var mf *failure.MultiFailure
//	if errors.As(err, &mf) {
//	    for _, line := range failure.Lines(err) {
//	        fmt.Println(line)
//	    }
//	}
package failure
