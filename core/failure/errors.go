package failure

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ErrRemoteUnavailable is matched by every RemoteUnavailableError.
var ErrRemoteUnavailable = errors.New("failed to get any data from Steam")

// ErrNoPlayers is returned when an operation is invoked with an empty player list.
var ErrNoPlayers = errors.New("no players given")

// ProfileNotFoundError reports a raw identifier that did not resolve to a Steam ID.
type ProfileNotFoundError struct {
	// Query is the identifier exactly as the user supplied it.
	Query string
	// Err is the underlying lookup error, if any.
	Err error
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("no public Steam profile found matching '%s'", e.Query)
}

func (e *ProfileNotFoundError) Unwrap() error {
	return e.Err
}

// PrivateOwnedGamesError reports a player whose library came back empty.
type PrivateOwnedGamesError struct {
	// Player is the display form of the player, e.g. "Gabe (76561197960287930)".
	Player string
}

func (e *PrivateOwnedGamesError) Error() string {
	return fmt.Sprintf("user %s has set their list of games to private", e.Player)
}

// PrivateFriendsError reports a player whose friend list is empty or hidden.
type PrivateFriendsError struct {
	Player string
}

func (e *PrivateFriendsError) Error() string {
	return fmt.Sprintf("user %s has set their friends list to private", e.Player)
}

// RemoteUnavailableError reports a Steam call that produced no usable response.
type RemoteUnavailableError struct {
	// Op names the remote operation, e.g. "GetOwnedGames".
	Op string
	// Subject is the id or name the call was made for. Optional.
	Subject string
	Err     error
}

func (e *RemoteUnavailableError) Error() string {
	var b strings.Builder
	b.WriteString(ErrRemoteUnavailable.Error())
	if e.Op != "" {
		b.WriteString(" (" + e.Op)
		if e.Subject != "" {
			b.WriteString(" for " + e.Subject)
		}
		b.WriteString(")")
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	b.WriteString("; the Steam API is probably just being janky, try again?")
	return b.String()
}

func (e *RemoteUnavailableError) Unwrap() error {
	return e.Err
}

// Is makes every RemoteUnavailableError match ErrRemoteUnavailable.
func (e *RemoteUnavailableError) Is(target error) bool {
	return target == ErrRemoteUnavailable
}

// Remote wraps err as a RemoteUnavailableError for the given operation.
// Errors that already match ErrRemoteUnavailable are returned unchanged.
func Remote(op, subject string, err error) error {
	if err != nil && errors.Is(err, ErrRemoteUnavailable) {
		return err
	}
	return &RemoteUnavailableError{Op: op, Subject: subject, Err: err}
}

// MultiFailure collects independent per-item failures from one batch operation.
// The zero value is empty and ready to use.
type MultiFailure struct {
	err error
}

// Append adds err to the collection. Nil errors are ignored and nested
// MultiFailures are flattened.
func (m *MultiFailure) Append(err error) {
	if err == nil {
		return
	}
	var nested *MultiFailure
	if errors.As(err, &nested) && nested != m {
		for _, e := range nested.Errors() {
			m.err = multierr.Append(m.err, e)
		}
		return
	}
	m.err = multierr.Append(m.err, err)
}

// Errors returns the collected failures.
func (m *MultiFailure) Errors() []error {
	if m == nil {
		return nil
	}
	return multierr.Errors(m.err)
}

// Len returns the number of collected failures.
func (m *MultiFailure) Len() int {
	return len(m.Errors())
}

func (m *MultiFailure) Error() string {
	errs := m.Errors()
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d failures: %s", len(errs), strings.Join(msgs, "; "))
}

// Unwrap exposes the members to errors.Is and errors.As.
func (m *MultiFailure) Unwrap() []error {
	return m.Errors()
}

// ErrOrNil returns m as an error, or nil when nothing was collected.
func (m *MultiFailure) ErrOrNil() error {
	if m == nil || m.err == nil {
		return nil
	}
	return m
}

// Lines renders err as one user-facing line per failure.
func Lines(err error) []string {
	if err == nil {
		return nil
	}
	var mf *MultiFailure
	if errors.As(err, &mf) {
		errs := mf.Errors()
		lines := make([]string, 0, len(errs))
		for _, e := range errs {
			lines = append(lines, e.Error())
		}
		return lines
	}
	return []string{err.Error()}
}
