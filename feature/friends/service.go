package friends

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"games-in-common/core/aggregate"
	"games-in-common/core/failure"
	"games-in-common/core/steam"

	"go.uber.org/zap"
)

const historyKind = "friends"

// ErrNoPlayers is returned when no identifier is given.
var ErrNoPlayers = errors.New("please specify at least 1 steam ID")

// ErrTooManyPlayers is returned when the request exceeds the configured player cap.
var ErrTooManyPlayers = errors.New("too many steam IDs in one request")

// Resolver turns raw identifiers into Steam IDs.
type Resolver interface {
	ResolveAll(ctx context.Context, raw []string) ([]steam.PlayerID, error)
}

// Aggregator lists friends.
type Aggregator interface {
	FriendsOf(ctx context.Context, ids []steam.PlayerID) (*aggregate.FriendsResult, error)
}

// HistoryRecorder stores completed lookups.
type HistoryRecorder interface {
	Record(ctx context.Context, kind string, players []aggregate.Player, resultCount int)
}

// Report is what a front end shows for a friends lookup.
type Report struct {
	Text   string                   `json:"text"`
	Errors []string                 `json:"errors,omitempty"`
	Result *aggregate.FriendsResult `json:"result,omitempty"`
}

// Service runs friends lookups.
type Service struct {
	resolver   Resolver
	engine     Aggregator
	history    HistoryRecorder
	logger     *zap.Logger
	maxPlayers int
}

// NewService creates a new friends service. history may be nil.
func NewService(resolver Resolver, engine Aggregator, history HistoryRecorder, logger *zap.Logger, maxPlayers int) *Service {
	return &Service{
		resolver:   resolver,
		engine:     engine,
		history:    history,
		logger:     logger,
		maxPlayers: maxPlayers,
	}
}

// FriendsOf lists the friends of every player in raw. The returned Report is never nil.
// err is nil when every player was listed, a *failure.MultiFailure when some were not,
// and any other error when nothing could be listed at all.
func (s *Service) FriendsOf(ctx context.Context, raw []string) (*Report, error) {
	raw = cleanInput(raw)
	if len(raw) == 0 {
		return &Report{Errors: []string{ErrNoPlayers.Error()}}, ErrNoPlayers
	}
	if s.maxPlayers > 0 && len(raw) > s.maxPlayers {
		err := fmt.Errorf("%w: %d > %d", ErrTooManyPlayers, len(raw), s.maxPlayers)
		return &Report{Errors: []string{err.Error()}}, err
	}

	var failures failure.MultiFailure

	ids, err := s.resolver.ResolveAll(ctx, raw)
	failures.Append(err)
	if len(ids) == 0 {
		if err == nil {
			err = failure.ErrNoPlayers
		}
		return &Report{Errors: failure.Lines(err)}, err
	}

	result, err := s.engine.FriendsOf(ctx, ids)
	failures.Append(err)
	if result == nil {
		return &Report{Errors: failure.Lines(failures.ErrOrNil())}, failures.ErrOrNil()
	}

	if s.history != nil && len(result.Friends) > 0 {
		s.history.Record(ctx, historyKind, result.Players, len(result.Friends))
	}

	report := &Report{
		Text:   Render(result),
		Errors: failure.Lines(failures.ErrOrNil()),
		Result: result,
	}
	if failures.Len() > 0 {
		s.logger.Info("Friends lookup completed with failures", zap.Int("failures", failures.Len()))
	}
	return report, failures.ErrOrNil()
}

// Render formats a result as plain text, one "id = nickname" line per friend.
func Render(result *aggregate.FriendsResult) string {
	names := make([]string, len(result.Players))
	for i, p := range result.Players {
		names[i] = p.Name()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Friends of %s:", strings.Join(names, ", "))
	for _, f := range result.Friends {
		fmt.Fprintf(&b, "\n%s = %s", f.ID, f.Nickname)
	}
	return b.String()
}

func cleanInput(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	return out
}
