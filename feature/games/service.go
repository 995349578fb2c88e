package games

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

// MinPlayers is the smallest group a games lookup accepts.
const MinPlayers = 2

// historyKind labels games lookups in the history.
const historyKind = "common_games"

// ErrTooFewPlayers is returned when fewer than MinPlayers identifiers are given.
var ErrTooFewPlayers = fmt.Errorf("please specify at least %d steam IDs", MinPlayers)

// ErrTooManyPlayers is returned when the request exceeds the configured player cap.
var ErrTooManyPlayers = errors.New("too many steam IDs in one request")

// Resolver turns raw identifiers into Steam IDs.
type Resolver interface {
	ResolveAll(ctx context.Context, raw []string) ([]steam.PlayerID, error)
}

// Aggregator computes games in common.
type Aggregator interface {
	CommonGames(ctx context.Context, ids []steam.PlayerID) (*aggregate.CommonGamesResult, error)
}

// HistoryRecorder stores completed lookups.
type HistoryRecorder interface {
	Record(ctx context.Context, kind string, players []aggregate.Player, resultCount int)
}

// Report is what a front end shows for a lookup.
type Report struct {
	// Text is the rendered report. It is empty when the lookup failed.
	Text string `json:"text"`
	// Errors holds one line per failure.
	Errors []string `json:"errors,omitempty"`
	// Result is the structured outcome.
	Result *aggregate.CommonGamesResult `json:"result,omitempty"`
}

// Service runs games-in-common lookups.
type Service struct {
	resolver   Resolver
	engine     Aggregator
	history    HistoryRecorder
	logger     *zap.Logger
	maxPlayers int
}

// NewService creates a new games service. history may be nil.
func NewService(resolver Resolver, engine Aggregator, history HistoryRecorder, logger *zap.Logger, maxPlayers int) *Service {
	return &Service{
		resolver:   resolver,
		engine:     engine,
		history:    history,
		logger:     logger,
		maxPlayers: maxPlayers,
	}
}

// CommonGames resolves raw and computes the games the players have in common. The
// returned Report is never nil; on failure it carries the error lines and err is the
// underlying error.
func (s *Service) CommonGames(ctx context.Context, raw []string) (*Report, error) {
	raw = cleanInput(raw)
	if err := s.validate(raw); err != nil {
		return &Report{Errors: []string{err.Error()}}, err
	}

	ids, err := s.resolver.ResolveAll(ctx, raw)
	if err != nil {
		s.logger.Info("Could not resolve every player", zap.Strings("players", raw), zap.Error(err))
		return &Report{Errors: failure.Lines(err)}, err
	}

	result, err := s.engine.CommonGames(ctx, ids)
	if err != nil {
		return &Report{Errors: failure.Lines(err)}, err
	}

	if s.history != nil {
		s.history.Record(ctx, historyKind, result.Players, len(result.Games))
	}

	return &Report{Text: Render(result), Result: result}, nil
}

func (s *Service) validate(raw []string) error {
	if len(raw) < MinPlayers {
		return ErrTooFewPlayers
	}
	if s.maxPlayers > 0 && len(raw) > s.maxPlayers {
		return fmt.Errorf("%w: %d > %d", ErrTooManyPlayers, len(raw), s.maxPlayers)
	}
	return nil
}

// Render formats a result as plain text.
func Render(result *aggregate.CommonGamesResult) string {
	var b strings.Builder

	count := "No"
	if len(result.Games) > 0 {
		count = fmt.Sprint(len(result.Games))
	}
	fmt.Fprintf(&b, "%s games found in common for %d players %s:\n", count, len(result.Players), playerNames(result.Players))
	for _, g := range result.Games {
		b.WriteString(g.Name + "\n")
	}

	for _, m := range result.AllButOne {
		fmt.Fprintf(&b, "\n%d games owned by everyone but %s:\n", len(m.Games), m.Player.Name())
		for _, g := range m.Games {
			b.WriteString(g.Name + "\n")
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func playerNames(players []aggregate.Player) string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name()
	}
	return strings.Join(names, ", ")
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
