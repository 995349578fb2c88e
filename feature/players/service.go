package players

import (
	"context"
	"errors"

	"games-in-common/core/failure"
	"games-in-common/core/resolver"
	"games-in-common/core/steam"
	"games-in-common/core/workerpool"

	"go.uber.org/zap"
)

// ErrNoPlayers is returned when no identifier is given.
var ErrNoPlayers = errors.New("please specify at least 1 steam ID")

// IdentityResolver resolves a single raw identifier.
type IdentityResolver interface {
	Resolve(ctx context.Context, raw string) (steam.PlayerID, error)
}

// NicknameSource looks up nicknames.
type NicknameSource interface {
	NicknamesFor(ctx context.Context, ids []steam.PlayerID) map[steam.PlayerID]string
}

// Resolved is one identifier that mapped to a Steam ID.
type Resolved struct {
	Input    string         `json:"input"`
	Kind     string         `json:"kind"`
	SteamID  steam.PlayerID `json:"steam_id"`
	Nickname string         `json:"nickname,omitempty"`
}

// Report is the outcome of a resolve request. Players keep the input order.
type Report struct {
	Players []Resolved `json:"players"`
	Errors  []string   `json:"errors,omitempty"`
}

// Service resolves identifiers.
type Service struct {
	resolver IdentityResolver
	nicks    NicknameSource
	workers  int
	logger   *zap.Logger
}

// NewService creates a new players service.
func NewService(r IdentityResolver, nicks NicknameSource, workers int, logger *zap.Logger) *Service {
	return &Service{resolver: r, nicks: nicks, workers: workers, logger: logger}
}

// Resolve maps every raw identifier to a Steam ID and nickname. Identifiers that fail are
// listed in Report.Errors and in the returned *failure.MultiFailure.
func (s *Service) Resolve(ctx context.Context, raw []string) (*Report, error) {
	if len(raw) == 0 {
		return &Report{Errors: []string{ErrNoPlayers.Error()}}, ErrNoPlayers
	}

	unique := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, in := range raw {
		if _, dup := seen[in]; !dup {
			seen[in] = struct{}{}
			unique = append(unique, in)
		}
	}

	batch, err := workerpool.New(s.workers, s.resolver.Resolve).Run(ctx, unique)
	if err != nil {
		return nil, err
	}

	byInput := make(map[string]steam.PlayerID, batch.Len())
	ids := make([]steam.PlayerID, 0, batch.Len())
	for _, r := range batch.Succeeded() {
		byInput[r.Input] = r.Output
		ids = append(ids, r.Output)
	}
	nicks := s.nicks.NicknamesFor(ctx, ids)

	report := &Report{Players: make([]Resolved, 0, len(byInput))}
	for _, in := range unique {
		id, ok := byInput[in]
		if !ok {
			continue
		}
		_, kind := resolver.Classify(in)
		report.Players = append(report.Players, Resolved{
			Input:    in,
			Kind:     kind.String(),
			SteamID:  id,
			Nickname: nicks[id],
		})
	}

	err = batch.Err()
	report.Errors = failure.Lines(err)
	return report, err
}
