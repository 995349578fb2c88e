package resolver

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"games-in-common/core/failure"
	"games-in-common/core/steam"
	"games-in-common/core/workerpool"

	"github.com/leighmacdonald/steamid/v4/steamid"
	"go.uber.org/zap"
)

const (
	// individualPrefix turns a 10-digit account suffix into a 64-bit individual Steam ID.
	individualPrefix = "7656119"
	// individualBase is the 64-bit id of account number zero.
	individualBase uint64 = 76561197960265728
)

var (
	abbreviatedPattern = regexp.MustCompile(`^\d{10}$`)
	profileURLPattern  = regexp.MustCompile(`^(?:https?://)?(?:www\.)?steamcommunity\.com/(?:id|profiles)/([^/?#]+)`)
)

// Kind classifies a raw identifier.
type Kind int

const (
	KindCanonical Kind = iota
	KindAbbreviated
	KindVanity
)

func (k Kind) String() string {
	switch k {
	case KindCanonical:
		return "canonical"
	case KindAbbreviated:
		return "abbreviated"
	default:
		return "vanity"
	}
}

// VanityLookup resolves vanity names. It is satisfied by *catalog.Catalog.
type VanityLookup interface {
	SteamIDForVanity(ctx context.Context, vanity string) (steam.PlayerID, error)
}

// Classify normalizes raw and reports which form it has.
func Classify(raw string) (string, Kind) {
	token := strings.TrimSpace(raw)
	if m := profileURLPattern.FindStringSubmatch(token); m != nil {
		token = m[1]
	}

	switch {
	case steam.IsCanonical(token):
		return token, KindCanonical
	case abbreviatedPattern.MatchString(token):
		return token, KindAbbreviated
	default:
		return token, KindVanity
	}
}

// Resolver maps raw identifiers to canonical Steam IDs.
type Resolver struct {
	lookup  VanityLookup
	workers int
	logger  *zap.Logger
}

// New creates a Resolver. workers bounds concurrent lookups in ResolveAll.
func New(lookup VanityLookup, workers int, logger *zap.Logger) *Resolver {
	return &Resolver{lookup: lookup, workers: workers, logger: logger}
}

// Resolve returns the canonical Steam ID for raw or a *failure.ProfileNotFoundError.
func (r *Resolver) Resolve(ctx context.Context, raw string) (steam.PlayerID, error) {
	token, kind := Classify(raw)

	switch kind {
	case KindCanonical:
		return steam.PlayerID(token), nil
	case KindAbbreviated:
		candidate := individualPrefix + token
		if validIndividual(candidate) {
			return steam.PlayerID(candidate), nil
		}
		r.logger.Debug("Abbreviated id is not a valid Steam ID, trying as vanity name",
			zap.String("token", token))
	}

	if token == "" {
		return "", &failure.ProfileNotFoundError{Query: raw}
	}

	id, err := r.lookup.SteamIDForVanity(ctx, token)
	if err != nil {
		return "", &failure.ProfileNotFoundError{Query: raw, Err: err}
	}
	return id, nil
}

// ResolveAll resolves every raw identifier concurrently. The returned ids keep the input
// order with duplicates removed. Identifiers that fail are collected into a
// *failure.MultiFailure and do not stop the others.
func (r *Resolver) ResolveAll(ctx context.Context, raw []string) ([]steam.PlayerID, error) {
	unique := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}

	pool := workerpool.New(r.workers, r.Resolve)
	batch, err := pool.Run(ctx, unique)
	if err != nil {
		return nil, err
	}

	byRaw := make(map[string]steam.PlayerID, len(unique))
	for _, res := range batch.Succeeded() {
		byRaw[res.Input] = res.Output
	}

	ids := make([]steam.PlayerID, 0, len(byRaw))
	emitted := make(map[steam.PlayerID]struct{}, len(byRaw))
	for _, s := range unique {
		id, ok := byRaw[s]
		if !ok {
			continue
		}
		if _, dup := emitted[id]; dup {
			continue
		}
		emitted[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, batch.Err()
}

func validIndividual(candidate string) bool {
	n, err := strconv.ParseUint(candidate, 10, 64)
	if err != nil || n <= individualBase {
		return false
	}
	sid := steamid.New(candidate)
	return sid.Valid()
}

// Split breaks request parameters into raw identifiers on commas and whitespace.
func Split(values ...string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})...)
	}
	return out
}
