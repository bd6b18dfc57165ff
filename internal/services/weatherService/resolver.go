package weatherservice

import (
	"context"
	"fmt"
	"io"
	"slices"

	"go.uber.org/zap"
)

// MaxCandidates is the most matches offered for interactive choice. A search
// returning more than this is treated as too broad.
const MaxCandidates = 5

// Chooser picks one of several candidate locations and returns its index.
type Chooser interface {
	Choose(ctx context.Context, candidates []Location) (int, error)
}

// Resolver turns a free-text query into exactly one Location.
type Resolver struct {
	Client  Client
	Chooser Chooser
	Out     io.Writer
	// MaxCandidates overrides the package default when positive.
	MaxCandidates int
	Log           *zap.SugaredLogger
}

// Resolve searches for query and returns the single match, asking the
// Chooser when the search is ambiguous.
func (r *Resolver) Resolve(ctx context.Context, query string) (Location, error) {
	log := r.logger()

	candidates, err := r.Client.SearchLocations(ctx, query)
	if err != nil {
		return Location{}, err
	}

	limit := r.MaxCandidates
	if limit <= 0 {
		limit = MaxCandidates
	}

	log.Debugw("location search finished", "query", query, "matches", len(candidates), "limit", limit)

	switch n := len(candidates); {
	case n == 0:
		return Location{}, fmt.Errorf("%w for the '%s' query, please change the request and try again",
			ErrNoLocationFound, query)
	case n == 1:
		return candidates[0], nil
	case n <= limit:
		fmt.Fprintln(r.Out, "Several locations found, choose one: ")

		idx, err := r.Chooser.Choose(ctx, candidates)
		if err != nil {
			return Location{}, err
		}
		if idx < 0 || idx >= n {
			return Location{}, fmt.Errorf("location index %d out of range [0, %d)", idx, n)
		}

		loc := takeCandidate(&candidates, idx)
		fmt.Fprintf(r.Out, "Selected: %s\n", loc)
		return loc, nil
	default:
		return Location{}, fmt.Errorf("%w: %d matches for the '%s' query (at most %d can be listed), please narrow the request",
			ErrAmbiguityOverflow, n, query, limit)
	}
}

// takeCandidate removes the candidate at idx from the set and returns it,
// so a consumed entry can't be offered again.
func takeCandidate(set *[]Location, idx int) Location {
	loc := (*set)[idx]
	*set = slices.Delete(*set, idx, idx+1)
	return loc
}

func (r *Resolver) logger() *zap.SugaredLogger {
	if r.Log == nil {
		return zap.NewNop().Sugar()
	}
	return r.Log
}
