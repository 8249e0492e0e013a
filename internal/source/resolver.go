// Package source resolves the menu from an ordered list of tiers: the
// remote endpoint, the local store, then the compiled-in fallback list.
// The first tier that yields items wins.
package source

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/littlelemon/internal/model"
	"github.com/idilsaglam/littlelemon/internal/store"
)

// Attempt is the outcome of one tier.
type Attempt struct {
	Source model.Source
	Count  int
	Err    error
}

// OK reports whether the tier produced items.
func (a Attempt) OK() bool { return a.Err == nil }

// Result is a finished resolution.
type Result struct {
	Items    []model.MenuItem
	Source   model.Source
	Attempts []Attempt

	// PersistErr is set when remote items could not be saved locally.
	// It never affects Items or Source.
	PersistErr error
}

// Config wires the tiers. Remote and Store may be nil; the tier is then
// skipped. An empty Fallback uses DefaultMenu.
type Config struct {
	Remote   Fetcher
	Store    store.Store
	Fallback []model.MenuItem

	// OnAttempt, when set, is called after every tier in order.
	OnAttempt func(Attempt)

	Logger *zerolog.Logger
}

// Resolver runs one sequential pass over the tiers per Resolve call.
type Resolver struct {
	remote    Fetcher
	store     store.Store
	fallback  []model.MenuItem
	onAttempt func(Attempt)
	log       zerolog.Logger
}

func New(cfg Config) *Resolver {
	fallback := cfg.Fallback
	if len(fallback) == 0 {
		fallback = DefaultMenu()
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &Resolver{
		remote:    cfg.Remote,
		store:     cfg.Store,
		fallback:  fallback,
		onAttempt: cfg.OnAttempt,
		log:       logger,
	}
}

type tier struct {
	source model.Source
	fetch  func(ctx context.Context) ([]model.MenuItem, error)
}

// Resolve tries each tier in turn and returns the first non-empty
// result. It only fails with ErrExhausted, which the default fallback
// rules out.
func (r *Resolver) Resolve(ctx context.Context) (Result, error) {
	// A schema failure disables the store for this pass only.
	var storeErr error
	if r.store != nil {
		if err := r.store.CreateSchema(ctx); err != nil {
			storeErr = &PersistenceError{Op: "create schema", Err: err}
			r.log.Warn().Err(err).Msg("local store unavailable")
		}
	}

	var res Result
	for _, t := range r.tiers(storeErr) {
		items, err := t.fetch(ctx)
		if err == nil && len(items) == 0 {
			err = ErrEmptyResult
		}
		a := Attempt{Source: t.source, Count: len(items), Err: err}
		res.Attempts = append(res.Attempts, a)
		r.report(a)
		if err != nil {
			continue
		}

		res.Items, res.Source = items, t.source
		if t.source == model.SourceRemote {
			res.PersistErr = r.persist(ctx, items, storeErr)
		}
		return res, nil
	}
	return res, ErrExhausted
}

func (r *Resolver) tiers(storeErr error) []tier {
	var ts []tier
	if r.remote != nil {
		ts = append(ts, tier{model.SourceRemote, r.remote.Fetch})
	}
	if r.store != nil {
		ts = append(ts, tier{model.SourceLocal, func(ctx context.Context) ([]model.MenuItem, error) {
			if storeErr != nil {
				return nil, storeErr
			}
			items, err := r.store.ReadAll(ctx)
			if err != nil {
				return nil, &PersistenceError{Op: "read", Err: err}
			}
			return items, nil
		}})
	}
	ts = append(ts, tier{model.SourceFallback, func(context.Context) ([]model.MenuItem, error) {
		out := make([]model.MenuItem, len(r.fallback))
		copy(out, r.fallback)
		return out, nil
	}})
	return ts
}

func (r *Resolver) persist(ctx context.Context, items []model.MenuItem, storeErr error) error {
	if r.store == nil {
		return nil
	}
	if storeErr != nil {
		return storeErr
	}
	if err := r.store.WriteAll(ctx, items); err != nil {
		r.log.Warn().Err(err).Int("count", len(items)).Msg("saving menu locally failed")
		return &PersistenceError{Op: "write", Err: err}
	}
	r.log.Debug().Int("count", len(items)).Msg("menu saved locally")
	return nil
}

func (r *Resolver) report(a Attempt) {
	if a.OK() {
		r.log.Info().Stringer("tier", a.Source).Int("count", a.Count).Msg("menu loaded")
	} else {
		r.log.Warn().Stringer("tier", a.Source).Err(a.Err).Msg("tier failed")
	}
	if r.onAttempt != nil {
		r.onAttempt(a)
	}
}

// Describe returns the transient status line for a tier transition, or
// "" when there is nothing worth telling the user.
func Describe(a Attempt) string {
	if a.OK() {
		return ""
	}
	switch a.Source {
	case model.SourceRemote:
		return "Could not fetch from API. Trying database..."
	case model.SourceLocal:
		return "Could not fetch from API or database. Using local data..."
	default:
		return "Could not load the menu."
	}
}

// Summary returns the status line for a finished resolution: the last
// fallback that happened, or "" when the first tier answered.
func Summary(res Result) string {
	msg := ""
	for _, a := range res.Attempts {
		if d := Describe(a); d != "" {
			msg = d
		}
	}
	if res.Source == model.SourceLocal && msg != "" {
		return "Could not fetch from API. Showing saved menu."
	}
	return msg
}

// IsRemote reports whether err came from the remote tier.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// IsPersistence reports whether err came from the local store.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
