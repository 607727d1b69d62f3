package migrate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecommax/weavekit/v1/logger"
	"github.com/ecommax/weavekit/v1/vectorstore"
)

// State tracks the phase a migration is in. Transitions are strictly
// forward; a failure at any phase moves the runner to StateFailed and the
// summary records the phase it failed in.
type State string

const (
	StatePending       State = "pending"
	StateConnected     State = "connected"
	StateSourceRead    State = "source_read"
	StateSchemaDerived State = "schema_derived"
	StateTargetCreated State = "target_created"
	StateCopying       State = "copying"
	StateVerified      State = "verified"
	StateDone          State = "done"
	StateFailed        State = "failed"
)

// Summary reports the outcome of a migration run.
type Summary struct {
	Source   string        `json:"source"`
	Target   string        `json:"target"`
	Expected int64         `json:"expected"`
	Copied   int64         `json:"copied"`
	Failed   int64         `json:"failed"`
	State    State         `json:"state"`
	Verified bool          `json:"verified"`
	Duration time.Duration `json:"duration"`
}

// Runner copies one collection into another: schema first, then every object
// page by page, preserving object identity.
//
// A runner is single-use. Run may only be called once; construct a new
// runner to retry a failed migration.
type Runner struct {
	store vectorstore.Store
	log   *logger.Logger
	cfg   Config
	state State
}

// NewRunner validates the configuration and returns a runner bound to the
// given store.
func NewRunner(store vectorstore.Store, log *logger.Logger, cfg Config) (*Runner, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store is nil", vectorstore.ErrInvalidParameter)
	}
	if log == nil {
		log = logger.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		store: store,
		log:   log,
		cfg:   cfg,
		state: StatePending,
	}, nil
}

// State returns the current migration phase.
func (r *Runner) State() State {
	return r.state
}

// Run executes the migration and returns a summary. On failure the summary
// is still returned with the counts accumulated so far, alongside an error
// wrapping ErrMigration.
//
// Object IDs are carried over verbatim, so a document keeps its identity
// across the copy. After copying, the runner compares source and target
// counts; a mismatch is logged and reflected in Summary.Verified but does
// not fail the run, since per-record failures were already reported during
// the copy.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()
	summary := &Summary{
		Source: r.cfg.Source,
		Target: r.cfg.Target,
	}
	defer func() {
		summary.State = r.state
		summary.Duration = time.Since(started)
	}()

	fail := func(err error) (*Summary, error) {
		r.setState(StateFailed)
		return summary, fmt.Errorf("%w: %v", ErrMigration, err)
	}

	// Phase 1: both endpoints must be in a workable state.
	exists, err := r.store.CollectionExists(ctx, r.cfg.Source)
	if err != nil {
		return fail(err)
	}
	if !exists {
		return fail(fmt.Errorf("source collection %q does not exist", r.cfg.Source))
	}
	targetExists, err := r.store.CollectionExists(ctx, r.cfg.Target)
	if err != nil {
		return fail(err)
	}
	if targetExists && !r.cfg.Overwrite {
		return fail(fmt.Errorf("target collection %q already exists; enable overwrite to replace it", r.cfg.Target))
	}
	r.setState(StateConnected)

	expected, err := r.store.Count(ctx, r.cfg.Source)
	if err != nil {
		return fail(err)
	}
	summary.Expected = expected
	r.setState(StateSourceRead)

	// Phase 2: clone the collection shape under the target name.
	schema, err := r.store.DeriveSchema(ctx, r.cfg.Source, r.cfg.Target)
	if err != nil {
		return fail(err)
	}
	r.setState(StateSchemaDerived)

	if err := r.store.EnsureCollection(ctx, schema); err != nil {
		return fail(err)
	}
	r.setState(StateTargetCreated)

	// Phase 3: stream every object across, one page at a time.
	r.setState(StateCopying)
	cursor, err := r.store.Iterate(ctx, r.cfg.Source, r.cfg.PageSize)
	if err != nil {
		return fail(err)
	}

	page := make([]vectorstore.Record, 0, r.cfg.pageSize())
	flush := func() error {
		if len(page) == 0 {
			return nil
		}
		report, err := r.store.Write(ctx, r.cfg.Target, page, vectorstore.WriteOptions{
			BatchSize: r.cfg.batchSize(),
		})
		if report != nil {
			summary.Copied += int64(report.Succeeded)
			summary.Failed += int64(len(report.Failures))
		}
		page = page[:0]
		if err == nil {
			r.log.Info("migration progress", nil, map[string]interface{}{
				"copied":   summary.Copied,
				"expected": expected,
			})
		}
		return err
	}

	for {
		record, err := cursor.Next(ctx)
		if err != nil {
			_ = flush()
			return fail(err)
		}
		if record == nil {
			break
		}
		if record.ID == "" {
			// Identity must survive the copy; an object without an ID
			// gets a stable one assigned here.
			record.ID = uuid.NewString()
		}
		page = append(page, *record)
		if len(page) >= r.cfg.pageSize() {
			if err := flush(); err != nil {
				return fail(err)
			}
		}
	}
	if err := flush(); err != nil {
		return fail(err)
	}

	// Phase 4: compare counts. A mismatch here is informational; the copy
	// loop already reported every record it could not move.
	targetCount, err := r.store.Count(ctx, r.cfg.Target)
	if err != nil {
		return fail(err)
	}
	summary.Verified = targetCount == expected
	r.setState(StateVerified)
	if !summary.Verified {
		r.log.Warn("migration count mismatch", nil, map[string]interface{}{
			"source":   r.cfg.Source,
			"target":   r.cfg.Target,
			"expected": expected,
			"actual":   targetCount,
		})
	}

	r.setState(StateDone)
	r.log.Info("migration finished", nil, map[string]interface{}{
		"source":   r.cfg.Source,
		"target":   r.cfg.Target,
		"copied":   summary.Copied,
		"failed":   summary.Failed,
		"verified": summary.Verified,
		"duration": time.Since(started).String(),
	})
	return summary, nil
}

func (r *Runner) setState(next State) {
	r.log.Debug("migration state change", nil, map[string]interface{}{
		"from": string(r.state),
		"to":   string(next),
	})
	r.state = next
}
