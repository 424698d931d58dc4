// Package directory holds the authoritative in-memory snapshot and its
// persistence handle. It is the one shared state object: every service
// receives a *Directory instead of reaching for globals, so tests can
// build isolated instances.
package directory

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"tutorhub/internal/model"
	"tutorhub/internal/seed"
	"tutorhub/internal/store"
)

// Option configures a Directory at Open time.
type Option func(*Directory)

// WithLatency sets the simulated per-operation latency. The delay runs
// before the operation's work, is not tied to the context, and is the only
// suspension point an operation has.
func WithLatency(d time.Duration) Option {
	return func(dir *Directory) { dir.latency = d }
}

// WithLogger sets the logger used for load/seed diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(dir *Directory) { dir.log = log }
}

// Directory owns the snapshot for the process lifetime. All reads and
// mutations go through View/Update, which serialize access; every
// successful Update persists the whole snapshot back to the store.
type Directory struct {
	mu      sync.Mutex
	snap    *model.Snapshot
	store   store.Store
	latency time.Duration
	log     *zap.Logger
}

// Open loads the last persisted snapshot, falling back to the seed fixture
// when nothing is stored or the stored document cannot be decoded. Corrupt
// data is logged and discarded, never surfaced to the caller.
func Open(ctx context.Context, st store.Store, opts ...Option) (*Directory, error) {
	d := &Directory{store: st, log: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}

	snap, err := st.Load(ctx)
	if err != nil {
		d.log.Warn("discarding unreadable snapshot, reseeding", zap.Error(err))
		snap = nil
	}
	if snap == nil {
		snap = seed.Snapshot()
		if err := st.Save(ctx, snap); err != nil {
			return nil, err
		}
		d.log.Info("seeded directory snapshot",
			zap.Int("users", len(snap.Users)),
			zap.Int("tutors", len(snap.Tutors)),
			zap.Int("posts", len(snap.Posts)),
		)
	}

	d.snap = snap
	return d, nil
}

// View runs fn against the snapshot without persisting afterwards. fn must
// not retain pointers into the snapshot past its return.
func (d *Directory) View(ctx context.Context, fn func(snap *model.Snapshot) error) error {
	d.simulateLatency()
	d.mu.Lock()
	defer d.mu.Unlock()
	return fn(d.snap)
}

// Update runs fn against the snapshot and, if fn succeeds, persists the
// whole snapshot. When fn fails nothing is written, so a rejected mutation
// leaves no partial state behind.
func (d *Directory) Update(ctx context.Context, fn func(snap *model.Snapshot) error) error {
	d.simulateLatency()
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := fn(d.snap); err != nil {
		return err
	}
	return d.store.Save(ctx, d.snap)
}

// simulateLatency emulates network delay ahead of the critical section.
// Deliberately not cancellable: once invoked, the operation completes.
func (d *Directory) simulateLatency() {
	if d.latency > 0 {
		time.Sleep(d.latency)
	}
}
