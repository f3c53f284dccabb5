package pagination

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

// ContentSource produces the content of an asynchronous pagination.
type ContentSource func(ctx context.Context) ([]*Icon, error)

// Eager wraps content that is already available.
func Eager(icons ...*Icon) ContentSource {
	icons = slices.Clone(icons)
	return func(context.Context) ([]*Icon, error) { return icons, nil }
}

// AsyncPagination is a Pagination whose content resolves in the background.
// Until then every content slot shows the waiting icon. Resolution is applied
// once, on the platform scheduler, and dropped if the pagination was closed.
type AsyncPagination struct {
	*Pagination

	source   ContentSource
	waiting  *Icon
	timedOut *Icon
	failed   *Icon
	timeout  time.Duration

	// placeholders are the zone slots currently covered by a status icon.
	placeholders []int
	started      bool
	settled      bool

	mu   sync.Mutex
	err  error
	done chan struct{}
}

// AsyncBuilder assembles an AsyncPagination on top of a PaginationBuilder.
type AsyncBuilder struct {
	base     *PaginationBuilder
	source   ContentSource
	waiting  *Icon
	timedOut *Icon
	failed   *Icon
	timeout  time.Duration
}

// NewAsyncPagination wraps base; any Contents set on base are replaced by the source.
func NewAsyncPagination(base *PaginationBuilder) *AsyncBuilder {
	return &AsyncBuilder{base: base}
}

// Source sets where content comes from.
func (b *AsyncBuilder) Source(src ContentSource) *AsyncBuilder {
	b.source = src
	return b
}

// Waiting sets the icon shown in content slots until content resolves.
func (b *AsyncBuilder) Waiting(icon *Icon) *AsyncBuilder {
	b.waiting = icon
	return b
}

// TimedOut sets the icon shown when resolution exceeds the timeout.
func (b *AsyncBuilder) TimedOut(icon *Icon) *AsyncBuilder {
	b.timedOut = icon
	return b
}

// Failed sets the icon shown when the source returns an error. Without one,
// the content slots are cleared.
func (b *AsyncBuilder) Failed(icon *Icon) *AsyncBuilder {
	b.failed = icon
	return b
}

// Timeout bounds how long the source may take. Zero waits forever.
func (b *AsyncBuilder) Timeout(d time.Duration) *AsyncBuilder {
	b.timeout = d
	return b
}

// Build validates the pagination and the source.
func (b *AsyncBuilder) Build() (*AsyncPagination, error) {
	if b.source == nil {
		return nil, errors.New("async pagination: no content source set")
	}
	if b.base.base.platform == nil || b.base.base.platform.Scheduler == nil {
		return nil, fmt.Errorf("async pagination: %w", ErrMissingScheduler)
	}
	p, err := b.base.Contents().Build()
	if err != nil {
		return nil, err
	}
	return &AsyncPagination{
		Pagination: p,
		source:     b.source,
		waiting:    b.waiting,
		timedOut:   b.timedOut,
		failed:     b.failed,
		timeout:    b.timeout,
		done:       make(chan struct{}),
	}, nil
}

type asyncResult struct {
	icons []*Icon
	err   error
}

// Open shows the waiting icon, opens the surface and starts resolving content.
// ctx is handed to the source; the timeout never cancels it.
func (a *AsyncPagination) Open(ctx context.Context) error {
	if a.started {
		return a.Pagination.Open()
	}
	a.showPlaceholders(a.waiting)
	if err := a.Pagination.Open(); err != nil {
		return err
	}
	a.started = true

	results := make(chan asyncResult, 1)
	go func() {
		icons, err := a.source(ctx)
		results <- asyncResult{icons: icons, err: err}
	}()
	go a.await(results)
	return nil
}

func (a *AsyncPagination) await(results <-chan asyncResult) {
	var deadline <-chan time.Time
	if a.timeout > 0 {
		t := time.NewTimer(a.timeout)
		defer t.Stop()
		deadline = t.C
	}

	sched := a.platform.Scheduler
	select {
	case r := <-results:
		sched.Execute(func() { a.resolve(r) })
	case <-deadline:
		sched.Execute(a.expire)
	}
}

// resolve runs on the owning goroutine and performs the single rebuild.
func (a *AsyncPagination) resolve(r asyncResult) {
	if a.settled {
		return
	}
	a.settled = true
	if a.closed {
		a.finish(ErrClosed)
		return
	}
	if r.err != nil {
		a.platform.logger().Printf("pagination: async content for %s failed: %v", a.viewer, r.err)
		a.showPlaceholders(a.failed)
		a.finish(r.err)
		return
	}

	a.clearPlaceholders()
	_ = a.section.SetContents(r.icons)
	a.finish(nil)
}

func (a *AsyncPagination) expire() {
	if a.settled {
		return
	}
	a.settled = true
	if a.closed {
		a.finish(ErrClosed)
		return
	}
	a.platform.logger().Printf("pagination: async content for %s timed out after %s", a.viewer, a.timeout)
	a.showPlaceholders(a.timedOut)
	a.finish(ErrTimedOut)
}

// showPlaceholders covers every content slot with icon, or clears them when icon is nil.
// Explicit overrides stay on top.
func (a *AsyncPagination) showPlaceholders(icon *Icon) {
	if icon == nil {
		a.clearPlaceholders()
		return
	}
	a.placeholders = a.section.Slots()
	for _, slot := range a.placeholders {
		a.locator.Placeholder(slot, icon)
		a.writeSlot(slot)
	}
}

func (a *AsyncPagination) clearPlaceholders() {
	for _, slot := range a.placeholders {
		a.locator.ClearPlaceholder(slot)
		a.writeSlot(slot)
	}
	a.placeholders = nil
}

func (a *AsyncPagination) finish(err error) {
	a.mu.Lock()
	a.err = err
	a.mu.Unlock()
	close(a.done)
}

// Done is closed once content resolved, failed, timed out or was discarded.
func (a *AsyncPagination) Done() <-chan struct{} { return a.done }

// Err returns the resolution outcome once Done is closed.
func (a *AsyncPagination) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Wait blocks until resolution finishes or ctx is done.
func (a *AsyncPagination) Wait(ctx context.Context) error {
	select {
	case <-a.done:
		return a.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Resolved reports whether content arrived successfully.
func (a *AsyncPagination) Resolved() bool {
	select {
	case <-a.done:
		return a.Err() == nil
	default:
		return false
	}
}
