package pagination

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
)

// NavigationRequest describes a navigation icon the engine needs for a page.
type NavigationRequest struct {
	Updater  Updater
	Page     int
	Target   int
	MaxPages int
	// Disabled is set when the updater sits on a page boundary under DisableAtBoundary.
	Disabled bool
}

// IconFactory materialises navigation icons. Labels and disabled rendering are
// up to the platform.
type IconFactory interface {
	NavigationIcon(req NavigationRequest) *Icon
}

// IconFactoryFunc adapts a function to IconFactory.
type IconFactoryFunc func(req NavigationRequest) *Icon

func (f IconFactoryFunc) NavigationIcon(req NavigationRequest) *Icon { return f(req) }

// SurfaceWriter applies single slot mutations to a rendered surface.
// A nil icon clears the slot.
type SurfaceWriter interface {
	Set(slot int, icon *Icon)
}

// Surface is a live rendered surface opened for one viewer.
type Surface interface {
	SurfaceWriter
	Close() error
}

// SurfaceProvider opens surfaces for viewers.
type SurfaceProvider interface {
	Open(viewer uuid.UUID, title string, dims Dimension) (Surface, error)
}

// Scheduler runs fn on the goroutine that owns pagination state.
type Scheduler interface {
	Execute(fn func())
}

// Platform bundles the collaborators a pagination is constructed against.
// It replaces any process-wide registry: every builder receives one explicitly.
type Platform struct {
	// Key identifies the provider, e.g. "tui" or "protocol".
	Key       string
	Icons     IconFactory
	Surfaces  SurfaceProvider
	Scheduler Scheduler
	Logger    *log.Logger
}

func (p *Platform) logger() *log.Logger {
	if p.Logger == nil {
		p.Logger = log.New(os.Stdout, "", log.LstdFlags)
	}
	return p.Logger
}

func (p *Platform) validate() error {
	if p == nil || p.Key == "" {
		return ErrMissingPlatform
	}
	if p.Surfaces == nil {
		return ErrMissingProvider
	}
	return nil
}

// ImmediateScheduler runs work inline on the calling goroutine. It only suits
// callers that never hand work over from another goroutine.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Execute(fn func()) { fn() }

// LoopScheduler queues work for a single owning goroutine running Run.
type LoopScheduler struct {
	queue chan func()
}

// NewLoopScheduler creates a scheduler with the given queue capacity.
func NewLoopScheduler(capacity int) *LoopScheduler {
	return &LoopScheduler{queue: make(chan func(), capacity)}
}

// Execute enqueues fn. It blocks while the queue is full.
func (s *LoopScheduler) Execute(fn func()) {
	s.queue <- fn
}

// Run drains the queue on the calling goroutine until ctx is done.
func (s *LoopScheduler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-s.queue:
			fn()
		}
	}
}

// Drain runs every queued task without blocking and reports how many ran.
func (s *LoopScheduler) Drain() int {
	n := 0
	for {
		select {
		case fn := <-s.queue:
			fn()
			n++
		default:
			return n
		}
	}
}
