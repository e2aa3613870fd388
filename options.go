package adptarray

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/a-peyrard/adptarray/option"
	"github.com/rs/zerolog"
)

// GrowPolicy tells how existing elements reach the new storage when the array grows.
type GrowPolicy int

const (
	// CopyOnGrow copies every element into the new storage and deletes the old instance.
	CopyOnGrow GrowPolicy = iota
	// MoveOnGrow moves elements into the new storage without calling the behavior.
	MoveOnGrow
)

func (p GrowPolicy) String() string {
	switch p {
	case CopyOnGrow:
		return "copy"
	case MoveOnGrow:
		return "move"
	default:
		return fmt.Sprintf("GrowPolicy(%d)", int(p))
	}
}

// ParseGrowPolicy parses "copy" or "move", case-insensitively.
func ParseGrowPolicy(in string) (GrowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "copy", "":
		return CopyOnGrow, nil
	case "move":
		return MoveOnGrow, nil
	default:
		return CopyOnGrow, fmt.Errorf("unknown grow policy %q", in)
	}
}

// Option configures an array at construction.
type Option = option.Option[Options]

// Options configures an array at construction.
type Options struct {
	name       string
	logger     *zerolog.Logger
	allocator  Allocator
	growPolicy GrowPolicy
}

// WithName attaches a name to every log line of the array.
func WithName(name string) option.Option[Options] {
	return func(opts *Options) {
		opts.name = name
	}
}

// WithLogger sets the logger used to report errors. A nil logger discards everything.
func WithLogger(logger *zerolog.Logger) option.Option[Options] {
	return func(opts *Options) {
		if logger == nil {
			nop := zerolog.Nop()
			logger = &nop
		}
		opts.logger = logger
	}
}

// WithAllocator sets the allocator accounting for slot storage. A nil allocator means Unbounded.
func WithAllocator(allocator Allocator) option.Option[Options] {
	return func(opts *Options) {
		if allocator == nil {
			allocator = Unbounded()
		}
		opts.allocator = allocator
	}
}

// WithGrowPolicy sets how elements are carried over when the array grows.
func WithGrowPolicy(policy GrowPolicy) option.Option[Options] {
	return func(opts *Options) {
		opts.growPolicy = policy
	}
}

var defaultLogger atomic.Pointer[zerolog.Logger]

func init() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.WarnLevel).
		With().
		Timestamp().
		Logger()
	defaultLogger.Store(&logger)
}

// SetDefaultLogger replaces the logger used by arrays built without WithLogger, and
// the one reporting calls made on a nil array.
func SetDefaultLogger(logger *zerolog.Logger) {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	defaultLogger.Store(logger)
}

// DefaultLogger returns the current package logger.
func DefaultLogger() *zerolog.Logger {
	return defaultLogger.Load()
}
