package copri

import (
	"runtime"

	"golang.org/x/exp/constraints"
)

// Options configures the CB entry point. The zero value is a valid,
// fully sequential configuration: Parallel is false and Logger is nil
// (diagnostics silenced). This is the only configuration surface the
// algorithms recognize — everything else (how S was read, how the
// result is formatted) is a caller concern.
//
// The yaml tags let a caller unmarshal Options from a config file of
// their own choosing; reading that file is the caller's job, not
// copri's (file I/O is out of scope), but the shape and defaults of the
// config belong here.
type Options struct {
	// Parallel enables the concurrent split at CB's two sibling
	// recursive calls. All other routines stay sequential.
	Parallel bool `yaml:"parallel"`

	// Threads caps the number of CB branches that may be concurrently
	// in flight across the whole recursion. Zero means
	// runtime.GOMAXPROCS(0). Ignored when Parallel is false.
	Threads int `yaml:"threads"`

	// Logger receives diagnostics; nil silences them. Not serialized:
	// a Logger has no meaningful YAML representation.
	Logger Logger `yaml:"-"`
}

// DefaultOptions returns the sequential, silent configuration.
func DefaultOptions() *Options {
	return &Options{}
}

// normalized returns a copy of o (or a fresh DefaultOptions if o is
// nil) with Threads clamped to a sane range.
func (o *Options) normalized() *Options {
	if o == nil {
		o = DefaultOptions()
	}
	out := *o
	if out.Threads <= 0 {
		out.Threads = runtime.GOMAXPROCS(0)
	}
	out.Threads = clamp(out.Threads, 1, 4096)
	return &out
}

func (o *Options) logger() Logger {
	if o == nil {
		return nil
	}
	return o.Logger
}

// clamp restricts v to [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
