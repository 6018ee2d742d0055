package virtkit

import "time"

// Option configures a Virtualizer or Grid.
type Option func(*options)

// options holds all configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for options.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptCustomThing = virtkit.NewOptKey("customThing", defaultValue)
//
//	// Set options
//	v := virtkit.New(n, policy, virtkit.WithOpt(OptCustomThing, value))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

var (
	// OptOverscan is the number of extra items materialized beyond each end
	// of the strictly visible range.
	OptOverscan = NewOptKey("overscan", 3)

	// OptViewportExtent fixes the viewport extent. When set (> 0) the
	// observer never subscribes to resize events: explicit configuration
	// wins over automatic measurement.
	OptViewportExtent = NewOptKey[float32]("viewportExtent", 0)

	// OptIdleDelay is how long after the last scroll event the is-scrolling
	// flag clears.
	OptIdleDelay = NewOptKey("idleDelay", 150*time.Millisecond)

	// OptColumns is the column count for a Grid.
	OptColumns = NewOptKey("columns", 1)

	// OptCellWidth is the cell width for a Grid. Zero leaves X/W positioning
	// to the caller.
	OptCellWidth = NewOptKey[float32]("cellWidth", 0)
)

// Overscan sets the overscan margin in items (default 3).
func Overscan(n int) Option {
	return WithOpt(OptOverscan, n)
}

// ViewportExtent fixes the viewport extent instead of measuring the surface.
func ViewportExtent(h float32) Option {
	return WithOpt(OptViewportExtent, h)
}

// IdleDelay sets the scroll-idle debounce delay (default 150ms).
func IdleDelay(d time.Duration) Option {
	return WithOpt(OptIdleDelay, d)
}

// Columns sets the Grid column count (default 1).
func Columns(n int) Option {
	return WithOpt(OptColumns, n)
}

// CellWidth sets the Grid cell width.
func CellWidth(w float32) Option {
	return WithOpt(OptCellWidth, w)
}
