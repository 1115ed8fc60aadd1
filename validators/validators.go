// Package validators holds stock validation functions for validargs.
// Unless stated otherwise each one accepts nil, leaving null handling to
// NotNil or to the caller's own functions.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/reoring/validargs"
)

var (
	ErrNotInteger  = errors.New("number must be an integer")
	ErrNotPositive = errors.New("number must be a positive integer")
	ErrTooLong     = errors.New("string too long")
	ErrNotString   = errors.New("argument must be a string")
	ErrNotBoolean  = errors.New("argument must be a boolean")
	ErrNil         = errors.New("argument must not be nil")
)

// ShortStrMax is the limit applied by ShortStr.
const ShortStrMax = 20

// PositiveNumber accepts integers greater than zero. Unsigned and signed
// integer types are accepted; floats and bools are rejected.
func PositiveNumber(v any) error {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() <= 0 {
			return ErrNotPositive
		}
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() == 0 {
			return ErrNotPositive
		}
		return nil
	}
	return ErrNotInteger
}

// ShortString returns a validator accepting strings of at most max bytes.
func ShortString(max int) validargs.ValidateFunc {
	return func(v any) error {
		if v == nil {
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return ErrNotString
		}
		if len(s) > max {
			return fmt.Errorf("%w: %d > %d", ErrTooLong, len(s), max)
		}
		return nil
	}
}

// ShortStr accepts strings of at most ShortStrMax bytes.
func ShortStr(v any) error { return ShortString(ShortStrMax)(v) }

// Boolean accepts bool values only.
func Boolean(v any) error {
	if v == nil {
		return nil
	}
	if _, ok := v.(bool); !ok {
		return ErrNotBoolean
	}
	return nil
}

// NotNil rejects nil.
func NotNil(v any) error {
	if v == nil {
		return ErrNil
	}
	return nil
}

// All runs fns in order and returns the first failure.
func All(fns ...validargs.ValidateFunc) validargs.ValidateFunc {
	return func(v any) error {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			if err := fn(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Registry maps names to validation functions, for declarations that refer
// to validators by name (see package manifest).
type Registry struct {
	mu  sync.RWMutex
	fns map[string]validargs.ValidateFunc
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{fns: map[string]validargs.ValidateFunc{}}
}

// Default returns a Registry preloaded with the stock validators under
// "positive_number", "short_str", "boolean" and "not_nil".
func Default() *Registry {
	r := NewRegistry()
	r.Register("positive_number", PositiveNumber)
	r.Register("short_str", ShortStr)
	r.Register("boolean", Boolean)
	r.Register("not_nil", NotNil)
	return r
}

// Register adds or replaces fn under name; nil functions are ignored.
func (r *Registry) Register(name string, fn validargs.ValidateFunc) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.fns[name] = fn
	r.mu.Unlock()
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (validargs.ValidateFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.fns[name]
	return fn, ok
}

// Names lists registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.fns))
	for k := range r.fns {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
