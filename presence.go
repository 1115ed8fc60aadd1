package validargs

import "sort"

// Presence is the bit flag recorded for each resolved argument.
type Presence uint8

const (
	PresenceSupplied       Presence = 1 << iota // Value came from the caller.
	PresenceWasNull                             // Resolved value is nil.
	PresenceDefaultApplied                      // Value came from the declared default.
)

// PresenceMap maps parameter names to Presence flags.
type PresenceMap map[string]Presence

// Resolved holds exactly one value per parameter of its Signature.
// It is created per call and never shared between calls.
type Resolved struct {
	sig      *Signature
	values   []any
	presence []Presence
}

func newResolved(sig *Signature) *Resolved {
	return &Resolved{
		sig:      sig,
		values:   make([]any, len(sig.specs)),
		presence: make([]Presence, len(sig.specs)),
	}
}

func (r *Resolved) set(i int, v any, p Presence) {
	if v == nil {
		p |= PresenceWasNull
	}
	r.values[i] = v
	r.presence[i] = p
}

// Signature returns the signature the values were bound against.
func (r *Resolved) Signature() *Signature { return r.sig }

// At returns the value of the parameter at ordinal i.
func (r *Resolved) At(i int) any { return r.values[i] }

// Value returns the value bound to the named parameter.
func (r *Resolved) Value(name string) (any, bool) {
	i, ok := r.sig.byName[name]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// Values returns all values in ordinal order.
func (r *Resolved) Values() []any {
	out := make([]any, len(r.values))
	copy(out, r.values)
	return out
}

// Map returns a name -> value mapping covering every parameter.
func (r *Resolved) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for i, sp := range r.sig.specs {
		m[sp.name] = r.values[i]
	}
	return m
}

// Positional returns the values of positional-capable parameters in ordinal
// order, the shape in which a call passes them.
func (r *Resolved) Positional() []any {
	out := make([]any, len(r.sig.positional))
	for j, i := range r.sig.positional {
		out[j] = r.values[i]
	}
	return out
}

// Named returns the values of named-only parameters keyed by name.
func (r *Resolved) Named() map[string]any {
	m := make(map[string]any, len(r.sig.named))
	for _, i := range r.sig.named {
		m[r.sig.specs[i].name] = r.values[i]
	}
	return m
}

// Presence returns presence flags keyed by parameter name.
func (r *Resolved) Presence() PresenceMap {
	pm := make(PresenceMap, len(r.presence))
	for i, sp := range r.sig.specs {
		pm[sp.name] = r.presence[i]
	}
	return pm
}

// Defaulted returns the names of parameters filled from defaults, in
// ordinal order.
func (r *Resolved) Defaulted() []string {
	var out []string
	for i, p := range r.presence {
		if p&PresenceDefaultApplied != 0 {
			out = append(out, r.sig.specs[i].name)
		}
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
