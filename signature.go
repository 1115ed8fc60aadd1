package validargs

import "strconv"

// Spec is the immutable, extracted form of one parameter.
type Spec struct {
	name      string
	index     int
	kind      Kind
	validator *Validator
	def       Default
}

func (s Spec) Name() string { return s.name }

// Index is the ordinal position of the parameter in its signature.
func (s Spec) Index() int { return s.index }

func (s Spec) Kind() Kind { return s.kind }

// Validator returns the parameter's validator, or nil when it has none.
func (s Spec) Validator() *Validator { return s.validator }

// Default returns the default policy used when the parameter is omitted.
func (s Spec) Default() Default { return s.def }

// Required reports whether the parameter must be supplied by every call.
func (s Spec) Required() bool { return !s.def.IsSet() }

// Signature is the ordered parameter layout of one wrapped callable.
// It is read-only after NewSignature returns and may be shared freely.
type Signature struct {
	name       string
	specs      []Spec
	positional []int // ordinals of PositionalOnly and PositionalOrNamed specs
	named      []int // ordinals of NamedOnly specs
	byName     map[string]int
}

// NewSignature extracts a Signature from declarations given in declaration
// order. name is used in error messages only. Defaults are not validated here.
func NewSignature(name string, params ...Param) (*Signature, error) {
	sig := &Signature{
		name:   name,
		specs:  make([]Spec, 0, len(params)),
		byName: make(map[string]int, len(params)),
	}
	prev := PositionalOnly
	for i, p := range params {
		if p.Name == "" {
			return nil, &DeclarationError{Func: name, Reason: "parameter " + strconv.Itoa(i) + " has no name"}
		}
		if _, dup := sig.byName[p.Name]; dup {
			return nil, &DeclarationError{Func: name, Param: p.Name, Reason: "duplicate parameter name"}
		}
		if p.Kind < PositionalOnly || p.Kind > NamedOnly {
			return nil, &DeclarationError{Func: name, Param: p.Name, Reason: "unknown kind " + p.Kind.String()}
		}
		if p.Kind < prev {
			return nil, &DeclarationError{Func: name, Param: p.Name, Reason: p.Kind.String() + " parameter follows " + prev.String() + " parameter"}
		}
		prev = p.Kind

		sp := Spec{name: p.Name, index: i, kind: p.Kind, def: p.Default}
		if v, ok := p.Default.Value().(*Validator); ok && p.Default.IsSet() && v != nil {
			sp.validator = v
			sp.def = v.def
		}
		sig.specs = append(sig.specs, sp)
		sig.byName[p.Name] = i
		if p.Kind.Positional() {
			sig.positional = append(sig.positional, i)
		} else {
			sig.named = append(sig.named, i)
		}
	}
	return sig, nil
}

// MustSignature is like NewSignature but panics on error.
func MustSignature(name string, params ...Param) *Signature {
	s, err := NewSignature(name, params...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Signature) Name() string { return s.name }

// Len returns the number of parameters.
func (s *Signature) Len() int { return len(s.specs) }

// At returns the parameter at ordinal i.
func (s *Signature) At(i int) Spec { return s.specs[i] }

// Lookup returns the parameter declared under name.
func (s *Signature) Lookup(name string) (Spec, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Spec{}, false
	}
	return s.specs[i], true
}

// Params returns a copy of all parameters in ordinal order.
func (s *Signature) Params() []Spec {
	out := make([]Spec, len(s.specs))
	copy(out, s.specs)
	return out
}

// MaxPositional is the number of parameters that accept a positional value.
func (s *Signature) MaxPositional() int { return len(s.positional) }
