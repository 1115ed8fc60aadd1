package validargs

// Bind matches args against sig and resolves omitted parameters from their
// defaults. It never runs validators. On failure it returns a *BindingError
// and no Resolved.
func Bind(sig *Signature, args Args) (*Resolved, error) {
	pos := args.Positional
	if len(pos) > len(sig.positional) {
		return nil, &BindingError{Func: sig.name, Code: CodeTooManyPositional, Max: len(sig.positional), Got: len(pos)}
	}

	r := newResolved(sig)
	bound := make([]bool, len(sig.specs))
	for i, v := range pos {
		idx := sig.positional[i]
		r.set(idx, v, PresenceSupplied)
		bound[idx] = true
	}

	// Named values are consumed by marking; the caller's map is never mutated.
	var used map[string]struct{}
	take := func(idx int) {
		name := sig.specs[idx].name
		v, ok := args.Named[name]
		if !ok {
			return
		}
		if used == nil {
			used = make(map[string]struct{}, len(args.Named))
		}
		used[name] = struct{}{}
		r.set(idx, v, PresenceSupplied)
		bound[idx] = true
	}
	for _, idx := range sig.positional[len(pos):] {
		// A positional-only name supplied by name stays unmatched.
		if sig.specs[idx].kind == PositionalOnly {
			continue
		}
		take(idx)
	}
	for _, idx := range sig.named {
		take(idx)
	}

	if len(used) < len(args.Named) {
		var extra []string
		for _, name := range sortedKeys(args.Named) {
			if _, ok := used[name]; !ok {
				extra = append(extra, name)
			}
		}
		return nil, &BindingError{Func: sig.name, Code: CodeUnexpectedNamed, Names: extra}
	}

	var missing []string
	for i, sp := range sig.specs {
		if bound[i] {
			continue
		}
		if sp.def.IsSet() {
			r.set(i, sp.def.Value(), PresenceDefaultApplied)
			continue
		}
		missing = append(missing, sp.name)
	}
	if len(missing) > 0 {
		return nil, &BindingError{Func: sig.name, Code: CodeMissingRequired, Names: missing}
	}
	return r, nil
}
