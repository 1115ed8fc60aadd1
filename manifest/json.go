package manifest

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/reoring/validargs"
	"github.com/reoring/validargs/validators"
)

type jsonDocument struct {
	Name   string           `json:"name"`
	Params []map[string]any `json:"params"`
}

// LoadJSON parses a JSON manifest. Integral numbers decode as int64 and other
// numbers as float64. A nil reg means validators.Default().
func LoadJSON(data []byte, reg *validators.Registry) (*Document, error) {
	var jd jsonDocument
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(&jd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	raws := make([]rawParam, 0, len(jd.Params))
	for i, m := range jd.Params {
		rp, err := fromMap(m, "params["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		rp.def = normalizeNumbers(rp.def)
		raws = append(raws, rp)
	}
	return build(jd.Name, raws, reg)
}

// ArgsFromJSON decodes call arguments: positional as a JSON array and named
// as a JSON object. Empty inputs mean no arguments of that kind.
func ArgsFromJSON(positional, named []byte) (validargs.Args, error) {
	var args validargs.Args
	if len(bytes.TrimSpace(positional)) > 0 {
		var pos []any
		if err := decodeNumbers(positional, &pos); err != nil {
			return args, fmt.Errorf("positional arguments: %w", err)
		}
		for i := range pos {
			pos[i] = normalizeNumbers(pos[i])
		}
		args.Positional = pos
	}
	if len(bytes.TrimSpace(named)) > 0 {
		var nm map[string]any
		if err := decodeNumbers(named, &nm); err != nil {
			return args, fmt.Errorf("named arguments: %w", err)
		}
		for k, v := range nm {
			nm[k] = normalizeNumbers(v)
		}
		args.Named = nm
	}
	return args, nil
}

// MarshalResolved renders resolved arguments as a JSON object in the form
// {"values": {...}, "defaulted": [...]}.
func MarshalResolved(r *validargs.Resolved) ([]byte, error) {
	out := struct {
		Values    map[string]any `json:"values"`
		Defaulted []string       `json:"defaulted"`
	}{Values: r.Map(), Defaulted: r.Defaulted()}
	if out.Defaulted == nil {
		out.Defaulted = []string{}
	}
	return json.Marshal(out)
}

func decodeNumbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil && !math.IsInf(f, 0) {
			return f
		}
		return t.String()
	case []any:
		for i := range t {
			t[i] = normalizeNumbers(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = normalizeNumbers(t[k])
		}
		return t
	}
	return v
}
