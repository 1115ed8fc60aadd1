package manifest

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/validargs/validators"
)

type yamlDocument struct {
	Name   string      `yaml:"name"`
	Params []yaml.Node `yaml:"params"`
}

// LoadYAML parses a YAML manifest. Only the first document is read. A nil
// reg means validators.Default().
func LoadYAML(data []byte, reg *validators.Registry) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	var yd yamlDocument
	if err := root.Decode(&yd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	raws := make([]rawParam, 0, len(yd.Params))
	for i := range yd.Params {
		n := &yd.Params[i]
		where := "params[" + strconv.Itoa(i) + "] (line " + strconv.Itoa(n.Line) + ")"
		if n.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %s: expected a mapping", ErrInvalidManifest, where)
		}
		// Decoding into map[string]any keeps "default: null" as a present key.
		var m map[string]any
		if err := n.Decode(&m); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, where, err)
		}
		rp, err := fromMap(m, where)
		if err != nil {
			return nil, err
		}
		raws = append(raws, rp)
	}
	return build(yd.Name, raws, reg)
}
