package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseBehaviorYAML decodes a Kubernetes-style `behavior` stanza
// (scaleUp/scaleDown) from YAML bytes. Decoding is strict: unknown keys
// are an error. The result is validated but not defaulted, so emitting it
// again reproduces the input shape.
func ParseBehaviorYAML(data []byte) (Behavior, error) {
	var b Behavior
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return Behavior{}, fmt.Errorf("parsing behavior: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Behavior{}, fmt.Errorf("invalid behavior: %w", err)
	}
	return b, nil
}

// EmitBehaviorYAML encodes a Behavior back into the scaleUp/scaleDown
// stanza. ParseBehaviorYAML(EmitBehaviorYAML(b)) yields a Behavior equal
// to b.
func EmitBehaviorYAML(b Behavior) ([]byte, error) {
	out, err := yaml.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encoding behavior: %w", err)
	}
	return out, nil
}

// LoadBehavior reads a behavior YAML file, validates it, and fills unset
// selectPolicy/tolerance fields with the stock defaults.
func LoadBehavior(path string) (Behavior, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Behavior{}, fmt.Errorf("reading behavior config: %w", err)
	}
	b, err := ParseBehaviorYAML(data)
	if err != nil {
		return Behavior{}, err
	}
	b.ApplyDefaults()
	return b, nil
}
