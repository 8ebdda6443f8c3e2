package config

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultSeed is the world seed when none is configured.
const DefaultSeed Seed = 12345

// Seed is a world seed. In YAML it may be written as an integer or as any
// text, which is hashed to an integer.
type Seed int64

// WorldGenConfig holds world generation configuration
type WorldGenConfig struct {
	Seed Seed `yaml:"seed"`
}

// ParseSeed turns a seed string into a Seed. Decimal integers are used as-is;
// anything else is hashed with 64-bit FNV-1a.
func ParseSeed(s string) Seed {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Seed(n)
	}
	h := fnv.New64a()
	h.Write([]byte(s))
	return Seed(h.Sum64())
}

func (s Seed) Int64() int64 { return int64(s) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Seed) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("seed must be a scalar (line %d): %w", node.Line, ErrInvalid)
	}
	var n int64
	if err := node.Decode(&n); err == nil {
		*s = Seed(n)
		return nil
	}
	*s = ParseSeed(node.Value)
	return nil
}
