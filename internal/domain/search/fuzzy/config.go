// Package fuzzy implements the clinic search and ranking engine: prefix and
// edit-distance matching over clinic and dentist fields, with a weighted
// relevance score used to order free-text results.
package fuzzy

// Default ranking constants. They mirror the long-standing reference
// behavior; change them via config, not here.
const (
	// DefaultNameWeight scales name-field distances in the relevance score.
	DefaultNameWeight = 0.5
	// DefaultFieldWeight scales every non-name field distance.
	DefaultFieldWeight = 1.5
	// DefaultMaxDistance is the fuzzy threshold: the largest edit distance
	// at which a field still matches a term without a shared prefix.
	DefaultMaxDistance = 3
)

// Config holds the ranking weights and the fuzzy match threshold.
type Config struct {
	NameWeight  float64
	FieldWeight float64
	MaxDistance int
}

// DefaultConfig returns the reference weights and threshold.
func DefaultConfig() Config {
	return Config{
		NameWeight:  DefaultNameWeight,
		FieldWeight: DefaultFieldWeight,
		MaxDistance: DefaultMaxDistance,
	}
}

// withDefaults fills unset fields with the reference values.
func (c Config) withDefaults() Config {
	if c.NameWeight <= 0 {
		c.NameWeight = DefaultNameWeight
	}
	if c.FieldWeight <= 0 {
		c.FieldWeight = DefaultFieldWeight
	}
	if c.MaxDistance <= 0 {
		c.MaxDistance = DefaultMaxDistance
	}
	return c
}
