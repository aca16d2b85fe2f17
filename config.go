package unitfile

// Config is the in-memory representation of a unit file: an ordered set of
// named sections, each holding an ordered set of Key=Value directives.
//
// Sections come into existence on first reference, whether that reference is
// a read or a write. A directive whose value is the empty string is logically
// unset: it is kept in the model (so insertion order survives later writes)
// but never emitted by Serialize.
type Config struct {
	names    []string
	sections map[string]*Section
}

// Section is one named group of directives within a Config. Keys are unique;
// assigning to an existing key replaces its value but keeps its original
// position.
type Section struct {
	name   string
	keys   []string
	values map[string]string
}

// NewConfig creates an empty Config with no sections.
func NewConfig() *Config {
	return &Config{
		sections: make(map[string]*Section),
	}
}

// Section returns the named section, creating it if it does not exist yet.
func (c *Config) Section(name string) *Section {
	if c.sections == nil {
		c.sections = make(map[string]*Section)
	}
	if s, ok := c.sections[name]; ok {
		return s
	}
	s := &Section{
		name:   name,
		values: make(map[string]string),
	}
	c.sections[name] = s
	c.names = append(c.names, name)
	return s
}

// Has reports whether the named section exists, without creating it.
func (c *Config) Has(name string) bool {
	_, ok := c.sections[name]
	return ok
}

// Sections returns the section names in insertion order.
func (c *Config) Sections() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Get is shorthand for Section(section).Get(key).
func (c *Config) Get(section, key string) string {
	return c.Section(section).Get(key)
}

// Set is shorthand for Section(section).Set(key, value).
func (c *Config) Set(section, key, value string) {
	c.Section(section).Set(key, value)
}

// Clone returns a deep copy of the Config. Templates hand out clones so a
// session can mutate the applied configuration freely.
func (c *Config) Clone() *Config {
	out := NewConfig()
	for _, name := range c.names {
		src := c.sections[name]
		dst := out.Section(name)
		for _, key := range src.keys {
			dst.Set(key, src.values[key])
		}
	}
	return out
}

// Equal reports semantic equality: the same sections holding the same
// non-empty directives, regardless of section or key order. Sections with no
// non-empty directives are ignored on both sides, matching what Serialize
// emits.
func (c *Config) Equal(other *Config) bool {
	if other == nil {
		return c == nil
	}
	return c.covers(other) && other.covers(c)
}

// covers reports whether every non-empty directive of c is present in other
// with the same value.
func (c *Config) covers(other *Config) bool {
	for _, name := range c.names {
		src := c.sections[name]
		for _, key := range src.keys {
			value := src.values[key]
			if value == "" {
				continue
			}
			os, ok := other.sections[name]
			if !ok || os.values[key] != value {
				return false
			}
		}
	}
	return true
}

// Name returns the section's name.
func (s *Section) Name() string {
	return s.name
}

// Get returns the value for key, or the empty string if the key is unset.
func (s *Section) Get(key string) string {
	return s.values[key]
}

// Set assigns value to key. The last write wins; setting the empty string
// logically unsets the directive.
func (s *Section) Set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Keys returns the directive keys in insertion order, including keys whose
// value is currently empty.
func (s *Section) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of non-empty directives in the section.
func (s *Section) Len() int {
	n := 0
	for _, v := range s.values {
		if v != "" {
			n++
		}
	}
	return n
}
