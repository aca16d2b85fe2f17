package unitfile

import "strings"

// Serialize converts a Config into canonical unit file text. It is total:
// any Config serializes without error.
//
// Sections appear in insertion order as a [Name] header followed by one
// Key=Value line per non-empty directive in key insertion order, with a
// blank line between sections. Empty directives are omitted, sections with
// no non-empty directives are omitted entirely, and the result carries no
// leading or trailing blank lines.
func Serialize(c *Config) string {
	var b strings.Builder
	for _, name := range c.names {
		sec := c.sections[name]

		var lines []string
		for _, key := range sec.keys {
			if value := sec.values[key]; value != "" {
				lines = append(lines, key+"="+value)
			}
		}
		if len(lines) == 0 {
			continue
		}

		b.WriteString("[")
		b.WriteString(name)
		b.WriteString("]\n")
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
