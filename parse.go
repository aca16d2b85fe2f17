package unitfile

import (
	"strings"

	"gopkg.in/ini.v1"
)

// loadOptions configures ini parsing for unit file semantics: only "=" is a
// delimiter, lines split on the first "=", quoted values stay literal, and a
// trailing backslash is part of the value, never a continuation.
var loadOptions = ini.LoadOptions{
	KeyValueDelimiters:      "=",
	IgnoreContinuation:      true,
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
	SkipUnrecognizableLines: true,
}

// Parse converts unit file text into a Config.
//
// A line of the form [Name] opens the named section, creating it on first
// sight. A line containing "=" inside an open section is split on the first
// "=" into a trimmed key and value; the last assignment to a key wins. A
// directive line before any section header is a *ParseError. Blank lines and
// lines matching neither form are ignored. Unknown section names are not an
// error; they pass through as opaque groups.
func Parse(text string) (*Config, error) {
	clean, names, err := sanitize(text)
	if err != nil {
		return nil, err
	}

	f, err := ini.LoadSources(loadOptions, []byte(clean))
	if err != nil {
		return nil, &ParseError{Reason: "malformed input", Text: firstLine(clean)}
	}

	// Sections come back in header order, not ini's order: ini folds a
	// literal [DEFAULT] header into its default section, which would
	// otherwise be skipped and always sort first.
	cfg := NewConfig()
	for _, name := range names {
		sec := cfg.Section(name)
		for _, key := range f.Section(name).Keys() {
			sec.Set(key.Name(), key.Value())
		}
	}
	return cfg, nil
}

// sanitize reduces raw text to the lines the format defines: section
// headers and directive lines. Everything else is dropped, and a directive
// before any section header is the one structural error. The ini loader is
// stricter than the format (an unclosed bracket, say, is an error rather
// than noise), so it only ever sees filtered lines. The returned names are
// the section headers in order of first appearance.
func sanitize(text string) (string, []string, error) {
	var keep, names []string
	open := false
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if len(line) > 2 && strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			open = true
			keep = append(keep, line)
			names = append(names, strings.TrimSpace(line[1:len(line)-1]))
			continue
		}
		if !strings.Contains(line, "=") {
			continue
		}
		if !open {
			return "", nil, &ParseError{
				Line:   i + 1,
				Text:   line,
				Reason: "directive before any section header",
			}
		}
		keep = append(keep, line)
	}
	return strings.Join(keep, "\n"), names, nil
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}
