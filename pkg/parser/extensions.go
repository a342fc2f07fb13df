package parser

import (
	"fmt"
	"sort"
	"strings"
)

// Extension identifies an optionally-enabled markdown dialect feature.
// Disabling an extension causes its syntax to fall through to plain text.
type Extension string

// The supported extensions.
const (
	ExtHighlight       Extension = "highlight"
	ExtSubscript       Extension = "subscript"
	ExtSuperscript     Extension = "superscript"
	ExtMath            Extension = "math"
	ExtFootnotes       Extension = "footnotes"
	ExtEmoji           Extension = "emoji"
	ExtFrontMatter     Extension = "frontmatter"
	ExtTableOfContents Extension = "toc"
)

// knownExtensions lists every valid extension tag.
var knownExtensions = []Extension{
	ExtHighlight,
	ExtSubscript,
	ExtSuperscript,
	ExtMath,
	ExtFootnotes,
	ExtEmoji,
	ExtFrontMatter,
	ExtTableOfContents,
}

// ParseExtension validates a tag read from configuration.
func ParseExtension(tag string) (Extension, error) {
	for _, ext := range knownExtensions {
		if Extension(tag) == ext {
			return ext, nil
		}
	}
	return "", fmt.Errorf("unknown extension %q", tag)
}

// ExtensionSet is an immutable set of enabled extensions. The zero value
// has every extension disabled.
type ExtensionSet struct {
	enabled map[Extension]struct{}
}

// NewExtensionSet builds a set from the given tags.
func NewExtensionSet(exts ...Extension) ExtensionSet {
	s := ExtensionSet{enabled: make(map[Extension]struct{}, len(exts))}
	for _, e := range exts {
		s.enabled[e] = struct{}{}
	}
	return s
}

// AllExtensions returns a set with every known extension enabled.
func AllExtensions() ExtensionSet {
	return NewExtensionSet(knownExtensions...)
}

// NoExtensions returns an empty set.
func NoExtensions() ExtensionSet {
	return ExtensionSet{}
}

// Enabled reports whether the extension is in the set.
func (s ExtensionSet) Enabled(e Extension) bool {
	_, ok := s.enabled[e]
	return ok
}

// With returns a copy of the set with the extension enabled.
func (s ExtensionSet) With(e Extension) ExtensionSet {
	out := ExtensionSet{enabled: make(map[Extension]struct{}, len(s.enabled)+1)}
	for k := range s.enabled {
		out.enabled[k] = struct{}{}
	}
	out.enabled[e] = struct{}{}
	return out
}

// Without returns a copy of the set with the extension disabled.
func (s ExtensionSet) Without(e Extension) ExtensionSet {
	out := ExtensionSet{enabled: make(map[Extension]struct{}, len(s.enabled))}
	for k := range s.enabled {
		if k != e {
			out.enabled[k] = struct{}{}
		}
	}
	return out
}

// Tags returns the enabled extensions in stable order.
func (s ExtensionSet) Tags() []Extension {
	out := make([]Extension, 0, len(s.enabled))
	for e := range s.enabled {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String formats the set for debug output.
func (s ExtensionSet) String() string {
	tags := s.Tags()
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}
