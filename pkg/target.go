package bumpver

import (
	"fmt"
	"regexp"
)

// PatternShape selects the textual context in which the old version literal
// is matched for replacement.
type PatternShape int

const (
	// ShapeManifest matches the literal only inside a `version = "<old>"`
	// field assignment. Unrelated occurrences of the literal elsewhere in
	// the same manifest (dependency pins, comments) are left alone.
	ShapeManifest PatternShape = iota

	// ShapeSource matches the bare quoted literal `"<old>"` wherever it
	// appears in the file. This is broader and also rewrites unrelated
	// string literals that happen to equal the old version.
	ShapeSource
)

// String returns the shape name used in targets files and summaries.
func (s PatternShape) String() string {
	switch s {
	case ShapeManifest:
		return "manifest"
	case ShapeSource:
		return "source"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParseShape maps a shape name from a targets file to its PatternShape.
func ParseShape(name string) (PatternShape, error) {
	switch name {
	case "manifest":
		return ShapeManifest, nil
	case "source":
		return ShapeSource, nil
	default:
		return 0, fmt.Errorf("unknown pattern shape %q (want %q or %q)", name, "manifest", "source")
	}
}

// Target pairs a file path with the pattern shape used to rewrite it.
type Target struct {
	Path  string
	Shape PatternShape
}

// DefaultTargets is the fixed, ordered file list the tool ships with: the
// workspace manifest, the two crate manifests, and the entry source of each
// released binary. Override it with a targets file when the layout differs.
var DefaultTargets = []Target{
	{Path: "Cargo.toml", Shape: ShapeManifest},
	{Path: "casr/Cargo.toml", Shape: ShapeManifest},
	{Path: "libcasr/Cargo.toml", Shape: ShapeManifest},
	{Path: "casr/src/bin/casr-afl.rs", Shape: ShapeSource},
	{Path: "casr/src/bin/casr-cli.rs", Shape: ShapeSource},
	{Path: "casr/src/bin/casr-cluster.rs", Shape: ShapeSource},
	{Path: "casr/src/bin/casr-core.rs", Shape: ShapeSource},
	{Path: "casr/src/bin/casr-gdb.rs", Shape: ShapeSource},
	{Path: "casr/src/bin/casr-libfuzzer.rs", Shape: ShapeSource},
	{Path: "casr/src/bin/casr-python.rs", Shape: ShapeSource},
	{Path: "casr/src/bin/casr-san.rs", Shape: ShapeSource},
}

// Rule is a compiled substitution: a match pattern derived from the old
// version literal and the replacement text derived from the new one.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// CompileRule builds the substitution rule for a pattern shape. The old
// literal is regexp-quoted, so version strings containing metacharacters
// (dots, plus signs) only ever match themselves.
func CompileRule(shape PatternShape, oldVersion, newVersion string) (Rule, error) {
	quoted := regexp.QuoteMeta(oldVersion)
	switch shape {
	case ShapeManifest:
		return Rule{
			Pattern:     regexp.MustCompile(`version = "` + quoted + `"`),
			Replacement: `version = "` + newVersion + `"`,
		}, nil
	case ShapeSource:
		return Rule{
			Pattern:     regexp.MustCompile(`"` + quoted + `"`),
			Replacement: `"` + newVersion + `"`,
		}, nil
	default:
		return Rule{}, fmt.Errorf("unknown pattern shape %d", int(shape))
	}
}
