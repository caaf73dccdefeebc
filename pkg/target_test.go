package bumpver

import (
	"testing"
)

func TestCompileRule(t *testing.T) {
	tests := []struct {
		name       string
		shape      PatternShape
		oldVersion string
		newVersion string
		input      string
		want       string
		matches    int
	}{
		{
			name:       "manifest field",
			shape:      ShapeManifest,
			oldVersion: "1.2.0",
			newVersion: "1.3.0",
			input:      `version = "1.2.0"`,
			want:       `version = "1.3.0"`,
			matches:    1,
		},
		{
			name:       "manifest ignores bare literal",
			shape:      ShapeManifest,
			oldVersion: "1.2.0",
			newVersion: "1.3.0",
			input:      `anyhow = "1.2.0"`,
			want:       `anyhow = "1.2.0"`,
			matches:    0,
		},
		{
			name:       "manifest ignores longer version",
			shape:      ShapeManifest,
			oldVersion: "1.2.0",
			newVersion: "1.3.0",
			input:      `version = "11.2.0"`,
			want:       `version = "11.2.0"`,
			matches:    0,
		},
		{
			name:       "source quoted literal",
			shape:      ShapeSource,
			oldVersion: "1.2.0",
			newVersion: "1.3.0",
			input:      `.version("1.2.0")`,
			want:       `.version("1.3.0")`,
			matches:    1,
		},
		{
			name:       "source ignores unquoted literal",
			shape:      ShapeSource,
			oldVersion: "1.2.0",
			newVersion: "1.3.0",
			input:      `// built against 1.2.0`,
			want:       `// built against 1.2.0`,
			matches:    0,
		},
		{
			name:       "source replaces every occurrence",
			shape:      ShapeSource,
			oldVersion: "1.2.0",
			newVersion: "1.3.0",
			input:      `old = "1.2.0"; tag = "1.2.0"`,
			want:       `old = "1.3.0"; tag = "1.3.0"`,
			matches:    2,
		},
		{
			name:       "dots are literal",
			shape:      ShapeSource,
			oldVersion: "1.2.0",
			newVersion: "1.3.0",
			input:      `marker = "1x2y0"`,
			want:       `marker = "1x2y0"`,
			matches:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := CompileRule(tt.shape, tt.oldVersion, tt.newVersion)
			if err != nil {
				t.Fatalf("CompileRule failed: %v", err)
			}
			got, n := applyRule(tt.input, rule)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if n != tt.matches {
				t.Errorf("got %d matches, want %d", n, tt.matches)
			}
		})
	}
}

func TestCompileRuleUnknownShape(t *testing.T) {
	if _, err := CompileRule(PatternShape(42), "1.2.0", "1.3.0"); err == nil {
		t.Error("expected an error for an unknown shape")
	}
}

func TestParseShape(t *testing.T) {
	if s, err := ParseShape("manifest"); err != nil || s != ShapeManifest {
		t.Errorf("ParseShape(manifest) = %v, %v", s, err)
	}
	if s, err := ParseShape("source"); err != nil || s != ShapeSource {
		t.Errorf("ParseShape(source) = %v, %v", s, err)
	}
	if _, err := ParseShape("regex"); err == nil {
		t.Error("expected an error for an unknown shape name")
	}
}

func TestDefaultTargetsShapes(t *testing.T) {
	if len(DefaultTargets) == 0 {
		t.Fatal("default target list is empty")
	}
	// Manifests come first, sources after, in a stable order.
	var manifests, sources int
	for _, target := range DefaultTargets {
		switch target.Shape {
		case ShapeManifest:
			manifests++
			if sources > 0 {
				t.Errorf("manifest %s listed after a source target", target.Path)
			}
		case ShapeSource:
			sources++
		default:
			t.Errorf("target %s has unexpected shape %v", target.Path, target.Shape)
		}
	}
	if manifests == 0 || sources == 0 {
		t.Errorf("expected both shapes in the default list, got %d manifests and %d sources", manifests, sources)
	}
}
