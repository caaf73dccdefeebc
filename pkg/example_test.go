package bumpver

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExampleRun demonstrates rewriting a manifest and a binary entry source in
// a temporary directory. The manifest is edited through its version field,
// the source through the bare quoted literal.
func ExampleRun() {
	tmpDir, err := os.MkdirTemp("", "bumpver_example")
	if err != nil {
		fmt.Println("failed to create temporary directory:", err)
		return
	}
	defer os.RemoveAll(tmpDir)

	manifestPath := filepath.Join(tmpDir, "Cargo.toml")
	manifest := `[package]
name = "demo"
version = "1.2.0"
`
	if err := os.WriteFile(manifestPath, []byte(manifest), 0644); err != nil {
		fmt.Println("failed to write manifest:", err)
		return
	}

	sourcePath := filepath.Join(tmpDir, "main.rs")
	source := `App::new("demo").version("1.2.0");
`
	if err := os.WriteFile(sourcePath, []byte(source), 0644); err != nil {
		fmt.Println("failed to write source:", err)
		return
	}

	targets := []Target{
		{Path: manifestPath, Shape: ShapeManifest},
		{Path: sourcePath, Shape: ShapeSource},
	}
	meta, err := Run(targets, "1.2.0", "1.3.0", Options{})
	if err != nil {
		fmt.Println("bump failed:", err)
		return
	}

	updatedManifest, _ := os.ReadFile(manifestPath)
	updatedSource, _ := os.ReadFile(sourcePath)
	fmt.Print(string(updatedManifest))
	fmt.Print(string(updatedSource))
	fmt.Println("files updated:", len(meta.UpdatedFiles))

	// Output:
	// [package]
	// name = "demo"
	// version = "1.3.0"
	// App::new("demo").version("1.3.0");
	// files updated: 2
}
