// Package bumpver rewrites a version literal across a fixed list of release
// files by plain textual substitution.
//
// It provides functionalities for:
//   - Describing target files as (path, pattern shape) pairs: manifest files
//     are matched through their version field assignment, executable-entry
//     source files through the bare quoted literal.
//   - Rewriting every target in place, either best-effort (files are
//     processed independently and a failed step does not stop the rest) or
//     atomically (rewrites are staged in memory and committed only when
//     every target is readable and matched).
//   - Computing a new version from the old one with the "major", "minor" and
//     "patch" keywords. Explicit literals are never validated or parsed.
//   - Loading a target list from a YAML file instead of the built-in one.
//
// This library is designed to be used both through the provided CLI and as a
// programmatic API to integrate release version rewriting into other Go
// programs.
//
// Usage Example:
//
//	import (
//	    "log"
//	    bumpver "bumpver/pkg"
//	)
//
//	func main() {
//	    meta, err := bumpver.Run(bumpver.DefaultTargets, "1.2.0", "1.3.0", bumpver.Options{})
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    log.Printf("updated %d files", len(meta.UpdatedFiles))
//	}
package bumpver
