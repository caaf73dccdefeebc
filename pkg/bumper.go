package bumpver

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// FileResult records the outcome of a single substitution step.
type FileResult struct {
	Path         string
	Shape        PatternShape
	Replacements int
	Err          error
}

// BumpMeta holds metadata about the bump operation.
type BumpMeta struct {
	OldVersion   string       // The literal that was replaced.
	NewVersion   string       // The literal it was replaced with.
	BumpType     string       // "explicit", or the keyword used to compute the new literal.
	Results      []FileResult // One entry per target, in list order.
	UpdatedFiles []string     // Paths of files that were (or would be) rewritten.
}

// Options control how a bump run executes.
type Options struct {
	// Atomic stages every rewrite in memory and writes nothing unless
	// every target is readable and every substitution matched at least
	// once. Without it, files are processed independently and a failed
	// step does not stop the steps after it.
	Atomic bool

	// DryRun scans the targets without writing anything back.
	DryRun bool

	// Logger receives a diagnostic line per substitution step.
	// Nil disables them.
	Logger *zap.Logger
}

// Run rewrites every occurrence of the old version literal across the given
// targets, each file in place, using the pattern shape associated with it.
// Explicit literals are matched and replaced verbatim; no version syntax is
// imposed on them. A file that does not contain the old literal is left
// unchanged and is not an error.
func Run(targets []Target, oldVersion, versionArg string, opts Options) (BumpMeta, error) {
	var meta BumpMeta

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if oldVersion == "" || versionArg == "" {
		return meta, errors.New("version arguments must be non-empty")
	}
	if len(targets) == 0 {
		return meta, errors.New("no target files to rewrite")
	}

	newVersion, bumpType, err := ResolveVersion(oldVersion, versionArg)
	if err != nil {
		return meta, err
	}
	meta.OldVersion = oldVersion
	meta.NewVersion = newVersion
	meta.BumpType = bumpType

	if newVersion == oldVersion {
		return meta, fmt.Errorf("new version (%s) is the same as the current version", newVersion)
	}

	rules := make([]Rule, len(targets))
	for i, t := range targets {
		rule, err := CompileRule(t.Shape, oldVersion, newVersion)
		if err != nil {
			return meta, fmt.Errorf("target %s: %w", t.Path, err)
		}
		rules[i] = rule
	}

	if opts.Atomic {
		results, err := runAtomic(targets, rules, oldVersion, opts.DryRun, log)
		meta.Results = results
		if err != nil {
			return meta, err
		}
		meta.UpdatedFiles = updatedPaths(results)
		return meta, nil
	}

	var failed int
	for i, t := range targets {
		res := bumpFile(t, rules[i], opts.DryRun)
		meta.Results = append(meta.Results, res)
		if res.Err != nil {
			failed++
			log.Warn("substitution step failed",
				zap.String("path", t.Path),
				zap.Error(res.Err))
			continue
		}
		log.Debug("substitution step complete",
			zap.String("path", t.Path),
			zap.String("shape", t.Shape.String()),
			zap.Int("replacements", res.Replacements))
	}
	meta.UpdatedFiles = updatedPaths(meta.Results)

	if failed > 0 {
		return meta, fmt.Errorf("%d of %d substitution steps failed", failed, len(targets))
	}
	return meta, nil
}

// DryRun scans the targets and reports what Run would change, writing
// nothing back.
func DryRun(targets []Target, oldVersion, versionArg string, opts Options) (BumpMeta, error) {
	opts.DryRun = true
	return Run(targets, oldVersion, versionArg, opts)
}

type stagedWrite struct {
	path    string
	content string
}

// runAtomic applies every rule in memory first and commits the rewrites
// only when each target was readable and matched at least once.
func runAtomic(targets []Target, rules []Rule, oldVersion string, dry bool, log *zap.Logger) ([]FileResult, error) {
	results := make([]FileResult, 0, len(targets))
	staged := make([]stagedWrite, 0, len(targets))

	for i, t := range targets {
		res := FileResult{Path: t.Path, Shape: t.Shape}
		data, err := os.ReadFile(t.Path)
		if err != nil {
			res.Err = fmt.Errorf("reading %s: %w", t.Path, err)
			results = append(results, res)
			return results, fmt.Errorf("atomic bump aborted, nothing written: %w", res.Err)
		}
		rewritten, n := applyRule(string(data), rules[i])
		res.Replacements = n
		results = append(results, res)
		if n == 0 {
			return results, fmt.Errorf("atomic bump aborted, nothing written: no occurrence of %q in %s", oldVersion, t.Path)
		}
		staged = append(staged, stagedWrite{path: t.Path, content: rewritten})
	}

	if dry {
		return results, nil
	}

	for _, s := range staged {
		if err := os.WriteFile(s.path, []byte(s.content), 0644); err != nil {
			log.Warn("commit of staged rewrite failed",
				zap.String("path", s.path),
				zap.Error(err))
			return results, fmt.Errorf("writing %s: %w", s.path, err)
		}
		log.Debug("staged rewrite committed", zap.String("path", s.path))
	}
	return results, nil
}

// bumpFile performs one substitution step: read, apply, write back in place.
// A file without a match is left untouched.
func bumpFile(t Target, rule Rule, dry bool) FileResult {
	res := FileResult{Path: t.Path, Shape: t.Shape}

	data, err := os.ReadFile(t.Path)
	if err != nil {
		res.Err = fmt.Errorf("reading %s: %w", t.Path, err)
		return res
	}

	rewritten, n := applyRule(string(data), rule)
	res.Replacements = n
	if n == 0 || dry {
		return res
	}

	if err := os.WriteFile(t.Path, []byte(rewritten), 0644); err != nil {
		res.Err = fmt.Errorf("writing %s: %w", t.Path, err)
	}
	return res
}

// applyRule rewrites content line by line, replacing every non-overlapping
// match of the rule's pattern, and returns the rewritten content together
// with the number of matches replaced.
func applyRule(content string, rule Rule) (string, int) {
	lines := strings.Split(content, "\n")
	total := 0
	for i := range lines {
		n := len(rule.Pattern.FindAllStringIndex(lines[i], -1))
		if n == 0 {
			continue
		}
		lines[i] = rule.Pattern.ReplaceAllLiteralString(lines[i], rule.Replacement)
		total += n
	}
	return strings.Join(lines, "\n"), total
}

func updatedPaths(results []FileResult) []string {
	var paths []string
	for _, r := range results {
		if r.Err == nil && r.Replacements > 0 {
			paths = append(paths, r.Path)
		}
	}
	return paths
}
