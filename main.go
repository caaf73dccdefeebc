// Package main implements a CLI tool that rewrites a release version
// literal across a fixed list of manifest and source files in place.
package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	bumpver "bumpver/pkg"
)

func usage() {
	msg := `Usage:
  bumpver [options] <old_version> <new_version>

Rewrites every occurrence of the old version literal across the release file
list: manifest files through their version field, binary entry sources
through the bare quoted literal. Files are edited in place.

Examples:
  bumpver 1.2.0 1.3.0
  bumpver 1.2.0 patch
  bumpver --targets release-files.yml --atomic 1.2.0 1.3.0

Positional arguments:
  <old_version>      The version literal currently present in the files
  <new_version>      The replacement literal, or one of: major, minor, patch

Options:
`
	fmt.Fprint(os.Stderr, msg)
	flag.PrintDefaults()
}

func main() {
	targetsFile := flag.String("targets", "", "YAML file listing target files; overrides the built-in list")
	atomic := flag.Bool("atomic", false, "Write nothing unless every target file is readable and matched")
	dryRun := flag.Bool("dry", false, "Scan the targets without modifying any files")
	verbose := flag.Bool("verbose", false, "Log every substitution step")
	showVersion := flag.Bool("version", false, "Show CLI version and exit")
	help := flag.Bool("help", false, "Show help message and exit")

	flag.Usage = usage
	// Flags come before the version arguments; anything after them stays
	// positional so the guard below can reject it.
	flag.CommandLine.SetInterspersed(false)
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println("bumpver CLI version", Version)
		os.Exit(0)
	}

	// Guard against misplaced flags after positional args.
	for _, arg := range flag.Args() {
		if strings.HasPrefix(arg, "-") {
			fmt.Fprintln(os.Stderr, "Error: Flags must be specified before the version arguments. Please reorder your arguments.")
			usage()
			os.Exit(2)
		}
	}

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: bumpver old_version new_version")
		fmt.Fprintln(os.Stderr, "Example: bumpver 1.2.0 1.3.0")
		os.Exit(2)
	}
	oldVersion, versionArg := args[0], args[1]

	targets := bumpver.DefaultTargets
	if *targetsFile != "" {
		var err error
		targets, err = bumpver.LoadTargets(*targetsFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		defer logger.Sync()
	}

	opts := bumpver.Options{Atomic: *atomic, Logger: logger}

	var meta bumpver.BumpMeta
	var err error
	if *dryRun {
		meta, err = bumpver.DryRun(targets, oldVersion, versionArg, opts)
	} else {
		meta, err = bumpver.Run(targets, oldVersion, versionArg, opts)
	}
	if err != nil {
		printSummary(meta, *dryRun)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// Summary
	if *dryRun {
		fmt.Println("Dry run complete, no files were modified.")
	} else {
		fmt.Println("Version bump successful!")
	}
	fmt.Printf("Old Version: %s\n", meta.OldVersion)
	fmt.Printf("New Version: %s\n", meta.NewVersion)
	fmt.Printf("Bump Type:   %s\n", meta.BumpType)
	printSummary(meta, *dryRun)
}
