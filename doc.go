// Package main implements the bumpver CLI tool.
//
// The bumpver tool rewrites a release version literal across a fixed list of
// files: manifest files are edited through their version field assignment
// (`version = "<old>"` becomes `version = "<new>"`), and executable-entry
// source files through the bare quoted literal (`"<old>"` becomes
// `"<new>"`). All edits are plain in-place text substitution; the tool does
// not parse the manifest format and does not validate explicit version
// literals.
//
// Command Usage:
//
//	bumpver [options] <old_version> <new_version>
//
// Flags:
//
//	--targets:  Specifies a YAML file listing (path, shape) target pairs,
//	            overriding the built-in release file list.
//	--atomic:   Stages every rewrite in memory and writes nothing unless
//	            every target file is readable and every substitution matched
//	            at least once.
//	--dry:      Scans the targets and reports what would change without
//	            modifying any file.
//	--verbose:  Logs every substitution step.
//	--version:  Displays the version of the bumpver CLI tool and exits.
//
// Examples:
//
//	# Replace one explicit literal with another
//	bumpver 1.2.0 1.3.0
//
//	# Compute the new literal from the old one (e.g. 1.2.0 -> 1.2.1)
//	bumpver 1.2.0 patch
//
//	# Preview the edit without touching any file
//	bumpver --dry 1.2.0 1.3.0
//
//	# All-or-nothing across a custom file list
//	bumpver --targets release-files.yml --atomic 1.2.0 1.3.0
//
// The exit code is 0 when every substitution step succeeded, 1 when any
// step failed, and 2 on a usage error. A file in which the old literal does
// not appear is left unchanged and is not a failure; the summary table
// reports it as "unchanged".
//
// For more detailed API documentation, please see the documentation in the
// "pkg" package.
package main
