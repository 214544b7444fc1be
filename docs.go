package cliconfig

import (
	"fmt"
	"io/fs"
	"regexp"
	"strings"
)

// docReplacements is the fixed, ordered table of textual removal rules applied
// to config-model sources to distill them down to the type declarations and
// their field docs. Each rule is a whole-match replacement applied in
// sequence: later rules operate on the output of earlier ones.
var docReplacements = [...]struct {
	pattern     *regexp.Regexp
	replacement string
}{
	// remove top-of-file doc comments
	{regexp.MustCompile(`\n// Package [^\n]*(\n//[^\n]*)*`), ""},
	// remove package clauses
	{regexp.MustCompile(`\npackage [^\n]*`), ""},
	// remove import declarations, grouped or single
	{regexp.MustCompile(`(?s)\nimport \(.*?\n\)|\nimport [^\n]*`), ""},
	// remove compiler/toolchain directives and build constraints
	{regexp.MustCompile(`\n//go:[^\n]*|\n// \+build[^\n]*`), ""},
	// remove function and method bodies (up to the first line-leading brace)
	{regexp.MustCompile(`(?s)\nfunc .*?\n}[^\n]*\n?`), "\n"},
	// standardize the number of consecutive empty lines
	{regexp.MustCompile(`\n\n+`), "\n\n"},
}

// DocumentedConfigModels distills the given config-model sources into the
// documentation text to be placed alongside generated config files, for a
// better user experience: field declarations and their doc comments survive;
// package clauses, imports, directives and function bodies do not.
//
// sources is typically an embed.FS of the integrator's config-model package:
//
//	//go:embed *.go
//	var configModelSources embed.FS
//
// Files are visited in lexical order, so the output is deterministic.
//
// Sources must be gofmt-formatted: the body-removal rule relies on every
// function body closing with a brace at the start of its own line, so a
// single-line function body would make it consume the declarations that
// follow, up to the next line-leading brace.
func DocumentedConfigModels(sources fs.FS) (string, error) {
	var mergedDocs strings.Builder
	mergedDocs.WriteString("\n")

	err := fs.WalkDir(sources, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}
		src, err := fs.ReadFile(sources, path)
		if err != nil {
			return err
		}
		mergedDocs.WriteString("\n")
		mergedDocs.Write(src)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("reading config-model sources: %w", err)
	}

	docsSection := mergedDocs.String()
	for _, rule := range docReplacements {
		docsSection = rule.pattern.ReplaceAllString(docsSection, rule.replacement)
	}
	return docsSection, nil
}
