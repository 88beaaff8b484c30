// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every i18n.T() key used in the Go sources exists in
// the primary locale, that every other locale carries the same keys, and
// reports keys nobody uses.
//
// Usage:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// report collects the findings of one lint run.
type report struct {
	Undefined map[string][]string // used in code, absent from the primary locale
	Orphaned  []string            // in the primary locale, never used
	Missing   map[string][]string // locale file -> keys it lacks
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	writeReport(os.Stdout, r)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (report, error) {
	r := report{Undefined: map[string][]string{}, Missing: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("finding used keys: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}

	for key, files := range used {
		if _, ok := primary[key]; !ok {
			r.Undefined[key] = files
		}
	}
	for key := range primary {
		if _, ok := used[key]; !ok {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", file, err)
		}
		for key := range primary {
			if _, ok := keys[key]; !ok {
				r.Missing[file] = append(r.Missing[file], key)
			}
		}
		sort.Strings(r.Missing[file])
	}
	return r, nil
}

func writeReport(w io.Writer, r report) {
	fmt.Fprintln(w, "--- Keys used in code but not defined ---")
	undefined := make([]string, 0, len(r.Undefined))
	for k := range r.Undefined {
		undefined = append(undefined, k)
	}
	sort.Strings(undefined)
	for _, k := range undefined {
		fmt.Fprintf(w, "  - Undefined: %s (%s)\n", k, strings.Join(r.Undefined[k], ", "))
	}

	fmt.Fprintln(w, "--- Orphaned keys ---")
	for _, k := range r.Orphaned {
		fmt.Fprintf(w, "  - Orphaned: %s\n", k)
	}

	fmt.Fprintln(w, "--- Keys missing from secondary locales ---")
	files := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		for _, k := range r.Missing[f] {
			fmt.Fprintf(w, "  - Missing in %s: %s\n", f, k)
		}
	}

	if r.failed() {
		fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
	} else {
		fmt.Fprintln(w, "✅ All translation files are consistent!")
	}
}

var keyCall = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// findUsedKeys scans non-test .go files for i18n.T("key") calls and returns
// each key with the files using it.
func findUsedKeys(root string) (map[string][]string, error) {
	keys := make(map[string][]string)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && path != root {
			name := info.Name()
			if name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyCall.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = append(keys[m[1]], path)
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale returns every message ID in a locale file. Nested maps
// are flattened with "." the way go-i18n does.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", m, keys)
	return keys, nil
}

func flattenYAML(prefix string, m map[string]interface{}, keys map[string]struct{}) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			flattenYAML(key, nested, keys)
			continue
		}
		keys[key] = struct{}{}
	}
}
