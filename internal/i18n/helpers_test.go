// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func loadIDs(t *testing.T, name string) map[string]bool {
	t.Helper()
	data, err := localeFS.ReadFile("locales/" + name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	ids := make(map[string]bool, len(m))
	for k := range m {
		ids[k] = true
	}
	return ids
}
