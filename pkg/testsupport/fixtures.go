// Package testsupport holds helpers shared by tests and example programs:
// JSON constraint-group fixtures and node diffing.
package testsupport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-layoutviz/pkg/layout"
	"github.com/goliatone/go-layoutviz/pkg/viewnode"
)

// LoadGroup reads a JSON constraint-group fixture, failing the test on any
// problem so callers stay concise.
func LoadGroup(t *testing.T, path string) layout.ConstraintGroup {
	t.Helper()

	group, err := LoadGroupFromPath(path)
	if err != nil {
		t.Fatalf("load group: %v", err)
	}
	return group
}

// LoadGroupFromPath returns a group without requiring testing.T, so example
// programs and the CLI can share fixtures.
func LoadGroupFromPath(path string) (layout.ConstraintGroup, error) {
	if path == "" {
		return layout.ConstraintGroup{}, errors.New("testsupport: fixture path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return layout.ConstraintGroup{}, fmt.Errorf("testsupport: read fixture %s: %w", path, err)
	}

	var group layout.ConstraintGroup
	if err := json.Unmarshal(data, &group); err != nil {
		return layout.ConstraintGroup{}, fmt.Errorf("testsupport: parse fixture %s: %w", path, err)
	}
	return group, nil
}

// DiffNodes fails the test with a structural diff when two node trees
// differ.
func DiffNodes(t *testing.T, want, got viewnode.Node) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("node mismatch (-want +got):\n%s", diff)
	}
}
