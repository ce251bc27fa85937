package viewnode

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalDistinguishesNullFromAbsent(t *testing.T) {
	withNull := Object{"footnote": Null{}}
	withoutKey := Object{}

	gotNull, err := json.Marshal(withNull)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(gotNull) != `{"footnote":null}` {
		t.Fatalf("expected explicit null, got %s", gotNull)
	}

	gotAbsent, err := json.Marshal(withoutKey)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(gotAbsent) != `{}` {
		t.Fatalf("expected empty object, got %s", gotAbsent)
	}
}

func TestMarshalNestedTree(t *testing.T) {
	tree := Object{
		"constraints": Array{
			Object{
				"relation": String("=="),
				"constant": Object{"value": String("5"), "prefix": String("+ ")},
			},
		},
		"permalink": Null{},
		"count":     Number(1),
		"resolved":  Bool(true),
	}

	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var round map[string]any
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if round["permalink"] != nil {
		t.Fatalf("expected permalink null, got %v", round["permalink"])
	}
	if round["count"] != float64(1) {
		t.Fatalf("expected count 1, got %v", round["count"])
	}
}

func TestPlainFlattensToBuiltins(t *testing.T) {
	tree := Object{
		"name":   String("view"),
		"suffix": Null{},
		"items":  Array{Number(2), Bool(false)},
	}

	want := map[string]any{
		"name":   "view",
		"suffix": nil,
		"items":  []any{float64(2), false},
	}

	if diff := cmp.Diff(want, Plain(tree)); diff != "" {
		t.Fatalf("plain mismatch (-want +got):\n%s", diff)
	}
}
