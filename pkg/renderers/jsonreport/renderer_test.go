package jsonreport

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-layoutviz/pkg/layout"
	"github.com/goliatone/go-layoutviz/pkg/render"
	"github.com/goliatone/go-layoutviz/pkg/viewmodel"
)

func TestRenderPreservesWireContract(t *testing.T) {
	group := layout.ConstraintGroup{
		RawText: "dump",
		Constraints: []layout.Constraint{
			{
				Identity: "width",
				First: layout.LayoutItemAttribute{
					Instance:  layout.Instance{Address: "0x1", ClassName: "UIView", DisplayName: "UIView"},
					Attribute: layout.Attribute{Name: "width"},
				},
				Relation:   layout.RelationEqual,
				Constant:   layout.Constant{Value: 320},
				Multiplier: layout.Multiplier{Value: 1},
			},
		},
	}
	node := viewmodel.GroupNode(group, viewmodel.Options{})

	data, err := New().Render(context.Background(), node, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded struct {
		Constraints []map[string]json.RawMessage `json:"constraints"`
		Permalink   *string                      `json:"permalink"`
		Footnotes   []any                        `json:"footnotes"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Constraints) != 1 {
		t.Fatalf("expected one constraint, got %d", len(decoded.Constraints))
	}

	constraint := decoded.Constraints[0]
	if _, present := constraint["second"]; present {
		t.Fatalf("expected second key absent for absolute constraint")
	}
	if string(constraint["multiplier"]) != "null" {
		t.Fatalf("expected identity multiplier to serialize as null, got %s", constraint["multiplier"])
	}
	if string(constraint["footnote"]) != "null" {
		t.Fatalf("expected missing footnote to serialize as null, got %s", constraint["footnote"])
	}
	if decoded.Permalink == nil || *decoded.Permalink != "dump" {
		t.Fatalf("unexpected permalink %v", decoded.Permalink)
	}
	if decoded.Footnotes == nil {
		t.Fatalf("expected footnotes array, got null")
	}
}

func TestRenderIndented(t *testing.T) {
	node := viewmodel.GroupNode(layout.ConstraintGroup{RawText: "x"}, viewmodel.Options{})
	data, err := New(WithIndent("  ")).Render(context.Background(), node, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Fatalf("expected indented output, got %s", data)
	}
}
