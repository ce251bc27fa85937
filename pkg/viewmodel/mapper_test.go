package viewmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-layoutviz/pkg/layout"
	"github.com/goliatone/go-layoutviz/pkg/viewnode"
)

func buttonEndpoint() layout.LayoutItemAttribute {
	return layout.LayoutItemAttribute{
		Instance: layout.Instance{
			Address:     "0x7f8a4c40aa10",
			ClassName:   "UIButton",
			DisplayName: "UIButton",
		},
		Attribute: layout.Attribute{Name: "leading"},
	}
}

func labelEndpoint() layout.LayoutItemAttribute {
	return layout.LayoutItemAttribute{
		Instance: layout.Instance{
			Address:     "0x7f8a4c40bb20",
			ClassName:   "UILabel",
			DisplayName: "UILabel",
			Identifier:  "titleLabel",
		},
		Attribute: layout.Attribute{Name: "trailing", IncludesMargin: true},
	}
}

func relativeConstraint(constant float64) layout.Constraint {
	second := labelEndpoint()
	return layout.Constraint{
		Identity:    "title-leading",
		First:       buttonEndpoint(),
		Second:      &second,
		Relation:    layout.RelationEqual,
		Constant:    layout.Constant{Value: constant},
		Multiplier:  layout.Multiplier{Value: 1},
		Description: "<code>UIButton.leading == UILabel.trailing</code>",
	}
}

func TestConstraintNodeOmitsSecondForAbsoluteConstraint(t *testing.T) {
	constraint := layout.Constraint{
		First:      buttonEndpoint(),
		Relation:   layout.RelationGreaterThanOrEqual,
		Constant:   layout.Constant{Value: 44},
		Multiplier: layout.Multiplier{Value: 1},
	}

	node := ConstraintNode(constraint, nil)
	if _, present := node["second"]; present {
		t.Fatalf("expected second key to be absent, got %v", node["second"])
	}
	if _, present := node["first"]; !present {
		t.Fatalf("expected first key to be present")
	}
	if diff := cmp.Diff(viewnode.Node(viewnode.Null{}), node["identity"]); diff != "" {
		t.Fatalf("expected null identity for anonymous constraint (-want +got):\n%s", diff)
	}
}

func TestConstraintNodeKeepsSecondForRelativeConstraint(t *testing.T) {
	node := ConstraintNode(relativeConstraint(8), nil)
	second, present := node["second"]
	if !present {
		t.Fatalf("expected second key to be present")
	}
	if _, ok := second.(viewnode.Object); !ok {
		t.Fatalf("expected second to be an object, got %T", second)
	}
	if diff := cmp.Diff(viewnode.Node(viewnode.String("title-leading")), node["identity"]); diff != "" {
		t.Fatalf("unexpected identity (-want +got):\n%s", diff)
	}
}

func TestConstraintNodeHidesZeroConstantBetweenTwoAnchors(t *testing.T) {
	node := ConstraintNode(relativeConstraint(0), nil)
	if diff := cmp.Diff(viewnode.Node(viewnode.Null{}), node["constant"]); diff != "" {
		t.Fatalf("constant mismatch (-want +got):\n%s", diff)
	}
}

func TestConstraintNodeRendersZeroConstantForLoneEndpoint(t *testing.T) {
	constraint := layout.Constraint{
		First:      buttonEndpoint(),
		Relation:   layout.RelationEqual,
		Constant:   layout.Constant{Value: 0},
		Multiplier: layout.Multiplier{Value: 1},
	}

	node := ConstraintNode(constraint, nil)
	want := viewnode.Node(viewnode.Object{
		"value":  viewnode.String("0"),
		"prefix": viewnode.Null{},
	})
	if diff := cmp.Diff(want, node["constant"]); diff != "" {
		t.Fatalf("constant mismatch (-want +got):\n%s", diff)
	}
}

func TestConstantNodePrefixes(t *testing.T) {
	cases := []struct {
		name           string
		value          float64
		positivePrefix bool
		want           viewnode.Object
	}{
		{
			name:           "positive with second endpoint",
			value:          5,
			positivePrefix: true,
			want:           viewnode.Object{"value": viewnode.String("5"), "prefix": viewnode.String("+ ")},
		},
		{
			name:           "negative always prefixed with absolute value",
			value:          -5,
			positivePrefix: true,
			want:           viewnode.Object{"value": viewnode.String("5"), "prefix": viewnode.String("- ")},
		},
		{
			name:           "negative without second endpoint",
			value:          -12.5,
			positivePrefix: false,
			want:           viewnode.Object{"value": viewnode.String("12.5"), "prefix": viewnode.String("- ")},
		},
		{
			name:           "positive without second endpoint",
			value:          20,
			positivePrefix: false,
			want:           viewnode.Object{"value": viewnode.String("20"), "prefix": viewnode.Null{}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ConstantNode(layout.Constant{Value: tc.value}, tc.positivePrefix)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("constant mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMultiplierNode(t *testing.T) {
	cases := []struct {
		name  string
		value float64
		want  viewnode.Node
	}{
		{name: "identity is hidden", value: 1, want: viewnode.Null{}},
		{name: "fractional", value: 2.5, want: viewnode.String("* 2.5")},
		{name: "trailing zero trimmed", value: 2.0, want: viewnode.String("* 2")},
		{name: "capped at three fractional digits", value: 1.0 / 3, want: viewnode.String("* 0.333")},
		{name: "half", value: 0.5, want: viewnode.String("* 0.5")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MultiplierNode(layout.Multiplier{Value: tc.value})
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("multiplier mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInstanceNodeInitial(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{name: "3D Rotation", want: "3"},
		{name: "—Button", want: "B"},
		{name: "---", want: ""},
		{name: "imageView", want: "I"},
	}

	for _, tc := range cases {
		node := InstanceNode(layout.Instance{DisplayName: tc.name}, nil)
		if diff := cmp.Diff(viewnode.Node(viewnode.String(tc.want)), node["initial"]); diff != "" {
			t.Fatalf("initial for %q mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestInstanceNodeWithoutAnnotation(t *testing.T) {
	node := InstanceNode(buttonEndpoint().Instance, nil)

	if diff := cmp.Diff(viewnode.Node(viewnode.Null{}), node["suffix"]); diff != "" {
		t.Fatalf("suffix mismatch (-want +got):\n%s", diff)
	}
	want := viewnode.Node(viewnode.String(layout.DefaultAnnotationColor.Hex()))
	if diff := cmp.Diff(want, node["color"]); diff != "" {
		t.Fatalf("color mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(viewnode.Node(viewnode.Null{}), node["identifier"]); diff != "" {
		t.Fatalf("identifier mismatch (-want +got):\n%s", diff)
	}
}

func TestInstanceNodeWithAnnotation(t *testing.T) {
	annotation := &layout.Annotation{
		Suffix: ".2",
		Color:  layout.Color{R: 0x4f, G: 0x46, B: 0xe5},
	}
	node := InstanceNode(labelEndpoint().Instance, annotation)

	if diff := cmp.Diff(viewnode.Node(viewnode.String(".2")), node["suffix"]); diff != "" {
		t.Fatalf("suffix mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(viewnode.Node(viewnode.String("#4f46e5")), node["color"]); diff != "" {
		t.Fatalf("color mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(viewnode.Node(viewnode.String("titleLabel")), node["identifier"]); diff != "" {
		t.Fatalf("identifier mismatch (-want +got):\n%s", diff)
	}
}

func TestEndpointNodePicksAnnotationByInstanceAddress(t *testing.T) {
	endpoint := buttonEndpoint()
	annotations := map[string]layout.Annotation{
		endpoint.Instance.Address: {Suffix: ".1", Color: layout.Color{R: 0x08, G: 0x91, B: 0xb2}},
	}

	node := EndpointNode(endpoint, annotations)
	instance, ok := node["instance"].(viewnode.Object)
	if !ok {
		t.Fatalf("expected instance object, got %T", node["instance"])
	}
	if diff := cmp.Diff(viewnode.Node(viewnode.String(".1")), instance["suffix"]); diff != "" {
		t.Fatalf("suffix mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(viewnode.Node(viewnode.String("#0891b2")), instance["color"]); diff != "" {
		t.Fatalf("color mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributeNode(t *testing.T) {
	got := AttributeNode(layout.Attribute{Name: "leadingMargin", IncludesMargin: true})
	want := viewnode.Object{
		"name":           viewnode.String("leadingMargin"),
		"includesMargin": viewnode.Bool(true),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("attribute mismatch (-want +got):\n%s", diff)
	}
}

func TestFootnoteNodePassesHTMLThrough(t *testing.T) {
	got := FootnoteNode(layout.Footnote{
		Marker: "1",
		Text:   `<em>inferred from the storyboard</em>`,
	})
	want := viewnode.Object{
		"marker": viewnode.String("1"),
		"text":   viewnode.String(`<em>inferred from the storyboard</em>`),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("footnote mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupNodeBuildsConstraintsWithGroupAnnotations(t *testing.T) {
	constraint := relativeConstraint(8)
	group := layout.ConstraintGroup{
		Constraints: []layout.Constraint{constraint},
		Footnotes:   []layout.Footnote{{Marker: "1", Text: "note"}},
		RawText:     "<UIButton:0x7f8a4c40aa10>",
		Annotations: map[string]layout.Annotation{
			constraint.First.Instance.Address: {Color: layout.Color{R: 0xdb, G: 0x27, B: 0x77}},
		},
	}

	node := GroupNode(group, Options{})

	constraints, ok := node["constraints"].(viewnode.Array)
	if !ok || len(constraints) != 1 {
		t.Fatalf("expected one constraint node, got %v", node["constraints"])
	}
	first := constraints[0].(viewnode.Object)["first"].(viewnode.Object)
	instance := first["instance"].(viewnode.Object)
	if diff := cmp.Diff(viewnode.Node(viewnode.String("#db2777")), instance["color"]); diff != "" {
		t.Fatalf("annotation color did not reach endpoint (-want +got):\n%s", diff)
	}

	footnotes, ok := node["footnotes"].(viewnode.Array)
	if !ok || len(footnotes) != 1 {
		t.Fatalf("expected one footnote node, got %v", node["footnotes"])
	}
	if _, ok := node["permalink"].(viewnode.String); !ok {
		t.Fatalf("expected permalink string, got %T", node["permalink"])
	}
}

func TestConstraintNodeForwardsDescriptionVerbatim(t *testing.T) {
	constraint := relativeConstraint(8)
	constraint.Description = `<span class="item">UIButton</span> &amp; friends`

	node := ConstraintNode(constraint, nil)
	want := viewnode.Node(viewnode.String(`<span class="item">UIButton</span> &amp; friends`))
	if diff := cmp.Diff(want, node["description"]); diff != "" {
		t.Fatalf("description mismatch (-want +got):\n%s", diff)
	}
}

func TestConstraintNodeFootnoteMarker(t *testing.T) {
	constraint := relativeConstraint(8)
	if diff := cmp.Diff(viewnode.Node(viewnode.Null{}), ConstraintNode(constraint, nil)["footnote"]); diff != "" {
		t.Fatalf("expected null footnote (-want +got):\n%s", diff)
	}

	constraint.FootnoteMarker = "2"
	if diff := cmp.Diff(viewnode.Node(viewnode.String("2")), ConstraintNode(constraint, nil)["footnote"]); diff != "" {
		t.Fatalf("expected footnote marker (-want +got):\n%s", diff)
	}
}
