// Package viewmodel maps layout domain entities onto the generic view node
// tree consumed by template renderers. Every function here is a pure
// transformation: inputs are never mutated, no state is shared, and calls
// are safe to run concurrently over the same domain objects.
//
// The produced field schema is a wire contract with the template layer.
// Optional fields are emitted as explicit nulls, with one exception: a
// constraint's "second" key is absent entirely when the constraint has only
// one endpoint, which is how templates tell absolute constraints apart from
// relative ones.
package viewmodel

import (
	"unicode"

	"github.com/goliatone/go-layoutviz/pkg/layout"
	"github.com/goliatone/go-layoutviz/pkg/viewnode"
)

// Options control group-level mapping behavior.
type Options struct {
	// OmitPermalink forces the group's permalink to null regardless of the
	// raw text, for contexts where a shareable link is irrelevant.
	OmitPermalink bool
}

// GroupNode maps a constraint group to its view node. Constraint nodes are
// built with the group's annotation mapping; the permalink derives from the
// group's raw text unless opted out or over the length cap.
func GroupNode(group layout.ConstraintGroup, opts Options) viewnode.Object {
	constraints := make(viewnode.Array, 0, len(group.Constraints))
	for _, constraint := range group.Constraints {
		constraints = append(constraints, ConstraintNode(constraint, group.Annotations))
	}
	footnotes := make(viewnode.Array, 0, len(group.Footnotes))
	for _, footnote := range group.Footnotes {
		footnotes = append(footnotes, FootnoteNode(footnote))
	}
	return viewnode.Object{
		"constraints": constraints,
		"permalink":   permalinkNode(group.RawText, opts.OmitPermalink),
		"footnotes":   footnotes,
	}
}

// ConstraintNode maps a single constraint. The annotation mapping is keyed
// by instance address; endpoints pick up the annotation for their instance.
func ConstraintNode(constraint layout.Constraint, annotations map[string]layout.Annotation) viewnode.Object {
	hasSecond := constraint.Second != nil

	node := viewnode.Object{
		"identity":    optionalString(constraint.Identity),
		"first":       EndpointNode(constraint.First, annotations),
		"relation":    RelationNode(constraint.Relation),
		"constant":    constraintConstantNode(constraint.Constant, hasSecond),
		"multiplier":  MultiplierNode(constraint.Multiplier),
		"description": viewnode.String(constraint.Description),
		"footnote":    optionalString(constraint.FootnoteMarker),
	}
	if hasSecond {
		node["second"] = EndpointNode(*constraint.Second, annotations)
	}
	return node
}

// constraintConstantNode applies the constant-hiding rule: an all-zero
// offset between two anchors is not worth displaying.
func constraintConstantNode(constant layout.Constant, hasSecond bool) viewnode.Node {
	if constant.Value == 0 && hasSecond {
		return viewnode.Null{}
	}
	return ConstantNode(constant, hasSecond)
}

// EndpointNode maps an endpoint to {instance, attribute}. The instance node
// embeds the annotation registered for the endpoint's instance, if any.
func EndpointNode(endpoint layout.LayoutItemAttribute, annotations map[string]layout.Annotation) viewnode.Object {
	var annotation *layout.Annotation
	if found, ok := annotations[endpoint.Instance.Address]; ok {
		annotation = &found
	}
	return viewnode.Object{
		"instance":  InstanceNode(endpoint.Instance, annotation),
		"attribute": AttributeNode(endpoint.Attribute),
	}
}

// InstanceNode maps an instance together with its optional annotation. A
// missing annotation degrades to a null suffix and the default color.
func InstanceNode(instance layout.Instance, annotation *layout.Annotation) viewnode.Object {
	suffix := viewnode.Node(viewnode.Null{})
	color := layout.DefaultAnnotationColor
	if annotation != nil {
		color = annotation.Color
		if annotation.Suffix != "" {
			suffix = viewnode.String(annotation.Suffix)
		}
	}
	return viewnode.Object{
		"address":    viewnode.String(instance.Address),
		"class":      viewnode.String(instance.ClassName),
		"name":       viewnode.String(instance.DisplayName),
		"suffix":     suffix,
		"color":      ColorNode(color),
		"initial":    viewnode.String(nameInitial(instance.DisplayName)),
		"identifier": optionalString(instance.Identifier),
	}
}

// AttributeNode maps an attribute to {name, includesMargin}.
func AttributeNode(attribute layout.Attribute) viewnode.Object {
	return viewnode.Object{
		"name":           viewnode.String(attribute.Name),
		"includesMargin": viewnode.Bool(attribute.IncludesMargin),
	}
}

// RelationNode maps a relation to its raw token.
func RelationNode(relation layout.Relation) viewnode.Node {
	return viewnode.String(relation.Token())
}

// MultiplierNode maps a multiplier: null for the identity value, otherwise
// "* " followed by the value formatted with at most 3 fractional digits.
func MultiplierNode(multiplier layout.Multiplier) viewnode.Node {
	if multiplier.Value == 1 {
		return viewnode.Null{}
	}
	return viewnode.String("* " + formatNumber(multiplier.Value, 3))
}

// ConstantNode maps a constant to {value, prefix}. Negative constants always
// render a "- " prefix with the absolute value; positive constants request
// a "+ " prefix only when positivePrefix is set (i.e. the owning constraint
// has a second endpoint). The prefix is null otherwise.
func ConstantNode(constant layout.Constant, positivePrefix bool) viewnode.Object {
	prefix := viewnode.Node(viewnode.Null{})
	value := constant.Value
	switch {
	case value < 0:
		prefix = viewnode.String("- ")
		value = -value
	case positivePrefix:
		prefix = viewnode.String("+ ")
	}
	return viewnode.Object{
		"value":  viewnode.String(formatNumber(value, -1)),
		"prefix": prefix,
	}
}

// ColorNode maps a color to its hex string form.
func ColorNode(color layout.Color) viewnode.Node {
	return viewnode.String(color.Hex())
}

// FootnoteNode maps a footnote to {marker, text}. Text is pre-rendered HTML
// and passes through unchanged.
func FootnoteNode(footnote layout.Footnote) viewnode.Object {
	return viewnode.Object{
		"marker": viewnode.String(footnote.Marker),
		"text":   viewnode.String(footnote.Text),
	}
}

// nameInitial returns the first alphanumeric rune of a display name,
// upper-cased, or "" when the name has none. Digits count: "3D Rotation"
// yields "3", not "D".
func nameInitial(name string) string {
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return string(unicode.ToUpper(r))
		}
	}
	return ""
}

func optionalString(value string) viewnode.Node {
	if value == "" {
		return viewnode.Null{}
	}
	return viewnode.String(value)
}
