// Package layout defines the constraint domain model the view mapper
// consumes: constraint groups captured from an auto-layout debugging dump,
// the instances and attributes they reference, and the per-pass annotations
// that decorate instances for display. Values are plain data; nothing in
// this package mutates after construction and everything is safe to share
// across concurrent rendering passes.
package layout

// Relation is the comparison a constraint applies between its endpoints.
type Relation string

const (
	RelationEqual              Relation = "=="
	RelationLessThanOrEqual    Relation = "<="
	RelationGreaterThanOrEqual Relation = ">="
)

// Token returns the raw relation token used in rendered output.
func (r Relation) Token() string {
	return string(r)
}

// Instance identifies a concrete layout item taking part in a constraint.
// Address is the stable identity for the item within a rendering pass;
// annotations are keyed by it.
type Instance struct {
	Address     string `json:"address"`
	ClassName   string `json:"class"`
	DisplayName string `json:"name"`
	// Identifier is the item's externally assigned identifier, empty when
	// the dump carried none.
	Identifier string `json:"identifier,omitempty"`
}

// Attribute names the side or dimension of a layout item bound by a
// constraint (top, leading, width, ...). IncludesMargin marks the margin
// flavored variants.
type Attribute struct {
	Name           string `json:"name"`
	IncludesMargin bool   `json:"includesMargin,omitempty"`
}

// LayoutItemAttribute is a constraint endpoint: an instance paired with one
// of its attributes.
type LayoutItemAttribute struct {
	Instance  Instance  `json:"instance"`
	Attribute Attribute `json:"attribute"`
}

// Constant is a constraint's constant offset.
type Constant struct {
	Value float64 `json:"value"`
}

// Multiplier scales a constraint's second endpoint. A multiplier of exactly
// 1 is the identity and is never displayed.
type Multiplier struct {
	Value float64 `json:"value"`
}

// Constraint is a single layout relationship. Second is nil for absolute
// constraints that pin a lone endpoint to a literal value.
type Constraint struct {
	Identity   string               `json:"identity"`
	First      LayoutItemAttribute  `json:"first"`
	Second     *LayoutItemAttribute `json:"second,omitempty"`
	Relation   Relation             `json:"relation"`
	Constant   Constant             `json:"constant"`
	Multiplier Multiplier           `json:"multiplier"`
	// FootnoteMarker references a footnote in the owning group, empty when
	// the constraint has none.
	FootnoteMarker string `json:"footnote,omitempty"`
	// Description is pre-rendered HTML produced upstream. The mapper passes
	// it through byte-for-byte.
	Description string `json:"description"`
}

// Footnote is an auxiliary remark attached to a constraint group. Text is
// pre-rendered HTML.
type Footnote struct {
	Marker string `json:"marker"`
	Text   string `json:"text"`
}

// ConstraintGroup is the unit of visualization: the constraints and
// footnotes parsed from one dump, the raw text they came from, and the
// display annotations assigned for the current rendering pass.
type ConstraintGroup struct {
	Constraints []Constraint `json:"constraints"`
	Footnotes   []Footnote   `json:"footnotes,omitempty"`
	RawText     string       `json:"rawText"`
	// Annotations maps instance addresses to display annotations. Absent
	// entries degrade gracefully: null suffix, default color.
	Annotations map[string]Annotation `json:"annotations,omitempty"`
}
