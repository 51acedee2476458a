package rule

import (
	set "github.com/hashicorp/go-set/v2"

	"github.com/gramkit/gram/internal/omap"
)

// Named pairs a rule tree with its named output fields: a mapping from field
// name to the set of paths addressing the captured value inside the tree.
// Field names keep their attachment order for deterministic downstream
// code generation.
//
// Named values are grown exclusively through the combinator methods below.
// All of them are pure: they consume their operands and return a new value,
// re-deriving every field path for the new tree shape. Construction-time
// invariant violations (duplicate field names, unsupported shapes, fields on
// separators) panic with *gram.Error; they are programmer errors with no
// recoverable state.
type Named[P Pattern] struct {
	rule   *Rule[P]
	fields *omap.Map[PathSet]
}

func newNamed[P Pattern](r *Rule[P]) Named[P] {
	return Named[P]{rule: r, fields: omap.New[PathSet](0)}
}

// Empty returns a rule matching only empty input, with no fields.
func Empty[P Pattern]() Named[P] {
	return newNamed(&Rule[P]{kind: KindEmpty})
}

// Eat returns a rule matching one terminal pattern, with no fields.
func Eat[P Pattern](pat P) Named[P] {
	return newNamed(&Rule[P]{kind: KindEat, pat: pat})
}

// Call returns a rule delegating to the named grammar rule, with no fields.
func Call[P Pattern](name string) Named[P] {
	return newNamed(&Rule[P]{kind: KindCall, name: name})
}

// Rule returns the underlying rule tree.
func (n Named[P]) Rule() *Rule[P] {
	return n.rule
}

// Fields returns field names in attachment order.
func (n Named[P]) Fields() []string {
	if n.fields == nil {
		return nil
	}
	return n.fields.Keys()
}

// FieldPaths returns the path set of the named field.
func (n Named[P]) FieldPaths(name string) (PathSet, bool) {
	if n.fields == nil {
		return nil, false
	}
	return n.fields.Get(name)
}

func (n Named[P]) fieldCount() int {
	if n.fields == nil {
		return 0
	}
	return n.fields.Len()
}

// Field names the value produced by this rule. The field addresses the rule
// itself, except for an optional, where it addresses the inner value, and for
// a repetition, where the element must be a plain terminal or rule reference
// (any other repeated shape panics). Attaching an existing name replaces its
// paths.
func (n Named[P]) Field(name string) Named[P] {
	var path Path
	switch n.rule.kind {
	case KindRepeatMany, KindRepeatMore:
		switch n.rule.rules[0].kind {
		case KindEat, KindCall:
			path = Path{}
		default:
			panic(fieldShapeError(name, n.rule))
		}
	case KindOpt:
		path = Path{0}
	default:
		path = Path{}
	}

	fields := copyFields(n.fields)
	fields.Set(name, newPathSet(path))
	return Named[P]{rule: n.rule, fields: fields}
}

// Opt wraps the rule in an optional. Existing field paths move one level
// deeper, inside the optional.
func (n Named[P]) Opt() Named[P] {
	return Named[P]{
		rule:   &Rule[P]{kind: KindOpt, rules: []*Rule[P]{n.rule}},
		fields: prefixFields(n.fields, 0),
	}
}

// Separator is a repetition separator operand: a field-less rule plus the
// kind telling whether a trailing separator is permitted.
type Separator[P Pattern] struct {
	Rule Named[P]
	Kind SepKind
}

// RepeatMany wraps the rule in a zero-or-more repetition, optionally
// interleaved with sep. Separators are not capturable: a separator with
// fields panics.
func (n Named[P]) RepeatMany(sep *Separator[P]) Named[P] {
	return n.repeat(KindRepeatMany, sep)
}

// RepeatMore wraps the rule in a one-or-more repetition, optionally
// interleaved with sep. Separators are not capturable: a separator with
// fields panics.
func (n Named[P]) RepeatMore(sep *Separator[P]) Named[P] {
	return n.repeat(KindRepeatMore, sep)
}

func (n Named[P]) repeat(kind Kind, sep *Separator[P]) Named[P] {
	r := &Rule[P]{kind: kind, rules: []*Rule[P]{n.rule}}
	if sep != nil {
		if sep.Rule.fieldCount() > 0 {
			panic(separatorFieldsError(sep.Rule.Fields()))
		}
		r.sep = sep.Rule.rule
		r.sepKind = sep.Kind
	}
	return Named[P]{rule: r, fields: prefixFields(n.fields, 0)}
}

// Then concatenates two rules in sequence. Concatenating with a field-less
// empty rule on either side returns the other operand unchanged, so repeated
// splicing does not pile up redundant concatenations. A field name present in
// both operands panics.
func (n Named[P]) Then(other Named[P]) Named[P] {
	switch {
	case n.rule.kind == KindEmpty && n.fieldCount() == 0:
		return other
	case other.rule.kind == KindEmpty && other.fieldCount() == 0:
		return n
	}

	fields := prefixFields(n.fields, 0)
	right := prefixFields(other.fields, 1)
	for _, name := range right.Keys() {
		if fields.Has(name) {
			panic(duplicateFieldError(name))
		}
		paths, _ := right.Get(name)
		fields.Set(name, paths)
	}

	return Named[P]{
		rule:   &Rule[P]{kind: KindConcat, rules: []*Rule[P]{n.rule, other.rule}},
		fields: fields,
	}
}

// Or adds an alternative. If the receiver is already an alternation the new
// alternative is appended to its list; otherwise a two-element alternation is
// built. Unlike Then, a field name defined by several alternatives is not an
// error: its path sets are unioned, one path per defining alternative.
func (n Named[P]) Or(other Named[P]) Named[P] {
	if n.rule.kind == KindOr {
		count := len(n.rule.rules)
		rules := make([]*Rule[P], count, count+1)
		copy(rules, n.rule.rules)
		rules = append(rules, other.rule)

		fields := copyFields(n.fields)
		mergeFields(fields, prefixFields(other.fields, count))
		return Named[P]{rule: &Rule[P]{kind: KindOr, rules: rules}, fields: fields}
	}

	fields := prefixFields(n.fields, 0)
	mergeFields(fields, prefixFields(other.fields, 1))
	return Named[P]{
		rule:   &Rule[P]{kind: KindOr, rules: []*Rule[P]{n.rule, other.rule}},
		fields: fields,
	}
}

// Field maps are persistent: a path set stored in a map is never mutated,
// every transformation builds new sets, so copies may share them.

func copyFields(fields *omap.Map[PathSet]) *omap.Map[PathSet] {
	if fields == nil {
		return omap.New[PathSet](0)
	}
	out := omap.New[PathSet](fields.Len())
	for _, name := range fields.Keys() {
		paths, _ := fields.Get(name)
		out.Set(name, paths)
	}
	return out
}

func prefixFields(fields *omap.Map[PathSet], index int) *omap.Map[PathSet] {
	if fields == nil {
		return omap.New[PathSet](0)
	}
	out := omap.New[PathSet](fields.Len())
	for _, name := range fields.Keys() {
		paths, _ := fields.Get(name)
		prefixed := set.NewTreeSet[Path](ComparePaths)
		for _, p := range paths.Slice() {
			prefixed.Insert(prefixPath(index, p))
		}
		out.Set(name, prefixed)
	}
	return out
}

func mergeFields(dst, src *omap.Map[PathSet]) {
	for _, name := range src.Keys() {
		paths, _ := src.Get(name)
		existing, has := dst.Get(name)
		if !has {
			dst.Set(name, paths)
			continue
		}
		combined := set.NewTreeSet[Path](ComparePaths)
		for _, p := range existing.Slice() {
			combined.Insert(p)
		}
		for _, p := range paths.Slice() {
			combined.Insert(p)
		}
		dst.Set(name, combined)
	}
}
