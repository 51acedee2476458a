package rule

import (
	set "github.com/hashicorp/go-set/v2"

	"github.com/gramkit/gram/internal/omap"
)

// Folder is a tree rewrite: one hook per rule shape. Hooks receive unfolded
// sub-rules, each carrying the slice of the field mapping that addresses it,
// and are expected to recurse via Fold themselves. A concrete pass may
// restructure the tree freely as long as it recombines operands through the
// combinator methods, which re-derive field paths for the new shape.
type Folder[P Pattern] interface {
	FoldLeaf(leaf Named[P]) Named[P]
	FoldConcat(left, right Named[P]) Named[P]
	FoldOr(alts []Named[P]) Named[P]
	FoldOpt(inner Named[P]) Named[P]
	FoldRepeatMany(elem Named[P], sep *Separator[P]) Named[P]
	FoldRepeatMore(elem Named[P], sep *Separator[P]) Named[P]
}

// DefaultFolder supplies the structurally-recursive default behavior: fold
// every sub-rule and reapply the original combinator. Concrete passes embed
// it and override only the hooks they need. Self must be set to the complete
// folder before use, so that defaults recurse through overridden hooks.
type DefaultFolder[P Pattern] struct {
	Self Folder[P]
}

func (d *DefaultFolder[P]) FoldLeaf(leaf Named[P]) Named[P] {
	return leaf
}

func (d *DefaultFolder[P]) FoldConcat(left, right Named[P]) Named[P] {
	return left.Fold(d.Self).Then(right.Fold(d.Self))
}

func (d *DefaultFolder[P]) FoldOr(alts []Named[P]) Named[P] {
	or := alts[0].Fold(d.Self)
	for _, alt := range alts[1:] {
		or = or.Or(alt.Fold(d.Self))
	}
	return or
}

func (d *DefaultFolder[P]) FoldOpt(inner Named[P]) Named[P] {
	return inner.Fold(d.Self).Opt()
}

func (d *DefaultFolder[P]) FoldRepeatMany(elem Named[P], sep *Separator[P]) Named[P] {
	return elem.Fold(d.Self).RepeatMany(foldSep(d.Self, sep))
}

func (d *DefaultFolder[P]) FoldRepeatMore(elem Named[P], sep *Separator[P]) Named[P] {
	return elem.Fold(d.Self).RepeatMore(foldSep(d.Self, sep))
}

func foldSep[P Pattern](folder Folder[P], sep *Separator[P]) *Separator[P] {
	if sep == nil {
		return nil
	}
	return &Separator[P]{Rule: sep.Rule.Fold(folder), Kind: sep.Kind}
}

// Fold rebuilds the rule through folder. Before descending, the field mapping
// is partitioned by the leading path index so each sub-rule receives only the
// fields addressing it, stripped by one level; fields addressing this node
// itself (empty path) are reattached to whatever the hook produced.
func (n Named[P]) Fold(folder Folder[P]) Named[P] {
	sub := func(r *Rule[P], index int) Named[P] {
		return Named[P]{rule: r, fields: n.filterFields(index)}
	}

	var out Named[P]
	switch n.rule.kind {
	case KindEmpty, KindEat, KindCall:
		return folder.FoldLeaf(n)
	case KindConcat:
		out = folder.FoldConcat(sub(n.rule.rules[0], 0), sub(n.rule.rules[1], 1))
	case KindOr:
		alts := make([]Named[P], len(n.rule.rules))
		for i, r := range n.rule.rules {
			alts[i] = sub(r, i)
		}
		out = folder.FoldOr(alts)
	case KindOpt:
		out = folder.FoldOpt(sub(n.rule.rules[0], 0))
	case KindRepeatMany:
		out = folder.FoldRepeatMany(sub(n.rule.rules[0], 0), n.sepOperand())
	case KindRepeatMore:
		out = folder.FoldRepeatMore(sub(n.rule.rules[0], 0), n.sepOperand())
	default:
		panic("unknown rule kind " + n.rule.kind.String())
	}

	own := n.ownFields()
	if own.Len() > 0 {
		fields := copyFields(out.fields)
		for _, name := range own.Keys() {
			paths, _ := own.Get(name)
			fields.Set(name, paths)
		}
		out = Named[P]{rule: out.rule, fields: fields}
	}
	return out
}

// filterFields collects fields with paths descending through the index-th
// sub-rule, stripped of their leading index.
func (n Named[P]) filterFields(index int) *omap.Map[PathSet] {
	out := omap.New[PathSet](n.fields.Len())
	for _, name := range n.fields.Keys() {
		paths, _ := n.fields.Get(name)
		filtered := set.NewTreeSet[Path](ComparePaths)
		for _, p := range paths.Slice() {
			if len(p) > 0 && p[0] == index {
				filtered.Insert(p[1:])
			}
		}
		if filtered.Size() > 0 {
			out.Set(name, filtered)
		}
	}
	return out
}

// ownFields collects fields addressing this node itself, which is only
// possible for optional and repetition wrappers.
func (n Named[P]) ownFields() *omap.Map[PathSet] {
	out := omap.New[PathSet](0)
	for _, name := range n.fields.Keys() {
		paths, _ := n.fields.Get(name)
		for _, p := range paths.Slice() {
			if len(p) == 0 {
				out.Set(name, newPathSet(Path{}))
				break
			}
		}
	}
	return out
}

func (n Named[P]) sepOperand() *Separator[P] {
	if n.rule.sep == nil {
		return nil
	}
	return &Separator[P]{
		Rule: Named[P]{rule: n.rule.sep, fields: n.filterFields(1)},
		Kind: n.rule.sepKind,
	}
}
