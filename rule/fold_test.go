package rule

import (
	"testing"

	"github.com/go-quicktest/qt"
)

// identityFolder exercises the pure default behavior.
type identityFolder struct {
	DefaultFolder[pat]
}

func newIdentityFolder() *identityFolder {
	f := &identityFolder{}
	f.Self = f
	return f
}

func TestDefaultFoldRebuildsTree(t *testing.T) {
	r := Eat[pat]("a").Field("x").Opt().
		Then(Eat[pat]("b").Field("y").Or(Eat[pat]("c").Field("y"))).
		Then(Call[pat]("item").RepeatMore(&Separator[pat]{Rule: Eat[pat](","), Kind: SepTrailing}))

	folded := r.Fold(newIdentityFolder())

	qt.Assert(t, qt.IsTrue(folded.Rule().Equal(r.Rule())))
	qt.Assert(t, qt.DeepEquals(folded.Fields(), r.Fields()))
	for _, name := range r.Fields() {
		qt.Assert(t, qt.DeepEquals(paths(folded, name), paths(r, name)),
			qt.Commentf("field %s", name))
	}
}

func TestFoldKeepsOwnFields(t *testing.T) {
	// A field attached to the repetition wrapper itself has an empty path;
	// it must survive the rewrite of the wrapper's element.
	r := Call[pat]("item").RepeatMany(nil).Field("items")

	folded := r.Fold(newIdentityFolder())

	qt.Assert(t, qt.IsTrue(folded.Rule().Equal(r.Rule())))
	qt.Assert(t, qt.DeepEquals(paths(folded, "items"), []Path{{}}))
}

func TestFoldLeafGetsWholeValue(t *testing.T) {
	leaf := Eat[pat]("a").Field("x")
	folded := leaf.Fold(newIdentityFolder())

	qt.Assert(t, qt.Equals(folded.Rule(), leaf.Rule()))
	qt.Assert(t, qt.DeepEquals(paths(folded, "x"), []Path{{}}))
}

// renameCalls rewrites rule references, a minimal restructuring pass: it
// rebuilds leaves through the combinator layer, so field paths stay correct.
type renameCalls struct {
	DefaultFolder[pat]
	from, to string
}

func newRenameCalls(from, to string) *renameCalls {
	f := &renameCalls{from: from, to: to}
	f.Self = f
	return f
}

func (f *renameCalls) FoldLeaf(leaf Named[pat]) Named[pat] {
	r := leaf.Rule()
	if r.Kind() != KindCall || r.Name() != f.from {
		return leaf
	}
	out := Call[pat](f.to)
	for _, name := range leaf.Fields() {
		out = out.Field(name)
	}
	return out
}

func TestFoldRestructuringPass(t *testing.T) {
	r := Call[pat]("old").Field("head").
		Then(Call[pat]("old").RepeatMany(&Separator[pat]{Rule: Call[pat]("old"), Kind: SepSimple}))

	folded := r.Fold(newRenameCalls("old", "new"))

	want := Call[pat]("new").Field("head").
		Then(Call[pat]("new").RepeatMany(&Separator[pat]{Rule: Call[pat]("new"), Kind: SepSimple}))
	qt.Assert(t, qt.IsTrue(folded.Rule().Equal(want.Rule())))
	qt.Assert(t, qt.DeepEquals(paths(folded, "head"), []Path{{0}}))
}

func TestFoldPartitionsFieldsByAlternative(t *testing.T) {
	r := Eat[pat]("a").Field("x").Or(Eat[pat]("b").Field("y")).Or(Eat[pat]("c").Field("x"))

	var seen [][]string
	f := &recordingFolder{}
	f.Self = f
	f.record = func(alt Named[pat]) {
		seen = append(seen, alt.Fields())
	}
	r.Fold(f)

	qt.Assert(t, qt.DeepEquals(seen, [][]string{{"x"}, {"y"}, {"x"}}))
}

type recordingFolder struct {
	DefaultFolder[pat]
	record func(Named[pat])
}

func (f *recordingFolder) FoldOr(alts []Named[pat]) Named[pat] {
	for _, alt := range alts {
		f.record(alt)
	}
	return f.DefaultFolder.FoldOr(alts)
}
