package rule

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
)

func ws() Named[pat] {
	return Eat[pat]("WS")
}

func sep(kind SepKind) *Separator[pat] {
	return &Separator[pat]{Rule: Eat[pat](","), Kind: kind}
}

func wsInfix() Named[pat] {
	return ws().Then(Eat[pat](",")).Then(ws())
}

func TestInsertWhitespaceConcat(t *testing.T) {
	got := Eat[pat]("a").Then(Eat[pat]("b")).InsertWhitespace(ws())
	want := Eat[pat]("a").Then(ws()).Then(Eat[pat]("b"))

	if diff := cmp.Diff(want.Rule().String(), got.Rule().String()); diff != "" {
		t.Fatalf("rule mismatch (-want +got):\n%s", diff)
	}
	qt.Assert(t, qt.IsTrue(got.Rule().Equal(want.Rule())))
}

func TestInsertWhitespaceKeepsFields(t *testing.T) {
	got := Eat[pat]("a").Field("x").Then(Eat[pat]("b").Field("y")).InsertWhitespace(ws())

	qt.Assert(t, qt.DeepEquals(paths(got, "x"), []Path{{0, 0}}))
	qt.Assert(t, qt.DeepEquals(paths(got, "y"), []Path{{1}}))
	for _, name := range got.Fields() {
		for _, p := range paths(got, name) {
			_, ok := got.Rule().At(p)
			qt.Assert(t, qt.IsTrue(ok), qt.Commentf("field %s path %v", name, p))
		}
	}
}

func TestInsertWhitespaceRepeatMany(t *testing.T) {
	// A bare zero-or-more repetition becomes one-or-more separated by
	// whitespace.
	got := Eat[pat]("a").RepeatMany(nil).InsertWhitespace(ws())
	want := Eat[pat]("a").RepeatMore(&Separator[pat]{Rule: ws(), Kind: SepSimple})
	qt.Assert(t, qt.IsTrue(got.Rule().Equal(want.Rule())))

	got = Eat[pat]("a").RepeatMany(sep(SepSimple)).InsertWhitespace(ws())
	want = Eat[pat]("a").RepeatMore(&Separator[pat]{Rule: wsInfix(), Kind: SepSimple})
	qt.Assert(t, qt.IsTrue(got.Rule().Equal(want.Rule())))

	// The trailing kind is kept, admitting an extra trailing whitespace.
	got = Eat[pat]("a").RepeatMany(sep(SepTrailing)).InsertWhitespace(ws())
	want = Eat[pat]("a").RepeatMore(&Separator[pat]{Rule: wsInfix(), Kind: SepTrailing})
	qt.Assert(t, qt.IsTrue(got.Rule().Equal(want.Rule())))
}

func TestInsertWhitespaceRepeatMore(t *testing.T) {
	got := Eat[pat]("a").RepeatMore(nil).InsertWhitespace(ws())
	want := Eat[pat]("a").RepeatMore(&Separator[pat]{Rule: ws(), Kind: SepSimple})
	qt.Assert(t, qt.IsTrue(got.Rule().Equal(want.Rule())))

	got = Eat[pat]("a").RepeatMore(sep(SepSimple)).InsertWhitespace(ws())
	want = Eat[pat]("a").RepeatMore(&Separator[pat]{Rule: wsInfix(), Kind: SepSimple})
	qt.Assert(t, qt.IsTrue(got.Rule().Equal(want.Rule())))

	// One-or-more with a trailing separator splits into a simple-separated
	// repetition plus an optional trailing separator.
	got = Eat[pat]("a").RepeatMore(sep(SepTrailing)).InsertWhitespace(ws())
	want = Eat[pat]("a").
		RepeatMore(&Separator[pat]{Rule: wsInfix(), Kind: SepSimple}).
		Then(ws().Then(Eat[pat](",")).Opt())
	qt.Assert(t, qt.IsTrue(got.Rule().Equal(want.Rule())))
}

func TestInsertWhitespaceAroundOptional(t *testing.T) {
	// Splicing ignores optionality: an absent middle element leaves two
	// adjacent whitespace rules, and a leading optional gets a leading
	// whitespace. Downstream consumers rely on these exact shapes.
	got := Eat[pat]("a").Then(Eat[pat]("b").Opt()).Then(Eat[pat]("c")).InsertWhitespace(ws())
	if diff := cmp.Diff("a WS b? WS c", got.Rule().String()); diff != "" {
		t.Fatalf("rule mismatch (-want +got):\n%s", diff)
	}

	got = Eat[pat]("a").Opt().Then(Eat[pat]("b")).InsertWhitespace(ws())
	if diff := cmp.Diff("a? WS b", got.Rule().String()); diff != "" {
		t.Fatalf("rule mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertWhitespaceRejectsFields(t *testing.T) {
	qt.Assert(t, qt.PanicMatches(func() {
		Eat[pat]("a").Then(Eat[pat]("b")).InsertWhitespace(ws().Field("gap"))
	}, `whitespace rule must not define fields: gap`))
}
