package rule

// InsertWhitespace splices whitespace between sequenced and repeated
// elements: every concatenation gets one whitespace rule between its sides,
// and repetitions get whitespace woven into their separator. whitespace must
// not define fields (panics otherwise).
//
// The splicing is purely structural and known to be imprecise around
// optionality: `a b? c` becomes `a WS b? WS c`, which parses two adjacent
// whitespace rules when `b` is absent, and `a? b` becomes `a? WS b`, which
// accepts a leading whitespace when `a` is absent. Likewise a trailing
// separator on a zero-or-more repetition admits one extra trailing
// whitespace. Downstream consumers rely on these exact shapes.
func (n Named[P]) InsertWhitespace(whitespace Named[P]) Named[P] {
	if whitespace.fieldCount() > 0 {
		panic(whitespaceFieldsError(whitespace.Fields()))
	}

	inserter := &whitespaceInserter[P]{whitespace: whitespace}
	inserter.Self = inserter
	return n.Fold(inserter)
}

type whitespaceInserter[P Pattern] struct {
	DefaultFolder[P]
	whitespace Named[P]
}

func (w *whitespaceInserter[P]) FoldConcat(left, right Named[P]) Named[P] {
	return left.Fold(w).Then(w.whitespace).Then(right.Fold(w))
}

func (w *whitespaceInserter[P]) FoldRepeatMany(elem Named[P], sep *Separator[P]) Named[P] {
	switch {
	case sep == nil:
		// a* => a+ % WS
		return elem.Fold(w).RepeatMore(&Separator[P]{Rule: w.whitespace, Kind: SepSimple})
	case sep.Kind == SepSimple:
		// a* % b => a+ % (WS b WS)
		return elem.Fold(w).RepeatMore(&Separator[P]{Rule: w.infix(sep.Rule), Kind: SepSimple})
	default:
		// a* %% b => a+ %% (WS b WS), which admits an extra trailing whitespace
		return elem.Fold(w).RepeatMore(&Separator[P]{Rule: w.infix(sep.Rule), Kind: SepTrailing})
	}
}

func (w *whitespaceInserter[P]) FoldRepeatMore(elem Named[P], sep *Separator[P]) Named[P] {
	switch {
	case sep == nil:
		// a+ => a+ % WS
		return elem.Fold(w).RepeatMore(&Separator[P]{Rule: w.whitespace, Kind: SepSimple})
	case sep.Kind == SepSimple:
		// a+ % b => a+ % (WS b WS)
		return elem.Fold(w).RepeatMore(&Separator[P]{Rule: w.infix(sep.Rule), Kind: SepSimple})
	default:
		// a+ %% b => (a+ % (WS b WS)) (WS b)?
		return elem.Fold(w).
			RepeatMore(&Separator[P]{Rule: w.infix(sep.Rule), Kind: SepSimple}).
			Then(w.whitespace.Then(sep.Rule).Opt())
	}
}

func (w *whitespaceInserter[P]) infix(sep Named[P]) Named[P] {
	return w.whitespace.Then(sep).Then(w.whitespace)
}
