package rule

// CheckNonEmptyOpt verifies that no optional or repeated sub-rule (separators
// included) can match empty input: a nullable element would make repetition
// non-terminating and optionality ambiguous. The check demands the definite
// answer KnownFalse; Unknown also fails. It is meant to run once over every
// rule of a finished grammar.
func (r *Rule[P]) CheckNonEmptyOpt(cache Cache[P], grammar Grammar[P]) error {
	switch r.kind {
	case KindEmpty, KindEat, KindCall:
		return nil
	case KindConcat, KindOr:
		for _, sub := range r.rules {
			if e := sub.CheckNonEmptyOpt(cache, grammar); e != nil {
				return e
			}
		}
		return nil
	case KindOpt:
		if r.rules[0].CanBeEmpty(cache, grammar) != KnownFalse {
			return nullableRuleError(r.rules[0])
		}
		return r.rules[0].CheckNonEmptyOpt(cache, grammar)
	case KindRepeatMany, KindRepeatMore:
		if r.rules[0].CanBeEmpty(cache, grammar) != KnownFalse {
			return nullableRuleError(r.rules[0])
		}
		if e := r.rules[0].CheckNonEmptyOpt(cache, grammar); e != nil {
			return e
		}
		if r.sep != nil {
			return r.sep.CheckNonEmptyOpt(cache, grammar)
		}
		return nil
	}
	panic("unknown rule kind " + r.kind.String())
}

// CheckCallNames verifies that every rule reference names a rule the grammar
// defines. It is meant to run once over every rule of a finished grammar.
func (r *Rule[P]) CheckCallNames(grammar Grammar[P]) error {
	switch r.kind {
	case KindEmpty, KindEat:
		return nil
	case KindCall:
		if _, has := grammar.Rule(r.name); !has {
			return unknownRuleError(r.name)
		}
		return nil
	case KindConcat, KindOr:
		for _, sub := range r.rules {
			if e := sub.CheckCallNames(grammar); e != nil {
				return e
			}
		}
		return nil
	case KindOpt:
		return r.rules[0].CheckCallNames(grammar)
	case KindRepeatMany, KindRepeatMore:
		if e := r.rules[0].CheckCallNames(grammar); e != nil {
			return e
		}
		if r.sep != nil {
			return r.sep.CheckCallNames(grammar)
		}
		return nil
	}
	panic("unknown rule kind " + r.kind.String())
}

// FieldPathsetIsRefutable reports whether extracting a field owning the given
// path set can fail to produce a value. A field with several paths is
// refutable outright: its presence depends on which alternative matched.
func (r *Rule[P]) FieldPathsetIsRefutable(paths PathSet) bool {
	if paths.Size() > 1 {
		return true
	}
	return r.FieldIsRefutable(paths.Slice()[0])
}

// FieldIsRefutable reports whether the value at path is conditional:
// crossing an alternation or an optional on the way down makes it so.
func (r *Rule[P]) FieldIsRefutable(path Path) bool {
	switch r.kind {
	case KindEmpty, KindEat, KindCall, KindRepeatMany, KindRepeatMore:
		return false
	case KindConcat:
		return r.rules[path[0]].FieldIsRefutable(path[1:])
	case KindOr, KindOpt:
		return true
	}
	panic("unknown rule kind " + r.kind.String())
}
