package rule

// Grammar resolves rule names to their definitions. It is supplied whole by
// the caller; this package reads it during Call resolution and validity
// checks but never builds or owns one.
type Grammar[P Pattern] interface {
	// Rule returns the definition of the named rule and a flag telling
	// whether the grammar defines it.
	Rule(name string) (Named[P], bool)
}

// Cache memoizes nullability answers between queries over the same grammar.
// A fresh cache is an empty map. The cache is also the cycle breaker, so
// concurrent callers need separate caches (or external synchronization).
type Cache[P Pattern] map[*Rule[P]]Maybe

// CanBeEmpty reports whether the rule can match zero-length input,
// resolving Call references through grammar.
//
// The computation is a single-pass, cycle-tolerant approximation: before
// recursing, the node is seeded into the cache as Unknown, so a cyclic
// reference chain bottoms out instead of recursing forever. Definite answers
// overwrite the seed and stay cached; an answer that remains Unknown is
// evicted, since a later query entered from a different rule may still
// resolve it. A mutually-recursive rule set whose answer depends on
// evaluation order can therefore stay Unknown; callers must treat that as
// "not provable yet", never as a boolean.
func (r *Rule[P]) CanBeEmpty(cache Cache[P], grammar Grammar[P]) Maybe {
	if known, has := cache[r]; has {
		return known
	}
	cache[r] = Unknown

	result := r.canBeEmptyUncached(cache, grammar)
	if result == Unknown {
		delete(cache, r)
	} else {
		cache[r] = result
	}
	return result
}

func (r *Rule[P]) canBeEmptyUncached(cache Cache[P], grammar Grammar[P]) Maybe {
	switch r.kind {
	case KindEmpty, KindOpt, KindRepeatMany:
		return KnownTrue
	case KindEat:
		return r.pat.MatchesEmpty()
	case KindCall:
		named, has := grammar.Rule(r.name)
		if !has {
			panic(unknownRuleError(r.name))
		}
		return named.rule.CanBeEmpty(cache, grammar)
	case KindConcat:
		left := r.rules[0].CanBeEmpty(cache, grammar)
		right := r.rules[1].CanBeEmpty(cache, grammar)
		return left.And(right)
	case KindOr:
		result := KnownFalse
		for _, alt := range r.rules {
			result = result.Or(alt.CanBeEmpty(cache, grammar))
		}
		return result
	case KindRepeatMore:
		return r.rules[0].CanBeEmpty(cache, grammar)
	}
	panic("unknown rule kind " + r.kind.String())
}
