// Package rule implements the rule algebra of the gram toolkit: immutable
// context-free rule trees over a generic terminal-pattern type, combinators
// that grow them while tracking named output fields, a generic fold/rewrite
// framework, and structural analyses (nullability, validity checks,
// field refutability) used by grammar compilers.
package rule

import (
	"fmt"
	"strings"
)

// Pattern is the capability required of terminal patterns: value equality
// (for structural rule comparison and cache lookups) and an answer to
// "can this pattern match empty input?".
type Pattern interface {
	comparable
	MatchesEmpty() Maybe
}

// Kind discriminates rule tree node shapes.
type Kind int

const (
	KindEmpty Kind = iota
	KindEat
	KindCall
	KindConcat
	KindOr
	KindOpt
	KindRepeatMany
	KindRepeatMore
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindEat:
		return "eat"
	case KindCall:
		return "call"
	case KindConcat:
		return "concat"
	case KindOr:
		return "or"
	case KindOpt:
		return "opt"
	case KindRepeatMany:
		return "repeat-many"
	case KindRepeatMore:
		return "repeat-more"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// SepKind tells how a repetition separator may appear.
type SepKind int

const (
	// SepSimple permits the separator strictly between elements.
	SepSimple SepKind = iota
	// SepTrailing also permits one separator after the last element.
	SepTrailing
)

func (k SepKind) String() string {
	if k == SepTrailing {
		return "trailing"
	}
	return "simple"
}

// Rule is one node of a rule tree. Nodes are immutable once constructed and
// freely shared by pointer between trees, fields, and grammar rules; pointer
// identity is the fast path for equality and for the nullability cache.
//
// Node contents by kind:
//   - KindEmpty: nothing, matches only empty input;
//   - KindEat: one terminal pattern;
//   - KindCall: the name of a grammar rule, resolved lazily at query time;
//   - KindConcat: exactly two sub-rules in sequence;
//   - KindOr: two or more alternatives, tried in order;
//   - KindOpt: one optional sub-rule;
//   - KindRepeatMany, KindRepeatMore: one repeated sub-rule (zero-or-more and
//     one-or-more respectively) with an optional separator.
type Rule[P Pattern] struct {
	kind    Kind
	pat     P          // KindEat
	name    string     // KindCall
	rules   []*Rule[P] // sub-rules for KindConcat and KindOr, inner rule otherwise
	sep     *Rule[P]   // optional separator for repetitions
	sepKind SepKind
}

// Kind returns the node shape.
func (r *Rule[P]) Kind() Kind {
	return r.kind
}

// Pat returns the terminal pattern of a KindEat node, zero value otherwise.
func (r *Rule[P]) Pat() P {
	return r.pat
}

// Name returns the rule name of a KindCall node, empty string otherwise.
func (r *Rule[P]) Name() string {
	return r.name
}

// Rules returns the direct sub-rules of a KindConcat (both sides, in order)
// or KindOr (all alternatives, in order) node. Returned slice is a copy.
func (r *Rule[P]) Rules() []*Rule[P] {
	rules := make([]*Rule[P], len(r.rules))
	copy(rules, r.rules)
	return rules
}

// Inner returns the wrapped sub-rule of a KindOpt, KindRepeatMany, or
// KindRepeatMore node, nil otherwise.
func (r *Rule[P]) Inner() *Rule[P] {
	switch r.kind {
	case KindOpt, KindRepeatMany, KindRepeatMore:
		return r.rules[0]
	}
	return nil
}

// Sep returns the separator of a repetition node and its kind.
// Returns nil if the node has no separator.
func (r *Rule[P]) Sep() (*Rule[P], SepKind) {
	return r.sep, r.sepKind
}

// At returns the sub-rule reached by descending along path.
// Returns false if some step does not address a child of the current node.
func (r *Rule[P]) At(path Path) (*Rule[P], bool) {
	cur := r
	for _, index := range path {
		switch cur.kind {
		case KindConcat, KindOr:
			if index < 0 || index >= len(cur.rules) {
				return nil, false
			}
			cur = cur.rules[index]
		case KindOpt, KindRepeatMany, KindRepeatMore:
			switch {
			case index == 0:
				cur = cur.rules[0]
			case index == 1 && cur.sep != nil:
				cur = cur.sep
			default:
				return nil, false
			}
		default:
			return nil, false
		}
	}
	return cur, true
}

// Equal tells whether two rule trees have the same structure, patterns, and
// call names. Shared nodes compare in constant time.
func (r *Rule[P]) Equal(other *Rule[P]) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil || r.kind != other.kind {
		return false
	}

	switch r.kind {
	case KindEmpty:
		return true
	case KindEat:
		return r.pat == other.pat
	case KindCall:
		return r.name == other.name
	case KindConcat, KindOr:
		if len(r.rules) != len(other.rules) {
			return false
		}
		for i, sub := range r.rules {
			if !sub.Equal(other.rules[i]) {
				return false
			}
		}
		return true
	case KindOpt:
		return r.rules[0].Equal(other.rules[0])
	case KindRepeatMany, KindRepeatMore:
		if !r.rules[0].Equal(other.rules[0]) {
			return false
		}
		if (r.sep == nil) != (other.sep == nil) {
			return false
		}
		return r.sep == nil || (r.sepKind == other.sepKind && r.sep.Equal(other.sep))
	}
	panic("unknown rule kind " + r.kind.String())
}

// String renders the rule in a compact grammar-description notation:
// juxtaposition for sequence, | for alternation, ?, *, + for optionality and
// repetition, % and %% for simple and trailing separators.
func (r *Rule[P]) String() string {
	return r.render(orPrec)
}

const (
	orPrec = iota
	concatPrec
	atomPrec
)

func (r *Rule[P]) render(prec int) string {
	switch r.kind {
	case KindEmpty:
		return `""`
	case KindEat:
		return fmt.Sprintf("%v", r.pat)
	case KindCall:
		return r.name
	case KindConcat:
		s := r.rules[0].render(concatPrec) + " " + r.rules[1].render(concatPrec)
		if prec > concatPrec {
			s = "(" + s + ")"
		}
		return s
	case KindOr:
		parts := make([]string, len(r.rules))
		for i, alt := range r.rules {
			parts[i] = alt.render(concatPrec)
		}
		s := strings.Join(parts, " | ")
		if prec > orPrec {
			s = "(" + s + ")"
		}
		return s
	case KindOpt:
		return r.rules[0].render(atomPrec) + "?"
	case KindRepeatMany, KindRepeatMore:
		op := "*"
		if r.kind == KindRepeatMore {
			op = "+"
		}
		s := r.rules[0].render(atomPrec) + op
		if r.sep != nil {
			sepOp := " % "
			if r.sepKind == SepTrailing {
				sepOp = " %% "
			}
			s += sepOp + r.sep.render(atomPrec)
			if prec > orPrec {
				s = "(" + s + ")"
			}
		}
		return s
	}
	panic("unknown rule kind " + r.kind.String())
}
