package rule

// Maybe is a three-valued truth value: a definite yes, a definite no,
// or not (yet) provable either way. It is the result type of all
// nullability queries; callers must treat Unknown explicitly, it is
// never coerced to a boolean.
type Maybe int

const (
	Unknown Maybe = iota
	KnownFalse
	KnownTrue
)

// Known converts a definite boolean into a Maybe.
func Known(value bool) Maybe {
	if value {
		return KnownTrue
	}
	return KnownFalse
}

// Value returns the definite value and a flag telling whether one is known.
func (m Maybe) Value() (value, known bool) {
	return m == KnownTrue, m != Unknown
}

// Or is three-valued disjunction: KnownTrue absorbs, KnownFalse is neutral.
func (m Maybe) Or(other Maybe) Maybe {
	switch {
	case m == KnownTrue || other == KnownTrue:
		return KnownTrue
	case m == KnownFalse:
		return other
	case other == KnownFalse:
		return m
	}
	return Unknown
}

// And is three-valued conjunction: KnownFalse absorbs, KnownTrue is neutral.
func (m Maybe) And(other Maybe) Maybe {
	switch {
	case m == KnownFalse || other == KnownFalse:
		return KnownFalse
	case m == KnownTrue:
		return other
	case other == KnownTrue:
		return m
	}
	return Unknown
}

func (m Maybe) String() string {
	switch m {
	case KnownFalse:
		return "known false"
	case KnownTrue:
		return "known true"
	default:
		return "unknown"
	}
}
