package rule

import (
	"strings"

	"github.com/gramkit/gram"
)

const (
	DuplicateFieldError = gram.RuleErrors + iota
	FieldShapeError
	SeparatorFieldsError
	WhitespaceFieldsError
	NullableRuleError
	UnknownRuleError
)

func duplicateFieldError(name string) *gram.Error {
	return gram.FormatError(DuplicateFieldError, "duplicate field %q", name)
}

func fieldShapeError[P Pattern](name string, r *Rule[P]) *gram.Error {
	return gram.FormatError(FieldShapeError, "cannot attach field %q to repetition of %s", name, r.Inner())
}

func separatorFieldsError(names []string) *gram.Error {
	return gram.FormatError(SeparatorFieldsError, "separator must not define fields: %s", strings.Join(names, ", "))
}

func whitespaceFieldsError(names []string) *gram.Error {
	return gram.FormatError(WhitespaceFieldsError, "whitespace rule must not define fields: %s", strings.Join(names, ", "))
}

func nullableRuleError[P Pattern](r *Rule[P]) *gram.Error {
	return gram.FormatError(NullableRuleError, "rule %s under repetition or optionality may match empty input", r)
}

func unknownRuleError(name string) *gram.Error {
	return gram.FormatError(UnknownRuleError, "no rule named %q", name)
}
