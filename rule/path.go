package rule

import (
	set "github.com/hashicorp/go-set/v2"
)

// Path addresses a sub-rule (and, for a field, the captured value) as a
// sequence of descent indices: 0 or 1 for the sides of a concatenation,
// the alternative index for an alternation, 0 for the inner rule of an
// optional or a repetition. Paths are plain values, independent of any
// particular tree; an empty path addresses the node itself.
type Path []int

// PathSet is an ordered set of alternative paths to the same field.
// A field owns more than one path only when it was merged across several
// alternatives of an alternation.
type PathSet = *set.TreeSet[Path]

// ComparePaths orders paths lexicographically, shorter prefixes first.
func ComparePaths(a, b Path) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}
	return len(a) - len(b)
}

func newPathSet(paths ...Path) PathSet {
	s := set.NewTreeSet[Path](ComparePaths)
	for _, p := range paths {
		s.Insert(p)
	}
	return s
}

func prefixPath(index int, path Path) Path {
	prefixed := make(Path, 0, len(path)+1)
	prefixed = append(prefixed, index)
	return append(prefixed, path...)
}
