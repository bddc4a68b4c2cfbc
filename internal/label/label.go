// Package label models the structured identity of a build target, of the
// form "@repo//package/path:name". The repository qualifier is empty for
// targets that live in the main repository.
package label

import (
	"fmt"
	"strings"
)

// Label is the structured identity of a build target.
type Label struct {
	// Repo is the repository qualifier. Empty means the main repository.
	Repo string
	// Pkg is the slash-separated package path, without leading "//".
	Pkg string
	// Name is the target name within the package.
	Name string
}

// Parse parses a label string. Accepted forms:
//
//	//pkg/path:name          main repository
//	@repo//pkg/path:name     external repository
//	@//pkg/path:name         main repository, explicit empty qualifier
func Parse(s string) (Label, error) {
	rest := s
	var repo string

	if strings.HasPrefix(rest, "@") {
		idx := strings.Index(rest, "//")
		if idx < 0 {
			return Label{}, fmt.Errorf("invalid label %q: missing '//' after repository qualifier", s)
		}
		repo = rest[1:idx]
		rest = rest[idx:]
	}

	if !strings.HasPrefix(rest, "//") {
		return Label{}, fmt.Errorf("invalid label %q: must start with '//' or '@repo//'", s)
	}
	rest = rest[2:]

	pkg, name, ok := strings.Cut(rest, ":")
	if !ok {
		return Label{}, fmt.Errorf("invalid label %q: missing ':' before target name", s)
	}
	if name == "" {
		return Label{}, fmt.Errorf("invalid label %q: empty target name", s)
	}
	if strings.Contains(name, ":") {
		return Label{}, fmt.Errorf("invalid label %q: multiple ':' separators", s)
	}

	return Label{Repo: repo, Pkg: pkg, Name: name}, nil
}

// MustParse is Parse for labels known to be well-formed at compile time.
// It panics on malformed input.
func MustParse(s string) Label {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

// IsMainRepo reports whether the label belongs to the main (default)
// repository.
func (l Label) IsMainRepo() bool {
	return l.Repo == ""
}

// String renders the label for command lines and params files. Main-repository
// labels render as the plain "//pkg:name" form. External-repository labels
// carry exactly one leading '@' sentinel so that downstream params-file
// parsing can tell a repository-qualified label from an unqualified one.
func (l Label) String() string {
	var sb strings.Builder
	if !l.IsMainRepo() {
		sb.WriteByte('@')
		sb.WriteString(l.Repo)
	}
	sb.WriteString("//")
	sb.WriteString(l.Pkg)
	sb.WriteByte(':')
	sb.WriteString(l.Name)
	return sb.String()
}

// Equal checks structural equality of two labels.
func (l Label) Equal(other Label) bool {
	return l == other
}
