package svgtree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTree is returned when the root element yields no node.
	ErrEmptyTree = errors.New("svgtree: empty tree")
	// ErrDanglingReference is the cause of issues about unknown ids.
	ErrDanglingReference = errors.New("svgtree: dangling reference")
	// ErrCyclicReference is matched by every *CycleError.
	ErrCyclicReference = errors.New("svgtree: cyclic reference")
)

// CycleError is reported when a reference targets an element
// which is already being resolved.
type CycleError struct {
	ID   string   // the referenced id
	Path []string // tags of the elements being resolved, outermost first
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("svgtree: cyclic reference to #%s (through %s)", e.ID, strings.Join(e.Path, " > "))
}

// Is makes errors.Is(err, ErrCyclicReference) hold.
func (e *CycleError) Is(target error) bool { return target == ErrCyclicReference }

// IssueKind classifies the recoverable problems met while building.
type IssueKind uint8

const (
	DanglingReference IssueKind = iota
	UnknownElement
	MalformedAttribute
	CyclicReference
)

func (k IssueKind) String() string {
	switch k {
	case DanglingReference:
		return "dangling reference"
	case UnknownElement:
		return "unknown element"
	case MalformedAttribute:
		return "malformed attribute"
	case CyclicReference:
		return "cyclic reference"
	default:
		return fmt.Sprintf("<unknown IssueKind %d>", k)
	}
}

// Issue is a diagnostic: the element is either omitted or built
// with default values. Issues are errors, returned as such
// in StrictErrorMode.
type Issue struct {
	Kind IssueKind
	Tag  string // tag of the faulty element
	Line int    // source line, 0 if unknown
	Attr string // faulty attribute, if any
	Ref  string // referenced id, for reference issues
	Err  error  // underlying cause
}

func (iss Issue) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "svgtree: %s in <%s>", iss.Kind, iss.Tag)
	if iss.Line > 0 {
		fmt.Fprintf(&sb, " (line %d)", iss.Line)
	}
	if iss.Attr != "" {
		fmt.Fprintf(&sb, ", attribute %s", iss.Attr)
	}
	if iss.Ref != "" {
		fmt.Fprintf(&sb, ", #%s", iss.Ref)
	}
	if iss.Err != nil {
		fmt.Fprintf(&sb, ": %v", iss.Err)
	}
	return sb.String()
}

func (iss Issue) Unwrap() error { return iss.Err }
