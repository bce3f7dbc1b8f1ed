package stac

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/gostac/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeDiscriminatorMissing     = "discriminator_missing"
	CodeDiscriminatorInvalidType = "discriminator_invalid_type"
	CodeDiscriminatorUnknown     = "discriminator_unknown"
	CodeRequired                 = "required"
	CodeInvalidType              = "invalid_type"
	CodeDuplicateKey             = "duplicate_key"
	CodeParseError               = "parse_error"
	CodeTruncated                = "truncated"
)

// Issue represents a single structural problem found in a document.
type Issue struct {
	Path    string // JSON Pointer (for example: /links/2/href).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected type, offending value, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"string"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /id
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally. A
// *DecodeError always yields at least one Issue.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(code, path, hint string) Issues {
	return Issues{Issue{Path: path, Code: code, Message: i18n.T(code, nil), Hint: hint}}
}

// ErrorKind classifies why a document could not be turned into an Object.
type ErrorKind int

const (
	KindMissingDiscriminator ErrorKind = iota + 1
	KindInvalidDiscriminatorType
	KindUnrecognizedDiscriminator
	KindVariantDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingDiscriminator:
		return "missing discriminator"
	case KindInvalidDiscriminatorType:
		return "invalid discriminator type"
	case KindUnrecognizedDiscriminator:
		return "unrecognized discriminator"
	case KindVariantDecode:
		return "variant decode"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors matched by errors.Is against a *DecodeError of the same kind.
var (
	ErrMissingDiscriminator      = errors.New("stac: missing type field")
	ErrInvalidDiscriminatorType  = errors.New("stac: type field is not a string")
	ErrUnrecognizedDiscriminator = errors.New("stac: unrecognized type value")
	ErrVariantDecode             = errors.New("stac: variant decode failed")
)

// DecodeError is returned by FromValue and the Read helpers.
//
// Value holds the offending discriminator for KindInvalidDiscriminatorType
// (the raw value) and KindUnrecognizedDiscriminator (the string). Type and Err
// are set for KindVariantDecode, Err being the variant's Issues unchanged.
type DecodeError struct {
	Kind  ErrorKind
	Value any
	Type  Type
	Err   error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindMissingDiscriminator:
		return ErrMissingDiscriminator.Error()
	case KindInvalidDiscriminatorType:
		return fmt.Sprintf("%s: %#v", ErrInvalidDiscriminatorType, e.Value)
	case KindUnrecognizedDiscriminator:
		return fmt.Sprintf("%s: %q", ErrUnrecognizedDiscriminator, e.Value)
	case KindVariantDecode:
		return fmt.Sprintf("stac: decode %s: %v", e.Type, e.Err)
	}
	return "stac: " + e.Kind.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e.Kind.
func (e *DecodeError) Is(target error) bool {
	return target != nil && target == e.sentinel()
}

// As lets errors.As extract Issues from any DecodeError, including the
// discriminator kinds that carry no underlying error.
func (e *DecodeError) As(target any) bool {
	p, ok := target.(*Issues)
	if !ok {
		return false
	}
	*p = e.Issues()
	return true
}

func (e *DecodeError) sentinel() error {
	switch e.Kind {
	case KindMissingDiscriminator:
		return ErrMissingDiscriminator
	case KindInvalidDiscriminatorType:
		return ErrInvalidDiscriminatorType
	case KindUnrecognizedDiscriminator:
		return ErrUnrecognizedDiscriminator
	case KindVariantDecode:
		return ErrVariantDecode
	}
	return nil
}

// Issues projects the error onto the Issue model.
func (e *DecodeError) Issues() Issues {
	path := "/" + typeField
	switch e.Kind {
	case KindMissingDiscriminator:
		return singleIssue(CodeDiscriminatorMissing, path, "expected one of Item, Catalog, Collection")
	case KindInvalidDiscriminatorType:
		iss := singleIssue(CodeDiscriminatorInvalidType, path, "expected string")
		iss[0].Params = map[string]any{"got": e.Value}
		return iss
	case KindUnrecognizedDiscriminator:
		iss := singleIssue(CodeDiscriminatorUnknown, path, fmt.Sprintf("unknown variant: '%v'", e.Value))
		iss[0].Params = map[string]any{"got": e.Value}
		return iss
	}
	var iss Issues
	if errors.As(e.Err, &iss) {
		return iss
	}
	out := singleIssue(CodeParseError, "/", "")
	out[0].Cause = e.Err
	return out
}
