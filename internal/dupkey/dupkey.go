// Package dupkey scans JSON input for objects that repeat a key. Generic
// decoders silently keep the last value, so the scan runs on the token stream.
package dupkey

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Strictness controls duplicate key handling.
type Strictness int

const (
	Ignore Strictness = iota
	Warn
	Error
)

// Issue is a minimal issue representation; callers map it onto their own
// error model.
type Issue struct {
	Code    string
	Path    string
	Message string
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	pendingKey   string
	nextIndex    int
}

// DetectBytes reports duplicate object keys in data.
// If onDup is Ignore, no issues are produced. maxIssues < 0 means unlimited;
// 0 means disabled; >0 sets a limit. With Error the scan stops at the first
// duplicate.
func DetectBytes(data []byte, onDup Strictness, maxIssues int) ([]Issue, error) {
	if onDup == Ignore {
		return nil, nil
	}
	return detect(json.NewDecoder(bytes.NewReader(data)), onDup, maxIssues)
}

func detect(dec *json.Decoder, onDup Strictness, maxIssues int) ([]Issue, error) {
	dec.UseNumber()
	var issues []Issue
	var stack []frame

	full := false
	appendIssue := func(i Issue) {
		if maxIssues == 0 || full {
			return
		}
		issues = append(issues, i)
		if maxIssues > 0 && len(issues) >= maxIssues {
			issues = append(issues, Issue{Code: "truncated", Path: "/", Message: "max issues reached"})
			full = true
		}
	}
	// childPath returns the pointer of the value about to be read.
	childPath := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.kind == kindObject {
			return top.path + "/" + escape(top.pendingKey)
		}
		p := top.path + "/" + strconv.Itoa(top.nextIndex)
		top.nextIndex++
		return p
	}
	valueDone := func() {
		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.kind == kindObject && !top.expectingKey {
				top.expectingKey = true
			}
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return issues, err
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, frame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true, path: childPath()})
			case '[':
				stack = append(stack, frame{kind: kindArray, path: childPath()})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if len(stack) > 0 {
				top := &stack[len(stack)-1]
				if top.kind == kindObject && top.expectingKey {
					if _, ok := top.keys[v]; ok {
						appendIssue(Issue{Code: "duplicate_key", Path: top.path + "/" + escape(v), Message: "key '" + v + "' duplicated"})
						if onDup == Error {
							return issues, nil
						}
					}
					top.keys[v] = struct{}{}
					top.pendingKey = v
					top.expectingKey = false
					continue
				}
			}
			childPath()
			valueDone()
		default:
			childPath()
			valueDone()
		}
	}

	return issues, nil
}

func escape(key string) string {
	return strings.ReplaceAll(strings.ReplaceAll(key, "~", "~0"), "/", "~1")
}
