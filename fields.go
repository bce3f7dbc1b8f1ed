package stac

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/gostac/i18n"
)

// pathRef builds JSON Pointer paths in a chain-safe way.
type pathRef struct {
	parts []string
}

func (p pathRef) Field(name string) pathRef {
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p pathRef) Index(i int) pathRef {
	return pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// fieldReader pulls typed fields out of one generic object, reporting
// problems to a shared Issues sink and remembering which keys it consumed.
type fieldReader struct {
	m    map[string]any
	path pathRef
	seen map[string]struct{}
	iss  *Issues
}

func newFieldReader(m map[string]any, p pathRef, iss *Issues) *fieldReader {
	return &fieldReader{m: m, path: p, seen: make(map[string]struct{}, len(m)), iss: iss}
}

func (r *fieldReader) required(key string) {
	*r.iss = AppendIssues(*r.iss, Issue{
		Path:    r.path.Field(key).Pointer(),
		Code:    CodeRequired,
		Message: i18n.T(CodeRequired, map[string]string{"key": key}),
		Hint:    "missing " + key,
	})
}

func (r *fieldReader) invalid(p pathRef, expected string, got any) {
	*r.iss = AppendIssues(*r.iss, Issue{
		Path:    p.Pointer(),
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"expected": expected}),
		Hint:    "expected " + expected,
		Params:  map[string]any{"expected": expected, "got": kindOf(got)},
	})
}

// skip marks key as consumed without reading it.
func (r *fieldReader) skip(key string) { r.seen[key] = struct{}{} }

func (r *fieldReader) raw(key string) (any, bool) {
	v, ok := r.m[key]
	if ok {
		r.seen[key] = struct{}{}
	}
	return v, ok
}

// str, object and array treat an explicit null in an optional field as
// absent; a null required field is an invalid_type issue.
func (r *fieldReader) str(key string, required bool) string {
	v, ok := r.raw(key)
	if !ok || (v == nil && !required) {
		if !ok && required {
			r.required(key)
		}
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.invalid(r.path.Field(key), "string", v)
	}
	return s
}

func (r *fieldReader) requiredString(key string) string { return r.str(key, true) }
func (r *fieldReader) optionalString(key string) string { return r.str(key, false) }

func (r *fieldReader) optionalStrings(key string) []string {
	v, ok := r.raw(key)
	if !ok || v == nil {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		r.invalid(r.path.Field(key), "array", v)
		return nil
	}
	out := make([]string, 0, len(arr))
	for i, e := range arr {
		s, ok := e.(string)
		if !ok {
			r.invalid(r.path.Field(key).Index(i), "string", e)
			continue
		}
		out = append(out, s)
	}
	return out
}

func (r *fieldReader) object(key string, required bool) map[string]any {
	v, ok := r.raw(key)
	if !ok || (v == nil && !required) {
		if !ok && required {
			r.required(key)
		}
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		r.invalid(r.path.Field(key), "object", v)
	}
	return m
}

func (r *fieldReader) requiredObject(key string) map[string]any { return r.object(key, true) }
func (r *fieldReader) optionalObject(key string) map[string]any { return r.object(key, false) }

func (r *fieldReader) array(key string, required bool) []any {
	v, ok := r.raw(key)
	if !ok || (v == nil && !required) {
		if !ok && required {
			r.required(key)
		}
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		r.invalid(r.path.Field(key), "array", v)
	}
	return arr
}

func (r *fieldReader) optionalFloats(key string) []float64 {
	v, ok := r.raw(key)
	if !ok || v == nil {
		return nil
	}
	return r.floats(r.path.Field(key), v)
}

func (r *fieldReader) floats(p pathRef, v any) []float64 {
	arr, ok := v.([]any)
	if !ok {
		r.invalid(p, "array", v)
		return nil
	}
	out := make([]float64, 0, len(arr))
	for i, e := range arr {
		f, ok := toFloat(e)
		if !ok {
			r.invalid(p.Index(i), "number", e)
			continue
		}
		out = append(out, f)
	}
	return out
}

// rest returns the keys nobody consumed, or nil.
func (r *fieldReader) rest() map[string]any {
	var out map[string]any
	for k, v := range r.m {
		if _, ok := r.seen[k]; ok {
			continue
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[k] = v
	}
	return out
}

// core reads the fields shared by every variant. Extra is left for the
// caller to fill once the variant has consumed its own keys.
func (r *fieldReader) core() Core {
	r.skip(typeField)
	c := Core{
		ID:         r.requiredString("id"),
		Version:    r.requiredString("stac_version"),
		Extensions: r.optionalStrings("stac_extensions"),
	}
	links := r.array("links", true)
	if links != nil {
		c.Links = make([]Link, 0, len(links))
	}
	for i, e := range links {
		p := r.path.Field("links").Index(i)
		m, ok := e.(map[string]any)
		if !ok {
			r.invalid(p, "object", e)
			continue
		}
		lr := newFieldReader(m, p, r.iss)
		l := Link{
			Href:  lr.requiredString("href"),
			Rel:   lr.requiredString("rel"),
			Type:  lr.optionalString("type"),
			Title: lr.optionalString("title"),
		}
		l.Extra = lr.rest()
		c.Links = append(c.Links, l)
	}
	return c
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// kindOf names the JSON kind of a generic value for issue parameters.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if _, ok := toFloat(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
