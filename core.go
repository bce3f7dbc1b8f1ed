package stac

import (
	"maps"
	"slices"
)

// Core holds the fields every STAC object carries.
type Core struct {
	ID         string   // id
	Version    string   // stac_version
	Extensions []string // stac_extensions
	Links      []Link   // links

	// Extra keeps every top-level key the variant does not model, extension
	// fields included.
	Extra map[string]any
}

// Link is an entry of an object's "links" array.
type Link struct {
	Href  string
	Rel   string
	Type  string
	Title string

	Extra map[string]any
}

// LinksByRel returns the links whose rel equals rel, in document order.
func (c *Core) LinksByRel(rel string) []Link {
	var out []Link
	for _, l := range c.Links {
		if l.Rel == rel {
			out = append(out, l)
		}
	}
	return out
}

// Link returns the first link with the given rel.
func (c *Core) Link(rel string) (Link, bool) {
	for _, l := range c.Links {
		if l.Rel == rel {
			return l, true
		}
	}
	return Link{}, false
}

// SetLink replaces the first link sharing l's rel, or appends l.
func (c *Core) SetLink(l Link) {
	for i := range c.Links {
		if c.Links[i].Rel == l.Rel {
			c.Links[i] = l
			return
		}
	}
	c.Links = append(c.Links, l)
}

func (c *Core) HasExtension(id string) bool { return slices.Contains(c.Extensions, id) }

// AddExtension records id in stac_extensions unless already present.
func (c *Core) AddExtension(id string) {
	if !c.HasExtension(id) {
		c.Extensions = append(c.Extensions, id)
	}
}

// Fields returns a read-only view of o's common fields.
func Fields(o Object) CoreView { return CoreView{c: core(o)} }

// FieldsMut returns the common fields of o for in-place modification. The
// pointer aliases o's payload; callers must not share it across goroutines
// without their own synchronization.
func FieldsMut(o Object) *Core { return core(o) }

func core(o Object) *Core {
	return Match(o,
		func(i *Item) *Core { return &i.Core },
		func(c *Catalog) *Core { return &c.Core },
		func(c *Collection) *Core { return &c.Core },
	)
}

// CoreView is a read-only projection of Core. Slice and map getters return
// copies, so nothing obtained from a view can modify the Object.
type CoreView struct{ c *Core }

func (v CoreView) ID() string      { return v.c.ID }
func (v CoreView) Version() string { return v.c.Version }

func (v CoreView) Extensions() []string { return slices.Clone(v.c.Extensions) }

func (v CoreView) Links() []Link {
	out := make([]Link, len(v.c.Links))
	for i, l := range v.c.Links {
		l.Extra = maps.Clone(l.Extra)
		out[i] = l
	}
	return out
}

func (v CoreView) LinksByRel(rel string) []Link {
	out := v.c.LinksByRel(rel)
	for i := range out {
		out[i].Extra = maps.Clone(out[i].Extra)
	}
	return out
}

func (v CoreView) Link(rel string) (Link, bool) {
	l, ok := v.c.Link(rel)
	l.Extra = maps.Clone(l.Extra)
	return l, ok
}

func (v CoreView) HasExtension(id string) bool { return v.c.HasExtension(id) }

// Extra returns the value of an unmodelled top-level key. Nested maps and
// slices are shared with the Object and must be treated as read-only.
func (v CoreView) Extra(key string) (any, bool) {
	val, ok := v.c.Extra[key]
	return val, ok
}

// ExtraKeys lists the unmodelled top-level keys in sorted order.
func (v CoreView) ExtraKeys() []string { return slices.Sorted(maps.Keys(v.c.Extra)) }
