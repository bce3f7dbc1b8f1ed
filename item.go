package stac

import "time"

// Item is a GeoJSON Feature with STAC fields.
type Item struct {
	Core

	Geometry   any       // GeoJSON geometry object, or nil
	BBox       []float64 // bbox
	Properties map[string]any
	Assets     map[string]Asset
	Collection string // collection id, when the item belongs to one
}

// Asset is a named entry of an Item's or Collection's "assets" object.
type Asset struct {
	Href  string
	Title string
	Type  string
	Roles []string

	Extra map[string]any
}

// Datetime parses properties.datetime as RFC 3339. It reports false when the
// value is null, missing or malformed; ranged items carry start_datetime and
// end_datetime instead.
func (i *Item) Datetime() (time.Time, bool) {
	s, ok := i.Properties["datetime"].(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func decodeItem(m map[string]any) (*Item, error) {
	var iss Issues
	r := newFieldReader(m, pathRef{}, &iss)
	it := &Item{Core: r.core()}
	if g, ok := r.raw("geometry"); ok && g != nil {
		if _, isObj := g.(map[string]any); !isObj {
			r.invalid(r.path.Field("geometry"), "object", g)
		}
		it.Geometry = g
	}
	it.BBox = r.optionalFloats("bbox")
	it.Properties = r.requiredObject("properties")
	it.Assets = decodeAssets(r, true)
	it.Collection = r.optionalString("collection")
	it.Extra = r.rest()
	if len(iss) > 0 {
		return nil, iss
	}
	return it, nil
}

func decodeAssets(r *fieldReader, required bool) map[string]Asset {
	m := r.object("assets", required)
	if m == nil {
		return nil
	}
	out := make(map[string]Asset, len(m))
	for name, v := range m {
		p := r.path.Field("assets").Field(name)
		am, ok := v.(map[string]any)
		if !ok {
			r.invalid(p, "object", v)
			continue
		}
		ar := newFieldReader(am, p, r.iss)
		a := Asset{
			Href:  ar.requiredString("href"),
			Title: ar.optionalString("title"),
			Type:  ar.optionalString("type"),
			Roles: ar.optionalStrings("roles"),
		}
		a.Extra = ar.rest()
		out[name] = a
	}
	return out
}
