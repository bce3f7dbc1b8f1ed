package stac

// Collection is a Catalog with extent, license and provider metadata.
type Collection struct {
	Core

	Title       string
	Description string
	License     string
	Keywords    []string
	Providers   []Provider
	Extent      Extent
	Summaries   map[string]any
	Assets      map[string]Asset
}

type Provider struct {
	Name        string
	Description string
	Roles       []string
	URL         string

	Extra map[string]any
}

// Extent describes the spatial and temporal coverage of a Collection.
type Extent struct {
	Spatial  SpatialExtent
	Temporal TemporalExtent

	Extra map[string]any
}

type SpatialExtent struct {
	BBox [][]float64

	Extra map[string]any
}

// TemporalExtent holds [start, end] pairs. A nil bound is open.
type TemporalExtent struct {
	Interval [][]*string

	Extra map[string]any
}

func decodeCollection(m map[string]any) (*Collection, error) {
	var iss Issues
	r := newFieldReader(m, pathRef{}, &iss)
	c := &Collection{Core: r.core()}
	c.Title = r.optionalString("title")
	c.Description = r.requiredString("description")
	c.License = r.requiredString("license")
	c.Keywords = r.optionalStrings("keywords")
	c.Providers = decodeProviders(r)
	c.Extent = decodeExtent(r)
	c.Summaries = r.optionalObject("summaries")
	c.Assets = decodeAssets(r, false)
	c.Extra = r.rest()
	if len(iss) > 0 {
		return nil, iss
	}
	return c, nil
}

func decodeProviders(r *fieldReader) []Provider {
	arr := r.array("providers", false)
	if arr == nil {
		return nil
	}
	out := make([]Provider, 0, len(arr))
	for i, v := range arr {
		p := r.path.Field("providers").Index(i)
		m, ok := v.(map[string]any)
		if !ok {
			r.invalid(p, "object", v)
			continue
		}
		pr := newFieldReader(m, p, r.iss)
		prov := Provider{
			Name:        pr.requiredString("name"),
			Description: pr.optionalString("description"),
			Roles:       pr.optionalStrings("roles"),
			URL:         pr.optionalString("url"),
		}
		prov.Extra = pr.rest()
		out = append(out, prov)
	}
	return out
}

func decodeExtent(r *fieldReader) Extent {
	m := r.requiredObject("extent")
	if m == nil {
		return Extent{}
	}
	er := newFieldReader(m, r.path.Field("extent"), r.iss)
	var ext Extent

	if sm := er.requiredObject("spatial"); sm != nil {
		sr := newFieldReader(sm, er.path.Field("spatial"), r.iss)
		for i, b := range sr.array("bbox", true) {
			ext.Spatial.BBox = append(ext.Spatial.BBox, sr.floats(sr.path.Field("bbox").Index(i), b))
		}
		ext.Spatial.Extra = sr.rest()
	}

	if tm := er.requiredObject("temporal"); tm != nil {
		tr := newFieldReader(tm, er.path.Field("temporal"), r.iss)
		for i, iv := range tr.array("interval", true) {
			p := tr.path.Field("interval").Index(i)
			pair, ok := iv.([]any)
			if !ok {
				tr.invalid(p, "array", iv)
				continue
			}
			bounds := make([]*string, len(pair))
			for j, b := range pair {
				switch s := b.(type) {
				case nil:
				case string:
					bounds[j] = &s
				default:
					tr.invalid(p.Index(j), "string", b)
				}
			}
			ext.Temporal.Interval = append(ext.Temporal.Interval, bounds)
		}
		ext.Temporal.Extra = tr.rest()
	}

	ext.Extra = er.rest()
	return ext
}
