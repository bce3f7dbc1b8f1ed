package stac

// Catalog groups other STAC objects through its links.
type Catalog struct {
	Core

	Title       string
	Description string
}

func decodeCatalog(m map[string]any) (*Catalog, error) {
	var iss Issues
	r := newFieldReader(m, pathRef{}, &iss)
	c := &Catalog{Core: r.core()}
	c.Title = r.optionalString("title")
	c.Description = r.requiredString("description")
	c.Extra = r.rest()
	if len(iss) > 0 {
		return nil, iss
	}
	return c, nil
}
