package stac

// typeField is the discriminator key of every STAC object.
const typeField = "type"

// FromValue classifies a generic document by its "type" field and decodes it
// into the matching Object.
//
// doc is normally the map[string]any produced by a JSON or YAML parser; any
// other value is treated as a document without a type field. The matched
// variant decoder sees the whole document, "type" included. Its failure is
// returned as a KindVariantDecode error and no other variant is tried.
//
// FromValue is pure and safe for concurrent use.
func FromValue(doc any) (Object, error) {
	m, _ := doc.(map[string]any)
	raw, ok := m[typeField]
	if !ok {
		return nil, &DecodeError{Kind: KindMissingDiscriminator}
	}
	tag, ok := raw.(string)
	if !ok {
		return nil, &DecodeError{Kind: KindInvalidDiscriminatorType, Value: raw}
	}
	switch Type(tag) {
	case TypeItem:
		return variant(TypeItem, decodeItem, m)
	case TypeCatalog:
		return variant(TypeCatalog, decodeCatalog, m)
	case TypeCollection:
		return variant(TypeCollection, decodeCollection, m)
	}
	return nil, &DecodeError{Kind: KindUnrecognizedDiscriminator, Value: tag}
}

func variant[T Object](t Type, decode func(map[string]any) (T, error), m map[string]any) (Object, error) {
	v, err := decode(m)
	if err != nil {
		return nil, &DecodeError{Kind: KindVariantDecode, Type: t, Err: err}
	}
	return v, nil
}
