// Package stac provides:
//
// - Classification of untyped STAC documents by their "type" field into Item, Catalog or Collection
// - A closed Object union with exhaustive dispatch (Match, Visitor) and downcasts (AsItem, ...)
// - Uniform access to the fields every object shares (Fields, FieldsMut)
// - A stable error model via DecodeError and Issues (JSON Pointer, code, message)
// - JSON/YAML input helpers with size and duplicate-key enforcement
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Keys a variant does not model are kept in Extra, never dropped.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	obj, err := stac.ReadFile("catalog.json")
//	if err != nil {
//		iss, _ := stac.AsIssues(err)
//		...
//	}
//	fmt.Println(obj.Type(), stac.Fields(obj).ID())
//
//	if item, ok := stac.AsItem(obj); ok {
//		fmt.Println(item.Properties["datetime"])
//	}
//
//	stac.FieldsMut(obj).AddExtension("https://stac-extensions.github.io/eo/v1.0.0/schema.json")
package stac
