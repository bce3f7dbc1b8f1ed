package stac_test

import "testing"

func minimalItem() map[string]any {
	return map[string]any{
		"type":         "Item",
		"stac_version": "1.0.0",
		"id":           "an-item",
		"geometry":     nil,
		"properties":   map[string]any{"datetime": "2020-12-11T22:38:32Z"},
		"assets":       map[string]any{},
		"links":        []any{},
	}
}

func minimalCatalog() map[string]any {
	return map[string]any{
		"type":         "Catalog",
		"stac_version": "1.0.0",
		"id":           "a-catalog",
		"description":  "a catalog",
		"links":        []any{},
	}
}

func minimalCollection() map[string]any {
	return map[string]any{
		"type":         "Collection",
		"stac_version": "1.0.0",
		"id":           "a-collection",
		"description":  "a collection",
		"license":      "proprietary",
		"extent": map[string]any{
			"spatial":  map[string]any{"bbox": []any{[]any{-180.0, -90.0, 180.0, 90.0}}},
			"temporal": map[string]any{"interval": []any{[]any{nil, nil}}},
		},
		"links": []any{},
	}
}

func minimalDocs() map[string]map[string]any {
	return map[string]map[string]any{
		"Item":       minimalItem(),
		"Catalog":    minimalCatalog(),
		"Collection": minimalCollection(),
	}
}

func with(m map[string]any, kv ...any) map[string]any {
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return m
}

func without(m map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		delete(m, k)
	}
	return m
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
