package stac_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	stac "github.com/reoring/gostac"
)

func TestFromValue_RecognizedTypes(t *testing.T) {
	for name, doc := range minimalDocs() {
		t.Run(name, func(t *testing.T) {
			obj, err := stac.FromValue(doc)
			mustNoErr(t, err)
			if got := obj.Type(); got != stac.Type(name) {
				t.Fatalf("tag = %q, want %q", got, name)
			}
			// the tag re-derived from the payload matches the discriminator
			if got := doc["type"]; string(obj.Type()) != got {
				t.Fatalf("tag %q diverged from discriminator %v", obj.Type(), got)
			}
		})
	}
}

func TestFromValue_MissingDiscriminator(t *testing.T) {
	tests := map[string]any{
		"empty object":   map[string]any{},
		"no type":        without(minimalItem(), "type"),
		"nil document":   nil,
		"array document": []any{map[string]any{"type": "Item"}},
		"string":         "Item",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			obj, err := stac.FromValue(doc)
			if obj != nil {
				t.Fatalf("expected no object, got %T", obj)
			}
			var de *stac.DecodeError
			if !errors.As(err, &de) || de.Kind != stac.KindMissingDiscriminator {
				t.Fatalf("expected missing discriminator, got %v", err)
			}
			if !errors.Is(err, stac.ErrMissingDiscriminator) {
				t.Fatalf("errors.Is(ErrMissingDiscriminator) = false for %v", err)
			}
		})
	}
}

func TestFromValue_InvalidDiscriminatorType(t *testing.T) {
	tests := map[string]any{
		"int":         42,
		"float":       42.5,
		"json number": json.Number("42"),
		"bool":        true,
		"null":        nil,
		"array":       []any{"Item"},
		"object":      map[string]any{"name": "Item"},
	}
	for name, v := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := stac.FromValue(with(minimalItem(), "type", v))
			var de *stac.DecodeError
			if !errors.As(err, &de) || de.Kind != stac.KindInvalidDiscriminatorType {
				t.Fatalf("expected invalid discriminator type, got %v", err)
			}
			if diff := cmp.Diff(v, de.Value); diff != "" {
				t.Fatalf("carried value mismatch (-want +got):\n%s", diff)
			}
			if !errors.Is(err, stac.ErrInvalidDiscriminatorType) {
				t.Fatalf("errors.Is(ErrInvalidDiscriminatorType) = false")
			}
		})
	}
}

func TestFromValue_UnrecognizedDiscriminator(t *testing.T) {
	for _, tag := range []string{"Feature", "catalog", "", "ItemCollection", " Item", "Item "} {
		t.Run(tag, func(t *testing.T) {
			_, err := stac.FromValue(with(minimalItem(), "type", tag))
			var de *stac.DecodeError
			if !errors.As(err, &de) || de.Kind != stac.KindUnrecognizedDiscriminator {
				t.Fatalf("expected unrecognized discriminator, got %v", err)
			}
			if de.Value != tag {
				t.Fatalf("carried value = %#v, want %q", de.Value, tag)
			}
			if !errors.Is(err, stac.ErrUnrecognizedDiscriminator) {
				t.Fatalf("errors.Is(ErrUnrecognizedDiscriminator) = false")
			}
		})
	}
}

func TestFromValue_VariantDecodeFailure(t *testing.T) {
	_, err := stac.FromValue(map[string]any{"type": "Item"})
	var de *stac.DecodeError
	if !errors.As(err, &de) || de.Kind != stac.KindVariantDecode {
		t.Fatalf("expected variant decode failure, got %v", err)
	}
	if de.Type != stac.TypeItem {
		t.Fatalf("failed variant = %q, want Item", de.Type)
	}
	if !errors.Is(err, stac.ErrVariantDecode) {
		t.Fatalf("errors.Is(ErrVariantDecode) = false")
	}
	// the underlying structural error is passed through unchanged
	var iss stac.Issues
	if !errors.As(de.Err, &iss) {
		t.Fatalf("expected Issues as cause, got %T", de.Err)
	}
	var paths []string
	for _, it := range iss {
		if it.Code != stac.CodeRequired {
			t.Fatalf("unexpected code %q at %s", it.Code, it.Path)
		}
		paths = append(paths, it.Path)
	}
	want := []string{"/id", "/stac_version", "/links", "/properties", "/assets"}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFromValue_NoFallbackAcrossVariants(t *testing.T) {
	// a valid catalog labelled as a collection must not decode as a catalog
	_, err := stac.FromValue(with(minimalCatalog(), "type", "Collection"))
	var de *stac.DecodeError
	if !errors.As(err, &de) || de.Kind != stac.KindVariantDecode || de.Type != stac.TypeCollection {
		t.Fatalf("expected Collection decode failure, got %v", err)
	}
}

func TestFromValue_StructuralIssues(t *testing.T) {
	tests := map[string]struct {
		doc  map[string]any
		path string
		code string
	}{
		"id not string": {
			doc:  with(minimalCatalog(), "id", 7),
			path: "/id",
			code: stac.CodeInvalidType,
		},
		"link without href": {
			doc:  with(minimalCatalog(), "links", []any{map[string]any{"rel": "self"}}),
			path: "/links/0/href",
			code: stac.CodeRequired,
		},
		"link not object": {
			doc:  with(minimalCatalog(), "links", []any{"./catalog.json"}),
			path: "/links/0",
			code: stac.CodeInvalidType,
		},
		"extension not string": {
			doc:  with(minimalItem(), "stac_extensions", []any{"a", 1}),
			path: "/stac_extensions/1",
			code: stac.CodeInvalidType,
		},
		"bbox element not number": {
			doc:  with(minimalItem(), "bbox", []any{1.0, "2"}),
			path: "/bbox/1",
			code: stac.CodeInvalidType,
		},
		"geometry not object": {
			doc:  with(minimalItem(), "geometry", "POINT(1 2)"),
			path: "/geometry",
			code: stac.CodeInvalidType,
		},
		"asset without href": {
			doc:  with(minimalItem(), "assets", map[string]any{"data/x": map[string]any{}}),
			path: "/assets/data~1x/href",
			code: stac.CodeRequired,
		},
		"collection without extent": {
			doc:  without(minimalCollection(), "extent"),
			path: "/extent",
			code: stac.CodeRequired,
		},
		"temporal bound not string": {
			doc: with(minimalCollection(), "extent", map[string]any{
				"spatial":  map[string]any{"bbox": []any{[]any{0.0, 0.0, 1.0, 1.0}}},
				"temporal": map[string]any{"interval": []any{[]any{nil, 2020}}},
			}),
			path: "/extent/temporal/interval/0/1",
			code: stac.CodeInvalidType,
		},
		"provider without name": {
			doc:  with(minimalCollection(), "providers", []any{map[string]any{"url": "http://example.com"}}),
			path: "/providers/0/name",
			code: stac.CodeRequired,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := stac.FromValue(tt.doc)
			iss, ok := stac.AsIssues(err)
			if !ok || len(iss) != 1 {
				t.Fatalf("expected one issue, got %v", err)
			}
			if iss[0].Path != tt.path || iss[0].Code != tt.code {
				t.Fatalf("got %s at %s, want %s at %s", iss[0].Code, iss[0].Path, tt.code, tt.path)
			}
		})
	}
}

func TestFromValue_NullOptionalFields(t *testing.T) {
	tests := map[string]map[string]any{
		"item collection": with(minimalItem(), "collection", nil),
		"item bbox":       with(minimalItem(), "bbox", nil),
		"link type and title": with(minimalCatalog(), "links", []any{
			map[string]any{"rel": "self", "href": "./c.json", "type": nil, "title": nil},
		}),
		"catalog title":    with(minimalCatalog(), "title", nil),
		"extensions":       with(minimalCatalog(), "stac_extensions", nil),
		"collection title": with(minimalCollection(), "title", nil),
		"summaries":        with(minimalCollection(), "summaries", nil),
		"assets":           with(minimalCollection(), "assets", nil),
		"providers":        with(minimalCollection(), "providers", nil),
		"keywords":         with(minimalCollection(), "keywords", nil),
		"asset title and type": with(minimalItem(), "assets", map[string]any{
			"data": map[string]any{"href": "./d.tif", "title": nil, "type": nil},
		}),
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			obj, err := stac.FromValue(doc)
			mustNoErr(t, err)
			if _, ok := stac.Fields(obj).Extra("title"); ok {
				t.Fatalf("null field leaked into Extra")
			}
		})
	}
}

func TestFromValue_NullRequiredFields(t *testing.T) {
	tests := map[string]struct {
		doc  map[string]any
		path string
	}{
		"id":          {doc: with(minimalCatalog(), "id", nil), path: "/id"},
		"description": {doc: with(minimalCatalog(), "description", nil), path: "/description"},
		"links":       {doc: with(minimalCatalog(), "links", nil), path: "/links"},
		"properties":  {doc: with(minimalItem(), "properties", nil), path: "/properties"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := stac.FromValue(tt.doc)
			iss, ok := stac.AsIssues(err)
			if !ok || len(iss) != 1 || iss[0].Code != stac.CodeInvalidType || iss[0].Path != tt.path {
				t.Fatalf("expected invalid_type at %s, got %v", tt.path, err)
			}
		})
	}
}

func TestFromValue_Concurrent(t *testing.T) {
	docs := []map[string]any{
		minimalItem(),
		minimalCatalog(),
		minimalCollection(),
		map[string]any{"type": "Item"},
		map[string]any{"type": 42},
		map[string]any{},
	}
	var wg sync.WaitGroup
	errs := make(chan error, len(docs)*8)
	for range 8 {
		for _, doc := range docs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				obj, err := stac.FromValue(doc)
				if err != nil {
					if _, ok := stac.AsIssues(err); !ok {
						errs <- err
					}
					return
				}
				if string(obj.Type()) != doc["type"] {
					errs <- fmt.Errorf("tag %s for %v", obj.Type(), doc["type"])
				}
			}()
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestFromValue_NumberKinds(t *testing.T) {
	doc := with(minimalItem(), "bbox", []any{json.Number("1.5"), 2, int64(3), 4.25})
	obj, err := stac.FromValue(doc)
	mustNoErr(t, err)
	item, _ := stac.AsItem(obj)
	if diff := cmp.Diff([]float64{1.5, 2, 3, 4.25}, item.BBox); diff != "" {
		t.Fatalf("bbox mismatch (-want +got):\n%s", diff)
	}
}

func TestFromValue_PreservesUnknownFields(t *testing.T) {
	doc := with(minimalCatalog(),
		"eo:bands", []any{map[string]any{"name": "red"}},
		"links", []any{map[string]any{"rel": "self", "href": "./c.json", "method": "GET"}},
	)
	obj, err := stac.FromValue(doc)
	mustNoErr(t, err)

	c := stac.FieldsMut(obj)
	want := map[string]any{"eo:bands": []any{map[string]any{"name": "red"}}}
	if diff := cmp.Diff(want, c.Extra); diff != "" {
		t.Fatalf("extra mismatch (-want +got):\n%s", diff)
	}
	if _, ok := c.Extra["type"]; ok {
		t.Fatalf("type must not be kept as an extra field")
	}
	if got := c.Links[0].Extra["method"]; got != "GET" {
		t.Fatalf("link extra lost: %v", c.Links[0].Extra)
	}
}

func TestFromValue_DoesNotModifyInput(t *testing.T) {
	doc := minimalCollection()
	before := minimalCollection()
	_, err := stac.FromValue(doc)
	mustNoErr(t, err)
	if diff := cmp.Diff(before, doc); diff != "" {
		t.Fatalf("input modified (-before +after):\n%s", diff)
	}
}
