package stac

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/gostac/internal/dupkey"
	"github.com/reoring/gostac/internal/yamlconv"
)

// Format selects the document syntax for the Read helpers.
type Format int

const (
	FormatAuto Format = iota // JSON, or YAML for .yaml/.yml files in ReadFile.
	FormatJSON
	FormatYAML
)

// NumberMode dictates how JSON numbers appear in the generic document.
type NumberMode int

const (
	NumberFloat64    NumberMode = iota // Fast mode (with potential precision loss).
	NumberJSONNumber                   // Preserve json.Number.
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ReadOpt bundles input options. The zero value reads JSON with float64
// numbers, no size cap and no duplicate-key checks.
//
// OnDuplicateKey applies to JSON only. YAML mappings with a repeated key
// always fail with duplicate_key, whatever the setting.
type ReadOpt struct {
	Format         Format
	MaxBytes       int64
	NumberMode     NumberMode
	OnDuplicateKey Severity // Warn reports through OnIssue; Error fails the read.
	// OnIssue receives non-fatal issues such as duplicate keys under Warn.
	OnIssue func(Issue)
}

func lastOpt(opts []ReadOpt) ReadOpt {
	var opt ReadOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}

// FromJSON parses data as JSON and decodes the resulting document.
func FromJSON(data []byte, opts ...ReadOpt) (Object, error) {
	opt := lastOpt(opts)
	if err := checkSize(int64(len(data)), opt); err != nil {
		return nil, err
	}
	doc, err := decodeJSON(data, opt.NumberMode)
	if err != nil {
		return nil, parseIssue(err)
	}
	if err := checkDuplicates(data, opt); err != nil {
		return nil, err
	}
	return FromValue(doc)
}

// FromYAML parses the first YAML document in data and decodes it. A repeated
// mapping key is a duplicate_key issue.
func FromYAML(data []byte, opts ...ReadOpt) (Object, error) {
	opt := lastOpt(opts)
	if err := checkSize(int64(len(data)), opt); err != nil {
		return nil, err
	}
	doc, err := yamlconv.Decode(data)
	if err != nil {
		if strings.Contains(err.Error(), "already defined") {
			iss := singleIssue(CodeDuplicateKey, "/", err.Error())
			iss[0].Cause = err
			return nil, iss
		}
		return nil, parseIssue(err)
	}
	return FromValue(doc)
}

// FromReader consumes r and decodes it. FormatAuto is treated as JSON.
// When MaxBytes is set at most MaxBytes+1 bytes are read.
func FromReader(r io.Reader, opts ...ReadOpt) (Object, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, parseIssue(err)
	}
	if opt.Format == FormatYAML {
		return FromYAML(data, opt)
	}
	return FromJSON(data, opt)
}

// ReadFile reads and decodes the document at path. With FormatAuto the
// format follows the file extension.
func ReadFile(path string, opts ...ReadOpt) (Object, error) {
	opt := lastOpt(opts)
	if opt.Format == FormatAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			opt.Format = FormatYAML
		default:
			opt.Format = FormatJSON
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromReader(f, opt)
}

func decodeJSON(data []byte, mode NumberMode) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if mode == NumberJSONNumber {
		dec.UseNumber()
	}
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

func checkSize(n int64, opt ReadOpt) error {
	if opt.MaxBytes > 0 && n > opt.MaxBytes {
		return singleIssue(CodeTruncated, "/", "max bytes exceeded")
	}
	return nil
}

func checkDuplicates(data []byte, opt ReadOpt) error {
	var mode dupkey.Strictness
	switch opt.OnDuplicateKey {
	case Error:
		mode = dupkey.Error
	case Warn:
		mode = dupkey.Warn
	default:
		return nil
	}
	found, err := dupkey.DetectBytes(data, mode, -1)
	if err != nil {
		return parseIssue(err)
	}
	var iss Issues
	for _, d := range found {
		iss = AppendIssues(iss, Issue{Path: d.Path, Code: d.Code, Message: d.Message})
	}
	if len(iss) == 0 {
		return nil
	}
	if mode == dupkey.Error {
		return iss
	}
	if opt.OnIssue != nil {
		for _, it := range iss {
			opt.OnIssue(it)
		}
	}
	return nil
}

func parseIssue(err error) Issues {
	iss := singleIssue(CodeParseError, "/", err.Error())
	iss[0].Cause = err
	return iss
}
