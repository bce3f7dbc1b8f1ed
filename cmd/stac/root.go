package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	stac "github.com/reoring/gostac"
	"github.com/reoring/gostac/i18n"
)

type options struct {
	verbose    bool
	lang       string
	maxBytes   int64
	strictKeys bool
	format     string

	log *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "stac",
		Short:         "Inspect STAC documents",
		Long:          `Classify STAC Item, Catalog and Collection documents and print their common fields.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			i18n.SetLanguage(opts.lang)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logs")
	pf.StringVar(&opts.lang, "lang", "en", "issue message language (en, ja)")
	pf.Int64Var(&opts.maxBytes, "max-bytes", 0, "reject documents larger than this many bytes (0 = no limit)")
	pf.BoolVar(&opts.strictKeys, "strict-keys", false, "fail on duplicate JSON object keys")
	pf.StringVar(&opts.format, "format", "auto", "input format (auto, json, yaml)")

	root.AddCommand(newInspectCmd(opts), newLinksCmd(opts))
	return root
}

func (o *options) readOpt() stac.ReadOpt {
	opt := stac.ReadOpt{
		MaxBytes:       o.maxBytes,
		NumberMode:     stac.NumberJSONNumber,
		OnDuplicateKey: stac.Warn,
		OnIssue: func(i stac.Issue) {
			o.log.Warn(i.Message, "code", i.Code, "path", i.Path)
		},
	}
	if o.strictKeys {
		opt.OnDuplicateKey = stac.Error
	}
	switch o.format {
	case "json":
		opt.Format = stac.FormatJSON
	case "yaml", "yml":
		opt.Format = stac.FormatYAML
	}
	return opt
}

// read decodes path and logs every issue on failure.
func (o *options) read(path string) (stac.Object, error) {
	o.log.Debug("reading document", "path", path, "format", o.format, "max_bytes", o.maxBytes)
	obj, err := stac.ReadFile(path, o.readOpt())
	if err != nil {
		if iss, ok := stac.AsIssues(err); ok {
			for _, it := range iss {
				o.log.Error(it.Message, "code", it.Code, "path", it.Path, "hint", it.Hint)
			}
		}
		return nil, err
	}
	o.log.Debug("decoded", "type", obj.Type(), "id", stac.Fields(obj).ID())
	return obj, nil
}
