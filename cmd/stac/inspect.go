package main

import (
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	stac "github.com/reoring/gostac"
)

type summary struct {
	Type       stac.Type `json:"type"`
	ID         string    `json:"id"`
	Version    string    `json:"stac_version"`
	Extensions []string  `json:"stac_extensions,omitempty"`
	Links      int       `json:"links"`
	Title      string    `json:"title,omitempty"`
	Assets     int       `json:"assets,omitempty"`
	Extra      []string  `json:"extra_fields,omitempty"`
}

func newInspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the type and common fields of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := opts.read(args[0])
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(summarize(obj), "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		},
	}
}

func summarize(obj stac.Object) summary {
	v := stac.Fields(obj)
	s := summary{
		Type:       obj.Type(),
		ID:         v.ID(),
		Version:    v.Version(),
		Extensions: v.Extensions(),
		Links:      len(v.Links()),
		Extra:      v.ExtraKeys(),
	}
	stac.Accept(obj, &s)
	return s
}

func (s *summary) VisitItem(i *stac.Item) {
	s.Assets = len(i.Assets)
	if t, ok := i.Properties["title"].(string); ok {
		s.Title = t
	}
}

func (s *summary) VisitCatalog(c *stac.Catalog) { s.Title = c.Title }

func (s *summary) VisitCollection(c *stac.Collection) {
	s.Title = c.Title
	s.Assets = len(c.Assets)
}
