package main

import (
	"github.com/spf13/cobra"

	stac "github.com/reoring/gostac"
)

func newLinksCmd(opts *options) *cobra.Command {
	var rel string
	cmd := &cobra.Command{
		Use:   "links [file]",
		Short: "List the links of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := opts.read(args[0])
			if err != nil {
				return err
			}
			v := stac.Fields(obj)
			links := v.Links()
			if rel != "" {
				links = v.LinksByRel(rel)
			}
			for _, l := range links {
				cmd.Printf("%s\t%s\n", l.Rel, l.Href)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&rel, "rel", "r", "", "only print links with this rel")
	return cmd
}
