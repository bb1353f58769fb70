package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List the folder tree with folder ids",
	Args:  cobra.NoArgs,
	RunE:  runFolders,
}

func runFolders(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	if err := client.LoadFolderTree(cmd.Context()); err != nil {
		return err
	}

	tree := client.FolderTree()
	paths := make([]string, 0, len(tree))
	for p := range tree {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tID")
	for _, p := range paths {
		fmt.Fprintf(w, "%s\t%s\n", p, tree[p])
	}
	return w.Flush()
}
