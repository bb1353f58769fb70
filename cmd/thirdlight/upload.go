package main

import (
	"fmt"

	"github.com/spf13/cobra"

	thirdlight "github.com/rethought/thirdlight-go"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

func init() {
	uploadCmd.Flags().String("folder", "", "destination folder path, e.g. /Uploads")
	uploadCmd.Flags().String("folder-id", "", "destination folder id (skips the folder tree lookup)")
	uploadCmd.Flags().String("caption", "", "caption for the uploaded image")
	uploadCmd.Flags().StringSlice("keyword", nil, "keyword tag, repeatable")
	uploadCmd.Flags().Bool("no-block", false, "do not wait for completion, print the upload key")
}

func runUpload(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	folder, _ := cmd.Flags().GetString("folder")
	folderID, _ := cmd.Flags().GetString("folder-id")
	caption, _ := cmd.Flags().GetString("caption")
	keywords, _ := cmd.Flags().GetStringSlice("keyword")
	noBlock, _ := cmd.Flags().GetBool("no-block")

	ref, err := client.UploadImage(cmd.Context(), args[0], thirdlight.UploadOptions{
		FolderID:   folderID,
		FolderPath: folder,
		Caption:    caption,
		Keywords:   keywords,
		NoBlock:    noBlock,
	})
	if err != nil {
		return err
	}

	if noBlock {
		fmt.Fprintf(cmd.OutOrStdout(), "upload key: %s\n", ref)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "uploaded: %s\n", ref)
	return nil
}
