package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slugmart/slugmart/internal/netx"
)

// uploadFile is a test seam for netx.UploadToPresignedURL.
var uploadFile = netx.UploadToPresignedURL

type uploadConfig struct {
	token       string
	folder      string
	file        string
	contentType string
}

func newUploadCmd(app *App) *cobra.Command {
	cfg := &uploadConfig{}

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload an image and print its public URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.upload(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.token, "token", "", "session token")
	cmd.Flags().StringVar(&cfg.folder, "folder", "", "target folder: profile or listing")
	cmd.Flags().StringVar(&cfg.file, "file", "", "path of the image to upload")
	cmd.Flags().StringVar(&cfg.contentType, "content-type", "", "content type (guessed from the extension when empty)")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("folder")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *App) upload(cmd *cobra.Command, cfg *uploadConfig) error {
	data, err := os.ReadFile(cfg.file)
	if err != nil {
		return err
	}

	contentType := cfg.contentType
	if contentType == "" {
		contentType = contentTypeOf(cfg.file)
	}
	if contentType == "" {
		return fmt.Errorf("cannot guess content type of %s, pass --content-type", cfg.file)
	}

	ctx := cmd.Context()
	u, err := a.client.GenerateUploadURL(ctx, cfg.token, filepath.Base(cfg.file), contentType, cfg.folder)
	if err != nil {
		return err
	}

	if err := uploadFile(ctx, u.PreSignedURL, contentType, data); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), u.FileURL)
	return nil
}

// contentTypeOf returns the media type for the file extension without parameters.
func contentTypeOf(name string) string {
	t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if t == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(t)
	if err != nil {
		return ""
	}
	return mediaType
}
