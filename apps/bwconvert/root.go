package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/PhantomInTheWire/bwconvert/pkg/config"
	"github.com/PhantomInTheWire/bwconvert/pkg/convert"
	"github.com/PhantomInTheWire/bwconvert/pkg/storage"
)

const prompt = "Enter input image filename (e.g., photo.jpg): "

func newRootCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "bwconvert",
		Short: "Convert an image to black & white with an info overlay",
		Long: `Reads one image path from standard input, converts the image to
grayscale, stamps resolution, size, modification time and location on it,
adds a watermark and saves it next to the input with a "_bw" suffix.

Set BW_PUBLISH_ENDPOINT and BW_PUBLISH_BUCKET to also upload the result to
an S3-compatible bucket.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, cfg)
		},
	}
}

func runConvert(cmd *cobra.Command, cfg *config.Config) error {
	ctx := cmd.Context()
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(out, prompt)
	}
	input, err := readPath(in)
	if err != nil {
		return fmt.Errorf("reading input path: %w", err)
	}

	opts := convert.Options{JPEGQuality: cfg.JPEGQuality}
	if cfg.PublishEnabled() {
		up, err := storage.NewUploader(ctx, cfg.Minio())
		if err != nil {
			return fmt.Errorf("publisher: %w", err)
		}
		opts.Publisher = up
	}

	// A result comes back whenever the local file was written, even if
	// publishing it failed afterwards.
	res, err := convert.Run(ctx, input, opts)
	if res != nil {
		fmt.Fprintf(out, "✅ Black & White image with overlay saved as: %s\n", res.Output)
	}
	if err != nil {
		return err
	}
	if res.Published != "" {
		fmt.Fprintf(out, "Published: %s\n", res.Published)
	}
	return nil
}

// readPath returns the first line of r without its line ending. An empty
// stream yields an empty path.
func readPath(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}
