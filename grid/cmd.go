package grid

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	Input     string `arg:"" help:"Source image to render" type:"existingfile"`
	Output    string `help:"Destination file. Derived from the input name if empty." short:"o"`
	GridX     int    `help:"Number of grid cells along the width" default:"75"`
	GridY     int    `help:"Number of grid cells along the height" default:"75"`
	Thickness int    `help:"Segment thickness in pixels" default:"3"`
	ShowAll   bool   `help:"Put source, grid image and grayscale side by side" default:"false"`
	Format    string `help:"Output format. 'same' keeps the input format." enum:"same,gif,jpeg,png,bmp,tiff" default:"png"`
	Overwrite bool   `help:"Allow overwriting the destination file" default:"false"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	input, err := filepath.Abs(c.Input)
	if err != nil {
		return fmt.Errorf("invalid input path %q: %w", c.Input, err)
	}
	c.Input = input

	switch {
	case (c.GridX <= 0) || (c.GridY <= 0):
		return fmt.Errorf("invalid grid dimensions: %dx%d", c.GridX, c.GridY)
	case (c.Thickness <= 0):
		return fmt.Errorf("invalid segment thickness: %d", c.Thickness)
	}

	if (c.Output != "") && !filepath.IsAbs(c.Output) {
		if c.Output, err = filepath.Abs(c.Output); err != nil {
			return fmt.Errorf("invalid output path %q: %w", c.Output, err)
		}
	}

	return nil
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("file", c.Input)

	imgFile, err := os.Open(c.Input)
	if err != nil {
		return fmt.Errorf("could not open image %q: %w", c.Input, err)
	}

	img, imgType, err := image.Decode(imgFile)
	if closeErr := imgFile.Close(); closeErr != nil {
		logger.Error("could not close image", "error", closeErr)
	}
	if err != nil {
		return fmt.Errorf("could not decode image %q: %w", c.Input, err)
	}

	outType := c.Format
	if outType == "same" {
		outType = imgType
	}

	dest := c.Output
	if dest == "" {
		dest = derivedDest(c.Input, outType)
	}

	logger.Info("rendering", "grid_x", c.GridX, "grid_y", c.GridY, "thickness", c.Thickness,
		"show_all", c.ShowAll)

	out, err := Render(img, Options{
		GridX:     c.GridX,
		GridY:     c.GridY,
		Thickness: c.Thickness,
		ShowAll:   c.ShowAll,
	})
	if err != nil {
		return fmt.Errorf("could not render image %q: %w", c.Input, err)
	}

	logger.Info("saving", "dest", dest, "format", outType)
	if err = save(out, outType, dest, c.Overwrite); err != nil {
		return fmt.Errorf("could not save image to %q: %w", dest, err)
	}

	return nil
}

func derivedDest(input, outType string) string {
	ext := outType
	if ext == "jpeg" {
		ext = "jpg"
	}

	oldExt := filepath.Ext(input)
	return fmt.Sprintf("%s_grid.%s", strings.TrimSuffix(input, oldExt), ext)
}
