package probe

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // Register decoders for image.DecodeConfig.
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/h2non/filetype"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// headerPeek is enough for filetype's matchers and the DPX magic.
const headerPeek = 262

// ReadResolution opens path on fsys and returns the dimensions declared in
// its header. The error wraps ErrUnsupported when the format is not
// recognised and ErrMalformed when the header cannot be parsed.
func ReadResolution(fsys afero.Fs, path string) (Resolution, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return Resolution{}, err
	}
	defer f.Close()

	res, err := readHeader(bufio.NewReaderSize(f, 4096))
	if err != nil {
		return Resolution{}, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

func readHeader(br *bufio.Reader) (Resolution, error) {
	head, err := br.Peek(headerPeek)
	if err != nil && !errors.Is(err, io.EOF) {
		return Resolution{}, err
	}
	if len(head) == 0 {
		return Resolution{}, fmt.Errorf("empty file: %w", ErrUnsupported)
	}

	if isDPX(head) {
		return readDPX(br)
	}

	kind, _ := filetype.Match(head)
	switch kind.Extension {
	case exrType.Extension:
		return readEXR(br)
	case "jpg", "png", "gif", "bmp", "tif", "webp":
		cfg, _, err := image.DecodeConfig(br)
		if err != nil {
			return Resolution{}, fmt.Errorf("%s: %v: %w", kind.Extension, err, ErrMalformed)
		}
		return Resolution{Width: cfg.Width, Height: cfg.Height}, nil
	case "", filetype.Unknown.Extension:
		return Resolution{}, ErrUnsupported
	default:
		return Resolution{}, fmt.Errorf("%s: %w", kind.Extension, ErrUnsupported)
	}
}

// Formats lists the header formats ReadResolution understands.
func Formats() []string {
	return []string{"bmp", "dpx", "exr", "gif", "jpg", "png", "tif", "webp"}
}
