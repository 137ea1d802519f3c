package widget

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"blit/pixel"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a decoded raster held as row-major colors. Alpha is dropped.
type Image struct {
	w, h int
	data []pixel.Color
}

// ImageFrom copies src into an Image.
func ImageFrom(src image.Image) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	data := make([]pixel.Color, w*h)

	switch s := src.(type) {
	case *image.RGBA:
		for y := 0; y < h; y++ {
			i := s.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < w; x++ {
				data[y*w+x] = pixel.RGB(s.Pix[i], s.Pix[i+1], s.Pix[i+2])
				i += 4
			}
		}
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			i := s.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < w; x++ {
				data[y*w+x] = pixel.RGB(s.Pix[i], s.Pix[i+1], s.Pix[i+2])
				i += 4
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				data[y*w+x] = pixel.FromColor(src.At(b.Min.X+x, b.Min.Y+y))
			}
		}
	}
	return &Image{w: w, h: h, data: data}
}

// DecodeImage decodes any registered format (png, jpeg, gif, bmp, tiff,
// webp) and returns the image with its format name.
func DecodeImage(r io.Reader) (*Image, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("widget: decode: %w", err)
	}
	img := ImageFrom(src)
	if img.w == 0 || img.h == 0 {
		return nil, format, errEmptyImage
	}
	return img, format, nil
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("widget: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := DecodeImage(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("widget: load %s: %w", path, err)
	}
	return img, nil
}

func (i *Image) Dimensions() (int, int) { return i.w, i.h }
func (i *Image) Data() []pixel.Color    { return i.data }

// crop copies the w*h block at (x, y). The block must lie inside the image.
func (i *Image) crop(x, y, w, h int) []pixel.Color {
	out := make([]pixel.Color, 0, w*h)
	for row := y; row < y+h; row++ {
		out = append(out, i.data[row*i.w+x:row*i.w+x+w]...)
	}
	return out
}
