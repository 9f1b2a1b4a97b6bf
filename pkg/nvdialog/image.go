package nvdialog

import (
	"errors"
	"fmt"
	"image"
	"os"

	// Dialog icons are overwhelmingly PNG or JPEG; other formats can be
	// decoded by the caller and passed through ImageFromImage.
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	"github.com/go-nvdialog/nvdialog/pkg/ffi"
)

// Image validation failures reported before any native call.
var (
	// ErrImageNotFound indicates the image path does not exist.
	ErrImageNotFound = errors.New("nvdialog: image file does not exist")
	// ErrImageData indicates the pixel buffer is empty or truncated.
	ErrImageData = errors.New("nvdialog: image data is empty or truncated")
	// ErrImageFormat indicates the pixel buffer is not packed 8-bit RGBA.
	ErrImageFormat = errors.New("nvdialog: image data is not packed RGBA")
)

// Image is a native NvDialog image, used as a dialog or notification icon.
// It owns one native handle; release it with Close.
type Image struct {
	raw    uintptr
	width  int
	height int
	// pix pins the pixel buffer handed to the native side for the
	// lifetime of the handle.
	pix []byte
}

// ImageFromFile decodes the image at path (PNG or JPEG) and loads it into
// the native layer.
func ImageFromFile(path string) (*Image, error) {
	const op = "nvdialog.ImageFromFile"
	if err := notReady(op); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %s: %w", op, path, ErrImageNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: decode %s: %w", op, path, err)
	}
	return ImageFromImage(img)
}

// ImageFromImage normalizes any image.Image to tightly packed RGBA and
// loads it into the native layer.
func ImageFromImage(img image.Image) (*Image, error) {
	const op = "nvdialog.ImageFromImage"
	if err := notReady(op); err != nil {
		return nil, err
	}
	rgba := toRGBA(img)
	return newImage(op, rgba.Pix, rgba.Rect.Dx(), rgba.Rect.Dy())
}

// ImageFromRGBA loads a raw, tightly packed 8-bit RGBA buffer into the
// native layer. The buffer length must be exactly width*height*4.
func ImageFromRGBA(data []byte, width, height int) (*Image, error) {
	const op = "nvdialog.ImageFromRGBA"
	if err := notReady(op); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrImageData)
	}
	if len(data) <= 1 {
		return nil, fmt.Errorf("%s: %w", op, ErrImageData)
	}
	if len(data)%4 != 0 || len(data) != width*height*4 {
		return nil, fmt.Errorf("%s: %w", op, ErrImageFormat)
	}
	return newImage(op, data, width, height)
}

func newImage(op string, pix []byte, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 || len(pix) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrImageData)
	}
	raw := ffi.Funcs().CreateImage(&pix[0], int32(width), int32(height))
	if raw == 0 {
		return nil, newHandleError(op)
	}
	return &Image{raw: raw, width: width, height: height, pix: pix}, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// Scaled returns a new native image resampled to width×height. The
// original is left untouched and both handles must be closed.
func (m *Image) Scaled(width, height int) (*Image, error) {
	const op = "nvdialog.Image.Scaled"
	if m == nil || m.raw == 0 {
		return nil, ErrClosed
	}
	if width <= 0 || height <= 0 {
		return nil, &Error{Op: op, Code: CodeInvalidParam}
	}
	src := &image.RGBA{
		Pix:    m.pix,
		Stride: 4 * m.width,
		Rect:   image.Rect(0, 0, m.width, m.height),
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)
	return newImage(op, dst.Pix, width, height)
}

// Close releases the native handle. Safe to call repeatedly.
func (m *Image) Close() {
	if m == nil || m.raw == 0 {
		return
	}
	ffi.Funcs().DestroyImage(m.raw)
	m.raw = 0
	m.pix = nil
}

// toRGBA returns img as tightly packed RGBA with a zero origin, copying
// only when the layout differs.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		b := rgba.Bounds()
		if b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
			return rgba
		}
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
