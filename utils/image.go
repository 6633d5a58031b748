package utils

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ModelInputSize is the square edge the classifier expects.
const ModelInputSize = 224

// DecodeImage decodes JPEG, PNG, GIF or WebP bytes and reports the format.
func DecodeImage(b []byte) (image.Image, string, error) {
	if len(b) == 0 {
		return nil, "", fmt.Errorf("empty image")
	}
	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, "", err
	}
	return img, format, nil
}

// CheckImage validates that b is a decodable image without decoding pixels.
func CheckImage(b []byte) (string, error) {
	if len(b) == 0 {
		return "", fmt.Errorf("empty image")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return "", fmt.Errorf("image has no pixels")
	}
	return format, nil
}

// ImageToTensor resizes img to size×size RGB and returns NHWC float32
// values scaled to [0,1] (batch of one, length size*size*3).
func ImageToTensor(img image.Image, size int) []float32 {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	out := make([]float32, 0, size*size*3)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := dst.PixOffset(x, y)
			out = append(out,
				float32(dst.Pix[i])/255,
				float32(dst.Pix[i+1])/255,
				float32(dst.Pix[i+2])/255,
			)
		}
	}
	return out
}
