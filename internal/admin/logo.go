package admin

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

const logoSize = 256

// EncodeLogo は画像ファイルを 256x256 に収めて PNG の data URI にする。
func EncodeLogo(path string) (string, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("open logo: %w", err)
	}
	return EncodeLogoImage(img)
}

func EncodeLogoImage(img image.Image) (string, error) {
	b := img.Bounds()
	if b.Dx() > logoSize || b.Dy() > logoSize {
		img = imaging.Fit(img, logoSize, logoSize, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("encode logo: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
