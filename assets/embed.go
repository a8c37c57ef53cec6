package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/astroblasto/common"
)

//go:embed *.png
var assetsFS embed.FS

var imageCache = map[string]*ebiten.Image{}

// LoadImage loads an embedded image by assets-relative path. Images are
// decoded once and shared by every caller.
func LoadImage(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)
	if img, ok := imageCache[clean]; ok {
		return img, nil
	}
	decoded, err := DecodeImage(clean)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(decoded)
	imageCache[clean] = img
	return img, nil
}

// DecodeImage decodes an embedded image without creating a GPU texture.
func DecodeImage(path string) (image.Image, error) {
	clean := cleanAssetPath(path)
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrAssetLoadFailed, path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", common.ErrAssetLoadFailed, path, err)
	}
	return img, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
