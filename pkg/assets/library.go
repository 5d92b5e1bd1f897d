// Package assets resolves the card's fonts, condition icons and
// background panel from a fixed asset directory. Every optional asset
// has a fallback chain; only the background panel is mandatory, because
// there is no sane default for the whole canvas.
package assets

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// PanelFile is the mandatory background panel filename inside the
// asset directory.
const PanelFile = "base_weather_plain_panel.png"

// placeholderSize is the side of the transparent icon stand-in.
const placeholderSize = 256

// iconFiles maps a condition class name to its icon filename.
var iconFiles = map[string]string{
	"clear":  "sun.png",
	"cloudy": "cloud.png",
	"rain":   "rain.png",
	"snow":   "snow.png",
	"storm":  "storm.png",
}

// Library is the resolved asset set for one render, loaded once at
// startup and passed explicitly into the renderer.
type Library struct {
	Fonts *Fonts

	dir        string
	background image.Image
	icons      map[string]image.Image
}

// Open loads the asset directory at dir. Missing fonts and icons are
// recovered by fallbacks (reported as warnings); a missing or
// undecodable background panel is the one fatal error.
func Open(dir string) (*Library, []string, error) {
	fonts, warnings := LoadFonts(filepath.Join(dir, "fonts"))

	background, err := imaging.Open(filepath.Join(dir, PanelFile))
	if err != nil {
		return nil, warnings, fmt.Errorf("background panel %s: %w", PanelFile, err)
	}

	return &Library{
		Fonts:      fonts,
		dir:        dir,
		background: background,
		icons:      make(map[string]image.Image),
	}, warnings, nil
}

// Background returns the mandatory panel image.
func (l *Library) Background() image.Image {
	return l.background
}

// Icon returns the icon for a condition class name. Unknown classes and
// missing files fall back to the cloud icon; if even that is absent, a
// fully transparent placeholder is returned. Never fails.
func (l *Library) Icon(class string) image.Image {
	if img, ok := l.icons[class]; ok {
		return img
	}

	name, ok := iconFiles[class]
	if !ok {
		name = iconFiles["cloudy"]
	}

	img, err := imaging.Open(filepath.Join(l.dir, "icons", name))
	if err != nil && name != iconFiles["cloudy"] {
		img, err = imaging.Open(filepath.Join(l.dir, "icons", iconFiles["cloudy"]))
	}
	if err != nil {
		img = image.NewNRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	}

	l.icons[class] = img
	return img
}
