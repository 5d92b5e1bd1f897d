// fonts.go — Font resolution with an ordered fallback chain and an
// embedded terminal fallback. For every (role, weight) pair an ordered
// list of candidate TTF files is probed: the preferred Roboto file for
// that role, then any parseable TTF in the fonts directory, then the
// embedded Go Regular font. The chain is walked once per pair and the
// result cached, so rendering code never touches the filesystem.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Role names the typographic slot a face is resolved for.
type Role string

// Weight selects the regular or bold cut.
type Weight string

const (
	RoleTitle   Role = "title"
	RoleBody    Role = "body"
	RoleSmall   Role = "small"
	RoleNumeral Role = "numeral"

	WeightRegular Weight = "regular"
	WeightBold    Weight = "bold"
)

// Fonts resolves font faces with per-(role, weight) fallback chains.
type Fonts struct {
	dir      string
	embedded *truetype.Font

	parsed   map[string]*truetype.Font // path → parsed font (nil = unparseable)
	resolved map[fontKey]*truetype.Font
	faces    map[faceKey]font.Face
}

type fontKey struct {
	role   Role
	weight Weight
}

type faceKey struct {
	fontKey
	size float64
}

// LoadFonts creates a resolver rooted at dir. The embedded fallback is
// parsed eagerly so Face can never come up empty; candidate files are
// probed lazily. Returns warnings for font files that failed to parse.
func LoadFonts(dir string) (*Fonts, []string) {
	// goregular ships with x/image and always parses.
	embedded, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("assets: embedded fallback font: %v", err))
	}

	f := &Fonts{
		dir:      dir,
		embedded: embedded,
		parsed:   make(map[string]*truetype.Font),
		resolved: make(map[fontKey]*truetype.Font),
		faces:    make(map[faceKey]font.Face),
	}
	return f, f.probeWarnings()
}

// Face returns a usable face for the given role, weight and point size.
// It never returns nil: the worst case is the embedded fallback font.
func (f *Fonts) Face(role Role, weight Weight, size float64) font.Face {
	key := faceKey{fontKey{role, weight}, size}
	if face, ok := f.faces[key]; ok {
		return face
	}

	face := truetype.NewFace(f.resolve(role, weight), &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	f.faces[key] = face
	return face
}

// resolve walks the candidate chain for a (role, weight) pair.
func (f *Fonts) resolve(role Role, weight Weight) *truetype.Font {
	key := fontKey{role, weight}
	if ft, ok := f.resolved[key]; ok {
		return ft
	}

	ft := f.embedded
	for _, name := range candidates(role, weight) {
		if parsed := f.parse(filepath.Join(f.dir, name)); parsed != nil {
			ft = parsed
			break
		}
	}
	if ft == f.embedded {
		// No preferred file; take any TTF that parses.
		if parsed := f.anyTTF(); parsed != nil {
			ft = parsed
		}
	}

	f.resolved[key] = ft
	return ft
}

// candidates lists preferred filenames for a (role, weight) pair, most
// specific first. Numerals prefer the condensed cut when present.
func candidates(role Role, weight Weight) []string {
	cut := "Regular"
	if weight == WeightBold {
		cut = "Bold"
	}

	names := []string{"Roboto-" + cut + ".ttf"}
	if role == RoleNumeral {
		names = append([]string{"RobotoCondensed-" + cut + ".ttf"}, names...)
	}
	return names
}

// parse loads and parses one TTF file, caching the result (including
// failures, stored as nil).
func (f *Fonts) parse(path string) *truetype.Font {
	if ft, ok := f.parsed[path]; ok {
		return ft
	}

	var parsed *truetype.Font
	if data, err := os.ReadFile(path); err == nil {
		if ft, err := truetype.Parse(data); err == nil {
			parsed = ft
		}
	}
	f.parsed[path] = parsed
	return parsed
}

// anyTTF returns the first parseable TTF in the fonts directory, in
// lexical order so resolution is stable across runs.
func (f *Fonts) anyTTF() *truetype.Font {
	for _, path := range f.listTTF() {
		if parsed := f.parse(path); parsed != nil {
			return parsed
		}
	}
	return nil
}

func (f *Fonts) listTTF() []string {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".ttf") {
			paths = append(paths, filepath.Join(f.dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths
}

// probeWarnings reports TTF files present but unparseable.
func (f *Fonts) probeWarnings() []string {
	var warnings []string
	for _, path := range f.listTTF() {
		if f.parse(path) == nil {
			warnings = append(warnings, fmt.Sprintf("font %s did not parse — skipped", filepath.Base(path)))
		}
	}
	return warnings
}
