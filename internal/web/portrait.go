package web

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"
)

// maxPortraitLevel bounds the generated portraits.
const maxPortraitLevel = 99

// handlePortrait serves enemy portraits at /portrait/<level>.png:
// static/portraits/<level>.png if present, otherwise a generated blocky
// pixel-art creature that grows and darkens with level.
func (s *Server) handlePortrait(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	base := path.Base(r.URL.Path)
	if path.Ext(base) != ".png" {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimSuffix(base, ".png")
	level, err := strconv.Atoi(id)
	if err != nil || level < 1 || level > maxPortraitLevel {
		http.NotFound(w, r)
		return
	}

	if p, ok := s.dropInAsset("portraits", id, ".png"); ok {
		if b, err := os.ReadFile(p); err == nil { // #nosec G304 -- p is under validated static/portraits
			w.Header().Set("Content-Type", "image/png")
			w.Header().Set("Cache-Control", assetCacheControl)
			_, _ = w.Write(b)
			return
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, generatePortrait(level)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", assetCacheControl)
	if _, err := w.Write(buf.Bytes()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Sunset pixel-art palette, 8×8 blocks on a 256×192 canvas.
var (
	pixelBlack = color.RGBA{0x18, 0x14, 0x28, 255}
	pixelSky   = color.RGBA{0x45, 0x2c, 0x5c, 255}
	pixelStone = color.RGBA{0x55, 0x55, 0x66, 255}
	pixelWarm  = color.RGBA{0xc4, 0x6c, 0x32, 255}
	pixelEye   = color.RGBA{0xf2, 0xd2, 0x4b, 255}
)

// tierSkins colors the creature by level band (1-5, 6-10, ...).
var tierSkins = []color.RGBA{
	{0x4f, 0x8a, 0x3b, 255}, // goblin green
	{0x6b, 0x6e, 0x5a, 255}, // orc grey-green
	{0x8c, 0x3b, 0x2f, 255}, // ogre red
	{0x5a, 0x3b, 0x7a, 255}, // wraith purple
}

const blockPx = 8
const canvasW, canvasH = 256, 192
const blocksW, blocksH = canvasW / blockPx, canvasH / blockPx

// fillBlock fills one 8×8 block at block coords (bx, by) with clr.
func fillBlock(img *image.RGBA, bx, by int, clr color.RGBA) {
	if bx < 0 || by < 0 || bx >= blocksW || by >= blocksH {
		return
	}
	for dy := 0; dy < blockPx; dy++ {
		for dx := 0; dx < blockPx; dx++ {
			img.SetRGBA(bx*blockPx+dx, by*blockPx+dy, clr)
		}
	}
}

func fillRect(img *image.RGBA, bx0, by0, bx1, by1 int, clr color.RGBA) {
	for by := by0; by < by1; by++ {
		for bx := bx0; bx < bx1; bx++ {
			fillBlock(img, bx, by, clr)
		}
	}
}

// generatePortrait draws a symmetric blocky creature for level.
func generatePortrait(level int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	fillRect(img, 0, 0, blocksW, blocksH/2, pixelSky)
	fillRect(img, 0, blocksH/2, blocksW, blocksH, pixelBlack)
	fillRect(img, 0, blocksH-3, blocksW, blocksH, pixelStone)

	tier := min((level-1)/5, len(tierSkins)-1)
	skin := tierSkins[tier]

	// Body widens with level inside the tier; head sits on top.
	half := 3 + min(level-1, 12)/3
	cx := blocksW / 2
	bodyTop := blocksH - 3 - (4 + half)
	fillRect(img, cx-half, bodyTop, cx+half, blocksH-3, skin)

	headHalf := 2 + tier/2
	headTop := bodyTop - 2*headHalf - 1
	fillRect(img, cx-headHalf-1, headTop, cx+headHalf+1, bodyTop, skin)

	// Eyes and mouth.
	eyeY := headTop + headHalf
	fillBlock(img, cx-headHalf, eyeY, pixelEye)
	fillBlock(img, cx+headHalf-1, eyeY, pixelEye)
	fillRect(img, cx-headHalf+1, bodyTop-1, cx+headHalf-1, bodyTop, pixelBlack)

	// Horns from the second tier on.
	if tier >= 1 {
		fillBlock(img, cx-headHalf-1, headTop-1, pixelWarm)
		fillBlock(img, cx+headHalf, headTop-1, pixelWarm)
	}
	// Arms.
	armY := bodyTop + 1
	fillRect(img, cx-half-2, armY, cx-half, armY+2, skin)
	fillRect(img, cx+half, armY, cx+half+2, armY+2, skin)
	return img
}
