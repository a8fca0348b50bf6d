package roleicon

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// MakeLayer renders the source icon onto a transparent size×size layer.
//
// The icon is scaled to fit within size − 2×margin while preserving its
// aspect ratio; it is never scaled up beyond its native resolution.
// If blur is greater than zero, a black drop shadow of the icon's
// silhouette is composited first, displaced diagonally by offset pixels.
// The sharp icon is always drawn last, centered, covering any shadow
// pixels beneath it.
func MakeLayer(src image.Image, size, blur, offset, margin int) image.Image {
	thumb := size - 2*margin
	if thumb < 1 {
		thumb = 1
	}
	icon := imaging.Fit(src, thumb, thumb, imaging.Lanczos)

	layer := imaging.New(size, size, color.NRGBA{})
	if blur > 0 {
		shadow := dropShadow(icon, blur)
		x := (size-shadow.Bounds().Dx())/2 + offset
		y := (size-shadow.Bounds().Dy())/2 + offset
		overlay(layer, shadow, x, y)
	}

	x := (size - icon.Bounds().Dx()) / 2
	y := (size - icon.Bounds().Dy()) / 2
	overlay(layer, icon, x, y)

	return layer
}

// dropShadow derives a shadow from the icon by filling its silhouette
// with opaque black and applying a Gaussian blur.
func dropShadow(icon image.Image, blur int) image.Image {
	b := icon.Bounds()
	silhouette := image.NewNRGBA(b)

	var a uint32
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			_, _, _, a = icon.At(x, y).RGBA()
			silhouette.SetNRGBA(x, y, color.NRGBA{0, 0, 0, uint8(a >> 8)})
		}
	}

	return imaging.Blur(silhouette, float64(blur))
}

// overlay composites src onto dst at (x, y), blending by the source
// alpha channel.
func overlay(dst draw.Image, src image.Image, x, y int) {
	b := src.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(dst, r, src, b.Min, draw.Over)
}
