package roleicon

import (
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/akeil/roleicon/internal/fs"
	"github.com/akeil/roleicon/internal/logging"
)

// CreatePngSet generates the full set of PNG images for the given
// namespace under outDir, creating the directory if necessary.
//
// The set consists of a bare 16×16 tab icon plus one image per entry
// in Variants. Template images are looked up in tplDir; a template's
// width overrides the variant's default size. Rerunning with the same
// inputs overwrites the files with identical content.
func CreatePngSet(srcPath, ns, outDir, tplDir string) error {
	src, err := imaging.Open(srcPath)
	if err != nil {
		return Wrap(err, "cannot load source image %q", srcPath)
	}

	err = fs.EnsureDir(outDir)
	if err != nil {
		return err
	}

	tab := MakeLayer(src, TabSize, 0, 0, 0)
	err = savePng(tab, outDir, "tab", ns)
	if err != nil {
		return err
	}

	for _, v := range Variants {
		canvas, size, err := loadCanvas(v, tplDir)
		if err != nil {
			return err
		}

		layer := MakeLayer(src, size, v.Blur, v.Offset, v.Margin)
		x := (size - layer.Bounds().Dx()) / 2
		y := (size - layer.Bounds().Dy()) / 2
		overlay(canvas, layer, x, y)

		err = savePng(canvas, outDir, v.Name, ns)
		if err != nil {
			return err
		}
	}

	return nil
}

// loadCanvas prepares the base image for a variant and returns it
// together with the working size.
//
// The canvas is the template image when one exists and the variant
// does not ignore it; otherwise a blank transparent square of the
// variant's default size.
func loadCanvas(v Variant, tplDir string) (*image.NRGBA, int, error) {
	if !v.IgnoreTemplate {
		path := filepath.Join(tplDir, v.Template)
		if _, err := os.Stat(path); err == nil {
			img, err := imaging.Open(path)
			if err != nil {
				return nil, 0, Wrap(err, "cannot load template %q", path)
			}
			canvas := imaging.Clone(img)
			logging.Debug("Using template %q for variant %q", path, v.Name)
			return canvas, canvas.Bounds().Dx(), nil
		}
	}

	return imaging.New(v.Size, v.Size, color.NRGBA{}), v.Size, nil
}

func savePng(img image.Image, outDir, variant, ns string) error {
	path := filepath.Join(outDir, variant+"_"+ns+".png")
	err := imaging.Save(img, path)
	if err != nil {
		return Wrap(err, "cannot save %q", path)
	}
	logging.Info("Saved %v", path)
	return nil
}
