package roleicon

import (
	"bytes"
	"image/color"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func writeSource(t *testing.T, dir string, w, h int) string {
	path := filepath.Join(dir, "source.png")
	err := imaging.Save(opaqueImage(w, h), path)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func writeTemplate(t *testing.T, dir, name string, size int) {
	img := imaging.New(size, size, color.NRGBA{B: 255, A: 255})
	err := imaging.Save(img, filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
}

func assertPngSize(t *testing.T, path string, size int) {
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("cannot open %q: %v", path, err)
	}
	b := img.Bounds()
	if b.Dx() != size || b.Dy() != size {
		t.Errorf("unexpected size for %q: %vx%v != %v", path, b.Dx(), b.Dy(), size)
	}
}

func TestCreatePngSetDefaults(t *testing.T) {
	src := writeSource(t, t.TempDir(), 512, 512)
	outDir := filepath.Join(t.TempDir(), "converted", "test")

	err := CreatePngSet(src, "test", outDir, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	expected := map[string]int{
		"tab_test.png":    16,
		"score_test.png":  64,
		"sprite_test.png": 256,
		"icon_test.png":   256,
	}
	for name, size := range expected {
		assertPngSize(t, filepath.Join(outDir, name), size)
	}

	entries, err := ioutil.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(expected) {
		t.Errorf("unexpected number of output files: %v", len(entries))
	}
}

func TestCreatePngSetTemplateSize(t *testing.T) {
	src := writeSource(t, t.TempDir(), 512, 512)
	outDir := t.TempDir()
	tplDir := t.TempDir()
	writeTemplate(t, tplDir, "sprite_template.png", 128)

	err := CreatePngSet(src, "test", outDir, tplDir)
	if err != nil {
		t.Fatal(err)
	}

	// sprite adopts the template size, icon keeps its default
	assertPngSize(t, filepath.Join(outDir, "sprite_test.png"), 128)
	assertPngSize(t, filepath.Join(outDir, "icon_test.png"), 256)
}

func TestCreatePngSetScoreIgnoresTemplate(t *testing.T) {
	src := writeSource(t, t.TempDir(), 512, 512)
	outDir := t.TempDir()
	tplDir := t.TempDir()
	writeTemplate(t, tplDir, "score_template.png", 128)

	err := CreatePngSet(src, "test", outDir, tplDir)
	if err != nil {
		t.Fatal(err)
	}

	assertPngSize(t, filepath.Join(outDir, "score_test.png"), 64)
}

func TestCreatePngSetMissingSource(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "converted", "test")

	err := CreatePngSet(filepath.Join(t.TempDir(), "nope.png"), "test", outDir, t.TempDir())
	if err == nil {
		t.Fatal("missing source image not detected")
	}

	// nothing may be created when the source cannot be loaded
	_, err = os.Stat(outDir)
	if !os.IsNotExist(err) {
		t.Errorf("output directory was created: %v", err)
	}
}

func TestCreatePngSetIdempotent(t *testing.T) {
	src := writeSource(t, t.TempDir(), 512, 512)
	outDir := t.TempDir()
	tplDir := t.TempDir()
	path := filepath.Join(outDir, "sprite_test.png")

	err := CreatePngSet(src, "test", outDir, tplDir)
	if err != nil {
		t.Fatal(err)
	}
	first, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	err = CreatePngSet(src, "test", outDir, tplDir)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("rerun produced different file content")
	}
}
