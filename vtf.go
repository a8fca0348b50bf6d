package roleicon

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/akeil/roleicon/internal/logging"
)

// defaultVTFCmd is the install location of the VTFCmd.exe converter.
const defaultVTFCmd = `E:\Garry\Software\vtflib132-bin\bin\x64\VTFCmd.exe`

// A Converter turns generated PNGs into VTF textures by invoking an
// external command-line tool.
//
// Run executes the command and returns its combined output. It exists
// as a field so that tests can substitute a fake.
type Converter struct {
	Path string
	Run  func(name string, arg ...string) ([]byte, error)
}

// NewConverter creates a Converter for the VTFCmd.exe tool at its
// default install location.
func NewConverter() *Converter {
	return &Converter{
		Path: defaultVTFCmd,
		Run:  runCommand,
	}
}

func runCommand(name string, arg ...string) ([]byte, error) {
	return exec.Command(name, arg...).CombinedOutput()
}

// Convert invokes the converter on the sprite and icon PNGs in outDir.
//
// Conversion is best-effort: a missing converter executable or a
// failed conversion is logged as a warning and never fails the run.
func (c *Converter) Convert(outDir, ns string, skip bool) {
	if skip {
		fmt.Println("- skipping VTF conversion")
		return
	}

	if _, err := os.Stat(c.Path); err != nil {
		logging.Warning("VTFCmd not found at %q, skipping conversion", c.Path)
		return
	}

	for _, name := range []string{"sprite_" + ns, "icon_" + ns} {
		png := filepath.Join(outDir, name+".png")
		fmt.Printf("- converting %v\n", filepath.Base(png))

		out, err := c.Run(c.Path, "-file", png, "-output", outDir)
		if err != nil {
			logging.Warning("VTFCmd failed on %v: %v\n%s", filepath.Base(png), err, out)
		}
	}
}
