package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/roleicon"
)

const checkmark = "✓"

func main() {
	roleicon.SetLogLevel("warning")

	app := kingpin.New("roleicon", "Generate the icon set for a TTT role addon")
	app.HelpFlag.Short('h')
	var (
		image     = app.Flag("image", "Source icon image").Required().String()
		nameRaw   = app.Flag("nameraw", "Display name of the role").Required().String()
		nameShort = app.Flag("nameshort", "Short role name (lowercase), used in file names").Required().String()
		out       = app.Flag("out", "Addon output directory").Default("RoleAddon").String()
		noVtf     = app.Flag("no-vtf", "Skip VTF conversion").Bool()
	)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	err := run(*image, *nameRaw, *nameShort, *out, *noVtf)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func run(image, nameRaw, nameShort, out string, noVtf bool) error {
	err := roleicon.ValidateNamespace(nameShort)
	if err != nil {
		return err
	}

	tplDir, err := templateDir()
	if err != nil {
		return err
	}
	outDir := filepath.Join(out, "converted", nameShort)

	fmt.Printf("Generating icon set for %q (%v)\n", nameRaw, nameShort)
	err = roleicon.CreatePngSet(image, nameShort, outDir, tplDir)
	if err != nil {
		return err
	}
	fmt.Printf("%v PNG set written to %v\n", checkmark, outDir)

	roleicon.NewConverter().Convert(outDir, nameShort, noVtf)

	err = roleicon.GenerateVMT(outDir, nameShort)
	if err != nil {
		return err
	}
	fmt.Printf("%v VMT descriptors written\n", checkmark)

	return nil
}

// templateDir is where the optional *_template.png files are expected:
// next to the executable.
func templateDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
