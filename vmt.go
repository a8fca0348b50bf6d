package roleicon

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akeil/roleicon/internal/fs"
)

// vmtBasePath is where the game expects the role textures.
const vmtBasePath = "vgui/ttt/roles"

// GenerateVMT writes the three material descriptors for the namespace:
// a sprite material, a sprite variant that renders ignoring depth, and
// an icon material. Both sprite descriptors reference the same texture.
func GenerateVMT(outDir, ns string) error {
	base := vmtBasePath + "/" + ns

	descriptors := []struct {
		file    string
		texture string
		ignoreZ bool
	}{
		{"sprite_" + ns + ".vmt", "sprite_" + ns, false},
		{"sprite_" + ns + "_noz.vmt", "sprite_" + ns, true},
		{"icon_" + ns + ".vmt", "icon_" + ns, false},
	}

	for _, d := range descriptors {
		path := filepath.Join(outDir, d.file)
		err := fs.WriteFile(path, []byte(vmtBody(base, d.texture, d.ignoreZ)))
		if err != nil {
			return Wrap(err, "cannot write descriptor %q", path)
		}
	}

	return nil
}

func vmtBody(base, texture string, ignoreZ bool) string {
	lines := []string{
		`"UnlitGeneric"`,
		"{",
		fmt.Sprintf("\t\"$basetexture\" \"%v/%v\"", base, texture),
		"\t$nocull 1",
	}
	if ignoreZ {
		lines = append(lines, "\t$ignorez 1")
	}
	lines = append(lines,
		"\t$nodecal 1",
		"\t$nolod 1",
		"\t$vertexcolor 1",
		"\t$vertexalpha 1",
		"\t$translucent 1",
		"}",
	)
	return strings.Join(lines, "\n") + "\n"
}
