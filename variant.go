package roleicon

// TabSize is the edge length of the tab icon in pixels.
// The tab image is generated without a canvas or shadow.
const TabSize = 16

// A Variant describes one of the main output images.
//
// Size is the default edge length, used when no template exists.
// Blur and Offset control the drop shadow; Blur 0 disables it.
// Margin insets the icon thumbnail from the canvas edge.
type Variant struct {
	Name     string
	Size     int
	Blur     int
	Offset   int
	Margin   int
	Template string
	// IgnoreTemplate forces a blank canvas even when the
	// template file exists next to the executable.
	IgnoreTemplate bool
}

// Variants lists the main output images in generation order.
var Variants = []Variant{
	{Name: "score", Size: 64, Blur: 0, Offset: 0, Margin: 0, Template: "score_template.png", IgnoreTemplate: true},
	{Name: "sprite", Size: 256, Blur: 3, Offset: 2, Margin: 3, Template: "sprite_template.png"},
	{Name: "icon", Size: 256, Blur: 5, Offset: 4, Margin: 10, Template: "icon_template.png"},
}
