package render

import "image/color"

// speciesPalette lists the species colours in index order. Species beyond the
// palette reuse the final entry.
var speciesPalette = []color.RGBA{
	{R: 250, G: 128, B: 114, A: 255}, // salmon
	{R: 46, G: 139, B: 87, A: 255},   // seagreen
	{R: 221, G: 160, B: 221, A: 255}, // plum
	{R: 255, G: 245, B: 238, A: 255}, // seashell
}

// Background is the fill colour behind the particles (dark slate grey).
var Background = color.RGBA{R: 47, G: 79, B: 79, A: 255}

// SpeciesColor maps a species index to its display colour.
func SpeciesColor(species int) color.RGBA {
	last := len(speciesPalette) - 1
	if species < 0 || species > last {
		return speciesPalette[last]
	}
	return speciesPalette[species]
}
