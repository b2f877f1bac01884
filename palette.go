package main

import (
	"regexp"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Built-in palette categories. An external palette table, when supplied, is
// consulted first for the requested category; these are the in-binary
// defaults behind it.
var defaultPalettes = map[string][]string{
	"vivid":  {"#E63946", "#F1FAEE", "#A8DADC", "#457B9D", "#1D3557"},
	"pastel": {"#FFADAD", "#FFD6A5", "#FDFFB6", "#CAFFBF", "#9BF6FF", "#BDB2FF"},
	"earth":  {"#582F0E", "#7F4F24", "#936639", "#A68A64", "#B6AD90", "#C2C5AA"},
	"neon":   {"#F72585", "#B5179E", "#7209B7", "#560BAD", "#480CA8", "#4CC9F0"},
	"mono":   {"#212529", "#495057", "#6C757D", "#ADB5BD", "#CED4DA", "#DEE2E6"},
}

// fallbackPalette is the last link of the resolution chain. It must never be
// empty or contain a malformed entry.
var fallbackPalette = []string{"#264653", "#2A9D8F", "#E9C46A", "#F4A261", "#E76F51"}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validColors keeps only well-formed 6-hex-digit entries.
func validColors(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		if hexColorRe.MatchString(c) {
			out = append(out, c)
		}
	}
	return out
}

// resolvePalette walks the fallback chain: explicit override, external table
// entry for the category, built-in category, hardcoded constants. Each link is
// validated; a link that validates to empty is skipped, so the result is
// always non-empty.
func resolvePalette(override []string, category string, table map[string][]string) []string {
	if pal := validColors(override); len(pal) > 0 {
		return pal
	}
	if table != nil {
		if pal := validColors(table[category]); len(pal) > 0 {
			return pal
		}
	}
	if pal := validColors(defaultPalettes[category]); len(pal) > 0 {
		return pal
	}
	return fallbackPalette
}

// pickColor draws one palette entry. An empty palette falls back to the
// constant list rather than panicking.
func pickColor(pal []string, rng *lcg) string {
	if len(pal) == 0 {
		pal = fallbackPalette
	}
	return pal[rng.Intn(len(pal))]
}

// jitterColor nudges the lightness of a hex color by up to ±15%, used for
// gradient stops so adjacent stops from the same palette entry still read as
// distinct.
func jitterColor(hex string, rng *lcg) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	l = clampFloat(l+rng.Range(-0.15, 0.15), 0.05, 0.95)
	return colorful.Hsl(h, s, l).Clamped().Hex()
}
