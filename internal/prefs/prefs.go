// Package prefs holds the reader's display preferences: a small clamped
// key-value record persisted best-effort alongside bookmarks.
package prefs

import (
	"regexp"
	"slices"
	"strings"
)

// ArabicFontOptions are the selectable Arabic typefaces.
var ArabicFontOptions = []string{
	"noto-naskh", "amiri", "scheherazade", "markazi",
	"noto-kufi", "tajawal", "cairo", "noto-sans",
}

// MushafPaperTemplates are the selectable page backgrounds.
var MushafPaperTemplates = []string{
	"classic-cream", "soft-ivory", "aged-parchment", "linen-beige",
	"sandstone", "rose-paper", "mint-paper", "gray-manuscript",
	"blue-folio", "night-folio",
}

const (
	fontScaleMin        = 0.9
	fontScaleMax        = 1.4
	mushafBrightnessMin = 0.7
	mushafBrightnessMax = 1.35
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Preferences is the reader's display configuration.
type Preferences struct {
	NightMode           bool    `json:"nightMode"`
	FontScale           float64 `json:"fontScale"`
	AudioAutoAdvance    bool    `json:"audioAutoAdvance"`
	ArabicFont          string  `json:"arabicFont"`
	MushafPaperTemplate string  `json:"mushafPaperTemplate"`
	MushafBrightness    float64 `json:"mushafBrightness"`
	MushafTextColor     string  `json:"mushafTextColor"`
}

// Default returns the out-of-the-box preferences.
func Default() Preferences {
	return Preferences{
		NightMode:           false,
		FontScale:           1,
		AudioAutoAdvance:    true,
		ArabicFont:          "noto-naskh",
		MushafPaperTemplate: "classic-cream",
		MushafBrightness:    1,
		MushafTextColor:     "#2b1d0e",
	}
}

// Clamp returns a copy with every field forced into its valid range: numeric
// fields clamped, enum fields reset to the default when not whitelisted, and
// the text color lowercased when it is a six-digit hex value, reset otherwise.
func (p Preferences) Clamp() Preferences {
	defaults := Default()

	p.FontScale = clamp(p.FontScale, fontScaleMin, fontScaleMax)
	p.MushafBrightness = clamp(p.MushafBrightness, mushafBrightnessMin, mushafBrightnessMax)

	if !slices.Contains(ArabicFontOptions, p.ArabicFont) {
		p.ArabicFont = defaults.ArabicFont
	}
	if !slices.Contains(MushafPaperTemplates, p.MushafPaperTemplate) {
		p.MushafPaperTemplate = defaults.MushafPaperTemplate
	}
	p.MushafTextColor = strings.TrimSpace(p.MushafTextColor)
	if hexColorPattern.MatchString(p.MushafTextColor) {
		p.MushafTextColor = strings.ToLower(p.MushafTextColor)
	} else {
		p.MushafTextColor = defaults.MushafTextColor
	}

	return p
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
