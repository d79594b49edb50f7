package preset

import (
	"remaster/internal/services"
)

// Catalog is the process-wide registry of presets, built once and read-only
// thereafter. List order is registration order.
type Catalog struct {
	order   []string
	presets map[string]Preset
}

// NewCatalog constructs the catalog from the built-in preset table.
func NewCatalog() *Catalog {
	c := &Catalog{presets: make(map[string]Preset, len(builtinPresets))}
	for _, p := range builtinPresets {
		c.order = append(c.order, p.Key)
		c.presets[p.Key] = p
	}
	return c
}

// Get returns the preset registered under key.
func (c *Catalog) Get(key string) (Preset, error) {
	p, ok := c.presets[key]
	if !ok {
		return Preset{}, services.Wrap(services.ErrPresetNotFound, "preset", "get", key, nil)
	}
	return p, nil
}

// List returns all presets in registration order.
func (c *Catalog) List() []Preset {
	out := make([]Preset, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.presets[key])
	}
	return out
}

// Has reports whether a preset is registered under key.
func (c *Catalog) Has(key string) bool {
	_, ok := c.presets[key]
	return ok
}

// ForGenre maps a genre detector tag to a preset key, falling back to the
// streaming preset for unknown tags and the "general" sentinel.
func (c *Catalog) ForGenre(tag string) Preset {
	key, ok := genrePresets[tag]
	if !ok {
		key = DefaultKey
	}
	p, ok := c.presets[key]
	if !ok {
		p = c.presets[DefaultKey]
	}
	return p
}

// DefaultKey is the preset applied when neither the caller nor the genre
// detector selects one.
const DefaultKey = "streaming"

// genrePresets maps genre detector tags to preset keys.
var genrePresets = map[string]string{
	"trap":       "trap",
	"hip-hop":    "boom_bap",
	"electronic": "electronic",
	"rock":       "metal",
	"pop":        "pop_radio",
	"jazz":       "jazz_fusion",
	"classical":  "classical",
	"rnb":        "rnb_soul",
	"reggae":     "reggaeton",
}

// builtinPresets is the literal preset table: use-case presets first, genre
// presets after, in menu order.
var builtinPresets = []Preset{
	{
		Key:           "pop_radio",
		Name:          "Pop/Radio Ready",
		Description:   "Loud, punchy sound suitable for radio play",
		Overrides:     Overrides{Threshold: floatPtr(0.95)},
		OutputFormats: []OutputFormat{FormatWav16, FormatWav24, FormatMp3},
		UseLimiter:    true,
		Normalize:     true,
	},
	{
		Key:           "audiophile",
		Name:          "Audiophile Quality",
		Description:   "High dynamic range for critical listening",
		Overrides:     Overrides{Threshold: floatPtr(0.85), RMSCorrectionSteps: intPtr(6)},
		OutputFormats: []OutputFormat{FormatWav24, FormatFlac24},
		UseLimiter:    false,
		Normalize:     false,
	},
	{
		Key:           "streaming",
		Name:          "Streaming Optimized",
		Description:   "Optimized for Spotify, Apple Music, etc.",
		Overrides:     Overrides{Threshold: floatPtr(0.90)},
		OutputFormats: []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:    true,
		Normalize:     true,
	},
	{
		Key:           "classical",
		Name:          "Classical/Orchestral",
		Description:   "Preserves wide dynamic range",
		Overrides:     Overrides{Threshold: floatPtr(0.75), RMSCorrectionSteps: intPtr(2)},
		OutputFormats: []OutputFormat{FormatWav24, FormatFlac24},
		UseLimiter:    false,
		Normalize:     true,
	},
	{
		Key:           "electronic",
		Name:          "Electronic/EDM",
		Description:   "Powerful, club-ready sound",
		Overrides:     Overrides{Threshold: floatPtr(0.98)},
		OutputFormats: []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:    true,
		Normalize:     true,
	},
	{
		Key:             "pop",
		Name:            "Pop/Top 40",
		Description:     "Modern pop sound - bright, loud, polished",
		Overrides:       Overrides{Threshold: floatPtr(0.95), RMSCorrectionSteps: intPtr(4)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"brightness": 0.8, "punch": 0.7, "warmth": 0.5},
	},
	{
		Key:             "trap",
		Name:            "Trap/808 Heavy",
		Description:     "Heavy 808s, crisp hi-hats, modern trap sound",
		Overrides:       Overrides{Threshold: floatPtr(0.98), RMSCorrectionSteps: intPtr(3), LowessFrac: floatPtr(0.025)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"sub_bass": 0.9, "clarity": 0.8, "aggression": 0.8},
	},
	{
		Key:             "gangsta_rap",
		Name:            "Gangsta Rap/West Coast",
		Description:     "Classic West Coast sound - warm, punchy, clear vocals",
		Overrides:       Overrides{Threshold: floatPtr(0.93), RMSCorrectionSteps: intPtr(4), LowessFrac: floatPtr(0.04)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"warmth": 0.8, "punch": 0.9, "vocal_presence": 0.8},
	},
	{
		Key:             "funk",
		Name:            "Funk/Groove",
		Description:     "Punchy drums, prominent bass, dynamic groove",
		Overrides:       Overrides{Threshold: floatPtr(0.88), RMSCorrectionSteps: intPtr(3), LowessFrac: floatPtr(0.035)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"groove": 0.9, "punch": 0.8, "dynamics": 0.7},
	},
	{
		Key:             "rnb_soul",
		Name:            "R&B/Soul",
		Description:     "Smooth, warm, vocal-focused",
		Overrides:       Overrides{Threshold: floatPtr(0.90), RMSCorrectionSteps: intPtr(5), LowessFrac: floatPtr(0.045)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"smoothness": 0.9, "warmth": 0.8, "vocal_presence": 0.9},
	},
	{
		Key:             "drill",
		Name:            "UK/Chicago Drill",
		Description:     "Dark, aggressive, heavy bass",
		Overrides:       Overrides{Threshold: floatPtr(0.97), RMSCorrectionSteps: intPtr(3), LowessFrac: floatPtr(0.02)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"darkness": 0.9, "aggression": 0.95, "sub_bass": 0.85},
	},
	{
		Key:             "afrobeat",
		Name:            "Afrobeat/Afropop",
		Description:     "Rhythmic, percussive, warm and vibrant",
		Overrides:       Overrides{Threshold: floatPtr(0.91), RMSCorrectionSteps: intPtr(4), LowessFrac: floatPtr(0.038)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"rhythm": 0.9, "warmth": 0.7, "percussion": 0.85},
	},
	{
		Key:             "reggaeton",
		Name:            "Reggaeton/Latin Urban",
		Description:     "Punchy dembow rhythm, clear vocals, modern Latin sound",
		Overrides:       Overrides{Threshold: floatPtr(0.94), RMSCorrectionSteps: intPtr(4), LowessFrac: floatPtr(0.03)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"punch": 0.85, "clarity": 0.8, "rhythm": 0.9},
	},
	{
		Key:             "lofi_hip_hop",
		Name:            "Lo-Fi Hip Hop",
		Description:     "Warm, vintage, slightly compressed",
		Overrides:       Overrides{Threshold: floatPtr(0.82), RMSCorrectionSteps: intPtr(2), LowessFrac: floatPtr(0.05)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"warmth": 0.9, "vintage": 0.8, "smoothness": 0.85},
	},
	{
		Key:             "boom_bap",
		Name:            "Boom Bap/90s Hip Hop",
		Description:     "Classic hip hop - punchy drums, warm samples",
		Overrides:       Overrides{Threshold: floatPtr(0.89), RMSCorrectionSteps: intPtr(3), LowessFrac: floatPtr(0.04)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"punch": 0.9, "warmth": 0.7, "groove": 0.85},
	},
	{
		Key:             "phonk",
		Name:            "Phonk/Memphis",
		Description:     "Dark, distorted, aggressive Memphis sound",
		Overrides:       Overrides{Threshold: floatPtr(0.96), RMSCorrectionSteps: intPtr(2), LowessFrac: floatPtr(0.025)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"darkness": 0.95, "distortion": 0.7, "aggression": 0.9},
	},
	{
		Key:             "jazz_fusion",
		Name:            "Jazz/Fusion",
		Description:     "Dynamic, clear, natural sound",
		Overrides:       Overrides{Threshold: floatPtr(0.78), RMSCorrectionSteps: intPtr(6), LowessFrac: floatPtr(0.055)},
		OutputFormats:   []OutputFormat{FormatWav24, FormatFlac24},
		UseLimiter:      false,
		Normalize:       true,
		Characteristics: map[string]float64{"dynamics": 0.9, "clarity": 0.85, "naturalness": 0.9},
	},
	{
		Key:             "metal",
		Name:            "Metal/Heavy",
		Description:     "Aggressive, tight low-end, clear mids",
		Overrides:       Overrides{Threshold: floatPtr(0.96), RMSCorrectionSteps: intPtr(3), LowessFrac: floatPtr(0.02)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"aggression": 0.95, "tightness": 0.9, "clarity": 0.75},
	},
	{
		Key:             "ambient",
		Name:            "Ambient/Atmospheric",
		Description:     "Spacious, dynamic, ethereal",
		Overrides:       Overrides{Threshold: floatPtr(0.75), RMSCorrectionSteps: intPtr(6), LowessFrac: floatPtr(0.06)},
		OutputFormats:   []OutputFormat{FormatWav24, FormatFlac24},
		UseLimiter:      false,
		Normalize:       true,
		Characteristics: map[string]float64{"space": 0.95, "dynamics": 0.85, "smoothness": 0.9},
	},
	{
		Key:             "house",
		Name:            "House/Tech House",
		Description:     "Pumping, club-ready, clear mix",
		Overrides:       Overrides{Threshold: floatPtr(0.94), RMSCorrectionSteps: intPtr(4), LowessFrac: floatPtr(0.032)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"pump": 0.9, "clarity": 0.85, "energy": 0.88},
	},
	{
		Key:             "dubstep",
		Name:            "Dubstep/Bass Music",
		Description:     "Massive sub-bass, spacious, dynamic drops",
		Overrides:       Overrides{Threshold: floatPtr(0.92), RMSCorrectionSteps: intPtr(3), LowessFrac: floatPtr(0.028)},
		OutputFormats:   []OutputFormat{FormatWav16, FormatWav24},
		UseLimiter:      true,
		Normalize:       true,
		Characteristics: map[string]float64{"sub_bass": 0.95, "space": 0.8, "impact": 0.9},
	},
}
