package preset

// OutputFormat tags one encoded rendition of a mastered track.
type OutputFormat string

const (
	FormatWav16  OutputFormat = "wav_16"
	FormatWav24  OutputFormat = "wav_24"
	FormatFlac24 OutputFormat = "flac_24"
	FormatMp3    OutputFormat = "mp3_320"
)

// Ext returns the file extension for the format, without the dot.
func (f OutputFormat) Ext() string {
	switch f {
	case FormatFlac24:
		return "flac"
	case FormatMp3:
		return "mp3"
	default:
		return "wav"
	}
}

// Suffix returns the filename suffix appended to mastered outputs.
func (f OutputFormat) Suffix() string {
	switch f {
	case FormatWav16:
		return "_mastered_16bit"
	case FormatWav24:
		return "_mastered_24bit"
	case FormatFlac24:
		return "_mastered_24bit"
	case FormatMp3:
		return "_mastered_320"
	default:
		return "_mastered"
	}
}

// Settings is the resolved engine configuration for one work item.
type Settings struct {
	Threshold          float64
	RMSCorrectionSteps int
	LowessFrac         float64
}

// DefaultSettings returns the engine defaults applied before preset overrides.
func DefaultSettings() Settings {
	return Settings{
		Threshold:          0.998,
		RMSCorrectionSteps: 4,
		LowessFrac:         0.0375,
	}
}

// Overrides is the typed set of per-preset engine parameter overrides. Nil
// fields leave the default untouched.
type Overrides struct {
	Threshold          *float64
	RMSCorrectionSteps *int
	LowessFrac         *float64
}

// Apply merges the overrides into base and returns a fresh Settings value.
// The receiver and base are never mutated; presets stay read-only.
func (o Overrides) Apply(base Settings) Settings {
	out := base
	if o.Threshold != nil {
		out.Threshold = *o.Threshold
	}
	if o.RMSCorrectionSteps != nil {
		out.RMSCorrectionSteps = *o.RMSCorrectionSteps
	}
	if o.LowessFrac != nil {
		out.LowessFrac = *o.LowessFrac
	}
	return out
}

// Preset is a named, read-only bundle of mastering configuration.
type Preset struct {
	Key             string
	Name            string
	Description     string
	Overrides       Overrides
	OutputFormats   []OutputFormat
	UseLimiter      bool
	Normalize       bool
	Characteristics map[string]float64
}

// Settings resolves the preset's overrides against the engine defaults.
func (p Preset) Settings() Settings {
	return p.Overrides.Apply(DefaultSettings())
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
