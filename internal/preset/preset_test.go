package preset

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Threshold != 0.998 {
		t.Errorf("threshold = %v, want 0.998", s.Threshold)
	}
	if s.RMSCorrectionSteps != 4 {
		t.Errorf("rms correction steps = %v, want 4", s.RMSCorrectionSteps)
	}
	if s.LowessFrac != 0.0375 {
		t.Errorf("lowess fraction = %v, want 0.0375", s.LowessFrac)
	}
}

func TestOverridesApplyLeavesBaseUntouched(t *testing.T) {
	base := DefaultSettings()
	o := Overrides{Threshold: floatPtr(0.85), RMSCorrectionSteps: intPtr(6)}

	got := o.Apply(base)
	if got.Threshold != 0.85 || got.RMSCorrectionSteps != 6 {
		t.Fatalf("overrides not applied: %+v", got)
	}
	if got.LowessFrac != base.LowessFrac {
		t.Fatalf("unset override changed field: %v", got.LowessFrac)
	}
	if base.Threshold != 0.998 || base.RMSCorrectionSteps != 4 {
		t.Fatalf("base mutated: %+v", base)
	}
}

func TestOverridesApplyEmpty(t *testing.T) {
	base := DefaultSettings()
	if got := (Overrides{}).Apply(base); got != base {
		t.Fatalf("empty overrides changed settings: %+v", got)
	}
}

func TestOutputFormatExtAndSuffix(t *testing.T) {
	cases := []struct {
		format OutputFormat
		ext    string
		suffix string
	}{
		{FormatWav16, "wav", "_mastered_16bit"},
		{FormatWav24, "wav", "_mastered_24bit"},
		{FormatFlac24, "flac", "_mastered_24bit"},
		{FormatMp3, "mp3", "_mastered_320"},
	}
	for _, tc := range cases {
		if got := tc.format.Ext(); got != tc.ext {
			t.Errorf("%s.Ext() = %q, want %q", tc.format, got, tc.ext)
		}
		if got := tc.format.Suffix(); got != tc.suffix {
			t.Errorf("%s.Suffix() = %q, want %q", tc.format, got, tc.suffix)
		}
	}
}
