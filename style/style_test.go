package style

import "testing"

func TestPresets(t *testing.T) {
	for _, name := range []string{"manual", "auto", "selected", "preview"} {
		st, ok := Presets[name]
		if !ok {
			t.Fatalf("preset %q missing", name)
		}
		if st.StrokeColor == "" || st.StrokeWidth <= 0 {
			t.Errorf("preset %q has no usable stroke: %+v", name, st)
		}
		if st.Opacity <= 0 || st.Opacity > 1 {
			t.Errorf("preset %q opacity out of range: %v", name, st.Opacity)
		}
	}
}

func TestPresetDistinctions(t *testing.T) {
	if !Auto.DashEnabled || !Preview.DashEnabled {
		t.Error("auto and preview presets should be dashed")
	}
	if Manual.DashEnabled {
		t.Error("manual preset should be solid")
	}
	if !Selected.ShadowEnabled {
		t.Error("selected preset should carry a shadow")
	}
}
