package config

// Presets are ready-made configurations per mode, keyed by name.
var Presets = map[string]map[string]*Config{
	ModeMassive: {
		"bound": {
			Mode: ModeMassive, GM: 1.0, Values: "4, 5, 7",
			RMin: 2.5, RMax: 500, Points: DefaultPoints,
			YMin: -0.05, YMax: 0.02,
		},
		"isco": {
			// 2*sqrt(3): the inflection case, no max/min pair.
			Mode: ModeMassive, GM: 1.0, Values: "3.464",
			RMin: 2.5, RMax: 100, Points: DefaultPoints,
			YMin: -0.05, YMax: 0.02,
		},
		"comparison": {
			Mode: ModeMassive, GM: 1.0, Values: "4", Newtonian: true,
			RMin: 2.5, RMax: 100, Points: DefaultPoints,
			YMin: -0.05, YMax: 0.02,
		},
	},
	ModePhoton: {
		"survey": {
			Mode: ModePhoton, GM: 1.0, Values: "5.196, 6, 4",
			RMin: 1.5, RMax: 15, Points: DefaultPoints,
			YMin: 0, YMax: 0.07,
		},
		"critical": {
			// The literal sqrt(27), so classification lands exactly on it.
			Mode: ModePhoton, GM: 1.0, Values: "5.196152422706632",
			RMin: 1.5, RMax: 15, Points: DefaultPoints,
			YMin: 0, YMax: 0.07,
		},
		"capture": {
			Mode: ModePhoton, GM: 1.0, Values: "4", Newtonian: true,
			RMin: 1.5, RMax: 15, Points: DefaultPoints,
			YMin: 0, YMax: 0.07,
		},
	},
}

// GetPreset looks up a preset by mode and name; nil when absent.
func GetPreset(mode, preset string) *Config {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	cfg, ok := modePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names for a mode.
func ListPresets(mode string) []string {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modePresets))
	for name := range modePresets {
		names = append(names, name)
	}
	return names
}
