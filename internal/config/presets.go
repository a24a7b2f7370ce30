package config

import "sort"

// Presets are named solver settings; Element and Configuration are left to
// the caller.
var Presets = map[string]*Config{
	"quick": {
		Mesh: "abridged", Exchange: "nonstatistical", Tolerance: 1e-3,
		MaxIterations: 60, Mixing: 0.5, LatterTail: true, Workers: 0,
	},
	"standard": {
		Mesh: "normal", Exchange: "nonstatistical", Tolerance: 1e-4,
		MaxIterations: 200, Mixing: 0.5, LatterTail: true, Workers: 1,
	},
	"precise": {
		Mesh: "double", Exchange: "nonstatistical", Tolerance: 1e-6,
		MaxIterations: 400, Mixing: 0.3, LatterTail: true, Workers: 0,
		RequireConvergence: true,
	},
	"statistical": {
		Mesh: "normal", Exchange: "statistical", Tolerance: 1e-4,
		MaxIterations: 200, Mixing: 0.5, LatterTail: true, Workers: 0,
	},
}

// GetPreset returns a copy of the named preset for element, or nil.
func GetPreset(name, element string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Element = element
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
