package config

import "math"

// Presets are named tunings for the session. Each starts from Default
// and overrides a handful of fields.
var Presets = map[string]func(*Options){
	// The standard scene: ten rings, staggered gaps.
	"classic": func(o *Options) {},

	// All gaps start aligned into one tunnel, then drift apart.
	"aligned": func(o *Options) {
		o.GapMode = GapModeShared
	},

	// Few rings, wide gaps, no minimum duration. Over in seconds.
	"sprint": func(o *Options) {
		o.RingCount = 4
		o.RadiusStep = 0.4
		o.GapWidth = math.Pi / 3
		o.MinAcceptableDuration = 0
		o.MaxDurationLimit = 60
	},

	// Dense rings with narrow, fast gaps. Runs shorter than a minute
	// get silently regenerated.
	"marathon": func(o *Options) {
		o.RingCount = 24
		o.RadiusStep = 0.07
		o.GapWidth = math.Pi / 7
		o.BaseRotationSpeed = 2.8
		o.MinAcceptableDuration = 60
		o.MaxDurationLimit = 300
	},
}

// Preset returns the named options, or nil when unknown.
func Preset(name string) *Options {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	opts := Default()
	apply(opts)
	return opts
}

// PresetNames lists the available preset names.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
