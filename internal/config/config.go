package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Gap generation modes.
const (
	GapModeIndependent = "independent"
	GapModeShared      = "shared"
)

// Options carries every tunable of the simulation. All values are
// validated once before a session is built; the core itself never
// checks them again.
type Options struct {
	// Ring layout.
	RingCount   int     `yaml:"ring_count"`
	InnerRadius float64 `yaml:"inner_radius"`
	RadiusStep  float64 `yaml:"radius_step"`

	// Gap behavior.
	GapWidth          float64 `yaml:"gap_width_radians"`
	GapMode           string  `yaml:"gap_mode"`
	GapBias           float64 `yaml:"gap_bias"`
	BaseRotationSpeed float64 `yaml:"base_rotation_speed"`
	SpeedFalloff      float64 `yaml:"speed_falloff"`

	// Restitution policy.
	RestitutionBase   float64 `yaml:"restitution_base"`
	RestitutionMin    float64 `yaml:"restitution_min"`
	RestitutionRegain float64 `yaml:"restitution_regain"`

	// Escape penalty.
	EscapeDamping     float64 `yaml:"escape_damping"`
	EscapeRestitution float64 `yaml:"escape_restitution_factor"`

	// Speed governor.
	SpeedMin           float64 `yaml:"speed_min"`
	SpeedMax           float64 `yaml:"speed_max"`
	DampingCoefficient float64 `yaml:"damping_coefficient"`

	// Ball.
	Gravity        float64 `yaml:"gravity"`
	BallRadius     float64 `yaml:"ball_radius"`
	TangentialKick float64 `yaml:"tangential_kick"`
	InitialVelX    float64 `yaml:"initial_vel_x"`
	InitialVelY    float64 `yaml:"initial_vel_y"`

	// Integration and lifecycle.
	Substeps              int     `yaml:"substeps"`
	FrameRate             int     `yaml:"frame_rate"`
	MinAcceptableDuration float64 `yaml:"min_acceptable_duration"`
	MaxDurationLimit      float64 `yaml:"max_duration_limit"`

	// Particle bursts.
	BurstCount       int     `yaml:"burst_count"`
	ParticleSpeedMin float64 `yaml:"particle_speed_min"`
	ParticleSpeedMax float64 `yaml:"particle_speed_max"`
	ParticleLifeMin  float64 `yaml:"particle_life_min"`
	ParticleLifeMax  float64 `yaml:"particle_life_max"`

	Seed int64 `yaml:"seed"`
}

// Default returns the standard tuning.
func Default() *Options {
	return &Options{
		RingCount:   10,
		InnerRadius: 0.4,
		RadiusStep:  0.16,

		GapWidth:          math.Pi / 5,
		GapMode:           GapModeIndependent,
		GapBias:           0.15,
		BaseRotationSpeed: 2.2,
		SpeedFalloff:      0.15,

		RestitutionBase:   1.8,
		RestitutionMin:    1.1,
		RestitutionRegain: 0.2,

		EscapeDamping:     0.6,
		EscapeRestitution: 0.6,

		SpeedMin:           3.0,
		SpeedMax:           7.0,
		DampingCoefficient: 0.001,

		Gravity:        -3.0,
		BallRadius:     0.05,
		TangentialKick: 0.6,
		InitialVelX:    1.5,
		InitialVelY:    0.0,

		Substeps:              3,
		FrameRate:             60,
		MinAcceptableDuration: 5.0,
		MaxDurationLimit:      120.0,

		BurstCount:       25,
		ParticleSpeedMin: 0.5,
		ParticleSpeedMax: 2.0,
		ParticleLifeMin:  0.4,
		ParticleLifeMax:  1.2,
	}
}

// Load reads a yaml options file over the defaults.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts := Default()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// Save writes the options as yaml.
func Save(path string, opts *Options) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the core is not defensive against.
// The session constructor assumes it has been called.
func (o *Options) Validate() error {
	if o.RingCount < 0 {
		return fmt.Errorf("ring_count must be non-negative, got %d", o.RingCount)
	}
	if o.InnerRadius <= 0 {
		return fmt.Errorf("inner_radius must be positive, got %f", o.InnerRadius)
	}
	if o.RingCount > 1 && o.RadiusStep <= 0 {
		return fmt.Errorf("radius_step must be positive for multiple rings, got %f", o.RadiusStep)
	}
	if o.GapWidth <= 0 || o.GapWidth >= 2*math.Pi {
		return fmt.Errorf("gap_width_radians must lie in (0, 2*pi), got %f", o.GapWidth)
	}
	if o.GapMode != GapModeIndependent && o.GapMode != GapModeShared {
		return fmt.Errorf("unknown gap_mode %q", o.GapMode)
	}
	if o.RestitutionMin > o.RestitutionBase {
		return fmt.Errorf("restitution_min %f exceeds restitution_base %f", o.RestitutionMin, o.RestitutionBase)
	}
	if o.SpeedMin > o.SpeedMax {
		return fmt.Errorf("speed_min %f exceeds speed_max %f", o.SpeedMin, o.SpeedMax)
	}
	if o.SpeedMin < 0 {
		return fmt.Errorf("speed_min must be non-negative, got %f", o.SpeedMin)
	}
	if o.BallRadius <= 0 {
		return fmt.Errorf("ball_radius must be positive, got %f", o.BallRadius)
	}
	if o.Substeps < 1 {
		return fmt.Errorf("substeps must be at least 1, got %d", o.Substeps)
	}
	if o.FrameRate < 1 {
		return fmt.Errorf("frame_rate must be at least 1, got %d", o.FrameRate)
	}
	if o.MinAcceptableDuration < 0 {
		return fmt.Errorf("min_acceptable_duration must be non-negative, got %f", o.MinAcceptableDuration)
	}
	if o.MaxDurationLimit <= 0 {
		return fmt.Errorf("max_duration_limit must be positive, got %f", o.MaxDurationLimit)
	}
	if o.BurstCount < 0 {
		return fmt.Errorf("burst_count must be non-negative, got %d", o.BurstCount)
	}
	if o.ParticleSpeedMin > o.ParticleSpeedMax {
		return fmt.Errorf("particle_speed_min %f exceeds particle_speed_max %f", o.ParticleSpeedMin, o.ParticleSpeedMax)
	}
	if o.ParticleLifeMin > o.ParticleLifeMax || o.ParticleLifeMin <= 0 {
		return fmt.Errorf("particle life band [%f, %f] invalid", o.ParticleLifeMin, o.ParticleLifeMax)
	}
	return nil
}

// OuterRadius returns the radius of the outermost ring, or the inner
// radius when no rings are configured. Renderers use it to frame the
// scene.
func (o *Options) OuterRadius() float64 {
	if o.RingCount == 0 {
		return o.InnerRadius
	}
	return o.InnerRadius + float64(o.RingCount-1)*o.RadiusStep
}
