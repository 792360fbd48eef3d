package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Carousel
	CarouselInterval   = 3500 * time.Millisecond
	CarouselSmoothing  = 0.05
	CarouselFill       = 0.95
	CarouselActiveZ    = 0.1
	CarouselInactiveZ  = -0.1
	CarouselCornerSize = 0.08
	CarouselCameraZ    = 2
	CarouselFov        = 50

	// Particle field
	ParticleCount      = 2000
	ParticleMinRadius  = 1
	ParticleMaxRadius  = 6
	ParticleSize       = 0.05
	ParticleOpacity    = 0.8
	ParticleSpin       = 0.05
	ParticlePulseSpeed = 0.5
	ParticlePulseDepth = 0.05
	ParticleColorFrom  = "#ec4899"
	ParticleColorTo    = "#3b82f6"
	DanceCameraZ       = 6
	DanceFov           = 60
	DanceBackground    = "#0f172a"

	// Starfield
	StarCount      = 5000
	StarRadius     = 100
	StarDepth      = 50
	StarFactor     = 4
	StarSaturation = 0
	StarSpeed      = 1
	StarSeed       = 0x5eed

	// Orbit controls
	OrbitAutoRotateSpeed = 0.3
	OrbitRotateSpeed     = 1
	OrbitDamping         = 0.05

	// Page layout: carousel panel as a fraction of the window
	PanelWidth  = 0.5
	PanelHeight = 0.6
)
