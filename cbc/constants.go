package cbc

// Physical constants in SI units (CODATA 2010, IAU).
const (
	// SpeedOfLight is c in m/s.
	SpeedOfLight = 299792458.0
	// NewtonG is the gravitational constant in m^3 kg^-1 s^-2.
	NewtonG = 6.67384e-11
	// SolarMass is one solar mass in kg.
	SolarMass = 1.988546954961461e30
	// Parsec is one parsec in m.
	Parsec = 3.085677581491367e16
)
