package potential

// alphaHF holds the statistical exchange coefficients fitted to Hartree-Fock
// total energies, indexed by atomic number. Index 0 is unused.
var alphaHF = [...]float64{
	0,
	1.00000, 0.77298, 0.78147, 0.76823, 0.76598, 0.75928, 0.75197, 0.74447, 0.73732, 0.73081,
	0.73115, 0.72913, 0.72853, 0.72751, 0.72620, 0.72475, 0.72325, 0.72177, 0.72117, 0.71984,
	0.71841, 0.71695, 0.71556, 0.71378, 0.71290, 0.71151, 0.71018, 0.70896, 0.70728, 0.70652,
	0.70638, 0.70592, 0.70539, 0.70480, 0.70424, 0.70371, 0.70381, 0.70330, 0.70294, 0.70253,
	0.70217,
}

// MaxAlphaZ is the heaviest element with its own tabulated coefficient.
const MaxAlphaZ = len(alphaHF) - 1

// StatisticalAlpha returns the exchange coefficient α for atomic number z.
// Heavier elements reuse the value for Z = MaxAlphaZ; z ≤ 0 yields 0.
func StatisticalAlpha(z int) float64 {
	switch {
	case z <= 0:
		return 0
	case z > MaxAlphaZ:
		return alphaHF[MaxAlphaZ]
	}
	return alphaHF[z]
}
