// Package atom computes self-consistent Herman-Skillman potentials for
// isolated atoms.
//
// The package ties the lower layers together:
//
//   - [Solver]: runs the fixed-point loop between trial potential and orbitals
//   - [Atom]: the converged (or iteration-capped) result, read through
//     copying accessors
//   - [Config]: tolerance, mixing, exchange mode and worker bounds
//   - [Observer]: receives one [Iteration] per pass of the loop
//
// # Example
//
//	a, _ := atom.New(26)
//	v := a.Potential()
//	fmt.Println(a.Status().Converged, len(v))
//
// # Ownership
//
// Every accessor on [Atom] returns a fresh copy. Callers may mutate what they
// receive without affecting the atom or later calls.
package atom
