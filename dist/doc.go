// Package dist provides pure, stateless statistics over degree histograms:
// normalization, cumulative distributions, theoretical power-law histograms,
// and the Kolmogorov–Smirnov distance used to compare a generated network's
// degree distribution against a theoretical model.
//
// All functions are free of shared state and safe to call concurrently.
// Inputs are never mutated; every result is a fresh slice.
//
// Errors:
//   - ErrEmptyInput       — statistics requested on an empty sequence.
//   - ErrInvalidParameter — negative maximum degree for PowerLaw.
package dist
