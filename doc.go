// Package lvlgauge is your in-memory playground for lattice gauge theory —
// from the bare periodic lattice up to Monte Carlo sampling and gradient-flow
// scale setting.
//
// 🚀 What is lvlgauge?
//
//	A deterministic, library-first simulation core that brings together:
//		• Lattice topology: D-dimensional grids with per-dimension periodicity
//		• Gauge groups: U(1), SU(2), SU(3) with Haar sampling & reunitarization
//		• Link fields: group-valued edge maps with a generic matter-source slot
//		• Observables: plaquette, Wilson loop, Polyakov loop, Creutz ratio
//		• Monte Carlo: parity-parallel Metropolis sweeps, reproducible by seed
//		• Gradient flow: third-order RK integration & t0 scale extraction
//		• Exact oracle: Bessel-ratio reference values for the solvable 2D U(1) theory
//
// ✨ Why choose lvlgauge?
//
//   - Deterministic – fixed seeds give identical runs, even across parallel workers
//   - Rock-solid invariants – links are kept on the group manifold within tolerance
//   - Pure Go hot path – fixed-size value types, no cgo, no hidden allocation
//   - Extensible – attach any source type to a field without touching the links
//
// Under the hood, everything is organized into focused subpackages:
//
//	lattice/    — cells, oriented edges, neighbor & plaquette-corner enumeration
//	group/      — gauge group capability (U1, SU2, SU3) and algebra operations
//	field/      — the link map aggregate, coupling β, and the source slot
//	observable/ — read-only loop observables over a field
//	mc/         — thermalization & measurement sweeps (Metropolis)
//	gradflow/   — Wilson flow on a private clone; t0 from t²E(t) = 0.3
//	exact/      — modified-Bessel reference oracle for validation
//	history/    — snapshot timeline for rewind & replay
//	numeric/    — injected transcendental backend (exp, log, trig, sqrt)
//
// Quick ASCII example:
//
//	    x ──U_μ(x)──▶ x+μ̂
//	    ▲             │
//	 U_ν(x)        U_ν(x+μ̂)
//	    │             ▼
//	   x+ν̂ ◀──────── x+μ̂+ν̂
//
//	the plaquette U_μ(x)·U_ν(x+μ̂)·U_μ(x+ν̂)†·U_ν(x)† is the smallest Wilson loop.
//
// Dive into the examples/ directory for end-to-end simulations and into each
// package's doc.go for contracts, complexity notes, and error taxonomies.
//
//	go get github.com/katalvlaran/lvlgauge
package lvlgauge
