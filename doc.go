// Package warp is a toolkit for elastic comparison and averaging of
// numeric time series.
//
// 🚀 What is warp?
//
//	A deterministic, dependency-light library that brings together:
//		• Bounding constraints: full, Sakoe–Chiba band, Itakura parallelogram
//		• Elastic distances: DTW, DDTW, WDTW, WDDTW, ERP, EDR, TWE, MSM,
//		  shapeDTW, ADTW — each with scalar cost and optimal alignment path
//		• Barycenter averaging: iterative DBA refinement of a representative
//		  sequence under any of the elastic measures
//
// ✨ Why choose warp?
//
//   - Deterministic – explicit seeds, no time-based randomness anywhere
//   - Rock-solid guarantees – strict sentinel errors, no panics on user input
//   - Pure computation – no I/O, no logging, no hidden global state
//   - Multichannel – every measure handles (channels × timepoints) series
//
// Everything is organized under three subpackages:
//
//	bounding/   — alignment-region masks consumed by every elastic measure
//	elastic/    — the distance family: cost matrices, paths, metric registry
//	barycenter/ — DBA averaging loop with parallel per-sequence alignment
//
// See each package's doc.go for contracts, complexity and worked examples.
package warp
