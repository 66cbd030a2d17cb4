// Package similarity scores how closely two canonical keys match.
//
// PartialRatio slides the shorter key across the longer one and reports the
// best window as a 0-100 score. Clustering only relies on the 100 boundary;
// intermediate scores are informational.
package similarity
