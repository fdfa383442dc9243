// Package prototype serves the fixed example payloads of the early dashboard
// prototype: summary stats, an NPS trend series and map points.
//
// The service is standalone. Nothing in the API server or the client reads
// from it.
package prototype
