// Package roadref connects OpenLR location references to a road network.
//
// An OpenLR decoder first maps every location reference point (LRP) to a few
// candidate paths on the local map. roadref does the next step: for each pair
// of consecutive points it picks one candidate of each, bridges them with a
// bounded shortest-path search when they do not already touch, and keeps the
// first stitched path whose length agrees with the encoded distance.
//
// What lives where:
//
//	roadgraph/:   junctions, directed edges (real or fake), MemGraph store
//	openlr/:      Matcher, PathFinder, Validator, PathsConnector
//	stats/:       outcome counters mirrored to Prometheus
//	config/:      YAML + .env configuration, slog logger construction
//	scenario/:    self-contained YAML scenarios and result rendering
//	cmd/roadref/: the roadref CLI
//
// Quick ASCII example:
//
//	  LRP0          LRP1          LRP2
//	a ──#1──▶ b ──#2──▶ c ──#3──▶ d ──#4──▶ e
//	  50m         50m       50m       40m
//
// Candidates [#1] and [#3] for a 150 m segment are bridged through #2 and
// accepted as [#1 #2 #3]; [#3] and [#4] share a junction and need no search.
//
// Fake edges are synthetic connectors added by the decoder at split points.
// A path that starts or ends on one is kept only as a fallback when no path
// over real roads fits.
//
//	go install github.com/katalvlaran/roadref/cmd/roadref@latest
package roadref
