// Package render turns compiled motif rounds into chart artifacts.
//
// The package is a pure sink layer: it consumes []motif.Round and produces
// bytes in a concrete format. Geometry is never recomputed here; every
// position drawn comes straight from the compiled rounds.
//
// Three sinks are provided:
//   - RenderSVG: schematic vector chart (the primary format)
//   - RenderPNG: raster chart painted with fogleman/gg
//   - RenderJSON: the pattern document itself, for machine consumption
//
// Color assignment is injected via a palette.Mapper so the geometry core
// stays free of presentation policy.
package render
