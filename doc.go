// Package aadraw draws anti-aliased filled circles and straight strokes
// directly into RGBA pixel buffers.
//
// # Overview
//
// Coverage is analytic rather than supersampled: each pixel is sampled at
// its centre, and across the one-pixel band around a shape's boundary the
// coverage falls off linearly with the distance from the edge (see
// [Coverage]). Each primitive is first rasterized into a [Patch], a small
// pixmap that spans only the primitive's bounding box, which is then
// composited onto the destination with straight-alpha source-over.
//
// # Quick Start
//
//	pm := aadraw.NewPixmap(200, 200)
//	red := aadraw.MustParseColor("red")
//
//	_ = aadraw.DrawCircle(pm, aadraw.Pt(100, 100), 40, red, aadraw.AntiAliasAccurate)
//	_ = aadraw.DrawLine(pm, aadraw.Seg(10, 10, 190, 60), 3, red, aadraw.AntiAliasAccurate)
//
//	_ = pm.SavePNG("out.png")
//
// # Quality tiers
//
// Every draw call takes an [AntiAlias] tier:
//   - AntiAliasOff: plain non-anti-aliased fill or stroke
//   - AntiAliasFast: circles only; a cached stamp snapped to whole pixels
//   - AntiAliasAccurate: exact sub-pixel rasterization
//
// # Compositing
//
// [MixColor] is the colour algebra behind the composite: it scales a
// foreground's alpha by a coverage value and lays it over a translucent
// background, so overlapping translucent primitives accumulate correctly.
// [Mix] is the plain linear interpolation for opaque backgrounds.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Pixel (i, j) covers [i, i+1) x [j, j+1); its centre is (i+0.5, j+0.5)
//
// # Concurrency
//
// Rasterizing is free of shared state except for the canonical stamp cache,
// which is safe for concurrent use. Drawing into one destination from
// several goroutines must be serialized by the caller.
package aadraw
