// Package outline simplifies vector outlines made of cubic Bézier curves and
// redraws them as smooth paths.
//
// # Pipeline
//
// An outline is processed in four steps, each available on its own:
//
//   - Every curve is flattened to points by adaptive midpoint subdivision (see
//     [CubicBez.Flatten] and [FlattenOptions]).
//   - The points of all curves are concatenated, in input order and without
//     removing the duplicate point where two curves meet (see [Points]).
//   - The combined polyline is reduced with the Douglas-Peucker algorithm
//     (see [Simplify]).
//   - Smooth cubic Béziers are fitted through the remaining points using
//     Catmull-Rom style control points (see [Smooth]) and serialized as SVG
//     path data (see [SVG]).
//
// [Process] runs all steps with a given configuration, [Run] additionally
// hands the result to a [Sink].
//
// # Inputs
//
// Curves are read from an iter.Seq[CubicBez]. [Segments] and
// [VectorNetwork.Cubics] build them from vertices and tangent handles, the
// way design tools store vector networks, and [GeomSegments] reads paths of
// the seehuhn.de/go/geom/path package.
//
// # Numerics
//
// All functions are deterministic and free of shared state; tolerances are
// passed in explicitly. Inputs containing NaN are not rejected and may
// produce NaN coordinates in the output.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package outline
