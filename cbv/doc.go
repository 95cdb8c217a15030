// Package cbv aligns cotrending basis vectors to the cadence grid of an
// arbitrary light curve.
//
// A [Table] holds one row per telescope cadence: an integer cadence
// number, a timestamp, one amplitude per basis vector, and a gap flag
// marking rows that were filled rather than observed. Tables are immutable
// once constructed; [Align] and [Interpolate] are pure functions that
// produce new tables matching a [TargetGrid] row for row.
//
//   - [Align] matches rows by exact cadence number. Target cadences absent
//     from the source table become NaN rows with the gap flag set.
//   - [Interpolate] ignores cadence numbers and resamples every basis
//     vector at the target timestamps with a shape-preserving monotone
//     cubic (see the interp package). Out-of-range timestamps are either
//     extrapolated from the boundary segment or zero-filled, and always
//     carry the gap flag.
//
// Basis vectors use the mission convention of 1-based indexing:
// [Table.Vector] with index 1 returns the first basis vector.
package cbv
