// Package segmented provides a fixed-length, random-access array that stores
// its elements across power-of-two sized backing segments instead of a single
// contiguous block. It exists for the very large flat tables a compiler
// backend keeps resident (token streams, symbol tables, line-offset tables),
// where one huge allocation fragments the heap and defeats the allocator.
// Invariants:
//   - Segment size is a power of two greater than one, fixed at construction.
//   - Length equals the sum of segment lengths; all segments except the last
//     are full; a zero-length array owns zero segments.
//   - For every index i in [0, Len()): segment = i >> shift, offset = i & mask,
//     and that decomposition addresses exactly one storage cell.
//   - Length and segment identity never change after construction. Elements
//     stay mutable in place through At.
//   - Out-of-range access panics exactly like a plain slice does; structural
//     mutations (Append, Insert, ...) panic with ErrFixedSize.
//   - The zero value is a valid empty array.
package segmented
