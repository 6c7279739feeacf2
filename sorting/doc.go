// Package sorting implements the six comparison sorts as step generators.
//
// Every function sorts its argument ascending, in place, and returns the
// complete step.Log of the run:
//
//	Bubble, Insertion, Selection  O(n²)
//	Quick                         O(n log n) average, Lomuto partition, pivot = last
//	Merge                         O(n log n), top-down, stable
//	Heap                          O(n log n), bottom-up max-heap
//
// Contract
//
//   - Swap and Merge steps carry the array as it is after the write.
//   - The Sorted steps of a log name every index exactly once.
//   - On error (cancellation or an observer failure) no log is returned and
//     the slice is left partially sorted.
package sorting
