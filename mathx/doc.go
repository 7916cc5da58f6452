// Package mathx collects the small numeric and sequence helpers shared by
// the puzzle solutions: lazy integer ranges, running folds, GCD/LCM,
// floored modulo, truncated DivMod and Manhattan distances.
//
// Everything here is stateless and allocation-free unless stated otherwise.
//
// Complexity:
//
//   - Range, Cumulative: O(1) per yielded element.
//   - GCD, LCM:          O(log min(a, b)).
//   - LCMAll:            O(n·log max).
package mathx
