// Package diagnostic provides structured errors, warnings and informational
// findings produced while analyzing a mapping profile.
//
// Key capabilities:
//   - Circular dependency errors
//   - Deep dependency chain warnings
//   - Unresolved rule column and duplicate binding reports
//   - Flattening into plain message lists for UI surfacing
package diagnostic
