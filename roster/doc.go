// Package roster loads, validates, and persists the CSV files surrounding
// an assignment run.
//
// Three files are involved:
//
//   - Employee list: Employee_Name,Employee_EmailID
//   - Previous assignments: Employee_Name,Employee_EmailID,Secret_Child_Name,Secret_Child_EmailID
//   - Output assignments: same four columns as previous assignments
//
// The loader is the validation boundary: it rejects malformed employee
// files (missing columns, empty names, bad emails, duplicate addresses)
// before anything reaches the engine. History is treated more leniently,
// matching long-lived deployments: a missing previous-assignments file
// means an empty history, and malformed history rows are skipped with a
// warning rather than failing the run.
package roster
