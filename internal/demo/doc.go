// Package demo wires each catalog library to its dataset, schema and view
// controls, and opens interactive sessions over them.
//
// A Demo is static configuration. Demo.Open generates a fresh dataset and
// returns a Session that owns it; sessions never share records, so any
// number of them can be open at once in separate goroutines.
package demo
