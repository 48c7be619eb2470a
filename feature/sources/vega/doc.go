// Package vega reads pass availability from a Vega discovery catalog.
//
// Vega addresses catalog records by format-group UUID, which is a different id space
// from the numeric catalog ids shown to patrons. The source therefore requires a
// configured format-group UUID and does not try to derive one from a bib id.
package vega
