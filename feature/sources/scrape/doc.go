// Package scrape reads pass availability from a public catalog page with a headless
// browser, for systems whose catalog has no usable API.
//
// The page markup is not under our control, so nothing here depends on DOM structure:
// the visible text of the page is matched against a few phrases ("Available",
// "On shelf", "N copies", "N of M available"). Each scrape runs in its own browser
// session which is always closed before the call returns.
//
// A failed scrape is not "zero copies". The Source reports it as a Check Library fact so
// the merged record tells the user to ask the branch.
package scrape
