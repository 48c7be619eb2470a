// Package bibliocommons reads pass availability from the BiblioCommons gateway.
//
// The gateway answers GET /v2/libraries/{apiId}/bibs/{bibId}/availability with a map of
// item records under entities.bibItems. Each item names its branch (branchName, falling
// back to location.name) and carries availability.status; "AVAILABLE" counts as an
// available copy. Items are grouped by verbatim branch name; matching names to
// canonical locations is left to the resolver.
package bibliocommons
