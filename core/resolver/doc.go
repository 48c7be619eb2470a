// Package resolver maps the branch names reported by upstream catalogs to canonical
// location ids of the registry.
//
// Each source family names branches its own way ("Almaden", "ALMADEN BRANCH",
// "Almaden Library"). The resolver owns the alias table between the short system codes the
// adapters use and the canonical system names, and applies a fixed priority of matching
// rules. An unmatched name is reported as not found; callers drop such items.
package resolver
