// Package sources wires the catalog adapters (BiblioCommons, Vega, browser scrape)
// into the source set the availability engine fans out to, and loads the library
// system table.
//
// # Systems file
//
// SOURCES_SYSTEMS_FILE may point at a YAML file replacing the built-in table:
//
//	systems:
//	  - id: sjpl
//	    systemName: San José Public Library
//	    apiId: sjpl
//	    kind: bibliocommons
//	    catalogUrl: https://sjpl.bibliocommons.com
//	    passes:
//	      - type: caState
//	        bibId: S156C6422417
package sources
