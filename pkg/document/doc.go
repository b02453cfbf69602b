// Package document reads tooltip documents: YAML (or JSON) files that
// describe a tooltip model, the strategy to render it and config overrides.
//
//	strategy: series
//	model:
//	  title: Revenue
//	  items:
//	    - {name: North, value: 12, color: "#1f77b4"}
//	config:
//	  iconContainerSize: 14
//
// Pre-built rows bypass strategies:
//
//	displayFormat: table
//	rows:
//	  - [Region, Sales]
//	  - [{type: icon, shape: square, size: 40, color: red}, 12]
package document
