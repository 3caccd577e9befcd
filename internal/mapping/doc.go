// Package mapping provides the mapping profile model and its YAML encoding.
//
// A mapping profile binds spreadsheet columns to ontology fields. Each field is
// identified by "entity.property" and may carry a business rule that computes
// its value from other columns.
//
// # Schema Overview
//
//	version: "1"
//	profile: plant-costing
//	mappings:
//	  - entity: WorkOrder
//	    property: machine
//	    display_name: Machine
//	    csv_column: machine_id
//	  - entity: WorkOrder
//	    property: scrapRate
//	    csv_column: scrap_rate
//	    business_rule:
//	      type: lookup
//	      config:
//	        source_field: machine_id
//	        lookup_table:
//	          MACHINE-A: "2.0"
//	        default_value: "0"
//	  - entity: Labor
//	    property: shiftPremium
//	    business_rule:
//	      type: conditional
//	      config:
//	        conditions:
//	          - field: shift_start
//	            operator: ">="
//	            value: "18:00"
//	            result: "1.5"
//	            label: Night shift
//	        default_value: "1.0"
//
// # Rule References
//
// Rule source fields name CSV columns, not field ids. Resolution of a column to
// the field bound to it is done by the dependency graph, first match wins.
package mapping
