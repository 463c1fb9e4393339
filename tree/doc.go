// Package tree is an in-memory snapshot of a design document.
//
// A Document implements snippet.Host and snippet.SVGExporter, and its
// nodes implement snippet.Node, so a snapshot can be rendered without a
// live design tool. Snapshots are written as YAML, JSON, JSONC, or TOML:
//
//	nodes:
//	  - id: "1:1"
//	    type: COMPONENT_SET
//	    name: Button
//	    key: 7e95f3069ff381e6d1ea1e34d13d82045be8e249
//	    children:
//	      - id: "1:2"
//	        type: COMPONENT
//	        name: Size=Small
//	  - id: "2:1"
//	    type: FRAME
//	    name: Buttons Frame
//	    params:
//	      autolayout.layoutMode: vertical
//	    paramsRaw:
//	      autolayout.layoutMode: VERTICAL
//	    children:
//	      - id: "2:2"
//	        type: INSTANCE
//	        mainComponent: "1:2"
//	        templates:
//	          - title: React
//	            language: JAVASCRIPT
//	            code: <Button />
//
// Parameters are taken from the snapshot as given. When only a raw value
// is supplied, the normalized value is derived from it. The node.* and
// component.* parameters are filled in from the node itself when absent.
package tree
