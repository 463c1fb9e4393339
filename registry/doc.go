// Package registry loads and stores shared snippet templates.
//
// A registry document maps component keys and node types to template
// definitions:
//
//	{
//	  "components": {
//	    "7e95f3069ff381e6d1ea1e34d13d82045be8e249": [
//	      {"title": "React", "language": "JAVASCRIPT", "code": "<Button />"}
//	    ]
//	  },
//	  "types": {
//	    "TEXT": [
//	      {"title": "React", "language": "JAVASCRIPT", "code": "<Typography>{{node.characters|raw}}</Typography>"}
//	    ],
//	    "DEFAULT": [
//	      {"title": "Name", "language": "PLAINTEXT", "code": "{{node.name}}"}
//	    ]
//	  }
//	}
//
// Documents may be written as JSON, JSONC (JSON with comments and trailing
// commas), YAML, or TOML. The format is chosen by file extension. Unknown
// keys are rejected in every format.
//
// The package also encodes the node-local form of templates, a JSON array
// of definitions stored on a single node. Malformed node-local data decodes
// to no templates rather than an error so that one bad node never breaks a
// render.
package registry
