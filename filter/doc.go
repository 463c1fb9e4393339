// Package filter implements the string transforms applied to snippet
// parameters.
//
// Parameter values arrive in a normalized form: lowercase words joined by
// hyphens ("icon-arrow-right"). A filter reshapes that form for the target
// language:
//
//	{{property.icon|pascal}}   -> IconArrowRight
//	{{property.icon|camel}}    -> iconArrowRight
//	{{property.icon|snake}}    -> icon_arrow_right
//	{{property.icon|constant}} -> ICON_ARROW_RIGHT
//	{{property.icon|hyphen}}   -> icon-arrow-right
//	{{property.icon|raw}}      -> Icon Arrow - Right
//
// The raw filter ignores the normalized value and returns the original
// display string. An unrecognized filter name joins the words with spaces.
//
// Normalize produces the hyphenated form from a display string, so callers
// holding only raw values can build the pair.
package filter
