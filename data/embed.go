// Package data embeds the keyword resources of the recognition engine.
package data

import _ "embed"

// Schemes is the line-delimited list of generic URI scheme keywords.
//
//go:embed schemes.txt
var Schemes string
