// Package schemas embeds the JSON Schemas for externally supplied data
// tables so loaders can validate user-provided files without depending on
// the working directory.
package schemas

import _ "embed"

//go:embed gazetteer.schema.json
var gazetteerSchema []byte

//go:embed verb_tiers.schema.json
var verbTiersSchema []byte

// Gazetteer returns the JSON Schema for gazetteer data files.
func Gazetteer() []byte { return gazetteerSchema }

// VerbTiers returns the JSON Schema for verb-tier data files.
func VerbTiers() []byte { return verbTiersSchema }
