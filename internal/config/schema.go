package config

import (
	_ "embed"
)

//go:embed schema/build.cue
var buildSchemaCUE []byte
