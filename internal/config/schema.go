package config

import (
	_ "embed"
)

//go:embed schema/config.cue
var configSchemaCUE []byte

// defaultConfigHeader is written above the YAML body by `crc config init`.
const defaultConfigHeader = `# crc project configuration.
# Values can be overridden with CRC_* environment variables and CLI flags.
`
