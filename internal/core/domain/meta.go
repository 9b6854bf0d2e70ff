package domain

// Tool metadata printed by the version, plugins and help screens.
var (
	ProjectName = "czokomaster"
	Version     = "1.1" // Overridden by ldflags
	Copyright   = "Copyright (c) 2012 Mikolaj Romel"
)

// DefaultConfigPath is used when CZOKOMASTER_CONFIG is not set.
const DefaultConfigPath = "/usr/local/etc/czokomaster.conf"

// DefaultJailExec runs a command inside a named sub-environment.
const DefaultJailExec = "jexec"
