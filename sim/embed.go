package sim

import _ "embed"

//go:embed scripts/demo.yaml
var demoScript []byte

// Demo is the built-in script used when none is given.
func Demo() (*Script, error) {
	return ParseScript(demoScript)
}
