package config

import yaml "gopkg.in/yaml.v3"

// Specification of requested output type.
// ENUM(html, json)
type OutputFmt int

func (o OutputFmt) TreeOnly() bool {
	return o == OutputFmtJson
}

// yaml.v3 does not consult encoding.TextUnmarshaler, so the generated text
// methods are bridged here to keep "format: html" readable in config files.
func (o OutputFmt) MarshalYAML() (any, error) {
	return o.String(), nil
}

func (o *OutputFmt) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	return o.UnmarshalText([]byte(name))
}
