// Package config loads the optional neumorph.yaml project file.
package config
