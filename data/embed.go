// Package data holds the JSON files compiled into the amaze binary.
package data

import "embed"

// dataFS embeds all JSON files from the data directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// FS returns the embedded filesystem containing palette data.
func FS() embed.FS {
	return dataFS
}
