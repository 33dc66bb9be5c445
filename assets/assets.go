// Package assets embeds the built-in level pack so the game runs without a
// level directory on disk.
package assets

import (
	"embed"
	"io/fs"
)

// LevelDir is the directory holding the built-in levels inside Levels().
const LevelDir = "levels"

//go:embed levels
var levelFS embed.FS

// Levels returns the embedded level files. Paths have the form
// "levels/<name>.txt".
func Levels() fs.FS {
	return levelFS
}
