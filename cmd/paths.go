package cmd

import m "github.com/mouse-blink/bva/internal/model"

// parsePaths converts CLI arguments into paths, defaulting to the current
// directory.
func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
