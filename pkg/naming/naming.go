package naming

import "strings"

// Suffix is inserted before the extension of every derived output path.
const Suffix = "_bw"

// DeriveOutputName inserts Suffix before the last "." of path, or appends it
// when path has no ".". The whole string is searched, directory part included.
func DeriveOutputName(path string) string {
	dot := strings.LastIndex(path, ".")
	if dot < 0 {
		return path + Suffix
	}
	return path[:dot] + Suffix + path[dot:]
}
