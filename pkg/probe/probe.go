// Package probe reads best-effort file metadata for the overlay. Nothing here
// returns an error: a failed lookup yields a sentinel value instead.
package probe

import (
	"os"
	"strings"
	"time"
)

const (
	// UnknownSize is reported by SizeKB when the file cannot be stat'ed.
	UnknownSize = -1.0
	// Unavailable is reported by ModTime when the file cannot be stat'ed.
	Unavailable = "Unavailable"
	// NoLocation is the fixed location line. GPS extraction is not implemented.
	NoLocation = "Location: Unavailable"

	// TimeLayout matches C ctime(3) output without its trailing newline.
	TimeLayout = time.ANSIC
)

// Metadata is gathered once per run and read-only afterwards.
type Metadata struct {
	SizeKB   float64
	Modified string
	Exists   bool
}

// Probe collects existence, size and modification time for path.
func Probe(path string) Metadata {
	return Metadata{
		SizeKB:   SizeKB(path),
		Modified: ModTime(path),
		Exists:   Exists(path),
	}
}

// Exists reports whether path can be opened for reading.
func Exists(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// SizeKB returns the file size in kilobytes, or UnknownSize.
func SizeKB(path string) float64 {
	fi, err := os.Stat(path)
	if err != nil {
		return UnknownSize
	}
	return float64(fi.Size()) / 1024.0
}

// ModTime returns the last-modified time in local time, or Unavailable.
func ModTime(path string) string {
	fi, err := os.Stat(path)
	if err != nil {
		return Unavailable
	}
	return strings.TrimSuffix(fi.ModTime().Local().Format(TimeLayout), "\n")
}

// Location is a stub; it always returns NoLocation.
func Location(string) string {
	return NoLocation
}
