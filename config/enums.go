package config

import "github.com/klauspost/compress/flate"

//go:generate go tool go-enum --marshal --names

// Compression of produced archives.
// ENUM(default, fastest, best, store)
type Compression int

// Level returns flate compression level.
func (c Compression) Level() int {
	switch c {
	case CompressionFastest:
		return flate.BestSpeed
	case CompressionBest:
		return flate.BestCompression
	case CompressionStore:
		return flate.NoCompression
	default:
		return flate.DefaultCompression
	}
}
