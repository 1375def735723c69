/*
Package msxgfx is a library for converting uncompressed 24-bit BMP images into
MSX screen and sprite data, either as assembler data declarations or as SIF
files.

Each pixel is first classified into a palette index using a conversion table,
then the indices are packed according to the chosen output type.
*/
package msxgfx

import (
	"io/ioutil"
	"log"
)

// Converter runs conversions, optionally consulting a cache of previous
// results.
type Converter struct {
	cache  *Cache
	logger *log.Logger
	warn   *log.Logger
}

// New returns a Converter. The cache may be nil. Progress is written to
// logger and warnings to warn; either may be nil to discard.
func New(cache *Cache, logger, warn *log.Logger) *Converter {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	if warn == nil {
		warn = log.New(ioutil.Discard, "", 0)
	}
	return &Converter{
		cache:  cache,
		logger: logger,
		warn:   warn,
	}
}
