package main

import (
	"github.com/andareed/siftly-sheetchart/charts"
	"github.com/andareed/siftly-sheetchart/ingest"
)

type dataState struct {
	charts   *charts.Manager
	locale   ingest.Locale
	palette  []string
	path     string // last file handed to the loader
	loading  bool
	loadErr  string // user-facing message of the last failed load
	lastDir  string
	exportWH [2]int
}
