package main

import "github.com/andareed/siftly-sheetchart/render"

// chartLayout is where a chart was drawn during the last View.
type chartLayout struct {
	geom render.Geometry
}

type hoverState struct {
	key   string
	index int // record under the pointer
	ok    bool
}

type uiState struct {
	mode        mode
	command     CommandInput
	noticeMsg   string
	noticeType  string
	noticeSeq   int
	searchQuery string
	searchFrom  int // last match, -1 before the first
	focus       int // index into charts.All()
	hover       hoverState
	dragKey     string // chart being panned with the mouse
	layouts     map[string]chartLayout
	rangeWindow rangeWindowUI
}
