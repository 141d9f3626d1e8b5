package main

import "github.com/charmbracelet/lipgloss"

const (
	titleFGColor        = "#e0e0e0"
	titleFocusFGColor   = "#ff9f1c"
	dimFGColor          = "#8a8a8a"
	legendHiddenFGColor = "#5a5a5a"
	axisFGColor         = "#707070"
	errorFGColor        = "#ff6b6b"
)

var (
	// Styles
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	chartTitleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(titleFGColor)).Bold(true)
	chartTitleFocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(titleFocusFGColor)).Bold(true)
	statusStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color(dimFGColor))
	hintStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color(dimFGColor)).Faint(true)
	legendHiddenStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(legendHiddenFGColor))
	readoutStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color(titleFGColor))
	errorStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color(errorFGColor))

	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(axisFGColor))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(dimFGColor))

	chartBlock = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0).BorderLeft(true).BorderRight(false).BorderTop(false).BorderBottom(false)

	chartFocusBlock = chartBlock.BorderForeground(lipgloss.Color(titleFocusFGColor))

	rangeWindowArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 0).BorderLeft(true)

	dropzoneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 4)
)

const (
	eyeOpen   = "●"
	eyeClosed = "○"
)
