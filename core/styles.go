package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	breadcrumbStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorMantle)

	categoryOnStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Underline(true)
	categoryOffStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	attrStyle         = lipgloss.NewStyle().Foreground(colorText)
	attrSelectedStyle = lipgloss.NewStyle().Reverse(true)
	attrPrivateStyle  = lipgloss.NewStyle().Foreground(colorMuted)

	sentinelStyle = lipgloss.NewStyle().Foreground(colorError).Italic(true)
	typeStyle     = lipgloss.NewStyle().Foreground(colorSuccess)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
