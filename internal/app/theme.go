package app

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	companyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	helpStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tabStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tabActiveStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236")).Bold(true)
	bannerInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Padding(0, 1)
	bannerWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("136")).Padding(0, 1)
	sectionTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	kpiValueStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	kpiDeltaUpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("70"))
	kpiDeltaDownStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	userBubbleStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	replyBubbleStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	chipStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 1)
	followUpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	transportStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1)
	narrationStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true)
	markerDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("70"))
	markerCurrentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Bold(true)
	markerPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pickerTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	pickerGroupStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
	pickerItemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pickerCursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
)
