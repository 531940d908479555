package terminal

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#9E9E9E"})

	collectionStyle = lipgloss.NewStyle()
	objectStyle     = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5F5F87", Dark: "#AFAFD7"})
	selectedStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"})
	disabledStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	activeMarker  = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD75F"}).
			Render("●")

	enumeratorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginRight(1)

	operatorIDStyle  = lipgloss.NewStyle().Bold(true)
	unavailableStyle = lipgloss.NewStyle().Faint(true)
)
