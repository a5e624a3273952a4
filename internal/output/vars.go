package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // cyan
	barColor      = lipgloss.Color("10")                                 // bright green
	finishedColor = lipgloss.Color("12")                                 // bright blue
)

func PrintError(text string) {
	fmt.Println(errorStyle.Render(text))
}
func PrintWarning(text string) {
	fmt.Println(warningStyle.Render(text))
}
func FPrompt(text string) string {
	return promptStyle.Render(text)
}
