package output

import (
	"fmt"
	"strings"
)

const barWidth = 20

// FormatProgressLine renders "Downloading: [====      ]  40%". One '=' per
// 5 percent; percent is clamped to [0,100].
func FormatProgressLine(percent int) string {
	percent = max(0, min(percent, 100))
	filled := percent / 5
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled)
	return fmt.Sprintf("Downloading: [%s] %3d%%", bar, percent)
}
