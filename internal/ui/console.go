// Package ui renders search progress and results on an ANSI terminal.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vanityforge/vanityforge/pkg/search"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// PrintSearchInfo displays the search configuration before the run.
func PrintSearchInfo(network, rawPattern string, workers int, difficulty uint64) {
	fmt.Printf("\n    %s🚀 SEARCHING%s %s%s%s%s on %s %s(%d workers, ~1/%s)%s\n\n",
		ColorGreen+ColorBold, ColorReset,
		ColorBold, ColorCyan, rawPattern, ColorReset,
		network,
		ColorDim, workers, FormatNumber(difficulty), ColorReset)
}

// PrintProgress shows the animated progress line for one snapshot.
func PrintProgress(snap search.Snapshot, difficulty uint64, frame int) {
	spinners := []string{"◐", "◓", "◑", "◒"}
	spinner := spinners[frame%len(spinners)]

	diff := float64(difficulty)
	if diff == 0 {
		diff = 1
	}
	ratio := float64(snap.Attempts) / diff
	progress := 1.0 - math.Pow(0.5, 2.0*ratio)

	barWidth := 40
	filled := int(progress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("▓", filled) + strings.Repeat("░", barWidth-filled)

	fmt.Printf("\r    %s%s%s %s%s%s %s%s%s │ %s%s%s │ %s≈%s%s │ %s",
		ColorCyan, spinner, ColorReset,
		ColorDim, bar, ColorReset,
		ColorGreen+ColorBold, FormatRate(snap.Rate), ColorReset,
		ColorYellow, FormatNumber(snap.Attempts), ColorReset,
		ColorPurple, FormatNumber(snap.RelaxedMatches), ColorReset,
		FormatDuration(snap.Duration))
}

// PrintSuccess shows the found address and its statistics.
func PrintSuccess(network string, result search.Result) {
	fmt.Printf("\n    %s%s╔══════════════════════════════════════════════════════════╗%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Printf("    %s%s║               ✨ ADDRESS FOUND! ✨                       ║%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Printf("    %s%s╚══════════════════════════════════════════════════════════╝%s\n\n", ColorGreen, ColorBold, ColorReset)

	fmt.Printf("    %s📍 %s ADDRESS%s\n\n", ColorCyan+ColorBold, strings.ToUpper(network), ColorReset)
	fmt.Printf("       %s%s%s%s\n\n", ColorGreen, ColorBold, result.Address, ColorReset)

	fmt.Printf("    %s🔑 PRIVATE KEY%s\n", ColorPurple+ColorBold, ColorReset)
	fmt.Printf("       %s%s%s\n\n", ColorYellow, result.PrivateKey, ColorReset)

	fmt.Printf("    %s⏱   %s%s   %s│   %s📊  %s%s%s\n",
		ColorCyan, ColorReset+ColorBold, FormatDuration(result.Duration),
		ColorDim,
		ColorPurple, ColorReset+ColorBold, FormatNumber(result.Attempts),
		ColorReset)
	if result.SavedTo != "" {
		fmt.Printf("    %s💾  %s%s%s\n", ColorYellow, ColorReset+ColorBold, result.SavedTo, ColorReset)
	}
	if result.SaveErr != nil {
		fmt.Printf("    %s⚠ Save failed: %v%s\n", ColorYellow, result.SaveErr, ColorReset)
	}
	fmt.Printf("\n    %s%s⚠  KEEP YOUR PRIVATE KEY SECRET!%s\n", ColorRed, ColorBold, ColorReset)
}

// PrintCancelled shows the partial statistics of a cancelled search.
func PrintCancelled(result search.Result) {
	fmt.Printf("\n    %s⚠ Cancelled%s │ %s attempts │ %s\n",
		ColorYellow+ColorBold, ColorReset,
		FormatNumber(result.Attempts),
		FormatDuration(result.Duration))
}

// ClearLine clears the current line.
func ClearLine() {
	fmt.Print("\r                                                                                              \r")
}

// FormatRate formats an attempts-per-second rate.
func FormatRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatNumber adds commas to large numbers.
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatDuration formats a duration in a human-readable way.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
