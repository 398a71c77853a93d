package ui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/internal/utils"
)

const bannerText = `
 _                                    _
| | __ _ _ __   __ _ ___  __ _| | __ _ _ __ _   _
| |/ _' | '_ \ / _' / __|/ _' | |/ _' | '__| | | |
| | (_| | | | | (_| \__ \ (_| | | (_| | |  | |_| |
|_|\__,_|_| |_|\__, |___/\__,_|_|\__,_|_|   \__, |
               |___/                        |___/
 salary statistics for programming languages
`

// ColorizeText applies a random color fade to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	runes := []rune(text)
	half := len(runes) / 2
	if half == 0 {
		return text
	}

	var coloredText string
	for i, r := range runes {
		coloredText += startColor.Fade(0, float32(len(runes)), float32(i%half), endColor).Sprint(string(r))
	}
	return coloredText
}

// PrintBanner displays the application banner
func PrintBanner(w io.Writer, silence bool) {
	if !silence {
		fmt.Fprintln(w, ColorizeText(bannerText))
	}
}

// ColorizeSalary formats an average salary and tints it by band
func ColorizeSalary(amount int, humanize bool) string {
	formatted := fmt.Sprintf("%d", amount)
	if humanize {
		formatted = utils.FormatRubles(amount)
	}

	switch {
	case amount >= 300000:
		return pterm.Green(formatted)
	case amount >= 200000:
		return pterm.LightGreen(formatted)
	case amount >= 100000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
