package ui

import (
	"fmt"
	"strings"

	"github.com/vietdv277/awsctx/internal/profile"
)

// PrintProfileTable prints profiles in a styled table. Access keys are
// always masked.
func PrintProfileTable(profiles []profile.Entry, activeProfile string, favorites map[string]string) {
	headers := []string{"", "Name", "Region", "Access Key"}

	// Calculate name column width
	nameWidth := len(headers[1])
	for _, p := range profiles {
		if len(p.Name) > nameWidth {
			nameWidth = len(p.Name)
		}
	}

	colWidths := []int{3, nameWidth, 20, 16}

	var sb strings.Builder

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	for i, w := range colWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(colWidths)-1 {
			sb.WriteString(BorderStyle.Render(TopT))
		}
	}
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range headers {
		cell := " " + padRight(h, colWidths[i]) + " "
		sb.WriteString(HeaderStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	// Header separator
	sb.WriteString(BorderStyle.Render(LeftT))
	for i, w := range colWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(colWidths)-1 {
			sb.WriteString(BorderStyle.Render(Cross))
		}
	}
	sb.WriteString(BorderStyle.Render(RightT))
	sb.WriteString("\n")

	// Data rows
	for _, p := range profiles {
		sb.WriteString(BorderStyle.Render(Vertical))

		// Active / favorite indicator
		marker := "   "
		markerStyle := MutedStyle
		if p.Name == activeProfile {
			marker = " ● "
			markerStyle = ActiveStyle
		} else if color, ok := favorites[p.Name]; ok {
			marker = " * "
			markerStyle = FavoriteStyle(color)
		}
		sb.WriteString(markerStyle.Render(padRight(marker, colWidths[0]+2)))
		sb.WriteString(BorderStyle.Render(Vertical))

		// Name
		cell := " " + padRight(p.Name, colWidths[1]) + " "
		if p.Name == activeProfile {
			sb.WriteString(ActiveStyle.Render(cell))
		} else if color, ok := favorites[p.Name]; ok {
			sb.WriteString(FavoriteStyle(color).Render(cell))
		} else {
			sb.WriteString(NameStyle.Render(cell))
		}
		sb.WriteString(BorderStyle.Render(Vertical))

		// Region
		region := p.Region
		if region == "" {
			region = "-"
		}
		cell = " " + padRight(region, colWidths[2]) + " "
		sb.WriteString(MutedStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		// Access key (masked)
		cell = " " + padRight(p.MaskedKeyID(), colWidths[3]) + " "
		sb.WriteString(MutedStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	for i, w := range colWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(colWidths)-1 {
			sb.WriteString(BorderStyle.Render(BottomT))
		}
	}
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	fmt.Print(sb.String())
	fmt.Printf("  %d profiles\n", len(profiles))
}
