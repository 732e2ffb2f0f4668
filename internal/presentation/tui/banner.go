package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the Splint ASCII banner with the library version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Subtle gradient-like color scheme (Teal/Cyan)
	s1 := termenv.String("            _ _       _   ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("  ___ _ __ | (_)_ __ | |_ ").Foreground(p.Color("#22d3ee"))
	s3 := termenv.String(" / __| '_ \\| | | '_ \\| __|").Foreground(p.Color("#38bdf8"))
	s4 := termenv.String(" \\__ \\ |_) | | | | | | |_ ").Foreground(p.Color("#60a5fa"))
	s5 := termenv.String(" |___/ .__/|_|_|_| |_|\\__|").Foreground(p.Color("#818cf8"))
	s6 := termenv.String("      |_|").Foreground(p.Color("#a78bfa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Printf("%s  v%s\n", s6, strings.TrimSpace(version))
	fmt.Println()
}
