package render

// Cell is one terminal character with explicit colors
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}
