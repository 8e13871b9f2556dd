package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

var playerColors = []string{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorCyan}

var terrainSymbols = map[catalog.Terrain]byte{
	catalog.Plains:    '.',
	catalog.Road:      '=',
	catalog.Forest:    'f',
	catalog.Hills:     'n',
	catalog.Mountains: 'M',
	catalog.Swamp:     '%',
	catalog.Beach:     ',',
	catalog.Shallows:  '-',
	catalog.Sea:       '~',
	catalog.Bridge:    '#',
	catalog.City:      'C',
	catalog.Base:      'B',
	catalog.Airport:   'A',
	catalog.Port:      'P',
	catalog.HQ:        'H',
}

var unitSymbols = map[catalog.UnitType]byte{
	catalog.Infantry:       'i',
	catalog.BazookaTrooper: 'b',
	catalog.Scout:          's',
	catalog.Tank:           't',
	catalog.HeavyTank:      'T',
	catalog.Artillery:      'a',
	catalog.AntiAir:        'x',
	catalog.APC:            'c',
	catalog.Helicopter:     'h',
	catalog.Fighter:        'F',
	catalog.Bomber:         'K',
	catalog.Cruiser:        'r',
	catalog.Submarine:      'u',
	catalog.LanderShip:     'l',
}

// Render draws the map as skewed rows so that hex neighbours touch. Units
// are drawn over terrain; with color each owner gets its own ANSI color.
func (g *Game) Render(color bool) string {
	r := g.bounds
	width := r.Max.X - r.Min.X + 1
	height := r.Max.Y - r.Min.Y + 1

	var sb strings.Builder
	sb.Grow((width*12 + height + 8) * (height + 2))

	for y := r.Min.Y; y <= r.Max.Y; y++ {
		fmt.Fprintf(&sb, "%3d ", y)
		sb.WriteString(strings.Repeat(" ", y-r.Min.Y))
		for x := r.Min.X; x <= r.Max.X; x++ {
			t, ok := g.TileAt(core.Position{X: x, Y: y})
			if !ok {
				sb.WriteString("  ")
				continue
			}
			symbol, owner := terrainSymbols[t.Terrain], t.Owner
			if u, ok := g.UnitAt(t.Position); ok {
				symbol, owner = unitSymbols[u.Type], u.Owner
			}
			if symbol == 0 {
				symbol = '?'
			}
			if color {
				sb.WriteString(playerColor(owner))
				sb.WriteByte(symbol)
				sb.WriteString(ColorReset)
			} else {
				sb.WriteByte(symbol)
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n.=plains ==road f=forest n=hills M=mountains ~=sea C=city B=base A=airport P=port H=HQ, other letters=units\n")
	return sb.String()
}

func playerColor(owner core.PlayerNumber) string {
	if owner == core.Neutral {
		return ColorGray
	}
	i := int(owner) - 1
	if i >= 0 && i < len(playerColors) {
		return playerColors[i]
	}
	return ColorWhite
}
