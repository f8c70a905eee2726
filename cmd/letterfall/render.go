package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/letterfall/game"
)

// Board placement on screen.
const (
	boardLeft = 2
	boardTop  = 3
)

func styleFor(sym game.Symbol) tcell.Style {
	switch sym {
	case 'A':
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case 'B':
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case 'C':
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorPurple)
	}
}

func (a *app) draw() {
	a.screen.Clear()

	s := a.session
	cursorStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	// Cursor marker above the board, the original's "|" over "v".
	a.screen.SetContent(boardLeft+s.Cursor(), boardTop-2, '|', nil, cursorStyle)
	a.screen.SetContent(boardLeft+s.Cursor(), boardTop-1, 'v', nil, cursorStyle)

	for row, cells := range s.Snapshot() {
		for col, sym := range cells {
			r := '_'
			style := tcell.StyleDefault.Foreground(tcell.ColorGray)
			if sym != game.Empty {
				r = rune(sym)
				style = styleFor(sym)
			}
			a.screen.SetContent(boardLeft+col, boardTop+row, r, nil, style)
		}
	}

	// And mirrored below.
	a.screen.SetContent(boardLeft+s.Cursor(), boardTop+s.Height(), '^', nil, cursorStyle)
	a.screen.SetContent(boardLeft+s.Cursor(), boardTop+s.Height()+1, '|', nil, cursorStyle)

	infoLeft := boardLeft + s.Width() + 4
	letterStyle := styleFor(s.CurrentLetter())
	drawText(a.screen, infoLeft, boardTop, tcell.StyleDefault, "Current Letter: ")
	drawText(a.screen, infoLeft+16, boardTop, letterStyle, s.CurrentLetter().String())
	drawText(a.screen, infoLeft, boardTop+1, tcell.StyleDefault, fmt.Sprintf("Turn:  %d", s.Turn()))
	drawText(a.screen, infoLeft, boardTop+2, tcell.StyleDefault, fmt.Sprintf("Score: %d", s.Score()))

	help := "h/l move   i drop   x quit"
	drawText(a.screen, boardLeft, boardTop+s.Height()+3, tcell.StyleDefault.Foreground(tcell.ColorGray), help)

	a.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
