package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// BuildPreviewTable lays out a fixture head: a fixed header row and a row
// number column, followed by the data records.
func BuildPreviewTable(header []string, rows [][]string) *tview.Table {
	table := tview.NewTable().
		SetBorders(false).
		SetFixed(1, 1).
		SetSelectable(true, false)

	table.SetCell(0, 0, tview.NewTableCell("#").
		SetTextColor(tcell.ColorYellow).
		SetSelectable(false))
	for c, name := range header {
		table.SetCell(0, c+1, tview.NewTableCell(name).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}

	for r, record := range rows {
		table.SetCell(r+1, 0, tview.NewTableCell(fmt.Sprintf("%d", r+1)).
			SetTextColor(tcell.ColorDarkCyan).
			SetSelectable(false))
		for c, value := range record {
			table.SetCell(r+1, c+1, tview.NewTableCell(value).
				SetTextColor(tview.Styles.PrimaryTextColor))
		}
	}

	return table
}

// Preview shows a fixture head in an interactive table until q, Esc or Ctrl+C.
func Preview(title string, header []string, rows [][]string) error {
	app := tview.NewApplication()
	table := BuildPreviewTable(header, rows)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %s (%d columns, first %d rows) | Use ↑↓←→ to scroll, [yellow]q[white] to exit ", title, len(header), len(rows)))

	table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEsc, tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(table, 0, 1, true)

	return app.SetRoot(layout, true).EnableMouse(true).Run()
}
