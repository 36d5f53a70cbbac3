package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/kallisti-dev/word24asm/assemble"
)

// Browser is a read-only text user interface over one file's completed
// assemble.Result: a symbol table, an object listing, and the entry/extern
// lists, navigable with arrow keys. Unlike the interactive emulator debugger
// this is adapted from, there is no live CPU state to single-step through;
// every panel is a static snapshot of the translation's output.
type Browser struct {
	File   string
	Result assemble.Result

	App   *tview.Application
	Pages *tview.Pages

	MainLayout  *tview.Flex
	SymbolTable *tview.Table
	ListingView *tview.Table
	EntExtView  *tview.TextView
	StatusView  *tview.TextView
}

// NewBrowser builds a Browser over a completed, successful assembly of file.
func NewBrowser(file string, result assemble.Result) *Browser {
	b := &Browser{
		File:   file,
		Result: result,
		App:    tview.NewApplication(),
	}

	b.initializeViews()
	b.buildLayout()
	b.setupKeyBindings()
	b.populate()

	return b
}

func (b *Browser) initializeViews() {
	b.SymbolTable = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)
	b.SymbolTable.SetBorder(true).SetTitle(" Symbols ")

	b.ListingView = tview.NewTable().
		SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0)
	b.ListingView.SetBorder(true).SetTitle(" Listing ")

	b.EntExtView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(false)
	b.EntExtView.SetBorder(true).SetTitle(" Entry / Extern ")

	b.StatusView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(false)
	b.StatusView.SetBorder(true).SetTitle(" Status ")
}

func (b *Browser) buildLayout() {
	leftPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(b.ListingView, 0, 3, false).
		AddItem(b.SymbolTable, 0, 2, true)

	rightPanel := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(b.EntExtView, 0, 2, false).
		AddItem(b.StatusView, 3, 0, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(leftPanel, 0, 2, true).
		AddItem(rightPanel, 0, 1, false)

	b.MainLayout = mainContent
	b.Pages = tview.NewPages().AddPage("main", b.MainLayout, true, true)
}

func (b *Browser) setupKeyBindings() {
	b.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			b.cycleFocus()
			return nil
		case tcell.KeyCtrlC:
			b.App.Stop()
			return nil
		case tcell.KeyEscape:
			b.App.Stop()
			return nil
		}
		return event
	})
}

// cycleFocus moves keyboard focus between the listing and symbol panels; the
// entry/extern and status panels are read-only summaries, not navigable.
func (b *Browser) cycleFocus() {
	if b.App.GetFocus() == b.ListingView {
		b.App.SetFocus(b.SymbolTable)
		return
	}
	b.App.SetFocus(b.ListingView)
}

func (b *Browser) populate() {
	b.populateSymbols()
	b.populateListing()
	b.populateEntExt()
	b.populateStatus()
}

func (b *Browser) populateSymbols() {
	headers := []string{"NAME", "ADDRESS", "CONTEXT", "LINE"}
	for col, h := range headers {
		b.SymbolTable.SetCell(0, col, tview.NewTableCell(h).
			SetSelectable(false).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold))
	}
	for row, sym := range b.Result.Symbols {
		b.SymbolTable.SetCell(row+1, 0, tview.NewTableCell(sym.Name))
		b.SymbolTable.SetCell(row+1, 1, tview.NewTableCell(fmt.Sprintf("%07d", sym.Addr)))
		b.SymbolTable.SetCell(row+1, 2, tview.NewTableCell(sym.Context.String()))
		b.SymbolTable.SetCell(row+1, 3, tview.NewTableCell(fmt.Sprintf("%d", sym.Line)))
	}
}

func (b *Browser) populateListing() {
	headers := []string{"ADDRESS", "WORDS", "SOURCE"}
	for col, h := range headers {
		b.ListingView.SetCell(0, col, tview.NewTableCell(h).
			SetSelectable(false).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold))
	}
	for row, l := range b.Result.Listing {
		words := ""
		for i, w := range l.Words {
			if i > 0 {
				words += " "
			}
			words += fmt.Sprintf("%06x", uint32(w)&0xFFFFFF)
		}
		b.ListingView.SetCell(row+1, 0, tview.NewTableCell(fmt.Sprintf("%07d", l.Addr)))
		b.ListingView.SetCell(row+1, 1, tview.NewTableCell(words))
		b.ListingView.SetCell(row+1, 2, tview.NewTableCell(l.Source))
	}
}

func (b *Browser) populateEntExt() {
	var text string
	text += "[yellow]Entries:[white]\n"
	if len(b.Result.Entries) == 0 {
		text += "  (none)\n"
	}
	for _, e := range b.Result.Entries {
		text += fmt.Sprintf("  %-16s %07d\n", e.Name, e.Addr)
	}
	text += "\n[yellow]Externals:[white]\n"
	if len(b.Result.Externals) == 0 {
		text += "  (none)\n"
	}
	for _, e := range b.Result.Externals {
		text += fmt.Sprintf("  %-16s %07d\n", e.Name, e.Addr)
	}
	b.EntExtView.SetText(text)
}

func (b *Browser) populateStatus() {
	b.StatusView.SetText(fmt.Sprintf(
		"%s  instructions=%d data=%d symbols=%d  (tab: switch panel, esc/ctrl-c: quit)",
		b.File, len(b.Result.InstructionImage), len(b.Result.DataImage), len(b.Result.Symbols)))
}

// Run starts the browser's event loop, blocking until the user quits.
func (b *Browser) Run() error {
	return b.App.SetRoot(b.Pages, true).SetFocus(b.ListingView).Run()
}
