package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/qrmaster/qr-master/internal/model"
)

// HistoryTab lists history entries, most recent first
type HistoryTab struct {
	ui *RootUI

	items      []model.HistoryItem
	list       *widget.List
	emptyLabel *widget.Label
	clearBtn   *widget.Button

	content fyne.CanvasObject
}

// NewHistoryTab builds the history screen
func NewHistoryTab(ui *RootUI) *HistoryTab {
	ht := &HistoryTab{ui: ui}
	loc := ui.localization

	ht.list = widget.NewList(
		func() int { return len(ht.items) },
		func() fyne.CanvasObject { return NewHistoryRow(loc) },
		ht.updateRow,
	)

	ht.emptyLabel = widget.NewLabel(loc.GetText(KeyHistoryEmpty))
	ht.emptyLabel.Alignment = fyne.TextAlignCenter
	ht.emptyLabel.Wrapping = fyne.TextWrapWord

	ht.clearBtn = widget.NewButtonWithIcon(loc.GetText(KeyClearAll), theme.DeleteIcon(), ht.onClearAll)
	ht.clearBtn.Importance = widget.DangerImportance

	ht.content = container.NewBorder(
		container.NewHBox(layout.NewSpacer(), ht.clearBtn),
		nil, nil, nil,
		container.NewStack(ht.list, container.NewCenter(ht.emptyLabel)),
	)
	return ht
}

// Content returns the tab content
func (ht *HistoryTab) Content() fyne.CanvasObject {
	return ht.content
}

// SetItems replaces the displayed entries
func (ht *HistoryTab) SetItems(items []model.HistoryItem) {
	ht.items = items
	if len(items) == 0 {
		ht.emptyLabel.Show()
		ht.list.Hide()
		ht.clearBtn.Disable()
	} else {
		ht.emptyLabel.Hide()
		ht.list.Show()
		ht.clearBtn.Enable()
	}
	ht.list.Refresh()
}

// Len returns the number of displayed entries
func (ht *HistoryTab) Len() int {
	return len(ht.items)
}

func (ht *HistoryTab) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(ht.items) {
		return
	}
	row, ok := obj.(*HistoryRow)
	if !ok {
		return
	}
	row.SetCallbacks(ht.onOpen, ht.onDelete)
	row.UpdateItem(ht.items[id])
}

func (ht *HistoryTab) onOpen(id string) {
	item, ok := ht.ui.store.Get(id)
	if !ok {
		return
	}
	ht.ui.showResult(item, false)
}

func (ht *HistoryTab) onDelete(id string) {
	log.Printf("Removing history item %s", id)
	ht.ui.store.Remove(id)
}

func (ht *HistoryTab) onClearAll() {
	if ht.ui.store.Len() == 0 {
		return
	}
	loc := ht.ui.localization
	dialog.ShowConfirm(loc.GetText(KeyClearAll), loc.GetText(KeyClearAllConfirm), func(confirmed bool) {
		if !confirmed {
			return
		}
		log.Printf("Clearing history")
		ht.ui.store.Clear()
	}, ht.ui.window)
}
