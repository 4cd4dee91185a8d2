package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	fmLabel     *widget.Label
}

func NewStatusBar() *StatusBar {
	statusBar := &StatusBar{}
	statusBar.setupStatusBar()
	return statusBar
}

func (sb *StatusBar) setupStatusBar() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.fmLabel = widget.NewLabel("FM: --")

	sb.container = container.NewBorder(
		nil, nil,
		sb.statusLabel,
		sb.fmLabel,
	)
}

func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

func (sb *StatusBar) SetFinenessModulus(fm float64, classification string) {
	fyne.Do(func() {
		sb.fmLabel.SetText(fmt.Sprintf("FM: %.2f (%s)", fm, classification))
	})
}

func (sb *StatusBar) ClearFinenessModulus() {
	fyne.Do(func() {
		sb.fmLabel.SetText("FM: --")
	})
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
