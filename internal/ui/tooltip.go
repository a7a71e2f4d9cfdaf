// Package ui provides the QuickCalc application UI components.
//
// This file provides tooltip-enabled button helpers using the fyne-tooltip library.

package ui

import (
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/QuickCalc/internal/model"
)

// newOperationButton creates a high-importance button labelled with the
// operation's symbol and a tooltip naming it.
func newOperationButton(op model.Operation, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButton(op.Symbol(), tapped)
	btn.Importance = widget.HighImportance
	btn.SetToolTip(op.String())
	return btn
}
