//go:build dialog
// +build dialog

package main

import (
	"errors"

	"github.com/milk9111/speedgame/editor"
	"github.com/sqweek/dialog"
)

// saveDialog shows the platform's native save dialog.
type saveDialog struct{}

func (saveDialog) SavePath(req editor.SaveRequest) (string, bool, error) {
	b := dialog.File().Filter(req.Filter, req.Ext).Title(req.Title)
	if req.StartDir != "" {
		b = b.SetStartDir(req.StartDir)
	}
	if req.DefaultFile != "" {
		b = b.SetStartFile(req.DefaultFile)
	}
	path, err := b.Save()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}
