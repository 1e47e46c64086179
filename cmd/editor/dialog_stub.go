//go:build !dialog
// +build !dialog

package main

import (
	"log"
	"path/filepath"

	"github.com/milk9111/speedgame/editor"
)

// saveDialog is used in builds without native dialogs: it saves to the
// default file in the start directory without prompting.
type saveDialog struct{}

func (saveDialog) SavePath(req editor.SaveRequest) (string, bool, error) {
	path := filepath.Join(req.StartDir, req.DefaultFile)
	log.Printf("no native dialog in this build (rebuild with -tags dialog); saving to %s", path)
	return path, true, nil
}

func (saveDialog) FixedPath() bool { return true }
