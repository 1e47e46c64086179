package main

import (
	"errors"
	"log"

	"github.com/milk9111/speedgame/editor"
	"golang.design/x/clipboard"
)

type systemClipboard struct{}

// newSystemClipboard returns nil when the platform clipboard is unavailable;
// the editor then reports copy and paste as unavailable.
func newSystemClipboard() editor.Clipboard {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		return nil
	}
	return systemClipboard{}
}

func (systemClipboard) ReadText() ([]byte, error) {
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return nil, errors.New("clipboard is empty")
	}
	return data, nil
}

func (systemClipboard) WriteText(data []byte) error {
	clipboard.Write(clipboard.FmtText, data)
	return nil
}
