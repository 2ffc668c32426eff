package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"golang.design/x/clipboard"
)

var (
	ErrUploadCancelled   = errors.New("upload cancelled")
	ErrDialogUnavailable = errors.New("file dialog not available in this build")
	ErrClipboardEmpty    = errors.New("clipboard holds no image")
	ErrNoDroppedFile     = errors.New("no dropped file")
)

// ReadDropped returns the contents and name of the first regular file in a
// drop.
func ReadDropped(fsys fs.FS) ([]byte, string, error) {
	if fsys == nil {
		return nil, "", ErrNoDroppedFile
	}
	var name string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			name = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("ui: read drop: %w", err)
	}
	if name == "" {
		return nil, "", ErrNoDroppedFile
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, "", fmt.Errorf("ui: read %s: %w", name, err)
	}
	return data, name, nil
}

var clipboardState struct {
	once sync.Once
	err  error
}

// ReadClipboardImage returns the PNG image currently on the clipboard.
func ReadClipboardImage() ([]byte, error) {
	clipboardState.once.Do(func() {
		clipboardState.err = clipboard.Init()
	})
	if clipboardState.err != nil {
		return nil, fmt.Errorf("ui: clipboard: %w", clipboardState.err)
	}
	data := clipboard.Read(clipboard.FmtImage)
	if len(data) == 0 {
		return nil, ErrClipboardEmpty
	}
	return data, nil
}
