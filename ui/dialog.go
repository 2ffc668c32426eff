//go:build dialog
// +build dialog

package ui

import (
	"errors"

	"github.com/sqweek/dialog"
)

// OpenImageDialog asks for an image file with the native dialog.
func OpenImageDialog() (string, error) {
	path, err := dialog.File().
		Filter("Imágenes", "png", "jpg", "jpeg", "gif", "webp", "bmp").
		Title("Elegir imagen de fondo").
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", ErrUploadCancelled
	}
	return path, err
}
