//go:build !dialog
// +build !dialog

package ui

// OpenImageDialog reports that no native dialog was built in. Images can
// still be dropped on the window or pasted.
func OpenImageDialog() (string, error) {
	return "", ErrDialogUnavailable
}
