package transfer

import "io"

// writer pairs an io.Writer with the io.Closer, if any, that must be closed
// to flush it.
type writer struct {
	io.Writer
	io.Closer
}

// Close closes the nested closer, if there is one.
func (w *writer) Close() error {
	if w.Closer != nil {
		return w.Closer.Close()
	}
	return nil
}
