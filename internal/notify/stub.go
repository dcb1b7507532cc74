//go:build !linux

package notify

// New returns a notifier that drops everything; desktop notifications need
// D-Bus.
func New() (Notifier, error) {
	return nopNotifier{}, nil
}
