//go:build !windows

package console

// Unix terminals take their encoding from the locale; nothing to switch.
func enableUTF8() error { return nil }
