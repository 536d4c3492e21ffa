//go:build windows

package console

import "golang.org/x/sys/windows"

const codePageUTF8 = 65001

func enableUTF8() error {
	if err := windows.SetConsoleOutputCP(codePageUTF8); err != nil {
		return err
	}
	return windows.SetConsoleCP(codePageUTF8)
}
