//go:build !(js && wasm)

package main

import (
	"os"
	"path/filepath"
)

// WriteFile creates the parent folder if needed.
func WriteFile(name string, data []byte) {
	err := os.MkdirAll(filepath.Dir(name), 0755)
	Check(err)
	err = os.WriteFile(name, data, 0644)
	Check(err)
}
