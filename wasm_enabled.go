//go:build js && wasm

package main

// The browser has no filesystem to write recordings or crash files to.

func WriteFile(name string, data []byte) {
}
