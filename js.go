//go:build js && wasm

package main

var Debug = false

// ProfileStart does nothing in the browser, use the dev tools instead.
func ProfileStart() func() {
	return func() {}
}
