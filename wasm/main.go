//go:build wasm

package main

import (
	"syscall/js"
)

func main() {
	// Export functions to JavaScript
	js.Global().Set("QuotemapNew", js.FuncOf(newPreprocessor))
	js.Global().Set("QuotemapDecode", js.FuncOf(decode))
	js.Global().Set("QuotemapText", js.FuncOf(decodedText))
	js.Global().Set("QuotemapOffsetInHost", js.FuncOf(offsetInHost))
	js.Global().Set("QuotemapContainsRange", js.FuncOf(containsRange))
	js.Global().Set("QuotemapClose", js.FuncOf(closePreprocessor))

	// Keep WASM running
	<-make(chan struct{})
}
