//go:build wasm

package main

import (
	"sync"
	"syscall/js"

	"github.com/offsetlab/quotemap"
)

var (
	preprocessors   = make(map[int]*quotemap.Preprocessor)
	preprocessorsMu sync.RWMutex
	nextID          int
)

// newPreprocessor creates a preprocessor for a literal span.
// JS: QuotemapNew(start, length) -> {handle} or {error}
func newPreprocessor(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "start and length arguments required"}
	}

	start := args[0].Int()
	length := args[1].Int()
	if start < 0 || length < 0 {
		return map[string]interface{}{"error": "start and length must be non-negative"}
	}

	p := quotemap.New(quotemap.NewContentRange(start, length))

	// Register preprocessor
	preprocessorsMu.Lock()
	id := nextID
	nextID++
	preprocessors[id] = p
	preprocessorsMu.Unlock()

	return map[string]interface{}{"handle": id}
}

// decode decodes the literal's inner content.
// JS: QuotemapDecode(handle, content) -> {ok} or {error}
func decode(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "handle and content arguments required"}
	}

	p, ok := lookup(args[0].Int())
	if !ok {
		return map[string]interface{}{"error": "invalid handle"}
	}

	return map[string]interface{}{"ok": p.Decode(args[1].String())}
}

// decodedText returns the decoded text of the last successful decode.
// JS: QuotemapText(handle) -> {text} or {error}
func decodedText(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "handle argument required"}
	}

	p, ok := lookup(args[0].Int())
	if !ok {
		return map[string]interface{}{"error": "invalid handle"}
	}

	return map[string]interface{}{"text": p.Text()}
}

// offsetInHost maps a decoded offset to an absolute host document offset.
// JS: QuotemapOffsetInHost(handle, decodedOffset) -> {offset} or {error}
// offset is -1 when the position cannot be mapped.
func offsetInHost(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return map[string]interface{}{"error": "handle and offset arguments required"}
	}

	p, ok := lookup(args[0].Int())
	if !ok {
		return map[string]interface{}{"error": "invalid handle"}
	}

	return map[string]interface{}{"offset": p.OffsetInHost(args[1].Int())}
}

// containsRange tests whether an absolute span lies inside the literal.
// JS: QuotemapContainsRange(handle, start, end) -> {contains} or {error}
func containsRange(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return map[string]interface{}{"error": "handle, start and end arguments required"}
	}

	p, ok := lookup(args[0].Int())
	if !ok {
		return map[string]interface{}{"error": "invalid handle"}
	}

	return map[string]interface{}{"contains": p.ContainsRange(args[1].Int(), args[2].Int())}
}

// closePreprocessor releases a handle.
// JS: QuotemapClose(handle) -> {closed}
func closePreprocessor(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "handle argument required"}
	}

	handle := args[0].Int()

	preprocessorsMu.Lock()
	_, existed := preprocessors[handle]
	delete(preprocessors, handle)
	preprocessorsMu.Unlock()

	return map[string]interface{}{"closed": existed}
}

func lookup(handle int) (*quotemap.Preprocessor, bool) {
	preprocessorsMu.RLock()
	p, ok := preprocessors[handle]
	preprocessorsMu.RUnlock()
	return p, ok
}
