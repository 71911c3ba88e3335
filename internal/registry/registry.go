// Package registry maps 4-character ANLZ type codes to handlers.
package registry

import (
	"fmt"
	"slices"
	"sync"
)

// CodeLen is the length of every ANLZ type code.
const CodeLen = 4

// Registry maps type codes to handlers of type H.
//
// Registration normally happens from init functions; lookups are safe for
// concurrent use at any time.
type Registry[H any] struct {
	mu       sync.RWMutex
	handlers map[string]H
}

// New creates an empty registry.
func New[H any]() *Registry[H] {
	return &Registry[H]{handlers: make(map[string]H)}
}

// Register registers a handler for a type code, replacing any earlier one.
// It panics if code is not exactly four bytes long.
func (r *Registry[H]) Register(code string, h H) {
	if len(code) != CodeLen {
		panic(fmt.Sprintf("registry: type code %q is not %d bytes", code, CodeLen))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[code] = h
}

// Get returns the handler for a type code.
// Codes are compared byte for byte; there is no case folding.
func (r *Registry[H]) Get(code string) (H, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[code]
	return h, ok
}

// Codes returns the registered type codes in sorted order.
func (r *Registry[H]) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.handlers))
	for code := range r.handlers {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
