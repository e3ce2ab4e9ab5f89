// Package mathtex renders LaTeX formulas to HTML with KaTeX.
package mathtex

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	katex "github.com/FurqanSoftware/goldmark-katex"
)

// ErrRender is returned when a formula cannot be rendered.
var ErrRender = errors.New("formula render failed")

// defaultCacheSize bounds the number of cached formulas.
const defaultCacheSize = 512

type cacheKey struct {
	formula string
	display bool
}

// KaTeX renders formulas through the embedded KaTeX engine. The engine is
// not reentrant, so calls are serialized. Results are cached.
type KaTeX struct {
	mu        sync.Mutex
	cache     map[cacheKey]string
	cacheSize int
	render    func(buf *bytes.Buffer, formula string, display bool) error
}

// New returns a KaTeX renderer.
func New() *KaTeX {
	return &KaTeX{
		cache:     make(map[cacheKey]string),
		cacheSize: defaultCacheSize,
		render: func(buf *bytes.Buffer, formula string, display bool) error {
			return katex.Render(buf, []byte(formula), display)
		},
	}
}

// Render returns the HTML for formula. Display selects block layout.
func (k *KaTeX) Render(formula string, display bool) (out string, err error) {
	formula = strings.TrimSpace(formula)
	if formula == "" {
		return "", fmt.Errorf("%w: empty formula", ErrRender)
	}
	key := cacheKey{formula: formula, display: display}

	k.mu.Lock()
	defer k.mu.Unlock()

	if html, ok := k.cache[key]; ok {
		return html, nil
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("%w: %v", ErrRender, r)
		}
	}()

	var buf bytes.Buffer
	if err := k.render(&buf, formula, display); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	if len(k.cache) >= k.cacheSize {
		clear(k.cache)
	}
	html := buf.String()
	k.cache[key] = html
	return html, nil
}
