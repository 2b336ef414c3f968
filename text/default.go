package text

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Family is a generic family served by the default provider.
type Family uint8

const (
	FamilySans Family = iota
	FamilySerif
	FamilyMono
)

// Builtin font data, indexed by family then by bold<<1|italic.
var builtin = [3][4][]byte{
	FamilySans:  {goregular.TTF, goitalic.TTF, gobold.TTF, gobolditalic.TTF},
	FamilySerif: {lmroman10regular.TTF, lmroman10italic.TTF, lmroman10bold.TTF, lmroman10bolditalic.TTF},
	FamilyMono:  {gomono.TTF, gomonoitalic.TTF, gomonobold.TTF, gomonobolditalic.TTF},
}

var familyAliases = map[string]Family{
	"sans-serif":      FamilySans,
	"system-ui":       FamilySans,
	"ui-sans-serif":   FamilySans,
	"arial":           FamilySans,
	"helvetica":       FamilySans,
	"verdana":         FamilySans,
	"go":              FamilySans,
	"serif":           FamilySerif,
	"ui-serif":        FamilySerif,
	"times":           FamilySerif,
	"times new roman": FamilySerif,
	"georgia":         FamilySerif,
	"latin modern":    FamilySerif,
	"monospace":       FamilyMono,
	"ui-monospace":    FamilyMono,
	"courier":         FamilyMono,
	"courier new":     FamilyMono,
	"go mono":         FamilyMono,
}

// ResolveFamily picks the builtin family for a family list. The first
// known name wins; unknown lists fall back to sans-serif.
func ResolveFamily(families []string) (Family, bool) {
	for _, name := range families {
		if fam, ok := familyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
			return fam, true
		}
	}
	return FamilySans, false
}

type sourceKey struct {
	family Family
	style  uint8
}

// DefaultProvider serves the Go fonts for sans-serif and monospace and
// Latin Modern for serif. Parsed sources are cached and shared.
type DefaultProvider struct {
	mu      sync.RWMutex
	sources map[sourceKey]*Source
}

// NewDefaultProvider returns an empty provider; fonts are parsed on first use.
func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{sources: make(map[sourceKey]*Source)}
}

var (
	sharedProvider     *DefaultProvider
	sharedProviderOnce sync.Once
)

// Default returns the process-wide default provider.
func Default() *DefaultProvider {
	sharedProviderOnce.Do(func() {
		sharedProvider = NewDefaultProvider()
	})
	return sharedProvider
}

// Face implements Provider. Unknown families resolve to sans-serif
// without error.
func (p *DefaultProvider) Face(f Font) (Face, error) {
	fam, _ := ResolveFamily(f.Families)
	src, err := p.source(fam, f.Bold(), f.Italic())
	if err != nil {
		return nil, err
	}
	return src.Face(f.Size), nil
}

func (p *DefaultProvider) source(fam Family, bold, italic bool) (*Source, error) {
	var style uint8
	if bold {
		style |= 2
	}
	if italic {
		style |= 1
	}
	key := sourceKey{family: fam, style: style}

	p.mu.RLock()
	src, ok := p.sources[key]
	p.mu.RUnlock()
	if ok {
		return src, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if src, ok := p.sources[key]; ok {
		return src, nil
	}
	src, err := NewSource(builtin[fam][style])
	if err != nil {
		return nil, fmt.Errorf("text: builtin font %d/%d: %w", fam, style, err)
	}
	p.sources[key] = src
	return src, nil
}

// Len returns the number of parsed sources held by the cache.
func (p *DefaultProvider) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.sources)
}
