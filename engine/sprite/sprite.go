// Package sprite maps game-relative asset paths to external asset URLs.
// The editor ships no images of its own; every sprite lives on the game's
// asset host. Reachability of the resulting URL is never checked.
package sprite

import (
	"fmt"
	"strings"
)

// AssetsBaseURL is the default asset host.
const AssetsBaseURL = "https://pokepath-game.pages.dev"

// EggSpritePath is the relative path of the shop's egg slot icon.
const EggSpritePath = "./src/assets/images/icons/egg.png"

// Resolver resolves sprite paths against a configurable base.
type Resolver struct {
	Base string
}

// Default resolves against AssetsBaseURL.
var Default = Resolver{Base: AssetsBaseURL}

func (r Resolver) base() string {
	if r.Base == "" {
		return AssetsBaseURL
	}
	return strings.TrimRight(r.Base, "/")
}

// ResolveURL strips one leading "./" from a relative path and joins it to
// the base. Empty input, or input that is empty after stripping, does not
// resolve.
func (r Resolver) ResolveURL(path string) (string, bool) {
	path = strings.TrimPrefix(path, "./")
	if path == "" {
		return "", false
	}
	return r.base() + "/" + path, true
}

// PokemonURL returns the sprite URL of a species. The shiny folder is used
// only when isShiny is set and hideShiny is not.
func (r Resolver) PokemonURL(specieKey string, isShiny, hideShiny bool) string {
	folder := "normal"
	if isShiny && !hideShiny {
		folder = "shiny"
	}
	return fmt.Sprintf("%s/src/assets/images/pokemon/%s/%s.png", r.base(), folder, specieKey)
}

// ImageURL resolves an image source that may already be absolute.
func (r Resolver) ImageURL(src string) (string, bool) {
	if strings.HasPrefix(src, "http") {
		return src, true
	}
	return r.ResolveURL(src)
}

// ResolveURL resolves path against AssetsBaseURL.
func ResolveURL(path string) (string, bool) { return Default.ResolveURL(path) }

// PokemonURL returns a species sprite URL on AssetsBaseURL.
func PokemonURL(specieKey string, isShiny, hideShiny bool) string {
	return Default.PokemonURL(specieKey, isShiny, hideShiny)
}

// ImageURL resolves src against AssetsBaseURL unless it is absolute.
func ImageURL(src string) (string, bool) { return Default.ImageURL(src) }
