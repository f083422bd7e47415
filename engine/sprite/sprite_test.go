package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"./src/assets/images/items/amulet-coin.png", AssetsBaseURL + "/src/assets/images/items/amulet-coin.png", true},
		{"src/a.png", AssetsBaseURL + "/src/a.png", true},
		{"././a.png", AssetsBaseURL + "/./a.png", true},
		{"", "", false},
		{"./", "", false},
	}
	for _, tt := range tests {
		got, ok := ResolveURL(tt.in)
		assert.Equal(t, tt.want, got, "ResolveURL(%q)", tt.in)
		assert.Equal(t, tt.ok, ok, "ResolveURL(%q)", tt.in)
	}
}

func TestPokemonURL(t *testing.T) {
	assert.Contains(t, PokemonURL("pikachu", true, false), "/shiny/pikachu.png")
	assert.Contains(t, PokemonURL("pikachu", true, true), "/normal/pikachu.png")
	assert.Contains(t, PokemonURL("pikachu", false, false), "/normal/pikachu.png")
	assert.Contains(t, PokemonURL("pikachu", false, true), "/normal/")
	assert.Equal(t, AssetsBaseURL+"/src/assets/images/pokemon/normal/missingno.png", PokemonURL("missingno", false, false))
}

func TestImageURL(t *testing.T) {
	got, ok := ImageURL("https://cdn.example.com/x.png")
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/x.png", got)

	got, ok = ImageURL(EggSpritePath)
	assert.True(t, ok)
	assert.Equal(t, AssetsBaseURL+"/src/assets/images/icons/egg.png", got)

	_, ok = ImageURL("")
	assert.False(t, ok)
}

func TestResolver_ConfiguredBase(t *testing.T) {
	r := Resolver{Base: "http://localhost:8080/"}
	got, ok := r.ResolveURL("./a.png")
	assert.True(t, ok)
	assert.Equal(t, "http://localhost:8080/a.png", got)
	assert.Equal(t, "http://localhost:8080/src/assets/images/pokemon/shiny/eevee.png", r.PokemonURL("eevee", true, false))

	var zero Resolver
	got, _ = zero.ResolveURL("a.png")
	assert.Equal(t, AssetsBaseURL+"/a.png", got)
}
