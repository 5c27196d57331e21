package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// Shaders holds compiled post-processing shaders by name.
var Shaders = NewCache[*ebiten.Shader]("shader", nil)

var shaderNames = []string{"scanlines"}

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	for _, name := range shaderNames {
		if Shaders.Has(name) {
			continue
		}
		src, err := shaderFS.ReadFile("shaders/" + name + ".kage")
		if err != nil {
			return err
		}
		shader, err := ebiten.NewShader(src)
		if err != nil {
			return fmt.Errorf("compile shader %s: %w", name, err)
		}
		Shaders.Put(name, shader)
	}
	return nil
}
