package renderer

import (
	"github.com/unrolled/render"
)

// The storefront is client-rendered, so every handler answers JSON.
func New() *render.Render {
	return render.New(render.Options{
		IndentJSON: true,
	})
}
