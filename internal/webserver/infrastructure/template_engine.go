package infrastructure

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

func TemplateEngine(viewsFS fs.FS) *html.Engine {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	engine.AddFunc("uppercase", func(text string) string {
		return strings.ToUpper(text)
	})

	return engine
}
