package http

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
)

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="utf-8"><title>{{.Name}}</title></head>
<body>
<h1>{{.Name}}</h1>
<p>API de dados de vitivinicultura do Brasil (fonte: Embrapa Vitibrasil).</p>
<h2>Autenticação</h2>
<p><code>POST /token</code> devolve <code>{"access_token": "..."}</code>.
Envie o token em <code>Authorization: Bearer &lt;token&gt;</code>.</p>
<h2>Consulta</h2>
<p><code>GET /api/&lt;categoria&gt;?start_year=1970&amp;end_year=2023&amp;subcategory=&lt;sub&gt;&amp;format=json|xml|pdf</code></p>
<table border="1">
<tr><th>Categoria</th><th>Subcategorias</th></tr>
{{range .Categories}}<tr><td><code>{{.Name}}</code></td><td>{{if .Subcategories}}{{range $i, $s := .Subcategories}}{{if $i}}, {{end}}<code>{{$s}}</code>{{end}}{{else}}(não se aplica){{end}}</td></tr>
{{end}}</table>
<p>Documentação interativa em <a href="/docs">/docs</a>.</p>
</body>
</html>`))

// HomeHandler página de ayuda pública generada a partir del catálogo.
// El HTML se renderiza una sola vez al construir el handler.
type HomeHandler struct {
	page []byte
}

// NewHomeHandler renderiza la página para el catálogo dado.
func NewHomeHandler(name string, catalog *entity.Catalog) (*HomeHandler, error) {
	var buf bytes.Buffer
	err := homeTemplate.Execute(&buf, struct {
		Name       string
		Categories []entity.CategorySpec
	}{Name: name, Categories: catalog.Categories()})
	if err != nil {
		return nil, err
	}
	return &HomeHandler{page: buf.Bytes()}, nil
}

// Index GET /
func (h *HomeHandler) Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(h.page)
}
