package vitibrasil

import (
	"mime"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// toUTF8 convierte el cuerpo al charset declarado en Content-Type. Sin declaración y con
// bytes que no son UTF-8 válido, se asume Windows-1252 (páginas antiguas del portal).
func toUTF8(body []byte, contentType string) ([]byte, error) {
	name := ""
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		name = strings.ToLower(strings.TrimSpace(params["charset"]))
	}

	switch {
	case name == "" || name == "utf-8" || name == "utf8":
		if utf8.Valid(body) {
			return body, nil
		}
		return charmap.Windows1252.NewDecoder().Bytes(body)
	default:
		enc, err := htmlindex.Get(name)
		if err != nil {
			return nil, err
		}
		return enc.NewDecoder().Bytes(body)
	}
}
