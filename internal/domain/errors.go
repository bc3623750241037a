package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInvalidCategory    = errors.New("Categoria inválida")
	ErrInvalidSubcategory = errors.New("Subcategoria inválida para a categoria selecionada")
	ErrInvalidFormat      = errors.New("Formato inválido")

	// ErrUpstream agrupa cualquier fallo al consultar la fuente externa (red, HTTP no 2xx, HTML inesperado).
	ErrUpstream = errors.New("falha ao consultar a fonte de dados")
	// ErrUpstreamUnavailable el circuit breaker está abierto: no se intenta la llamada.
	ErrUpstreamUnavailable = errors.New("fonte de dados temporariamente indisponível")
	// ErrUpstreamTimeout la fuente externa no respondió a tiempo.
	ErrUpstreamTimeout = errors.New("tempo esgotado ao consultar a fonte de dados")
)
