// Package xmlexport serializa un Dataset como XML canónico (C14N), de modo que dos
// consultas con el mismo resultado producen exactamente los mismos bytes.
package xmlexport

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/vitivinicultura-api/internal/application/viticulture"
	"github.com/jhoicas/vitivinicultura-api/internal/domain/entity"
)

var _ viticulture.DatasetRenderer = (*Renderer)(nil)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Renderer implementa viticulture.DatasetRenderer para application/xml.
type Renderer struct{}

// NewRenderer crea el renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// ContentType tipo MIME del documento generado.
func (r *Renderer) ContentType() string { return "application/xml; charset=utf-8" }

// Render construye el árbol con etree y lo canoniza.
func (r *Renderer) Render(_ context.Context, ds *entity.Dataset) ([]byte, error) {
	if ds == nil {
		return nil, fmt.Errorf("xmlexport: dataset nulo")
	}
	doc := etree.NewDocument()
	root := doc.CreateElement("dataset")
	root.CreateAttr("category", string(ds.Category))
	if ds.Subcategory != nil {
		root.CreateAttr("subcategory", string(*ds.Subcategory))
	}
	root.CreateAttr("start_year", strconv.Itoa(ds.StartYear))
	root.CreateAttr("end_year", strconv.Itoa(ds.EndYear))
	root.CreateAttr("source", ds.Source)

	for _, y := range ds.Years {
		ye := root.CreateElement("year")
		ye.CreateAttr("value", strconv.Itoa(y.Year))
		if y.Unit != "" {
			ye.CreateAttr("unit", y.Unit)
		}
		ye.CreateAttr("url", y.URL)
		for _, rec := range y.Records {
			re := ye.CreateElement("record")
			re.CreateAttr("item", rec.Item)
			if rec.Subitem != "" {
				re.CreateAttr("subitem", rec.Subitem)
			}
			setNumber(re, "quantity", rec.Quantity)
			setNumber(re, "value", rec.Value)
		}
		if y.Total != nil {
			te := ye.CreateElement("total")
			setNumber(te, "quantity", y.Total.Quantity)
			setNumber(te, "value", y.Total.Value)
		}
	}

	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlexport: serializar: %w", err)
	}
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.Entity = map[string]string{}
	canonical, err := c14n.Canonicalize(dec)
	if err != nil {
		return nil, fmt.Errorf("xmlexport: canonizar: %w", err)
	}
	return append([]byte(xmlHeader), canonical...), nil
}

// setNumber omite el atributo cuando el dato no fue informado.
func setNumber(el *etree.Element, name string, d *decimal.Decimal) {
	if d == nil {
		return
	}
	el.CreateAttr(name, d.String())
}
