// Package extractor turns raw CFDI 4.0 XML into a flattened invoice
// record. The pipeline runs structural validation, the version check and
// the fiscal-stamp lookup before any field extraction; each stage
// short-circuits the rest on failure. The extractor holds no state, so
// concurrent invocations on different documents are safe.
package extractor

import (
	"errors"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	xdecimal "github.com/fiscalmx/cfdi-extractor/internal/decimal"
	"github.com/fiscalmx/cfdi-extractor/internal/model"
)

// Taxpayer roles determine which attribute names can carry the fiscal
// regime code: recipients declare it under a distinctly named attribute.
var regimenCandidates = map[string][]string{
	"Emisor":   {"RegimenFiscal"},
	"Receptor": {"RegimenFiscal", "RegimenFiscalReceptor"},
}

// Extract parses and validates a CFDI 4.0 document and assembles its
// flattened invoice record. It returns a *model.SyntaxError for byte
// streams that are not well-formed XML, a *model.SchemaError for missing
// required attributes, unsupported versions or a missing fiscal stamp,
// and a *model.StructureError for any other attribute the document was
// expected to carry.
func Extract(data []byte) (*model.Invoice, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, model.NewSyntaxError(err)
	}
	root := doc.Root()
	if root == nil {
		return nil, model.NewSyntaxError(errors.New("document has no root element"))
	}

	if missing := ValidateStructure(root); len(missing) > 0 {
		return nil, model.NewMissingAttributesError(missing)
	}
	if !model.SupportedVersions[root.SelectAttrValue("Version", "")] {
		return nil, model.NewSchemaError("Invalid CFDI file")
	}

	stamp := findFirst(root, tfdNamespace, "TimbreFiscalDigital")
	if stamp == nil {
		return nil, model.NewSchemaError("Missing TimbreFiscalDigital")
	}
	uuid, err := requireAttr(stamp, "UUID")
	if err != nil {
		return nil, err
	}

	emisor, err := parseTaxpayer(findFirst(root, cfdiNamespace, "Emisor"), "Emisor")
	if err != nil {
		return nil, err
	}
	receptor, err := parseTaxpayer(findFirst(root, cfdiNamespace, "Receptor"), "Receptor")
	if err != nil {
		return nil, err
	}

	conceptos, err := parseConcepts(root)
	if err != nil {
		return nil, err
	}
	impuestos, err := parseTraslados(root)
	if err != nil {
		return nil, err
	}

	subTotal, err := requireDecimal(root, "SubTotal")
	if err != nil {
		return nil, err
	}
	total, err := requireDecimal(root, "Total")
	if err != nil {
		return nil, err
	}
	descuento, err := optionalDecimal(root, "Descuento")
	if err != nil {
		return nil, err
	}

	formaPago := root.SelectAttrValue("FormaPago", "")
	if formaPago == "" {
		formaPago = "00"
	}

	return &model.Invoice{
		Version:           root.SelectAttrValue("Version", ""),
		Fecha:             root.SelectAttrValue("Fecha", ""),
		FormaPago:         formaPago,
		MetodoPago:        optionalAttr(root, "MetodoPago"),
		SubTotal:          subTotal,
		TotalImpuesto:     taxSummary(root),
		Descuento:         descuento,
		Moneda:            root.SelectAttrValue("Moneda", ""),
		Total:             total,
		TipoDeComprobante: root.SelectAttrValue("TipoDeComprobante", ""),
		UUID:              uuid,
		Emisor:            emisor,
		Receptor:          receptor,
		Conceptos:         conceptos,
		Impuestos:         impuestos,
	}, nil
}

// parseTaxpayer builds the taxpayer record for an Emisor or Receptor
// element. A nil element yields a nil record, not an error: both parties
// are optional in the minimum structure.
func parseTaxpayer(el *etree.Element, role string) (*model.Taxpayer, error) {
	if el == nil {
		return nil, nil
	}

	rfc, err := requireAttr(el, "Rfc")
	if err != nil {
		return nil, err
	}
	nombre, err := requireAttr(el, "Nombre")
	if err != nil {
		return nil, err
	}

	var regimen string
	for _, name := range regimenCandidates[role] {
		if v := el.SelectAttrValue(name, ""); v != "" {
			regimen = v
			break
		}
	}

	return &model.Taxpayer{
		RFC:           rfc,
		Nombre:        nombre,
		RegimenFiscal: regimen,
		UsoCFDI:       optionalAttr(el, "UsoCFDI"),
	}, nil
}

// parseConcepts collects the line items under every Conceptos container,
// in document order.
func parseConcepts(root *etree.Element) ([]model.Concept, error) {
	conceptos := []model.Concept{}
	for _, container := range findAll(root, cfdiNamespace, "Conceptos") {
		for _, el := range childElements(container, cfdiNamespace, "Concepto") {
			claveUnidad, err := requireAttr(el, "ClaveUnidad")
			if err != nil {
				return nil, err
			}
			descripcion, err := requireAttr(el, "Descripcion")
			if err != nil {
				return nil, err
			}
			claveProdServ, err := requireAttr(el, "ClaveProdServ")
			if err != nil {
				return nil, err
			}
			objetoImp, err := requireAttr(el, "ObjetoImp")
			if err != nil {
				return nil, err
			}
			cantidad, err := requireAttr(el, "Cantidad")
			if err != nil {
				return nil, err
			}

			conceptos = append(conceptos, model.Concept{
				ClaveUnidad:   claveUnidad,
				Descripcion:   descripcion,
				Importe:       xdecimal.FromStringOrZero(el.SelectAttrValue("Importe", "")),
				ValorUnitario: xdecimal.FromStringOrZero(el.SelectAttrValue("ValorUnitario", "")),
				Descuento:     xdecimal.FromStringOrZero(el.SelectAttrValue("Descuento", "")),
				Cantidad:      xdecimal.TruncateInt(cantidad),
				ClaveProdServ: claveProdServ,
				ObjetoImp:     objetoImp,
			})
		}
	}
	return conceptos, nil
}

// parseTraslados collects the invoice-level transferred-tax entries, in
// document order. Only the Impuestos node that is a direct child of the
// root qualifies: concept-level Impuestos nodes carry per-line detail,
// not invoice totals.
func parseTraslados(root *etree.Element) ([]model.Traslado, error) {
	impuestos := []model.Traslado{}
	for _, summary := range childElements(root, cfdiNamespace, "Impuestos") {
		for _, traslados := range childElements(summary, cfdiNamespace, "Traslados") {
			for _, el := range childElements(traslados, cfdiNamespace, "Traslado") {
				impuesto, err := requireAttr(el, "Impuesto")
				if err != nil {
					return nil, err
				}
				tipoFactor, err := requireAttr(el, "TipoFactor")
				if err != nil {
					return nil, err
				}

				impuestos = append(impuestos, model.Traslado{
					Importe:    xdecimal.FromStringOrZero(el.SelectAttrValue("Importe", "")),
					Impuesto:   impuesto,
					TipoFactor: tipoFactor,
					TasaOCuota: xdecimal.FromStringOrZero(el.SelectAttrValue("TasaOCuota", "")),
					Base:       xdecimal.FromStringOrZero(el.SelectAttrValue("Base", "")),
				})
			}
		}
	}
	return impuestos, nil
}

// taxSummary reads the declared aggregate transferred tax from the
// root-level Impuestos node, defaulting to zero when the node or its
// attribute is absent or unparsable.
func taxSummary(root *etree.Element) decimal.Decimal {
	summaries := childElements(root, cfdiNamespace, "Impuestos")
	if len(summaries) == 0 {
		return xdecimal.Zero
	}
	return xdecimal.FromStringOrZero(summaries[0].SelectAttrValue("TotalImpuestosTrasladados", ""))
}

// requireAttr reads an attribute whose absence is an unexpected-structure
// failure.
func requireAttr(el *etree.Element, name string) (string, error) {
	attr := el.SelectAttr(name)
	if attr == nil {
		return "", model.NewStructureError(name, "required attribute absent", nil)
	}
	return attr.Value, nil
}

// optionalAttr reads an attribute that maps to null when absent.
func optionalAttr(el *etree.Element, name string) *string {
	attr := el.SelectAttr(name)
	if attr == nil {
		return nil
	}
	return &attr.Value
}

// requireDecimal reads an attribute that must be present and parse as a
// decimal number. The root monetary totals are not covered by the
// tolerant-parse policy.
func requireDecimal(el *etree.Element, name string) (decimal.Decimal, error) {
	raw, err := requireAttr(el, name)
	if err != nil {
		return xdecimal.Zero, err
	}
	d, err := xdecimal.FromString(raw)
	if err != nil {
		return xdecimal.Zero, model.NewStructureError(name, "invalid decimal value", err)
	}
	return d, nil
}

// optionalDecimal reads an attribute that defaults to zero when absent
// but must parse when present.
func optionalDecimal(el *etree.Element, name string) (decimal.Decimal, error) {
	attr := el.SelectAttr(name)
	if attr == nil {
		return xdecimal.Zero, nil
	}
	d, err := xdecimal.FromString(attr.Value)
	if err != nil {
		return xdecimal.Zero, model.NewStructureError(name, "invalid decimal value", err)
	}
	return d, nil
}
