package extractor

import "github.com/beevik/etree"

// requiredAttributes are the root attributes every CFDI 4.0 comprobante
// must carry. The order is canonical: error messages list missing names
// in this order.
var requiredAttributes = []string{
	"Version",
	"Fecha",
	"Moneda",
	"Total",
	"TipoDeComprobante",
}

// ValidateStructure returns the required root attributes absent from the
// comprobante element, in canonical order. An empty result means the
// document passes the presence check.
func ValidateStructure(root *etree.Element) []string {
	var missing []string
	for _, name := range requiredAttributes {
		if root.SelectAttr(name) == nil {
			missing = append(missing, name)
		}
	}
	return missing
}
