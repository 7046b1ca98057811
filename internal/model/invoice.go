package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Monetary fields serialize as JSON numbers (116.0, not "116.0"),
	// matching the response shape consumers already parse.
	decimal.MarshalJSONWithoutQuotes = true
}

// SupportedVersions holds the CFDI versions the extractor accepts.
var SupportedVersions = map[string]bool{
	"4.0": true,
}

// Invoice is the flattened representation of a CFDI 4.0 comprobante.
// It is assembled once by the extractor and never mutated afterwards.
type Invoice struct {
	Version           string          `json:"version"`
	Fecha             string          `json:"fecha"`
	FormaPago         string          `json:"formaPago"`
	MetodoPago        *string         `json:"metodoPago"`
	SubTotal          decimal.Decimal `json:"subTotal"`
	TotalImpuesto     decimal.Decimal `json:"totalImpuesto"`
	Descuento         decimal.Decimal `json:"descuento"`
	Moneda            string          `json:"moneda"`
	Total             decimal.Decimal `json:"total"`
	TipoDeComprobante string          `json:"tipoDeComprobante"`
	UUID              string          `json:"uuid"`
	Emisor            *Taxpayer       `json:"emisor"`
	Receptor          *Taxpayer       `json:"receptor"`
	Conceptos         []Concept       `json:"conceptos"`
	Impuestos         []Traslado      `json:"impuestos"`
}

// Taxpayer holds the identity of an issuer or recipient party.
// A nil *Taxpayer means the party node was absent from the document.
type Taxpayer struct {
	RFC           string  `json:"rfc"`
	Nombre        string  `json:"nombre"`
	RegimenFiscal string  `json:"regimenFiscal"`
	UsoCFDI       *string `json:"usCfdi"`
}

// Concept is one invoice line item (good or service sold).
type Concept struct {
	ClaveUnidad   string          `json:"claveUnidad"`
	Descripcion   string          `json:"descripcion"`
	Importe       decimal.Decimal `json:"importe"`
	ValorUnitario decimal.Decimal `json:"valorUnitario"`
	Descuento     decimal.Decimal `json:"descuento"`
	Cantidad      int64           `json:"cantidad"`
	ClaveProdServ string          `json:"claveProdServ"`
	ObjetoImp     string          `json:"objetoImp"`
}

// Traslado is a transferred-tax entry applied to the invoice total.
type Traslado struct {
	Importe    decimal.Decimal `json:"importe"`
	Impuesto   string          `json:"impuesto"`
	TipoFactor string          `json:"tipoFactor"`
	TasaOCuota decimal.Decimal `json:"tasaOCuota"`
	Base       decimal.Decimal `json:"base"`
}
