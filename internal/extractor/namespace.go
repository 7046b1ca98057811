package extractor

import "github.com/beevik/etree"

// CFDI 4.0 namespaces
const (
	cfdiNamespace = "http://www.sat.gob.mx/cfd/4"
	tfdNamespace  = "http://www.sat.gob.mx/TimbreFiscalDigital"
)

// matches reports whether an element has the given local name and resolves
// to the given namespace URI. Matching on the resolved URI rather than the
// prefix keeps the extractor independent of whatever prefix (or default
// namespace) a producer declared.
func matches(el *etree.Element, ns, local string) bool {
	return el.Tag == local && el.NamespaceURI() == ns
}

// findAll returns every descendant of parent matching ns:local, in
// document order. The parent itself is not considered.
func findAll(parent *etree.Element, ns, local string) []*etree.Element {
	var found []*etree.Element
	for _, child := range parent.ChildElements() {
		if matches(child, ns, local) {
			found = append(found, child)
		}
		found = append(found, findAll(child, ns, local)...)
	}
	return found
}

// findFirst returns the first descendant of parent matching ns:local in
// document order, or nil.
func findFirst(parent *etree.Element, ns, local string) *etree.Element {
	for _, child := range parent.ChildElements() {
		if matches(child, ns, local) {
			return child
		}
		if found := findFirst(child, ns, local); found != nil {
			return found
		}
	}
	return nil
}

// childElements returns the direct children of parent matching ns:local,
// in document order.
func childElements(parent *etree.Element, ns, local string) []*etree.Element {
	var found []*etree.Element
	for _, child := range parent.ChildElements() {
		if matches(child, ns, local) {
			found = append(found, child)
		}
	}
	return found
}
