package enum

// InvoiceType distinguishes resort service invoices from kitchen invoices.
// Invoice numbers are sequenced independently per type.
type InvoiceType string

const (
	InvoiceTypeResort  InvoiceType = "resort"
	InvoiceTypeKitchen InvoiceType = "kitchen"
)

// Valid reports whether t is a known invoice type
func (t InvoiceType) Valid() bool {
	return t == InvoiceTypeResort || t == InvoiceTypeKitchen
}

// NumberPrefix returns the invoice number prefix for the type
func (t InvoiceType) NumberPrefix() string {
	if t == InvoiceTypeKitchen {
		return "KIT"
	}
	return "RES"
}

func (t InvoiceType) String() string {
	return string(t)
}
