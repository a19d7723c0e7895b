package domain

// EntityKind enumerates the persisted entity types the engine reports
// counts for. A typed enum keeps the reporting layer from ever
// interpolating caller-supplied table names into SQL.
type EntityKind int

const (
	EntityCategory EntityKind = iota
	EntityProduct
	EntityFoodItem
	EntityCounter
	EntityLot
	EntityDisplay
	EntityInvoice
	EntityInvoiceDetail
)

func (k EntityKind) Table() string {
	switch k {
	case EntityCategory:
		return "CATEGORY"
	case EntityProduct:
		return "PRODUCT"
	case EntityFoodItem:
		return "FOOD_ITEM"
	case EntityCounter:
		return "COUNTER"
	case EntityLot:
		return "INVENTORY"
	case EntityDisplay:
		return "DISPLAYS"
	case EntityInvoice:
		return "INVOICE"
	case EntityInvoiceDetail:
		return "INVOICE_DETAIL"
	default:
		return ""
	}
}

func (k EntityKind) Label() string {
	switch k {
	case EntityCategory:
		return "categories"
	case EntityProduct:
		return "products"
	case EntityFoodItem:
		return "perishables"
	case EntityCounter:
		return "counters"
	case EntityLot:
		return "lots"
	case EntityDisplay:
		return "displays"
	case EntityInvoice:
		return "invoices"
	case EntityInvoiceDetail:
		return "invoiceLines"
	default:
		return ""
	}
}

func AllEntityKinds() []EntityKind {
	return []EntityKind{
		EntityCategory,
		EntityProduct,
		EntityFoodItem,
		EntityCounter,
		EntityLot,
		EntityDisplay,
		EntityInvoice,
		EntityInvoiceDetail,
	}
}
