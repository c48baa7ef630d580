package shipment

// Canonical status labels used by the standard delivery flow. The label set
// is open: operators (admins in particular) may record labels outside this
// list, and exception labels carry the exception kind as event metadata.
const (
	StatusCreated          = "Shipment Created"
	StatusPickedUp         = "Picked Up"
	StatusInTransit        = "In Transit"
	StatusInTransitSorting = "In Transit - Sorting"
	StatusOutForDelivery   = "Out for Delivery"
	StatusDelivered        = "Delivered"
)
