package domain

// InventoryEntry records the owned quantity of one item. Exactly one entry
// may exist per item id; the ledger is recipe-agnostic.
type InventoryEntry struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}
