package domain

// CatalogEntry is one persisted catalog variant, keyed by SearchKey
type CatalogEntry struct {
	VariantID string `json:"variantId"`
	Handle    string `json:"handle"`
	SKU       string `json:"sku"`
	Title     string `json:"title"`
	Vendor    string `json:"vendor"`
	Vintage   string `json:"vintage"` // option1_value
	Size      string `json:"size"`    // option2_value
	SearchKey string `json:"searchKey"`
}

// MatchKind tells how a catalog lookup was satisfied
type MatchKind string

const (
	MatchNone   MatchKind = ""
	MatchExact  MatchKind = "exact"
	MatchPrefix MatchKind = "prefix"
)

// SyncResult summarizes a catalog upsert batch
type SyncResult struct {
	Applied int    `json:"applied"`
	Skipped int    `json:"skipped"` // rows without a variant id
	Failed  int    `json:"failed"`  // rows the store rejected
	RunID   string `json:"runId"`
}
