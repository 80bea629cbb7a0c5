package domain

// OutputColumns is the exact column order of generated import files
var OutputColumns = []string{
	"Handle", "Title", "Body (HTML)", "Vendor", "Product Category", "Type", "Tags", "Published",
	"Variant ID", "Variant Price", "Variant Inventory Qty", "Variant SKU",
	"Image Src", "Image Alt Text", "Variant Image",
	"SEO Title", "SEO Description", "Status",
	"Option1 Name", "Option1 Value", "Option2 Name", "Option2 Value",
	"Variant Compare At Price", "Variant Barcode", "Variant Weight",
	"Variant Weight Unit", "Variant Grams", "Variant Inventory Tracker", "Cost per item",
	"Score", "Varietal",
}

// OutputRow is one denormalized import row. Parent-level fields are only
// populated on the first row of each product group.
type OutputRow struct {
	Handle                  string `json:"handle"`
	Title                   string `json:"title"`
	BodyHTML                string `json:"bodyHtml"`
	Vendor                  string `json:"vendor"`
	ProductCategory         string `json:"productCategory"`
	Type                    string `json:"type"`
	Tags                    string `json:"tags"`
	Published               string `json:"published"`
	VariantID               string `json:"variantId"`
	VariantPrice            string `json:"variantPrice"`
	VariantInventoryQty     string `json:"variantInventoryQty"`
	VariantSKU              string `json:"variantSku"`
	ImageSrc                string `json:"imageSrc"`
	ImageAltText            string `json:"imageAltText"`
	VariantImage            string `json:"variantImage"`
	SEOTitle                string `json:"seoTitle"`
	SEODescription          string `json:"seoDescription"`
	Status                  string `json:"status"`
	Option1Name             string `json:"option1Name"`
	Option1Value            string `json:"option1Value"`
	Option2Name             string `json:"option2Name"`
	Option2Value            string `json:"option2Value"`
	VariantCompareAtPrice   string `json:"variantCompareAtPrice"`
	VariantBarcode          string `json:"variantBarcode"`
	VariantWeight           string `json:"variantWeight"`
	VariantWeightUnit       string `json:"variantWeightUnit"`
	VariantGrams            string `json:"variantGrams"`
	VariantInventoryTracker string `json:"variantInventoryTracker"`
	CostPerItem             string `json:"costPerItem"`
	Score                   string `json:"score"`
	Varietal                string `json:"varietal"`
}

// Record renders the row in OutputColumns order
func (o *OutputRow) Record() []string {
	return []string{
		o.Handle, o.Title, o.BodyHTML, o.Vendor, o.ProductCategory, o.Type, o.Tags, o.Published,
		o.VariantID, o.VariantPrice, o.VariantInventoryQty, o.VariantSKU,
		o.ImageSrc, o.ImageAltText, o.VariantImage,
		o.SEOTitle, o.SEODescription, o.Status,
		o.Option1Name, o.Option1Value, o.Option2Name, o.Option2Value,
		o.VariantCompareAtPrice, o.VariantBarcode, o.VariantWeight,
		o.VariantWeightUnit, o.VariantGrams, o.VariantInventoryTracker, o.CostPerItem,
		o.Score, o.Varietal,
	}
}

// ClusterMember is a feed row annotated for grouping
type ClusterMember struct {
	Row      Row
	Vintage  string
	BaseName string
}

// ProductGroup is one parent product and its variants; Members[0] is the parent
type ProductGroup struct {
	Key      string
	Handle   string
	BaseName string
	Members  []ClusterMember
}

// IsUnique reports whether the group has a single member
func (g *ProductGroup) IsUnique() bool {
	return len(g.Members) == 1
}

// Redirect is a 301 mapping from a retired handle to its canonical one.
// Redirect generation is not implemented yet; results carry an empty list.
type Redirect struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ClusterMetrics summarizes a create run
type ClusterMetrics struct {
	TotalRows int `json:"totalRows"`
	Clusters  int `json:"clusters"`
	Variants  int `json:"variants"`
	Redirects int `json:"redirects"`
}

// GroupSummary is a preview line for one generated parent product
type GroupSummary struct {
	Handle   string `json:"handle"`
	Title    string `json:"title"`
	Members  int    `json:"members"`
	Varietal string `json:"varietal"`
	Pairing  string `json:"pairing,omitempty"`
	SEOTitle string `json:"seoTitle"`
}

// CreateResult is the output of the create flow
type CreateResult struct {
	Rows      []OutputRow    `json:"rows"`
	Groups    []GroupSummary `json:"groups"`
	Metrics   ClusterMetrics `json:"metrics"`
	Redirects []Redirect     `json:"redirects"`
	Warnings  []string       `json:"warnings"`
	RunID     string         `json:"runId"`
}

// UpdateColumns is the column order of update-flow output
var UpdateColumns = []string{
	"Variant ID", "Handle", "Variant SKU", "Variant Price",
	"Variant Inventory Qty", "Option1 Value", "Option2 Value",
}

// UpdateResult is the output of the update flow
type UpdateResult struct {
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
	Warnings  []string   `json:"warnings"`
	Matched   int        `json:"matched"`
	Unmatched int        `json:"unmatched"`
	RunID     string     `json:"runId"`
}
