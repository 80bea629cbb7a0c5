package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/mrdwine/catalog-engine/internal/domain"
)

// Fixed values written on every generated import row
const (
	defaultProductCategory = "Food, Beverages & Tobacco > Beverages > Alcoholic Beverages > Wine"
	defaultProductType     = "Wine"
	defaultVendorKey       = "generico"
	vintageOptionName      = "Vintage"
	weightUnit             = "lb"
	inventoryTracker       = "shopify"
	publishedValue         = "TRUE"
	activeStatus           = "active"
)

// ClustererConfig holds configuration for the clusterer
type ClustererConfig struct {
	EnableDebugLogging bool
}

// Clusterer groups new feed rows into parent products with variants and
// generates their import rows and SEO metadata.
type Clusterer struct {
	enableDebugLogging bool
}

// NewClusterer creates a new clusterer with the given configuration
func NewClusterer(config ClustererConfig) *Clusterer {
	return &Clusterer{enableDebugLogging: config.EnableDebugLogging}
}

// Process runs the create flow over a feed. Headers are normalized in place.
// The table needs a Title column; a Description column is accepted instead.
func (c *Clusterer) Process(ctx context.Context, table *domain.Table) (*domain.CreateResult, error) {
	if table == nil {
		return nil, domain.ErrInvalidRequest
	}

	NormalizeHeaders(table)
	if !table.HasColumn(ColTitle) {
		if !table.HasColumn(ColDescription) {
			return nil, &domain.MissingColumnsError{Columns: []string{ColTitle}}
		}
		table.RenameColumn(ColDescription, ColTitle)
	}

	runID := uuid.NewString()
	log.Printf("[CREATE] run=%s rows=%d", runID, len(table.Rows))

	result := &domain.CreateResult{
		Rows:      make([]domain.OutputRow, 0, len(table.Rows)),
		Groups:    []domain.GroupSummary{},
		Redirects: []domain.Redirect{},
		Warnings:  []string{},
		RunID:     runID,
	}

	groups := c.BuildGroups(table)
	for i := range groups {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		g := &groups[i]
		if g.BaseName == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Title %q has no name left after cleanup; emitted with an empty handle.", cell(g.Members[0].Row, ColTitle)))
		}

		rows, summary := c.emitGroup(g)
		result.Rows = append(result.Rows, rows...)
		result.Groups = append(result.Groups, summary)

		if !g.IsUnique() {
			result.Metrics.Clusters++
			result.Metrics.Variants += len(g.Members) - 1
		}
	}

	result.Metrics.TotalRows = len(result.Rows)
	result.Metrics.Redirects = len(result.Redirects)

	log.Printf("[CREATE] run=%s products=%d clusters=%d variants=%d",
		runID, len(groups), result.Metrics.Clusters, result.Metrics.Variants)

	return result, nil
}

// BuildGroups annotates every row with its vintage and base name and groups
// them by vendor + base name. Groups come back in ascending key order with
// members sorted newest vintage first; NV sorts after every year.
func (c *Clusterer) BuildGroups(table *domain.Table) []domain.ProductGroup {
	hasVendor := table.HasColumn(ColVendor)

	byKey := make(map[string]*domain.ProductGroup)
	for _, row := range table.Rows {
		title := cell(row, ColTitle)
		member := domain.ClusterMember{
			Row:      row,
			Vintage:  DetectVintage(title),
			BaseName: StripDescriptors(title),
		}

		vendor := defaultVendorKey
		if hasVendor {
			vendor = NormalizeVendor(cell(row, ColVendor))
		}
		key := vendor + "_" + member.BaseName

		g, ok := byKey[key]
		if !ok {
			g = &domain.ProductGroup{
				Key:      key,
				Handle:   Slugify(member.BaseName),
				BaseName: member.BaseName,
			}
			byKey[key] = g
		}
		g.Members = append(g.Members, member)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]domain.ProductGroup, 0, len(keys))
	for _, k := range keys {
		g := byKey[k]
		sort.SliceStable(g.Members, func(i, j int) bool {
			return vintageNewer(g.Members[i].Vintage, g.Members[j].Vintage)
		})
		if c.enableDebugLogging {
			log.Printf("[CLUSTER] %q -> handle=%q members=%d", k, g.Handle, len(g.Members))
		}
		groups = append(groups, *g)
	}
	return groups
}

// vintageNewer orders years descending and puts NV last
func vintageNewer(a, b string) bool {
	aYear, bYear := IsVintageYear(a), IsVintageYear(b)
	if aYear != bYear {
		return aYear
	}
	return aYear && a > b
}

// emitGroup renders one import row per member. Only the parent row carries
// product-level fields; every row carries its own variant fields.
func (c *Clusterer) emitGroup(g *domain.ProductGroup) ([]domain.OutputRow, domain.GroupSummary) {
	parent := g.Members[0]
	title := TitleCase(g.BaseName)
	body := cell(parent.Row, ColBodyHTML)
	score, _ := ExtractScore(body)
	varietal := DetectVarietal(title + body)
	region := NormalizeRegion(RegionChain.Resolve(parent.Row))
	price := ParsePrice(PriceChain.Resolve(parent.Row))

	seoTitle := SEOTitle(parent.Vintage, title, region, score, g.IsUnique())
	seoDescription := SEODescription(price, title, region, varietal, score)

	rows := make([]domain.OutputRow, 0, len(g.Members))
	for i, m := range g.Members {
		out := variantRow(g.Handle, m)
		if i == 0 {
			out.Title = title
			out.BodyHTML = body
			out.Vendor = cell(m.Row, ColVendor)
			out.ProductCategory = cellOr(m.Row, "Product Category", defaultProductCategory)
			out.Type = cellOr(m.Row, "Type", defaultProductType)
			out.Tags = cell(m.Row, ColTags)
			out.Published = publishedValue
			out.Status = activeStatus
			if score != 0 {
				out.Score = strconv.Itoa(score)
			}
			out.Varietal = varietal
			out.SEOTitle = seoTitle
			out.SEODescription = seoDescription
		}
		rows = append(rows, out)
	}

	pairing, _ := PairingFor(varietal)
	summary := domain.GroupSummary{
		Handle:   g.Handle,
		Title:    title,
		Members:  len(g.Members),
		Varietal: varietal,
		Pairing:  pairing,
		SEOTitle: seoTitle,
	}
	return rows, summary
}

// variantRow fills the per-variant columns of an import row
func variantRow(handle string, m domain.ClusterMember) domain.OutputRow {
	size := SizeChain.Resolve(m.Row)
	grams := ResolveWeight(size)

	return domain.OutputRow{
		Handle:                  handle,
		VariantID:               cell(m.Row, ColVariantID),
		VariantPrice:            PriceChain.Resolve(m.Row),
		VariantInventoryQty:     cell(m.Row, ColInventoryQty),
		VariantSKU:              SKUChain.Resolve(m.Row),
		ImageSrc:                cell(m.Row, "Image Src"),
		ImageAltText:            cell(m.Row, "Image Alt Text"),
		VariantImage:            cell(m.Row, "Variant Image"),
		Option1Name:             vintageOptionName,
		Option1Value:            m.Vintage,
		Option2Name:             PresentationChain.Resolve(m.Row),
		Option2Value:            size,
		VariantCompareAtPrice:   cell(m.Row, "Variant Compare At Price"),
		VariantBarcode:          BarcodeChain.Resolve(m.Row),
		VariantWeight:           strconv.FormatFloat(WeightPounds(grams), 'f', 2, 64),
		VariantWeightUnit:       weightUnit,
		VariantGrams:            strconv.Itoa(grams),
		VariantInventoryTracker: inventoryTracker,
		CostPerItem:             cell(m.Row, "Cost per item"),
	}
}
