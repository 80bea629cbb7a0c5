package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mrdwine/catalog-engine/internal/domain"
	"github.com/mrdwine/catalog-engine/internal/infrastructure/feed"
)

// Download names of the generated import files
const (
	updateFileName = "MrDWine_Update_Clean.csv"
	createFileName = "MrDWine_IMPORT_READY.csv"
)

// CatalogSyncer loads storefront exports into the catalog
type CatalogSyncer interface {
	SyncBatch(ctx context.Context, table *domain.Table) (*domain.SyncResult, error)
}

// CatalogCounter reports how many entries the catalog holds
type CatalogCounter interface {
	Count(ctx context.Context) (int, error)
}

// FeedUpdater runs the update flow
type FeedUpdater interface {
	Process(ctx context.Context, table *domain.Table) (*domain.UpdateResult, error)
}

// FeedCreator runs the create flow
type FeedCreator interface {
	Process(ctx context.Context, table *domain.Table) (*domain.CreateResult, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog CatalogSyncer
	counter CatalogCounter
	updater FeedUpdater
	creator FeedCreator
}

// NewHandler creates a new HTTP handler. Any dependency may be nil; the
// endpoints that need it answer 503.
func NewHandler(catalog CatalogSyncer, counter CatalogCounter, updater FeedUpdater, creator FeedCreator) *Handler {
	return &Handler{
		catalog: catalog,
		counter: counter,
		updater: updater,
		creator: creator,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	resp := gin.H{
		"status":  "healthy",
		"service": "mrdwine-catalog-engine",
		"version": "1.0.0",
	}

	if h.counter != nil {
		n, err := h.counter.Count(c.Request.Context())
		if err != nil {
			log.Printf("[HEALTH] catalog count failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "degraded",
				"service": "mrdwine-catalog-engine",
				"error":   "catalog store unavailable",
			})
			return
		}
		resp["catalogEntries"] = n
	}

	c.JSON(http.StatusOK, resp)
}

// SyncCatalog loads an uploaded storefront export into the catalog
func (h *Handler) SyncCatalog(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog sync not configured"})
		return
	}

	table, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.catalog.SyncBatch(c.Request.Context(), table)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applied": result.Applied,
		"skipped": result.Skipped,
		"failed":  result.Failed,
		"runId":   result.RunID,
		"message": fmt.Sprintf("Catalog synced: %d variants stored.", result.Applied),
	})
}

// UpdateFeed matches a vendor update feed against the catalog
func (h *Handler) UpdateFeed(c *gin.Context) {
	if h.updater == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Feed update not configured"})
		return
	}

	table, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.updater.Process(c.Request.Context(), table)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if wantsCSV(c) {
		h.sendCSV(c, updateFileName, result.Columns, result.Rows)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"columns":   result.Columns,
		"rows":      result.Rows,
		"warnings":  result.Warnings,
		"matched":   result.Matched,
		"unmatched": result.Unmatched,
		"runId":     result.RunID,
	})
}

// CreateFeed clusters a new-products feed into an import file
func (h *Handler) CreateFeed(c *gin.Context) {
	if h.creator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Feed create not configured"})
		return
	}

	table, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.creator.Process(c.Request.Context(), table)
	if err != nil {
		h.respondError(c, err)
		return
	}

	records := feed.OutputRecords(result.Rows)
	if wantsCSV(c) {
		h.sendCSV(c, createFileName, domain.OutputColumns, records)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"columns":   domain.OutputColumns,
		"rows":      records,
		"groups":    result.Groups,
		"metrics":   result.Metrics,
		"redirects": result.Redirects,
		"warnings":  result.Warnings,
		"runId":     result.RunID,
	})
}

// readUpload parses the multipart "file" field. On failure it has already
// written the response.
func (h *Handler) readUpload(c *gin.Context) (*domain.Table, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Uploaded file is too large"})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": "multipart field 'file' is required",
		})
		return nil, false
	}

	format, err := feed.FormatFromFilename(fileHeader.Filename)
	if err != nil {
		h.respondError(c, err)
		return nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Printf("[UPLOAD] open %q failed: %v", fileHeader.Filename, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return nil, false
	}
	defer f.Close()

	table, err := feed.Read(f, format)
	if err != nil {
		h.respondError(c, err)
		return nil, false
	}

	log.Printf("[UPLOAD] %s: %d rows, %d columns", fileHeader.Filename, len(table.Rows), len(table.Columns))
	return table, true
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	var missing *domain.MissingColumnsError
	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required columns",
			"columns": missing.Columns,
		})
	case errors.Is(err, domain.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Unsupported file format",
			"details": err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
	case isTooLarge(err):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Uploaded file is too large"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "Request cancelled"})
	case errors.Is(err, domain.ErrStoreFailure):
		log.Printf("[ERROR] catalog store: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog store unavailable"})
	default:
		log.Printf("[ERROR] unexpected error: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Could not process file",
			"details": err.Error(),
		})
	}
}

func (h *Handler) sendCSV(c *gin.Context, filename string, columns []string, records [][]string) {
	var buf bytes.Buffer
	if err := feed.WriteCSV(&buf, columns, records); err != nil {
		log.Printf("[ERROR] write %s: %v", filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not render CSV"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func wantsCSV(c *gin.Context) bool {
	return c.Query("format") == "csv"
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
