// Package server exposes workbook previews as the read_excel MCP tool.
package server

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/ukaji3/excelpreview-go/pkg/excelpreview"
	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/cache"
	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/models"
	"github.com/ukaji3/excelpreview-go/pkg/excelpreview/output"
	"github.com/ukaji3/excelpreview-go/pkg/log"
	"github.com/ukaji3/excelpreview-go/pkg/metrics"
)

// Tool argument names.
const (
	ArgFilePath  = "filePath"
	ArgSheetName = "sheetName"
)

// FailureMarker prefixes every error response.
const FailureMarker = "❌"

const (
	msgMissingPath      = FailureMarker + " Missing required parameter: filePath"
	msgFileNotFound     = FailureMarker + " File not found: %s"
	msgUnsupportedType  = FailureMarker + " Unsupported file type: %s (supported: .xlsx, .csv)"
	msgExtractionFailed = FailureMarker + " Failed to read file. Make sure it is a valid .xlsx or .csv file."
)

// Handler serves read_excel calls against a shared session cache.
type Handler struct {
	cache     *cache.Cache
	extractor excelpreview.Extractor
	logger    *zap.SugaredLogger
	tracker   *metrics.LatencyTracker
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *zap.SugaredLogger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithLatencyTracker records per-stage latencies into tracker.
func WithLatencyTracker(tracker *metrics.LatencyTracker) HandlerOption {
	return func(h *Handler) {
		h.tracker = tracker
	}
}

// NewHandler creates a Handler. c and extractor are required.
func NewHandler(c *cache.Cache, extractor excelpreview.Extractor, opts ...HandlerOption) *Handler {
	h := &Handler{
		cache:     c,
		extractor: extractor,
		logger:    log.Nop(),
		tracker:   metrics.NewLatencyTracker(0.01),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Cache returns the session cache the handler reads through.
func (h *Handler) Cache() *cache.Cache {
	return h.cache
}

// Tracker returns the latency tracker the handler records into.
func (h *Handler) Tracker() *metrics.LatencyTracker {
	return h.tracker
}

// ReadExcel produces the preview report for filePath, or a failure message.
// It never returns an error: every failure is reported as text.
func (h *Handler) ReadExcel(filePath, sheetName string) string {
	defer h.tracker.Since(metrics.OpReadExcel, time.Now())

	logger := h.logger.With("request_id", uuid.NewString(), "file_path", filePath)

	if filePath == "" {
		logger.Warnw("read_excel called without a file path")
		return msgMissingPath
	}

	if err := checkReadable(filePath); err != nil {
		logger.Infow("file not readable", "error", err)
		return fmt.Sprintf(msgFileNotFound, filePath)
	}

	kind := excelpreview.Classify(filePath)
	if kind == models.SourceUnsupported {
		logger.Infow("unsupported file type")
		return fmt.Sprintf(msgUnsupportedType, filePath)
	}

	wb, hit, err := h.cache.GetOrLoad(filePath, func() (*models.Workbook, error) {
		defer h.tracker.Since(metrics.OpExtract, time.Now())
		return h.extractor.Extract(filePath, kind)
	})
	if err != nil {
		logger.Errorw("extraction failed", "kind", kind, "error", err)
		return msgExtractionFailed
	}
	logger.Debugw("workbook ready", "kind", kind, "cache_hit", hit, "sheets", len(wb.SheetNames))

	start := time.Now()
	report := output.RenderPreview(wb, sheetName)
	h.tracker.Since(metrics.OpRender, start)

	return report
}

// HandleReadExcel adapts ReadExcel to the MCP tool handler signature.
// The returned error is always nil.
func (h *Handler) HandleReadExcel(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filePath := stringArg(req, ArgFilePath)
	sheetName := stringArg(req, ArgSheetName)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(h.ReadExcel(filePath, sheetName)),
		},
	}, nil
}

func stringArg(req *mcp.CallToolRequest, name string) string {
	if req == nil {
		return ""
	}
	if arg, ok := req.Params.Arguments[name]; ok {
		if s, ok := arg.(string); ok {
			return s
		}
	}
	return ""
}

// checkReadable reports whether path names an entry that can be opened.
func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
