package server

import (
	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/ukaji3/excelpreview-go/pkg/config"
)

// ToolName is the name of the single tool the server exposes.
const ToolName = "read_excel"

// ToolDescription is shown to clients listing the server's tools.
const ToolDescription = "Read an Excel workbook (.xlsx) or CSV file and preview its sheets, header and first rows"

// registerTools adds read_excel and its arguments to s.
func registerTools(s *mcp.StdioServer, h *Handler) {
	readExcel := mcp.NewTool(ToolName,
		mcp.WithDescription(ToolDescription),
		mcp.WithString(ArgFilePath, mcp.Required(), mcp.Description("Path to a .xlsx workbook or .csv file")),
		mcp.WithString(ArgSheetName, mcp.Description("Sheet to preview; defaults to the first sheet")),
	)
	s.RegisterTool(readExcel, h.HandleReadExcel)
}

// Server is a stdio MCP server with read_excel registered.
type Server struct {
	stdio   *mcp.StdioServer
	handler *Handler
}

// New creates a stdio server named after cfg and registers the handler.
func New(cfg config.ServerConfig, handler *Handler) *Server {
	stdio := mcp.NewStdioServer(cfg.Name, cfg.Version,
		mcp.WithStdioServerLogger(mcp.GetDefaultLogger()),
	)
	registerTools(stdio, handler)

	return &Server{stdio: stdio, handler: handler}
}

// Start serves requests on stdin/stdout until the input closes.
func (s *Server) Start() error {
	return s.stdio.Start()
}
