package server

import "github.com/ironsheep/seam-carver-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var sessionIDProperty = map[string]interface{}{
	"type":        "string",
	"description": "Session id returned by seam_open",
}

var orientationProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"vertical", "horizontal"},
	"description": "vertical seams run top to bottom and remove a column; horizontal seams run left to right and remove a row",
}

var scaleProperty = map[string]interface{}{
	"type":        "number",
	"description": "Optional preview scale factor (e.g., 4.0 to enlarge small pictures). Default 1.0. Scaled sides may not exceed 8192 pixels",
	"default":     1.0,
	"maximum":     imaging.MaxPreviewScale,
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Session Management
		{
			Name:        "seam_open",
			Description: "Load an image file into a new seam carving session. Returns the session id and the picture dimensions.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "seam_close",
			Description: "Close a seam carving session and release its picture.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionIDProperty,
				},
				"required": []string{"session_id"},
			},
		},
		{
			Name:        "seam_dimensions",
			Description: "Get the current width and height of the session's picture.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionIDProperty,
				},
				"required": []string{"session_id"},
			},
		},

		// Energy and Seams
		{
			Name:        "seam_energy",
			Description: "Get the energy (dual-gradient magnitude) of one pixel. Border pixels have energy 1000.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionIDProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"session_id", "x", "y"},
			},
		},
		{
			Name:        "seam_find",
			Description: "Find the lowest-energy seam. Returns one coordinate per row (vertical) or per column (horizontal) and the seam's total energy.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id":  sessionIDProperty,
					"orientation": orientationProperty,
				},
				"required": []string{"session_id", "orientation"},
			},
		},
		{
			Name:        "seam_remove",
			Description: "Remove one seam, shrinking the picture by one column (vertical) or one row (horizontal). If no seam is given, the lowest-energy seam is removed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id":  sessionIDProperty,
					"orientation": orientationProperty,
					"seam": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Optional seam to remove: one x per row (vertical) or one y per column (horizontal), adjacent entries differing by at most 1",
					},
				},
				"required": []string{"session_id", "orientation"},
			},
		},

		// Rendering
		{
			Name:        "seam_picture",
			Description: "Return the session's current picture as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionIDProperty,
					"scale":      scaleProperty,
				},
				"required": []string{"session_id"},
			},
		},
		{
			Name:        "seam_energy_map",
			Description: "Render the energy of every pixel as a grayscale PNG (brighter means higher energy).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionIDProperty,
					"scale":      scaleProperty,
				},
				"required": []string{"session_id"},
			},
		},
		{
			Name:        "seam_overlay",
			Description: "Return the current picture with the lowest-energy seam highlighted.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id":  sessionIDProperty,
					"orientation": orientationProperty,
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Seam colour as #RGB or #RRGGBB (default #FF0000)",
						"default":     "#FF0000",
					},
					"scale": scaleProperty,
				},
				"required": []string{"session_id", "orientation"},
			},
		},
		{
			Name:        "seam_save",
			Description: "Write the session's current picture to disk as PNG, JPEG or BMP.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"session_id": sessionIDProperty,
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute output path",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"png", "jpeg", "bmp"},
						"description": "Output format. Inferred from the file extension when omitted",
					},
				},
				"required": []string{"session_id", "path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
