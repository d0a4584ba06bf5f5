package server

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/seam-carver-mcp/internal/carving"
	"github.com/ironsheep/seam-carver-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "seam_open", "seam_remove").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	logrus.WithField("tool", params.Name).Debug("tool call")
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		logrus.WithError(err).WithField("tool", params.Name).Warn("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Looks up the session and locks its carver
//  4. Calls the appropriate carving/imaging function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Session Management
	case "seam_open":
		return s.handleSeamOpen(args)
	case "seam_close":
		return s.handleSeamClose(args)
	case "seam_dimensions":
		return s.handleSeamDimensions(args)

	// Energy and Seams
	case "seam_energy":
		return s.handleSeamEnergy(args)
	case "seam_find":
		return s.handleSeamFind(args)
	case "seam_remove":
		return s.handleSeamRemove(args)

	// Rendering
	case "seam_picture":
		return s.handleSeamPicture(args)
	case "seam_energy_map":
		return s.handleSeamEnergyMap(args)
	case "seam_overlay":
		return s.handleSeamOverlay(args)
	case "seam_save":
		return s.handleSeamSave(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Session Management Handlers ===

type seamOpenArgs struct {
	Path string `json:"path"`
}

// OpenResult describes a newly opened carving session.
type OpenResult struct {
	SessionID string `json:"session_id"`
	Path      string `json:"path"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

func (s *Server) handleSeamOpen(args json.RawMessage) (interface{}, error) {
	var a seamOpenArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	pic, err := s.cache.LoadPicture(a.Path)
	if err != nil {
		return nil, err
	}
	sess, err := s.sessions.open(a.Path, pic)
	if err != nil {
		return nil, err
	}
	return &OpenResult{
		SessionID: sess.id,
		Path:      a.Path,
		Width:     pic.Width(),
		Height:    pic.Height(),
	}, nil
}

type sessionArgs struct {
	SessionID string `json:"session_id"`
}

// CloseResult confirms a closed session.
type CloseResult struct {
	SessionID string `json:"session_id"`
	Closed    bool   `json:"closed"`
}

func (s *Server) handleSeamClose(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.sessions.close(a.SessionID); err != nil {
		return nil, err
	}
	return &CloseResult{SessionID: a.SessionID, Closed: true}, nil
}

// DimensionsResult contains the current width and height of a session's picture.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleSeamDimensions(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.sessions.withCarver(a.SessionID, func(c *carving.SeamCarver) (interface{}, error) {
		return &DimensionsResult{Width: c.Width(), Height: c.Height()}, nil
	})
}

// === Energy and Seam Handlers ===

type seamEnergyArgs struct {
	SessionID string `json:"session_id"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

// EnergyResult contains the energy of one pixel.
type EnergyResult struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Energy float64 `json:"energy"`
}

func (s *Server) handleSeamEnergy(args json.RawMessage) (interface{}, error) {
	var a seamEnergyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.sessions.withCarver(a.SessionID, func(c *carving.SeamCarver) (interface{}, error) {
		e, err := c.Energy(a.X, a.Y)
		if err != nil {
			return nil, err
		}
		return &EnergyResult{X: a.X, Y: a.Y, Energy: e}, nil
	})
}

type seamFindArgs struct {
	SessionID   string `json:"session_id"`
	Orientation string `json:"orientation"`
}

// SeamResult contains a seam and its total energy.
type SeamResult struct {
	Orientation string  `json:"orientation"`
	Seam        []int   `json:"seam"`
	TotalEnergy float64 `json:"total_energy"`
}

func (s *Server) handleSeamFind(args json.RawMessage) (interface{}, error) {
	var a seamFindArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	o, err := carving.ParseOrientation(a.Orientation)
	if err != nil {
		return nil, err
	}
	return s.sessions.withCarver(a.SessionID, func(c *carving.SeamCarver) (interface{}, error) {
		seam := c.FindSeam(o)
		total, err := c.SeamEnergy(seam, o)
		if err != nil {
			return nil, err
		}
		return &SeamResult{Orientation: o.String(), Seam: seam, TotalEnergy: total}, nil
	})
}

type seamRemoveArgs struct {
	SessionID   string `json:"session_id"`
	Orientation string `json:"orientation"`
	Seam        []int  `json:"seam,omitempty"`
}

// RemoveResult describes a removed seam and the picture size afterwards.
type RemoveResult struct {
	Orientation string `json:"orientation"`
	Removed     []int  `json:"removed"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

func (s *Server) handleSeamRemove(args json.RawMessage) (interface{}, error) {
	var a seamRemoveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	o, err := carving.ParseOrientation(a.Orientation)
	if err != nil {
		return nil, err
	}
	return s.sessions.withCarver(a.SessionID, func(c *carving.SeamCarver) (interface{}, error) {
		seam := a.Seam
		if seam == nil {
			seam = c.FindSeam(o)
		}
		if err := c.RemoveSeam(seam, o); err != nil {
			return nil, err
		}
		return &RemoveResult{
			Orientation: o.String(),
			Removed:     seam,
			Width:       c.Width(),
			Height:      c.Height(),
		}, nil
	})
}

// === Rendering Handlers ===

type seamPictureArgs struct {
	SessionID string  `json:"session_id"`
	Scale     float64 `json:"scale"`
}

func (s *Server) handleSeamPicture(args json.RawMessage) (interface{}, error) {
	var a seamPictureArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	return s.sessions.withCarver(a.SessionID, func(c *carving.SeamCarver) (interface{}, error) {
		return imaging.EncodePNG(c.Picture(), a.Scale)
	})
}

func (s *Server) handleSeamEnergyMap(args json.RawMessage) (interface{}, error) {
	var a seamPictureArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	return s.sessions.withCarver(a.SessionID, func(c *carving.SeamCarver) (interface{}, error) {
		img, err := imaging.EnergyMap(c.EnergyGrid(), c.Width(), c.Height())
		if err != nil {
			return nil, err
		}
		return imaging.EncodePNG(img, a.Scale)
	})
}

type seamOverlayArgs struct {
	SessionID   string  `json:"session_id"`
	Orientation string  `json:"orientation"`
	Color       string  `json:"color"`
	Scale       float64 `json:"scale"`
}

func (s *Server) handleSeamOverlay(args json.RawMessage) (interface{}, error) {
	var a seamOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	o, err := carving.ParseOrientation(a.Orientation)
	if err != nil {
		return nil, err
	}
	return s.sessions.withCarver(a.SessionID, func(c *carving.SeamCarver) (interface{}, error) {
		img, err := imaging.SeamOverlay(c.Picture(), c.FindSeam(o), o == carving.Vertical, a.Color)
		if err != nil {
			return nil, err
		}
		return imaging.EncodePNG(img, a.Scale)
	})
}

type seamSaveArgs struct {
	SessionID string `json:"session_id"`
	Path      string `json:"path"`
	Format    string `json:"format"`
}

func (s *Server) handleSeamSave(args json.RawMessage) (interface{}, error) {
	var a seamSaveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return s.sessions.withCarver(a.SessionID, func(c *carving.SeamCarver) (interface{}, error) {
		res, err := imaging.Save(c.Picture(), a.Path, a.Format)
		if err != nil {
			return nil, err
		}
		// A later seam_open of this path must see the new file
		s.cache.Evict(a.Path)
		return res, nil
	})
}
