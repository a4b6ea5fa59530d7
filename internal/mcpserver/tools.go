package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/startuz/xoxide/internal/scenery"
)

// packEntry is one pack in tool responses.
type packEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Score    uint8  `json:"score"`
	Region   string `json:"region,omitempty"`
}

// listPacksInput is the input schema for the list_packs tool.
type listPacksInput struct {
	Sorted bool `json:"sorted,omitempty" jsonschema:"Return packs in computed load order instead of manifest order"`
}

// listPacksOutput is the output schema for the list_packs tool.
type listPacksOutput struct {
	Packs []packEntry `json:"packs"`
}

// validateOrderOutput is the output schema for the validate_order tool.
type validateOrderOutput struct {
	Issues []issueEntry `json:"issues"`
}

// issueEntry is one layering problem in the validate_order response.
type issueEntry struct {
	Pack          string `json:"pack"`
	Severity      string `json:"severity"`
	Type          string `json:"type"`
	Message       string `json:"message"`
	FixSuggestion string `json:"fix_suggestion"`
	Details       string `json:"details"`
}

// pinPackInput is the input schema for the pin_pack tool.
type pinPackInput struct {
	Pack   string `json:"pack" jsonschema:"Exact pack folder name"`
	Score  uint8  `json:"score,omitempty" jsonschema:"Pinned load-priority score (0 loads first, 100 last)"`
	Remove bool   `json:"remove,omitempty" jsonschema:"Remove an existing pin instead of setting one"`
}

// pinPackOutput is the output schema for the pin_pack tool.
type pinPackOutput struct {
	Pack   string `json:"pack"`
	Pinned bool   `json:"pinned"`
	Score  uint8  `json:"score,omitempty"`
}

// registerTools registers the organizer tools with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_packs",
		Description: "List discovered scenery packs with category, status, and heuristic score",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input listPacksInput) (*mcp.CallToolResult, listPacksOutput, error) {
		packs, err := s.scan(ctx, input.Sorted)
		if err != nil {
			return nil, listPacksOutput{}, err
		}
		return nil, listPacksOutput{Packs: s.entries(packs)}, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "preview_order",
		Description: "Compute the heuristic load order without writing scenery_packs.ini",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, listPacksOutput, error) {
		packs, err := s.scan(ctx, true)
		if err != nil {
			return nil, listPacksOutput{}, err
		}
		return nil, listPacksOutput{Packs: s.entries(packs)}, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "validate_order",
		Description: "Check the current load order for known layering problems",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, validateOrderOutput, error) {
		packs, err := s.scan(ctx, false)
		if err != nil {
			return nil, validateOrderOutput{}, err
		}

		report := s.org.Lint(packs)
		out := validateOrderOutput{Issues: []issueEntry{}}
		for _, is := range report.Issues {
			out.Issues = append(out.Issues, issueEntry{
				Pack:          is.PackName,
				Severity:      is.Severity.String(),
				Type:          is.Type,
				Message:       is.Message,
				FixSuggestion: is.FixSuggestion,
				Details:       is.Details,
			})
		}
		return nil, out, nil
	})

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "pin_pack",
		Description: "Pin a pack to a fixed load-priority score, or remove an existing pin",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input pinPackInput) (*mcp.CallToolResult, pinPackOutput, error) {
		if input.Pack == "" {
			return nil, pinPackOutput{}, fmt.Errorf("pack is required")
		}

		if input.Remove {
			s.org.Model.Unpin(input.Pack)
		} else {
			s.org.Model.Pin(input.Pack, input.Score)
		}
		if err := s.org.SaveHeuristics(); err != nil {
			return nil, pinPackOutput{}, err
		}
		return nil, pinPackOutput{Pack: input.Pack, Pinned: !input.Remove, Score: input.Score}, nil
	})
}

// scan discovers all packs, optionally in computed load order.
func (s *Server) scan(ctx context.Context, sorted bool) ([]scenery.Pack, error) {
	packs, err := s.org.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("scanning packs: %w", err)
	}
	if sorted {
		s.org.Order(packs)
	}
	return packs, nil
}

// entries converts packs to the wire shape, including each pack's score.
func (s *Server) entries(packs []scenery.Pack) []packEntry {
	out := make([]packEntry, 0, len(packs))
	for _, p := range packs {
		out = append(out, packEntry{
			Name:     p.Name,
			Category: p.Category.String(),
			Status:   p.Status.String(),
			Score:    s.org.Model.Predict(p.Name, p.Path, s.org.Context(p)),
			Region:   p.Region,
		})
	}
	return out
}
