package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vijay-prabhu/careerfit/internal/output"
)

// Resource URIs
const (
	ClustersURI = "careerfit://clusters"
	IndustryURI = "careerfit://industry"
)

func (s *Server) registerResources() {
	s.server.AddResource(&gomcp.Resource{
		URI:         ClustersURI,
		Name:        "Career Clusters",
		Description: "Career clusters of the loaded model, one per line",
		MIMEType:    "text/plain",
	}, s.readClusters)

	s.server.AddResource(&gomcp.Resource{
		URI:         IndustryURI,
		Name:        "Industry Jobs",
		Description: "The industry table skills are ranked against",
		MIMEType:    "application/json",
	}, s.readIndustry)
}

func (s *Server) readClusters(_ context.Context, _ *gomcp.ReadResourceRequest) (*gomcp.ReadResourceResult, error) {
	var b strings.Builder
	for _, e := range s.analyzer.Store().Model().Entries() {
		fmt.Fprintf(&b, "%d: %s\n", e.ID, e.Name)
	}
	return textResource(ClustersURI, "text/plain", b.String()), nil
}

func (s *Server) readIndustry(_ context.Context, _ *gomcp.ReadResourceRequest) (*gomcp.ReadResourceResult, error) {
	var buf bytes.Buffer
	if err := output.JSONTo(&buf, s.analyzer.Store().Industry()); err != nil {
		return nil, fmt.Errorf("failed to encode industry table: %w", err)
	}
	return textResource(IndustryURI, "application/json", buf.String()), nil
}

func textResource(uri, mimeType, text string) *gomcp.ReadResourceResult {
	return &gomcp.ReadResourceResult{
		Contents: []*gomcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		}},
	}
}
