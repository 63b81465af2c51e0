package mcp

import (
	"context"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/vijay-prabhu/careerfit/internal/analysis"
	"github.com/vijay-prabhu/careerfit/internal/logger"
)

func (s *Server) analyzeSkills(_ context.Context, _ *gomcp.CallToolRequest, input AnalyzeSkillsInput) (*gomcp.CallToolResult, analysis.MatchResult, error) {
	result, err := s.analyzer.Analyze(input.Skills)
	if err != nil {
		s.logger.Debug("analyze_skills failed",
			zap.String("skills", logger.TruncateForLog(input.Skills, 80)),
			zap.Error(err),
		)
		// The message is shown to the client as a tool error
		return nil, analysis.MatchResult{}, err
	}
	return nil, *result, nil
}

func (s *Server) listClusters(_ context.Context, _ *gomcp.CallToolRequest, _ ListClustersInput) (*gomcp.CallToolResult, ClustersOutput, error) {
	return nil, ClustersOutput{Clusters: s.analyzer.Store().Model().Entries()}, nil
}

func (s *Server) listJobs(_ context.Context, _ *gomcp.CallToolRequest, input ListJobsInput) (*gomcp.CallToolResult, JobsOutput, error) {
	industry := s.analyzer.Store().Industry()

	jobs := industry
	if input.Limit > 0 && input.Limit < len(jobs) {
		jobs = jobs[:input.Limit]
	}
	return nil, JobsOutput{Jobs: jobs, Total: len(industry)}, nil
}
