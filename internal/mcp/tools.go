package mcp

import (
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vijay-prabhu/careerfit/internal/artifact"
	"github.com/vijay-prabhu/careerfit/internal/cluster"
)

// AnalyzeSkillsInput is the input of analyze_skills
type AnalyzeSkillsInput struct {
	Skills string `json:"skills" jsonschema:"Comma-separated skills, e.g. 'python, sql, excel'"`
}

// ListClustersInput is the input of list_clusters
type ListClustersInput struct{}

// ClustersOutput is the output of list_clusters
type ClustersOutput struct {
	Clusters []cluster.Entry `json:"clusters"`
}

// ListJobsInput is the input of list_jobs
type ListJobsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of jobs to return (default: all)"`
}

// JobsOutput is the output of list_jobs
type JobsOutput struct {
	Jobs  []artifact.IndustryRecord `json:"jobs"`
	Total int                       `json:"total"`
}

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "analyze_skills",
		Description: "Analyze a comma-separated list of skills. Returns the career cluster, the best matching industry job, matched and missing skills, the match percentage and the top ranked jobs by similarity.",
		Annotations: &gomcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.analyzeSkills)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_clusters",
		Description: "List the career clusters skills can be assigned to.",
		Annotations: &gomcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.listClusters)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_jobs",
		Description: "List the industry jobs that skills are ranked against, with their required skills.",
		Annotations: &gomcp.ToolAnnotations{ReadOnlyHint: true},
	}, s.listJobs)
}
