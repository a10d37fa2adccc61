// Package models defines the persisted and transient data shapes for the
// capture pipeline: one SourceRecord per captured file, one AppSummaryRecord
// per project, and the Summary shape produced by the LLM execution pipeline.
package models

import "time"

// SourceRecord is the primary persisted unit: one per captured file, keyed
// by (ProjectName, Filepath).
type SourceRecord struct {
	ProjectName string `json:"project_name"`
	Filepath    string `json:"filepath"` // relative POSIX path from the project root
	Filename    string `json:"filename"`
	Type        string `json:"type"` // canonical file type from ResolveCanonicalType

	LinesCount int    `json:"lines_count"`
	Content    string `json:"content"`

	// Exactly one of Summary / SummaryError is set.
	Summary      *Summary `json:"summary,omitempty"`
	SummaryError string   `json:"summary_error,omitempty"`

	SummaryVector []float32 `json:"summary_vector,omitempty"`
	ContentVector []float32 `json:"content_vector,omitempty"`

	CapturedAt time.Time `json:"captured_at"`
}

// Key returns the record's primary key.
func (r *SourceRecord) Key() SourceKey {
	return SourceKey{ProjectName: r.ProjectName, Filepath: r.Filepath}
}

// SourceKey is the (projectName, filepath) idempotence key from spec.md §3/§4.9.
type SourceKey struct {
	ProjectName string
	Filepath    string
}

// Summary is the language-agnostic structured output of the LLM execution
// pipeline for one file. Field presence varies by canonical file type; this
// struct is the superset referenced by downstream report readers (spec.md §3).
type Summary struct {
	Name      string `json:"name,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Namespace string `json:"namespace,omitempty"`

	Purpose        string `json:"purpose"`
	Implementation string `json:"implementation"`

	InternalReferences []string `json:"internalReferences,omitempty"`
	ExternalReferences []string `json:"externalReferences,omitempty"`

	PublicMethods   []PublicMethod `json:"publicMethods,omitempty"`
	PublicConstants []string       `json:"publicConstants,omitempty"`

	DatabaseIntegration *DatabaseIntegration `json:"databaseIntegration,omitempty"`
	IntegrationPoints   []IntegrationPoint   `json:"integrationPoints,omitempty"`

	// Both aggregation shapes are kept live per spec.md §9 Open Questions:
	// a flat per-category list and a combined, bucketed view.
	StoredProcedures []string           `json:"storedProcedures,omitempty"`
	Triggers         []string           `json:"triggers,omitempty"`
	DBOperations     []DatabaseBucketOp `json:"dbOperations,omitempty"`

	ScheduledJobs []ScheduledJob `json:"scheduledJobs,omitempty"`
	Dependencies  []Dependency   `json:"dependencies,omitempty"`

	JSPMetrics         *JSPMetrics         `json:"jspMetrics,omitempty"`
	UIFramework        string              `json:"uiFramework,omitempty"`
	CodeQualityMetrics *CodeQualityMetrics `json:"codeQualityMetrics,omitempty"`
}

// PublicMethod describes one exported method/function surfaced by a Summary.
type PublicMethod struct {
	Name       string   `json:"name"`
	Signature  string   `json:"signature,omitempty"`
	Complexity string   `json:"complexity,omitempty"` // controlled vocabulary, see validation package
	CodeSmells []string `json:"codeSmells,omitempty"` // controlled vocabulary, see validation package
}

// DatabaseIntegration flags direct database access inside a file.
type DatabaseIntegration struct {
	Mechanism string `json:"mechanism,omitempty"` // controlled vocabulary
	Detail    string `json:"detail,omitempty"`
}

// DatabaseBucketOp is the combined, bucketed variant of stored-procedure /
// trigger reporting (spec.md §9 Open Questions, kept as a valid alternate
// shape alongside the flat StoredProcedures/Triggers fields).
type DatabaseBucketOp struct {
	Category      string `json:"category"`      // e.g. "procedure", "trigger"
	OperationType string `json:"operationType"` // controlled vocabulary
	Name          string `json:"name"`
}

// IntegrationPoint describes a discovered external integration endpoint.
type IntegrationPoint struct {
	Mechanism     string `json:"mechanism,omitempty"`     // controlled vocabulary
	Direction     string `json:"direction,omitempty"`     // controlled vocabulary
	OperationType string `json:"operationType,omitempty"` // controlled vocabulary
	Target        string `json:"target,omitempty"`
}

// ScheduledJob describes a discovered cron-like or scheduled task.
type ScheduledJob struct {
	Name     string `json:"name"`
	Schedule string `json:"schedule,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// Dependency describes one declared bill-of-materials dependency.
type Dependency struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// JSPMetrics captures JSP-specific scripting metrics.
type JSPMetrics struct {
	ScriptletLines  int `json:"scriptletLines,omitempty"`
	EmbeddedQueries int `json:"embeddedQueries,omitempty"`
}

// CodeQualityMetrics summarizes per-file complexity and smells.
type CodeQualityMetrics struct {
	Complexity string   `json:"complexity,omitempty"` // controlled vocabulary
	CodeSmells []string `json:"codeSmells,omitempty"` // controlled vocabulary
}

// AppSummaryRecord is the single, atomically-replaced aggregate per project
// produced by the out-of-scope insight-synthesis stage. It is modelled here
// only so the Store contract (C12) stays honest end to end.
type AppSummaryRecord struct {
	ProjectName string `json:"project_name"`

	BusinessProcesses      []string `json:"businessProcesses,omitempty"`
	BoundedContexts        []string `json:"boundedContexts,omitempty"`
	PotentialMicroservices []string `json:"potentialMicroservices,omitempty"`
	InferredArchitecture   string   `json:"inferredArchitecture,omitempty"`
	Technologies           []string `json:"technologies,omitempty"`
	AppDescription         string   `json:"appDescription,omitempty"`

	LLMProvider string   `json:"llmProvider,omitempty"`
	LLMModels   []string `json:"llmModels,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}
