package platform

import (
	"github.com/aretw0/introspection"
)

// PipelineState exposes internal state for observability.
type PipelineState struct {
	Runs       int    `json:"runs"`
	LastRun    string `json:"last_run,omitempty"`
	LastError  string `json:"last_error,omitempty"`
	OutputPath string `json:"output_path"`
	Enumerator any    `json:"enumerator"`
}

// State implements introspection.Introspectable.
func (p *Pipeline) State() any {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s := PipelineState{
		Runs:       p.runs,
		OutputPath: p.renderer.OutputPath(),
		Enumerator: p.enum.State(),
	}
	if p.lastRun != nil {
		s.LastRun = p.lastRun.Format("2006-01-02T15:04:05Z07:00")
	}
	if p.lastErr != nil {
		s.LastError = p.lastErr.Error()
	}
	return s
}

// ComponentType implements introspection.Component.
func (p *Pipeline) ComponentType() string {
	return "pipeline"
}

var _ introspection.Introspectable = (*Pipeline)(nil)
var _ introspection.Component = (*Pipeline)(nil)
