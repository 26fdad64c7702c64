package linker

import (
	"context"
)

// Recorder is a Runner that records calls instead of running a tool.
// Packages listed in Fail return their error.
type Recorder struct {
	Calls []string
	Fail  map[string]error
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{Fail: map[string]error{}}
}

// Link implements Runner
func (r *Recorder) Link(_ context.Context, pkg string) error {
	r.Calls = append(r.Calls, pkg)
	if err, ok := r.Fail[pkg]; ok {
		return err
	}
	return nil
}
