package rest

import "net/http"

// Routes groups the handlers mounted by NewRouter.
type Routes struct {
	Subjects    *SubjectHandler
	Protocol    *ProtocolHandler
	Health      *HealthHandler
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers every endpoint on a new ServeMux. The metrics
// endpoint is only mounted when a handler is given.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	if rt.Metrics != nil {
		mux.Handle("GET "+rt.MetricsPath, rt.Metrics)
	}

	mux.HandleFunc("POST /subjects", rt.Subjects.Create)
	mux.HandleFunc("GET /subjects/{id}", rt.Subjects.Get)

	mux.HandleFunc("POST /subjects/{id}/responses", rt.Protocol.SubmitResponses)
	mux.HandleFunc("GET /subjects/{id}/responses", rt.Protocol.ListResponses)
	mux.HandleFunc("POST /subjects/{id}/summary", rt.Protocol.ComputeSummary)
	mux.HandleFunc("GET /subjects/{id}/summary", rt.Protocol.GetSummary)
	mux.HandleFunc("GET /subjects/{id}/report", rt.Protocol.GetReport)
	mux.HandleFunc("POST /validate", rt.Protocol.Validate)

	return mux
}
