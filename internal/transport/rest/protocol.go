package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
	"github.com/heartmarshall/inkblot-backend/internal/report"
	"github.com/heartmarshall/inkblot-backend/internal/service/protocol"
)

type protocolService interface {
	SubmitResponses(ctx context.Context, input protocol.SubmitInput) (*protocol.SubmitResult, error)
	ListResponses(ctx context.Context, subjectID uuid.UUID) ([]domain.Response, error)
	ComputeSummary(ctx context.Context, subjectID uuid.UUID) (*domain.StructuralSummary, error)
	GetSummary(ctx context.Context, subjectID uuid.UUID) (*domain.StructuralSummary, error)
	GetReport(ctx context.Context, subjectID uuid.UUID) (*report.Report, error)
	ValidateSymbol(kind, value string) (string, error)
}

// ProtocolHandler serves responses, summaries, reports and symbol checks.
type ProtocolHandler struct {
	svc protocolService
	log *slog.Logger
}

// NewProtocolHandler creates a ProtocolHandler.
func NewProtocolHandler(svc protocolService, logger *slog.Logger) *ProtocolHandler {
	return &ProtocolHandler{svc: svc, log: logger.With("handler", "protocol")}
}

type responseDTO struct {
	ID           string `json:"id,omitempty"`
	Card         string `json:"card"`
	N            int    `json:"n"`
	Time         string `json:"time,omitempty"`
	Response     string `json:"response,omitempty"`
	Inquiry      string `json:"inquiry,omitempty"`
	Rotation     string `json:"rotation,omitempty"`
	Comment      string `json:"comment,omitempty"`
	LocationNum  *int   `json:"loc_num,omitempty"`
	Location     string `json:"location"`
	DevQual      string `json:"dev_qual"`
	Determinants string `json:"determinants"`
	Pair         string `json:"pair,omitempty"`
	FormQual     string `json:"form_qual"`
	Contents     string `json:"contents"`
	Popular      string `json:"popular,omitempty"`
	Z            string `json:"z,omitempty"`
	Special      string `json:"special,omitempty"`
}

type submitRequest struct {
	Responses []responseDTO `json:"responses"`
	Append    bool          `json:"append"`
}

type submitResponse struct {
	Responses  []responseDTO               `json:"responses"`
	Advisories []protocol.ResponseAdvisory `json:"advisories"`
	Corrected  int                         `json:"corrected"`
	Summary    *summaryResponse            `json:"summary,omitempty"`
	Missing    []string                    `json:"missing_cards,omitempty"`
	ScoringErr string                      `json:"scoring_error,omitempty"`
}

type summaryResponse struct {
	SubjectID  string         `json:"subject_id"`
	Age        int            `json:"age"`
	ComputedAt time.Time      `json:"computed_at"`
	Fields     map[string]any `json:"fields"`
}

type validateRequest struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// SubmitResponses handles POST /subjects/{id}/responses.
func (h *ProtocolHandler) SubmitResponses(w http.ResponseWriter, r *http.Request) {
	id, ok := subjectID(w, r)
	if !ok {
		return
	}
	var req submitRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in := protocol.SubmitInput{SubjectID: id, Append: req.Append, Responses: make([]domain.Response, len(req.Responses))}
	for i, dto := range req.Responses {
		in.Responses[i] = fromResponseDTO(dto)
	}

	res, err := h.svc.SubmitResponses(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := submitResponse{
		Responses:  toResponseDTOs(res.Responses),
		Advisories: res.Advisories,
		Corrected:  res.Corrected,
		Missing:    res.Missing,
		ScoringErr: res.ScoringError,
	}
	if out.Advisories == nil {
		out.Advisories = []protocol.ResponseAdvisory{}
	}
	if res.Summary != nil {
		sum, err := toSummaryResponse(res.Summary)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		out.Summary = &sum
	}
	writeJSON(w, http.StatusOK, out)
}

// ListResponses handles GET /subjects/{id}/responses.
func (h *ProtocolHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	id, ok := subjectID(w, r)
	if !ok {
		return
	}
	rs, err := h.svc.ListResponses(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"responses": toResponseDTOs(rs)})
}

// ComputeSummary handles POST /subjects/{id}/summary.
func (h *ProtocolHandler) ComputeSummary(w http.ResponseWriter, r *http.Request) {
	h.summary(w, r, h.svc.ComputeSummary)
}

// GetSummary handles GET /subjects/{id}/summary.
func (h *ProtocolHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.summary(w, r, h.svc.GetSummary)
}

func (h *ProtocolHandler) summary(w http.ResponseWriter, r *http.Request, fetch func(context.Context, uuid.UUID) (*domain.StructuralSummary, error)) {
	id, ok := subjectID(w, r)
	if !ok {
		return
	}
	s, err := fetch(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out, err := toSummaryResponse(s)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GetReport handles GET /subjects/{id}/report.
func (h *ProtocolHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := subjectID(w, r)
	if !ok {
		return
	}
	rep, err := h.svc.GetReport(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// Validate handles POST /validate.
func (h *ProtocolHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	v, err := h.svc.ValidateSymbol(req.Kind, req.Value)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"kind": req.Kind, "value": v})
}

func toSummaryResponse(s *domain.StructuralSummary) (summaryResponse, error) {
	fields, err := report.Fields(*s)
	if err != nil {
		return summaryResponse{}, err
	}
	return summaryResponse{
		SubjectID:  s.SubjectID.String(),
		Age:        s.Age,
		ComputedAt: s.ComputedAt,
		Fields:     fields,
	}, nil
}

func fromResponseDTO(d responseDTO) domain.Response {
	return domain.Response{
		Card:         d.Card,
		ResponseNum:  d.N,
		Time:         d.Time,
		Verbalized:   d.Response,
		Inquiry:      d.Inquiry,
		Rotation:     d.Rotation,
		Comment:      d.Comment,
		LocationNum:  d.LocationNum,
		Location:     d.Location,
		DevQual:      d.DevQual,
		Determinants: d.Determinants,
		Pair:         d.Pair,
		FormQual:     d.FormQual,
		Content:      d.Contents,
		Popular:      d.Popular,
		Z:            d.Z,
		Special:      d.Special,
	}
}

func toResponseDTOs(rs []domain.Response) []responseDTO {
	out := make([]responseDTO, len(rs))
	for i, r := range rs {
		out[i] = responseDTO{
			ID:           r.ID.String(),
			Card:         r.Card,
			N:            r.ResponseNum,
			Time:         r.Time,
			Response:     r.Verbalized,
			Inquiry:      r.Inquiry,
			Rotation:     r.Rotation,
			Comment:      r.Comment,
			LocationNum:  r.LocationNum,
			Location:     r.Location,
			DevQual:      r.DevQual,
			Determinants: r.Determinants,
			Pair:         r.Pair,
			FormQual:     r.FormQual,
			Contents:     r.Content,
			Popular:      r.Popular,
			Z:            r.Z,
			Special:      r.Special,
		}
	}
	return out
}
