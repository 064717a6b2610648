package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/growth-tools/goal-report/pkg/models/api"
	"github.com/growth-tools/goal-report/pkg/models/domain"
	"github.com/growth-tools/goal-report/pkg/services/config"
	"github.com/growth-tools/goal-report/pkg/services/period"
	"github.com/growth-tools/goal-report/pkg/services/report"
	"github.com/growth-tools/goal-report/pkg/services/stats"
)

const queryTimeout = 60 * time.Second

// Handler serves goal reports for the sites registered in the profile
// registry.
type Handler struct {
	registry config.Registry
}

func NewHandler(registry config.Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) ListSites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	sites, err := h.registry.GetSites(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, sites); err != nil {
		logger.Error().Err(err).Msg("failed to encode site list")
	}
}

// GetReport handles GET /api/v1/sites/{site}/report. Query parameters:
// granularity, start, end, page, goals (comma-separated).
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	site := chi.URLParam(r, "site")

	cfg, err := h.registry.GetConfig(ctx, site)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	q := r.URL.Query()
	var goals []string
	if raw := q.Get("goals"); raw != "" {
		goals = strings.Split(raw, ",")
	}

	req, err := report.ParseRequest(q.Get("granularity"), q.Get("start"), q.Get("end"), q.Get("page"), goals)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	engine := report.NewEngine(stats.NewClient(cfg, queryTimeout))
	rep, err := engine.Generate(ctx, req)
	if err != nil {
		var alignErr *period.AlignmentError
		var queryErr *stats.QueryError
		switch {
		case errors.As(err, &alignErr):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.As(err, &queryErr):
			logger.Error().Err(err).Str("site", site).Msg("stats backend query failed")
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			logger.Error().Err(err).Str("site", site).Msg("failed to generate report")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	rep.Site = site

	if err := writeJSON(w, toAPIReport(rep)); err != nil {
		logger.Error().Err(err).Str("site", site).Msg("failed to encode report")
	}
}

func toAPIReport(rep *domain.Report) api.Report {
	sections := make([]api.ReportSection, 0, len(rep.Sections))
	for _, s := range rep.Sections {
		details := make([]api.ReportDetail, 0, len(s.Details))
		for _, d := range s.Details {
			details = append(details, api.ReportDetail{
				Name:        d.Name,
				Value:       d.Value,
				Unit:        d.Unit,
				Description: d.Description,
			})
		}
		sections = append(sections, api.ReportSection{
			Title:   s.Title,
			Summary: s.Summary,
			Details: details,
		})
	}

	return api.Report{
		Site:        rep.Site,
		Page:        rep.Page,
		Goals:       rep.Goals,
		Granularity: string(rep.Granularity),
		Period: api.TimePeriod{
			Start:    rep.Period.Start,
			End:      rep.Period.End,
			Duration: rep.Period.Duration,
		},
		Sections: sections,
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}
