package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prpo-skupina4/optimizator-ms/internal/dto"
	"github.com/prpo-skupina4/optimizator-ms/internal/engine"
	"github.com/prpo-skupina4/optimizator-ms/internal/models"
	"github.com/prpo-skupina4/optimizator-ms/pkg/config"
	appErrors "github.com/prpo-skupina4/optimizator-ms/pkg/errors"
	"github.com/prpo-skupina4/optimizator-ms/pkg/export"
)

const cacheKeyPrefix = "optimize:"

// OptimizerService validates optimization requests, invokes the search
// engine and shapes the response. The engine itself stays pure; caching,
// metrics and logging live here.
type OptimizerService struct {
	opts          engine.Options
	maxCandidates int
	maxRequests   int
	cache         *CacheService
	cacheTTL      time.Duration
	metrics       *MetricsService
	validator     *validator.Validate
	logger        *zap.Logger
}

// NewOptimizerService wires optimizer dependencies.
func NewOptimizerService(cfg config.OptimizerConfig, cacheTTL time.Duration, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *OptimizerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = 512
	}
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = 64
	}
	return &OptimizerService{
		opts: engine.Options{
			NodeBudget:    cfg.NodeBudget,
			StrictPruning: cfg.StrictPruning,
		},
		maxCandidates: cfg.MaxCandidates,
		maxRequests:   cfg.MaxRequests,
		cache:         cache,
		cacheTTL:      cacheTTL,
		metrics:       metrics,
		validator:     validate,
		logger:        logger,
	}
}

// Optimize runs one timetable search. Infeasibility is a normal response
// with an empty slot list, never an error.
func (s *OptimizerService) Optimize(ctx context.Context, req dto.OptimizeRequest) (*dto.OptimizeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid optimization payload")
	}
	if req.Schedule.UserID != 0 && req.Schedule.UserID != req.UserID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "schedule owner does not match userId")
	}
	if len(req.Candidates) > s.maxCandidates {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("candidate pool exceeds supported limit (%d)", s.maxCandidates))
	}
	if len(req.Requirements.Requests) > s.maxRequests {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("request list exceeds supported limit (%d)", s.maxRequests))
	}

	key, err := cacheKey(req)
	if err == nil {
		var cached dto.OptimizeResponse
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return &cached, nil
		}
	}

	start := time.Now()
	result := engine.Solve(req.Schedule, req.Requirements, req.Candidates, s.opts)
	duration := time.Since(start)

	s.metrics.ObserveSearch(result, duration)
	s.logger.Info("optimization finished",
		zap.Int64("user_id", req.UserID),
		zap.Bool("feasible", result.Feasible),
		zap.Int("groups", result.Stats.Groups),
		zap.Int("nodes", result.Stats.NodesVisited),
		zap.Bool("budget_exhausted", result.Stats.BudgetExhausted),
		zap.Duration("duration", duration),
	)

	resp := &dto.OptimizeResponse{
		SolutionID: uuid.NewString(),
		Schedule:   models.Schedule{UserID: req.UserID, Slots: result.Slots},
		Feasible:   result.Feasible,
		Stats:      result.Stats,
	}
	if key != "" {
		_ = s.cache.Set(ctx, key, resp, s.cacheTTL)
	}
	return resp, nil
}

// Export runs the same optimization and renders the resulting timetable as
// CSV or PDF. An infeasible instance cannot be exported.
func (s *OptimizerService) Export(ctx context.Context, req dto.OptimizeRequest, format string) ([]byte, string, error) {
	resp, err := s.Optimize(ctx, req)
	if err != nil {
		return nil, "", err
	}
	if !resp.Feasible {
		return nil, "", appErrors.Clone(appErrors.ErrConflict, "no feasible timetable to export")
	}

	data := timetableDataset(resp.Schedule)
	switch format {
	case "", "csv":
		payload, err := export.NewCSVExporter().Render(data)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := export.NewPDFExporter().Render(data, fmt.Sprintf("Timetable %d", resp.Schedule.UserID))
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

// cacheKey hashes the canonical JSON encoding of the request so identical
// inputs map to the same cache entry.
func cacheKey(req dto.OptimizeRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return cacheKeyPrefix + hex.EncodeToString(sum[:]), nil
}

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func dayName(day int) string {
	if day >= 0 && day < len(dayNames) {
		return dayNames[day]
	}
	return fmt.Sprintf("Day %d", day)
}

func formatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func timetableDataset(schedule models.Schedule) export.Dataset {
	headers := []string{"Day", "Start", "End", "Subject", "Kind", "Location"}
	rows := make([]map[string]string, 0, len(schedule.Slots))
	for _, slot := range schedule.Slots {
		subject := ""
		if slot.Subject != nil {
			subject = slot.Subject.Code
		} else if slot.Activity != nil {
			subject = slot.Activity.Code
		}
		rows = append(rows, map[string]string{
			"Day":      dayName(slot.Day),
			"Start":    formatMinutes(slot.StartMinutes()),
			"End":      formatMinutes(slot.EndMinutes()),
			"Subject":  subject,
			"Kind":     string(slot.Kind),
			"Location": slot.Location,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
