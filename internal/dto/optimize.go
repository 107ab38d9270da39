package dto

import (
	"github.com/prpo-skupina4/optimizator-ms/internal/engine"
	"github.com/prpo-skupina4/optimizator-ms/internal/models"
)

// OptimizeRequest carries one user's full optimization input: the already
// placed commitments, the requirement rule set and the pool of offered
// candidate slots.
type OptimizeRequest struct {
	UserID       int64               `json:"userId" validate:"required"`
	Schedule     models.Schedule     `json:"schedule"`
	Requirements models.Requirements `json:"requirements"`
	Candidates   []models.Slot       `json:"candidates" validate:"dive"`
}

// OptimizeResponse returns the combined timetable. An empty slot list with
// Feasible=false means no assignment satisfies the requirements.
type OptimizeResponse struct {
	SolutionID string          `json:"solutionId"`
	Schedule   models.Schedule `json:"schedule"`
	Feasible   bool            `json:"feasible"`
	Stats      engine.Stats    `json:"stats"`
}
