package http

import (
	"context"

	"github.com/pjmaster/project-api/internal/projects/domain"
)

// Store is the persistence surface the handlers need.
type Store interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, pjCd string) (*domain.Project, error)
	Create(ctx context.Context, in domain.CreateInput) error
	Update(ctx context.Context, pjCd string, in domain.UpdateInput) error
}

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	store Store
}

func New(store Store) *Handler {
	return &Handler{store: store}
}

// createReq mirrors the Project JSON. Lookup names, detail sub-records,
// abbreviation and order are accepted but not written.
type createReq struct {
	PjCd        *string  `json:"pjCd"`
	PjName      *string  `json:"pjName"`
	BuCd        *string  `json:"buCd"`
	Year        *int     `json:"year"`
	PlanSecCd   *string  `json:"planSecCd"`
	ConstTypeCd *string  `json:"constTypeCd"`
	RegionCd    *string  `json:"regionCd"`
	CustomerCd  *string  `json:"customerCd"`
	StartDate   *string  `json:"startDate"`
	TotalMM     *float64 `json:"totalMM"`
	TotalConst  *float64 `json:"totalConst"`
}

type updateReq struct {
	PjName *string `json:"pjName"`
	BuCd   *string `json:"buCd"`
	Year   *int    `json:"year"`
}
