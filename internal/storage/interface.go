package storage

import (
	"context"

	"github.com/mcoot/golfscore/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Course operations
	SaveCourse(ctx context.Context, course *model.Course) error
	GetCourse(ctx context.Context, id string) (*model.Course, error)
	ListCourses(ctx context.Context) ([]*model.Course, error)
	DeleteCourse(ctx context.Context, id string) error

	// Round operations
	SaveRound(ctx context.Context, round *model.RoundState) error
	GetRound(ctx context.Context, id model.RoundID) (*model.RoundState, error)
	DeleteRound(ctx context.Context, id model.RoundID) error
	RoundExists(ctx context.Context, id model.RoundID) (bool, error)

	// Settlement operations
	SaveSettlement(ctx context.Context, settlement *model.Settlement) error
	GetSettlement(ctx context.Context, roundID model.RoundID) (*model.Settlement, error)
	DeleteSettlement(ctx context.Context, roundID model.RoundID) error
}
