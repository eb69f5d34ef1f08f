package usecase

import (
	"time"

	"skill-tracking-assistant/internal/skill/repository"
	"skill-tracking-assistant/pkg/datemath"
	pkgLog "skill-tracking-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	clock    func() time.Time
}

// New creates a new skill UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		clock:    time.Now,
	}
}
