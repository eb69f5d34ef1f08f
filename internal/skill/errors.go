package skill

import "errors"

// Domain-specific errors for the skill package.
var (
	ErrSkillNotFound = errors.New("skill not found")
	ErrSkillExists   = errors.New("skill already exists")
	ErrEmptyName     = errors.New("skill name is empty")
)
