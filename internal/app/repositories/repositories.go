package repositories

import (
	"github.com/yigit/uniregistry/internal/app/registry"
	"github.com/yigit/uniregistry/internal/pkg/rollnumber"
)

// Repositories holds the session-scoped stores owned by the hosting process
type Repositories struct {
	Registry               *registry.Registry
	ClassSessionRepository *ClassSessionRepository
}

// NewRepositories initializes an empty registry and class ledger
func NewRepositories(rolls *rollnumber.Generator, opts registry.Options) *Repositories {
	return &Repositories{
		Registry:               registry.New(rolls, opts),
		ClassSessionRepository: NewClassSessionRepository(),
	}
}
