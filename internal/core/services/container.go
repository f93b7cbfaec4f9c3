package services

import (
	portsrepo "github.com/Derezo/accounting-api/internal/core/ports/repositories"
	portssvc "github.com/Derezo/accounting-api/internal/core/ports/services"
)

// NewContainer creates a new service container with properly initialized dependencies
func NewContainer(repos *portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Journal: NewJournalService(repos.AccountDirectory, DefaultTemplateRegistry(), options...),
	}
}
