package services

import (
	portsrepo "github.com/finwyse/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/finwyse/fin_tracker_app/internal/core/ports/services"
	"github.com/finwyse/fin_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, advisor portsrepo.Advisor) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit first: nearly every other service records into it.
	container.Audit = NewAuditService(repos.AuditRepo)

	// Profile is the state container the rest of the core reads and mutates.
	container.Profile = NewProfileService(repos.ProfileRepo, container.Audit)

	container.Fx = NewFxService()
	container.Reporting = NewReportingService(container.Profile, container.Fx)

	container.Expense = NewExpenseService(container.Profile, container.Audit)
	container.Budget = NewBudgetService(container.Profile, container.Reporting, container.Audit)
	container.Goal = NewGoalService(container.Profile, container.Audit)
	container.Planner = NewPlannerService(cfg, container.Profile, container.Reporting)
	container.Advisor = NewAdvisorService(container.Profile, container.Reporting, container.Fx, advisor, container.Audit)
	container.CSV = NewCSVService(container.Profile, container.Audit)
	container.Auth = NewAuthService(cfg, container.Audit)

	return container
}
