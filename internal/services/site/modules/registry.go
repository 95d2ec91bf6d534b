// Package modules defines the site module registry.
package modules

import (
	module "github.com/volt-agency/site/internal/services/site/module"
	"github.com/volt-agency/site/internal/services/site/modules/health"
	"github.com/volt-agency/site/internal/services/site/modules/landing"
	"github.com/volt-agency/site/internal/services/site/modules/lead"
	"github.com/volt-agency/site/internal/services/site/modules/news"
	"github.com/volt-agency/site/internal/services/site/modules/processapi"
)

// DefaultModules returns every module the site serves.
func DefaultModules() []module.Module {
	return []module.Module{
		landing.New(),
		news.New(),
		lead.New(),
		processapi.New(),
		health.New(),
	}
}
