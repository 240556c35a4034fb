package app

import (
	"github.com/saradorri/economyengine/internal/domain"
	"github.com/saradorri/economyengine/internal/infrastructure/external/groups"
	"github.com/saradorri/economyengine/internal/infrastructure/logger"
)

func (a *application) InitGroupService(log *logger.Logger) domain.GroupService {
	return groups.NewGroupService(a.config.Groups.URL, a.config.Groups.APIKey, a.config.Groups.RetryMax, log)
}
