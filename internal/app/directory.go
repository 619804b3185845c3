package app

import (
	"github.com/betops/bonusledger/internal/domain"
	"github.com/betops/bonusledger/internal/infrastructure/external/directory"
)

func (a *application) InitDirectoryService() domain.DirectoryService {
	return directory.NewDirectoryService(
		a.config.Directory.URL,
		a.config.Directory.APIKey,
		a.config.Directory.RetryMax,
		a.config.Directory.TimeoutSec,
	)
}
