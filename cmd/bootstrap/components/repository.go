package components

import (
	"cleansched/internal/infra/readstore"
	"cleansched/internal/infra/repository"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewBookingRepository,
		repository.NewPaymentReceiveRepository,
		readstore.NewBookingReadStore,
		readstore.NewReportReadStore,
		readstore.NewUserReadStore,
	),
)
