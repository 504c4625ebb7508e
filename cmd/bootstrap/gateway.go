package bootstrap

import (
	"cleansched/internal/infra/gateway"
	"cleansched/internal/pkg/config"
	"cleansched/internal/usecase/commands"

	"github.com/omise/omise-go"
	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewOmiseClient,
		NewPaymentGateway,
	),
)

func NewOmiseClient(cfg config.Config) (*omise.Client, error) {
	return gateway.NewOmiseClient(cfg.Payment)
}

func NewPaymentGateway(client *omise.Client, cfg config.Config) commands.PaymentGateway {
	return gateway.NewOmiseGateway(client, cfg.Payment)
}
