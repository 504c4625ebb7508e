package bootstrap

import (
	"context"

	"cleansched/internal/infra/mq"
	"cleansched/internal/infra/notify"
	"cleansched/internal/pkg/config"
	"cleansched/internal/usecase/commands"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewPublisher,
		NewNotifier,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (*mq.Publisher, error) {
	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func NewNotifier(publisher *mq.Publisher) commands.Notifier {
	return notify.NewQueueNotifier(publisher)
}
