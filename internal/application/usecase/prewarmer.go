package usecase

import (
	"context"
	"errors"

	"photovault/internal/application/usecase/abstraction"
	"photovault/internal/domain/entity"
	"photovault/internal/domain/repository/broker"
	"photovault/pkg/logger"
)

// Prewarmer consumes upload events and generates the default-size thumbnail
// ahead of the first viewer. Strictly best effort: every message is acked,
// a photo deleted before its event arrives is simply skipped.
type Prewarmer struct {
	receiver    broker.Receiver
	thumbnailer abstraction.Thumbnailer
	size        int
}

func NewPrewarmer(receiver broker.Receiver, thumbnailer abstraction.Thumbnailer, size int) *Prewarmer {
	return &Prewarmer{
		receiver:    receiver,
		thumbnailer: thumbnailer,
		size:        size,
	}
}

func (p *Prewarmer) Run(ctx context.Context, consumerName string) error {
	messages, err := p.receiver.Messages(ctx, consumerName)
	if err != nil {
		return err
	}

	for msg := range messages {
		p.handle(ctx, msg)
	}

	return nil
}

func (p *Prewarmer) handle(ctx context.Context, msg broker.Message) {
	id := msg.Body()

	download, err := p.thumbnailer.GetThumbnail(ctx, id, p.size)
	switch {
	case err == nil:
		_ = download.Body.Close()
	case isNotFound(err):
		logger.Debug("photo gone before prewarm", "id", id)
	default:
		logger.Warn("thumbnail prewarm failed", "id", id, "err", err)
	}

	if err := msg.Ack(); err != nil {
		logger.Warn("failed to ack prewarm message", "id", id, "err", err)
	}
}

func isNotFound(err error) bool {
	var notFound *entity.NotFoundError

	return errors.As(err, &notFound)
}
