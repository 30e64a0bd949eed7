package event

import (
	"context"

	"github.com/ecodeclub/cvhub/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go ResumeParsedEventProducer
type ResumeParsedEventProducer interface {
	Produce(ctx context.Context, evt ResumeParsedEvent) error
}

func NewResumeParsedEventProducer(q mq.MQ) (ResumeParsedEventProducer, error) {
	return mqx.NewGeneralProducer[ResumeParsedEvent](q, ResumeParsedEventName)
}
