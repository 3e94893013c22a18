package service

import (
	"context"
	"encoding/json"
	"log"

	"quickie-be/internal/dto"
	"quickie-be/internal/entity"
	"quickie-be/internal/repository/specification"
	"quickie-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService recomputes a perfume's aggregate rating from its
// reviews whenever a refresh message arrives.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// aggregateRating computes the mean rating. A perfume with no reviews
// goes back to zero rather than keeping a stale aggregate.
func aggregateRating(reviews []*entity.Review) (avg float64, count int) {
	if len(reviews) == 0 {
		return 0, 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(reviews)), len(reviews)
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.RefreshRatingMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal rating refresh message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	perfume, err := uow.PerfumeRepository().FindOne(ctx, specification.ByID{ID: payload.PerfumeId})
	if err != nil {
		log.Printf("[ERROR] Failed to get perfume %s: %v", payload.PerfumeId, err)
		msg.Nack()
		return
	}
	if perfume == nil {
		// Perfume deleted between review write and recompute.
		msg.Ack()
		return
	}

	reviews, err := uow.ReviewRepository().FindAll(ctx, specification.ByPerfumeID{PerfumeID: payload.PerfumeId})
	if err != nil {
		log.Printf("[ERROR] Failed to load reviews for perfume %s: %v", payload.PerfumeId, err)
		msg.Nack()
		return
	}

	avg, count := aggregateRating(reviews)

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.PerfumeRepository().UpdateRating(ctx, payload.PerfumeId, avg, count); err != nil {
		log.Printf("[ERROR] Failed to update rating for perfume %s: %v", payload.PerfumeId, err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	msg.Ack()
}
