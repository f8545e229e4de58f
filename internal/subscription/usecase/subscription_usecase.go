package usecase

import (
	"context"

	subdomain "clipstream-backend/internal/subscription/domain"
	"clipstream-backend/internal/subscription/repository"
	"clipstream-backend/pkg/apperrors"
)

type SubscriptionUsecase interface {
	Subscribe(ctx context.Context, subscriberID, channelID string) (*subdomain.Subscription, error)
	Unsubscribe(ctx context.Context, subscriberID, channelID string) error
	Status(ctx context.Context, subscriberID, channelID string) (bool, error)

	// These back the auth usecase's channel-profile aggregation.
	CountSubscribers(ctx context.Context, channelID string) (int64, error)
	CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error)
	IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error)
}

type subscriptionUsecase struct {
	subRepo repository.SubscriptionRepository
}

func NewSubscriptionUsecase(subRepo repository.SubscriptionRepository) SubscriptionUsecase {
	return &subscriptionUsecase{
		subRepo: subRepo,
	}
}

// Subscribe is a no-op success when the subscription already exists.
// Subscribing to your own channel is rejected.
func (u *subscriptionUsecase) Subscribe(ctx context.Context, subscriberID, channelID string) (*subdomain.Subscription, error) {
	if channelID == "" {
		return nil, apperrors.NewValidation("channel id required")
	}
	if subscriberID == channelID {
		return nil, apperrors.NewValidation("you cannot subscribe to your own channel")
	}

	existing, err := u.subRepo.Find(ctx, subscriberID, channelID)
	if err != nil {
		return nil, apperrors.WrapInternal(err, "lookup subscription")
	}
	if existing != nil {
		return existing, nil
	}

	sub := &subdomain.Subscription{
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	if err := u.subRepo.Create(ctx, sub); err != nil {
		return nil, apperrors.WrapInternal(err, "persist subscription")
	}
	return sub, nil
}

func (u *subscriptionUsecase) Unsubscribe(ctx context.Context, subscriberID, channelID string) error {
	if channelID == "" {
		return apperrors.NewValidation("channel id required")
	}

	removed, err := u.subRepo.Delete(ctx, subscriberID, channelID)
	if err != nil {
		return apperrors.WrapInternal(err, "delete subscription")
	}
	if !removed {
		return apperrors.NewValidation("you are not subscribed to the channel")
	}
	return nil
}

func (u *subscriptionUsecase) Status(ctx context.Context, subscriberID, channelID string) (bool, error) {
	return u.IsSubscribed(ctx, subscriberID, channelID)
}

func (u *subscriptionUsecase) CountSubscribers(ctx context.Context, channelID string) (int64, error) {
	return u.subRepo.CountSubscribers(ctx, channelID)
}

func (u *subscriptionUsecase) CountSubscribedTo(ctx context.Context, subscriberID string) (int64, error) {
	return u.subRepo.CountSubscribedTo(ctx, subscriberID)
}

func (u *subscriptionUsecase) IsSubscribed(ctx context.Context, subscriberID, channelID string) (bool, error) {
	sub, err := u.subRepo.Find(ctx, subscriberID, channelID)
	if err != nil {
		return false, apperrors.WrapInternal(err, "lookup subscription")
	}
	return sub != nil, nil
}
