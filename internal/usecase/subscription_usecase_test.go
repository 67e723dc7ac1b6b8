package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/tapsilat/tapsilat-go/internal/config"
	mock_interfaces "github.com/tapsilat/tapsilat-go/internal/usecase/interfaces/mocks"
	"github.com/tapsilat/tapsilat-go/pkg/entities"
)

func TestSubscriptionUseCase_Create(t *testing.T) {
	t.Run("fills defaults without touching caller fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewSubscriptionUseCase(gateway, config.CheckoutConfig{SuccessURL: "https://shop.test/ok"}, nil)

		var sent entities.SubscriptionCreateRequest
		gateway.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub entities.SubscriptionCreateRequest) (entities.SubscriptionCreateResponse, error) {
				sent = sub
				return entities.SubscriptionCreateResponse{ReferenceID: "sub-1"}, nil
			})

		sub := entities.NewSubscriptionCreateRequest("Gold", 49.9, "TRY")
		sub.FailureURL = entities.Ptr("https://caller.test/fail")
		res, err := uc.Create(context.Background(), sub)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if res.ReferenceID != "sub-1" {
			t.Fatalf("unexpected response: %+v", res)
		}
		if sent.ExternalReferenceID == nil || *sent.ExternalReferenceID == "" {
			t.Fatalf("expected generated external reference")
		}
		if sent.SuccessURL == nil || *sent.SuccessURL != "https://shop.test/ok" {
			t.Fatalf("expected configured success url")
		}
		if *sent.FailureURL != "https://caller.test/fail" {
			t.Fatalf("caller failure url overwritten: %s", *sent.FailureURL)
		}
		if sub.ExternalReferenceID != nil || sub.SuccessURL != nil {
			t.Fatalf("caller request modified: %+v", sub)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewSubscriptionUseCase(nil, config.CheckoutConfig{}, nil)
		_, err := uc.Create(context.Background(), entities.NewSubscriptionCreateRequest("Gold", 1, "TRY"))
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})
}

func TestSubscriptionUseCase_GetAndCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewSubscriptionUseCase(gateway, config.CheckoutConfig{}, nil)

	ref := "sub-1"
	gateway.EXPECT().GetSubscription(gomock.Any(), entities.SubscriptionGetRequest{ReferenceID: &ref}).
		Return(entities.SubscriptionDetail{Title: "Gold", IsActive: true}, nil)
	gateway.EXPECT().CancelSubscription(gomock.Any(), entities.SubscriptionCancelRequest{ReferenceID: &ref}).
		Return(entities.NewRaw(map[string]any{"is_success": true}), nil)

	detail, err := uc.Get(context.Background(), "sub-1")
	if err != nil || !detail.IsActive {
		t.Fatalf("unexpected detail: %+v %v", detail, err)
	}
	if _, err := uc.Cancel(context.Background(), "sub-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := uc.Get(context.Background(), ""); !errors.Is(err, ErrInvalidReferenceID) {
		t.Fatalf("expected ErrInvalidReferenceID, got %v", err)
	}
}
