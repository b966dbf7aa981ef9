package coupons

import (
	"context"
	"fmt"

	"futbolya/internal/api"
	"futbolya/internal/domain"

	"github.com/rs/zerolog"
)

type Service struct {
	client *api.Client
	log    zerolog.Logger
}

func NewService(client *api.Client, log zerolog.Logger) *Service {
	return &Service{client: client, log: log}
}

type CouponInput struct {
	Code               string  `json:"code,omitempty"`
	DiscountPercentage float64 `json:"discountPercentage,omitempty"`
	Business           int64   `json:"business,omitempty"`
	Active             *bool   `json:"active,omitempty"`
	ExpiresAt          string  `json:"expiresAt,omitempty"`
}

func (s *Service) List(ctx context.Context) ([]domain.Coupon, error) {
	return api.GetList[domain.Coupon](ctx, s.client, "/api/coupons/getAll")
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Coupon, error) {
	c, err := api.GetOne[domain.Coupon](ctx, s.client, fmt.Sprintf("/api/coupons/getOne/%d", id))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) Create(ctx context.Context, in CouponInput) (*domain.Coupon, error) {
	c, err := api.PostJSON[domain.Coupon](ctx, s.client, "/api/coupons/add", in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("code", in.Code).Msg("coupon created")
	return &c, nil
}

func (s *Service) Update(ctx context.Context, id int64, in CouponInput) (*domain.Coupon, error) {
	c, err := api.PatchJSON[domain.Coupon](ctx, s.client, fmt.Sprintf("/api/coupons/update/%d", id), in)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) Remove(ctx context.Context, id int64) error {
	return api.Delete(ctx, s.client, fmt.Sprintf("/api/coupons/remove/%d", id))
}
