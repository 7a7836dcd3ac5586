package mocks

import (
	"context"

	"eats-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type TokenIssuer struct {
	mock.Mock
}

func (m *TokenIssuer) Sign(userID int) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *TokenIssuer) Verify(token string) (int, error) {
	args := m.Called(token)
	return args.Int(0), args.Error(1)
}

type MailSender struct {
	mock.Mock
}

func (m *MailSender) SendVerificationEmail(email, code string) error {
	return m.Called(email, code).Error(0)
}

type OrderEventPublisher struct {
	mock.Mock
}

func (m *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}

type PageCache struct {
	mock.Mock
}

func (m *PageCache) RestaurantsPageKey(page int) string {
	return m.Called(page).String(0)
}

func (m *PageCache) SearchKey(query string, page int) string {
	return m.Called(query, page).String(0)
}

func (m *PageCache) CategoryPageKey(slug string, page int) string {
	return m.Called(slug, page).String(0)
}

func (m *PageCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *PageCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	return m.Called(ctx, key, value).Error(0)
}
