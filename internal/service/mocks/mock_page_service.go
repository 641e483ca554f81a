package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) Hello(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockPageService) Lorem(ctx context.Context, id string) string {
	args := m.Called(ctx, id)
	return args.String(0)
}
