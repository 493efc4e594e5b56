package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mailer is a mock type for the Mailer type
type Mailer struct {
	mock.Mock
}

// Send provides a mock function with given fields: ctx, to, subject, body
func (_m *Mailer) Send(ctx context.Context, to string, subject string, body string) error {
	ret := _m.Called(ctx, to, subject, body)
	return ret.Error(0)
}
