package service

import (
	"context"
	"errors"
	"testing"

	"vocab_drill/internal/config"
	"vocab_drill/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSES struct {
	mock.Mock
}

func (m *mockSES) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sesv2.SendEmailOutput)
	return out, args.Error(1)
}

func TestSESMailer_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 送信元・宛先・件名を設定して送信", func(t *testing.T) {
		client := new(mockSES)
		client.On("SendEmail", ctx, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
			return aws.ToString(in.FromEmailAddress) == "no-reply@example.com" &&
				len(in.Destination.ToAddresses) == 1 && in.Destination.ToAddresses[0] == "alice@example.com" &&
				aws.ToString(in.Content.Simple.Subject.Data) == "subject"
		})).Return(&sesv2.SendEmailOutput{}, nil).Once()

		m := &SESMailer{client: client, from: "no-reply@example.com"}
		require.NoError(t, m.Send(ctx, "alice@example.com", "subject", "body"))
		client.AssertExpectations(t)
	})

	t.Run("異常系: SES のエラーを返す", func(t *testing.T) {
		client := new(mockSES)
		client.On("SendEmail", ctx, mock.Anything).Return(nil, errors.New("throttled")).Once()

		m := &SESMailer{client: client, from: "no-reply@example.com"}
		assert.EqualError(t, m.Send(ctx, "alice@example.com", "s", "b"), "throttled")
	})
}

func TestNewMailer(t *testing.T) {
	cfg := &config.Config{}
	cfg.Mailer.Type = "log"
	assert.IsType(t, &LogMailer{}, NewMailer(cfg))

	cfg.Mailer.Type = "unknown"
	assert.IsType(t, &LogMailer{}, NewMailer(cfg))
}

func TestAchievementNotice(t *testing.T) {
	subject, body := achievementNotice("alice", []model.Achievement{
		{Title: "First Word", Description: "Learn your first word", Icon: "🎯"},
		{Title: "Streak Master", Description: "Maintain a 7-day learning streak", Icon: "🔥"},
	})
	assert.Contains(t, subject, "First Word, Streak Master")
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "🔥 Streak Master")
}
