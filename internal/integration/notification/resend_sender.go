// Package notification delivers budget and inactivity alerts via Resend and
// runs the periodic sweep worker.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// ResendSender implements the adapter.NotificationSender interface using Resend.
type ResendSender struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendSender creates a new Resend-backed notification sender.
func NewResendSender(apiKey, fromName, fromEmail string) *ResendSender {
	return &ResendSender{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send delivers the notification to the user's email address.
func (s *ResendSender) Send(ctx context.Context, user *entity.User, notification *entity.Notification) error {
	subject, text := composeMessage(user, notification)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{user.Email},
		Subject: subject,
		Text:    text,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		if isPermanentError(err) {
			return domainerror.NewNotificationError(
				domainerror.ErrCodePermanentDeliveryFailure,
				"permanent delivery failure",
				domainerror.ErrPermanentDeliveryFailure,
			)
		}
		return domainerror.NewNotificationError(
			domainerror.ErrCodeTemporaryDeliveryFailure,
			"temporary delivery failure",
			domainerror.ErrTemporaryDeliveryFailure,
		)
	}
	return nil
}

// composeMessage builds the subject and plain text body for a notification.
func composeMessage(user *entity.User, n *entity.Notification) (subject, text string) {
	switch n.Type {
	case entity.NotificationTypeOverspend:
		subject = fmt.Sprintf("Budget exceeded for %s", n.Category)
		text = fmt.Sprintf(
			"Hi %s,\n\nYou have exceeded your %s budget this month by %s.\n\nThe SpendWise Team",
			user.Name, n.Category, n.OverspentAmount.StringFixed(2),
		)
	case entity.NotificationTypeInactivity:
		subject = "We miss your expenses"
		text = fmt.Sprintf(
			"Hi %s,\n\nYou have not logged any expense in the last %d days. A quick entry keeps your score accurate.\n\nThe SpendWise Team",
			user.Name, n.DaysInactive,
		)
	}
	return subject, text
}

// isPermanentError checks if the error is a permanent failure that should not
// be retried. 401/403/422 style responses are permanent; rate limits and 5xx
// are temporary.
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	permanentPatterns := []string{
		"401",
		"403",
		"422",
		"unauthorized",
		"forbidden",
		"validation",
		"invalid",
		"bad request",
	}
	for _, pattern := range permanentPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// LogSender logs notifications instead of delivering them. Used when no
// Resend API key is configured.
type LogSender struct{}

// NewLogSender creates a new log-only sender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the notification that would have been delivered.
func (s *LogSender) Send(ctx context.Context, user *entity.User, notification *entity.Notification) error {
	subject, _ := composeMessage(user, notification)
	slog.Info("Notification delivery skipped, no email provider configured",
		"user_id", user.ID,
		"type", notification.Type,
		"subject", subject,
	)
	return nil
}

// MockSender is a NotificationSender implementation for tests.
type MockSender struct {
	Sent       []*entity.Notification
	ShouldFail bool
}

// NewMockSender creates a new mock sender.
func NewMockSender() *MockSender {
	return &MockSender{Sent: make([]*entity.Notification, 0)}
}

// Send records the notification instead of delivering it.
func (m *MockSender) Send(ctx context.Context, user *entity.User, notification *entity.Notification) error {
	if m.ShouldFail {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeTemporaryDeliveryFailure,
			"mock delivery failure",
			domainerror.ErrTemporaryDeliveryFailure,
		)
	}
	m.Sent = append(m.Sent, notification)
	return nil
}

var _ adapter.NotificationSender = (*ResendSender)(nil)
var _ adapter.NotificationSender = (*LogSender)(nil)
var _ adapter.NotificationSender = (*MockSender)(nil)
