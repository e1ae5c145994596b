package notification

import (
	"context"

	"go.uber.org/zap"

	"agriplot.io/agriplot/internal/pkg/logger"
)

// ConsoleEmailSender writes outbound email to the application log
// instead of a relay. It is the development default; deployments plug a
// real EmailSender in its place.
type ConsoleEmailSender struct{}

// SendEmail logs the email and reports success.
func (ConsoleEmailSender) SendEmail(_ context.Context, recipient, subject, template string, templateCtx map[string]interface{}) error {
	logger.Info("Outbound email (console backend)",
		zap.String("recipient", recipient),
		zap.String("subject", subject),
		zap.String("template", template),
		zap.Any("context", templateCtx),
	)
	return nil
}

var _ EmailSender = ConsoleEmailSender{}
