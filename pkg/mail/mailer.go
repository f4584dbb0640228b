package mail

import (
	"context"
	"fmt"

	"github.com/gorravana/boutique-backend/pkg/config"
	"github.com/gorravana/boutique-backend/pkg/logger"
)

// LogMailer writes outbound mail to the structured log instead of an SMTP
// relay. It is the delivery path for dev and staging; production swaps in a
// provider-backed implementation behind the same port.
type LogMailer struct {
	cfg  config.MailConfig
	logg *logger.Logger
}

func NewLogMailer(cfg config.MailConfig, logg *logger.Logger) (*LogMailer, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &LogMailer{cfg: cfg, logg: logg}, nil
}

func (m *LogMailer) SendTwoFactorCode(ctx context.Context, email string, code string) error {
	ctx = m.logg.WithFields(ctx, map[string]any{
		"mail_from": m.cfg.FromAddress,
		"mail_to":   email,
		"mail_kind": "two_factor_code",
		"code":      code,
	})
	m.logg.Info(ctx, "mail.sent")
	return nil
}
