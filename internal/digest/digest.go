// Package digest mails a daily summary of assets whose maintenance is due or
// whose warranty is about to end.
package digest

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/rogerio-castellano/asset-inventory/internal/metrics"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
	"github.com/rogerio-castellano/asset-inventory/internal/redissvc"
	"github.com/rogerio-castellano/asset-inventory/internal/repo"
	"go.uber.org/zap"
)

const claimTTL = 36 * time.Hour

type Service struct {
	assets repo.AssetRepository
	mailer Mailer
	rs     *redissvc.RedisService
	log    *zap.Logger
	now    func() time.Time
}

func NewService(assets repo.AssetRepository, mailer Mailer, log *zap.Logger) *Service {
	return &Service{assets: assets, mailer: mailer, log: log, now: time.Now}
}

// WithRedis makes replicas sharing rs send at most one digest per day.
func (s *Service) WithRedis(rs *redissvc.RedisService) *Service {
	s.rs = rs
	return s
}

// Run sends the digest every day at hour (local time) until ctx is done.
func (s *Service) Run(ctx context.Context, hour int) {
	for {
		now := s.now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
		}

		if _, err := s.SendOnce(ctx); err != nil {
			s.log.Error("daily digest", zap.Error(err))
		}
	}
}

// SendOnce builds and mails the digest for the current time. It reports
// false when there was nothing to send or another replica already sent it.
func (s *Service) SendOnce(ctx context.Context) (bool, error) {
	records, err := s.assets.GetAll()
	if err != nil {
		return false, fmt.Errorf("failed to load assets: %w", err)
	}

	ref := s.now()
	body, ok := BuildHTML(ref, metrics.MaintenanceBuckets(records, ref), metrics.WarrantyBuckets(records, ref))
	if !ok {
		s.log.Debug("digest skipped, nothing due")
		return false, nil
	}

	var key string
	if s.rs != nil {
		key = s.rs.Key("digest:" + ref.Format("2006-01-02"))
		claimed, err := s.rs.Rdb().SetNX(ctx, key, ref.Unix(), claimTTL).Result()
		if err != nil {
			return false, fmt.Errorf("failed to claim digest: %w", err)
		}
		if !claimed {
			return false, nil
		}
	}

	subject := "Inventario: resumen diario " + ref.Format("2006-01-02")
	if err := s.mailer.Send(subject, body); err != nil {
		if key != "" {
			// Release the claim so the next tick or another replica can retry today.
			if delErr := s.rs.Rdb().Del(ctx, key).Err(); delErr != nil {
				s.log.Warn("failed to release digest claim", zap.String("key", key), zap.Error(delErr))
			}
		}
		return false, err
	}
	s.log.Info("digest sent", zap.String("subject", subject))
	return true, nil
}

// BuildHTML renders the overdue and upcoming maintenance and warranty lists.
// ok is false when every listed bucket is empty.
func BuildHTML(ref time.Time, m metrics.MaintenanceReport, w metrics.WarrantyReport) (string, bool) {
	sections := []struct {
		title  string
		assets []models.Asset
		date   func(models.Asset) string
	}{
		{"Mantenimiento vencido", m.Overdue, nextMtto},
		{"Mantenimiento en 7 días", m.DueWeek, nextMtto},
		{"Garantía vencida", w.Expired, warrantyEnd},
		{"Garantía vence en 15 días", w.Within15, warrantyEnd},
		{"Garantía vence en 30 días", w.Within30, warrantyEnd},
	}

	total := 0
	for _, sec := range sections {
		total += len(sec.assets)
	}
	if total == 0 {
		return "", false
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<h2>Resumen de inventario %s</h2>", ref.Format("2006-01-02"))
	for _, sec := range sections {
		if len(sec.assets) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "<h3>%s (%d)</h3><ul>", sec.title, len(sec.assets))
		for _, a := range sec.assets {
			fmt.Fprintf(&sb, "<li><b>%s</b> %s %s <code>%s</code> (%s)</li>",
				html.EscapeString(label(a.FullName)),
				html.EscapeString(a.Brand),
				html.EscapeString(a.Model),
				html.EscapeString(a.SerialNumber),
				html.EscapeString(sec.date(a)))
		}
		sb.WriteString("</ul>")
	}
	return sb.String(), true
}

func nextMtto(a models.Asset) string    { return a.NextMtto }
func warrantyEnd(a models.Asset) string { return a.WarrantyEndDate }

func label(s string) string {
	if s == "" {
		return metrics.Unspecified
	}
	return s
}
