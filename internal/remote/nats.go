// Package remote connects finished games and best scores to shared services:
// NATS for publishing results and Redis for a best score shared between hosts.
package remote

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nats-io/nats.go"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

// DefaultSubject is the NATS subject finished games are published on.
const DefaultSubject = "t2048.game.ended"

// ResultMessage is the JSON payload published for every finished game.
type ResultMessage struct {
	Variant    string            `json:"variant"`
	Player     string            `json:"player,omitempty"`
	Result     engine.GameResult `json:"result"`
	FinishedAt time.Time         `json:"finished_at"`
}

// Publisher is the subset of *nats.Conn used to send results.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSSync publishes finished games. It implements engine.ScoreSync.
type NATSSync struct {
	pub     Publisher
	subject string
	variant string
	player  string
	now     func() time.Time
}

// NewNATSSync creates a sync publishing on subject; empty means DefaultSubject.
func NewNATSSync(pub Publisher, subject, variant, player string) *NATSSync {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NATSSync{pub: pub, subject: subject, variant: variant, player: player, now: time.Now}
}

// GameEnded implements engine.ScoreSync.
func (s *NATSSync) GameEnded(result engine.GameResult) error {
	data, err := json.Marshal(ResultMessage{
		Variant:    s.variant,
		Player:     s.player,
		Result:     result,
		FinishedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("remote: cannot encode result: %w", err)
	}
	if err := s.pub.Publish(s.subject, data); err != nil {
		return fmt.Errorf("remote: cannot publish result: %w", err)
	}
	return nil
}

// NATSOptions configures DialNATS.
type NATSOptions struct {
	URL           string
	Name          string
	MaxReconnects int
	ReconnectWait time.Duration
}

// DialNATS connects to NATS, logging connection state changes.
func DialNATS(opts NATSOptions, logger *log.Logger) (*nats.Conn, error) {
	if logger == nil {
		logger = log.Default()
	}
	if opts.MaxReconnects == 0 {
		opts.MaxReconnects = 10
	}
	if opts.ReconnectWait == 0 {
		opts.ReconnectWait = 2 * time.Second
	}

	conn, err := nats.Connect(opts.URL,
		nats.Name(opts.Name),
		nats.MaxReconnects(opts.MaxReconnects),
		nats.ReconnectWait(opts.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("remote: cannot connect to nats %s: %w", opts.URL, err)
	}
	return conn, nil
}

// SubscribeResults decodes every result published on subject and hands it to fn.
// Malformed messages are logged and skipped.
func SubscribeResults(conn *nats.Conn, subject string, logger *log.Logger, fn func(ResultMessage)) (*nats.Subscription, error) {
	if subject == "" {
		subject = DefaultSubject
	}
	if logger == nil {
		logger = log.Default()
	}
	sub, err := conn.Subscribe(subject, func(msg *nats.Msg) {
		res, err := DecodeResult(msg.Data)
		if err != nil {
			logger.Warn("dropping malformed result", "subject", msg.Subject, "error", err)
			return
		}
		fn(res)
	})
	if err != nil {
		return nil, fmt.Errorf("remote: cannot subscribe to %s: %w", subject, err)
	}
	return sub, nil
}

// DecodeResult parses a published result.
func DecodeResult(data []byte) (ResultMessage, error) {
	var res ResultMessage
	if err := json.Unmarshal(data, &res); err != nil {
		return res, fmt.Errorf("remote: cannot decode result: %w", err)
	}
	return res, nil
}

var _ engine.ScoreSync = (*NATSSync)(nil)
