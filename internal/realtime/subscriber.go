// Package realtime delivers collection-change events over Redis pub/sub.
// One logical channel exists per collection; the payload carries an event
// kind list the console deliberately does not branch on.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/multierr"

	"github.com/stockroomhq/console/pkg/config"
	"github.com/stockroomhq/console/pkg/logger"
)

// Event is the decoded realtime message. Events lists the change kinds the
// backend reports; handlers treat every event identically.
type Event struct {
	Events  []string        `json:"events"`
	Payload json.RawMessage `json:"payload"`
}

// Handler receives every event for a subscribed collection. Handlers run
// sequentially on the subscriber goroutine, so a completed fetch always
// overwrites the previous render (last write wins).
type Handler func(ctx context.Context, collection string, event Event)

// Subscriber listens on one channel per collection.
type Subscriber struct {
	client   *redis.Client
	database string
	logg     *logger.Logger
	sub      *redis.PubSub
}

// New connects to Redis and verifies connectivity.
func New(ctx context.Context, cfg config.RedisConfig, rt config.RealtimeConfig, logg *logger.Logger) (*Subscriber, error) {
	if logg == nil {
		return nil, errors.New("logger is required")
	}
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Subscriber{
		client:   client,
		database: rt.Database,
		logg:     logg,
	}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

// ChannelFor builds the channel name for one collection.
func ChannelFor(database, collection string) string {
	return fmt.Sprintf("databases.%s.collections.%s.documents", database, collection)
}

// CollectionFromChannel extracts the collection segment from a channel name,
// or "" when the name does not match the expected shape.
func CollectionFromChannel(channel string) string {
	parts := strings.Split(channel, ".")
	if len(parts) != 5 || parts[0] != "databases" || parts[2] != "collections" || parts[4] != "documents" {
		return ""
	}
	return parts[3]
}

// Subscribe starts listening for the named collections and dispatches every
// message to handler until ctx is cancelled.
func (s *Subscriber) Subscribe(ctx context.Context, collections []string, handler Handler) error {
	if len(collections) == 0 {
		return errors.New("at least one collection is required")
	}
	if handler == nil {
		return errors.New("handler is required")
	}

	channels := make([]string, 0, len(collections))
	for _, collection := range collections {
		channels = append(channels, ChannelFor(s.database, collection))
	}

	s.sub = s.client.Subscribe(ctx, channels...)
	if _, err := s.sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribing: %w", err)
	}

	go s.dispatch(ctx, handler)
	return nil
}

func (s *Subscriber) dispatch(ctx context.Context, handler Handler) {
	messages := s.sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			collection := CollectionFromChannel(msg.Channel)
			if collection == "" {
				s.logg.Warn(ctx, "ignoring message on unexpected channel "+msg.Channel)
				continue
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				s.logg.Error(s.logg.WithCollection(ctx, collection), "decoding realtime event", err)
				// Still refresh: the contract is reload-on-any-event.
			}
			logCtx := s.logg.WithCollection(ctx, collection)
			s.logg.Debug(logCtx, "realtime event received")
			handler(logCtx, collection, event)
		}
	}
}

// Close tears down the subscription and the connection.
func (s *Subscriber) Close() error {
	var err error
	if s.sub != nil {
		err = multierr.Append(err, s.sub.Close())
	}
	if s.client != nil {
		err = multierr.Append(err, s.client.Close())
	}
	return err
}
