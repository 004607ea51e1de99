package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/answersheet/gradebot/internal/executor"
	"github.com/answersheet/gradebot/internal/models"
)

type Consumer struct {
	client       *redis.Client
	stream       string
	groupID      string
	consumerName string
	resultStream string
	pipeline     *executor.Pipeline
	logger       *zerolog.Logger
}

func NewConsumer(client *redis.Client, cfg *StreamConfig, pipeline *executor.Pipeline, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:       client,
		stream:       cfg.Stream,
		groupID:      cfg.Group,
		consumerName: cfg.ConsumerName,
		resultStream: cfg.ResultStream,
		pipeline:     pipeline,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, msg := range msgs[0].Messages {
			c.process(ctx, msg)
		}
	}
}

func (c *Consumer) Stop() error {
	// No-op
	return nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	payload, ok := msg.Values["payload"].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	var gradeRequest models.EvaluationRequest
	if err := json.Unmarshal([]byte(payload), &gradeRequest); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}

	result := c.pipeline.GradeText(ctx, gradeRequest.EventID, gradeRequest.AnswerText)

	c.logger.Info().
		Str("id", msg.ID).
		Int("score", result.Score).
		Msg("Grading complete")

	c.publishResult(ctx, gradeRequest.EventID, result)
	c.ack(ctx, msg.ID)
}

func (c *Consumer) publishResult(ctx context.Context, eventID string, result models.EvaluationResult) {
	if c.resultStream == "" {
		return
	}

	out, err := json.Marshal(struct {
		EventID string `json:"event_id"`
		Score   int    `json:"score"`
		Reason  string `json:"reason"`
	}{EventID: eventID, Score: result.Score, Reason: result.Reason})
	if err != nil {
		c.logger.Error().Err(err).Str("event_id", eventID).Msg("Failed to encode result")
		return
	}

	err = c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultStream,
		Values: map[string]any{"payload": string(out)},
	}).Err()
	if err != nil {
		c.logger.Error().Err(err).Str("event_id", eventID).Msg("Failed to publish result")
	}
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ack message")
	}
}
