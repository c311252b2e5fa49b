package notify

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	slackapi "github.com/slack-go/slack"
)

type LogSink struct{}

func (LogSink) Send(_ context.Context, title, body string) error {
	log.WithField("title", title).Info(body)
	return nil
}

// slackClient is the part of the Slack API the sink needs.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

type SlackSink struct {
	client    slackClient
	channelID string
}

func NewSlackSink(botToken, channelID string) (*SlackSink, error) {
	if botToken == "" {
		return nil, errors.New("slack: bot token is required")
	}
	return NewSlackSinkWithClient(slackapi.New(botToken), channelID)
}

func NewSlackSinkWithClient(client slackClient, channelID string) (*SlackSink, error) {
	if channelID == "" {
		return nil, errors.New("slack: channel id is required")
	}
	return &SlackSink{
		client:    client,
		channelID: channelID,
	}, nil
}

func (s *SlackSink) Send(ctx context.Context, title, body string) error {
	text := fmt.Sprintf("*%s*\n%s", title, body)
	if _, _, err := s.client.PostMessageContext(ctx, s.channelID, slackapi.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("slack: post message: %w", err)
	}
	return nil
}
