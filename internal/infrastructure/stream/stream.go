// Package stream implements the chat channel provider on top of the
// Stream Chat API.
package stream

import (
	"context"
	"strings"
	"time"

	streamchat "github.com/GetStream/stream-chat-go/v5"
	"go.uber.org/zap"

	"github.com/ebrahimelkordy/siraj-0.0.1/internal/chat"
	"github.com/ebrahimelkordy/siraj-0.0.1/internal/config"
	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"
)

const channelType = "messaging"

// streamProvider implements chat.ChannelProvider over the Stream SDK.
type streamProvider struct {
	client *streamchat.Client
}

var _ chat.ChannelProvider = (*streamProvider)(nil)

func shouldUseNop(conf config.StreamConfig) bool {
	key := strings.TrimSpace(conf.APIKey)
	secret := strings.TrimSpace(conf.APISecret)
	if key == "" || secret == "" {
		return true
	}
	return strings.Contains(strings.ToLower(key), "your api key")
}

// Init builds the channel provider. Without real credentials it falls
// back to the no-op provider so the server still runs locally.
func Init() (chat.ChannelProvider, error) {
	conf := config.GetConfig().StreamConfig
	if shouldUseNop(conf) {
		return chat.NewNopProvider(), nil
	}

	client, err := streamchat.NewClient(conf.APIKey, conf.APISecret)
	if err != nil {
		zap.L().Error("stream client init failed", zap.Error(err))
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "stream client init")
	}
	return &streamProvider{client: client}, nil
}

// NewProvider wraps an existing client, used for dependency injection.
func NewProvider(client *streamchat.Client) chat.ChannelProvider {
	return &streamProvider{client: client}
}

func (p *streamProvider) UpsertUser(ctx context.Context, user chat.ChannelUser) error {
	_, err := p.client.UpsertUser(ctx, &streamchat.User{
		ID:    user.ID,
		Name:  user.Name,
		Image: user.Image,
	})
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeServerBusy, "stream upsert user %s", user.ID)
	}
	return nil
}

func (p *streamProvider) CreateChannel(ctx context.Context, channelID, creatorID, name, image string, memberIDs []string) error {
	data := &streamchat.ChannelRequest{
		Members: memberIDs,
		ExtraData: map[string]interface{}{
			"name":  name,
			"image": image,
		},
	}
	_, err := p.client.CreateChannel(ctx, channelType, channelID, creatorID, data)
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeServerBusy, "stream create channel %s", channelID)
	}
	return nil
}

func (p *streamProvider) UpdateChannel(ctx context.Context, channelID string, fields map[string]interface{}) error {
	ch := p.client.Channel(channelType, channelID)
	if _, err := ch.PartialUpdate(ctx, streamchat.PartialUpdate{Set: fields}); err != nil {
		return errorx.Wrapf(err, errorx.CodeServerBusy, "stream update channel %s", channelID)
	}
	return nil
}

func (p *streamProvider) DeleteChannel(ctx context.Context, channelID string) error {
	ch := p.client.Channel(channelType, channelID)
	if _, err := ch.Delete(ctx); err != nil {
		return errorx.Wrapf(err, errorx.CodeServerBusy, "stream delete channel %s", channelID)
	}
	return nil
}

func (p *streamProvider) AddMembers(ctx context.Context, channelID string, userIDs []string) error {
	ch := p.client.Channel(channelType, channelID)
	if _, err := ch.AddMembers(ctx, userIDs); err != nil {
		return errorx.Wrapf(err, errorx.CodeServerBusy, "stream add members %s", channelID)
	}
	return nil
}

func (p *streamProvider) RemoveMembers(ctx context.Context, channelID string, userIDs []string) error {
	ch := p.client.Channel(channelType, channelID)
	if _, err := ch.RemoveMembers(ctx, userIDs, nil); err != nil {
		return errorx.Wrapf(err, errorx.CodeServerBusy, "stream remove members %s", channelID)
	}
	return nil
}

func (p *streamProvider) BanUser(ctx context.Context, channelID, targetID, bannedByID, reason string) error {
	ch := p.client.Channel(channelType, channelID)
	_, err := ch.BanUser(ctx, targetID, bannedByID, streamchat.BanWithReason(reason))
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeServerBusy, "stream ban user %s in %s", targetID, channelID)
	}
	return nil
}

func (p *streamProvider) UnbanUser(ctx context.Context, channelID, targetID string) error {
	ch := p.client.Channel(channelType, channelID)
	if _, err := ch.UnBanUser(ctx, targetID); err != nil {
		return errorx.Wrapf(err, errorx.CodeServerBusy, "stream unban user %s in %s", targetID, channelID)
	}
	return nil
}

// CreateToken issues a client token valid for 24 hours.
func (p *streamProvider) CreateToken(userID string) (string, error) {
	token, err := p.client.CreateToken(userID, time.Now().Add(24*time.Hour))
	if err != nil {
		return "", errorx.Wrapf(err, errorx.CodeServerBusy, "stream token for %s", userID)
	}
	return token, nil
}
