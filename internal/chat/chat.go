// Package chat abstracts the hosted chat backend. Group and friend
// workflows go through ChannelProvider so the services never talk to
// the Stream SDK directly and tests can substitute a fake.
package chat

import (
	"context"

	"go.uber.org/zap"
)

// ChannelUser is the profile mirrored into the chat backend.
type ChannelUser struct {
	ID    string
	Name  string
	Image string
}

// ChannelProvider is the operation surface the services need from the
// chat backend. ChannelID is always passed with its full prefix, e.g.
// "group-G2401125abcdefg".
type ChannelProvider interface {
	// UpsertUser creates or updates the user's chat profile.
	UpsertUser(ctx context.Context, user ChannelUser) error
	// CreateChannel creates a messaging channel owned by creatorID
	// with the given initial members.
	CreateChannel(ctx context.Context, channelID, creatorID, name, image string, memberIDs []string) error
	// UpdateChannel applies partial data updates to a channel.
	UpdateChannel(ctx context.Context, channelID string, fields map[string]interface{}) error
	// DeleteChannel removes a channel and its history.
	DeleteChannel(ctx context.Context, channelID string) error
	// AddMembers adds users to a channel.
	AddMembers(ctx context.Context, channelID string, userIDs []string) error
	// RemoveMembers removes users from a channel.
	RemoveMembers(ctx context.Context, channelID string, userIDs []string) error
	// BanUser mutes a user inside one channel.
	BanUser(ctx context.Context, channelID, targetID, bannedByID, reason string) error
	// UnbanUser lifts a channel ban.
	UnbanUser(ctx context.Context, channelID, targetID string) error
	// CreateToken issues a client token for the chat frontend.
	CreateToken(userID string) (string, error)
}

// NopProvider satisfies ChannelProvider without a backend. Used in
// local development when no chat credentials are configured.
type NopProvider struct{}

var _ ChannelProvider = (*NopProvider)(nil)

func NewNopProvider() *NopProvider {
	zap.L().Warn("chat credentials missing, channel operations are no-ops")
	return &NopProvider{}
}

func (p *NopProvider) UpsertUser(ctx context.Context, user ChannelUser) error { return nil }

func (p *NopProvider) CreateChannel(ctx context.Context, channelID, creatorID, name, image string, memberIDs []string) error {
	return nil
}

func (p *NopProvider) UpdateChannel(ctx context.Context, channelID string, fields map[string]interface{}) error {
	return nil
}

func (p *NopProvider) DeleteChannel(ctx context.Context, channelID string) error { return nil }

func (p *NopProvider) AddMembers(ctx context.Context, channelID string, userIDs []string) error {
	return nil
}

func (p *NopProvider) RemoveMembers(ctx context.Context, channelID string, userIDs []string) error {
	return nil
}

func (p *NopProvider) BanUser(ctx context.Context, channelID, targetID, bannedByID, reason string) error {
	return nil
}

func (p *NopProvider) UnbanUser(ctx context.Context, channelID, targetID string) error { return nil }

func (p *NopProvider) CreateToken(userID string) (string, error) { return "", nil }
