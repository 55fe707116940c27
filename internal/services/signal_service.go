package services

import (
	"context"
	"fmt"
)

// The congestion prompt needs four context signals. Real deployments would
// plug in a social-listening feed, a location-analytics service, an
// announcements feed and a history store; the defaults below synthesize
// placeholder text so the pipeline works end to end without those
// collaborators.

type SocialFeedInterface interface {
	RecentPosts(ctx context.Context, spotName string) (string, error)
}

type LocationAnalyticsInterface interface {
	DensitySummary(ctx context.Context, spotName string) (string, error)
}

type AnnouncementFeedInterface interface {
	CurrentAnnouncements(ctx context.Context, spotName string) (string, error)
}

type CongestionHistoryInterface interface {
	HistoricalSummary(ctx context.Context, spotName string) (string, error)
}

type mockSocialFeed struct{}

func NewMockSocialFeed() SocialFeedInterface { return &mockSocialFeed{} }

func (f *mockSocialFeed) RecentPosts(ctx context.Context, spotName string) (string, error) {
	return fmt.Sprintf("Lots of people at %s today! #hakodate", spotName), nil
}

type mockLocationAnalytics struct{}

func NewMockLocationAnalytics() LocationAnalyticsInterface { return &mockLocationAnalytics{} }

func (f *mockLocationAnalytics) DensitySummary(ctx context.Context, spotName string) (string, error) {
	return fmt.Sprintf("High density of devices detected around %s coordinates.", spotName), nil
}

type mockAnnouncementFeed struct{}

func NewMockAnnouncementFeed() AnnouncementFeedInterface { return &mockAnnouncementFeed{} }

func (f *mockAnnouncementFeed) CurrentAnnouncements(ctx context.Context, spotName string) (string, error) {
	return fmt.Sprintf("No special events announced for %s currently.", spotName), nil
}

type mockCongestionHistory struct{}

func NewMockCongestionHistory() CongestionHistoryInterface { return &mockCongestionHistory{} }

func (f *mockCongestionHistory) HistoricalSummary(ctx context.Context, spotName string) (string, error) {
	return fmt.Sprintf("%s is usually busy on weekend afternoons.", spotName), nil
}
