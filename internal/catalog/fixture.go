package catalog

import (
	"context"
	"time"
)

// FixtureProvider serves a fixed episode set for environments without a
// Listen Notes credential. It simulates provider latency but performs no
// network I/O.
type FixtureProvider struct {
	Latency time.Duration

	episodes []Episode
}

func NewFixtureProvider() *FixtureProvider {
	return &FixtureProvider{
		Latency:  time.Second,
		episodes: fixtureEpisodes,
	}
}

func (p *FixtureProvider) FetchEpisodes(ctx context.Context) ([]Episode, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	out := make([]Episode, len(p.episodes))
	copy(out, p.episodes)
	return out, nil
}

func (p *FixtureProvider) FetchEpisodeByID(ctx context.Context, id string) (Episode, error) {
	if err := p.wait(ctx); err != nil {
		return Episode{}, err
	}
	for _, e := range p.episodes {
		if e.ID == id {
			return e, nil
		}
	}
	return Episode{}, ErrNotFound
}

func (p *FixtureProvider) wait(ctx context.Context) error {
	if p.Latency <= 0 {
		return nil
	}
	t := time.NewTimer(p.Latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var fixtureEpisodes = []Episode{
	{
		ID:          "fixture-episode-1",
		Title:       "The Future of AI in Technology",
		Description: "In this episode, we explore the latest developments in artificial intelligence and how they're shaping the future of technology. From machine learning to neural networks, we cover the most important trends and innovations.",
		Publisher:   "Tech Insights Podcast",
		Thumbnail:   "https://placehold.co/300x300?text=AI+Tech",
		SourceURL:   "https://example.com/episode-1",
		Duration:    3600,
		PublishedAt: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:          "fixture-episode-2",
		Title:       "Web Development Best Practices 2024",
		Description: "Join us as we discuss the latest web development best practices, including modern frameworks, performance optimization, and security considerations for building robust web applications.",
		Publisher:   "Web Dev Weekly",
		Thumbnail:   "https://placehold.co/300x300?text=Web+Dev",
		SourceURL:   "https://example.com/episode-2",
		Duration:    2700,
		PublishedAt: time.Date(2024, time.January, 14, 14, 30, 0, 0, time.UTC),
	},
	{
		ID:          "fixture-episode-3",
		Title:       "Cloud Computing Trends and Strategies",
		Description: "Explore the latest trends in cloud computing, including multi-cloud strategies, serverless architectures, and cost optimization techniques for modern businesses.",
		Publisher:   "Cloud Tech Today",
		Thumbnail:   "https://placehold.co/300x300?text=Cloud+Tech",
		SourceURL:   "https://example.com/episode-3",
		Duration:    3300,
		PublishedAt: time.Date(2024, time.January, 13, 9, 15, 0, 0, time.UTC),
	},
	{
		ID:          "fixture-episode-4",
		Title:       "Cybersecurity in the Digital Age",
		Description: "Learn about the latest cybersecurity threats and defense strategies, including zero-trust architecture, threat intelligence, and best practices for protecting digital assets.",
		Publisher:   "Security Matters",
		Thumbnail:   "https://placehold.co/300x300?text=Security",
		SourceURL:   "https://example.com/episode-4",
		Duration:    3000,
		PublishedAt: time.Date(2024, time.January, 12, 16, 45, 0, 0, time.UTC),
	},
	{
		ID:          "fixture-episode-5",
		Title:       "Data Science and Analytics",
		Description: "Discover how data science is transforming industries, from predictive analytics to machine learning applications in business intelligence and decision-making processes.",
		Publisher:   "Data Insights",
		Thumbnail:   "https://placehold.co/300x300?text=Data+Sci",
		SourceURL:   "https://example.com/episode-5",
		Duration:    3900,
		PublishedAt: time.Date(2024, time.January, 11, 11, 20, 0, 0, time.UTC),
	},
}
