package store

import (
	"context"

	"github.com/pkg/errors"
)

// seedTrendingTopics is the fixed reference set inserted into an empty store.
var seedTrendingTopics = []*TrendingTopic{
	{
		Title:       "Latest AI Breakthroughs in 2024",
		Description: "Discover the most significant AI developments this year",
		Category:    "Technology",
		ReadTime:    "2 min read",
		Icon:        "fas fa-fire",
		ViewCount:   1250,
		IsActive:    true,
	},
	{
		Title:       "Sustainable Investment Strategies",
		Description: "How to build an eco-friendly investment portfolio",
		Category:    "Finance",
		ReadTime:    "4 min read",
		Icon:        "fas fa-leaf",
		ViewCount:   890,
		IsActive:    true,
	},
	{
		Title:       "Hidden Gems in Southeast Asia",
		Description: "Off-the-beaten-path destinations for adventurous travelers",
		Category:    "Travel",
		ReadTime:    "6 min read",
		Icon:        "fas fa-map-marked-alt",
		ViewCount:   567,
		IsActive:    true,
	},
	{
		Title:       "Quantum Computing Fundamentals",
		Description: "Understanding the basics of quantum computation",
		Category:    "Academic",
		ReadTime:    "8 min read",
		Icon:        "fas fa-graduation-cap",
		ViewCount:   432,
		IsActive:    true,
	},
	{
		Title:       "Best Tech Deals This Week",
		Description: "Top technology products with significant discounts",
		Category:    "Shopping",
		ReadTime:    "3 min read",
		Icon:        "fas fa-shopping-cart",
		ViewCount:   1120,
		IsActive:    true,
	},
	{
		Title:       "Mental Health in Remote Work",
		Description: "Strategies for maintaining wellbeing while working from home",
		Category:    "Health",
		ReadTime:    "5 min read",
		Icon:        "fas fa-heartbeat",
		ViewCount:   678,
		IsActive:    true,
	},
}

var seedSpaces = []*Space{
	{
		Title:         "Business Strategy",
		Description:   "Market analysis, competitive research, and business planning",
		Category:      "Business",
		TemplateCount: 12,
		Icon:          "fas fa-briefcase",
		Gradient:      "from-blue-500 to-purple-600",
		Tags:          []string{"SWOT Analysis", "Market Research"},
		IsActive:      true,
	},
	{
		Title:         "Developer Tools",
		Description:   "Code review, debugging, and technical documentation",
		Category:      "Technology",
		TemplateCount: 8,
		Icon:          "fas fa-code",
		Gradient:      "from-green-500 to-teal-600",
		Tags:          []string{"Code Review", "Documentation"},
		IsActive:      true,
	},
	{
		Title:         "Creative Writing",
		Description:   "Content creation, storytelling, and copywriting assistance",
		Category:      "Creative",
		TemplateCount: 15,
		Icon:          "fas fa-pen-fancy",
		Gradient:      "from-orange-500 to-red-600",
		Tags:          []string{"Blog Posts", "Marketing Copy"},
		IsActive:      true,
	},
}

// Seed populates reference data on an empty store. The trending topic and
// space checks are independent of each other, and re-running Seed against a
// populated store is a no-op.
func (s *Store) Seed(ctx context.Context) error {
	topics, err := s.driver.ListTrendingTopics(ctx, &FindTrendingTopic{Limit: 1})
	if err != nil {
		return errors.Wrap(err, "failed to check existing trending topics")
	}
	if len(topics) == 0 {
		for _, topic := range seedTrendingTopics {
			seeded := *topic
			if _, err := s.CreateTrendingTopic(ctx, &seeded); err != nil {
				return errors.Wrapf(err, "failed to seed trending topic %q", topic.Title)
			}
		}
	}

	spaces, err := s.driver.ListSpaces(ctx, &FindSpace{Limit: 1})
	if err != nil {
		return errors.Wrap(err, "failed to check existing spaces")
	}
	if len(spaces) == 0 {
		for _, space := range seedSpaces {
			seeded := *space
			if _, err := s.CreateSpace(ctx, &seeded); err != nil {
				return errors.Wrapf(err, "failed to seed space %q", space.Title)
			}
		}
	}

	return nil
}
