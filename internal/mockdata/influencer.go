package mockdata

import (
	"fmt"
	"strconv"
	"strings"

	"insight-srv/internal/model"
	"insight-srv/pkg/random"
)

func (g *implGenerator) Influencers(count int) []model.Influencer {
	if count < 0 {
		count = 0
	}
	out := make([]model.Influencer, count)
	for i := range out {
		name := influencerNames[i%len(influencerNames)]
		out[i] = model.Influencer{
			ID:             fmt.Sprintf("influencer-%d", i+1),
			Name:           name,
			Handle:         "@" + strings.Replace(strings.ToLower(name), " ", "", 1),
			Platform:       random.Item(g.src, model.SocialPlatforms),
			AvatarURL:      model.AvatarURL(strconv.Itoa(i)),
			MatchScore:     random.Int(g.src, 70, 100),
			Reach:          random.Int(g.src, 100000, 1000000),
			EngagementRate: random.Float(g.src, 2, 10),
			ToxicityScore:  random.Int(g.src, 0, 30),
			RecentTopics:   append([]string(nil), influencerTopics[i%len(influencerTopics)]...),
			WhyRecommended: influencerWhy,
		}
	}
	return out
}
