package content

import (
	"fmt"
	"time"

	"github.com/postdeck/postdeck/pkg/types"
)

// seedAbsent writes the built-in sample dataset for every collection key
// that has never been written. An explicit empty collection is left alone,
// so clearing a collection does not resurrect the samples.
func (l *Library) seedAbsent() error {
	if err := seedKey(l, types.KeyPosts, samplePosts()); err != nil {
		return err
	}
	if err := seedKey(l, types.KeyAccounts, sampleAccounts()); err != nil {
		return err
	}
	return seedKey(l, types.KeyMedia, sampleMedia())
}

func seedKey[T any](l *Library, key string, samples []T) error {
	_, ok, err := l.store.Load(key)
	if err != nil {
		return fmt.Errorf("probe %s: %w", key, err)
	}
	if ok {
		return nil
	}
	l.log.Info("seeding collection with sample data", "key", key, "items", len(samples))
	return saveCollection(l, key, samples)
}

// mustTime parses an RFC 3339 timestamp known to be valid at compile time.
func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(t time.Time) *time.Time { return &t }

// samplePosts is the fixed dataset seeded into an empty posts collection:
// four drafts, four scheduled posts, and three published ones.
func samplePosts() []types.Post {
	return []types.Post{
		{
			ID:        1,
			Content:   "Working on our new product launch. Can't wait to share more details!",
			Platforms: []string{"Twitter", "LinkedIn"},
			Type:      types.PostTypeDraft,
			CreatedAt: mustTime("2023-04-01T10:00:00Z"),
		},
		{
			ID:        2,
			Content:   "Here's a sneak peek at what we've been working on for the past few months.",
			Platforms: []string{"Instagram"},
			Type:      types.PostTypeDraft,
			CreatedAt: mustTime("2023-04-02T14:30:00Z"),
		},
		{
			ID:        3,
			Content:   "Customer satisfaction is our top priority. Here's how we're improving our support system.",
			Platforms: []string{"Facebook", "LinkedIn"},
			Type:      types.PostTypeDraft,
			CreatedAt: mustTime("2023-04-03T09:15:00Z"),
		},
		{
			ID:        4,
			Content:   "Draft of our monthly newsletter content. Need to add more details about the upcoming webinar.",
			Platforms: []string{"Twitter"},
			Type:      types.PostTypeDraft,
			CreatedAt: mustTime("2023-04-04T16:45:00Z"),
		},
		{
			ID:        5,
			Content:   "Excited to announce our new partnership with @acmecorp! Together we'll be launching an innovative solution next month.",
			Platforms: []string{"Twitter", "LinkedIn"},
			Type:      types.PostTypeScheduled,
			CreatedAt: mustTime("2023-04-05T11:30:00Z"),
			Date:      timePtr(mustTime("2023-04-15T12:00:00Z")),
		},
		{
			ID:        6,
			Content:   "Join us for a live webinar on 'Industry Trends for 2023' with our CEO and special guests from leading companies.",
			Platforms: []string{"Facebook", "LinkedIn"},
			Type:      types.PostTypeScheduled,
			CreatedAt: mustTime("2023-04-06T13:20:00Z"),
			Date:      timePtr(mustTime("2023-04-20T14:30:00Z")),
		},
		{
			ID:        7,
			Content:   "Flash sale this weekend! Use code SPRING25 for 25% off all products. Limited time only!",
			Platforms: []string{"Instagram", "Facebook"},
			Type:      types.PostTypeScheduled,
			CreatedAt: mustTime("2023-04-07T10:10:00Z"),
			Date:      timePtr(mustTime("2023-04-10T09:00:00Z")),
		},
		{
			ID:        8,
			Content:   "We're hiring! Check out our careers page for exciting opportunities to join our growing team.",
			Platforms: []string{"LinkedIn"},
			Type:      types.PostTypeScheduled,
			CreatedAt: mustTime("2023-04-08T15:45:00Z"),
			Date:      timePtr(mustTime("2023-04-25T10:00:00Z")),
		},
		{
			ID:          9,
			Content:     "Just launched our new website! Check it out and let us know what you think.",
			Platforms:   []string{"Twitter", "Facebook", "LinkedIn"},
			Type:        types.PostTypePublish,
			CreatedAt:   mustTime("2023-04-01T08:30:00Z"),
			PublishedAt: timePtr(mustTime("2023-04-01T09:00:00Z")),
		},
		{
			ID:          10,
			Content:     "Thank you to everyone who attended our webinar yesterday. The recording is now available on our website.",
			Platforms:   []string{"LinkedIn", "Twitter"},
			Type:        types.PostTypePublish,
			CreatedAt:   mustTime("2023-04-02T13:45:00Z"),
			PublishedAt: timePtr(mustTime("2023-04-02T14:00:00Z")),
		},
		{
			ID:          11,
			Content:     "Our CEO was featured in Tech Today magazine this month discussing the future of our industry.",
			Platforms:   []string{"LinkedIn", "Facebook"},
			Type:        types.PostTypePublish,
			CreatedAt:   mustTime("2023-04-03T10:15:00Z"),
			PublishedAt: timePtr(mustTime("2023-04-03T11:30:00Z")),
		},
	}
}

// sampleAccounts is the fixed dataset seeded into an empty accounts
// collection.
func sampleAccounts() []types.Account {
	return []types.Account{
		{ID: 1, Name: "Main Twitter", Platform: types.PlatformTwitter, Username: "@companyname", Connected: true},
		{ID: 2, Name: "Facebook Page", Platform: types.PlatformFacebook, Username: "Company Official", Connected: true},
		{ID: 3, Name: "Instagram Business", Platform: types.PlatformInstagram, Username: "@company_official", Connected: true},
	}
}

// sampleMedia is the fixed dataset seeded into an empty media collection.
// Sample entries point at bundled paths rather than data URLs to keep the
// seed small; uploads always store self-contained payloads.
func sampleMedia() []types.MediaItem {
	return []types.MediaItem{
		{ID: 1, Name: "pexels-polina-kovaleva-6788528.jpg", Type: types.MediaTypeImage, URL: "/images/pexels-polina-kovaleva-6788528.jpg", PersistentURL: "/images/pexels-polina-kovaleva-6788528.jpg", Size: "2.2 MB", Date: "2024-04-02"},
		{ID: 2, Name: "pexels-alexant-7004697.jpg", Type: types.MediaTypeImage, URL: "/images/pexels-alexant-7004697.jpg", PersistentURL: "/images/pexels-alexant-7004697.jpg", Size: "2.8 MB", Date: "2024-04-02"},
		{ID: 3, Name: "pexels-alexasfotos-31405148.jpg", Type: types.MediaTypeImage, URL: "/images/pexels-alexasfotos-31405148.jpg", PersistentURL: "/images/pexels-alexasfotos-31405148.jpg", Size: "0.3 MB", Date: "2024-04-02"},
		{ID: 4, Name: "pexels-dmitry-demidov-515774-3852577.jpg", Type: types.MediaTypeImage, URL: "/images/pexels-dmitry-demidov-515774-3852577.jpg", PersistentURL: "/images/pexels-dmitry-demidov-515774-3852577.jpg", Size: "4.2 MB", Date: "2024-04-02"},
		{ID: 5, Name: "3694915-uhd_2160_3840_30fps.mp4", Type: types.MediaTypeVideo, URL: "/images/3694915-uhd_2160_3840_30fps.mp4", PersistentURL: "/images/3694915-uhd_2160_3840_30fps.mp4", Size: "111.0 MB", Date: "2024-04-02"},
		{ID: 6, Name: "7565895-hd_1080_1920_25fps.mp4", Type: types.MediaTypeVideo, URL: "/images/7565895-hd_1080_1920_25fps.mp4", PersistentURL: "/images/7565895-hd_1080_1920_25fps.mp4", Size: "34.0 MB", Date: "2024-04-02"},
		{ID: 7, Name: "6548176-hd_1920_1080_24fps.mp4", Type: types.MediaTypeVideo, URL: "/images/6548176-hd_1920_1080_24fps.mp4", PersistentURL: "/images/6548176-hd_1920_1080_24fps.mp4", Size: "67.0 MB", Date: "2024-04-02"},
	}
}
