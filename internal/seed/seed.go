// Package seed populates the in-memory repositories with the community's
// initial records at startup. All of this data lives for the process
// lifetime only.
package seed

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lightoncampus/backend/internal/app/models"
	"github.com/lightoncampus/backend/internal/app/repositories"
)

func strPtr(s string) *string { return &s }

// Load fills the repositories with the seed users, posts, courses and chat
// sessions.
func Load(repos *repositories.Repositories, lgr zerolog.Logger) {
	now := time.Now()

	seedUsers(repos.UserRepository, now)
	seedFeed(repos.FeedRepository, now)
	seedCourses(repos.CourseRepository)
	seedChats(repos.ChatRepository, now)

	lgr.Info().
		Int("users", len(repos.UserRepository.List())).
		Int("posts", len(repos.FeedRepository.ListPosts(nil))).
		Int("courses", len(repos.CourseRepository.ListCourses(nil))).
		Int("sessions", len(repos.ChatRepository.ListSessions())).
		Msg("Seed data loaded")
}

func seedUsers(users *repositories.UserRepository, now time.Time) {
	joined := now.AddDate(0, -6, 0)

	for _, u := range []models.User{
		{
			ID:         "u1",
			Name:       "Joshua Aluko",
			Role:       models.RoleMember,
			Avatar:     "https://picsum.photos/seed/joshua/100/100",
			Campus:     strPtr("Main Campus"),
			Email:      strPtr("joshua.aluko@lightoncampus.app"),
			JoinedDate: &joined,
		},
		{
			ID:     "pastor1",
			Name:   "Pastor Michael",
			Role:   models.RolePastor,
			Avatar: "https://picsum.photos/seed/pastor/100/100",
			Campus: strPtr("Main Campus"),
		},
		{
			ID:     "pastor2",
			Name:   "Rev. David",
			Role:   models.RolePastor,
			Avatar: "https://picsum.photos/seed/david/100/100",
		},
		{
			ID:     "u2",
			Name:   "Sarah Jenkins",
			Role:   models.RoleMember,
			Avatar: "https://picsum.photos/seed/sarah/100/100",
		},
		{
			ID:     "u3",
			Name:   "John",
			Role:   models.RoleMember,
			Avatar: "https://picsum.photos/seed/john/100/100",
		},
		{
			ID:     "u4",
			Name:   "Mary",
			Role:   models.RoleMember,
			Avatar: "https://picsum.photos/seed/mary/100/100",
		},
		{
			ID:     "ai",
			Name:   "AI Counselor",
			Role:   models.RoleGuest,
			Avatar: "https://picsum.photos/seed/ai/100/100",
		},
	} {
		users.Insert(u)
	}
}

func seedFeed(feed *repositories.FeedRepository, now time.Time) {
	// Seeded like and comment counters intentionally exceed the seeded
	// detail records, like any feed whose history predates the session;
	// toggles and comment mutations move the counters relative to them.
	posts := []models.Post{
		{
			ID:         "p3",
			UserID:     "pastor2",
			UserName:   "Rev. David",
			UserAvatar: "https://picsum.photos/seed/david/100/100",
			UserRole:   models.RolePastor,
			Content:    "Daily Devotion: Faith is the substance of things hoped for, the evidence of things not seen. Hebrews 11:1. Keep the faith strong today!",
			Timestamp:  now.Add(-24 * time.Hour),
			Likes:      156,
			LikedBy:    []string{"u2", "u4"},
			Comments:   34,
			Type:       models.PostPreaching,
		},
		{
			ID:         "p2",
			UserID:     "u2",
			UserName:   "Sarah Jenkins",
			UserAvatar: "https://picsum.photos/seed/sarah/100/100",
			UserRole:   models.RoleMember,
			Content:    "Really enjoyed the youth fellowship yesterday. The topic on mental health was very timely.",
			Timestamp:  now.Add(-2 * time.Hour),
			Likes:      28,
			LikedBy:    []string{"u3"},
			Comments:   5,
			Type:       models.PostGeneral,
		},
		{
			ID:         "p1",
			UserID:     "pastor1",
			UserName:   "Pastor Michael",
			UserAvatar: "https://picsum.photos/seed/pastor/100/100",
			UserRole:   models.RolePastor,
			Content:    "Sunday Service Announcement: Join us this weekend as we dive deep into the Book of Romans. Bring a friend! #LightOnCampus",
			Timestamp:  now.Add(-1 * time.Hour),
			Likes:      45,
			LikedBy:    []string{"u2", "u3", "u4"},
			Comments:   12,
			Type:       models.PostAnnouncement,
			Image:      strPtr("https://picsum.photos/seed/church/800/400"),
		},
	}
	// InsertPost prepends, so oldest goes in first to keep the feed
	// most-recent-first.
	for _, p := range posts {
		feed.InsertPost(p)
	}
}

func seedCourses(courses *repositories.CourseRepository) {
	for _, c := range []models.Course{
		{
			ID:          "c1",
			Title:       "Foundations of Faith",
			Instructor:  "Pastor Michael",
			Category:    models.CategoryBibleStudy,
			Description: "A 4-week journey into the core beliefs of Christianity.",
			Lessons:     8,
			Duration:    "4h 30m",
			Thumbnail:   "https://picsum.photos/seed/bible/400/250",
		},
		{
			ID:          "c2",
			Title:       "Godly Relationships 101",
			Instructor:  "Mrs. Sarah Connor",
			Category:    models.CategoryRelationships,
			Description: "Navigating dating, courtship, and marriage with biblical principles.",
			Lessons:     12,
			Duration:    "6h 15m",
			Thumbnail:   "https://picsum.photos/seed/love/400/250",
		},
		{
			ID:          "c3",
			Title:       "Career & Purpose",
			Instructor:  "Dr. John Smith",
			Category:    models.CategoryEmployment,
			Description: "Preparing for the marketplace while holding onto your values.",
			Lessons:     6,
			Duration:    "3h 00m",
			Thumbnail:   "https://picsum.photos/seed/work/400/250",
		},
	} {
		courses.InsertCourse(c)
	}
}

func seedChats(chats *repositories.ChatRepository, now time.Time) {
	aiUser := models.User{ID: "ai", Name: "AI Counselor", Role: models.RoleGuest, Avatar: "https://picsum.photos/seed/ai/100/100"}
	groupUser := models.User{ID: "u3", Name: "Youth Group A", Role: models.RoleMember, Avatar: "https://picsum.photos/seed/group/100/100"}
	pastorUser := models.User{ID: "pastor1", Name: "Pastor Michael", Role: models.RolePastor, Avatar: "https://picsum.photos/seed/pastor/100/100"}

	chats.InsertSession(models.ChatSession{
		ID:           "chat1",
		Participants: []models.User{aiUser},
		LastMessage:  "How can I pray for you today?",
		UnreadCount:  1,
		Type:         models.SessionAICounselor,
	})
	chats.InsertSession(models.ChatSession{
		ID:           "chat2",
		Participants: []models.User{groupUser},
		LastMessage:  "Meeting is at 5 PM!",
		UnreadCount:  3,
		Type:         models.SessionGroup,
	})
	chats.InsertSession(models.ChatSession{
		ID:           "chat3",
		Participants: []models.User{pastorUser},
		LastMessage:  "God bless you! Let me know if you need anything.",
		UnreadCount:  0,
		Type:         models.SessionPersonal,
	})

	messages := []struct {
		msg     models.ChatMessage
		preview string
	}{
		{
			msg: models.ChatMessage{
				ID: "m1", SessionID: "chat1", SenderID: "ai", SenderName: "AI Counselor",
				Content:   "Peace be with you. I am your spiritual support assistant. How is your heart today?",
				Timestamp: now.Add(-100 * time.Second), IsAI: true,
			},
			preview: "How can I pray for you today?",
		},
		{
			msg: models.ChatMessage{
				ID: "m2", SessionID: "chat2", SenderID: "u3", SenderName: "John",
				Content:   "Hey guys, dont forget bible study tonight!",
				Timestamp: now.Add(-50 * time.Second),
			},
			preview: "Hey guys, dont forget bible study tonight!",
		},
		{
			msg: models.ChatMessage{
				ID: "m3", SessionID: "chat2", SenderID: "u4", SenderName: "Mary",
				Content:   "Thanks for the reminder! I'll be there.",
				Timestamp: now.Add(-40 * time.Second),
			},
			preview: "Meeting is at 5 PM!",
		},
		{
			msg: models.ChatMessage{
				ID: "m4", SessionID: "chat3", SenderID: "pastor1", SenderName: "Pastor Michael",
				Content:   "God bless you! Let me know if you need anything.",
				Timestamp: now.Add(-20 * time.Second),
			},
			preview: "God bless you! Let me know if you need anything.",
		},
	}
	for _, m := range messages {
		// Seed messages cannot fail: the sessions were just inserted.
		_, _ = chats.AppendMessage(m.msg, m.preview)
	}
}
