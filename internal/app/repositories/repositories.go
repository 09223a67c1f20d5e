// Package repositories holds the in-memory stores that own all domain
// state for the lifetime of the process. Each entity family has exactly one
// owning repository; cross-family references are by id lookup only, and
// every read hands back a copy so no caller can alias internal state.
package repositories

// Repositories is a container for all application repositories
type Repositories struct {
	UserRepository     *UserRepository
	FeedRepository     *FeedRepository
	CourseRepository   *CourseRepository
	ChatRepository     *ChatRepository
	DonationRepository *DonationRepository
}

// NewRepositories creates empty repositories; seed.Load populates them at
// startup.
func NewRepositories() *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(),
		FeedRepository:     NewFeedRepository(),
		CourseRepository:   NewCourseRepository(),
		ChatRepository:     NewChatRepository(),
		DonationRepository: NewDonationRepository(),
	}
}
