package models

import "time"

// CourseCategory defines the learning platform categories
type CourseCategory string

const (
	CategoryBibleStudy       CourseCategory = "Bible Study"
	CategoryRelationships    CourseCategory = "Love & Relationships"
	CategoryLeadership       CourseCategory = "Leadership"
	CategoryPersonalBranding CourseCategory = "Personal Branding"
	CategoryEmployment       CourseCategory = "Career & Employment"
	CategoryPrayer           CourseCategory = "Prayer"
	CategoryCounseling       CourseCategory = "Counseling"
	CategorySocialLife       CourseCategory = "Social Life"
)

// AllCategories lists every course category in display order.
var AllCategories = []CourseCategory{
	CategoryBibleStudy,
	CategoryRelationships,
	CategoryLeadership,
	CategoryPersonalBranding,
	CategoryEmployment,
	CategoryPrayer,
	CategoryCounseling,
	CategorySocialLife,
}

// Valid reports whether the category is one of the known categories.
func (c CourseCategory) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Course defines a learning platform course. Courses are immutable after
// creation; lesson completion lives on the Enrollment, never here.
type Course struct {
	ID          string         `json:"id" example:"c1"`
	Title       string         `json:"title" example:"Foundations of Faith"`
	Instructor  string         `json:"instructor" example:"Pastor Michael"`
	Category    CourseCategory `json:"category" example:"Bible Study"`
	Description string         `json:"description"`
	Lessons     int            `json:"lessons" example:"8"`
	Duration    string         `json:"duration" example:"4h 30m"`
	Thumbnail   string         `json:"thumbnail"`
	Content     *string        `json:"content,omitempty"` // Markdown outline for AI-published courses
}

// Enrollment tracks one user's progress through one course. At most one
// enrollment exists per (courseId, userId) pair. Progress is always
// round(100 * completed / course.Lessons).
type Enrollment struct {
	ID               string    `json:"id"`
	CourseID         string    `json:"courseId" example:"c3"`
	UserID           string    `json:"userId" example:"u5"`
	Progress         int       `json:"progress" example:"17"`
	CompletedLessons []int     `json:"completedLessons"`
	EnrolledAt       time.Time `json:"enrolledAt"`
	LastAccessedAt   time.Time `json:"lastAccessedAt"`
}

// LessonCompleted reports whether the lesson index is in the completed set.
func (e *Enrollment) LessonCompleted(index int) bool {
	for _, i := range e.CompletedLessons {
		if i == index {
			return true
		}
	}
	return false
}
