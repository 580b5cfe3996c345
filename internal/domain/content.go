package domain

import "time"

// Announcement is a site-wide notice shown on the public site.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateAnnouncementRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Body  string `json:"body" validate:"required"`
}

// Blog is a public news/blog post.
type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateBlogRequest struct {
	Title    string  `json:"title" validate:"required,min=1,max=200"`
	Content  string  `json:"content" validate:"required"`
	Author   string  `json:"author" validate:"required"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
}

// Testimonial is a customer quote shown on the marketing pages.
type Testimonial struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Company   string    `json:"company"`
	Quote     string    `json:"quote"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateTestimonialRequest struct {
	Author  string `json:"author" validate:"required"`
	Company string `json:"company"`
	Quote   string `json:"quote" validate:"required"`
}

// Career is an open position listing.
type Career struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateCareerRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Location    string `json:"location" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=full-time part-time contract internship"`
	Description string `json:"description" validate:"required"`
}

// EventNews is an upcoming-event announcement.
type EventNews struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	EventDate *time.Time `json:"eventDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

type CreateEventNewsRequest struct {
	Title     string     `json:"title" validate:"required,min=1,max=200"`
	Body      string     `json:"body" validate:"required"`
	EventDate *time.Time `json:"eventDate"`
}

// Subscriber is a newsletter signup.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}
