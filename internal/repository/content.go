package repository

import (
	"context"
	"fmt"

	"github.com/adverra/backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentRepository handles database operations for the public content
// collections: announcements, blogs, testimonials, careers, event news,
// and newsletter subscribers.
type ContentRepository struct {
	db *pgxpool.Pool
}

// NewContentRepository creates a new ContentRepository.
func NewContentRepository(db *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{db: db}
}

// --- Announcements ---

func (r *ContentRepository) CreateAnnouncement(ctx context.Context, a *domain.Announcement) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO announcements (id, title, body, created_at) VALUES ($1, $2, $3, $4)`,
		a.ID, a.Title, a.Body, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	return nil
}

func (r *ContentRepository) ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, body, created_at FROM announcements ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var out []*domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		out = append(out, &a)
	}
	return out, nil
}

func (r *ContentRepository) DeleteAnnouncement(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}

// --- Blogs ---

func (r *ContentRepository) CreateBlog(ctx context.Context, b *domain.Blog) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO blogs (id, title, content, author, image_url, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID, b.Title, b.Content, b.Author, b.ImageURL, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

func (r *ContentRepository) FindBlog(ctx context.Context, id string) (*domain.Blog, error) {
	row := r.db.QueryRow(ctx, `SELECT id, title, content, author, image_url, created_at FROM blogs WHERE id = $1`, id)
	var b domain.Blog
	err := row.Scan(&b.ID, &b.Title, &b.Content, &b.Author, &b.ImageURL, &b.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find blog: %w", err)
	}
	return &b, nil
}

func (r *ContentRepository) ListBlogs(ctx context.Context) ([]*domain.Blog, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, content, author, image_url, created_at FROM blogs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	var out []*domain.Blog
	for rows.Next() {
		var b domain.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.Author, &b.ImageURL, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blog: %w", err)
		}
		out = append(out, &b)
	}
	return out, nil
}

func (r *ContentRepository) DeleteBlog(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	return nil
}

// --- Testimonials ---

func (r *ContentRepository) CreateTestimonial(ctx context.Context, t *domain.Testimonial) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO testimonials (id, author, company, quote, created_at) VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.Author, t.Company, t.Quote, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

func (r *ContentRepository) ListTestimonials(ctx context.Context) ([]*domain.Testimonial, error) {
	rows, err := r.db.Query(ctx, `SELECT id, author, company, quote, created_at FROM testimonials ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	defer rows.Close()

	var out []*domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Author, &t.Company, &t.Quote, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		out = append(out, &t)
	}
	return out, nil
}

func (r *ContentRepository) DeleteTestimonial(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return nil
}

// --- Careers ---

func (r *ContentRepository) CreateCareer(ctx context.Context, c *domain.Career) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO careers (id, title, location, type, description, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Title, c.Location, c.Type, c.Description, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create career: %w", err)
	}
	return nil
}

func (r *ContentRepository) ListCareers(ctx context.Context) ([]*domain.Career, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, location, type, description, created_at FROM careers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	defer rows.Close()

	var out []*domain.Career
	for rows.Next() {
		var c domain.Career
		if err := rows.Scan(&c.ID, &c.Title, &c.Location, &c.Type, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan career: %w", err)
		}
		out = append(out, &c)
	}
	return out, nil
}

func (r *ContentRepository) DeleteCareer(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM careers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete career: %w", err)
	}
	return nil
}

// --- Event news ---

func (r *ContentRepository) CreateEventNews(ctx context.Context, e *domain.EventNews) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO event_news (id, title, body, event_date, created_at) VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.Title, e.Body, e.EventDate, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event news: %w", err)
	}
	return nil
}

func (r *ContentRepository) ListEventNews(ctx context.Context) ([]*domain.EventNews, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, body, event_date, created_at FROM event_news ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list event news: %w", err)
	}
	defer rows.Close()

	var out []*domain.EventNews
	for rows.Next() {
		var e domain.EventNews
		if err := rows.Scan(&e.ID, &e.Title, &e.Body, &e.EventDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event news: %w", err)
		}
		out = append(out, &e)
	}
	return out, nil
}

func (r *ContentRepository) DeleteEventNews(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM event_news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event news: %w", err)
	}
	return nil
}

// --- Subscribers ---

func (r *ContentRepository) SubscriberExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM subscribers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check subscriber: %w", err)
	}
	return exists, nil
}

func (r *ContentRepository) CreateSubscriber(ctx context.Context, s *domain.Subscriber) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO subscribers (id, email, created_at) VALUES ($1, $2, $3)`,
		s.ID, s.Email, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create subscriber: %w", err)
	}
	return nil
}

func (r *ContentRepository) ListSubscribers(ctx context.Context) ([]*domain.Subscriber, error) {
	rows, err := r.db.Query(ctx, `SELECT id, email, created_at FROM subscribers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	var out []*domain.Subscriber
	for rows.Next() {
		var s domain.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		out = append(out, &s)
	}
	return out, nil
}

func (r *ContentRepository) DeleteSubscriber(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM subscribers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	return nil
}
