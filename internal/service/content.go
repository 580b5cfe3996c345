package service

import (
	"context"
	"time"

	"github.com/adverra/backend/internal/domain"
	"github.com/adverra/backend/internal/repository"
	"github.com/go-playground/validator/v10"
)

// ContentService handles the public content collections.
type ContentService struct {
	repo     *repository.ContentRepository
	validate *validator.Validate
}

// NewContentService creates a new ContentService.
func NewContentService(repo *repository.ContentRepository) *ContentService {
	return &ContentService{repo: repo, validate: validator.New()}
}

func (s *ContentService) CreateAnnouncement(ctx context.Context, req *domain.CreateAnnouncementRequest) (*domain.Announcement, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	a := &domain.Announcement{ID: domain.NewID(), Title: req.Title, Body: req.Body, CreatedAt: time.Now()}
	if err := s.repo.CreateAnnouncement(ctx, a); err != nil {
		return nil, domain.ErrInternal("failed to create announcement", err)
	}
	return a, nil
}

func (s *ContentService) ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error) {
	out, err := s.repo.ListAnnouncements(ctx)
	if err != nil {
		return nil, domain.ErrInternal("failed to list announcements", err)
	}
	return out, nil
}

func (s *ContentService) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := s.repo.DeleteAnnouncement(ctx, id); err != nil {
		return domain.ErrInternal("failed to delete announcement", err)
	}
	return nil
}

func (s *ContentService) CreateBlog(ctx context.Context, req *domain.CreateBlogRequest) (*domain.Blog, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	b := &domain.Blog{
		ID:        domain.NewID(),
		Title:     req.Title,
		Content:   req.Content,
		Author:    req.Author,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateBlog(ctx, b); err != nil {
		return nil, domain.ErrInternal("failed to create blog", err)
	}
	return b, nil
}

func (s *ContentService) GetBlog(ctx context.Context, id string) (*domain.Blog, error) {
	b, err := s.repo.FindBlog(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal("failed to find blog", err)
	}
	if b == nil {
		return nil, domain.ErrNotFound("blog not found")
	}
	return b, nil
}

func (s *ContentService) ListBlogs(ctx context.Context) ([]*domain.Blog, error) {
	out, err := s.repo.ListBlogs(ctx)
	if err != nil {
		return nil, domain.ErrInternal("failed to list blogs", err)
	}
	return out, nil
}

func (s *ContentService) DeleteBlog(ctx context.Context, id string) error {
	if err := s.repo.DeleteBlog(ctx, id); err != nil {
		return domain.ErrInternal("failed to delete blog", err)
	}
	return nil
}

func (s *ContentService) CreateTestimonial(ctx context.Context, req *domain.CreateTestimonialRequest) (*domain.Testimonial, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	t := &domain.Testimonial{
		ID:        domain.NewID(),
		Author:    req.Author,
		Company:   req.Company,
		Quote:     req.Quote,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateTestimonial(ctx, t); err != nil {
		return nil, domain.ErrInternal("failed to create testimonial", err)
	}
	return t, nil
}

func (s *ContentService) ListTestimonials(ctx context.Context) ([]*domain.Testimonial, error) {
	out, err := s.repo.ListTestimonials(ctx)
	if err != nil {
		return nil, domain.ErrInternal("failed to list testimonials", err)
	}
	return out, nil
}

func (s *ContentService) DeleteTestimonial(ctx context.Context, id string) error {
	if err := s.repo.DeleteTestimonial(ctx, id); err != nil {
		return domain.ErrInternal("failed to delete testimonial", err)
	}
	return nil
}

func (s *ContentService) CreateCareer(ctx context.Context, req *domain.CreateCareerRequest) (*domain.Career, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	c := &domain.Career{
		ID:          domain.NewID(),
		Title:       req.Title,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateCareer(ctx, c); err != nil {
		return nil, domain.ErrInternal("failed to create career", err)
	}
	return c, nil
}

func (s *ContentService) ListCareers(ctx context.Context) ([]*domain.Career, error) {
	out, err := s.repo.ListCareers(ctx)
	if err != nil {
		return nil, domain.ErrInternal("failed to list careers", err)
	}
	return out, nil
}

func (s *ContentService) DeleteCareer(ctx context.Context, id string) error {
	if err := s.repo.DeleteCareer(ctx, id); err != nil {
		return domain.ErrInternal("failed to delete career", err)
	}
	return nil
}

func (s *ContentService) CreateEventNews(ctx context.Context, req *domain.CreateEventNewsRequest) (*domain.EventNews, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	e := &domain.EventNews{
		ID:        domain.NewID(),
		Title:     req.Title,
		Body:      req.Body,
		EventDate: req.EventDate,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateEventNews(ctx, e); err != nil {
		return nil, domain.ErrInternal("failed to create event news", err)
	}
	return e, nil
}

func (s *ContentService) ListEventNews(ctx context.Context) ([]*domain.EventNews, error) {
	out, err := s.repo.ListEventNews(ctx)
	if err != nil {
		return nil, domain.ErrInternal("failed to list event news", err)
	}
	return out, nil
}

func (s *ContentService) DeleteEventNews(ctx context.Context, id string) error {
	if err := s.repo.DeleteEventNews(ctx, id); err != nil {
		return domain.ErrInternal("failed to delete event news", err)
	}
	return nil
}

// Subscribe registers a newsletter subscriber; duplicate emails are a
// bad request, not a silent no-op.
func (s *ContentService) Subscribe(ctx context.Context, req *domain.SubscribeRequest) (*domain.Subscriber, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	exists, err := s.repo.SubscriberExists(ctx, req.Email)
	if err != nil {
		return nil, domain.ErrInternal("failed to check subscriber", err)
	}
	if exists {
		return nil, domain.ErrBadRequest("email already subscribed")
	}

	sub := &domain.Subscriber{ID: domain.NewID(), Email: req.Email, CreatedAt: time.Now()}
	if err := s.repo.CreateSubscriber(ctx, sub); err != nil {
		return nil, domain.ErrInternal("failed to create subscriber", err)
	}
	return sub, nil
}

func (s *ContentService) ListSubscribers(ctx context.Context) ([]*domain.Subscriber, error) {
	out, err := s.repo.ListSubscribers(ctx)
	if err != nil {
		return nil, domain.ErrInternal("failed to list subscribers", err)
	}
	return out, nil
}

func (s *ContentService) DeleteSubscriber(ctx context.Context, id string) error {
	if err := s.repo.DeleteSubscriber(ctx, id); err != nil {
		return domain.ErrInternal("failed to delete subscriber", err)
	}
	return nil
}
