package storage

import (
	"context"
	"time"

	"github.com/conectone/platform/models"
	"github.com/conectone/platform/pkg/result"
)

// Posts returns the blog post repository.
func (s *Storage) Posts() *Repository[models.Post] {
	return NewRepository[models.Post](s.db)
}

// GetPost retrieves a post by ID within a tenant.
func (s *Storage) GetPost(ctx context.Context, tenantID, id string) (*models.Post, error) {
	return s.Posts().GetByID(ctx, tenantID, id)
}

// GetPostBySlug retrieves a post by slug within a tenant.
func (s *Storage) GetPostBySlug(ctx context.Context, tenantID, slug string) (*models.Post, error) {
	return s.Posts().GetOne(ctx, TenantSpec(tenantID).Where("slug = ?", slug))
}

// CreatePost inserts a post, deriving and reserving its slug per tenant.
func (s *Storage) CreatePost(ctx context.Context, post *models.Post) error {
	if post.Slug == "" {
		post.Slug = models.Slugify(post.Title)
	}
	taken, err := s.Posts().Exists(ctx, TenantSpec(post.TenantID).Where("slug = ?", post.Slug))
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicate
	}
	if post.Status == "" {
		post.Status = models.PostStatusDraft
	}
	if post.Status == models.PostStatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	return s.Posts().Create(ctx, post)
}

// UpdatePost writes post changes, stamping PublishedAt on first publish.
func (s *Storage) UpdatePost(ctx context.Context, post *models.Post) error {
	if post.Status == models.PostStatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	post.UpdatedAt = time.Now()
	return s.Posts().Update(ctx, post)
}

// DeletePost removes a post.
func (s *Storage) DeletePost(ctx context.Context, tenantID, id string) error {
	n, err := s.Posts().Delete(ctx, TenantSpec(tenantID).Where("id = ?", id))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PagePosts returns a filtered page of posts, most recently published first.
// Tag filtering is done against the JSON-encoded tag list.
func (s *Storage) PagePosts(ctx context.Context, tenantID, status, author string, params result.RequestParameters) (result.PaginatedResult[*models.Post], error) {
	spec := TenantSpec(tenantID).Order("created_at DESC")
	if status != "" {
		spec.Where("status = ?", status)
	}
	if author != "" {
		spec.Where("author_id = ?", author)
	}
	if params.SearchTerm != "" {
		term := "%" + params.SearchTerm + "%"
		spec.Where("(title LIKE ? OR summary LIKE ? OR body LIKE ?)", term, term, term)
	}
	return s.Posts().Page(ctx, spec, params)
}

// ListPostsByTag returns published posts carrying the tag. The tag match is
// evaluated in Go since the tag list is stored as JSON.
func (s *Storage) ListPostsByTag(ctx context.Context, tenantID, tag string) ([]*models.Post, error) {
	posts, err := s.Posts().List(ctx, TenantSpec(tenantID).
		Where("status = ?", models.PostStatusPublished).
		Order("published_at DESC"))
	if err != nil {
		return nil, err
	}
	var out []*models.Post
	for _, p := range posts {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out, nil
}
