package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/dto"
	"blog-api/models"
	"blog-api/repositories"
)

var (
	publicSort = bson.D{
		{Key: "read_count", Value: -1},
		{Key: "reading_time", Value: 1},
		{Key: "timestamp", Value: -1},
	}
	ownSort = bson.D{
		{Key: "timestamp", Value: -1},
		{Key: "read_count", Value: -1},
		{Key: "reading_time", Value: 1},
	}

	publicListProjection = bson.M{"body": 0, "state": 0}
	ownListProjection    = bson.M{"body": 0, "author": 0}

	listAuthorProjection   = bson.M{"first_name": 1, "last_name": 1}
	detailAuthorProjection = bson.M{"first_name": 1, "last_name": 1, "email": 1}
)

// BlogService implements blog lifecycle, listing and search.
type BlogService struct {
	blogs BlogStore
	users UserStore
	now   func() time.Time
}

func NewBlogService(blogs BlogStore, users UserStore) *BlogService {
	return &BlogService{blogs: blogs, users: users, now: time.Now}
}

// ListInput carries the raw paging and search parameters of a listing request.
type ListInput struct {
	Page    int
	Limit   int
	Keyword string
	State   string
}

// Create stores a new draft owned by caller.
func (s *BlogService) Create(ctx context.Context, caller primitive.ObjectID, req dto.CreateBlogRequest) (*dto.BlogDTO, error) {
	n, err := s.blogs.Count(ctx, bson.M{"title": req.Title})
	if err != nil {
		return nil, internal(err)
	}
	if n > 0 {
		return nil, conflict(MsgTitleTaken, nil)
	}

	b := &models.Blog{
		Title:       req.Title,
		Description: req.Description,
		Author:      caller,
		State:       models.StateDraft,
		ReadCount:   0,
		ReadingTime: ReadingTime(req.Body),
		Tags:        req.Tags,
		Body:        req.Body,
		Timestamp:   s.now().UTC(),
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if err := s.blogs.Insert(ctx, b); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, conflict(MsgTitleTaken, err)
		}
		return nil, internal(err)
	}

	out := dto.NewBlogDTO(*b, nil)
	return &out, nil
}

// Edit replaces the editable fields of the caller's blog and recomputes its reading time.
func (s *BlogService) Edit(ctx context.Context, caller primitive.ObjectID, blogID string, req dto.EditBlogRequest) error {
	current, err := authorizeBlog(ctx, s.blogs, blogID, caller)
	if err != nil {
		return err
	}

	set := bson.M{
		"title":        req.Title,
		"body":         req.Body,
		"reading_time": ReadingTime(req.Body),
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Tags != nil {
		set["tags"] = req.Tags
	}
	if req.State != "" {
		state := models.BlogState(req.State)
		if !state.Valid() {
			return badRequest(MsgInvalidState, nil)
		}
		if current.State == models.StatePublished && state == models.StateDraft {
			return badRequest(MsgNoRevertToDraft, nil)
		}
		set["state"] = state
	}

	if err := s.blogs.UpdateByID(ctx, current.ID, set); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateKey):
			return conflict(MsgTitleTaken, err)
		case errors.Is(err, repositories.ErrNotFound):
			return badRequest(MsgBlogMissing, nil)
		}
		return internal(err)
	}
	return nil
}

// Publish moves the caller's blog to the published state. Publishing twice is not an error.
func (s *BlogService) Publish(ctx context.Context, caller primitive.ObjectID, blogID string) error {
	current, err := authorizeBlog(ctx, s.blogs, blogID, caller)
	if err != nil {
		return err
	}
	if err := s.blogs.UpdateByID(ctx, current.ID, bson.M{"state": models.StatePublished}); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return badRequest(MsgBlogMissing, nil)
		}
		return internal(err)
	}
	return nil
}

// Delete removes the caller's blog. Missing blogs and blogs owned by someone
// else are indistinguishable to the caller.
func (s *BlogService) Delete(ctx context.Context, caller primitive.ObjectID, blogID string) error {
	id, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return notFound(MsgBlogNotYours)
	}

	filter := bson.M{"_id": id, "author": caller}
	n, err := s.blogs.Count(ctx, filter)
	if err != nil {
		return internal(err)
	}
	if n == 0 {
		return notFound(MsgBlogNotYours)
	}

	if _, err := s.blogs.DeleteOne(ctx, filter); err != nil {
		return internal(err)
	}
	return nil
}

// GetPublished returns a published blog with its author populated and counts
// the read. The returned read_count is the value before this read.
func (s *BlogService) GetPublished(ctx context.Context, blogID string) (*dto.BlogDTO, error) {
	id, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return nil, badRequest(MsgBlogNotFound, err)
	}

	b, err := s.blogs.FindOne(ctx, bson.M{"_id": id, "state": models.StatePublished}, bson.M{"state": 0})
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, badRequest(MsgBlogNotFound, nil)
	case err != nil:
		return nil, badRequest(MsgBlogNotFound, err)
	}

	if err := s.blogs.IncrementReadCount(ctx, b.ID); err != nil {
		return nil, badRequest(MsgBlogNotFound, err)
	}

	authors, err := s.users.FindByIDs(ctx, []primitive.ObjectID{b.Author}, detailAuthorProjection)
	if err != nil {
		return nil, badRequest(MsgBlogNotFound, err)
	}

	out := dto.NewBlogDTO(*b, authorOf(authors, b.Author))
	return &out, nil
}

// GetOwn returns one of the caller's blogs in any state.
func (s *BlogService) GetOwn(ctx context.Context, caller primitive.ObjectID, blogID string) (*dto.BlogDTO, error) {
	id, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return nil, badRequest(MsgBlogNotFound, err)
	}

	b, err := s.blogs.FindOne(ctx, bson.M{"_id": id, "author": caller}, bson.M{"author": 0})
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, badRequest(MsgBlogNotFound, nil)
	case err != nil:
		return nil, badRequest(MsgBlogNotFound, err)
	}

	out := dto.NewBlogDTO(*b, nil)
	return &out, nil
}

// ListPublished pages through every published blog, most read first.
func (s *BlogService) ListPublished(ctx context.Context, in ListInput) (*dto.BlogListDTO, error) {
	return s.listPublic(ctx, PublishedFilter(), in)
}

// ListOwn pages through the caller's blogs, newest first, optionally by state.
func (s *BlogService) ListOwn(ctx context.Context, caller primitive.ObjectID, in ListInput) (*dto.BlogListDTO, error) {
	filter, err := AuthorFilter(caller, in.State)
	if err != nil {
		return nil, err
	}
	return s.listOwn(ctx, filter, in)
}

// SearchPublished matches keyword against the authors' names, the title or the tags
// of published blogs.
func (s *BlogService) SearchPublished(ctx context.Context, target SearchTarget, in ListInput) (*dto.BlogListDTO, error) {
	if !ValidPublicTarget(target) {
		return nil, errInvalidSearch()
	}

	var authorIDs []primitive.ObjectID
	if target == TargetAuthor {
		authors, err := s.users.Find(ctx, NameFilter(in.Keyword), repositories.FindOptions{
			Projection: bson.M{"_id": 1},
		})
		if err != nil {
			return nil, badRequest(MsgInvalidSearch, err)
		}
		if len(authors) == 0 {
			return emptyAuthorSearch(), nil
		}
		authorIDs = make([]primitive.ObjectID, 0, len(authors))
		for _, a := range authors {
			authorIDs = append(authorIDs, a.ID)
		}
	}

	filter, err := PublicSearchFilter(target, in.Keyword, authorIDs)
	if err != nil {
		return nil, err
	}
	return s.listPublic(ctx, filter, in)
}

// SearchOwn matches keyword against the title or tags of the caller's blogs.
func (s *BlogService) SearchOwn(ctx context.Context, caller primitive.ObjectID, target SearchTarget, in ListInput) (*dto.BlogListDTO, error) {
	filter, err := OwnSearchFilter(caller, target, in.Keyword)
	if err != nil {
		return nil, err
	}
	return s.listOwn(ctx, filter, in)
}

func (s *BlogService) listPublic(ctx context.Context, filter bson.M, in ListInput) (*dto.BlogListDTO, error) {
	page, blogs, err := s.page(ctx, filter, in, publicListProjection, publicSort)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(blogs))
	for _, b := range blogs {
		ids = append(ids, b.Author)
	}
	authors, err := s.users.FindByIDs(ctx, ids, listAuthorProjection)
	if err != nil {
		return nil, badRequest(MsgBlogNotFound, err)
	}

	out := make([]dto.BlogDTO, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, dto.NewBlogDTO(b, authorOf(authors, b.Author)))
	}
	return newBlogList(out, page), nil
}

func (s *BlogService) listOwn(ctx context.Context, filter bson.M, in ListInput) (*dto.BlogListDTO, error) {
	page, blogs, err := s.page(ctx, filter, in, ownListProjection, ownSort)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BlogDTO, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, dto.NewBlogDTO(b, nil))
	}
	return newBlogList(out, page), nil
}

func (s *BlogService) page(ctx context.Context, filter bson.M, in ListInput, projection bson.M, sort bson.D) (Page, []models.Blog, error) {
	total, err := s.blogs.Count(ctx, filter)
	if err != nil {
		return Page{}, nil, badRequest(MsgBlogNotFound, err)
	}
	page := Paginate(in.Page, in.Limit, total)

	blogs, err := s.blogs.Find(ctx, filter, repositories.FindOptions{
		Skip:       int64(page.Offset),
		Limit:      int64(page.Limit),
		Sort:       sort,
		Projection: projection,
	})
	if err != nil {
		return Page{}, nil, badRequest(MsgBlogNotFound, err)
	}
	return page, blogs, nil
}

func authorOf(authors map[primitive.ObjectID]models.User, id primitive.ObjectID) *dto.AuthorDTO {
	u, ok := authors[id]
	if !ok {
		return nil
	}
	return dto.NewAuthorDTO(u)
}

func newBlogList(blogs []dto.BlogDTO, page Page) *dto.BlogListDTO {
	return &dto.BlogListDTO{
		Blogs:       blogs,
		Limit:       page.Limit,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
	}
}

// emptyAuthorSearch is returned when no author name matches; no blog query is made.
func emptyAuthorSearch() *dto.BlogListDTO {
	return &dto.BlogListDTO{
		Blogs:       []dto.BlogDTO{},
		Limit:       0,
		CurrentPage: 1,
		TotalPages:  1,
	}
}
