package services

import (
	"context"
	"sort"

	"pridehub/models"
)

const (
	SortPopular = "popular"
	SortRecent  = "recent"

	defaultFeedLimit = 10
	maxFeedLimit     = 100
)

// FeedOptions selects a page of a sorted content collection. Zero values
// fall back to page 1, limit 10, popular sort; limits are capped so a
// single request cannot ask for the whole collection.
type FeedOptions struct {
	Page  int
	Limit int
	Sort  string
}

func (o FeedOptions) normalized() FeedOptions {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit < 1 {
		o.Limit = defaultFeedLimit
	}
	if o.Limit > maxFeedLimit {
		o.Limit = maxFeedLimit
	}
	if o.Sort != SortRecent {
		o.Sort = SortPopular
	}
	return o
}

// FeedService assembles paginated views over whole collections: fetch
// everything, stable-sort in memory, slice. O(n log n) per request,
// acceptable at community scale.
type FeedService struct {
	posts  PostDocs
	blogs  BlogDocs
	events EventDocs
	users  UserDocs
}

func NewFeedService(posts PostDocs, blogs BlogDocs, events EventDocs, users UserDocs) *FeedService {
	return &FeedService{posts: posts, blogs: blogs, events: events, users: users}
}

// ListPosts returns a page of all posts, popular = most liked first.
func (s *FeedService) ListPosts(ctx context.Context, opts FeedOptions) ([]models.Post, error) {
	posts, err := s.posts.All(ctx)
	if err != nil {
		return nil, storeErr("list posts", err)
	}
	opts = opts.normalized()
	if opts.Sort == SortPopular {
		sort.SliceStable(posts, func(i, j int) bool {
			return len(posts[i].Likes) > len(posts[j].Likes)
		})
	} else {
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreationDate.After(posts[j].CreationDate)
		})
	}
	return paginate(posts, opts.Page, opts.Limit), nil
}

// ListBlogs returns a page of all blogs, popular = most upvoted first.
func (s *FeedService) ListBlogs(ctx context.Context, opts FeedOptions) ([]models.Blog, error) {
	blogs, err := s.blogs.All(ctx)
	if err != nil {
		return nil, storeErr("list blogs", err)
	}
	opts = opts.normalized()
	if opts.Sort == SortPopular {
		sort.SliceStable(blogs, func(i, j int) bool {
			return len(blogs[i].Upvotes) > len(blogs[j].Upvotes)
		})
	} else {
		sort.SliceStable(blogs, func(i, j int) bool {
			return blogs[i].CreationDate.After(blogs[j].CreationDate)
		})
	}
	return paginate(blogs, opts.Page, opts.Limit), nil
}

// ListEvents returns a page of all events, popular = most attended first.
func (s *FeedService) ListEvents(ctx context.Context, opts FeedOptions) ([]models.Event, error) {
	events, err := s.events.All(ctx)
	if err != nil {
		return nil, storeErr("list events", err)
	}
	opts = opts.normalized()
	if opts.Sort == SortPopular {
		sort.SliceStable(events, func(i, j int) bool {
			return len(events[i].Attendees) > len(events[j].Attendees)
		})
	} else {
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].CreationDate.After(events[j].CreationDate)
		})
	}
	return paginate(events, opts.Page, opts.Limit), nil
}

// ListUsers returns a page of the user directory in storage order; users
// have no popularity axis.
func (s *FeedService) ListUsers(ctx context.Context, opts FeedOptions) ([]models.User, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	opts = opts.normalized()
	return paginate(users, opts.Page, opts.Limit), nil
}

// paginate slices [(page-1)*limit, page*limit). Out-of-range pages yield
// an empty slice, not an error.
func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
