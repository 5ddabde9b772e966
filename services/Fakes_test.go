package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/models"
)

// In-memory stand-ins for the store package. Each mirrors the mongo
// implementation's behavior: lookups miss with ErrNotFound, array writes
// are set-semantic. The fail map injects an error for a named operation,
// e.g. fail["AddToSet:followers"] or fail["Insert"].

type fakeUsers struct {
	docs  map[primitive.ObjectID]*models.User
	order []primitive.ObjectID
	fail  map[string]error
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{docs: map[primitive.ObjectID]*models.User{}, fail: map[string]error{}}
	for _, u := range users {
		f.docs[u.ID] = u
		f.order = append(f.order, u.ID)
	}
	return f
}

func (f *fakeUsers) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	u, ok := f.docs[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return *u, nil
}

func (f *fakeUsers) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	users := []models.User{}
	for _, id := range ids {
		if u, ok := f.docs[id]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.docs {
		if u.Email == email {
			return *u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (f *fakeUsers) FindByUsername(_ context.Context, username string) (models.User, error) {
	for _, u := range f.docs {
		if u.Username == username {
			return *u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (f *fakeUsers) FindByVerifyToken(_ context.Context, token string) (models.User, error) {
	for _, u := range f.docs {
		if u.VerifyToken == token {
			return *u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (f *fakeUsers) All(_ context.Context) ([]models.User, error) {
	if err := f.fail["All"]; err != nil {
		return nil, err
	}
	users := []models.User{}
	for _, id := range f.order {
		if u, ok := f.docs[id]; ok {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (f *fakeUsers) Insert(_ context.Context, user models.User) error {
	if err := f.fail["Insert"]; err != nil {
		return err
	}
	f.docs[user.ID] = &user
	f.order = append(f.order, user.ID)
	return nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id primitive.ObjectID, update ProfileUpdate) (models.User, error) {
	u, ok := f.docs[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Username != nil {
		u.Username = *update.Username
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	if update.ProfileImageURL != nil {
		u.ProfileImageURL = *update.ProfileImageURL
	}
	if update.CoverImageURL != nil {
		u.CoverImageURL = *update.CoverImageURL
	}
	if update.Country != nil {
		u.Country = *update.Country
	}
	if update.DOB != nil {
		u.DOB = *update.DOB
	}
	if update.IsPrivate != nil {
		u.IsPrivate = *update.IsPrivate
	}
	return *u, nil
}

func (f *fakeUsers) SetEmailVerified(_ context.Context, id primitive.ObjectID) error {
	u, ok := f.docs[id]
	if !ok {
		return ErrNotFound
	}
	u.IsEmailVerified = true
	u.VerifyToken = ""
	return nil
}

func (f *fakeUsers) AddToSet(_ context.Context, id primitive.ObjectID, field string, value primitive.ObjectID) error {
	if err := f.fail["AddToSet:"+field]; err != nil {
		return err
	}
	u, ok := f.docs[id]
	if !ok {
		return ErrNotFound
	}
	switch field {
	case "followers":
		u.Followers = addID(u.Followers, value)
	case "following":
		u.Following = addID(u.Following, value)
	}
	return nil
}

func (f *fakeUsers) Pull(_ context.Context, id primitive.ObjectID, field string, value primitive.ObjectID) error {
	if err := f.fail["Pull:"+field]; err != nil {
		return err
	}
	u, ok := f.docs[id]
	if !ok {
		return ErrNotFound
	}
	switch field {
	case "followers":
		u.Followers = removeID(u.Followers, value)
	case "following":
		u.Following = removeID(u.Following, value)
	}
	return nil
}

func (f *fakeUsers) PushPostSummary(_ context.Context, userID primitive.ObjectID, summary models.PostSummary) error {
	if err := f.fail["PushPostSummary"]; err != nil {
		return err
	}
	u, ok := f.docs[userID]
	if !ok {
		return ErrNotFound
	}
	u.Posts = append(u.Posts, summary)
	return nil
}

func (f *fakeUsers) PullPostSummary(_ context.Context, userID, postID primitive.ObjectID) error {
	if err := f.fail["PullPostSummary"]; err != nil {
		return err
	}
	u, ok := f.docs[userID]
	if !ok {
		return ErrNotFound
	}
	kept := u.Posts[:0]
	for _, s := range u.Posts {
		if s.PostID != postID {
			kept = append(kept, s)
		}
	}
	u.Posts = kept
	return nil
}

type fakePosts struct {
	docs  map[primitive.ObjectID]*models.Post
	order []primitive.ObjectID
	fail  map[string]error
}

func newFakePosts(posts ...*models.Post) *fakePosts {
	f := &fakePosts{docs: map[primitive.ObjectID]*models.Post{}, fail: map[string]error{}}
	for _, p := range posts {
		f.docs[p.ID] = p
		f.order = append(f.order, p.ID)
	}
	return f
}

func (f *fakePosts) FindByID(_ context.Context, id primitive.ObjectID) (models.Post, error) {
	p, ok := f.docs[id]
	if !ok {
		return models.Post{}, ErrNotFound
	}
	return *p, nil
}

func (f *fakePosts) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	posts := []models.Post{}
	for _, p := range f.docs {
		if p.UserID == userID {
			posts = append(posts, *p)
		}
	}
	return posts, nil
}

func (f *fakePosts) All(_ context.Context) ([]models.Post, error) {
	if err := f.fail["All"]; err != nil {
		return nil, err
	}
	posts := []models.Post{}
	for _, id := range f.order {
		if p, ok := f.docs[id]; ok {
			posts = append(posts, *p)
		}
	}
	return posts, nil
}

func (f *fakePosts) Insert(_ context.Context, post models.Post) error {
	if err := f.fail["Insert"]; err != nil {
		return err
	}
	f.docs[post.ID] = &post
	f.order = append(f.order, post.ID)
	return nil
}

func (f *fakePosts) SetText(_ context.Context, id primitive.ObjectID, text string) error {
	p, ok := f.docs[id]
	if !ok {
		return ErrNotFound
	}
	p.Text = text
	return nil
}

func (f *fakePosts) Delete(_ context.Context, id primitive.ObjectID) error {
	if err := f.fail["Delete"]; err != nil {
		return err
	}
	if _, ok := f.docs[id]; !ok {
		return ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

func (f *fakePosts) PushComment(_ context.Context, postID, commentID primitive.ObjectID) error {
	if err := f.fail["PushComment"]; err != nil {
		return err
	}
	p, ok := f.docs[postID]
	if !ok {
		return ErrNotFound
	}
	p.Comments = append(p.Comments, commentID)
	return nil
}

func (f *fakePosts) PullComment(_ context.Context, postID, commentID primitive.ObjectID) error {
	if err := f.fail["PullComment"]; err != nil {
		return err
	}
	p, ok := f.docs[postID]
	if !ok {
		return ErrNotFound
	}
	p.Comments = removeID(p.Comments, commentID)
	return nil
}

func (f *fakePosts) Sets(_ context.Context, id primitive.ObjectID) (map[string][]primitive.ObjectID, error) {
	p, ok := f.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return map[string][]primitive.ObjectID{"likes": p.Likes}, nil
}

func (f *fakePosts) AddToSet(_ context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	if err := f.fail["AddToSet:"+field]; err != nil {
		return err
	}
	p, ok := f.docs[id]
	if !ok {
		return ErrNotFound
	}
	p.Likes = addID(p.Likes, actor)
	return nil
}

func (f *fakePosts) Pull(_ context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	if err := f.fail["Pull:"+field]; err != nil {
		return err
	}
	p, ok := f.docs[id]
	if !ok {
		return ErrNotFound
	}
	p.Likes = removeID(p.Likes, actor)
	return nil
}

type fakeComments struct {
	docs map[primitive.ObjectID]*models.Comment
	fail map[string]error
}

func newFakeComments(comments ...*models.Comment) *fakeComments {
	f := &fakeComments{docs: map[primitive.ObjectID]*models.Comment{}, fail: map[string]error{}}
	for _, c := range comments {
		f.docs[c.ID] = c
	}
	return f
}

func (f *fakeComments) FindByID(_ context.Context, id primitive.ObjectID) (models.Comment, error) {
	c, ok := f.docs[id]
	if !ok {
		return models.Comment{}, ErrNotFound
	}
	return *c, nil
}

func (f *fakeComments) FindByPost(_ context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	comments := []models.Comment{}
	for _, c := range f.docs {
		if c.PostID == postID {
			comments = append(comments, *c)
		}
	}
	return comments, nil
}

func (f *fakeComments) Insert(_ context.Context, comment models.Comment) error {
	if err := f.fail["Insert"]; err != nil {
		return err
	}
	f.docs[comment.ID] = &comment
	return nil
}

func (f *fakeComments) Delete(_ context.Context, id primitive.ObjectID) error {
	if err := f.fail["Delete"]; err != nil {
		return err
	}
	if _, ok := f.docs[id]; !ok {
		return ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeComments) DeleteByPost(_ context.Context, postID primitive.ObjectID) error {
	if err := f.fail["DeleteByPost"]; err != nil {
		return err
	}
	for id, c := range f.docs {
		if c.PostID == postID {
			delete(f.docs, id)
		}
	}
	return nil
}

func (f *fakeComments) Sets(_ context.Context, id primitive.ObjectID) (map[string][]primitive.ObjectID, error) {
	c, ok := f.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return map[string][]primitive.ObjectID{"likes": c.Likes, "dislikes": c.Dislikes}, nil
}

func (f *fakeComments) AddToSet(_ context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	if err := f.fail["AddToSet:"+field]; err != nil {
		return err
	}
	c, ok := f.docs[id]
	if !ok {
		return ErrNotFound
	}
	switch field {
	case "likes":
		c.Likes = addID(c.Likes, actor)
	case "dislikes":
		c.Dislikes = addID(c.Dislikes, actor)
	}
	return nil
}

func (f *fakeComments) Pull(_ context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	if err := f.fail["Pull:"+field]; err != nil {
		return err
	}
	c, ok := f.docs[id]
	if !ok {
		return ErrNotFound
	}
	switch field {
	case "likes":
		c.Likes = removeID(c.Likes, actor)
	case "dislikes":
		c.Dislikes = removeID(c.Dislikes, actor)
	}
	return nil
}

type fakeBlogs struct {
	docs  map[primitive.ObjectID]*models.Blog
	order []primitive.ObjectID
	fail  map[string]error
}

func newFakeBlogs(blogs ...*models.Blog) *fakeBlogs {
	f := &fakeBlogs{docs: map[primitive.ObjectID]*models.Blog{}, fail: map[string]error{}}
	for _, b := range blogs {
		f.docs[b.ID] = b
		f.order = append(f.order, b.ID)
	}
	return f
}

func (f *fakeBlogs) FindByID(_ context.Context, id primitive.ObjectID) (models.Blog, error) {
	b, ok := f.docs[id]
	if !ok {
		return models.Blog{}, ErrNotFound
	}
	return *b, nil
}

func (f *fakeBlogs) FindByAuthor(_ context.Context, authorID primitive.ObjectID) ([]models.Blog, error) {
	blogs := []models.Blog{}
	for _, b := range f.docs {
		if b.Author == authorID {
			blogs = append(blogs, *b)
		}
	}
	return blogs, nil
}

func (f *fakeBlogs) All(_ context.Context) ([]models.Blog, error) {
	if err := f.fail["All"]; err != nil {
		return nil, err
	}
	blogs := []models.Blog{}
	for _, id := range f.order {
		if b, ok := f.docs[id]; ok {
			blogs = append(blogs, *b)
		}
	}
	return blogs, nil
}

func (f *fakeBlogs) Insert(_ context.Context, blog models.Blog) error {
	if err := f.fail["Insert"]; err != nil {
		return err
	}
	f.docs[blog.ID] = &blog
	f.order = append(f.order, blog.ID)
	return nil
}

func (f *fakeBlogs) Update(_ context.Context, id primitive.ObjectID, update BlogUpdate) (models.Blog, error) {
	b, ok := f.docs[id]
	if !ok {
		return models.Blog{}, ErrNotFound
	}
	if update.Title != nil {
		b.Title = *update.Title
	}
	if update.Content != nil {
		b.Content = *update.Content
	}
	if update.ImageURL != nil {
		b.ImageURL = *update.ImageURL
	}
	return *b, nil
}

func (f *fakeBlogs) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.docs[id]; !ok {
		return ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeBlogs) Sets(_ context.Context, id primitive.ObjectID) (map[string][]primitive.ObjectID, error) {
	b, ok := f.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return map[string][]primitive.ObjectID{"upvotes": b.Upvotes, "downvotes": b.Downvotes}, nil
}

func (f *fakeBlogs) AddToSet(_ context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	if err := f.fail["AddToSet:"+field]; err != nil {
		return err
	}
	b, ok := f.docs[id]
	if !ok {
		return ErrNotFound
	}
	switch field {
	case "upvotes":
		b.Upvotes = addID(b.Upvotes, actor)
	case "downvotes":
		b.Downvotes = addID(b.Downvotes, actor)
	}
	return nil
}

func (f *fakeBlogs) Pull(_ context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	if err := f.fail["Pull:"+field]; err != nil {
		return err
	}
	b, ok := f.docs[id]
	if !ok {
		return ErrNotFound
	}
	switch field {
	case "upvotes":
		b.Upvotes = removeID(b.Upvotes, actor)
	case "downvotes":
		b.Downvotes = removeID(b.Downvotes, actor)
	}
	return nil
}

type fakeEvents struct {
	docs  map[primitive.ObjectID]*models.Event
	order []primitive.ObjectID
	fail  map[string]error
}

func newFakeEvents(events ...*models.Event) *fakeEvents {
	f := &fakeEvents{docs: map[primitive.ObjectID]*models.Event{}, fail: map[string]error{}}
	for _, e := range events {
		f.docs[e.ID] = e
		f.order = append(f.order, e.ID)
	}
	return f
}

func (f *fakeEvents) FindByID(_ context.Context, id primitive.ObjectID) (models.Event, error) {
	e, ok := f.docs[id]
	if !ok {
		return models.Event{}, ErrNotFound
	}
	return *e, nil
}

func (f *fakeEvents) FindByCreator(_ context.Context, creatorID primitive.ObjectID) ([]models.Event, error) {
	events := []models.Event{}
	for _, e := range f.docs {
		if e.Creator == creatorID {
			events = append(events, *e)
		}
	}
	return events, nil
}

func (f *fakeEvents) All(_ context.Context) ([]models.Event, error) {
	if err := f.fail["All"]; err != nil {
		return nil, err
	}
	events := []models.Event{}
	for _, id := range f.order {
		if e, ok := f.docs[id]; ok {
			events = append(events, *e)
		}
	}
	return events, nil
}

func (f *fakeEvents) Insert(_ context.Context, event models.Event) error {
	if err := f.fail["Insert"]; err != nil {
		return err
	}
	f.docs[event.ID] = &event
	f.order = append(f.order, event.ID)
	return nil
}

func (f *fakeEvents) Update(_ context.Context, id primitive.ObjectID, update EventUpdate) (models.Event, error) {
	e, ok := f.docs[id]
	if !ok {
		return models.Event{}, ErrNotFound
	}
	if update.Title != nil {
		e.Title = *update.Title
	}
	if update.Description != nil {
		e.Description = *update.Description
	}
	if update.Location != nil {
		e.Location = *update.Location
	}
	if update.MeetingURL != nil {
		e.MeetingURL = *update.MeetingURL
	}
	if update.ImageURL != nil {
		e.ImageURL = *update.ImageURL
	}
	if update.StartDate != nil {
		e.StartDate = *update.StartDate
	}
	if update.StartTime != nil {
		e.StartTime = *update.StartTime
	}
	if update.EndDate != nil {
		e.EndDate = *update.EndDate
	}
	if update.EndTime != nil {
		e.EndTime = *update.EndTime
	}
	return *e, nil
}

func (f *fakeEvents) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.docs[id]; !ok {
		return ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeEvents) Sets(_ context.Context, id primitive.ObjectID) (map[string][]primitive.ObjectID, error) {
	e, ok := f.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return map[string][]primitive.ObjectID{"attendees": e.Attendees}, nil
}

func (f *fakeEvents) AddToSet(_ context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	if err := f.fail["AddToSet:"+field]; err != nil {
		return err
	}
	e, ok := f.docs[id]
	if !ok {
		return ErrNotFound
	}
	e.Attendees = addID(e.Attendees, actor)
	return nil
}

func (f *fakeEvents) Pull(_ context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	if err := f.fail["Pull:"+field]; err != nil {
		return err
	}
	e, ok := f.docs[id]
	if !ok {
		return ErrNotFound
	}
	e.Attendees = removeID(e.Attendees, actor)
	return nil
}

type fakeRepair struct {
	records []models.RepairRecord
}

func (f *fakeRepair) Record(_ context.Context, rec models.RepairRecord) error {
	f.records = append(f.records, rec)
	return nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) SendVerificationEmail(to, _, _ string) error {
	f.sent = append(f.sent, to)
	return nil
}

func addID(set []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	if containsID(set, id) {
		return set
	}
	return append(set, id)
}

func removeID(set []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	kept := set[:0]
	for _, member := range set {
		if member != id {
			kept = append(kept, member)
		}
	}
	return kept
}
