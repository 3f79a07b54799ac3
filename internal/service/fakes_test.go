package service

import (
	"Inkstone/internal/model"
	"Inkstone/internal/repository"
	"context"
	"sort"
	"time"

	"github.com/go-sql-driver/mysql"
)

// 内存版仓储实现，行为对齐 MySQL：唯一冲突返回 1062，软删除即移除

func duplicateEntryErr() error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
}

var (
	_ repository.UserRepo       = (*memUserRepo)(nil)
	_ repository.RoleRepo       = (*memRoleRepo)(nil)
	_ repository.StatsRepo      = (*memStatsRepo)(nil)
	_ repository.PostRepo       = (*memPostRepo)(nil)
	_ repository.PostActionRepo = (*memActionRepo)(nil)
	_ repository.CommentRepo    = (*memCommentRepo)(nil)
	_ repository.CategoryRepo   = (*memCategoryRepo)(nil)
	_ repository.TagRepo        = (*memTagRepo)(nil)
	_ repository.ChatRepo       = (*memChatRepo)(nil)
)

type memUserRepo struct {
	users  map[uint64]*model.User
	nextID uint64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uint64]*model.User{}, nextID: 1}
}

func (m *memUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	if user, ok := m.users[id]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, nil
}

func (m *memUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) CreateUser(_ context.Context, user *model.User) error {
	for _, existing := range m.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return duplicateEntryErr()
		}
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserRepo) UpdateUser(_ context.Context, user *model.User) error {
	existing, ok := m.users[user.ID]
	if !ok {
		return nil
	}
	if user.Username != "" {
		for _, other := range m.users {
			if other.ID != user.ID && other.Username == user.Username {
				return duplicateEntryErr()
			}
		}
		existing.Username = user.Username
	}
	if user.Password != "" {
		existing.Password = user.Password
	}
	if user.AvatarURL != "" {
		existing.AvatarURL = user.AvatarURL
	}
	return nil
}

func (m *memUserRepo) UpdateUserRole(_ context.Context, id uint64, roleID uint64) (int64, error) {
	user, ok := m.users[id]
	if !ok {
		return 0, nil
	}
	user.RoleID = roleID
	return 1, nil
}

func (m *memUserRepo) ListUsers(_ context.Context, limit, offset int) ([]*model.User, error) {
	ids := make([]uint64, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]*model.User, 0)
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(users) >= limit {
			break
		}
		cp := *m.users[id]
		users = append(users, &cp)
	}
	return users, nil
}

func (m *memUserRepo) DeleteUserCascade(_ context.Context, id uint64) error {
	delete(m.users, id)
	return nil
}

type memRoleRepo struct {
	roles map[string]*model.Role
}

func newMemRoleRepo() *memRoleRepo {
	return &memRoleRepo{roles: map[string]*model.Role{
		"admin":    {ID: 1, Name: "admin"},
		"subadmin": {ID: 2, Name: "subadmin"},
		"user":     {ID: 3, Name: "user"},
	}}
}

func (m *memRoleRepo) GetRoleByName(_ context.Context, name string) (*model.Role, error) {
	if role, ok := m.roles[name]; ok {
		return role, nil
	}
	return nil, nil
}

func (m *memRoleRepo) ListRoles(_ context.Context) ([]*model.Role, error) {
	roles := make([]*model.Role, 0, len(m.roles))
	for _, role := range m.roles {
		roles = append(roles, role)
	}
	return roles, nil
}

type memStatsRepo struct {
	createErr  error
	counts     map[string]int64
	roleCounts []repository.RoleCount
	activities []*model.ActivityLog
	nextID     uint64
}

func newMemStatsRepo() *memStatsRepo {
	return &memStatsRepo{counts: map[string]int64{}, nextID: 1}
}

func (m *memStatsRepo) CountUsers(_ context.Context) (int64, error)    { return m.counts["users"], nil }
func (m *memStatsRepo) CountPosts(_ context.Context) (int64, error)    { return m.counts["posts"], nil }
func (m *memStatsRepo) CountComments(_ context.Context) (int64, error) { return m.counts["comments"], nil }
func (m *memStatsRepo) CountLikes(_ context.Context) (int64, error)    { return m.counts["likes"], nil }
func (m *memStatsRepo) CountCategories(_ context.Context) (int64, error) {
	return m.counts["categories"], nil
}
func (m *memStatsRepo) CountTags(_ context.Context) (int64, error) { return m.counts["tags"], nil }
func (m *memStatsRepo) CountChatMessages(_ context.Context) (int64, error) {
	return m.counts["chat_messages"], nil
}

func (m *memStatsRepo) CountUsersByRole(_ context.Context) ([]repository.RoleCount, error) {
	return m.roleCounts, nil
}

func (m *memStatsRepo) CreateActivity(_ context.Context, entry *model.ActivityLog) error {
	if m.createErr != nil {
		return m.createErr
	}
	entry.ID = m.nextID
	m.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	cp := *entry
	m.activities = append(m.activities, &cp)
	return nil
}

func (m *memStatsRepo) ListRecentActivities(_ context.Context, limit int) ([]*model.ActivityLog, error) {
	entries := make([]*model.ActivityLog, len(m.activities))
	copy(entries, m.activities)
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

type memPostRepo struct {
	posts    map[uint64]*model.Post
	postTags map[uint64][]uint64
	nextID   uint64
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: map[uint64]*model.Post{}, postTags: map[uint64][]uint64{}, nextID: 1}
}

func (m *memPostRepo) CreatePost(_ context.Context, post *model.Post, tagIDs []uint64) error {
	post.ID = m.nextID
	m.nextID++
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	cp := *post
	m.posts[post.ID] = &cp
	m.postTags[post.ID] = tagIDs
	return nil
}

func (m *memPostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	if post, ok := m.posts[id]; ok {
		cp := *post
		return &cp, nil
	}
	return nil, nil
}

func (m *memPostRepo) ListPosts(_ context.Context, filter *repository.PostFilter) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	for _, post := range m.posts {
		if filter.CategoryID > 0 && post.CategoryID != filter.CategoryID {
			continue
		}
		if filter.UserID > 0 && post.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && post.Status != filter.Status {
			continue
		}
		cp := *post
		posts = append(posts, &cp)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

func (m *memPostRepo) ListPostsByUser(_ context.Context, userID uint64, _, _ int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	for _, post := range m.posts {
		if post.UserID == userID {
			cp := *post
			posts = append(posts, &cp)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

func (m *memPostRepo) ListPostsByIDs(_ context.Context, ids []uint64) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	for _, id := range ids {
		if post, ok := m.posts[id]; ok {
			cp := *post
			posts = append(posts, &cp)
		}
	}
	return posts, nil
}

func (m *memPostRepo) UpdatePost(_ context.Context, post *model.Post, tagIDs []uint64) error {
	existing, ok := m.posts[post.ID]
	if !ok {
		return nil
	}
	existing.Title = post.Title
	existing.Content = post.Content
	existing.Status = post.Status
	existing.CategoryID = post.CategoryID
	existing.ImageURL = post.ImageURL
	existing.UpdatedAt = time.Now()
	if tagIDs != nil {
		m.postTags[post.ID] = tagIDs
	}
	return nil
}

func (m *memPostRepo) DeletePost(_ context.Context, id uint64) error {
	delete(m.posts, id)
	delete(m.postTags, id)
	return nil
}

func (m *memPostRepo) CountByCategory(_ context.Context, categoryID uint64) (int64, error) {
	var count int64
	for _, post := range m.posts {
		if post.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

type pair struct{ userID, postID uint64 }

type memActionRepo struct {
	likes map[pair]bool
	saves map[pair]bool

	// checkErr 非空时 CheckLikeExists/CheckSaveExists 返回该错误
	checkErr error
}

func newMemActionRepo() *memActionRepo {
	return &memActionRepo{likes: map[pair]bool{}, saves: map[pair]bool{}}
}

func (m *memActionRepo) CreateLike(_ context.Context, like *model.Like) error {
	key := pair{like.UserID, like.PostID}
	if m.likes[key] {
		return duplicateEntryErr()
	}
	m.likes[key] = true
	return nil
}

func (m *memActionRepo) DeleteLike(_ context.Context, userID, postID uint64) (int64, error) {
	key := pair{userID, postID}
	if !m.likes[key] {
		return 0, nil
	}
	delete(m.likes, key)
	return 1, nil
}

func (m *memActionRepo) CheckLikeExists(_ context.Context, userID, postID uint64) (bool, error) {
	if m.checkErr != nil {
		return false, m.checkErr
	}
	return m.likes[pair{userID, postID}], nil
}

func (m *memActionRepo) GetLikeCountByPostID(_ context.Context, postID uint64) (int64, error) {
	var count int64
	for key := range m.likes {
		if key.postID == postID {
			count++
		}
	}
	return count, nil
}

func (m *memActionRepo) GetLikedPostIDs(_ context.Context, userID uint64, postIDs []uint64) ([]uint64, error) {
	liked := make([]uint64, 0)
	for _, postID := range postIDs {
		if m.likes[pair{userID, postID}] {
			liked = append(liked, postID)
		}
	}
	return liked, nil
}

func (m *memActionRepo) CreateSave(_ context.Context, saved *model.SavedPost) error {
	key := pair{saved.UserID, saved.PostID}
	if m.saves[key] {
		return duplicateEntryErr()
	}
	m.saves[key] = true
	return nil
}

func (m *memActionRepo) DeleteSave(_ context.Context, userID, postID uint64) (int64, error) {
	key := pair{userID, postID}
	if !m.saves[key] {
		return 0, nil
	}
	delete(m.saves, key)
	return 1, nil
}

func (m *memActionRepo) CheckSaveExists(_ context.Context, userID, postID uint64) (bool, error) {
	if m.checkErr != nil {
		return false, m.checkErr
	}
	return m.saves[pair{userID, postID}], nil
}

func (m *memActionRepo) GetSavedIDsIn(_ context.Context, userID uint64, postIDs []uint64) ([]uint64, error) {
	saved := make([]uint64, 0)
	for _, postID := range postIDs {
		if m.saves[pair{userID, postID}] {
			saved = append(saved, postID)
		}
	}
	return saved, nil
}

func (m *memActionRepo) GetSavedPostIDs(_ context.Context, userID uint64, _, _ int) ([]uint64, error) {
	postIDs := make([]uint64, 0)
	for key := range m.saves {
		if key.userID == userID {
			postIDs = append(postIDs, key.postID)
		}
	}
	sort.Slice(postIDs, func(i, j int) bool { return postIDs[i] < postIDs[j] })
	return postIDs, nil
}

type memCommentRepo struct {
	comments map[uint64]*model.Comment
	nextID   uint64
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: map[uint64]*model.Comment{}, nextID: 1}
}

func (m *memCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	comment.ID = m.nextID
	m.nextID++
	comment.CreatedAt = time.Now()
	cp := *comment
	m.comments[comment.ID] = &cp
	return nil
}

func (m *memCommentRepo) GetCommentByID(_ context.Context, id uint64) (*model.Comment, error) {
	if comment, ok := m.comments[id]; ok {
		cp := *comment
		return &cp, nil
	}
	return nil, nil
}

func (m *memCommentRepo) ListCommentsByPost(_ context.Context, postID uint64, _, _ int) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	for _, comment := range m.comments {
		if comment.PostID == postID {
			cp := *comment
			comments = append(comments, &cp)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID > comments[j].ID })
	return comments, nil
}

func (m *memCommentRepo) UpdateCommentContent(_ context.Context, id uint64, content string) error {
	if comment, ok := m.comments[id]; ok {
		comment.Content = content
	}
	return nil
}

func (m *memCommentRepo) DeleteComment(_ context.Context, id uint64) error {
	delete(m.comments, id)
	return nil
}

func (m *memCommentRepo) CountByPost(_ context.Context, postID uint64) (int64, error) {
	var count int64
	for _, comment := range m.comments {
		if comment.PostID == postID {
			count++
		}
	}
	return count, nil
}

type memCategoryRepo struct {
	categories map[uint64]*model.Category
	postRepo   *memPostRepo
	nextID     uint64
}

func newMemCategoryRepo(postRepo *memPostRepo) *memCategoryRepo {
	return &memCategoryRepo{categories: map[uint64]*model.Category{}, postRepo: postRepo, nextID: 1}
}

func (m *memCategoryRepo) CreateCategory(_ context.Context, category *model.Category) error {
	for _, existing := range m.categories {
		if existing.Name == category.Name {
			return duplicateEntryErr()
		}
	}
	category.ID = m.nextID
	m.nextID++
	cp := *category
	m.categories[category.ID] = &cp
	return nil
}

func (m *memCategoryRepo) GetCategoryByID(_ context.Context, id uint64) (*model.Category, error) {
	if category, ok := m.categories[id]; ok {
		cp := *category
		return &cp, nil
	}
	return nil, nil
}

func (m *memCategoryRepo) ListCategories(_ context.Context) ([]*model.Category, error) {
	categories := make([]*model.Category, 0, len(m.categories))
	for _, category := range m.categories {
		cp := *category
		categories = append(categories, &cp)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (m *memCategoryRepo) UpdateCategory(_ context.Context, category *model.Category) error {
	for _, existing := range m.categories {
		if existing.ID != category.ID && existing.Name == category.Name {
			return duplicateEntryErr()
		}
	}
	if existing, ok := m.categories[category.ID]; ok {
		existing.Name = category.Name
	}
	return nil
}

func (m *memCategoryRepo) DeleteCategory(ctx context.Context, id uint64) error {
	if m.postRepo != nil {
		count, _ := m.postRepo.CountByCategory(ctx, id)
		if count > 0 {
			return repository.ErrCategoryHasPosts
		}
	}
	delete(m.categories, id)
	return nil
}

type memTagRepo struct {
	tags   map[uint64]*model.Tag
	nextID uint64
}

func newMemTagRepo() *memTagRepo {
	return &memTagRepo{tags: map[uint64]*model.Tag{}, nextID: 1}
}

func (m *memTagRepo) CreateTag(_ context.Context, tag *model.Tag) error {
	for _, existing := range m.tags {
		if existing.Name == tag.Name {
			return duplicateEntryErr()
		}
	}
	tag.ID = m.nextID
	m.nextID++
	cp := *tag
	m.tags[tag.ID] = &cp
	return nil
}

func (m *memTagRepo) GetTagByID(_ context.Context, id uint64) (*model.Tag, error) {
	if tag, ok := m.tags[id]; ok {
		cp := *tag
		return &cp, nil
	}
	return nil, nil
}

func (m *memTagRepo) ListTags(_ context.Context) ([]*model.Tag, error) {
	tags := make([]*model.Tag, 0, len(m.tags))
	for _, tag := range m.tags {
		cp := *tag
		tags = append(tags, &cp)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}

func (m *memTagRepo) FindOrCreateByNames(ctx context.Context, names []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(names))
	for _, name := range names {
		var found *model.Tag
		for _, tag := range m.tags {
			if tag.Name == name {
				found = tag
				break
			}
		}
		if found == nil {
			found = &model.Tag{Name: name}
			if err := m.CreateTag(ctx, found); err != nil {
				return nil, err
			}
		}
		ids = append(ids, found.ID)
	}
	return ids, nil
}

func (m *memTagRepo) DeleteTag(_ context.Context, id uint64) error {
	delete(m.tags, id)
	return nil
}

type memChatRepo struct {
	messages map[uint64]*model.ChatMessage
	nextID   uint64
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{messages: map[uint64]*model.ChatMessage{}, nextID: 1}
}

func (m *memChatRepo) CreateMessage(_ context.Context, msg *model.ChatMessage) error {
	msg.ID = m.nextID
	m.nextID++
	msg.CreatedAt = time.Now()
	cp := *msg
	m.messages[msg.ID] = &cp
	return nil
}

func (m *memChatRepo) GetMessageByID(_ context.Context, id uint64) (*model.ChatMessage, error) {
	if msg, ok := m.messages[id]; ok {
		cp := *msg
		return &cp, nil
	}
	return nil, nil
}

func (m *memChatRepo) ListMessagesByUser(_ context.Context, userID uint64, _, _ int) ([]*model.ChatMessage, error) {
	msgs := make([]*model.ChatMessage, 0)
	for _, msg := range m.messages {
		if msg.UserID == userID {
			cp := *msg
			msgs = append(msgs, &cp)
		}
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].ID > msgs[j].ID })
	return msgs, nil
}

func (m *memChatRepo) ListAllMessages(_ context.Context, _, _ int) ([]*model.ChatMessage, error) {
	msgs := make([]*model.ChatMessage, 0, len(m.messages))
	for _, msg := range m.messages {
		cp := *msg
		msgs = append(msgs, &cp)
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].ID > msgs[j].ID })
	return msgs, nil
}

func (m *memChatRepo) UpdateReply(_ context.Context, id uint64, reply string) error {
	if msg, ok := m.messages[id]; ok {
		msg.Reply = &reply
		msg.IsRead = true
	}
	return nil
}

func (m *memChatRepo) MarkRead(_ context.Context, id uint64) error {
	if msg, ok := m.messages[id]; ok {
		msg.IsRead = true
	}
	return nil
}

func (m *memChatRepo) DeleteMessage(_ context.Context, id uint64) error {
	delete(m.messages, id)
	return nil
}
