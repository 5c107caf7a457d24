package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/portfolli/backend/internal/models"
)

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func TestPostCreateWithoutCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	author := seedProfile(t, db, "author@example.com")

	post, err := svc.Create(context.Background(), author.ID, "Hello", "First post", nil)
	require.NoError(t, err)
	assert.Nil(t, post.CategoryID)
	require.NotNil(t, post.Author)
	assert.Equal(t, author.ID, post.Author.ID)
}

func TestPostListFiltersByCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	author := seedProfile(t, db, "author@example.com")
	career := seedCategory(t, db, "Career")
	general := seedCategory(t, db, "General")

	_, err := svc.Create(context.Background(), author.ID, "Job hunt", "...", &career.ID)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), author.ID, "Intro", "...", &general.ID)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), author.ID, "Uncategorized", "...", nil)
	require.NoError(t, err)

	all, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := svc.List(context.Background(), &career.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Job hunt", filtered[0].Title)
	require.NotNil(t, filtered[0].Category)
	assert.Equal(t, "Career", filtered[0].Category.Name)
}

func TestPostGetIncludesOrderedComments(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db)
	comments := NewCommentService(db)
	author := seedProfile(t, db, "author@example.com")
	replier := seedProfile(t, db, "replier@example.com")

	post, err := posts.Create(context.Background(), author.ID, "Question", "How?", nil)
	require.NoError(t, err)

	_, err = comments.Create(context.Background(), replier.ID, post.ID, "First reply")
	require.NoError(t, err)
	_, err = comments.Create(context.Background(), author.ID, post.ID, "Thanks")
	require.NoError(t, err)

	got, gotComments, err := posts.Get(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
	require.Len(t, gotComments, 2)
	require.NotNil(t, gotComments[0].Author)
	assert.Equal(t, replier.ID, gotComments[0].Author.ID)
}

func TestPostDeleteCascadesComments(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db)
	comments := NewCommentService(db)
	author := seedProfile(t, db, "author@example.com")
	replier := seedProfile(t, db, "replier@example.com")

	post, err := posts.Create(context.Background(), author.ID, "Ephemeral", "...", nil)
	require.NoError(t, err)
	_, err = comments.Create(context.Background(), replier.ID, post.ID, "Reply")
	require.NoError(t, err)

	require.NoError(t, posts.Delete(context.Background(), author.ID, post.ID))

	var commentCount int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount).Error)
	assert.Zero(t, commentCount)
}

func TestPostDeleteByNonOwnerLeavesEverything(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db)
	comments := NewCommentService(db)
	author := seedProfile(t, db, "author@example.com")
	other := seedProfile(t, db, "other@example.com")

	post, err := posts.Create(context.Background(), author.ID, "Mine", "...", nil)
	require.NoError(t, err)
	_, err = comments.Create(context.Background(), other.ID, post.ID, "Reply")
	require.NoError(t, err)

	assert.ErrorIs(t, posts.Delete(context.Background(), other.ID, post.ID), ErrNotFound)

	var postCount, commentCount int64
	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&commentCount).Error)
	assert.EqualValues(t, 1, postCount)
	assert.EqualValues(t, 1, commentCount)
}

func TestPostDeleteAnyIgnoresOwnership(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostService(db)
	comments := NewCommentService(db)
	author := seedProfile(t, db, "author@example.com")
	replier := seedProfile(t, db, "replier@example.com")

	post, err := posts.Create(context.Background(), author.ID, "Spam", "...", nil)
	require.NoError(t, err)
	_, err = comments.Create(context.Background(), replier.ID, post.ID, "Reply")
	require.NoError(t, err)

	require.NoError(t, posts.DeleteAny(context.Background(), post.ID))

	var postCount, commentCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&commentCount).Error)
	assert.Zero(t, postCount)
	assert.Zero(t, commentCount)

	assert.ErrorIs(t, posts.DeleteAny(context.Background(), post.ID), ErrNotFound)
}

func TestPostCategoriesOrderedByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewPostService(db)
	seedCategory(t, db, "Showcase")
	seedCategory(t, db, "Career")
	seedCategory(t, db, "General")

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Career", categories[0].Name)
	assert.Equal(t, "Showcase", categories[2].Name)
}
