package services

import (
	"context"
	"strings"
	"testing"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() ReviewForm {
	return ReviewForm{Name: "Ann", Email: "ann@example.com", Text: "Loved it"}
}

func TestListPublishedSkipsDrafts(t *testing.T) {
	f := newFixture(t)
	f.seedMovie(t, "first", false)
	f.seedMovie(t, "draft", true)
	f.seedMovie(t, "second", false)

	movies, err := f.catalog().ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "first", movies[0].URL)
	assert.Equal(t, "second", movies[1].URL)
}

func TestGetMovieDetail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	movie := f.seedMovie(t, "casablanca", true)

	low := &models.RatingStar{Value: 2}
	high := &models.RatingStar{Value: 5}
	require.NoError(t, f.stars.Create(ctx, low))
	require.NoError(t, f.stars.Create(ctx, high))

	svc := f.catalog()
	_, err := svc.RateMovie(ctx, movie.ID, low.ID, "10.0.0.1")
	require.NoError(t, err)
	_, err = svc.RateMovie(ctx, movie.ID, high.ID, "10.0.0.2")
	require.NoError(t, err)

	detail, err := svc.GetMovieDetail(ctx, "casablanca")
	require.NoError(t, err)
	assert.Equal(t, movie.ID, detail.Movie.ID)
	assert.Equal(t, int64(2), detail.Rating.Count)
	assert.InDelta(t, 3.5, detail.Rating.Average, 0.001)

	_, err = svc.GetMovieDetail(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSubmitReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	movie := f.seedMovie(t, "casablanca", false)
	svc := f.catalog()

	gotMovie, review, err := svc.SubmitReview(ctx, movie.ID, validForm())
	require.NoError(t, err)
	assert.Equal(t, movie.ID, gotMovie.ID)
	assert.Nil(t, review.ParentID)
	assert.Equal(t, 1, f.cache.invalidations)

	reply := validForm()
	reply.Parent = " " + itoa(review.ID) + " "
	_, child, err := svc.SubmitReview(ctx, movie.ID, reply)
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, review.ID, *child.ParentID)
}

func TestSubmitReviewRejectsInvalidForm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	movie := f.seedMovie(t, "casablanca", false)
	other := f.seedMovie(t, "other", false)
	svc := f.catalog()

	_, foreign, err := svc.SubmitReview(ctx, other.ID, validForm())
	require.NoError(t, err)
	_, top, err := svc.SubmitReview(ctx, movie.ID, validForm())
	require.NoError(t, err)
	replyForm := validForm()
	replyForm.Parent = itoa(top.ID)
	_, reply, err := svc.SubmitReview(ctx, movie.ID, replyForm)
	require.NoError(t, err)

	cases := map[string]func(*ReviewForm){
		"missing name":   func(r *ReviewForm) { r.Name = "  " },
		"bad email":      func(r *ReviewForm) { r.Email = "not-an-email" },
		"empty text":     func(r *ReviewForm) { r.Text = "" },
		"text too long":  func(r *ReviewForm) { r.Text = strings.Repeat("x", models.ReviewTextMaxLength+1) },
		"parent not id":  func(r *ReviewForm) { r.Parent = "abc" },
		"unknown parent": func(r *ReviewForm) { r.Parent = "999" },
		"foreign parent": func(r *ReviewForm) { r.Parent = itoa(foreign.ID) },
		"nested reply":   func(r *ReviewForm) { r.Parent = itoa(reply.ID) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			form := validForm()
			mutate(&form)
			gotMovie, review, err := svc.SubmitReview(ctx, movie.ID, form)
			assert.ErrorIs(t, err, ErrInvalidReview)
			require.NotNil(t, gotMovie)
			assert.Equal(t, "casablanca", gotMovie.URL)
			assert.Nil(t, review)
		})
	}

	reviews, err := f.reviews.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 3)
}

func TestSubmitReviewUnknownMovie(t *testing.T) {
	f := newFixture(t)
	movie, review, err := f.catalog().SubmitReview(context.Background(), 42, validForm())
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, movie)
	assert.Nil(t, review)
}

func TestRateMovieReplacesEarlierRating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	movie := f.seedMovie(t, "casablanca", false)
	one := &models.RatingStar{Value: 1}
	five := &models.RatingStar{Value: 5}
	require.NoError(t, f.stars.Create(ctx, one))
	require.NoError(t, f.stars.Create(ctx, five))
	svc := f.catalog()

	_, err := svc.RateMovie(ctx, movie.ID, one.ID, "10.0.0.1")
	require.NoError(t, err)
	rating, err := svc.RateMovie(ctx, movie.ID, five.ID, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, five.ID, rating.StarID)

	ratings, err := f.ratings.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, five.ID, ratings[0].StarID)

	_, err = svc.RateMovie(ctx, movie.ID, 99, "10.0.0.1")
	assert.ErrorIs(t, err, ErrStarNotFound)
	_, err = svc.RateMovie(ctx, 99, five.ID, "10.0.0.1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
