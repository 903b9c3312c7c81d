package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"movie-catalog/internal/database"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/services"
	"movie-catalog/internal/testutil"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminUser     = "staff"
	adminPassword = "secret"
)

type fakePresigner struct{}

func (fakePresigner) GeneratePresignedURL(_ context.Context, folder, filename string) (string, string, error) {
	return "http://minio/put/" + folder + "/" + filename, "http://minio/catalog/" + folder + "/" + filename, nil
}

type nopImages struct{}

func (nopImages) RemoveImage(context.Context, string) {}

func newTestApp(t *testing.T) (*fiber.App, *database.Database) {
	t.Helper()
	db := testutil.NewDB(t)
	log := testutil.NewLogger()
	v := utils.NewValidator()
	cache := services.NopCache{}

	movieRepo := repository.NewMovieRepository(db)
	actorRepo := repository.NewActorRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	shotRepo := repository.NewShotRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	starRepo := repository.NewRatingStarRepository(db)

	h := Handlers{
		Catalog:  handlers.NewCatalogHandler(services.NewCatalogService(movieRepo, reviewRepo, ratingRepo, starRepo, cache, v, log), v, log),
		Movies:   handlers.NewAdminMovieHandler(services.NewMovieService(movieRepo, actorRepo, genreRepo, categoryRepo, nopImages{}, cache, log), v, log),
		Actors:   handlers.NewAdminActorHandler(services.NewActorService(actorRepo, nopImages{}, cache, log), v, log),
		Shots:    handlers.NewAdminShotHandler(services.NewShotService(shotRepo, movieRepo, nopImages{}, cache, log), v, log),
		Taxonomy: handlers.NewAdminTaxonomyHandler(services.NewTaxonomyService(categoryRepo, genreRepo, cache, log), v, log),
		Reviews:  handlers.NewAdminReviewHandler(services.NewReviewService(reviewRepo, cache, log), log),
		Ratings:  handlers.NewAdminRatingHandler(services.NewRatingService(starRepo, ratingRepo, movieRepo, cache, log), v, log),
		Upload:   handlers.NewUploadHandler(fakePresigner{}, log),
	}

	app := fiber.New()
	auth := basicauth.New(basicauth.Config{Users: map[string]string{adminUser: adminPassword}})
	Setup(app, h, auth, middleware.NewSubmitLimiter(0, 0, log))
	return app, db
}

func seedMovie(t *testing.T, db *database.Database, slug string, draft bool) *models.Movie {
	t.Helper()
	movie := &models.Movie{Title: strings.ToUpper(slug), URL: slug, Draft: draft}
	require.NoError(t, repository.NewMovieRepository(db).Create(context.Background(), movie, nil, repository.InlineChanges{}))
	return movie
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, utils.StandardResponse) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body utils.StandardResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp, body
}

func adminRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(adminUser, adminPassword)
	return req
}

func reviewRequest(movieID string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies/"+movieID+"/reviews", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validReview() url.Values {
	return url.Values{"name": {"Ann"}, "email": {"ann@example.com"}, "text": {"Loved it"}}
}

func countReviews(t *testing.T, db *database.Database) int {
	t.Helper()
	reviews, err := repository.NewReviewRepository(db).FindAll(context.Background())
	require.NoError(t, err)
	return len(reviews)
}

func TestPublicListNeverReturnsDrafts(t *testing.T) {
	app, db := newTestApp(t)
	seedMovie(t, db, "published", false)
	seedMovie(t, db, "hidden", true)

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rows := body.Data.([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "published", rows[0].(map[string]interface{})["url"])
}

func TestPublicDetail(t *testing.T) {
	app, db := newTestApp(t)
	movie := seedMovie(t, db, "secret", true)
	require.NoError(t, repository.NewReviewRepository(db).Create(context.Background(), &models.Review{
		Name: "Ann", Email: "ann@example.com", Text: "Great", MovieID: movie.ID,
	}))

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/movies/secret", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body.Data.(map[string]interface{})
	assert.Equal(t, "secret", data["url"])
	assert.Equal(t, true, data["draft"])
	reviews := data["reviews"].([]interface{})
	require.Len(t, reviews, 1)
	assert.NotContains(t, reviews[0].(map[string]interface{}), "email")

	resp, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/movies/unknown", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReviewSubmissionRedirects(t *testing.T) {
	app, db := newTestApp(t)
	seedMovie(t, db, "first", false)
	movie := seedMovie(t, db, "casablanca", false)

	form := validReview()
	form.Set("movie", "1")
	resp, _ := do(t, app, reviewRequest(itoa(movie.ID), form))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/api/v1/movies/casablanca", resp.Header.Get("Location"))

	reviews, err := repository.NewReviewRepository(db).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, movie.ID, reviews[0].MovieID)
	assert.Nil(t, reviews[0].ParentID)
}

func TestInvalidReviewStillRedirects(t *testing.T) {
	app, db := newTestApp(t)
	movie := seedMovie(t, db, "casablanca", false)

	form := validReview()
	form.Set("email", "nope")
	resp, _ := do(t, app, reviewRequest(itoa(movie.ID), form))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/api/v1/movies/casablanca", resp.Header.Get("Location"))
	assert.Zero(t, countReviews(t, db))
}

func TestRepliesStayOneLevelDeep(t *testing.T) {
	app, db := newTestApp(t)
	movie := seedMovie(t, db, "casablanca", false)
	reviews := repository.NewReviewRepository(db)

	do(t, app, reviewRequest(itoa(movie.ID), validReview()))
	all, err := reviews.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)

	reply := validReview()
	reply.Set("parent", itoa(all[0].ID))
	resp, _ := do(t, app, reviewRequest(itoa(movie.ID), reply))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	all, err = reviews.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	nested := validReview()
	nested.Set("parent", itoa(all[1].ID))
	resp, _ = do(t, app, reviewRequest(itoa(movie.ID), nested))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/api/v1/movies/casablanca", resp.Header.Get("Location"))
	assert.Equal(t, 2, countReviews(t, db))

	_, body := do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/movies/casablanca", nil))
	top := body.Data.(map[string]interface{})["reviews"].([]interface{})
	require.Len(t, top, 1)
	assert.Len(t, top[0].(map[string]interface{})["children"], 1)
}

func TestReviewForUnknownMovie(t *testing.T) {
	app, db := newTestApp(t)

	resp, _ := do(t, app, reviewRequest("99", validReview()))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, app, reviewRequest("99", url.Values{"email": {"bad"}}))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Zero(t, countReviews(t, db))
}

func TestRateMovie(t *testing.T) {
	app, db := newTestApp(t)
	movie := seedMovie(t, db, "casablanca", false)
	star := &models.RatingStar{Value: 4}
	require.NoError(t, repository.NewRatingStarRepository(db).Create(context.Background(), star))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies/"+itoa(movie.ID)+"/rating", strings.NewReader(`{"star":`+itoa(star.ID)+`}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := do(t, app, req)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(4), body.Data.(map[string]interface{})["value"])

	req = httptest.NewRequest(http.MethodPost, "/api/v1/movies/"+itoa(movie.ID)+"/rating", strings.NewReader(`{"star":999}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ = do(t, app, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/movies/casablanca", nil))
	rating := body.Data.(map[string]interface{})["rating"].(map[string]interface{})
	assert.Equal(t, float64(1), rating["count"])
}

func TestAdminRequiresCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/admin/movies", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, app, adminRequest(http.MethodGet, "/api/v1/admin/movies", ""))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminBulkActions(t *testing.T) {
	app, db := newTestApp(t)
	a := seedMovie(t, db, "a", true)
	b := seedMovie(t, db, "b", true)
	seedMovie(t, db, "c", true)

	resp, body := do(t, app, adminRequest(http.MethodPost, "/api/v1/admin/movies/actions",
		`{"action":"publish","ids":[`+itoa(a.ID)+`,`+itoa(b.ID)+`]}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2 rows were updated", body.Message)

	resp, body = do(t, app, adminRequest(http.MethodPost, "/api/v1/admin/movies/actions",
		`{"action":"unpublish","ids":[`+itoa(a.ID)+`]}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1 row was updated", body.Message)

	resp, _ = do(t, app, adminRequest(http.MethodPost, "/api/v1/admin/movies/actions", `{"action":"archive","ids":[1]}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, body = do(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/movies", nil))
	rows := body.Data.([]interface{})
	require.Len(t, rows, 1)
	assert.Equal(t, "b", rows[0].(map[string]interface{})["url"])
}

func TestAdminMovieLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := do(t, app, adminRequest(http.MethodPost, "/api/v1/admin/categories", `{"name":"Films","url":"films"}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	categoryID := body.Data.(map[string]interface{})["id"].(float64)

	resp, body = do(t, app, adminRequest(http.MethodPost, "/api/v1/admin/movies", `{"title":"Casablanca","url":"bad slug"}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body.Message, "url")

	resp, body = do(t, app, adminRequest(http.MethodPost, "/api/v1/admin/movies",
		`{"title":"Casablanca","url":"casablanca","world_premiere":"1942-11-26","category_id":`+ftoa(categoryID)+`,
		  "shots":[{"title":"Cafe","image":"http://img/cafe.jpg"}]}`))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	screen := body.Data.(map[string]interface{})
	values := screen["values"].(map[string]interface{})
	movieID := ftoa(values["id"].(float64))
	assert.Len(t, screen["fieldsets"], 6)
	shots := screen["inlines"].([]interface{})[0].(map[string]interface{})["rows"].([]interface{})
	require.Len(t, shots, 1)
	assert.Equal(t, `<img src="http://img/cafe.jpg" width="150">`, shots[0].(map[string]interface{})["get_image"])

	resp, body = do(t, app, adminRequest(http.MethodGet, "/api/v1/admin/movies?search=FILMS", ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := body.Data.(map[string]interface{})
	assert.Len(t, list["rows"], 1)
	assert.Equal(t, float64(1), body.Meta.(map[string]interface{})["total"])

	resp, body = do(t, app, adminRequest(http.MethodPatch, "/api/v1/admin/movies/"+movieID+"/draft", `{"draft":true}`))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body.Data.(map[string]interface{})["draft"])

	resp, _ = do(t, app, adminRequest(http.MethodDelete, "/api/v1/admin/categories/"+ftoa(categoryID), ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = do(t, app, adminRequest(http.MethodGet, "/api/v1/admin/movies/"+movieID, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	values = body.Data.(map[string]interface{})["values"].(map[string]interface{})
	assert.Nil(t, values["category_id"])

	resp, _ = do(t, app, adminRequest(http.MethodDelete, "/api/v1/admin/movies/"+movieID, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, app, adminRequest(http.MethodGet, "/api/v1/admin/movies/"+movieID, ""))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminCreateRejectsExistingShot(t *testing.T) {
	app, db := newTestApp(t)

	resp, _ := do(t, app, adminRequest(http.MethodPost, "/api/v1/admin/movies",
		`{"title":"X","url":"x","shots":[{"id":999,"title":"s"}]}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, err := repository.NewMovieRepository(db).FindBySlug(context.Background(), "x")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAdminUpdateCannotDeleteOtherMoviesReviews(t *testing.T) {
	app, db := newTestApp(t)
	ctx := context.Background()
	casablanca := seedMovie(t, db, "casablanca", false)
	vertigo := seedMovie(t, db, "vertigo", false)
	reviews := repository.NewReviewRepository(db)
	parent := &models.Review{Name: "a", Email: "a@example.com", Text: "t", MovieID: vertigo.ID}
	require.NoError(t, reviews.Create(ctx, parent))
	reply := &models.Review{Name: "b", Email: "b@example.com", Text: "r", MovieID: vertigo.ID, ParentID: &parent.ID}
	require.NoError(t, reviews.Create(ctx, reply))

	resp, _ := do(t, app, adminRequest(http.MethodPut, "/api/v1/admin/movies/"+itoa(casablanca.ID),
		`{"title":"Casablanca","url":"casablanca","delete_reviews":[`+itoa(parent.ID)+`]}`))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	got, err := reviews.FindByID(ctx, reply.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, parent.ID, *got.ParentID)
}

func TestAdminMovieAmountsFitBigint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := do(t, app, adminRequest(http.MethodPost, "/api/v1/admin/movies",
		`{"title":"X","url":"x","budget":9223372036854775808}`))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	fields := body.Data.(map[string]interface{})
	assert.Contains(t, fields, "budget")

	resp, _ = do(t, app, adminRequest(http.MethodPost, "/api/v1/admin/movies",
		`{"title":"X","url":"x","budget":9223372036854775807}`))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestAdminReviewsAreReadOnly(t *testing.T) {
	app, _ := newTestApp(t)

	for _, method := range []string{http.MethodPost, http.MethodPut} {
		resp, _ := do(t, app, adminRequest(method, "/api/v1/admin/reviews/1", `{}`))
		assert.GreaterOrEqual(t, resp.StatusCode, http.StatusBadRequest, method)
	}
}

func TestPresignRejectsUnknownFolder(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := do(t, app, adminRequest(http.MethodGet, "/api/v1/admin/upload/presign?filename=a.jpg&folder=tmp", ""))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := do(t, app, adminRequest(http.MethodGet, "/api/v1/admin/upload/presign?filename=a.jpg&folder=actors", ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://minio/catalog/actors/a.jpg", body.Data.(map[string]interface{})["public_url"])
}
