package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/content-admin/internal/adapters/http/flash"
	"github.com/jsamuelsen/content-admin/internal/adapters/http/views"
	"github.com/jsamuelsen/content-admin/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen/content-admin/internal/app"
	"github.com/jsamuelsen/content-admin/internal/domain"
)

type adminFixture struct {
	router    *gin.Engine
	store     *sqlite.Store
	content   *domain.Content
	questions []*domain.Question
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()

	ctx := context.Background()

	store, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "handlers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	content, err := store.CreateContent(ctx, "Chapter 1")
	require.NoError(t, err)

	f := &adminFixture{store: store, content: content}
	for _, title := range []string{"First", "Second"} {
		q, err := store.CreateQuestion(ctx, content.ID, domain.QuestionAttrs{Title: title})
		require.NoError(t, err)

		f.questions = append(f.questions, q)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	questions := app.NewQuestionService(app.QuestionServiceConfig{Questions: store, Contents: store, Logger: logger})
	contents := app.NewContentService(app.ContentServiceConfig{Contents: store, Logger: logger})

	tmpl, err := views.Templates()
	require.NoError(t, err)

	f.router = gin.New()
	f.router.SetHTMLTemplate(tmpl)

	NewQuestionHandler(app.NewQuestionResource(questions), flash.NewStore(false)).Register(f.router)

	api := f.router.Group("/api/v1")
	NewQuestionAPIHandler(questions).Register(api)
	NewContentAPIHandler(contents).Register(api)

	return f
}

func (f *adminFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	return w
}

func (f *adminFixture) count(t *testing.T) int {
	t.Helper()

	questions, err := f.store.ListQuestions(context.Background(), f.content.ID)
	require.NoError(t, err)

	return len(questions)
}

func formRequest(method, target, title string) *http.Request {
	form := url.Values{"question[title]": {title}}

	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

// follow issues a GET to the redirect target carrying any flash cookie.
func (f *adminFixture) follow(t *testing.T, w *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	t.Helper()

	location := w.Header().Get("Location")
	require.NotEmpty(t, location)

	req := httptest.NewRequest(http.MethodGet, location, nil)
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == flash.CookieName {
			req.AddCookie(cookie)
		}
	}

	return f.serve(req)
}

func TestQuestionHandler_Index(t *testing.T) {
	f := newAdminFixture(t)

	w := f.serve(httptest.NewRequest(http.MethodGet, views.QuestionsPath(f.content.ID), nil))

	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Questions for Chapter 1")
	assert.Less(t, strings.Index(body, "First"), strings.Index(body, "Second"))
	assert.Contains(t, body, views.NewQuestionPath(f.content.ID))
}

func TestQuestionHandler_ShowAndEdit(t *testing.T) {
	f := newAdminFixture(t)
	q := f.questions[1]

	w := f.serve(httptest.NewRequest(http.MethodGet, views.QuestionPath(f.content.ID, q.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Second")

	w = f.serve(httptest.NewRequest(http.MethodGet, views.EditQuestionPath(f.content.ID, q.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="Second"`)
	assert.Contains(t, w.Body.String(), `name="_method" value="PUT"`)
}

func TestQuestionHandler_MissingQuestionRedirectsWithFlash(t *testing.T) {
	f := newAdminFixture(t)

	for _, id := range []string{"test", "99999"} {
		t.Run(id, func(t *testing.T) {
			w := f.serve(httptest.NewRequest(http.MethodGet, views.QuestionsPath(f.content.ID)+"/"+id, nil))

			require.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, views.QuestionsPath(f.content.ID), w.Header().Get("Location"))

			page := f.follow(t, w)
			require.Equal(t, http.StatusOK, page.Code)
			assert.Contains(t, page.Body.String(), app.MsgQuestionNotFound)
			assert.Contains(t, page.Body.String(), "flash-error")
		})
	}
}

func TestQuestionHandler_New(t *testing.T) {
	f := newAdminFixture(t)

	w := f.serve(httptest.NewRequest(http.MethodGet, views.NewQuestionPath(f.content.ID), nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="question[title]"`)
}

func TestQuestionHandler_Create(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := newAdminFixture(t)

		w := f.serve(formRequest(http.MethodPost, views.QuestionsPath(f.content.ID), "Third"))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, 3, f.count(t))
		assert.True(t, strings.HasPrefix(w.Header().Get("Location"), views.QuestionsPath(f.content.ID)+"/"))

		page := f.follow(t, w)
		require.Equal(t, http.StatusOK, page.Code)
		assert.Contains(t, page.Body.String(), "Third")
		assert.Contains(t, page.Body.String(), app.MsgQuestionCreated)
	})

	t.Run("blank title", func(t *testing.T) {
		f := newAdminFixture(t)

		w := f.serve(formRequest(http.MethodPost, views.QuestionsPath(f.content.ID), "   "))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, views.NewQuestionPath(f.content.ID), w.Header().Get("Location"))
		assert.Equal(t, 2, f.count(t))

		page := f.follow(t, w)
		assert.Contains(t, page.Body.String(), "be blank")
	})
}

func TestQuestionHandler_Update(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := newAdminFixture(t)
		q := f.questions[0]

		w := f.serve(formRequest(http.MethodPut, views.QuestionPath(f.content.ID, q.ID), "Renamed"))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, views.QuestionsPath(f.content.ID), w.Header().Get("Location"))

		got, err := f.store.FindQuestion(context.Background(), f.content.ID, q.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
	})

	t.Run("blank title", func(t *testing.T) {
		f := newAdminFixture(t)
		q := f.questions[0]

		w := f.serve(formRequest(http.MethodPatch, views.QuestionPath(f.content.ID, q.ID), ""))

		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, views.EditQuestionPath(f.content.ID, q.ID), w.Header().Get("Location"))

		got, err := f.store.FindQuestion(context.Background(), f.content.ID, q.ID)
		require.NoError(t, err)
		assert.Equal(t, "First", got.Title)
	})
}

func TestQuestionHandler_Destroy(t *testing.T) {
	f := newAdminFixture(t)
	q := f.questions[0]

	w := f.serve(httptest.NewRequest(http.MethodDelete, views.QuestionPath(f.content.ID, q.ID), nil))

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, views.QuestionsPath(f.content.ID), w.Header().Get("Location"))
	assert.Equal(t, 1, f.count(t))

	page := f.follow(t, w)
	assert.Contains(t, page.Body.String(), app.MsgQuestionDestroyed)

	// Deleting again is not an error.
	w = f.serve(httptest.NewRequest(http.MethodDelete, views.QuestionPath(f.content.ID, q.ID), nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Empty(t, w.Result().Cookies())
	assert.Equal(t, 1, f.count(t))
}

func TestQuestionHandler_UnknownContent(t *testing.T) {
	f := newAdminFixture(t)

	tests := []struct {
		name string
		req  *http.Request
	}{
		{name: "index", req: httptest.NewRequest(http.MethodGet, "/contents/4242/questions", nil)},
		{name: "new", req: httptest.NewRequest(http.MethodGet, "/contents/4242/questions/new", nil)},
		{name: "show with bad id", req: httptest.NewRequest(http.MethodGet, "/contents/4242/questions/test", nil)},
		{name: "create", req: formRequest(http.MethodPost, "/contents/4242/questions", "Orphan")},
		{name: "non-numeric content", req: httptest.NewRequest(http.MethodGet, "/contents/abc/questions", nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.serve(tt.req)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), "404")
		})
	}

	assert.Equal(t, 2, f.count(t))
}

func TestQuestionHandler_QuestionOfAnotherContent(t *testing.T) {
	f := newAdminFixture(t)

	other, err := f.store.CreateContent(context.Background(), "Chapter 2")
	require.NoError(t, err)

	w := f.serve(httptest.NewRequest(http.MethodGet, views.QuestionPath(other.ID, f.questions[0].ID), nil))

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, views.QuestionsPath(other.ID), w.Header().Get("Location"))
}
