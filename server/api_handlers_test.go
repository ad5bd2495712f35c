package server_test

import (
	"bytes"
	"context"
	"diasposter/dal"
	"diasposter/logic"
	"diasposter/server"
	"diasposter/shared"
	"diasposter/test"
	"diasposter/test/mocks"
	"encoding/json"
	"errors"
	"github.com/go-fed/httpsig"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

const (
	testApiKey  = "k3y-for-tests"
	testHookKey = "blog-hook"
	testSecret  = "hook-secret"
	testHandle  = "alice@pod.example"
	metricsAuth = "scrape-me"
)

type apiHarness struct {
	cfg             *shared.Config
	repo            dal.IRepo
	mockCoordinator *mocks.MockISyncCoordinator
	mockDeletion    *mocks.MockIDeletionPropagator
	mockNotifier    *mocks.MockINotifier
	mockCache       *mocks.MockIRemoteCache
	mockScheduler   *mocks.MockISyncScheduler
	router          *mux.Router
}

func setupApiTest(t *testing.T) *apiHarness {

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	test.StubLogger(mockLogger)
	test.StubMetrics(mockMetrics)

	cfg := &shared.Config{
		DbFile:   filepath.Join(t.TempDir(), "test.db"),
		Accounts: []shared.Account{{Handle: testHandle, SyncComments: true}},
	}
	cfg.Secrets.ApiKeys = []string{testApiKey}
	cfg.Secrets.HookKeys = map[string]string{testHookKey: testSecret}
	cfg.Secrets.MetricsAuth = metricsAuth
	cfg.ApplyDefaults()

	h := &apiHarness{
		cfg:             cfg,
		repo:            dal.NewRepo(cfg, mockLogger),
		mockCoordinator: mocks.NewMockISyncCoordinator(ctrl),
		mockDeletion:    mocks.NewMockIDeletionPropagator(ctrl),
		mockNotifier:    mocks.NewMockINotifier(ctrl),
		mockCache:       mocks.NewMockIRemoteCache(ctrl),
		mockScheduler:   mocks.NewMockISyncScheduler(ctrl),
	}
	h.repo.InitUpdateDb()

	api := server.NewApiHandlerGroup(cfg, mockLogger, mockMetrics, h.repo, logic.NewHttpSigChecker(cfg, mockLogger),
		h.mockCoordinator, h.mockDeletion, h.mockNotifier, h.mockCache, h.mockScheduler)
	metrics := server.NewMetricsHandlerGroup(cfg, mockLogger)
	h.router = server.NewMux([]server.IHandlerGroup{api, metrics}, mockLogger)
	return h
}

func (h *apiHarness) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func withKey(req *http.Request) *http.Request {
	req.Header.Set("X-API-KEY", testApiKey)
	return req
}

func signRequest(t *testing.T, req *http.Request, body []byte) {
	req.Header.Set("Date", time.Now().UTC().Format(http.TimeFormat))
	signer, _, err := httpsig.NewSigner(
		[]httpsig.Algorithm{httpsig.HMAC_SHA256},
		httpsig.DigestSha256,
		[]string{httpsig.RequestTarget, "date", "digest"},
		httpsig.Signature,
		0,
	)
	require.NoError(t, err)
	require.NoError(t, signer.SignRequest([]byte(testSecret), testHookKey, req, body))
}

const itemJson = `{
	"title": "Walking the Jinguashi trail",
	"body": "<p>Hi</p>",
	"status": "publish",
	"format": "image",
	"geo": {"latitude": 25.1, "longitude": 121.85, "address": "Jinguashi"},
	"directive": {"aspect_ids": ["public"], "services": ["tumblr", "myspace"]}
}`

func TestApiRejectsMissingKey(t *testing.T) {
	h := setupApiTest(t)

	rec := h.do(httptest.NewRequest("GET", "/api/notices", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest("GET", "/api/notices", nil)
	req.Header.Set("X-API-KEY", "wrong")
	rec = h.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPutItem(t *testing.T) {
	h := setupApiTest(t)

	var got *logic.ItemSaveEvent
	h.mockCoordinator.EXPECT().SaveItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *logic.ItemSaveEvent) (*logic.SyncResult, error) {
			got = ev
			return &logic.SyncResult{
				ItemId: ev.Item.Id,
				Link:   &dal.SyncLink{ItemId: ev.Item.Id, RemotePostId: "1234", PodHost: "pod.example"},
			}, nil
		})

	rec := h.do(withKey(httptest.NewRequest("PUT", "/api/items/7", bytes.NewReader([]byte(itemJson)))))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["synced"])
	assert.Equal(t, "http://pod.example/posts/1234", resp["syndication_url"])

	require.NotNil(t, got)
	assert.Equal(t, "7", got.Item.Id)
	assert.Equal(t, dal.FormatImage, got.Item.Format)
	assert.Equal(t, dal.StatusPublished, got.Item.Status)
	require.NotNil(t, got.Item.Geo)
	assert.True(t, got.Item.Geo.Public)
	require.NotNil(t, got.Directive)
	assert.Equal(t, []string{"public"}, got.Directive.AspectIds)
	require.NotNil(t, got.Directive.Services)
	assert.Equal(t, []dal.BroadcastService{dal.ServiceTumblr}, *got.Directive.Services)
	assert.Nil(t, got.Directive.Crosspost)
}

func TestPutItemPublishedStatus(t *testing.T) {
	h := setupApiTest(t)

	var got *logic.ItemSaveEvent
	h.mockCoordinator.EXPECT().SaveItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *logic.ItemSaveEvent) (*logic.SyncResult, error) {
			got = ev
			return &logic.SyncResult{ItemId: ev.Item.Id}, nil
		})

	body := `{"title": "Hi", "body": "<p>Hi</p>", "status": "published"}`
	rec := h.do(withKey(httptest.NewRequest("PUT", "/api/items/9", bytes.NewReader([]byte(body)))))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, dal.StatusPublished, got.Item.Status)
}

func TestPutItemErrors(t *testing.T) {
	h := setupApiTest(t)

	rec := h.do(withKey(httptest.NewRequest("PUT", "/api/items/7", bytes.NewReader([]byte("{")))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h.mockCoordinator.EXPECT().SaveItem(gomock.Any(), gomock.Any()).
		Return(nil, &logic.RemoteError{Op: "login", Err: errors.New("bad password")})
	rec = h.do(withKey(httptest.NewRequest("PUT", "/api/items/7", bytes.NewReader([]byte(itemJson)))))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad password")

	h.mockCoordinator.EXPECT().SaveItem(gomock.Any(), gomock.Any()).
		Return(nil, &logic.LocalStoreError{Op: "save item", Err: errors.New("disk full")})
	rec = h.do(withKey(httptest.NewRequest("PUT", "/api/items/7", bytes.NewReader([]byte(itemJson)))))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPutItemSigned(t *testing.T) {
	h := setupApiTest(t)

	h.mockCoordinator.EXPECT().SaveItem(gomock.Any(), gomock.Any()).
		Return(&logic.SyncResult{ItemId: "8", Skip: logic.SkipOptOut}, nil)

	body := []byte(itemJson)
	req := httptest.NewRequest("PUT", "/api/items/8", bytes.NewReader(body))
	signRequest(t, req, body)
	rec := h.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), string(logic.SkipOptOut))

	// Signed for a different body
	req = httptest.NewRequest("PUT", "/api/items/8", bytes.NewReader([]byte(`{"title": "evil"}`)))
	signRequest(t, req, body)
	rec = h.do(req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteEndpoints(t *testing.T) {
	h := setupApiTest(t)

	h.mockDeletion.EXPECT().ItemDeleted(gomock.Any(), "7")
	rec := h.do(withKey(httptest.NewRequest("DELETE", "/api/items/7", nil)))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	h.mockDeletion.EXPECT().CommentDeleted(gomock.Any(), int64(42))
	rec = h.do(withKey(httptest.NewRequest("DELETE", "/api/comments/42", nil)))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.do(withKey(httptest.NewRequest("DELETE", "/api/comments/abc", nil)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSyndication(t *testing.T) {
	h := setupApiTest(t)

	rec := h.do(withKey(httptest.NewRequest("GET", "/api/items/7/syndication", nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	require.NoError(t, h.repo.AddSyncLink(&dal.SyncLink{ItemId: "7", RemotePostId: "99", PodHost: "pod.example"}))
	rec = h.do(withKey(httptest.NewRequest("GET", "/api/items/7/syndication", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"syndication_url":"http://pod.example/posts/99"`)
}

func TestGetComments(t *testing.T) {
	h := setupApiTest(t)

	comment := &dal.Comment{ItemId: "7", Content: "<p>Nice</p>", AuthorName: "Bob", Date: time.Now().UTC(),
		Approved: dal.CommentApproved}
	_, err := h.repo.AddImportedComment(comment, &dal.CommentLink{RemoteGuid: "g", RemoteCommentId: "5",
		Avatar: "https://other.example/bob.png"})
	require.NoError(t, err)

	rec := h.do(withKey(httptest.NewRequest("GET", "/api/items/7/comments", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	var comments []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &comments))
	require.Len(t, comments, 1)
	assert.Equal(t, "Bob", comments[0]["author_name"])
	assert.Equal(t, "https://other.example/bob.png", comments[0]["avatar"])
}

func TestGetNotices(t *testing.T) {
	h := setupApiTest(t)

	h.mockNotifier.EXPECT().PopNotices().Return([]*dal.Notice{{Level: dal.NoticeError, Text: "boom"}}, nil)
	rec := h.do(withKey(httptest.NewRequest("GET", "/api/notices", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"text":"boom"`)
}

func TestAccountEndpoints(t *testing.T) {
	h := setupApiTest(t)

	rec := h.do(withKey(httptest.NewRequest("GET", "/api/accounts/bob@pod.example/aspects", nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	h.mockCache.EXPECT().Refresh(gomock.Any(), testHandle).Return(&logic.RemoteError{Op: "login", Err: errors.New("x")})
	rec = h.do(withKey(httptest.NewRequest("POST", "/api/accounts/"+testHandle+"/refresh", nil)))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	h.mockScheduler.EXPECT().RunNow(gomock.Any(), testHandle).Return(nil, logic.ErrSyncRunning)
	rec = h.do(withKey(httptest.NewRequest("POST", "/api/accounts/"+testHandle+"/sync", nil)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	h.mockScheduler.EXPECT().RunNow(gomock.Any(), testHandle).Return(&logic.ReconcileStats{Imported: 2, Failed: 1}, nil)
	rec = h.do(withKey(httptest.NewRequest("POST", "/api/accounts/"+testHandle+"/sync", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"imported":2`)
}

func TestMetricsRequiresBearer(t *testing.T) {
	h := setupApiTest(t)

	rec := h.do(httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest("GET", "/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+metricsAuth)
	rec = h.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
