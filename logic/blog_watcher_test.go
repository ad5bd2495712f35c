package logic_test

import (
	"context"
	"diasposter/logic"
	"diasposter/shared"
	"diasposter/test"
	"diasposter/test/mocks"
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

const blogHomePage = `<html><head>
<link rel="alternate" type="application/atom+xml" href="/atom.xml">
<link rel="alternate" type="application/rss+xml" href="/feed.xml">
</head><body>Trail Notes</body></html>`

const rssItemTemplate = `<item>
<title>%s</title>
<link>%s</link>
<guid isPermaLink="false">%s</guid>
<pubDate>%s</pubDate>
<description>&lt;p&gt;Body of %s&lt;/p&gt;</description>
<category>travel</category>
</item>`

type fakeBlog struct {
	mu    sync.Mutex
	items []string
}

func (fb *fakeBlog) addItem(title, guid, pubDate string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	link := "https://blog.example/" + guid
	fb.items = append(fb.items, fmt.Sprintf(rssItemTemplate, title, link, guid, pubDate, guid))
}

func (fb *fakeBlog) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(blogHomePage))
	})
	mux.HandleFunc("/feed.xml", func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		defer fb.mu.Unlock()
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = fmt.Fprintf(w, `<?xml version="1.0"?><rss version="2.0"><channel><title>Trail Notes</title>%s</channel></rss>`,
			strings.Join(fb.items, "\n"))
	})
	return mux
}

func TestBlogWatcherFirstCheckOnlyMarksSeen(t *testing.T) {
	blog := &fakeBlog{}
	blog.addItem("Older", "p1", "Mon, 06 May 2024 10:00:00 GMT")
	blog.addItem("Old", "p2", "Tue, 07 May 2024 10:00:00 GMT")
	srv := httptest.NewServer(blog.handler())
	defer srv.Close()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	mockCoordinator := mocks.NewMockISyncCoordinator(ctrl)
	test.StubLogger(mockLogger)
	test.StubMetrics(mockMetrics)

	cfg := testConfig()
	cfg.Blog.Url = srv.URL
	repo := newTestRepo(t, ctrl)
	bw := logic.NewBlogWatcher(cfg, mockLogger, shared.NewUserAgent(cfg), repo, mockCoordinator, mockMetrics)
	ctx := context.Background()

	count, err := bw.CheckFeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var saved *logic.ItemSaveEvent
	mockCoordinator.EXPECT().SaveItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev *logic.ItemSaveEvent) (*logic.SyncResult, error) {
			saved = ev
			return &logic.SyncResult{ItemId: ev.Item.Id}, nil
		}).Times(1)

	blog.addItem("New &amp; &lt;b&gt;shiny&lt;/b&gt;", "p3", "Wed, 08 May 2024 10:00:00 GMT")
	count, err = bw.CheckFeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NotNil(t, saved)
	assert.Equal(t, "p3", saved.Item.Id)
	assert.Equal(t, "https://blog.example/p3", saved.Item.Permalink)
	assert.Equal(t, "<p>Body of p3</p>", saved.Item.Body)
	assert.Equal(t, []string{"travel"}, saved.Item.Categories)
	assert.NotContains(t, saved.Item.Title, "<b>")

	count, err = bw.CheckFeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestBlogWatcherResubmitsFailedEntry(t *testing.T) {
	blog := &fakeBlog{}
	blog.addItem("Old", "p1", "Mon, 06 May 2024 10:00:00 GMT")
	srv := httptest.NewServer(blog.handler())
	defer srv.Close()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	mockCoordinator := mocks.NewMockISyncCoordinator(ctrl)
	test.StubLogger(mockLogger)
	test.StubMetrics(mockMetrics)

	cfg := testConfig()
	cfg.Blog.Url = srv.URL
	repo := newTestRepo(t, ctrl)
	bw := logic.NewBlogWatcher(cfg, mockLogger, shared.NewUserAgent(cfg), repo, mockCoordinator, mockMetrics)
	ctx := context.Background()

	_, err := bw.CheckFeed(ctx)
	require.NoError(t, err)

	blog.addItem("New", "p2", "Tue, 07 May 2024 10:00:00 GMT")
	gomock.InOrder(
		mockCoordinator.EXPECT().SaveItem(gomock.Any(), gomock.Any()).
			Return(nil, &logic.RemoteError{Op: "login", Err: errors.New("pod down")}),
		mockCoordinator.EXPECT().SaveItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev *logic.ItemSaveEvent) (*logic.SyncResult, error) {
				assert.Equal(t, "p2", ev.Item.Id)
				return &logic.SyncResult{ItemId: ev.Item.Id}, nil
			}),
	)

	// Failed save: entry stays new
	count, err := bw.CheckFeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = bw.CheckFeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Saved now: not submitted again
	count, err = bw.CheckFeed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
