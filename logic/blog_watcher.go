package logic

import (
	"context"
	"diasposter/dal"
	"diasposter/shared"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
	"github.com/spaolacci/murmur3"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_blog_watcher.go -package mocks diasposter/logic IBlogWatcher

const feedTimeoutSec = 10

// IBlogWatcher finds new items in the blog's own feed and hands them to the sync coordinator.
// It is an alternative to the host pushing save hooks.
type IBlogWatcher interface {
	CheckFeed(ctx context.Context) (newEntries int, err error)
	Start()
	Stop()
}

type blogWatcher struct {
	cfg         *shared.Config
	logger      shared.ILogger
	userAgent   shared.IUserAgent
	repo        dal.IRepo
	coordinator ISyncCoordinator
	metrics     IMetrics
	strict      *bluemonday.Policy
	muFeedUrl   sync.Mutex
	feedUrl     string
	stop        chan struct{}
	done        chan struct{}
}

func NewBlogWatcher(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	repo dal.IRepo,
	coordinator ISyncCoordinator,
	metrics IMetrics,
) IBlogWatcher {
	return &blogWatcher{
		cfg:         cfg,
		logger:      logger,
		userAgent:   userAgent,
		repo:        repo,
		coordinator: coordinator,
		metrics:     metrics,
		strict:      bluemonday.StrictPolicy(),
		feedUrl:     cfg.Blog.FeedUrl,
	}
}

func (bw *blogWatcher) enabled() bool {
	return bw.cfg.Blog.FeedUrl != "" || bw.cfg.Blog.Url != ""
}

func (bw *blogWatcher) Start() {
	if !bw.enabled() {
		bw.logger.Info("No blog feed configured; feed watcher not started")
		return
	}
	bw.stop = make(chan struct{})
	bw.done = make(chan struct{})
	go bw.feedCheckLoop()
}

func (bw *blogWatcher) Stop() {
	if bw.stop == nil {
		return
	}
	close(bw.stop)
	<-bw.done
}

func (bw *blogWatcher) feedCheckLoop() {
	defer close(bw.done)
	interval := time.Duration(bw.cfg.Blog.FeedCheckMin) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		bw.feedCheckLoopInner()
		select {
		case <-bw.stop:
			return
		case <-ticker.C:
		}
	}
}

func (bw *blogWatcher) feedCheckLoopInner() {

	defer func() {
		if r := recover(); r != nil {
			bw.logger.Errorf("Feed check cycle panicked: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(bw.cfg.Blog.FeedCheckMin)*time.Minute)
	defer cancel()
	if _, err := bw.CheckFeed(ctx); err != nil {
		bw.logger.Errorf("Error checking blog feed: %v", err)
	}
}

func (bw *blogWatcher) getFeedUrl(siteUrl *url.URL, doc *goquery.Document) string {

	var feedUrlStr string
	isFeedRss := false
	doc.Find("link[rel='alternate']").Each(func(_ int, s *goquery.Selection) {
		aType, _ := s.Attr("type")
		aHref, ok := s.Attr("href")
		if !ok {
			return
		}
		if aType == "application/atom+xml" && !isFeedRss && feedUrlStr == "" {
			feedUrlStr = aHref
		}
		if aType == "application/rss+xml" && (feedUrlStr == "" || !isFeedRss) {
			feedUrlStr = aHref
			isFeedRss = true
		}
	})
	if feedUrlStr == "" {
		return ""
	}

	// Make it absolute
	feedUrl, err := url.Parse(feedUrlStr)
	if err != nil {
		return ""
	}
	if !feedUrl.IsAbs() {
		feedUrl = siteUrl.ResolveReference(feedUrl)
	}
	return feedUrl.String()
}

func (bw *blogWatcher) httpGet(ctx context.Context, urlStr string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return nil, err
	}
	bw.userAgent.AddUserAgent(req)
	client := http.Client{}
	client.Timeout = time.Second * feedTimeoutSec
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("request for %s failed with status %d", urlStr, resp.StatusCode)
	}
	return resp, nil
}

// discoverFeedUrl finds the feed announced on the blog's home page.
func (bw *blogWatcher) discoverFeedUrl(ctx context.Context) (string, error) {

	bw.muFeedUrl.Lock()
	defer bw.muFeedUrl.Unlock()
	if bw.feedUrl != "" {
		return bw.feedUrl, nil
	}

	siteUrl, err := url.Parse(bw.cfg.Blog.Url)
	if err != nil {
		return "", err
	}
	resp, err := bw.httpGet(ctx, bw.cfg.Blog.Url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}
	if bw.feedUrl = bw.getFeedUrl(siteUrl, doc); bw.feedUrl == "" {
		return "", fmt.Errorf("no feed URL found at %s", bw.cfg.Blog.Url)
	}
	bw.logger.Infof("Discovered blog feed: %s", bw.feedUrl)
	return bw.feedUrl, nil
}

func (bw *blogWatcher) fetchParseFeed(ctx context.Context, feedUrl string) (*gofeed.Feed, error) {
	resp, err := bw.httpGet(ctx, feedUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	fp := gofeed.NewParser()
	return fp.Parse(resp.Body)
}

func getItemHash(itm *gofeed.Item) uint {
	str := itm.GUID + "\t" + itm.Link
	hasher := murmur3.New32()
	_, _ = hasher.Write([]byte(str))
	return uint(hasher.Sum32())
}

type sortedEntry struct {
	itm      *gofeed.Item
	postTime time.Time
}

// getSortedEntries orders feed items from oldest to newest.
func getSortedEntries(items []*gofeed.Item) []sortedEntry {
	res := make([]sortedEntry, 0, len(items))
	for _, itm := range items {
		var t time.Time
		if itm.PublishedParsed != nil {
			t = *itm.PublishedParsed
		}
		if itm.UpdatedParsed != nil && itm.UpdatedParsed.After(t) {
			t = *itm.UpdatedParsed
		}
		res = append(res, sortedEntry{itm, t})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].postTime.Before(res[j].postTime)
	})
	return res
}

func feedItemId(itm *gofeed.Item, hash uint) string {
	if itm.GUID != "" {
		return itm.GUID
	}
	if itm.Link != "" {
		return itm.Link
	}
	return "feed-" + strconv.FormatUint(uint64(hash), 10)
}

func (bw *blogWatcher) toItem(entry sortedEntry, itemId string) *dal.Item {
	itm := entry.itm
	body := itm.Content
	if body == "" {
		body = itm.Description
	}
	item := dal.Item{
		Id:         itemId,
		PostType:   dal.DefaultPostType,
		Title:      strings.TrimSpace(bw.strict.Sanitize(itm.Title)),
		Body:       body,
		Categories: itm.Categories,
		Format:     dal.FormatStandard,
		Status:     dal.StatusPublished,
		Permalink:  itm.Link,
		UpdatedAt:  entry.postTime,
	}
	if itm.Image != nil {
		item.FeaturedImage = itm.Image.URL
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = time.Now().UTC()
	}
	return &item
}

// CheckFeed submits entries not seen before for crossposting, and records them once saved.
// An entry whose save failed stays unrecorded and is submitted again on the next check.
// On the very first check entries are only recorded, so that the blog's back catalog is not posted.
func (bw *blogWatcher) CheckFeed(ctx context.Context) (newEntries int, err error) {

	var feedUrl string
	if feedUrl, err = bw.discoverFeedUrl(ctx); err != nil {
		return 0, err
	}
	var feed *gofeed.Feed
	if feed, err = bw.fetchParseFeed(ctx, feedUrl); err != nil {
		return 0, err
	}

	var seenCount int
	if seenCount, err = bw.repo.GetFeedEntryCount(); err != nil {
		return 0, storeErr("count feed entries", err)
	}
	firstCheck := seenCount == 0

	for _, entry := range getSortedEntries(feed.Items) {
		hash := getItemHash(entry.itm)
		feedEntry := dal.FeedEntry{
			GuidHash: int64(hash),
			ItemId:   feedItemId(entry.itm, hash),
		}
		var seen bool
		if seen, err = bw.repo.HasFeedEntry(feedEntry.GuidHash); err != nil {
			return newEntries, storeErr("check feed entry", err)
		}
		if seen {
			continue
		}
		newEntries += 1
		if !firstCheck {
			bw.logger.Infof("New blog feed entry: %s", entry.itm.Link)
			ev := &ItemSaveEvent{Item: bw.toItem(entry, feedEntry.ItemId)}
			if _, err := bw.coordinator.SaveItem(ctx, ev); err != nil {
				// Not recorded: the next check submits it again
				bw.logger.Errorf("Failed to crosspost feed entry %s: %v", feedEntry.ItemId, err)
				continue
			}
		}
		if _, err = bw.repo.AddFeedEntryIfNew(&feedEntry); err != nil {
			return newEntries, storeErr("add feed entry", err)
		}
	}

	bw.metrics.FeedChecked(newEntries)
	if firstCheck && newEntries != 0 {
		bw.logger.Infof("First blog feed check: marked %d existing entries as seen", newEntries)
	}
	return newEntries, nil
}
