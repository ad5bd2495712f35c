package logic

import (
	"context"
	"diasposter/dal"
	"diasposter/shared"
	"diasposter/texts"
	"github.com/PuerkitoBio/goquery"
	"strconv"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_sync_coordinator.go -package mocks diasposter/logic ISyncCoordinator

// ItemSaveEvent is one save of an item in the host, with the crosspost choices made along with it.
type ItemSaveEvent struct {
	Item      *dal.Item
	Autosave  bool
	Directive *DirectiveUpdate
}

// DirectiveUpdate changes the stored directive; nil members leave the stored value as it is.
type DirectiveUpdate struct {
	Crosspost  *bool
	UseExcerpt *bool
	UseGeo     *bool
	AspectIds  []string
	Services   *[]dal.BroadcastService
}

type SyncResult struct {
	ItemId string
	Skip   SkipReason
	Link   *dal.SyncLink
}

func (res *SyncResult) Synced() bool {
	return res.Link != nil
}

type ISyncCoordinator interface {
	SaveItem(ctx context.Context, ev *ItemSaveEvent) (*SyncResult, error)
	SyncIfEligible(ctx context.Context, itemId string) (*SyncResult, error)
}

type syncCoordinator struct {
	cfg         *shared.Config
	logger      shared.ILogger
	repo        dal.IRepo
	connector   IDiasporaConnector
	transformer ITransformer
	notifier    INotifier
	txt         texts.ITexts
	metrics     IMetrics
}

func NewSyncCoordinator(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	connector IDiasporaConnector,
	transformer ITransformer,
	notifier INotifier,
	txt texts.ITexts,
	metrics IMetrics,
) ISyncCoordinator {
	return &syncCoordinator{
		cfg:         cfg,
		logger:      logger,
		repo:        repo,
		connector:   connector,
		transformer: transformer,
		notifier:    notifier,
		txt:         txt,
		metrics:     metrics,
	}
}

func (sc *syncCoordinator) skip(itemId string, reason SkipReason) *SyncResult {
	sc.logger.Debugf("Not crossposting item %s: %s", itemId, reason)
	sc.metrics.Crossposted(outcomeSkipped)
	return &SyncResult{ItemId: itemId, Skip: reason}
}

// SaveItem stores the saved item and its directive, then crossposts it if it is eligible.
func (sc *syncCoordinator) SaveItem(ctx context.Context, ev *ItemSaveEvent) (*SyncResult, error) {

	item := ev.Item
	if ev.Autosave {
		return sc.skip(item.Id, SkipAutosave), nil
	}

	if err := sc.repo.UpsertItem(item); err != nil {
		return nil, storeErr("save item", err)
	}
	if !isCrosspostedType(item.PostType, sc.cfg) {
		return sc.skip(item.Id, SkipPostType), nil
	}
	if ev.Directive != nil {
		if err := sc.applyDirective(item.Id, ev.Directive); err != nil {
			return nil, err
		}
	}
	return sc.SyncIfEligible(ctx, item.Id)
}

func (sc *syncCoordinator) applyDirective(itemId string, upd *DirectiveUpdate) error {

	// Directive is frozen once the item is published
	link, err := sc.repo.GetSyncLink(itemId)
	if err != nil {
		return storeErr("get sync link", err)
	}
	if link != nil {
		return nil
	}

	dir, err := sc.repo.GetDirective(itemId)
	if err != nil {
		return storeErr("get directive", err)
	}
	if upd.Crosspost != nil {
		dir.OptOut = !*upd.Crosspost
	}
	if upd.UseExcerpt != nil {
		dir.UseExcerpt = upd.UseExcerpt
	}
	if upd.UseGeo != nil {
		dir.UseGeo = upd.UseGeo
	}
	if upd.AspectIds != nil {
		if scope, ok := ValidateAspectIds(upd.AspectIds); ok {
			dir.Aspects = scope
		} else {
			sc.logger.Warnf("Ignoring invalid aspect selection for item %s: %v", itemId, upd.AspectIds)
			dir.Aspects = nil
		}
	}
	if upd.Services != nil {
		dir.Services = *upd.Services
		dir.ServicesSet = true
	}
	if err = sc.repo.SaveDirective(itemId, dir); err != nil {
		return storeErr("save directive", err)
	}
	return nil
}

// SyncIfEligible publishes the item to the posting account unless the gate denies it.
// Remote failures leave no trace in the store, so the next save retries.
func (sc *syncCoordinator) SyncIfEligible(ctx context.Context, itemId string) (*SyncResult, error) {

	item, err := sc.repo.GetItem(itemId)
	if err != nil {
		return nil, storeErr("get item", err)
	}
	if item == nil {
		return sc.skip(itemId, SkipUnknownItem), nil
	}
	if !isCrosspostedType(item.PostType, sc.cfg) {
		return sc.skip(itemId, SkipPostType), nil
	}

	var dir *dal.CrosspostDirective
	if dir, err = sc.repo.GetDirective(itemId); err != nil {
		return nil, storeErr("get directive", err)
	}
	var link *dal.SyncLink
	if link, err = sc.repo.GetSyncLink(itemId); err != nil {
		return nil, storeErr("get sync link", err)
	}

	decision := CheckCrosspostable(item, dir, link, sc.cfg)
	if !decision.Allowed {
		return sc.skip(itemId, decision.Reason), nil
	}
	if !sc.cfg.IsConnected() {
		return sc.skip(itemId, SkipNotConnected), nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(sc.cfg.RemoteTimeoutSec)*time.Second)
	defer cancel()

	remotePostId, client, err := sc.publish(ctx, item, dir)
	if err != nil {
		sc.logger.Errorf("Failed to crosspost item %s: %v", itemId, err)
		if IsTimeout(err) {
			sc.metrics.Crossposted(outcomeTimeout)
			sc.notifier.Notice(dal.NoticeError, sc.txt.WithVals(texts.NoticeSyncTimeout, map[string]string{
				"title":   item.Title,
				"seconds": strconv.Itoa(sc.cfg.RemoteTimeoutSec),
			}))
		} else {
			sc.metrics.Crossposted(outcomeFailed)
			sc.notifier.Notice(dal.NoticeError, sc.txt.WithVals(texts.NoticeSyncFailed, map[string]string{
				"title": item.Title,
				"error": err.Error(),
			}))
		}
		return nil, err
	}

	newLink := &dal.SyncLink{
		ItemId:       itemId,
		RemotePostId: remotePostId,
		PodHost:      shared.PodHostFromHandle(client.DiasporaId()),
	}
	if err = sc.repo.AddSyncLink(newLink); err != nil {
		sc.logger.Errorf("Item %s was published as remote post %s but the link could not be stored: %v",
			itemId, remotePostId, err)
		return nil, storeErr("add sync link", err)
	}

	dir.ClearTransient()
	if err = sc.repo.SaveDirective(itemId, dir); err != nil {
		sc.logger.Warnf("Failed to clear per-save crosspost options of item %s: %v", itemId, err)
	}

	sc.metrics.Crossposted(outcomeSynced)
	syndicationUrl := shared.SyndicationUrl(newLink.PodHost, newLink.RemotePostId)
	sc.logger.Infof("Crossposted item %s: %s", itemId, syndicationUrl)
	sc.notifier.Notice(dal.NoticeInfo, sc.txt.WithVals(texts.NoticeCrossposted, map[string]string{
		"url": syndicationUrl,
	}))

	return &SyncResult{ItemId: itemId, Link: newLink}, nil
}

func (sc *syncCoordinator) publish(
	ctx context.Context,
	item *dal.Item,
	dir *dal.CrosspostDirective,
) (string, IDiaspora, error) {

	client, err := sc.connector.Connect(sc.cfg.PostingAccount().Handle)
	if err != nil {
		return "", nil, remoteErr("connect", err)
	}
	if err = client.LogIn(ctx); err != nil {
		return "", nil, remoteErr("login", err)
	}

	extras := sc.collectExtras(ctx, client, item, dir)

	var body string
	if body, err = sc.transformer.Transform(item, dir); err != nil {
		return "", nil, err
	}

	var remotePostId string
	remotePostId, err = client.PostStatusMessage(ctx, body, effectiveAudience(dir), extras)
	if err != nil {
		return "", nil, remoteErr("post status message", err)
	}
	return remotePostId, client, nil
}

func (sc *syncCoordinator) useGeo(dir *dal.CrosspostDirective) bool {
	if dir.UseGeo != nil {
		return *dir.UseGeo
	}
	return sc.cfg.Crosspost.UseGeo
}

func (sc *syncCoordinator) services(dir *dal.CrosspostDirective) []string {
	var res []string
	if dir.ServicesSet {
		for _, srv := range dir.Services {
			res = append(res, string(srv))
		}
		return res
	}
	auto := sc.cfg.Crosspost.AutoServices
	flags := map[dal.BroadcastService]bool{
		dal.ServiceTwitter:   auto.Twitter,
		dal.ServiceTumblr:    auto.Tumblr,
		dal.ServiceWordPress: auto.WordPress,
		dal.ServiceFacebook:  auto.Facebook,
	}
	for _, srv := range dal.AllBroadcastServices {
		if flags[srv] {
			res = append(res, string(srv))
		}
	}
	return res
}

func (sc *syncCoordinator) collectExtras(
	ctx context.Context,
	client IDiaspora,
	item *dal.Item,
	dir *dal.CrosspostDirective,
) *PostExtras {

	extras := PostExtras{}

	if sc.useGeo(dir) && item.Geo != nil && item.Geo.Public {
		extras.LocationAddress = item.Geo.Address
		extras.LocationCoords = strconv.FormatFloat(item.Geo.Latitude, 'f', -1, 64) + "," +
			strconv.FormatFloat(item.Geo.Longitude, 'f', -1, 64)
	}

	extras.Services = sc.services(dir)

	// Featured image always goes first
	var photoSrcs []string
	if item.FeaturedImage != "" {
		photoSrcs = append(photoSrcs, item.FeaturedImage)
	}
	if item.Format == dal.FormatImage || item.Format == dal.FormatGallery {
		photoSrcs = append(photoSrcs, getImgSrcs(item.Body)...)
	}
	for _, src := range photoSrcs {
		photoId, err := client.PostPhoto(ctx, src)
		if err != nil {
			sc.logger.Warnf("Leaving out photo %s of item %s: %v", src, item.Id, err)
			continue
		}
		extras.PhotoIds = append(extras.PhotoIds, photoId)
	}

	return &extras
}

func getImgSrcs(htm string) []string {
	var res []string
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htm))
	if err != nil {
		return res
	}
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && src != "" {
			res = append(res, src)
		}
	})
	return res
}
