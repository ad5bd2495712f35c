package logic

import (
	"bytes"
	"context"
	"diasposter/dal"
	"diasposter/dto"
	"diasposter/shared"
	"fmt"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"net"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_reconciler.go -package mocks diasposter/logic IReconciler,IHostResolver

const commentAgent = "Diasposter"

type ReconcileStats struct {
	Imported int
	Skipped  int
	Failed   int
}

// IReconciler imports comments made on the pod under crossposted items.
type IReconciler interface {
	Reconcile(ctx context.Context, handle string) (*ReconcileStats, error)
}

// IHostResolver turns a pod's host name into an address for the comment's author IP.
type IHostResolver interface {
	Resolve(ctx context.Context, host string) string
}

type hostResolver struct {
	logger shared.ILogger
}

func NewHostResolver(logger shared.ILogger) IHostResolver {
	return &hostResolver{logger}
}

func (hr *hostResolver) Resolve(ctx context.Context, host string) string {
	addrs, err := net.DefaultResolver.LookupHost(ctx, host)
	if err != nil || len(addrs) == 0 {
		hr.logger.Warnf("Failed to resolve %s: %v", host, err)
		return host
	}
	return addrs[0]
}

type reconciler struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	connector IDiasporaConnector
	moderator IModerator
	notifier  INotifier
	resolver  IHostResolver
	metrics   IMetrics
	md        goldmark.Markdown
	ugc       *bluemonday.Policy
}

func NewReconciler(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	connector IDiasporaConnector,
	moderator IModerator,
	notifier INotifier,
	resolver IHostResolver,
	metrics IMetrics,
) IReconciler {
	return &reconciler{
		cfg:       cfg,
		logger:    logger,
		repo:      repo,
		connector: connector,
		moderator: moderator,
		notifier:  notifier,
		resolver:  resolver,
		metrics:   metrics,
		md:        goldmark.New(goldmark.WithExtensions(extension.GFM)),
		ugc:       bluemonday.UGCPolicy(),
	}
}

// Reconcile walks the account's comment notifications and imports comments not seen before.
// A failure with one notification or comment is counted and the batch goes on;
// only failing to log in or to list notifications is returned.
func (rc *reconciler) Reconcile(ctx context.Context, handle string) (*ReconcileStats, error) {

	if rc.cfg.GetAccount(handle) == nil {
		return nil, fmt.Errorf("account not configured: %s", handle)
	}

	client, err := rc.connector.Connect(handle)
	if err != nil {
		return nil, remoteErr("connect", err)
	}
	if err = client.LogIn(ctx); err != nil {
		return nil, remoteErr("login", err)
	}

	var notifications []dto.Notification
	if notifications, err = client.GetNotifications(ctx, kindCommentOn); err != nil {
		return nil, remoteErr("get notifications", err)
	}

	stats := &ReconcileStats{}
	podHost, _ := shared.GetHostName(client.PodUrl())
	authorIp := rc.resolver.Resolve(ctx, podHost)
	donePosts := map[string]bool{}

	for _, n := range notifications {
		if n.CommentOnPost == nil {
			continue
		}
		remotePostId := n.CommentOnPost.TargetId.String()
		if remotePostId == "" || donePosts[remotePostId] {
			continue
		}
		donePosts[remotePostId] = true
		if err = rc.reconcilePost(ctx, client, remotePostId, authorIp, stats); err != nil {
			stats.Failed += 1
			rc.metrics.ReconcileFailed()
			rc.logger.Errorf("Failed to sync comments of remote post %s: %v", remotePostId, err)
		}
	}

	rc.logger.Infof("Synced comments for %s: %d imported, %d already known, %d failed",
		handle, stats.Imported, stats.Skipped, stats.Failed)
	return stats, nil
}

func (rc *reconciler) reconcilePost(
	ctx context.Context,
	client IDiaspora,
	remotePostId, authorIp string,
	stats *ReconcileStats,
) error {

	itemId, err := rc.repo.GetItemIdByRemotePostId(remotePostId)
	if err != nil {
		return storeErr("find item by remote post", err)
	}
	// Not created by us, or the item is gone
	if itemId == "" {
		return nil
	}
	var item *dal.Item
	if item, err = rc.repo.GetItem(itemId); err != nil {
		return storeErr("get item", err)
	}
	if item == nil {
		return nil
	}

	var comments []dto.RemoteComment
	if comments, err = client.GetComments(ctx, remotePostId); err != nil {
		return remoteErr("get comments", err)
	}

	for i := range comments {
		isNew, err := rc.importComment(item, &comments[i], client.PodUrl(), authorIp)
		if err != nil {
			stats.Failed += 1
			rc.metrics.ReconcileFailed()
			rc.logger.Errorf("Failed to import remote comment %s on item %s: %v", comments[i].Guid, itemId, err)
			continue
		}
		if isNew {
			stats.Imported += 1
		} else {
			stats.Skipped += 1
		}
	}
	return nil
}

func (rc *reconciler) importComment(item *dal.Item, rcm *dto.RemoteComment, podUrl, authorIp string) (bool, error) {

	if rcm.Guid == "" {
		return false, fmt.Errorf("remote comment %s has no GUID", rcm.Id.String())
	}
	exists, err := rc.repo.HasCommentLink(item.Id, rcm.Guid)
	if err != nil {
		return false, storeErr("check comment link", err)
	}
	if exists {
		return false, nil
	}

	content, err := rc.renderComment(rcm.Text)
	if err != nil {
		return false, err
	}
	date := rcm.CreatedAt
	if date.IsZero() {
		date = time.Now().UTC()
	}

	comment := dal.Comment{
		ItemId:      item.Id,
		Content:     content,
		AuthorName:  rcm.Author.Name,
		AuthorEmail: rcm.Author.DiasporaId,
		AuthorUrl:   shared.ProfileUrl(podUrl, rcm.Author.Guid),
		AuthorIp:    authorIp,
		Agent:       commentAgent,
		Date:        date,
	}
	comment.Approved = rc.moderator.Check(&comment)

	link := dal.CommentLink{
		RemoteGuid:      rcm.Guid,
		RemoteCommentId: rcm.Id.String(),
		Avatar:          rcm.Author.Avatar.Large,
	}
	var isNew bool
	if isNew, err = rc.repo.AddImportedComment(&comment, &link); err != nil {
		return false, storeErr("add comment", err)
	}
	if !isNew {
		return false, nil
	}

	rc.metrics.CommentImported(string(comment.Approved))
	rc.notifier.CommentAdded(item, &comment)
	return true, nil
}

// renderComment turns the pod's Markdown into sanitized HTML.
func (rc *reconciler) renderComment(text string) (string, error) {
	var buf bytes.Buffer
	if err := rc.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return rc.ugc.Sanitize(buf.String()), nil
}
