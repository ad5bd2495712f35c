package logic

import (
	"context"
	"diasposter/dal"
	"diasposter/shared"
	"diasposter/texts"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_deletion.go -package mocks diasposter/logic IDeletionPropagator

// IDeletionPropagator mirrors local deletions to the pod. The local deletion always stands;
// remote failures become notices and are not returned.
type IDeletionPropagator interface {
	ItemDeleted(ctx context.Context, itemId string)
	CommentDeleted(ctx context.Context, commentId int64)
}

type deletionPropagator struct {
	cfg       *shared.Config
	logger    shared.ILogger
	repo      dal.IRepo
	connector IDiasporaConnector
	notifier  INotifier
	txt       texts.ITexts
	metrics   IMetrics
}

func NewDeletionPropagator(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	connector IDiasporaConnector,
	notifier INotifier,
	txt texts.ITexts,
	metrics IMetrics,
) IDeletionPropagator {
	return &deletionPropagator{cfg, logger, repo, connector, notifier, txt, metrics}
}

// accountForHost picks the configured account on the given pod, or the posting account.
func (dp *deletionPropagator) accountForHost(podHost string) *shared.Account {
	for i := range dp.cfg.Accounts {
		if shared.PodHostFromHandle(dp.cfg.Accounts[i].Handle) == podHost {
			return &dp.cfg.Accounts[i]
		}
	}
	return dp.cfg.PostingAccount()
}

func (dp *deletionPropagator) failed(kind, id string, err error) {
	dp.metrics.RemoteDeleted(kind, false)
	dp.logger.Errorf("Failed to delete %s %s on pod: %v", kind, id, err)
	dp.notifier.Notice(dal.NoticeError, dp.txt.WithVals(texts.NoticeDeleteFailed, map[string]string{
		"kind":  kind,
		"id":    id,
		"error": err.Error(),
	}))
}

func (dp *deletionPropagator) remoteDelete(
	ctx context.Context,
	podHost string,
	del func(ctx context.Context, client IDiaspora) error,
) error {

	acct := dp.accountForHost(podHost)
	if acct == nil {
		return remoteErr("connect", errNoAccount)
	}
	ctx, cancel := context.WithTimeout(ctx, time.Duration(dp.cfg.RemoteTimeoutSec)*time.Second)
	defer cancel()

	client, err := dp.connector.Connect(acct.Handle)
	if err != nil {
		return remoteErr("connect", err)
	}
	if err = client.LogIn(ctx); err != nil {
		return remoteErr("login", err)
	}
	return del(ctx, client)
}

// ItemDeleted removes the item locally, then its remote post if it was crossposted.
// The sync link goes only once the remote post is gone.
func (dp *deletionPropagator) ItemDeleted(ctx context.Context, itemId string) {

	link, err := dp.repo.GetSyncLink(itemId)
	if err != nil {
		dp.logger.Errorf("Failed to get sync link of deleted item %s: %v", itemId, err)
	}
	if err = dp.repo.DeleteItem(itemId); err != nil {
		dp.logger.Errorf("Failed to delete item %s from store: %v", itemId, err)
	}
	if link == nil {
		return
	}

	err = dp.remoteDelete(ctx, link.PodHost, func(ctx context.Context, client IDiaspora) error {
		return remoteErr("delete post", client.DeletePost(ctx, link.RemotePostId))
	})
	if err != nil {
		dp.failed("post", link.RemotePostId, err)
		return
	}
	dp.metrics.RemoteDeleted("post", true)
	dp.logger.Infof("Deleted remote post %s of item %s", link.RemotePostId, itemId)

	if err = dp.repo.DeleteSyncLink(itemId); err != nil {
		dp.logger.Errorf("Failed to delete sync link of item %s: %v", itemId, err)
	}
}

// CommentDeleted removes the comment locally, then its remote original if it was imported.
func (dp *deletionPropagator) CommentDeleted(ctx context.Context, commentId int64) {

	commentLink, err := dp.repo.GetCommentLink(commentId)
	if err != nil {
		dp.logger.Errorf("Failed to get link of deleted comment %d: %v", commentId, err)
	}
	if err = dp.repo.DeleteComment(commentId); err != nil {
		dp.logger.Errorf("Failed to delete comment %d from store: %v", commentId, err)
	}
	if commentLink == nil {
		return
	}

	podHost := ""
	if link, err := dp.repo.GetSyncLink(commentLink.ItemId); err == nil && link != nil {
		podHost = link.PodHost
	}

	err = dp.remoteDelete(ctx, podHost, func(ctx context.Context, client IDiaspora) error {
		return remoteErr("delete comment", client.DeleteComment(ctx, commentLink.RemoteCommentId))
	})
	if err != nil {
		dp.failed("comment", commentLink.RemoteCommentId, err)
		return
	}
	dp.metrics.RemoteDeleted("comment", true)
	dp.logger.Infof("Deleted remote comment %s of local comment %d", commentLink.RemoteCommentId, commentId)
}
