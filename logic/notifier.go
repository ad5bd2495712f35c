package logic

import (
	"diasposter/dal"
	"diasposter/shared"
	"diasposter/texts"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_notifier.go -package mocks diasposter/logic INotifier

// INotifier queues one-shot notices for the operator and raises new-comment notifications.
// Notices are drained by the host through the hook API.
type INotifier interface {
	CommentAdded(item *dal.Item, comment *dal.Comment)
	Notice(level dal.NoticeLevel, text string)
	PopNotices() ([]*dal.Notice, error)
}

type notifier struct {
	cfg    *shared.Config
	logger shared.ILogger
	repo   dal.IRepo
	txt    texts.ITexts
}

func NewNotifier(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo, txt texts.ITexts) INotifier {
	return &notifier{cfg, logger, repo, txt}
}

func (n *notifier) Notice(level dal.NoticeLevel, text string) {
	if level == dal.NoticeError {
		n.logger.Warnf("Notice: %s", text)
	} else {
		n.logger.Infof("Notice: %s", text)
	}
	if err := n.repo.AddNotice(&dal.Notice{Level: level, Text: text}); err != nil {
		n.logger.Errorf("Failed to store notice: %v", err)
	}
}

func (n *notifier) PopNotices() ([]*dal.Notice, error) {
	res, err := n.repo.PopNotices()
	if err != nil {
		return nil, storeErr("pop notices", err)
	}
	return res, nil
}

// CommentAdded mirrors what the host does for a comment arriving the usual way:
// nothing for spam, the moderator for pending, the author for approved if enabled.
func (n *notifier) CommentAdded(item *dal.Item, comment *dal.Comment) {
	vals := map[string]string{
		"title":        item.Title,
		"permalink":    item.Permalink,
		"author":       comment.AuthorName,
		"email":        comment.AuthorEmail,
		"url":          comment.AuthorUrl,
		"ip":           comment.AuthorIp,
		"content":      comment.Content,
		"author_email": item.AuthorEmail,
	}
	switch comment.Approved {
	case dal.CommentSpam:
		return
	case dal.CommentPending:
		n.Notice(dal.NoticeInfo, n.txt.WithVals(texts.NotifyModerator, vals))
	case dal.CommentApproved:
		if n.cfg.Blog.CommentsNotify {
			n.Notice(dal.NoticeInfo, n.txt.WithVals(texts.NotifyAuthor, vals))
		}
	}
}
