package logic

import (
	"diasposter/dal"
	"diasposter/shared"
	"regexp"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_moderator.go -package mocks diasposter/logic IModerator

// IModerator applies the blog's comment rules to a comment before it is stored.
type IModerator interface {
	Check(comment *dal.Comment) dal.CommentStatus
}

var reHref = regexp.MustCompile(`(?i)<a [^>]*href`)

type moderator struct {
	cfg *shared.Config
}

func NewModerator(cfg *shared.Config) IModerator {
	return &moderator{cfg}
}

func (m *moderator) Check(comment *dal.Comment) dal.CommentStatus {
	fields := []string{
		comment.AuthorName,
		comment.AuthorEmail,
		comment.AuthorUrl,
		comment.Content,
		comment.AuthorIp,
		comment.Agent,
	}
	if containsAnyKey(fields, m.cfg.Moderation.DisallowedKeys) {
		return dal.CommentSpam
	}
	if m.cfg.Moderation.RequireApproval {
		return dal.CommentPending
	}
	if len(reHref.FindAllStringIndex(comment.Content, -1)) >= m.cfg.Moderation.MaxLinks {
		return dal.CommentPending
	}
	if containsAnyKey(fields, m.cfg.Moderation.ModerationKeys) {
		return dal.CommentPending
	}
	return dal.CommentApproved
}

// containsAnyKey does a case-insensitive substring match; blank keys are ignored.
func containsAnyKey(fields, keys []string) bool {
	for _, key := range keys {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), key) {
				return true
			}
		}
	}
	return false
}
