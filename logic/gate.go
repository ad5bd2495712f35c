package logic

import (
	"diasposter/dal"
	"diasposter/shared"
)

type GateDecision struct {
	Allowed bool
	Reason  SkipReason
}

// CheckCrosspostable decides if an item may be published to the remote service now.
// Rules are evaluated in order and the first failing one is reported.
// The result must not be cached: it depends on state that changes with every save.
func CheckCrosspostable(
	item *dal.Item,
	dir *dal.CrosspostDirective,
	link *dal.SyncLink,
	cfg *shared.Config,
) GateDecision {

	if inAnyCategory(item.Categories, cfg.Crosspost.ExcludeCategories) {
		return GateDecision{false, SkipExcludedCategory}
	}
	if dir != nil && dir.OptOut {
		return GateDecision{false, SkipOptOut}
	}
	// The remote service does not support editing a post once published
	if link != nil {
		return GateDecision{false, SkipAlreadyPublished}
	}
	if item.Status != dal.StatusPublished {
		return GateDecision{false, SkipNotPublished}
	}
	if item.Password != "" {
		return GateDecision{false, SkipPasswordProtected}
	}
	return GateDecision{true, SkipNone}
}

func inAnyCategory(categories, excluded []string) bool {
	for _, c := range categories {
		for _, x := range excluded {
			if c == x {
				return true
			}
		}
	}
	return false
}

// isCrosspostedType tells if items of this type are considered at all.
func isCrosspostedType(postType string, cfg *shared.Config) bool {
	if postType == "" || postType == dal.DefaultPostType {
		return true
	}
	for _, pt := range cfg.Crosspost.PostTypes {
		if pt == postType {
			return true
		}
	}
	return false
}
