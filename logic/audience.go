package logic

import (
	"diasposter/dal"
	"regexp"
	"strings"
)

var reAspectId = regexp.MustCompile(`^[0-9]+$`)

// ValidateAspectIds normalizes a requested audience.
// all_aspects wins over public, which wins over any set of numeric aspect IDs.
// Non-numeric IDs are dropped; if nothing valid remains, the result is invalid.
func ValidateAspectIds(ids []string) (dal.AudienceScope, bool) {
	var numeric dal.AudienceScope
	hasPublic := false
	for _, id := range ids {
		id = strings.TrimSpace(id)
		switch {
		case id == dal.AspectAllAspects:
			return dal.AudienceScope{dal.AspectAllAspects}, true
		case id == dal.AspectPublic:
			hasPublic = true
		case reAspectId.MatchString(id):
			numeric = append(numeric, id)
		}
	}
	if hasPublic {
		return dal.AudienceScope{dal.AspectPublic}, true
	}
	if len(numeric) == 0 {
		return nil, false
	}
	return numeric, true
}

// effectiveAudience is the scope a post is published to: the stored choice, or all aspects.
func effectiveAudience(dir *dal.CrosspostDirective) dal.AudienceScope {
	if dir == nil || len(dir.Aspects) == 0 {
		return dal.AudienceScope{dal.AspectAllAspects}
	}
	return dir.Aspects
}
