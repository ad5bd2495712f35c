package logic_test

import (
	"diasposter/dal"
	"diasposter/logic"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestGatePrecedence(t *testing.T) {
	cfg := testConfig()
	cfg.Crosspost.ExcludeCategories = []string{"private"}

	item := publishedItem("1")
	item.Categories = []string{"travel", "private"}
	item.Status = "draft"
	item.Password = "pw"
	optOut := &dal.CrosspostDirective{OptOut: true}
	link := &dal.SyncLink{ItemId: "1", RemotePostId: "5", PodHost: testPod}

	dec := logic.CheckCrosspostable(item, optOut, link, cfg)
	assert.False(t, dec.Allowed)
	assert.Equal(t, logic.SkipExcludedCategory, dec.Reason)

	item.Categories = []string{"travel"}
	dec = logic.CheckCrosspostable(item, optOut, link, cfg)
	assert.Equal(t, logic.SkipOptOut, dec.Reason)

	dec = logic.CheckCrosspostable(item, &dal.CrosspostDirective{}, link, cfg)
	assert.Equal(t, logic.SkipAlreadyPublished, dec.Reason)

	dec = logic.CheckCrosspostable(item, nil, nil, cfg)
	assert.Equal(t, logic.SkipNotPublished, dec.Reason)

	item.Status = dal.StatusPublished
	dec = logic.CheckCrosspostable(item, nil, nil, cfg)
	assert.Equal(t, logic.SkipPasswordProtected, dec.Reason)

	item.Password = ""
	dec = logic.CheckCrosspostable(item, nil, nil, cfg)
	assert.True(t, dec.Allowed)
	assert.Equal(t, logic.SkipNone, dec.Reason)
}

func TestValidateAspectIds(t *testing.T) {
	scope, ok := logic.ValidateAspectIds([]string{"3", "public", "all_aspects"})
	assert.True(t, ok)
	assert.Equal(t, dal.AudienceScope{dal.AspectAllAspects}, scope)

	scope, ok = logic.ValidateAspectIds([]string{"3", "public"})
	assert.True(t, ok)
	assert.True(t, scope.IsPublic())

	scope, ok = logic.ValidateAspectIds([]string{"3", "x7", " 12 "})
	assert.True(t, ok)
	assert.Equal(t, dal.AudienceScope{"3", "12"}, scope)

	_, ok = logic.ValidateAspectIds([]string{"friends", ""})
	assert.False(t, ok)
	_, ok = logic.ValidateAspectIds(nil)
	assert.False(t, ok)
}
