package dal_test

import (
	"diasposter/dal"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParsePostStatus(t *testing.T) {
	assert.Equal(t, dal.StatusPublished, dal.ParsePostStatus("publish"))
	assert.Equal(t, dal.StatusPublished, dal.ParsePostStatus("published"))
	assert.Equal(t, dal.StatusDraft, dal.ParsePostStatus("draft"))
	assert.Equal(t, dal.PostStatus("future"), dal.ParsePostStatus("future"))
}

func TestParsePostFormat(t *testing.T) {
	assert.Equal(t, dal.FormatLink, dal.ParsePostFormat("link"))
	assert.Equal(t, dal.FormatStandard, dal.ParsePostFormat(""))
	assert.Equal(t, dal.FormatStandard, dal.ParsePostFormat("chat"))
}
