package shared

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestTrimWords(t *testing.T) {
	assert.Equal(t, "…", TrimWords("1 2 3", 0))
	assert.Equal(t, "1…", TrimWords("1 2 3", 1))
	assert.Equal(t, "1 2…", TrimWords("1  2\n3", 2))
	assert.Equal(t, "1 2 3", TrimWords("1 2 3", 3))
	assert.Equal(t, "1 2 3", TrimWords(" 1 2 3 ", 5))
}

func TestTrimWordsNoPartialWord(t *testing.T) {
	var words []string
	for i := 0; i < 60; i++ {
		words = append(words, "word"+strings.Repeat("x", i%4))
	}
	res := TrimWords(strings.Join(words, " "), 55)
	assert.True(t, strings.HasSuffix(res, "…"))
	kept := strings.Fields(strings.TrimSuffix(res, "…"))
	assert.Equal(t, 55, len(kept))
	assert.Equal(t, words[:55], kept)
}

func TestHandleParts(t *testing.T) {
	assert.Equal(t, "pod.example", PodHostFromHandle("alice@pod.example"))
	assert.Equal(t, "alice", UserFromHandle("alice@pod.example"))
	assert.Equal(t, "https://pod.example", PodUrlFromHandle("alice@pod.example"))
	assert.Equal(t, "http://pod.example/posts/42", SyndicationUrl("pod.example", "42"))
	assert.Equal(t, "https://pod.example/people/abc", ProfileUrl("https://pod.example/", "abc"))
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "open-source", NormalizeTag(" open source "))
	assert.Equal(t, "golang", NormalizeTag("#golang"))
	assert.Equal(t, "", NormalizeTag(" # "))
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{Debug: true}
	cfg.ApplyDefaults()
	assert.Equal(t, defaultSyncSchedule, cfg.SyncSchedule)
	assert.Equal(t, defaultExcerptWords, cfg.Crosspost.ExcerptWords)
	assert.Equal(t, defaultCacheExpireSec, cfg.Cache.ExpireInSec)
	assert.Equal(t, "Debug", cfg.LogLevel)
}
