package logic_test

import (
	"diasposter/dal"
	"diasposter/shared"
	"diasposter/test"
	"diasposter/test/mocks"
	"go.uber.org/mock/gomock"
	"path/filepath"
	"testing"
)

const (
	testHandle = "alice@pod.example"
	testPod    = "pod.example"
)

func testConfig() *shared.Config {
	cfg := &shared.Config{
		Accounts: []shared.Account{{Handle: testHandle, SyncComments: true}},
		Blog:     shared.Blog{Url: "https://blog.example", Name: "Trail Notes"},
	}
	cfg.Secrets.Passwords = map[string]string{testHandle: "secret"}
	cfg.ApplyDefaults()
	return cfg
}

func newTestRepo(t *testing.T, ctrl *gomock.Controller) dal.IRepo {
	mockLogger := mocks.NewMockILogger(ctrl)
	test.StubLogger(mockLogger)
	cfg := &shared.Config{DbFile: filepath.Join(t.TempDir(), "test.db")}
	repo := dal.NewRepo(cfg, mockLogger)
	repo.InitUpdateDb()
	return repo
}

func publishedItem(id string) *dal.Item {
	return &dal.Item{
		Id:        id,
		Title:     "Walking the Jinguashi trail",
		Body:      "<p>It was a fine day.</p>",
		Status:    dal.StatusPublished,
		Permalink: "https://blog.example/p/" + id,
	}
}
