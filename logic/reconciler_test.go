package logic_test

import (
	"context"
	"diasposter/dal"
	"diasposter/dto"
	"diasposter/logic"
	"diasposter/test"
	"diasposter/test/mocks"
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"testing"
	"time"
)

type reconcilerHarness struct {
	repo          dal.IRepo
	mockNotifier  *mocks.MockINotifier
	mockConnector *mocks.MockIDiasporaConnector
	mockClient    *mocks.MockIDiaspora
	mockResolver  *mocks.MockIHostResolver
}

func setupReconcilerTest(t *testing.T) (*reconcilerHarness, logic.IReconciler) {

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	test.StubLogger(mockLogger)
	test.StubMetrics(mockMetrics)

	h := &reconcilerHarness{
		repo:          newTestRepo(t, ctrl),
		mockNotifier:  mocks.NewMockINotifier(ctrl),
		mockConnector: mocks.NewMockIDiasporaConnector(ctrl),
		mockClient:    mocks.NewMockIDiaspora(ctrl),
		mockResolver:  mocks.NewMockIHostResolver(ctrl),
	}
	h.mockConnector.EXPECT().Connect(testHandle).Return(h.mockClient, nil).AnyTimes()
	h.mockClient.EXPECT().LogIn(gomock.Any()).Return(nil).AnyTimes()
	h.mockClient.EXPECT().PodUrl().Return("https://" + testPod).AnyTimes()
	h.mockResolver.EXPECT().Resolve(gomock.Any(), testPod).Return("192.0.2.10").AnyTimes()

	cfg := testConfig()
	rc := logic.NewReconciler(cfg, mockLogger, h.repo, h.mockConnector, logic.NewModerator(cfg),
		h.mockNotifier, h.mockResolver, mockMetrics)
	return h, rc
}

func commentNotification(remotePostId string) dto.Notification {
	return dto.Notification{CommentOnPost: &dto.NotificationTarget{TargetId: json.Number(remotePostId)}}
}

func remoteComment(id, guid, text string) dto.RemoteComment {
	return dto.RemoteComment{
		Id:        json.Number(id),
		Guid:      guid,
		Text:      text,
		CreatedAt: time.Date(2024, 5, 2, 8, 30, 0, 0, time.UTC),
		Author: dto.RemoteAuthor{
			Guid:       "f00d",
			Name:       "Bob",
			DiasporaId: "bob@other.example",
			Avatar:     dto.Avatar{Large: "https://other.example/bob.png"},
		},
	}
}

func TestReconcileImportsOnce(t *testing.T) {
	h, rc := setupReconcilerTest(t)
	ctx := context.Background()

	require.NoError(t, h.repo.UpsertItem(publishedItem("1")))
	require.NoError(t, h.repo.AddSyncLink(&dal.SyncLink{ItemId: "1", RemotePostId: "500", PodHost: testPod}))

	notifications := []dto.Notification{
		commentNotification("500"),
		commentNotification("500"),
		commentNotification("777"),
		{Liked: &dto.NotificationTarget{TargetId: json.Number("500")}},
	}
	h.mockClient.EXPECT().GetNotifications(gomock.Any(), "comment_on_post").Return(notifications, nil).Times(2)
	h.mockClient.EXPECT().GetComments(gomock.Any(), "500").Return([]dto.RemoteComment{
		remoteComment("61", "g1", "**Great** walk <script>alert(1)</script>"),
		remoteComment("62", "g2", "Thanks!"),
	}, nil).Times(2)
	h.mockNotifier.EXPECT().CommentAdded(gomock.Any(), gomock.Any()).Times(2)

	stats, err := rc.Reconcile(ctx, testHandle)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Imported)
	assert.Equal(t, 0, stats.Failed)

	stats, err = rc.Reconcile(ctx, testHandle)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Imported)
	assert.Equal(t, 2, stats.Skipped)

	comments, err := h.repo.GetComments("1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	c := comments[0]
	assert.Contains(t, c.Content, "<strong>Great</strong>")
	assert.NotContains(t, c.Content, "<script>")
	assert.Equal(t, "Bob", c.AuthorName)
	assert.Equal(t, "bob@other.example", c.AuthorEmail)
	assert.Equal(t, "https://pod.example/people/f00d", c.AuthorUrl)
	assert.Equal(t, "192.0.2.10", c.AuthorIp)
	assert.Equal(t, dal.CommentApproved, c.Approved)

	link, err := h.repo.GetCommentLink(c.Id)
	require.NoError(t, err)
	assert.Equal(t, "61", link.RemoteCommentId)
	assert.Equal(t, "https://other.example/bob.png", link.Avatar)
}

func TestReconcileCountsFailuresAndGoesOn(t *testing.T) {
	h, rc := setupReconcilerTest(t)

	for _, id := range []string{"1", "2"} {
		require.NoError(t, h.repo.UpsertItem(publishedItem(id)))
	}
	require.NoError(t, h.repo.AddSyncLink(&dal.SyncLink{ItemId: "1", RemotePostId: "501", PodHost: testPod}))
	require.NoError(t, h.repo.AddSyncLink(&dal.SyncLink{ItemId: "2", RemotePostId: "502", PodHost: testPod}))

	h.mockClient.EXPECT().GetNotifications(gomock.Any(), gomock.Any()).
		Return([]dto.Notification{commentNotification("501"), commentNotification("502")}, nil)
	h.mockClient.EXPECT().GetComments(gomock.Any(), "501").Return(nil, errors.New("timeout"))
	h.mockClient.EXPECT().GetComments(gomock.Any(), "502").Return([]dto.RemoteComment{
		remoteComment("70", "", "no guid"),
		remoteComment("71", "g71", "fine"),
	}, nil)
	h.mockNotifier.EXPECT().CommentAdded(gomock.Any(), gomock.Any()).Times(1)

	stats, err := rc.Reconcile(context.Background(), testHandle)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)
	assert.Equal(t, 2, stats.Failed)
}

func TestReconcileLoginFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	test.StubLogger(mockLogger)
	test.StubMetrics(mockMetrics)
	mockConnector := mocks.NewMockIDiasporaConnector(ctrl)
	mockClient := mocks.NewMockIDiaspora(ctrl)
	mockConnector.EXPECT().Connect(testHandle).Return(mockClient, nil)
	mockClient.EXPECT().LogIn(gomock.Any()).Return(errors.New("wrong password"))

	cfg := testConfig()
	rc := logic.NewReconciler(cfg, mockLogger, newTestRepo(t, ctrl), mockConnector, logic.NewModerator(cfg),
		mocks.NewMockINotifier(ctrl), mocks.NewMockIHostResolver(ctrl), mockMetrics)

	_, err := rc.Reconcile(context.Background(), testHandle)
	require.Error(t, err)
	assert.True(t, logic.IsRemoteError(err))

	_, err = rc.Reconcile(context.Background(), "nobody@pod.example")
	assert.Error(t, err)
}
