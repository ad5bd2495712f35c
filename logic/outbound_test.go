package logic_test

import (
	"context"
	"diasposter/dal"
	"diasposter/logic"
	"diasposter/shared"
	"diasposter/test"
	"diasposter/test/mocks"
	"diasposter/texts"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"testing"
)

type coordinatorHarness struct {
	cfg           *shared.Config
	repo          dal.IRepo
	mockLogger    *mocks.MockILogger
	mockTexts     *mocks.MockITexts
	mockMetrics   *mocks.MockIMetrics
	mockNotifier  *mocks.MockINotifier
	mockConnector *mocks.MockIDiasporaConnector
	mockClient    *mocks.MockIDiaspora
}

func setupCoordinatorTest(t *testing.T) (*coordinatorHarness, logic.ISyncCoordinator) {

	ctrl := gomock.NewController(t)

	h := &coordinatorHarness{
		cfg:           testConfig(),
		repo:          newTestRepo(t, ctrl),
		mockLogger:    mocks.NewMockILogger(ctrl),
		mockTexts:     mocks.NewMockITexts(ctrl),
		mockMetrics:   mocks.NewMockIMetrics(ctrl),
		mockNotifier:  mocks.NewMockINotifier(ctrl),
		mockConnector: mocks.NewMockIDiasporaConnector(ctrl),
		mockClient:    mocks.NewMockIDiaspora(ctrl),
	}
	test.StubLogger(h.mockLogger)
	test.StubTexts(h.mockTexts)
	test.StubMetrics(h.mockMetrics)

	h.mockConnector.EXPECT().Connect(testHandle).Return(h.mockClient, nil).AnyTimes()
	h.mockClient.EXPECT().LogIn(gomock.Any()).Return(nil).AnyTimes()
	h.mockClient.EXPECT().DiasporaId().Return(testHandle).AnyTimes()

	transformer := logic.NewTransformer(h.cfg, logic.NewRenderer())
	sc := logic.NewSyncCoordinator(h.cfg, h.mockLogger, h.repo, h.mockConnector, transformer,
		h.mockNotifier, h.mockTexts, h.mockMetrics)
	return h, sc
}

func TestSaveItemPublishesOnce(t *testing.T) {
	h, sc := setupCoordinatorTest(t)
	ctx := context.Background()

	h.mockClient.EXPECT().
		PostStatusMessage(gomock.Any(), gomock.Any(), dal.AudienceScope{dal.AspectAllAspects}, gomock.Any()).
		Return("1234", nil).
		Times(1)
	h.mockNotifier.EXPECT().Notice(dal.NoticeInfo, gomock.Cond(test.StrStartsWith(texts.NoticeCrossposted))).Times(1)

	res, err := sc.SaveItem(ctx, &logic.ItemSaveEvent{Item: publishedItem("1")})
	require.NoError(t, err)
	assert.True(t, res.Synced())
	assert.Equal(t, "1234", res.Link.RemotePostId)
	assert.Equal(t, testPod, res.Link.PodHost)

	// Second save of a published item changes nothing remotely
	item := publishedItem("1")
	item.Title = "Edited"
	res, err = sc.SaveItem(ctx, &logic.ItemSaveEvent{Item: item})
	require.NoError(t, err)
	assert.False(t, res.Synced())
	assert.Equal(t, logic.SkipAlreadyPublished, res.Skip)

	link, err := h.repo.GetSyncLink("1")
	require.NoError(t, err)
	assert.Equal(t, "1234", link.RemotePostId)
}

func TestRemoteFailureLeavesNoLink(t *testing.T) {
	h, sc := setupCoordinatorTest(t)
	ctx := context.Background()

	gomock.InOrder(
		h.mockClient.EXPECT().PostStatusMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("pod said no")),
		h.mockClient.EXPECT().PostStatusMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("99", nil),
	)
	h.mockNotifier.EXPECT().Notice(dal.NoticeError, gomock.Cond(test.StrStartsWith(texts.NoticeSyncFailed))).Times(1)
	h.mockNotifier.EXPECT().Notice(dal.NoticeInfo, gomock.Any()).Times(1)

	res, err := sc.SaveItem(ctx, &logic.ItemSaveEvent{Item: publishedItem("2")})
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, logic.IsRemoteError(err))

	link, err := h.repo.GetSyncLink("2")
	require.NoError(t, err)
	assert.Nil(t, link)

	// The next trigger retries
	res, err = sc.SyncIfEligible(ctx, "2")
	require.NoError(t, err)
	assert.True(t, res.Synced())
}

func TestTimeoutLeavesNoLink(t *testing.T) {
	h, sc := setupCoordinatorTest(t)
	h.cfg.RemoteTimeoutSec = 1
	ctx := context.Background()

	gomock.InOrder(
		h.mockClient.EXPECT().PostStatusMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ dal.AudienceScope, _ *logic.PostExtras) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			}),
		h.mockClient.EXPECT().PostStatusMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("77", nil),
	)
	h.mockNotifier.EXPECT().Notice(dal.NoticeError, gomock.Cond(test.StrStartsWith(texts.NoticeSyncTimeout))).Times(1)
	h.mockNotifier.EXPECT().Notice(dal.NoticeInfo, gomock.Any()).Times(1)

	res, err := sc.SaveItem(ctx, &logic.ItemSaveEvent{Item: publishedItem("t")})
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, logic.IsRemoteError(err))
	assert.True(t, logic.IsTimeout(err))

	link, err := h.repo.GetSyncLink("t")
	require.NoError(t, err)
	assert.Nil(t, link)

	res, err = sc.SyncIfEligible(ctx, "t")
	require.NoError(t, err)
	assert.True(t, res.Synced())
	assert.Equal(t, "77", res.Link.RemotePostId)
}

func TestSaveItemSkips(t *testing.T) {
	h, sc := setupCoordinatorTest(t)
	ctx := context.Background()
	h.cfg.Crosspost.ExcludeCategories = []string{"private"}

	res, err := sc.SaveItem(ctx, &logic.ItemSaveEvent{Item: publishedItem("a"), Autosave: true})
	require.NoError(t, err)
	assert.Equal(t, logic.SkipAutosave, res.Skip)
	stored, _ := h.repo.GetItem("a")
	assert.Nil(t, stored)

	page := publishedItem("b")
	page.PostType = "page"
	res, err = sc.SaveItem(ctx, &logic.ItemSaveEvent{Item: page})
	require.NoError(t, err)
	assert.Equal(t, logic.SkipPostType, res.Skip)

	draft := publishedItem("c")
	draft.Status = dal.StatusDraft
	res, err = sc.SaveItem(ctx, &logic.ItemSaveEvent{Item: draft})
	require.NoError(t, err)
	assert.Equal(t, logic.SkipNotPublished, res.Skip)

	no := false
	res, err = sc.SaveItem(ctx, &logic.ItemSaveEvent{
		Item:      publishedItem("d"),
		Directive: &logic.DirectiveUpdate{Crosspost: &no},
	})
	require.NoError(t, err)
	assert.Equal(t, logic.SkipOptOut, res.Skip)

	private := publishedItem("e")
	private.Categories = []string{"private"}
	res, err = sc.SaveItem(ctx, &logic.ItemSaveEvent{Item: private})
	require.NoError(t, err)
	assert.Equal(t, logic.SkipExcludedCategory, res.Skip)

	res, err = sc.SyncIfEligible(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, logic.SkipUnknownItem, res.Skip)

	h.cfg.Secrets.Passwords = nil
	res, err = sc.SaveItem(ctx, &logic.ItemSaveEvent{Item: publishedItem("f")})
	require.NoError(t, err)
	assert.Equal(t, logic.SkipNotConnected, res.Skip)
}

func TestDirectiveFrozenAfterPublish(t *testing.T) {
	h, sc := setupCoordinatorTest(t)
	ctx := context.Background()

	h.mockClient.EXPECT().
		PostStatusMessage(gomock.Any(), gomock.Any(), dal.AudienceScope{dal.AspectPublic}, gomock.Any()).
		Return("7", nil)
	h.mockNotifier.EXPECT().Notice(dal.NoticeInfo, gomock.Any())

	yes := true
	res, err := sc.SaveItem(ctx, &logic.ItemSaveEvent{
		Item:      publishedItem("1"),
		Directive: &logic.DirectiveUpdate{UseExcerpt: &yes, AspectIds: []string{"4", "public"}},
	})
	require.NoError(t, err)
	require.True(t, res.Synced())

	dir, err := h.repo.GetDirective("1")
	require.NoError(t, err)
	assert.Nil(t, dir.UseExcerpt)
	assert.Equal(t, dal.AudienceScope{dal.AspectPublic}, dir.Aspects)

	no := false
	_, err = sc.SaveItem(ctx, &logic.ItemSaveEvent{
		Item:      publishedItem("1"),
		Directive: &logic.DirectiveUpdate{Crosspost: &no, AspectIds: []string{"9"}},
	})
	require.NoError(t, err)
	dir, err = h.repo.GetDirective("1")
	require.NoError(t, err)
	assert.False(t, dir.OptOut)
	assert.Equal(t, dal.AudienceScope{dal.AspectPublic}, dir.Aspects)
}

func TestInvalidAspectsFallBackToAllAspects(t *testing.T) {
	h, sc := setupCoordinatorTest(t)

	h.mockClient.EXPECT().
		PostStatusMessage(gomock.Any(), gomock.Any(), dal.AudienceScope{dal.AspectAllAspects}, gomock.Any()).
		Return("8", nil)
	h.mockNotifier.EXPECT().Notice(dal.NoticeInfo, gomock.Any())

	res, err := sc.SaveItem(context.Background(), &logic.ItemSaveEvent{
		Item:      publishedItem("1"),
		Directive: &logic.DirectiveUpdate{AspectIds: []string{"friends"}},
	})
	require.NoError(t, err)
	assert.True(t, res.Synced())
}

func TestPublishExtras(t *testing.T) {
	h, sc := setupCoordinatorTest(t)
	h.cfg.Crosspost.UseGeo = true
	h.cfg.Crosspost.AutoServices.Tumblr = true

	item := publishedItem("1")
	item.Format = dal.FormatGallery
	item.FeaturedImage = "https://blog.example/featured.jpg"
	item.Body = `<p><img src="https://blog.example/a.jpg"><img src="https://blog.example/b.jpg"></p>`
	item.Geo = &dal.GeoLocation{Latitude: 25.1, Longitude: 121.85, Address: "Jinguashi", Public: true}

	gomock.InOrder(
		h.mockClient.EXPECT().PostPhoto(gomock.Any(), "https://blog.example/featured.jpg").Return("p1", nil),
		h.mockClient.EXPECT().PostPhoto(gomock.Any(), "https://blog.example/a.jpg").Return("", errors.New("too big")),
		h.mockClient.EXPECT().PostPhoto(gomock.Any(), "https://blog.example/b.jpg").Return("p3", nil),
	)
	var extras *logic.PostExtras
	h.mockClient.EXPECT().PostStatusMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, body string, _ dal.AudienceScope, ex *logic.PostExtras) (string, error) {
			extras = ex
			assert.NotContains(t, body, "<img")
			return "11", nil
		})
	h.mockNotifier.EXPECT().Notice(dal.NoticeInfo, gomock.Any())

	res, err := sc.SaveItem(context.Background(), &logic.ItemSaveEvent{Item: item})
	require.NoError(t, err)
	require.True(t, res.Synced())
	require.NotNil(t, extras)
	assert.Equal(t, []string{"p1", "p3"}, extras.PhotoIds)
	assert.Equal(t, "Jinguashi", extras.LocationAddress)
	assert.Equal(t, "25.1,121.85", extras.LocationCoords)
	assert.Equal(t, []string{"tumblr"}, extras.Services)
}

func TestPrivateGeoIsNotSent(t *testing.T) {
	h, sc := setupCoordinatorTest(t)
	h.cfg.Crosspost.UseGeo = true

	item := publishedItem("1")
	item.Geo = &dal.GeoLocation{Latitude: 1, Longitude: 2, Address: "Home", Public: false}
	services := []dal.BroadcastService{dal.ServiceTwitter}

	h.mockClient.EXPECT().PostStatusMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ dal.AudienceScope, ex *logic.PostExtras) (string, error) {
			assert.Empty(t, ex.LocationAddress)
			assert.Empty(t, ex.LocationCoords)
			assert.Equal(t, []string{"twitter"}, ex.Services)
			return "12", nil
		})
	h.mockNotifier.EXPECT().Notice(dal.NoticeInfo, gomock.Any())

	res, err := sc.SaveItem(context.Background(), &logic.ItemSaveEvent{
		Item:      item,
		Directive: &logic.DirectiveUpdate{Services: &services},
	})
	require.NoError(t, err)
	assert.True(t, res.Synced())

	dir, _ := h.repo.GetDirective("1")
	assert.False(t, dir.ServicesSet)
}
