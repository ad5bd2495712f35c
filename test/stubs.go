package test

import (
	"diasposter/test/mocks"
	"go.uber.org/mock/gomock"
	"strings"
)

// StubLogger accepts any log call, with or without arguments.
func StubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

// StubTexts makes WithVals return the snippet ID followed by its values, one per line.
func StubTexts(mockTexts *mocks.MockITexts) {
	mockTexts.EXPECT().WithVals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(id string, vals map[string]string) string {
			return DummyTextWithVals(id, vals)
		}).AnyTimes()
}

func DummyTextWithVals(id string, vals map[string]string) string {
	res := id
	for k, v := range vals {
		res += "\n" + k + "\t" + v
	}
	return res
}

type nopObserver struct{}

func (nopObserver) Finish() {}

func StubMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(nopObserver{}).AnyTimes()
	mockMetrics.EXPECT().StartRemoteRequest(gomock.Any()).Return(nopObserver{}).AnyTimes()
	mockMetrics.EXPECT().Crossposted(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().CommentImported(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ReconcileFailed().AnyTimes()
	mockMetrics.EXPECT().RemoteDeleted(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().FeedChecked(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
}

func StrStartsWith(prefix string) func(x any) bool {
	return func(x any) bool {
		str, ok := x.(string)
		if !ok {
			return false
		}
		return strings.HasPrefix(str, prefix)
	}
}
