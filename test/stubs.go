package test

import (
	"go.uber.org/mock/gomock"
	"reddit_parrot/test/mocks"
)

// StubLogger lets the mock logger accept any call.
func StubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

// StubMetrics lets the mock metrics accept any call. Observers it hands out do nothing.
func StubMetrics(ctrl *gomock.Controller, mockMetrics *mocks.MockIMetrics) {
	observer := mocks.NewMockIRequestObserver(ctrl)
	observer.EXPECT().Finish().AnyTimes()
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(observer).AnyTimes()
	mockMetrics.EXPECT().StartCycle().Return(observer).AnyTimes()
	mockMetrics.EXPECT().PostsFetched(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().PostFiltered(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().DuplicateSkipped().AnyTimes()
	mockMetrics.EXPECT().MediaResolved(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().PublishAttempted(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().MediaPurged(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
}

// StubUserAgent lets the mock user agent accept any call, setting a fixed header.
func StubUserAgent(mockUserAgent *mocks.MockIUserAgent) {
	mockUserAgent.EXPECT().AddUserAgent(gomock.Any()).AnyTimes()
}
