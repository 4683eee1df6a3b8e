// Package testutil provides a mock Bot API server and fixtures for tests.
//
// # Mock API
//
//	api := testutil.NewMockAPI(t)
//	api.On("sendMessage", func(w http.ResponseWriter, r *http.Request) {
//	    testutil.ReplyMessage(w, 123)
//	})
//	client := testutil.NewTestClient(t, api)
//
// Every request is captured, JSON and multipart alike:
//
//	c := api.LastCapture()
//	c.AssertAPIMethod(t, "sendMessage")
//	c.AssertParam(t, "chat_id", float64(testutil.TestChatID))
//
// # Fake Sleeper
//
// FakeSleeper records retry waits without sleeping:
//
//	sleeper := &testutil.FakeSleeper{}
//	client := testutil.NewRetryTestClient(t, api, sleeper, 3)
//	assert.Equal(t, 2*time.Second, sleeper.LastCall())
package testutil
