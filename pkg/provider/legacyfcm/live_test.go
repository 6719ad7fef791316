package legacyfcm_test

import (
	"context"
	"testing"

	"github.com/pushwork/fcm-push-client/pkg/provider/legacyfcm"
	"github.com/pushwork/fcm-push-client/pkg/test"
	"github.com/stretchr/testify/require"
)

// Environment for the live test:
// 1. copy the server key from https://console.firebase.google.com/project/_/settings/cloudmessaging/
// 2. export it as FCM_API_KEY
// 3. export a device registration id as PUSH_DEVICE

func TestLiveSendDryRun(t *testing.T) {

	key, err := test.GetAPIKey()
	if err != nil {
		t.Skip(err)
	}

	token, err := test.GetPushDevice()
	if err != nil {
		t.Skip(err)
	}

	client, err := legacyfcm.New(key)
	require.NoError(t, err)

	responses, err := client.Send(context.Background(), &legacyfcm.Message{
		RegistrationIDs: []string{token},
		Body:            "live test",
		DryRun:          true,
	})
	require.NoError(t, err)
	require.Len(t, responses, 1)

	resp := responses[0]
	require.Equal(t, 200, resp.StatusCode)
	require.NotNil(t, resp.MulticastID)
	require.Equal(t, 1, resp.Success+resp.Failure)
}
